package registry

import (
	"fmt"

	"github.com/mcoot/easylog/internal/model"
)

// Confirmer is asked before an entity and its entries are removed
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Confirmed answers yes or no without asking
type Confirmed bool

func (c Confirmed) Confirm(string) bool { return bool(c) }

// RemovalPrompt is the question put to the Confirmer
func RemovalPrompt(category model.Category, name string) string {
	noun := "client"
	if category == model.CategoryCustomer {
		noun = "customer"
	}
	return fmt.Sprintf("Really delete %s %q? All of its journal entries will be lost.", noun, name)
}
