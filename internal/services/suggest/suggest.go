// Package suggest produces the canned writing hint shown under the composer.
package suggest

import "strings"

// MinLength is the length text must exceed before a hint is offered
const MinLength = 10

const (
	ServerHint  = "Would you like to add details about the server specifications or the updates performed?"
	ContactHint = "Don't forget to mention the relevant contacts and ticket numbers."
	GenericHint = "Tip: add concrete times and the people involved to make the entry easier to follow."
)

// Suggest returns a hint for draft text, or false when the draft is too short
func Suggest(text string) (string, bool) {
	if len([]rune(text)) <= MinLength {
		return "", false
	}
	switch {
	case strings.Contains(text, "Server"):
		return ServerHint, true
	case strings.Contains(text, "Kunde"), strings.Contains(text, "customer"):
		return ContactHint, true
	default:
		return GenericHint, true
	}
}
