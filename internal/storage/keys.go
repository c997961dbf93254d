package storage

import "github.com/mcoot/easylog/internal/model"

// Session keys
const (
	TokenKey = "token"
	UserKey  = "user"
)

// RegistryKey returns the key holding the ordered entity names of a category
func RegistryKey(c model.Category) string {
	if c == model.CategoryCustomer {
		return "journalCustomers"
	}
	return "journalClients"
}

// EntriesKey returns the key holding an entity's entry log
func EntriesKey(c model.Category, entity string) string {
	if c == model.CategoryCustomer {
		return "journalEntries_customer_" + entity
	}
	return "journalEntries_" + entity
}
