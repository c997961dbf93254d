package model

import (
	"net/url"
	"strings"
)

// Category partitions entities into independent registries and entry logs
type Category string

const (
	CategoryClient   Category = "client"
	CategoryCustomer Category = "customer"
)

// Categories lists every category in sidebar display order
var Categories = []Category{CategoryClient, CategoryCustomer}

// ParseCategory accepts the singular or plural form of a category name
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "client", "clients":
		return CategoryClient, nil
	case "customer", "customers":
		return CategoryCustomer, nil
	default:
		return "", ErrUnknownCategory
	}
}

// DefaultEntity returns the protected fallback entity for the category
func (c Category) DefaultEntity() string {
	if c == CategoryCustomer {
		return "DefaultCustomer"
	}
	return "Default"
}

// Plural returns the plural form used in API paths
func (c Category) Plural() string {
	return string(c) + "s"
}

// Label returns a human-readable heading for the category
func (c Category) Label() string {
	if c == CategoryCustomer {
		return "Customers"
	}
	return "Clients"
}

// JournalPath returns the web path for an entity's journal page
func (c Category) JournalPath(name string) string {
	escaped := url.PathEscape(name)
	if c == CategoryCustomer {
		return "/journal/customer/" + escaped
	}
	return "/journal/" + escaped
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	return c == CategoryClient || c == CategoryCustomer
}
