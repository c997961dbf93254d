package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/easylog/internal/model"
)

func TestRegistryKey(t *testing.T) {
	assert.Equal(t, "journalClients", RegistryKey(model.CategoryClient))
	assert.Equal(t, "journalCustomers", RegistryKey(model.CategoryCustomer))
}

func TestEntriesKey(t *testing.T) {
	assert.Equal(t, "journalEntries_Acme", EntriesKey(model.CategoryClient, "Acme"))
	assert.Equal(t, "journalEntries_customer_Acme", EntriesKey(model.CategoryCustomer, "Acme"))
}
