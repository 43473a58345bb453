package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"invoices", "_private", "table1", "a$b", "billing_db"}
	for _, name := range valid {
		assert.True(t, isValidIdentifier(name), name)
	}

	invalid := []string{"", "1table", "has space", "semi;colon", "quote\"d", strings.Repeat("x", 64)}
	for _, name := range invalid {
		assert.False(t, isValidIdentifier(name), name)
	}
}

func TestIsValidColumnType(t *testing.T) {
	valid := []string{"uuid", "TEXT", "varchar(50)", "NUMERIC(10,2)", "timestamptz", " integer "}
	for _, typ := range valid {
		assert.True(t, isValidColumnType(typ), typ)
	}

	invalid := []string{"", "uuid; --", "varchar(50", "mytype", "TEXT)"}
	for _, typ := range invalid {
		assert.False(t, isValidColumnType(typ), typ)
	}
}

func TestIsValidDefault(t *testing.T) {
	valid := []string{"NOW()", "current_timestamp", "0", "-3.14", "'draft'", "TRUE", "NULL"}
	for _, def := range valid {
		assert.True(t, isValidDefault(def), def)
	}

	invalid := []string{"", "(SELECT 1)", "'it''s'", "NOW(); DROP TABLE lobs", "random()"}
	for _, def := range invalid {
		assert.False(t, isValidDefault(def), def)
	}
}

func TestIsValidReference(t *testing.T) {
	valid := []string{"invoices", "invoices(id)", "_t(c$1)"}
	for _, ref := range valid {
		assert.True(t, isValidReference(ref), ref)
	}

	invalid := []string{"", "invoices(id", "invoices(id); --", "other.invoices(id)"}
	for _, ref := range invalid {
		assert.False(t, isValidReference(ref), ref)
	}
}
