package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/traversal"
)

type employee struct {
	ID      int
	Name    string
	Company string
}

func TestFieldsOf(t *testing.T) {
	emp := employee{ID: 1, Name: "John Doe", Company: "Acme"}
	expected := []Field{{"ID", 1}, {"Name", "John Doe"}, {"Company", "Acme"}}

	for _, value := range []interface{}{emp, &emp} {
		fields, err := FieldsOf(value)
		require.NoError(t, err)
		visited, err := drain[Field](fields.Iterator(), func(Field) bool { return false })
		require.NoError(t, err)
		assert.Equal(t, expected, visited)
	}
}

type address struct {
	City string
}

type member struct {
	ID     int
	secret string
	address
	Tags []string
}

func TestFieldsOf_UnexportedAndEmbedded(t *testing.T) {
	m := member{ID: 1, secret: "s", address: address{City: "Oslo"}, Tags: []string{"x"}}
	fields, err := FieldsOf(&m)
	require.NoError(t, err)
	visited, err := drain[Field](fields.Iterator(), func(Field) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, []Field{
		{"ID", 1},
		{"secret", "s"},
		{"address", address{City: "Oslo"}},
		{"Tags", []string{"x"}},
	}, visited)
}

func TestFieldsOf_RemoveUnsupported(t *testing.T) {
	fields, err := FieldsOf(&employee{})
	require.NoError(t, err)
	iter := fields.Iterator()
	require.True(t, iter.Next())
	assert.ErrorIs(t, iter.Remove(), traversal.ErrRemoveUnsupported)
}

func TestFieldsOf_Invalid(t *testing.T) {
	var nilEmployee *employee
	for _, value := range []interface{}{nil, 1, []int{1}, nilEmployee} {
		_, err := FieldsOf(value)
		assert.Error(t, err)
	}
}

func TestField_String(t *testing.T) {
	assert.Equal(t, "Name=John", Field{Name: "Name", Value: "John"}.String())
}
