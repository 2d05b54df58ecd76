package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldUnmarshal_AbsentNullValue(t *testing.T) {
	var patch WorkspacePatch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Garage","description":null}`), &patch))

	assert.True(t, patch.Name.Set)
	assert.False(t, patch.Name.Null)
	assert.Equal(t, "Garage", patch.Name.Value)

	assert.True(t, patch.Description.Set)
	assert.True(t, patch.Description.Null)
}

func TestFieldUnmarshal_AbsentKeysStayUnset(t *testing.T) {
	var patch WorkspacePatch
	require.NoError(t, json.Unmarshal([]byte(`{}`), &patch))

	assert.False(t, patch.Name.Set)
	assert.False(t, patch.Description.Set)
}

func TestFieldUnmarshal_Int64(t *testing.T) {
	var patch ItemPatch
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":7}`), &patch))

	assert.True(t, patch.Quantity.Set)
	assert.False(t, patch.Quantity.Null)
	assert.Equal(t, int64(7), patch.Quantity.Value)
	assert.False(t, patch.Description.Set)
}

func TestFieldUnmarshal_TypeMismatch(t *testing.T) {
	var patch ItemPatch
	assert.Error(t, json.Unmarshal([]byte(`{"quantity":"seven"}`), &patch))
}

func TestFieldConstructors(t *testing.T) {
	f := FieldOf("hello")
	assert.True(t, f.Set)
	assert.False(t, f.Null)
	assert.Equal(t, "hello", f.Value)

	n := NullField[string]()
	assert.True(t, n.Set)
	assert.True(t, n.Null)
}
