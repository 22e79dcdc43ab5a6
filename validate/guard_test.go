package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLength(t *testing.T) {
	t.Parallel()

	assert.Nil(t, checkLength(""))
	assert.Nil(t, checkLength("test@example.com"))
	assert.Nil(t, checkLength(strings.Repeat("a", MaxLength)))

	fault := checkLength(strings.Repeat("a", MaxLength+1))
	require.NotNil(t, fault)
	assert.Equal(t, InvalidLength, fault.Type)
}

func TestCheckString(t *testing.T) {
	t.Parallel()

	s, fault := checkString("test@example.com")
	require.Nil(t, fault)
	assert.Equal(t, "test@example.com", s)

	_, fault = checkString(42)
	require.NotNil(t, fault)
	assert.Equal(t, InvalidInput, fault.Type)
	assert.Equal(t, "received int", fault.Details)

	_, fault = checkString(nil)
	require.NotNil(t, fault)
	assert.Equal(t, "received nil", fault.Details)
}

func TestCheckSequence(t *testing.T) {
	t.Parallel()

	items, fault := checkSequence([]any{"a", 1})
	require.Nil(t, fault)
	assert.Equal(t, []any{"a", 1}, items)

	items, fault = checkSequence([]string{"a", "b"})
	require.Nil(t, fault)
	assert.Equal(t, []any{"a", "b"}, items)

	items, fault = checkSequence([2]int{1, 2})
	require.Nil(t, fault)
	assert.Equal(t, []any{1, 2}, items)

	for _, v := range []any{nil, 42, "string", map[string]string{}, struct{}{}} {
		_, fault := checkSequence(v)
		require.NotNil(t, fault, "value %v", v)
		assert.Equal(t, InvalidInput, fault.Type)
	}
}
