package syntax_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailcheck/syntax"
)

func TestParse(t *testing.T) {
	t.Parallel()

	a, err := syntax.Parse("test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "test", a.LocalPart)
	assert.Equal(t, "example.com", a.Domain)
	assert.Equal(t, "test@example.com", a.String())

	a, err = syntax.Parse("first.last+tag@sub.domain.co.uk")
	require.NoError(t, err)
	assert.Equal(t, "first.last+tag", a.LocalPart)
	assert.Equal(t, "sub.domain.co.uk", a.Domain)
}

func TestParsePreservesCase(t *testing.T) {
	t.Parallel()

	a, err := syntax.Parse("Mixed.Case@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "Mixed.Case", a.LocalPart)
	assert.Equal(t, "Example.COM", a.Domain)
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	_, err := syntax.Parse("")
	assert.ErrorIs(t, err, syntax.ErrEmpty)
}

func TestParseBadFormat(t *testing.T) {
	t.Parallel()

	_, err := syntax.Parse("not-an-email")
	assert.ErrorIs(t, err, syntax.ErrBadFormat)
}

func TestValidAccepts(t *testing.T) {
	t.Parallel()

	valid := []string{
		"test@example.com",
		"user.name@domain.org",
		"first+last@company.co.uk",
		"test_user@example.com",
		"test%percent@domain.com",
		"user-name@domain.com",
		"_underscore@domain.com",
		"a@b.co",
		"123@456.com",
		"test@domain-name.com",
		"test@sub.domain.example.com",
		"x@example.museum",
		"UPPER@CASE.COM",
	}

	for _, addr := range valid {
		assert.True(t, syntax.Valid(addr), "expected %q to be valid", addr)
	}
}

func TestValidRejects(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"plainaddress",
		"@example.com",
		"test@",
		"test@@domain.com",
		"te@st@domain.com",
		".test@domain.com",
		"test.@domain.com",
		"te..st@domain.com",
		"test@.domain.com",
		"test@domain..com",
		"test@domain.",
		"test@domain.c",
		"test@domain",
		"test@-domain.com",
		"test@domain-.com",
		"test user@domain.com",
		"test@domain .com",
		" test@domain.com",
		"test@domain.com ",
		"test\n@domain.com",
		"test@domain.com\n",
		"test@domain.123",
		"test@münchen.de",
		"тест@domain.com",
		"test@例え.jp",
		"test!bang@domain.com",
		"quote\"d@domain.com",
	}

	for _, addr := range invalid {
		assert.False(t, syntax.Valid(addr), "expected %q to be invalid", addr)
	}
}

func TestValidLongLocalPart(t *testing.T) {
	t.Parallel()

	// Length limits are enforced upstream, not by the grammar.
	assert.True(t, syntax.Valid(strings.Repeat("a", 300)+"@example.com"))
}
