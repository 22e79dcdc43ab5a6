package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailcheck/validate"
)

func TestPrintResults(t *testing.T) {
	t.Parallel()

	candidates := []string{"test@example.com", "nope"}
	results := validate.Addresses(candidates)

	buf := &strings.Builder{}
	invalid := printResults(buf, candidates, results)

	assert.Equal(t, 1, invalid)
	assert.Equal(t,
		"ok   test@example.com  local=test domain=example.com score=80\n"+
			"bad  nope              Invalid email format\n",
		buf.String())
}

func TestPrintJSON(t *testing.T) {
	t.Parallel()

	res, err := validate.Address("a@b.co")
	require.NoError(t, err)

	buf := &strings.Builder{}
	require.NoError(t, printJSON(buf, res))
	assert.JSONEq(t,
		`{"is_valid":true,"local_part":"a","domain":"b.co","domain_score":80}`,
		buf.String())
}

func TestCountInvalid(t *testing.T) {
	t.Parallel()

	results := validate.Addresses([]string{"a@b.co", "x", "y", "c@d.org"})
	assert.Equal(t, 2, countInvalid(results))
}

func TestVerdictError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, verdictError(0, 10))
	assert.EqualError(t, verdictError(2, 5), "2 of 5 addresses failed validation")
}
