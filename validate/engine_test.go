package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailcheck/score"
	"github.com/zostay/go-mailcheck/validate"
)

// flatScorer gives every domain the same score.
type flatScorer float64

func (s flatScorer) Score(string) float64 { return float64(s) }

// boomScorer blows up on every call.
type boomScorer struct{}

func (boomScorer) Score(string) float64 { panic("scorer exploded") }

func TestAddress(t *testing.T) {
	t.Parallel()

	res, err := validate.Address("test@example.com")
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.Equal(t, "test", res.LocalPart)
	assert.Equal(t, "example.com", res.Domain)
	assert.Equal(t, score.DefaultScore, res.DomainScore)
	assert.Empty(t, res.ErrorMessage)

	// Evaluation is pure: the same candidate always gets the same verdict.
	again, err := validate.Address("test@example.com")
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestAddressNegativeVerdicts(t *testing.T) {
	t.Parallel()

	for candidate, msg := range map[string]string{
		"":                  "Email cannot be empty",
		"not-an-email":      "Invalid email format",
		"test2.com":         "Invalid email format",
		"@example.com":      "Invalid email format",
		"test@":             "Invalid email format",
		"te..st@domain.com": "Invalid email format",
	} {
		res, err := validate.Address(candidate)
		require.NoError(t, err, "candidate %q", candidate)
		assert.False(t, res.IsValid, "candidate %q", candidate)
		assert.Equal(t, msg, res.ErrorMessage, "candidate %q", candidate)
		assert.Empty(t, res.LocalPart, "candidate %q", candidate)
		assert.Empty(t, res.Domain, "candidate %q", candidate)
		assert.Zero(t, res.DomainScore, "candidate %q", candidate)
	}
}

func TestAddressLengthFault(t *testing.T) {
	t.Parallel()

	res, err := validate.Address(strings.Repeat("a", 321))
	assert.Nil(t, res)

	var fault *validate.Error
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, validate.InvalidLength, fault.Type)
	assert.Equal(t, "Email exceeds maximum length of 320 characters", fault.Message)
	assert.Equal(t,
		"InvalidLength: Email exceeds maximum length of 320 characters",
		err.Error())
}

func TestAddressLengthBoundary(t *testing.T) {
	t.Parallel()

	// Exactly MaxLength bytes still gets a verdict.
	candidate := strings.Repeat("a", 308) + "@example.com"
	require.Len(t, candidate, validate.MaxLength)

	res, err := validate.Address(candidate)
	require.NoError(t, err)
	assert.True(t, res.IsValid)
}

func TestAddressLengthIsBytes(t *testing.T) {
	t.Parallel()

	// 161 runes, 322 bytes.
	candidate := strings.Repeat("é", 161)
	require.Greater(t, len(candidate), validate.MaxLength)

	_, err := validate.Address(candidate)

	var fault *validate.Error
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, validate.InvalidLength, fault.Type)
}

func TestAddressScoring(t *testing.T) {
	t.Parallel()

	eng := validate.New(validate.WithScorer(score.New(
		score.WithTrusted("example.com"),
		score.WithDisposable("mailinator.com"),
	)))

	res, err := eng.Address("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, score.TrustedScore, res.DomainScore)

	res, err = eng.Address("a@mailinator.com")
	require.NoError(t, err)
	assert.Equal(t, score.DisposableScore, res.DomainScore)

	res, err = eng.Address("a@elsewhere.net")
	require.NoError(t, err)
	assert.Equal(t, score.DefaultScore, res.DomainScore)
}

func TestValue(t *testing.T) {
	t.Parallel()

	res, err := validate.Value("test@example.com")
	require.NoError(t, err)
	assert.True(t, res.IsValid)
}

func TestValueNotString(t *testing.T) {
	t.Parallel()

	for v, details := range map[any]string{
		42:   "received int",
		true: "received bool",
		1.5:  "received float64",
	} {
		res, err := validate.Value(v)
		assert.Nil(t, res)

		var fault *validate.Error
		require.ErrorAs(t, err, &fault, "value %v", v)
		assert.Equal(t, validate.InvalidInput, fault.Type)
		assert.Equal(t, "Email must be a string", fault.Message)
		assert.Equal(t, details, fault.Details)
	}

	_, err := validate.Value(nil)
	var fault *validate.Error
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "received nil", fault.Details)
}

func TestAddresses(t *testing.T) {
	t.Parallel()

	results := validate.Addresses([]string{
		"test@example.com",
		"invalid-email",
		"user@domain.org",
		"@broken.com",
		"another@test.net",
	})

	require.Len(t, results, 5)
	verdicts := make([]bool, len(results))
	for i, res := range results {
		verdicts[i] = res.IsValid
	}
	assert.Equal(t, []bool{true, false, true, false, true}, verdicts)

	assert.Equal(t, "example.com", results[0].Domain)
	assert.Equal(t, "Invalid email format", results[1].ErrorMessage)
	assert.Equal(t, "domain.org", results[2].Domain)
	assert.Equal(t, "Invalid email format", results[3].ErrorMessage)
	assert.Equal(t, "test.net", results[4].Domain)
}

func TestAddressesEmpty(t *testing.T) {
	t.Parallel()

	results := validate.Addresses([]string{})
	require.NotNil(t, results)
	assert.Len(t, results, 0)

	results = validate.Addresses(nil)
	require.NotNil(t, results)
	assert.Len(t, results, 0)
}

func TestAddressesFaultsBecomeVerdicts(t *testing.T) {
	t.Parallel()

	results := validate.Addresses([]string{
		strings.Repeat("a", 321),
		"test@example.com",
		"",
	})

	require.Len(t, results, 3)
	assert.False(t, results[0].IsValid)
	assert.Equal(t,
		"Email exceeds maximum length of 320 characters",
		results[0].ErrorMessage)
	assert.True(t, results[1].IsValid)
	assert.False(t, results[2].IsValid)
	assert.Equal(t, "Email cannot be empty", results[2].ErrorMessage)
}

func TestValues(t *testing.T) {
	t.Parallel()

	results, err := validate.Values([]any{"test@example.com", 42, "bad", nil})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.True(t, results[0].IsValid)
	assert.False(t, results[1].IsValid)
	assert.Equal(t, "Email must be a string", results[1].ErrorMessage)
	assert.False(t, results[2].IsValid)
	assert.Equal(t, "Invalid email format", results[2].ErrorMessage)
	assert.False(t, results[3].IsValid)
	assert.Equal(t, "Email must be a string", results[3].ErrorMessage)
}

func TestValuesTypedSequences(t *testing.T) {
	t.Parallel()

	results, err := validate.Values([]string{"test@example.com"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].IsValid)

	results, err = validate.Values([2]string{"a@b.co", "nope"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].IsValid)
	assert.False(t, results[1].IsValid)
}

func TestValuesNotSequence(t *testing.T) {
	t.Parallel()

	for _, v := range []any{42, "test@example.com", map[string]string{}, nil} {
		results, err := validate.Values(v)
		assert.Nil(t, results)

		var fault *validate.Error
		require.ErrorAs(t, err, &fault, "value %v", v)
		assert.Equal(t, validate.InvalidInput, fault.Type)
		assert.Equal(t, "Emails must be an array", fault.Message)
	}
}

func TestValuesEmpty(t *testing.T) {
	t.Parallel()

	results, err := validate.Values([]any{})
	require.NoError(t, err)
	require.NotNil(t, results)
	assert.Len(t, results, 0)
}

func TestWorkers(t *testing.T) {
	t.Parallel()

	emails := make([]string, 100)
	for i := range emails {
		if i%3 == 0 {
			emails[i] = "bad address"
		} else {
			emails[i] = "user@example.com"
		}
	}

	serial := validate.New()
	concurrent := validate.New(validate.WithWorkers(8))

	want := serial.Addresses(emails)
	got := concurrent.Addresses(emails)
	assert.Equal(t, want, got)
}

func TestWorkersClampedToSerial(t *testing.T) {
	t.Parallel()

	eng := validate.New(validate.WithWorkers(-5))
	results := eng.Addresses([]string{"test@example.com"})
	require.Len(t, results, 1)
	assert.True(t, results[0].IsValid)
}

func TestPanickingScorer(t *testing.T) {
	t.Parallel()

	eng := validate.New(validate.WithScorer(boomScorer{}))

	res, err := eng.Address("test@example.com")
	assert.Nil(t, res)

	var fault *validate.Error
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, validate.EngineFault, fault.Type)
	assert.Equal(t, "Validation engine failure", fault.Message)
	assert.Contains(t, fault.Details, "scorer exploded")

	// A rejected candidate never reaches the scorer, so no fault.
	res, err = eng.Address("not-an-email")
	require.NoError(t, err)
	assert.False(t, res.IsValid)

	// In a batch the fault becomes a verdict like any other.
	results := eng.Addresses([]string{"test@example.com", "not-an-email"})
	require.Len(t, results, 2)
	assert.False(t, results[0].IsValid)
	assert.Equal(t, "Validation engine failure", results[0].ErrorMessage)
	assert.False(t, results[1].IsValid)
	assert.Equal(t, "Invalid email format", results[1].ErrorMessage)
}

func TestCustomScorer(t *testing.T) {
	t.Parallel()

	eng := validate.New(validate.WithScorer(flatScorer(42)))

	res, err := eng.Address("test@example.com")
	require.NoError(t, err)
	assert.Equal(t, 42.0, res.DomainScore)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	assert.Same(t, validate.Default(), validate.Default())
}
