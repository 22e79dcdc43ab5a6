package validate

import "github.com/zostay/go-mailcheck/syntax"

// A Result is the engine's verdict on a single candidate. Every candidate
// that gets evaluated produces exactly one Result, whether the verdict is
// positive or negative.
//
// The verdict gates the other fields. On a positive verdict, LocalPart,
// Domain, and DomainScore are set and ErrorMessage is empty. On a negative
// verdict, ErrorMessage explains the rejection and the other fields are left
// at their zero values. The JSON field names match that shape: absent fields
// are omitted rather than serialized as empty strings.
type Result struct {
	// IsValid is the verdict.
	IsValid bool `json:"is_valid"`

	// LocalPart is the part of the address before the @, exactly as given.
	// Only set on positive verdicts.
	LocalPart string `json:"local_part,omitempty"`

	// Domain is the part of the address after the @, exactly as given.
	// Only set on positive verdicts.
	Domain string `json:"domain,omitempty"`

	// DomainScore is the trust score assigned to Domain, on a 0 to 100
	// scale. Only set on positive verdicts.
	DomainScore float64 `json:"domain_score,omitempty"`

	// ErrorMessage says why the candidate was rejected. Only set on
	// negative verdicts.
	ErrorMessage string `json:"error_message,omitempty"`
}

func positiveResult(a syntax.Address, domainScore float64) *Result {
	return &Result{
		IsValid:     true,
		LocalPart:   a.LocalPart,
		Domain:      a.Domain,
		DomainScore: domainScore,
	}
}

func negativeResult(msg string) *Result {
	return &Result{
		IsValid:      false,
		ErrorMessage: msg,
	}
}
