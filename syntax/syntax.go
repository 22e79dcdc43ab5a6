// Package syntax checks candidate strings against the address grammar used
// throughout go-mailcheck and splits well-formed candidates into their local
// part and domain.
//
// The grammar is deliberately narrower than RFC 5321/5322. It describes the
// addresses people actually type into signup forms: an ASCII local part made
// of letters, digits, and the punctuation ._%+- with no leading, trailing, or
// doubled dots, then a single @, then dot-separated domain labels of letters,
// digits, and interior hyphens, ending in an alphabetic top-level domain of at
// least two characters. Quoting, comments, internationalized domains, and the
// rest of the RFC menagerie are out of scope here. If you need full RFC
// parsing, use a real address parser; this package answers the much smaller
// question "does this look like a deliverable mailbox?"
//
// Parse is the primary entry point. Valid is a convenience wrapper for
// callers that only want the verdict.
package syntax

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmpty is returned by Parse when the candidate is the empty string.
	ErrEmpty = errors.New("Email cannot be empty")

	// ErrBadFormat is returned by Parse when the candidate does not match
	// the address grammar.
	ErrBadFormat = errors.New("Invalid email format")
)

// addressRx encodes the grammar. The character classes keep dots off the
// edges of the local part and hyphens off the edges of domain labels, and the
// final group insists on an alphabetic TLD of two or more characters.
// Consecutive dots in the local part survive the regexp (the inner class
// admits them) and are rejected separately in Parse.
var addressRx = regexp.MustCompile(
	`^[a-zA-Z0-9_%+-](?:[a-zA-Z0-9._%+-]*[a-zA-Z0-9_%+-])?` +
		`@[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?` +
		`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?)*` +
		`\.[a-zA-Z]{2,}$`)

// An Address is a candidate string that made it through Parse, split at the
// @. Address holds the pieces exactly as they appeared; no case folding or
// other normalization is applied.
type Address struct {
	// LocalPart is everything before the @.
	LocalPart string

	// Domain is everything after the @.
	Domain string
}

// String reassembles the address.
func (a Address) String() string {
	return a.LocalPart + "@" + a.Domain
}

// Parse checks candidate against the address grammar and returns the split
// address. The candidate is used byte-for-byte as given: no whitespace
// trimming, no case folding, no Unicode normalization. It returns ErrEmpty
// for the empty string and ErrBadFormat for anything else that fails the
// grammar.
func Parse(candidate string) (Address, error) {
	if candidate == "" {
		return Address{}, ErrEmpty
	}

	if !addressRx.MatchString(candidate) {
		return Address{}, ErrBadFormat
	}

	// The grammar admits exactly one @, so the split is unambiguous.
	at := strings.IndexByte(candidate, '@')
	local, domain := candidate[:at], candidate[at+1:]

	if strings.Contains(local, "..") {
		return Address{}, ErrBadFormat
	}

	return Address{LocalPart: local, Domain: domain}, nil
}

// Valid reports whether candidate parses. It is shorthand for calling Parse
// and ignoring everything but the verdict.
func Valid(candidate string) bool {
	_, err := Parse(candidate)
	return err == nil
}
