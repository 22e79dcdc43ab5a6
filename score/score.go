// Package score assigns trust scores to mail domains.
//
// Scores live on a 0 to 100 scale and come out of a Table, which keeps two
// membership lists: trusted domains and disposable domains. A domain found in
// the trusted list gets the table's trusted score, a domain found in the
// disposable list gets the disposable score, and everything else gets the
// default score. Lookup is exact and case-sensitive; a table never inspects
// subdomains or the DNS.
//
// The zero-configuration table returned by Default has empty membership
// lists, so every domain scores DefaultScore until a caller curates lists of
// its own, either through options on New or by loading a YAML file with
// LoadFile.
package score

// A Tier names the membership list a domain was found in, if any.
type Tier int

const (
	// Unrecognized marks a domain found in neither list.
	Unrecognized Tier = iota

	// Trusted marks a domain found in the trusted list.
	Trusted

	// Disposable marks a domain found in the disposable list.
	Disposable
)

// String returns the lowercase name of the tier.
func (t Tier) String() string {
	switch t {
	case Trusted:
		return "trusted"
	case Disposable:
		return "disposable"
	default:
		return "unrecognized"
	}
}

// These are the scores a Table hands out unless options say otherwise.
const (
	// DefaultScore is given to domains in neither membership list.
	DefaultScore = 80.0

	// TrustedScore is given to domains in the trusted list.
	TrustedScore = 95.0

	// DisposableScore is given to domains in the disposable list.
	DisposableScore = 10.0
)

// A Table maps domains to trust scores. Tables are immutable once built and
// safe for concurrent use.
type Table struct {
	trusted    map[string]struct{}
	disposable map[string]struct{}

	trustedScore    float64
	disposableScore float64
	defaultScore    float64
}

// An Option configures a Table under construction by New.
type Option func(*Table)

// WithTrusted adds domains to the trusted membership list.
func WithTrusted(domains ...string) Option {
	return func(t *Table) {
		for _, d := range domains {
			t.trusted[d] = struct{}{}
		}
	}
}

// WithDisposable adds domains to the disposable membership list.
func WithDisposable(domains ...string) Option {
	return func(t *Table) {
		for _, d := range domains {
			t.disposable[d] = struct{}{}
		}
	}
}

// WithTrustedScore replaces the score given to trusted domains.
func WithTrustedScore(s float64) Option {
	return func(t *Table) {
		t.trustedScore = s
	}
}

// WithDisposableScore replaces the score given to disposable domains.
func WithDisposableScore(s float64) Option {
	return func(t *Table) {
		t.disposableScore = s
	}
}

// WithDefaultScore replaces the score given to unrecognized domains.
func WithDefaultScore(s float64) Option {
	return func(t *Table) {
		t.defaultScore = s
	}
}

// New builds a Table. With no options the table has empty membership lists
// and the package default scores, which makes every domain score
// DefaultScore.
func New(opts ...Option) *Table {
	t := &Table{
		trusted:         map[string]struct{}{},
		disposable:      map[string]struct{}{},
		trustedScore:    TrustedScore,
		disposableScore: DisposableScore,
		defaultScore:    DefaultScore,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

var defaultTable = New()

// Default returns the shared zero-configuration table. Both membership lists
// are empty, so every domain scores DefaultScore.
func Default() *Table {
	return defaultTable
}

// Lookup returns the score for domain together with the tier that produced
// it. The trusted list wins when a domain somehow appears in both lists.
func (t *Table) Lookup(domain string) (float64, Tier) {
	if _, ok := t.trusted[domain]; ok {
		return t.trustedScore, Trusted
	}
	if _, ok := t.disposable[domain]; ok {
		return t.disposableScore, Disposable
	}
	return t.defaultScore, Unrecognized
}

// Score returns the score for domain.
func (t *Table) Score(domain string) float64 {
	s, _ := t.Lookup(domain)
	return s
}

// Len returns the number of domains across both membership lists.
func (t *Table) Len() int {
	return len(t.trusted) + len(t.disposable)
}
