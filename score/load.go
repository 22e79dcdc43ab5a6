package score

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrScoreRange is returned when a configured score falls outside the
	// 0 to 100 scale.
	ErrScoreRange = errors.New("score is outside the 0 to 100 range")

	// ErrTierOverlap is returned when a domain appears in both the trusted
	// and the disposable list.
	ErrTierOverlap = errors.New("domain is listed as both trusted and disposable")
)

// tableFile is the YAML shape of a score table:
//
//	default: 80
//	trusted:
//	  score: 95
//	  domains:
//	    - example.com
//	disposable:
//	  score: 10
//	  domains:
//	    - mailinator.com
//
// Every key is optional. Omitted scores fall back to the package defaults.
type tableFile struct {
	Default    *float64 `yaml:"default"`
	Trusted    tierFile `yaml:"trusted"`
	Disposable tierFile `yaml:"disposable"`
}

type tierFile struct {
	Score   *float64 `yaml:"score"`
	Domains []string `yaml:"domains"`
}

// Read decodes a YAML score table from r, checks it, and builds a Table from
// it. Unknown keys, scores off the 0 to 100 scale, and domains listed in
// both tiers are all rejected. An empty document yields the same table as
// New with no options.
func Read(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f tableFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("unable to decode score table: %w", err)
	}

	for _, check := range []struct {
		name  string
		score *float64
	}{
		{"default", f.Default},
		{"trusted", f.Trusted.Score},
		{"disposable", f.Disposable.Score},
	} {
		if check.score == nil {
			continue
		}
		if s := *check.score; s < 0 || s > 100 || math.IsNaN(s) {
			return nil, fmt.Errorf("%s score %v: %w", check.name, s, ErrScoreRange)
		}
	}

	trusted := make(map[string]struct{}, len(f.Trusted.Domains))
	for _, d := range f.Trusted.Domains {
		trusted[d] = struct{}{}
	}
	for _, d := range f.Disposable.Domains {
		if _, ok := trusted[d]; ok {
			return nil, fmt.Errorf("%q: %w", d, ErrTierOverlap)
		}
	}

	opts := []Option{
		WithTrusted(f.Trusted.Domains...),
		WithDisposable(f.Disposable.Domains...),
	}
	if f.Default != nil {
		opts = append(opts, WithDefaultScore(*f.Default))
	}
	if f.Trusted.Score != nil {
		opts = append(opts, WithTrustedScore(*f.Trusted.Score))
	}
	if f.Disposable.Score != nil {
		opts = append(opts, WithDisposableScore(*f.Disposable.Score))
	}

	return New(opts...), nil
}

// LoadFile reads a YAML score table from the named file.
func LoadFile(path string) (*Table, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open score table: %w", err)
	}
	defer func() { _ = r.Close() }()

	t, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}
