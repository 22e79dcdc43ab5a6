package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/zostay/go-mailcheck/validate"
)

// printResults writes one line per verdict in input order and returns the
// number of negative verdicts. Positive lines show the split address and the
// domain score; negative lines show the rejection reason.
func printResults(w io.Writer, candidates []string, results []*validate.Result) int {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	invalid := 0
	for i, res := range results {
		if res.IsValid {
			_, _ = fmt.Fprintf(tw, "ok\t%s\tlocal=%s domain=%s score=%g\n",
				candidates[i], res.LocalPart, res.Domain, res.DomainScore)
		} else {
			invalid++
			_, _ = fmt.Fprintf(tw, "bad\t%s\t%s\n",
				candidates[i], res.ErrorMessage)
		}
	}
	_ = tw.Flush()

	return invalid
}

// printJSON writes v as a single line of JSON. Commands pass either one
// *validate.Result or a slice of them.
func printJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// countInvalid tallies negative verdicts.
func countInvalid(results []*validate.Result) int {
	invalid := 0
	for _, res := range results {
		if !res.IsValid {
			invalid++
		}
	}
	return invalid
}

// verdictError turns a tally of negative verdicts into the error that drives
// the exit status. It returns nil when everything validated.
func verdictError(invalid, total int) error {
	if invalid == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d addresses failed validation", invalid, total)
}
