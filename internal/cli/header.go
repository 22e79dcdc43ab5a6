package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var headerCmd = &cobra.Command{
	Use:   "header [file ...]",
	Short: "Check the addresses found in mail message headers",
	Long: `Read the header block of each mail message and check every address found
in its From, To, Cc, Bcc, Reply-To, and Sender fields. Folded header
lines are unfolded before addresses are extracted, and "Name <addr>"
mailboxes are reduced to the bare address. Messages are read from the
named files, or from standard input when no files are given.

Address lists are split on commas, so a comma inside a quoted display
name splits too; the fragments simply fail the check.`,
	Args: cobra.ArbitraryArgs,
	RunE: RunHeader,
}

func init() {
	rootCmd.AddCommand(headerCmd)
}

// addressFields are the header fields the header command pulls addresses
// out of, lowercased.
var addressFields = map[string]struct{}{
	"from":     {},
	"to":       {},
	"cc":       {},
	"bcc":      {},
	"reply-to": {},
	"sender":   {},
}

func RunHeader(cmd *cobra.Command, args []string) error {
	candidates, err := headerCandidates(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	results := engine.Addresses(candidates)
	invalid := countInvalid(results)

	logger.Info("checked header addresses",
		zap.Int("total", len(results)),
		zap.Int("invalid", invalid))

	if cfg.JSON {
		if err := printJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	} else {
		printResults(cmd.OutOrStdout(), candidates, results)
	}

	return verdictError(invalid, len(results))
}

func headerCandidates(names []string, in io.Reader) ([]string, error) {
	if len(names) == 0 {
		return scanHeaderAddresses(in)
	}

	candidates := make([]string, 0, 16)
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("unable to open message: %w", err)
		}

		addrs, err := scanHeaderAddresses(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		candidates = append(candidates, addrs...)
	}
	return candidates, nil
}

// scanHeaderAddresses reads the header block of a mail message, everything
// up to the first blank line, unfolds continuation lines into their field,
// and collects addresses from the address-bearing fields in order of
// appearance.
func scanHeaderAddresses(r io.Reader) ([]string, error) {
	var (
		addrs []string
		name  string
		value string
	)

	flush := func() {
		if name == "" {
			return
		}
		if _, ok := addressFields[strings.ToLower(name)]; ok {
			addrs = append(addrs, splitAddressList(value)...)
		}
		name, value = "", ""
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			// end of the header block
			break
		}

		if line[0] == ' ' || line[0] == '\t' {
			// folded continuation of the previous field
			value += " " + strings.TrimSpace(line)
			continue
		}

		flush()
		n, v, ok := strings.Cut(line, ":")
		if !ok {
			// not a header line; play it safe and stop scanning
			break
		}
		name, value = n, strings.TrimSpace(v)
	}
	flush()

	if addrs == nil {
		addrs = []string{}
	}
	return addrs, sc.Err()
}

// splitAddressList breaks a field value on commas and reduces each mailbox
// to its bare address, taking the angle-bracket form when present.
func splitAddressList(value string) []string {
	parts := strings.Split(value, ",")
	addrs := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if i := strings.LastIndexByte(part, '<'); i >= 0 {
			if j := strings.IndexByte(part[i:], '>'); j > 0 {
				part = part[i+1 : i+j]
			}
		}

		addrs = append(addrs, strings.TrimSpace(part))
	}
	return addrs
}
