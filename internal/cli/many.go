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

var manyCmd = &cobra.Command{
	Use:   "many [file ...]",
	Short: "Check email addresses in bulk",
	Long: `Check a list of email addresses, one address per line. Addresses are read
from the named files, or from standard input when no files are given (a
lone "-" also names standard input). Blank lines and lines starting with
"#" are skipped; every other line is checked byte-for-byte as it appears,
so stray whitespace on a line is part of the address being checked.

One bad address does not stop the run: every line gets a verdict, in
input order, and the exit status is zero only when all of them pass.`,
	Args: cobra.ArbitraryArgs,
	RunE: RunMany,
}

func init() {
	rootCmd.AddCommand(manyCmd)
}

func RunMany(cmd *cobra.Command, args []string) error {
	candidates, err := readCandidates(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	results := engine.Addresses(candidates)
	invalid := countInvalid(results)

	logger.Info("checked addresses",
		zap.Int("total", len(results)),
		zap.Int("valid", len(results)-invalid),
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

// readCandidates gathers candidate addresses from the named files, or from
// in when no files are named.
func readCandidates(names []string, in io.Reader) ([]string, error) {
	if len(names) == 0 {
		return scanCandidates(in)
	}

	candidates := make([]string, 0, 64)
	for _, name := range names {
		lines, err := readCandidateFile(name, in)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, lines...)
	}
	return candidates, nil
}

func readCandidateFile(name string, in io.Reader) ([]string, error) {
	if name == "-" {
		return scanCandidates(in)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unable to open address list: %w", err)
	}
	defer func() { _ = f.Close() }()

	lines, err := scanCandidates(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return lines, nil
}

func scanCandidates(r io.Reader) ([]string, error) {
	candidates := make([]string, 0, 64)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		candidates = append(candidates, line)
	}

	return candidates, sc.Err()
}
