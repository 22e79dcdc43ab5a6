package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zostay/go-mailcheck/validate"
)

var oneCmd = &cobra.Command{
	Use:   "one <address>",
	Short: "Check a single email address",
	Long: `Check a single email address and print the verdict. The exit status is
zero only when the address is valid. The address is checked exactly as
given; no whitespace trimming or case folding is applied first.`,
	Args: cobra.ExactArgs(1),
	RunE: RunOne,
}

func init() {
	rootCmd.AddCommand(oneCmd)
}

func RunOne(cmd *cobra.Command, args []string) error {
	candidate := args[0]

	res, err := engine.Address(candidate)
	if err != nil {
		return err
	}

	logger.Debug("checked address",
		zap.String("address", candidate),
		zap.Bool("valid", res.IsValid))

	if cfg.JSON {
		if err := printJSON(cmd.OutOrStdout(), res); err != nil {
			return err
		}
	} else {
		printResults(cmd.OutOrStdout(), []string{candidate}, []*validate.Result{res})
	}

	if !res.IsValid {
		return errors.New("address is not valid")
	}
	return nil
}
