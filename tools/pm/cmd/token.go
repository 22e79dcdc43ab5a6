package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-mailcheck/tools/pm/release"
)

var setTokenCmd = &cobra.Command{
	Use:   "set-token <token>",
	Short: "Store a github API token in the system keyring",
	Args:  cobra.ExactArgs(1),
	RunE:  SetToken,
}

func SetToken(_ *cobra.Command, args []string) error {
	return release.StoreGithubToken(args[0])
}
