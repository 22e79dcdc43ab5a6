package cmd

import "github.com/spf13/cobra"

var (
	rootCmd = &cobra.Command{
		Use:   "pm",
		Short: "Project management tools for go-mailcheck",
	}
)

func init() {
	rootCmd.AddCommand(changelogCmd)
	rootCmd.AddCommand(releaseCmd)
	rootCmd.AddCommand(readmeCmd)
	rootCmd.AddCommand(setTokenCmd)
}

func Execute() {
	err := rootCmd.Execute()
	cobra.CheckErr(err)
}
