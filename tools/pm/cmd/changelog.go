package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailcheck/tools/pm/changes"
	"github.com/zostay/go-mailcheck/tools/pm/release"
)

var (
	changelogCmd = &cobra.Command{
		Use:   "changelog",
		Short: "commands related to the change log",
	}

	lintChangelogCmd = &cobra.Command{
		Use:   "lint",
		Short: "Check the change log for formatting problems",
		Args:  cobra.NoArgs,
		Run:   LintChangelog,
	}

	extractChangelogCmd = &cobra.Command{
		Use:   "extract <version>",
		Short: "Print the change log bullets for the given version",
		Args:  cobra.ExactArgs(1),
		Run:   ExtractChangelog,
	}

	forRelease    bool
	forPreRelease bool
)

func init() {
	lintChangelogCmd.Flags().BoolVarP(&forRelease, "release", "r", false, "require the WIP section to be resolved")
	lintChangelogCmd.Flags().BoolVarP(&forPreRelease, "pre-release", "p", false, "require the WIP section to be present")

	changelogCmd.AddCommand(lintChangelogCmd)
	changelogCmd.AddCommand(extractChangelogCmd)
}

func lintMode() changes.Mode {
	switch {
	case forRelease:
		return changes.Release
	case forPreRelease:
		return changes.PreRelease
	}
	return changes.Standard
}

func openChangelog() *os.File {
	changelog, err := os.Open(release.MailcheckConfig.Changelog)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "unable to open %s: %v\n", release.MailcheckConfig.Changelog, err)
		os.Exit(1)
	}
	return changelog
}

func LintChangelog(_ *cobra.Command, _ []string) {
	changelog := openChangelog()
	defer func() { _ = changelog.Close() }()

	err := changes.Lint(changelog, lintMode())
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func ExtractChangelog(_ *cobra.Command, args []string) {
	changelog := openChangelog()
	defer func() { _ = changelog.Close() }()

	section, err := changes.ExtractSection(changelog, args[0])
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to read change log section: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(section)
}
