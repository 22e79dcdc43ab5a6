package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailcheck/tools/pm/changes"
	"github.com/zostay/go-mailcheck/tools/pm/release"
)

var (
	releaseCmd = &cobra.Command{
		Use:   "release",
		Short: "commands related to software releases",
	}

	startReleaseCmd = &cobra.Command{
		Use:   "start <version>",
		Short: "Start releasing the given version",
		Args:  cobra.ExactArgs(1),
		RunE:  StartRelease,
	}

	finishReleaseCmd = &cobra.Command{
		Use:   "finish",
		Short: "Complete the release in progress",
		Args:  cobra.NoArgs,
		RunE:  FinishRelease,
	}

	targetBranch string
)

func init() {
	releaseCmd.AddCommand(startReleaseCmd)
	releaseCmd.AddCommand(finishReleaseCmd)

	releaseCmd.PersistentFlags().StringVar(&targetBranch, "target-branch",
		release.MailcheckConfig.TargetBranch, "the branch to merge into during release")
}

func MakeReleaseConfig() *release.Config {
	cfg := release.MailcheckConfig
	cfg.TargetBranch = targetBranch
	return &cfg
}

func StartRelease(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	process, err := release.NewProcess(ctx, args[0], MakeReleaseConfig())
	if err != nil {
		return err
	}

	process.CheckGitCleanliness()
	process.LintChangelog(changes.PreRelease)
	process.MakeReleaseBranch()
	process.FixupChangelog()
	process.LintChangelog(changes.Release)
	process.AddAndCommit()
	process.PushReleaseBranch()
	process.CreateGithubPullRequest(ctx)

	return nil
}

func FinishRelease(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	process, err := release.NewProcessContinuation(ctx, MakeReleaseConfig())
	if err != nil {
		return err
	}

	process.CaptureChangesInfo()
	process.CheckReadyForMerge(ctx)
	process.MergePullRequest(ctx)
	process.FetchTargetBranch()
	process.TagRelease()
	process.CreateRelease(ctx)

	return nil
}
