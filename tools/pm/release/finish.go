package release

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/google/go-github/v49/github"

	"github.com/zostay/go-mailcheck/tools/pm/changes"
)

// CaptureChangesInfo loads the change log bullets for this release into the
// process configuration for use in the release body later.
func (p *Process) CaptureChangesInfo() {
	changelog, err := os.Open(p.Changelog)
	if err != nil {
		p.Chokef("unable to open %s: %v", p.Changelog, err)
	}
	defer func() { _ = changelog.Close() }()

	section, err := changes.ExtractSection(changelog, "v"+p.Version.String())
	if err != nil {
		p.Chokef("unable to get log of changes: %v", err)
	}

	p.ChangesInfo = section
}

// CheckReadyForMerge ensures every status check the target branch requires
// has passed on the release branch.
func (p *Process) CheckReadyForMerge(ctx context.Context) {
	bp, _, err := p.gh.Repositories.GetBranchProtection(ctx, p.Owner, p.Project, p.TargetBranch)
	if err != nil {
		p.Chokef("unable to get protection for branch %s: %v", p.TargetBranch, err)
	}

	passage := map[string]bool{}
	for _, check := range bp.GetRequiredStatusChecks().Checks {
		passage[check.Context] = false
	}

	crs, _, err := p.gh.Checks.ListCheckRunsForRef(ctx, p.Owner, p.Project, p.Branch,
		&github.ListCheckRunsOptions{})
	if err != nil {
		p.Chokef("unable to list check runs for branch %s: %v", p.Branch, err)
	}

	for _, run := range crs.CheckRuns {
		passage[run.GetName()] =
			run.GetStatus() == "completed" &&
				run.GetConclusion() == "success"
	}

	for name, passed := range passage {
		if !passed {
			p.Chokef("cannot merge release branch because it has not passed check %q", name)
		}
	}
}

// MergePullRequest merges the release pull request into the target branch.
func (p *Process) MergePullRequest(ctx context.Context) {
	prs, _, err := p.gh.PullRequests.List(ctx, p.Owner, p.Project,
		&github.PullRequestListOptions{})
	if err != nil {
		p.Chokef("unable to list pull requests: %v", err)
	}

	prID := 0
	for _, pr := range prs {
		if pr.Head.GetRef() == p.Branch {
			prID = pr.GetNumber()
			break
		}
	}

	if prID == 0 {
		p.Chokef("cannot find pull request for branch %s", p.Branch)
	}

	m, _, err := p.gh.PullRequests.Merge(ctx, p.Owner, p.Project, prID,
		"Merging release branch.", &github.PullRequestOptions{})
	if err != nil {
		p.Chokef("unable to merge pull request %d: %v", prID, err)
	}

	if !m.GetMerged() {
		p.Chokef("failed to merge pull request %d", prID)
	}
}

// FetchTargetBranch brings the local target branch level with origin, which
// now has the merged release on it.
func (p *Process) FetchTargetBranch() {
	err := p.remote.Fetch(&git.FetchOptions{
		RefSpecs: []config.RefSpec{p.TargetBranchRefSpec()},
		Force:    true,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		p.Chokef("unable to fetch %s from origin: %v", p.TargetBranch, err)
	}
}

// TagRelease checks out the freshly merged target branch, tags it, and
// pushes the tag to origin.
func (p *Process) TagRelease() {
	err := p.wc.Checkout(&git.CheckoutOptions{
		Branch: p.TargetBranchRefName(),
	})
	if err != nil {
		p.Chokef("unable to switch to %s branch: %v", p.TargetBranch, err)
	}

	headRef, err := p.repo.Head()
	if err != nil {
		p.Chokef("unable to get HEAD ref of %s branch: %v", p.TargetBranch, err)
	}

	_, err = p.repo.CreateTag(p.Tag, headRef.Hash(), &git.CreateTagOptions{
		Message: fmt.Sprintf("Release tag for v%s", p.Version.String()),
	})
	if err != nil {
		p.Chokef("unable to tag release %s: %v", p.Tag, err)
	}

	p.ForCleanup(func() { _ = p.repo.DeleteTag(p.Tag) })

	err = p.repo.Push(&git.PushOptions{
		RemoteName: "origin",
		RefSpecs:   []config.RefSpec{p.TagRefSpec()},
	})
	if err != nil {
		p.Chokef("unable to push tags to origin: %v", err)
	}

	p.ForCleanup(func() {
		_ = p.remote.Push(&git.PushOptions{
			RemoteName: "origin",
			RefSpecs:   []config.RefSpec{p.TagRefSpec()},
			Prune:      true,
		})
	})
}

// CreateRelease publishes the github release for the new tag, with the
// change log section as its body.
func (p *Process) CreateRelease(ctx context.Context) {
	releaseName := fmt.Sprintf("Release v%s", p.Version)
	_, _, err := p.gh.Repositories.CreateRelease(ctx, p.Owner, p.Project, &github.RepositoryRelease{
		TagName:              github.String(p.Tag),
		Name:                 github.String(releaseName),
		Body:                 github.String(p.ChangesInfo),
		Draft:                github.Bool(false),
		Prerelease:           github.Bool(false),
		GenerateReleaseNotes: github.Bool(false),
		MakeLatest:           github.String("true"),
	})
	if err != nil {
		p.Chokef("failed to create release %q: %v", releaseName, err)
	}
}
