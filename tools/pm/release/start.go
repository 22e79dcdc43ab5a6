package release

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/google/go-github/v49/github"

	"github.com/zostay/go-mailcheck/tools/pm/changes"
)

// CheckGitCleanliness makes sure the working copy is on the target branch,
// level with origin, with nothing uncommitted. Releases only start from a
// clean slate.
func (p *Process) CheckGitCleanliness() {
	headRef, err := p.repo.Head()
	if err != nil {
		p.Chokef("unable to find HEAD: %v", err)
	}

	if headRef.Name() != p.TargetBranchRefName() {
		p.Chokef("you must checkout %s to release", p.TargetBranch)
	}

	remoteRefs, err := p.remote.List(&git.ListOptions{})
	if err != nil {
		p.Chokef("unable to list remote git references: %v", err)
	}

	var targetRef *plumbing.Reference
	for _, ref := range remoteRefs {
		if ref.Name() == p.TargetBranchRefName() {
			targetRef = ref
			break
		}
	}

	if targetRef == nil {
		p.Chokef("origin has no %s branch", p.TargetBranch)
	}

	if headRef.Hash() != targetRef.Hash() {
		p.Choke("local copy differs from remote, you need to push or pull")
	}

	stat, err := p.wc.Status()
	if err != nil {
		p.Chokef("unable to check working copy status: %v", err)
	}

	if !stat.IsClean() {
		p.Choke("your working copy is dirty")
	}
}

// LintChangelog checks the change log in the given mode and chokes on any
// problem it finds.
func (p *Process) LintChangelog(mode changes.Mode) {
	changelog, err := os.Open(p.Changelog)
	if err != nil {
		p.Chokef("unable to open %s: %v", p.Changelog, err)
	}
	defer func() { _ = changelog.Close() }()

	if err := changes.Lint(changelog, mode); err != nil {
		p.Chokef("%v", err)
	}
}

// MakeReleaseBranch creates the release branch at the current HEAD and
// checks it out.
func (p *Process) MakeReleaseBranch() {
	err := p.wc.Checkout(&git.CheckoutOptions{
		Branch: p.BranchRefName(),
		Create: true,
	})
	if err != nil {
		p.Chokef("unable to create release branch %s: %v", p.Branch, err)
	}

	p.ForCleanup(func() {
		_ = p.wc.Checkout(&git.CheckoutOptions{
			Branch: p.TargetBranchRefName(),
		})
		_ = p.repo.Storer.RemoveReference(p.BranchRefName())
	})
}

// FixupChangelog rewrites the change log's WIP line into the heading for
// the version being released and queues the file for commit.
func (p *Process) FixupChangelog() {
	r, err := os.Open(p.Changelog)
	if err != nil {
		p.Chokef("unable to open %s: %v", p.Changelog, err)
	}

	rewritten := p.Changelog + ".new"
	w, err := os.Create(rewritten)
	if err != nil {
		p.Chokef("unable to create %s: %v", rewritten, err)
	}

	p.ForCleanup(func() { _ = os.Remove(rewritten) })

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "WIP" || line == "WIP  TBD" {
			_, _ = fmt.Fprintf(w, "v%s  %s\n", p.Version, p.Today)
		} else {
			_, _ = fmt.Fprintln(w, line)
		}
	}

	_ = r.Close()
	if err := w.Close(); err != nil {
		p.Chokef("unable to close %s: %v", rewritten, err)
	}

	if err := os.Rename(rewritten, p.Changelog); err != nil {
		p.Chokef("unable to overwrite %s with %s: %v", p.Changelog, rewritten, err)
	}

	p.ToAdd(p.Changelog)
}

// AddAndCommit commits the queued files to the release branch.
func (p *Process) AddAndCommit() {
	for _, fn := range p.addFiles {
		if _, err := p.wc.Add(fn); err != nil {
			p.Chokef("error adding file %s to git: %v", fn, err)
		}
	}

	_, err := p.wc.Commit("releng: v"+p.Version.String(), &git.CommitOptions{})
	if err != nil {
		p.Chokef("error committing changes to git: %v", err)
	}
}

// PushReleaseBranch pushes the release branch to origin.
func (p *Process) PushReleaseBranch() {
	err := p.repo.Push(&git.PushOptions{
		RemoteName: "origin",
		RefSpecs:   []config.RefSpec{p.BranchRefSpec()},
	})
	if err != nil {
		p.Chokef("error pushing changes to github: %v", err)
	}
}

// CreateGithubPullRequest opens the pull request that merges the release
// branch into the target branch.
func (p *Process) CreateGithubPullRequest(ctx context.Context) {
	_, _, err := p.gh.PullRequests.Create(ctx, p.Owner, p.Project, &github.NewPullRequest{
		Title: github.String("Release v" + p.Version.String()),
		Head:  github.String(p.Branch),
		Base:  github.String(p.TargetBranch),
		Body: github.String(fmt.Sprintf(
			"Pull request to release v%s of %s.", p.Version, p.Project)),
	})
	if err != nil {
		p.Chokef("unable to create pull request: %v", err)
	}
}
