// Package release automates the project's release process: cutting a
// release branch, fixing up the change log, opening and merging the pull
// request, tagging, and publishing the github release.
//
// The process is deliberately chatty and fatal. Each step either succeeds
// or chokes, printing what went wrong and undoing whatever cleanup actions
// earlier steps registered. There is no point limping onward with a half
// finished release.
package release

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/coreos/go-semver/semver"
	"github.com/go-git/go-git/v5"
	"github.com/google/go-github/v49/github"
	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"
)

const (
	tokenEnvVar    = "GITHUB_TOKEN"
	keyringService = "go-mailcheck-pm"
	keyringUser    = "github_token"
)

// githubToken locates the token used for github API calls. The GITHUB_TOKEN
// environment variable wins; failing that, the OS keychain entry written by
// StoreGithubToken is consulted.
func githubToken() (string, error) {
	if token := os.Getenv(tokenEnvVar); token != "" {
		return token, nil
	}

	token, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		return "", fmt.Errorf("%s is not set and the keychain has no stored token: %w",
			tokenEnvVar, err)
	}
	return token, nil
}

// StoreGithubToken saves a github API token in the OS keychain for later
// release runs.
func StoreGithubToken(token string) error {
	if err := keyring.Set(keyringService, keyringUser, token); err != nil {
		return fmt.Errorf("unable to store token in the keychain: %w", err)
	}
	return nil
}

// A Process walks a release through its steps. It carries the release
// Config plus the git and github handles the steps share.
type Process struct {
	Config

	gh     *github.Client
	repo   *git.Repository
	remote *git.Remote
	wc     *git.Worktree

	cleanupActions []func()
	addFiles       []string
}

// NewProcess builds a Process for starting the release of the given
// version.
func NewProcess(ctx context.Context, version string, cfg *Config) (*Process, error) {
	p, err := newProcess(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := p.completeConfig(version); err != nil {
		return nil, err
	}

	return p, nil
}

// NewProcessContinuation builds a Process for finishing a release already
// in progress. The version is recovered from the checked out release
// branch.
func NewProcessContinuation(ctx context.Context, cfg *Config) (*Process, error) {
	p, err := newProcess(ctx, cfg)
	if err != nil {
		return nil, err
	}

	headRef, err := p.repo.Head()
	if err != nil {
		p.Chokef("unable to find HEAD: %v", err)
	}

	const releasePrefix = "refs/heads/release-v"
	if !strings.HasPrefix(string(headRef.Name()), releasePrefix) {
		p.Choke("you must be on the release branch to finish the process")
	}

	version := string(headRef.Name()[len(releasePrefix):])
	if err := p.completeConfig(version); err != nil {
		return nil, err
	}

	return p, nil
}

func newProcess(ctx context.Context, cfg *Config) (*Process, error) {
	p := &Process{
		Config: *cfg,
	}

	if err := p.setupGithubClient(ctx); err != nil {
		return nil, err
	}
	p.SetupGitRepo()

	return p, nil
}

// completeConfig fills in the names derived from the version being
// released.
func (p *Process) completeConfig(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("release version %q is not a semantic version: %w", version, err)
	}

	p.Version = v
	p.Branch = "release-v" + v.String()
	p.Tag = "v" + v.String()
	p.Today = time.Now().Format("2006-01-02")

	return nil
}

func (p *Process) setupGithubClient(ctx context.Context) error {
	token, err := githubToken()
	if err != nil {
		return err
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	p.gh = github.NewClient(oauth2.NewClient(ctx, ts))

	return nil
}

// SetupGitRepo opens the repository in the current directory and grabs the
// origin remote and the working tree.
func (p *Process) SetupGitRepo() {
	repo, err := git.PlainOpen(".")
	if err != nil {
		p.Chokef("unable to open git repository at .: %v", err)
	}
	p.repo = repo

	remote, err := p.repo.Remote("origin")
	if err != nil {
		p.Chokef("unable to connect to remote origin: %v", err)
	}
	p.remote = remote

	wc, err := p.repo.Worktree()
	if err != nil {
		p.Chokef("unable to examine the working copy: %v", err)
	}
	p.wc = wc
}

// ToAdd queues a file to be committed by AddAndCommit.
func (p *Process) ToAdd(fn string) {
	p.addFiles = append(p.addFiles, fn)
}

// ForCleanup registers an action to undo a completed step if a later one
// chokes.
func (p *Process) ForCleanup(action func()) {
	p.cleanupActions = append(p.cleanupActions, action)
}

// Cleanup runs the registered cleanup actions, most recent first.
func (p *Process) Cleanup() {
	for i := len(p.cleanupActions) - 1; i >= 0; i-- {
		p.cleanupActions[i]()
	}
}

// Choke reports a fatal problem, undoes what can be undone, and exits.
func (p *Process) Choke(msg string) {
	_, _ = fmt.Fprintf(os.Stderr, "Failed: %s\n", msg)
	_, _ = fmt.Fprintln(os.Stderr, "Cancelling release.")
	p.Cleanup()
	os.Exit(1)
}

// Chokef is Choke with formatting.
func (p *Process) Chokef(f string, args ...any) {
	p.Choke(fmt.Sprintf(f, args...))
}
