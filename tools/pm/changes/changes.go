// Package changes knows the house change log format and how to check and
// mine it.
//
// A change log is a stack of releases, newest first. Each release is a
// heading line of the form "vX.Y.Z  YYYY-MM-DD" (note the two spaces),
// followed by a blank line, followed by a contiguous run of bullets:
//
//	WIP  TBD
//
//	v0.2.0  2026-03-01
//
//	 * Added the thing.
//	 * Fixed the other thing,
//	   which wraps onto a continuation line.
//
//	v0.1.0  2026-01-15
//
//	 * Initial release.
//
// Work not yet released collects under a "WIP" or "WIP  TBD" line, which
// must be the first line of the file. Releasing rewrites that line into a
// real heading.
package changes

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/coreos/go-semver/semver"
)

// Mode selects how strictly Lint treats the WIP section.
type Mode int

const (
	// Standard accepts a change log with or without a WIP section.
	Standard Mode = iota

	// PreRelease requires the WIP section to be present, since starting a
	// release is what rewrites it.
	PreRelease

	// Release forbids the WIP section, which must already have been
	// rewritten into a version heading.
	Release
)

// A Problem is one complaint about one line of a change log.
type Problem struct {
	Line    int
	Message string
}

// A LintError is the collected complaints from a Lint pass that found any.
type LintError struct {
	Problems []Problem
}

func (e *LintError) Error() string {
	buf := &strings.Builder{}
	_, _ = fmt.Fprint(buf, "change log failed lint checks:")
	for _, p := range e.Problems {
		_, _ = fmt.Fprintf(buf, "\n * Line %d: %s", p.Line, p.Message)
	}
	return buf.String()
}

var headingLine = regexp.MustCompile(`^v(\d\S+) {2}(20\d\d-\d\d-\d\d)$`)

// Lint reads a change log from r and checks it against the house format.
// When any line fails a check, the returned error is a *LintError listing
// every problem found.
func Lint(r io.Reader, mode Mode) error {
	l := &linter{mode: mode}

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		l.line(n, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return err
	}

	if len(l.problems) > 0 {
		return &LintError{l.problems}
	}
	return nil
}

type linter struct {
	mode Mode

	prevVersion *semver.Version
	prevDate    string
	prevSection int

	prevBlank  bool
	prevBullet bool

	problems []Problem
}

func (l *linter) fail(n int, msg string) {
	l.problems = append(l.problems, Problem{n, msg})
}

func (l *linter) failf(n int, f string, args ...any) {
	l.fail(n, fmt.Sprintf(f, args...))
}

func (l *linter) line(n int, text string) {
	blank, bullet := false, false
	defer func() {
		l.prevBlank = blank
		l.prevBullet = bullet
	}()

	if text == "WIP" || text == "WIP  TBD" {
		if n > 1 {
			l.fail(n, "WIP entry after line 1")
		}
		if l.mode == Release {
			l.fail(n, "WIP entry still present during release")
		}
		l.prevSection = n
		return
	}

	if l.mode == PreRelease && n == 1 {
		l.fail(n, "change log must start with a WIP entry to begin a release")
	}

	if m := headingLine.FindStringSubmatch(text); m != nil {
		l.heading(n, m[1], m[2])
		return
	}

	if strings.HasPrefix(text, " * ") {
		switch {
		case l.prevSection == 0:
			l.fail(n, "bullet appears before any heading")
		case n-1 == l.prevSection:
			l.fail(n, "missing blank line between heading and first bullet")
		case n > l.prevSection+2 && l.prevBlank:
			l.fail(n, "extra blank line before bullet")
		}
		bullet = true
		return
	}

	if text == "" {
		if l.prevBlank {
			l.fail(n, "consecutive blank lines")
		}
		blank = true
		return
	}

	if strings.TrimSpace(text) == "" {
		l.fail(n, "line looks blank but contains whitespace")
		return
	}

	if strings.HasPrefix(text, "   ") {
		if l.prevBullet {
			bullet = true
		} else {
			l.fail(n, "continuation line without a bullet to continue")
		}
		return
	}

	l.fail(n, "unrecognized line")
}

// heading checks one version heading. Headings run newest first, so each
// version and date must be older than the one above it.
func (l *linter) heading(n int, ver, date string) {
	defer func() {
		l.prevDate = date
		l.prevSection = n
	}()

	version, err := semver.NewVersion(ver)
	if err != nil {
		l.failf(n, "unparseable version number %q in heading", ver)
		return
	}
	defer func() { l.prevVersion = version }()

	if l.prevVersion != nil && l.prevVersion.LessThan(*version) {
		l.failf(n, "version v%s is newer than v%s above it (line %d)",
			version, l.prevVersion, l.prevSection)
	}

	if l.prevDate != "" && l.prevDate < date {
		l.failf(n, "date %s is later than %s above it (line %d)",
			date, l.prevDate, l.prevSection)
	}

	if n != 1 && !l.prevBlank {
		l.fail(n, "heading missing blank line before it")
	}
}

// ExtractSection returns the bullet lines recorded under the heading for
// version, given with its leading v, like "v1.2.3". Blank lines inside the
// section are dropped; continuation lines keep their indent.
func ExtractSection(r io.Reader, version string) (string, error) {
	var (
		buf     strings.Builder
		started bool
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()

		if !started {
			if strings.HasPrefix(line, version+"  ") {
				started = true
			}
			continue
		}

		if headingLine.MatchString(line) {
			break
		}
		if line == "" {
			continue
		}

		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return "", err
	}

	if !started {
		return "", fmt.Errorf("no change log section found for version %s", version)
	}
	return buf.String(), nil
}
