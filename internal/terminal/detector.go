// Package terminal decides whether the soundex CLI is talking to a person at
// a terminal and whether its output may carry ANSI colors.
package terminal

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"TRAVIS",                 // Travis CI
	"CIRCLECI",               // Circle CI
	"JENKINS_URL",            // Jenkins
	"BUILD_NUMBER",           // Jenkins/TeamCity/etc
	"GITLAB_CI",              // GitLab CI
	"BUILDKITE",              // Buildkite
	"TF_BUILD",               // Azure DevOps
}

// colorTerminals lists TERM values (or prefixes) known to render basic ANSI colors.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"ansi",
	"linux",
	"cygwin",
	"putty",
}

// fdWriter is satisfied by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
// Buffers and pipes are never terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsCIEnvironment reports whether a CI system is driving the process.
// CI=false, CI=0 and CI=no are not treated as CI.
func IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if envVar == "CI" {
			return !isFalsy(value)
		}
		return true
	}
	return false
}

// termSupportsColor checks the TERM environment variable.
func termSupportsColor() bool {
	t := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if t == "" || t == "dumb" {
		return false
	}
	for _, colorTerm := range colorTerminals {
		if t == colorTerm || strings.HasPrefix(t, colorTerm+"-") {
			return true
		}
	}
	return false
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func isFalsy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "false", "no":
		return true
	default:
		return false
	}
}
