package githubutils

import (
	"os"
	"os/exec"
	"strings"
)

// TokenSource names where a token can come from when --token is left out:
// GITHUB_TOKEN, which the stats script reads, or the GitHub CLI, which can
// fill GITHUB_TOKEN. It returns "" when neither is available and never
// returns the token value itself.
func TokenSource() string {
	if os.Getenv("GITHUB_TOKEN") != "" {
		return "GITHUB_TOKEN"
	}
	if ghAuthenticated() {
		return "gh auth token"
	}
	return ""
}

// ghAuthenticated reports whether the GitHub CLI is installed and logged in.
var ghAuthenticated = func() bool {
	ghPath, err := exec.LookPath("gh")
	if err != nil || ghPath == "" {
		return false
	}
	out, err := exec.Command("gh", "auth", "token").Output()
	return err == nil && strings.TrimSpace(string(out)) != ""
}

// TokenNote is the hint shown next to the token field.
func TokenNote() string {
	switch src := TokenSource(); src {
	case "":
		return ""
	case "GITHUB_TOKEN":
		return "(GITHUB_TOKEN is set; leave blank to use it)"
	default:
		return "(or run: export GITHUB_TOKEN=$(" + src + "))"
	}
}
