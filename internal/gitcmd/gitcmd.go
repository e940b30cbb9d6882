// Package gitcmd wraps the git command-line tool.
package gitcmd

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Clone performs a shallow clone of repoURL into dest. Depth values
// below 1 are treated as 1.
func Clone(repoURL, dest string, depth int) error {
	if depth < 1 {
		depth = 1
	}
	_, err := runGit("", "clone", "--quiet", "--depth", strconv.Itoa(depth), repoURL, dest)
	return err
}

// HeadCommit resolves HEAD to its commit hash in the repository at repoPath.
func HeadCommit(repoPath string) (string, error) {
	out, err := runGit(repoPath, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func runGit(workingDir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	if workingDir != "" {
		cmd.Dir = workingDir
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}

	return stdout.String(), nil
}
