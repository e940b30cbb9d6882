// Package testutil provides helpers for building fixture repositories
// and stubbing the git binary in tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// CreateUpstreamRepo creates a git repository with a single commit and
// returns its path and the commit hash. Clone it via "file://" to get a
// true shallow clone.
func CreateUpstreamRepo(t *testing.T) (string, string) {
	t.Helper()
	repoPath := t.TempDir()

	repo, err := git.PlainInit(repoPath, false)
	if err != nil {
		t.Fatalf("failed to init git repo: %v", err)
	}

	noticeFile := filepath.Join(repoPath, "NOTICE")
	if err := os.WriteFile(noticeFile, []byte("fixture upstream\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture file: %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}

	if _, err := wt.Add("NOTICE"); err != nil {
		t.Fatalf("failed to add file: %v", err)
	}

	hash, err := wt.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}

	return repoPath, hash.String()
}

// AddCommit appends a commit to a fixture repository and returns the new
// head hash.
func AddCommit(t *testing.T, repoPath, fileName, content string) string {
	t.Helper()

	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		t.Fatalf("failed to open git repo: %v", err)
	}

	if err := os.WriteFile(filepath.Join(repoPath, fileName), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}

	if _, err := wt.Add(fileName); err != nil {
		t.Fatalf("failed to add file: %v", err)
	}

	hash, err := wt.Commit(fmt.Sprintf("Add %s", fileName), &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}

	return hash.String()
}

// StubGit installs a fake git ahead of the real one on PATH. Every
// invocation is appended to the returned log file (one line of arguments
// per call) before body runs. Not supported on Windows.
func StubGit(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	logPath := filepath.Join(dir, "git.log")

	script := fmt.Sprintf("#!/bin/sh\necho \"$@\" >> %q\n%s\n", logPath, body)
	if err := os.WriteFile(filepath.Join(dir, "git"), []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write git stub: %v", err)
	}

	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return logPath
}

// StubGitCalls reads the stub log and returns one entry per invocation.
func StubGitCalls(t *testing.T, logPath string) []string {
	t.Helper()

	data, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("failed to read git stub log: %v", err)
	}

	var calls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			calls = append(calls, line)
		}
	}
	return calls
}
