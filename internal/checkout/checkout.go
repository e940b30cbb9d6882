// Package checkout implements the clone-and-query operation: a fresh
// shallow clone of an upstream repository and the resolution of its
// HEAD commit.
package checkout

import (
	"fmt"
	"os"

	"headrev/internal/gitcmd"
)

const DefaultDepth = 1

type Options struct {
	// Depth is the clone depth; zero means DefaultDepth.
	Depth int
	// Keep leaves the temporary clone on disk after the hash has been
	// resolved. CI pipelines may inspect the leftover checkout, so the
	// default invocation keeps it.
	Keep bool
}

type Result struct {
	URL  string
	Dir  string
	Head string
}

// Fetch clones repoURL into a fresh temporary directory and resolves the
// HEAD commit of the clone. The directory is removed only when the clone
// and the resolution both succeeded and opts.Keep is false; on failure it
// is left as-is for inspection.
func Fetch(repoURL string, opts Options) (Result, error) {
	depth := opts.Depth
	if depth == 0 {
		depth = DefaultDepth
	}

	dir, err := os.MkdirTemp("", "headrev-*")
	if err != nil {
		return Result{}, fmt.Errorf("create temp dir: %w", err)
	}

	if err := gitcmd.Clone(repoURL, dir, depth); err != nil {
		return Result{}, err
	}

	head, err := gitcmd.HeadCommit(dir)
	if err != nil {
		return Result{}, err
	}

	if !opts.Keep {
		if err := os.RemoveAll(dir); err != nil {
			return Result{}, fmt.Errorf("remove temp dir: %w", err)
		}
		dir = ""
	}

	return Result{URL: repoURL, Dir: dir, Head: head}, nil
}
