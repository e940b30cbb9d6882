package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"headrev/internal/checkout"
	"headrev/internal/registry"
)

func resolveUpstream(opts *Options, name string) (string, error) {
	reg, err := registry.Load(opts.RegistryPath)
	if err != nil {
		return "", err
	}
	return reg.Resolve(name)
}

// fetchAndPrint runs the clone-and-query operation and writes the HEAD
// hash as the single stdout line.
func fetchAndPrint(cmd *cobra.Command, opts *Options, url string, keep bool, depth int) error {
	res, err := checkout.Fetch(url, checkout.Options{Depth: depth, Keep: keep})
	if err != nil {
		return err
	}

	if opts.Verbose && res.Dir != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "clone left at %s\n", res.Dir)
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Head)
	return nil
}
