package cli

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"headrev/internal/registry"
)

func newListCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List configured upstreams",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.Load(opts.RegistryPath)
			if err != nil {
				return err
			}

			items := reg.All()
			if len(args) > 0 {
				pattern := strings.Join(args, " ")
				names := make([]string, 0, len(items))
				for _, u := range items {
					names = append(names, u.Name)
				}

				matches := fuzzy.FindFrom(pattern, stringSource(names))
				filtered := make([]registry.Upstream, 0, len(matches))
				for _, match := range matches {
					filtered = append(filtered, items[match.Index])
				}
				items = filtered
			}

			for _, u := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", u.Name, u.URL)
			}
			return nil
		},
	}

	return cmd
}

type stringSource []string

func (s stringSource) Len() int {
	return len(s)
}

func (s stringSource) String(i int) string {
	return s[i]
}
