package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"headrev/internal/registry"
	"headrev/internal/tui"
)

func newPickCommand(opts *Options) *cobra.Command {
	var keep bool
	var depth int

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick an upstream interactively and print its HEAD commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.Load(opts.RegistryPath)
			if err != nil {
				return err
			}

			choice, err := tui.SelectUpstream(reg.All())
			if err != nil {
				if errors.Is(err, tui.ErrCancelled) {
					return nil
				}
				return err
			}

			return fetchAndPrint(cmd, opts, choice.URL, keep, depth)
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", true, "Leave the temporary clone on disk")
	cmd.Flags().IntVar(&depth, "depth", 1, "Clone depth")
	return cmd
}
