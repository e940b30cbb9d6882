package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"headrev/internal/registry"
)

func newRemoteCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Manage named upstreams",
	}

	cmd.AddCommand(
		newRemoteAddCommand(opts),
		newRemoteRemoveCommand(opts),
	)
	return cmd
}

func newRemoteAddCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add or replace a named upstream",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, url := args[0], args[1]

			reg, err := registry.Load(opts.RegistryPath)
			if err != nil {
				return err
			}

			reg.Add(name, url)
			if err := registry.Save(opts.RegistryPath, reg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added upstream %s -> %s\n", name, url)
			return nil
		},
	}
}

func newRemoteRemoveCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a named upstream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			reg, err := registry.Load(opts.RegistryPath)
			if err != nil {
				return err
			}

			if err := reg.Remove(name); err != nil {
				return err
			}
			if err := registry.Save(opts.RegistryPath, reg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed upstream %s\n", name)
			return nil
		},
	}
}
