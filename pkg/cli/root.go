package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"headrev/internal/config"
	"headrev/internal/registry"
)

type Options struct {
	RegistryPath string
	Verbose      bool
	Quiet        bool
}

var Version = "dev"

func Execute() error {
	opts := &Options{}
	root := NewRootCommand(opts)
	return root.Execute()
}

func NewRootCommand(opts *Options) *cobra.Command {
	var keep bool
	var depth int

	root := &cobra.Command{
		Use:   "headrev [upstream]",
		Short: "Print the HEAD commit of an upstream repository",
		Long: "headrev shallow-clones an upstream repository into a fresh temporary\n" +
			"directory and prints the HEAD commit hash of the clone.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			name := cfg.DefaultUpstream
			if name == "" {
				name = registry.DefaultName
			}
			if len(args) > 0 {
				name = args[0]
			}

			if !cmd.Flags().Changed("keep") && cfg.KeepClones != nil {
				keep = *cfg.KeepClones
			}
			if !cmd.Flags().Changed("depth") && cfg.CloneDepth > 0 {
				depth = cfg.CloneDepth
			}

			url, err := resolveUpstream(opts, name)
			if err != nil {
				return err
			}
			return fetchAndPrint(cmd, opts, url, keep, depth)
		},
	}

	root.PersistentFlags().StringVar(&opts.RegistryPath, "config", "", "Upstreams file path")
	root.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose output")
	root.PersistentFlags().BoolVar(&opts.Quiet, "quiet", false, "Suppress non-error output")

	root.Flags().BoolVar(&keep, "keep", true, "Leave the temporary clone on disk")
	root.Flags().IntVar(&depth, "depth", 1, "Clone depth")

	root.AddCommand(
		newListCommand(opts),
		newRemoteCommand(opts),
		newPickCommand(opts),
	)

	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("headrev %s\n", Version))

	return root
}

func ExitWithError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
