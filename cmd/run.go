package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stefanomuraro/design-patterns/internal/config"
	"github.com/stefanomuraro/design-patterns/internal/demo"
)

func newRunCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run a selection of pattern demos",
		Long: `Run executes pattern demos in the order given. With no arguments it runs
all six demos, matching the bare invocation. A selection can also come from a
YAML file with a top-level "demos" list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := resolveSelection(args, configPath)
			if err != nil {
				return err
			}
			return demo.RunAll(cmd.OutOrStdout(), selection)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file selecting which demos run")
	return cmd
}

// resolveSelection turns command arguments or a config file into an ordered
// demo list. Arguments and --config are mutually exclusive.
func resolveSelection(args []string, configPath string) ([]demo.Demo, error) {
	if len(args) > 0 && configPath != "" {
		return nil, fmt.Errorf("demo arguments and --config are mutually exclusive")
	}

	switch {
	case len(args) > 0:
		cfg := config.Config{Demos: args}
		return cfg.Selection()
	case configPath != "":
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		return cfg.Selection()
	default:
		return config.Default().Selection()
	}
}
