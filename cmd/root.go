package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stefanomuraro/design-patterns/internal/demo"
	"github.com/stefanomuraro/design-patterns/pkg/logging"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands.
// Bare invocation walks through every demo in order.
var rootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "A sampler of six classic design patterns",
	Long: `patterns walks through six classic object-oriented design patterns
(Singleton, Prototype, Adapter, Decorator, State, Strategy), each implemented
as a minimal self-contained example, and prints their results to the console.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. an unknown demo in a selection)
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelWarn
		if verbose {
			level = logging.LevelDebug
		}
		logging.Init(level, cmd.ErrOrStderr())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return demo.RunAll(cmd.OutOrStdout(), demo.All())
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "patterns version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
}
