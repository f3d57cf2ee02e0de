package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/redneckbeard/rangedint/table"
)

var (
	verbose   bool
	tablePath string

	logger = zap.NewNop()
)

// newLogger builds the diagnostic logger. It writes to stderr so generated
// source on stdout is never interleaved with log lines.
var newLogger = func(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

var rootCmd = &cobra.Command{
	Use:   "rangedint",
	Short: "Generate clamped integer types for Go",
	Long: `rangedint emits Go declarations for "ranged integer" types: structs wrapping
an int that is clamped to a closed interval and starts from a fixed default.
The built-in table describes the Kawai K5000 patch parameters; pass --table
to generate from a YAML file instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadTable() ([]table.TypeSpec, error) {
	if tablePath == "" {
		return table.Builtin(), nil
	}
	logger.Debug("loading table", zap.String("path", tablePath))
	return table.LoadFile(tablePath)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each generation step to stderr")
	rootCmd.PersistentFlags().StringVarP(&tablePath, "table", "f", "", "YAML table of types (defaults to the built-in K5000 table)")
}
