package cmd

import (
	"os"

	"github.com/alecthomas/chroma/quick"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/redneckbeard/rangedint/emitter"
)

var (
	Target, Package string
	highlight       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Emit Go declarations for the table",
	Long: `Emits one block of Go declarations per table entry, in table order: the type,
its bounds and default as constants, a ranged.Range, New<T>, <T>Of and
Parse<T>. The table is validated before anything is written, so an invalid
table produces no output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := loadTable()
		if err != nil {
			return err
		}
		src, err := emitter.Source(specs, emitter.Options{Package: Package, Logger: logger})
		if err != nil {
			return err
		}
		if Target == "" {
			if highlight {
				return quick.Highlight(cmd.OutOrStdout(), string(src), "go", "terminal256", "monokai")
			}
			_, err = cmd.OutOrStdout().Write(src)
			return err
		}
		if err := os.WriteFile(Target, src, 0644); err != nil {
			return err
		}
		logger.Info("wrote generated source", zap.String("target", Target), zap.Int("types", len(specs)))
		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "Wrote %d types to %s\n", len(specs), Target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&Target, "target", "t", "", "Destination for resulting Go (defaults to stdout)")
	generateCmd.Flags().StringVarP(&Package, "package", "p", emitter.DefaultPackage, "Package clause of the generated file")
	generateCmd.Flags().BoolVar(&highlight, "highlight", false, "Syntax highlight Go written to stdout")
}
