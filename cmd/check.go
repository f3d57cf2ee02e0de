package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/redneckbeard/rangedint/table"
)

var errCheckFailed = errors.New("table check failed")

func checkSpec(cmd *cobra.Command, s table.TypeSpec) bool {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Checking '%s': ", s.Name)
	if !s.InRange(s.Default) {
		color.New(color.FgRed).Fprintf(out, "FAIL\n    default %d is outside %s; New%s will panic\n", s.Default, s.Interval(), s.Name)
		return false
	}
	color.New(color.FgGreen).Fprintln(out, "PASS")
	return true
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the table",
	Long: `Validates the table the way generate does, then checks that every default
lies inside its range. An out-of-range default does not stop generation; the
generated New<T> constructor panics instead. check reports it ahead of time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := loadTable()
		if err != nil {
			return err
		}
		if err := table.Validate(specs); err != nil {
			return err
		}
		var passes, fails int
		for _, s := range specs {
			if checkSpec(cmd, s) {
				passes++
			} else {
				fails++
			}
		}
		summary := fmt.Sprintf("\n%d passing types, %d failures\n", passes, fails)
		if fails > 0 {
			color.New(color.FgRed).Fprint(cmd.OutOrStdout(), summary)
			return fmt.Errorf("%w: %d of %d defaults out of range", errCheckFailed, fails, len(specs))
		}
		color.New(color.FgGreen).Fprint(cmd.OutOrStdout(), summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
