package cli

import (
	"encoding/json"
	"fmt"

	"alcyxob/workout-tracker/internal/workoutlog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var asJSON bool

	parseCmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a workout log and print its entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readLog(cmd, args)
			if err != nil {
				return err
			}

			entries, err := workoutlog.Parse(raw)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(out, "No entries.")
				return nil
			}

			cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
			yellow := color.New(color.FgYellow).SprintFunc()
			green := color.New(color.FgGreen).SprintFunc()

			var total float64
			for i, e := range entries {
				fmt.Fprintf(out, "%d. %s %s: %d x %d @ %g kg  %s\n",
					i+1, cyan("#"+e.Category), yellow(e.WorkoutName), e.Sets, e.Reps, e.Weight,
					green(fmt.Sprintf("%.1f kcal", e.CaloriesBurned)))
				total += e.CaloriesBurned
			}
			fmt.Fprintf(out, "Total: %s\n", green(fmt.Sprintf("%.1f kcal", total)))
			return nil
		},
	}

	parseCmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON")
	return parseCmd
}
