package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/stats"
	"alcyxob/workout-tracker/internal/workoutlog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newSummaryCmd() *cobra.Command {
	var (
		day    string
		tzName string
		asJSON bool
	)

	summaryCmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Summarize a workout log as if it was logged on the given day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := time.Local
			if tzName != "" && !strings.EqualFold(tzName, "local") {
				var err error
				if loc, err = time.LoadLocation(tzName); err != nil {
					return fmt.Errorf("load timezone %q: %w", tzName, err)
				}
			}

			ref := time.Now().In(loc)
			if day != "" {
				parsed, err := time.ParseInLocation("2006-01-02", day, loc)
				if err != nil {
					return fmt.Errorf("failed to parse day: %w", err)
				}
				// noon keeps the entries inside the day whatever the zone
				ref = parsed.Add(12 * time.Hour)
			}

			raw, err := readLog(cmd, args)
			if err != nil {
				return err
			}
			entries, err := workoutlog.Parse(raw)
			if err != nil {
				return err
			}

			workouts := make([]domain.Workout, 0, len(entries))
			for _, e := range entries {
				workouts = append(workouts, *domain.NewWorkout(primitive.NilObjectID, e, ref))
			}
			today := stats.OnDay(workouts, ref, loc)
			dashboard := stats.BuildDashboard(today, workouts, ref, loc)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(dashboard)
			}

			header := color.New(color.FgGreen, color.Bold).SprintFunc()
			magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()

			fmt.Fprintf(out, "%s %s\n", header("Summary for"), dashboard.Date)
			fmt.Fprintf(out, "  Workouts: %d\n", dashboard.Count)
			fmt.Fprintf(out, "  Calories: %.1f\n", dashboard.TotalCalories)
			fmt.Fprintf(out, "  Average:  %.1f\n", dashboard.AvgCaloriesPerWorkout)

			fmt.Fprintln(out, header("Categories:"))
			for _, ct := range dashboard.PieChartData {
				fmt.Fprintf(out, "  • %s: %.1f\n", magenta(ct.Label), ct.Value)
			}

			fmt.Fprintln(out, header("Last 7 days:"))
			for _, d := range dashboard.TotalWeeksCaloriesBurnt.Days {
				fmt.Fprintf(out, "  %-5s %.1f\n", d.Label, d.Calories)
			}
			return nil
		},
	}

	summaryCmd.Flags().StringVarP(&day, "day", "d", "", "day the log was done, YYYY-MM-DD (default today)")
	summaryCmd.Flags().StringVar(&tzName, "tz", "Local", "IANA timezone for day boundaries")
	summaryCmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return summaryCmd
}
