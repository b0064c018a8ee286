package stats

import (
	"time"

	"alcyxob/workout-tracker/internal/domain"
)

// WeekChart is the trailing series split into parallel label/value arrays,
// the shape chart widgets consume.
type WeekChart struct {
	Weeks          []string   `json:"weeks"`
	CaloriesBurned []float64  `json:"caloriesBurned"`
	Days           []DayTotal `json:"days"`
}

// Dashboard is the composite summary shown on the user's home screen.
type Dashboard struct {
	Totals
	TotalWeeksCaloriesBurnt WeekChart       `json:"totalWeeksCaloriesBurnt"`
	PieChartData            []CategoryTotal `json:"pieChartData"`
	Date                    string          `json:"date"`
}

// BuildDashboard summarizes today's workouts and the trailing week ending on
// ref. today should already be limited to ref's day.
func BuildDashboard(today, week []domain.Workout, ref time.Time, loc *time.Location) Dashboard {
	series := WeeklySeries(week, ref, loc)
	chart := WeekChart{
		Weeks:          make([]string, len(series)),
		CaloriesBurned: make([]float64, len(series)),
		Days:           series,
	}
	for i, d := range series {
		chart.Weeks[i] = d.Label
		chart.CaloriesBurned[i] = d.Calories
	}

	return Dashboard{
		Totals:                  Summarize(today),
		TotalWeeksCaloriesBurnt: chart,
		PieChartData:            CategoryBreakdown(today),
		Date:                    ref.In(loc).Format(dayKeyLayout),
	}
}
