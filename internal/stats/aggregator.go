// Package stats summarizes stored workouts for the dashboard.
// Every function here is pure: reference time and location are always
// passed in, nothing reads the wall clock.
package stats

import (
	"strconv"
	"time"

	"alcyxob/workout-tracker/internal/domain"
)

// SeriesDays is the length of the trailing calorie series.
const SeriesDays = 7

const dayKeyLayout = "2006-01-02"

// Totals are the range-level figures of a set of workouts.
type Totals struct {
	TotalCalories         float64 `json:"totalCaloriesBurnt"`
	Count                 int     `json:"totalWorkouts"`
	AvgCaloriesPerWorkout float64 `json:"avgCaloriesBurntPerWorkout"`
}

// CategoryTotal is one slice of the category pie chart.
type CategoryTotal struct {
	ID    int     `json:"id"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// DayTotal is one point of the trailing calorie series.
type DayTotal struct {
	Label    string  `json:"label"`
	Date     string  `json:"date"`
	Calories float64 `json:"caloriesBurned"`
}

// DayBounds returns [start, end) of the calendar day containing t in loc.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// SeriesBounds returns [start, end) covering the SeriesDays days ending with
// the day of ref.
func SeriesBounds(ref time.Time, loc *time.Location) (time.Time, time.Time) {
	start, end := DayBounds(ref, loc)
	return start.AddDate(0, 0, -(SeriesDays - 1)), end
}

// Summarize totals the calories of records. The average is 0 for an empty
// set, never NaN.
func Summarize(records []domain.Workout) Totals {
	var total float64
	for _, r := range records {
		total += r.CaloriesBurned
	}
	return Totals{
		TotalCalories:         total,
		Count:                 len(records),
		AvgCaloriesPerWorkout: Average(total, len(records)),
	}
}

// Average returns total/count, or 0 when count is 0.
func Average(total float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return total / float64(count)
}

// CategoryBreakdown sums calories per category. Categories are emitted in
// order of first appearance and numbered from 0.
func CategoryBreakdown(records []domain.Workout) []CategoryTotal {
	breakdown := []CategoryTotal{}
	index := make(map[string]int)
	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(breakdown)
			index[r.Category] = i
			breakdown = append(breakdown, CategoryTotal{ID: i, Label: r.Category})
		}
		breakdown[i].Value += r.CaloriesBurned
	}
	return breakdown
}

// WeeklySeries returns the calories of each of the SeriesDays days ending on
// ref's day, oldest first. Records outside the window are ignored.
func WeeklySeries(records []domain.Workout, ref time.Time, loc *time.Location) []DayTotal {
	perDay := make(map[string]float64)
	for _, r := range records {
		perDay[r.Date.In(loc).Format(dayKeyLayout)] += r.CaloriesBurned
	}

	ref = ref.In(loc)
	series := make([]DayTotal, 0, SeriesDays)
	for i := SeriesDays - 1; i >= 0; i-- {
		day := time.Date(ref.Year(), ref.Month(), ref.Day()-i, 0, 0, 0, 0, loc)
		key := day.Format(dayKeyLayout)
		series = append(series, DayTotal{
			Label:    OrdinalDay(day.Day()),
			Date:     key,
			Calories: perDay[key],
		})
	}
	return series
}

// OrdinalDay formats a day of month as "1st", "2nd", "3rd", "11th", ...
func OrdinalDay(day int) string {
	suffix := "th"
	switch day % 100 {
	case 11, 12, 13:
	default:
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(day) + suffix
}

// OnDay keeps the records whose date falls on the day of ref in loc.
func OnDay(records []domain.Workout, ref time.Time, loc *time.Location) []domain.Workout {
	start, end := DayBounds(ref, loc)
	var out []domain.Workout
	for _, r := range records {
		if !r.Date.Before(start) && r.Date.Before(end) {
			out = append(out, r)
		}
	}
	return out
}
