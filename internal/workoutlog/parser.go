package workoutlog

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	setsUnit   = "sets"
	repsUnit   = "reps"
	weightUnit = "kg"

	// name, sets, reps and weight lines follow the category line
	minDetailLines = 4
)

// MaxWeight is the largest accepted weight in kg. It keeps every estimate
// and every sum of estimates finite.
const MaxWeight = 10000.0

// Entry is a fully parsed workout entry with its calorie estimate.
type Entry struct {
	Category       string  `json:"category"`
	WorkoutName    string  `json:"workoutName"`
	Sets           int     `json:"sets"`
	Reps           int     `json:"reps"`
	Weight         float64 `json:"weight"`
	CaloriesBurned float64 `json:"caloriesBurned"`
}

// Parse tokenizes raw and parses every block. Either every entry is
// returned or the first violation is.
func Parse(raw string) ([]Entry, error) {
	blocks, err := Tokenize(raw)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(blocks))
	for i, b := range blocks {
		entry, err := parseBlock(b, i+1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ParseBlock parses a single block.
func ParseBlock(b Block) (Entry, error) {
	return parseBlock(b, 1)
}

func parseBlock(b Block, idx int) (Entry, error) {
	if len(b.Lines) < minDetailLines {
		return Entry{}, &ParseError{
			Kind:  KindMissingField,
			Entry: idx,
			Msg:   "entry needs a name, sets, reps and weight line",
		}
	}
	if b.Category == "" {
		return Entry{}, &ParseError{Kind: KindMissingField, Entry: idx, Msg: "category is empty"}
	}

	name := stripMarker(b.Lines[0])
	if name == "" {
		return Entry{}, &ParseError{Kind: KindMissingField, Entry: idx, Line: b.Lines[0], Msg: "workout name is empty"}
	}

	sets, err := parseCount(b.Lines[1], setsUnit, idx)
	if err != nil {
		return Entry{}, err
	}
	reps, err := parseCount(b.Lines[2], repsUnit, idx)
	if err != nil {
		return Entry{}, err
	}
	weight, err := parseWeight(b.Lines[3], idx)
	if err != nil {
		return Entry{}, err
	}

	calories := EstimateCalories(sets, reps, weight)
	if math.IsInf(calories, 0) || math.IsNaN(calories) {
		return Entry{}, &ParseError{
			Kind:  KindMalformedNumber,
			Entry: idx,
			Msg:   "calorie estimate is out of range",
		}
	}

	return Entry{
		Category:       b.Category,
		WorkoutName:    name,
		Sets:           sets,
		Reps:           reps,
		Weight:         weight,
		CaloriesBurned: calories,
	}, nil
}

// stripMarker drops the single bullet character ('*', '-', ...) in front of
// the workout name.
func stripMarker(line string) string {
	if line == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(line)
	return strings.TrimSpace(line[size:])
}

// valueBefore returns the trimmed text preceding unit, or the whole line
// when unit does not appear.
func valueBefore(line, unit string) string {
	before, _, _ := strings.Cut(line, unit)
	return strings.TrimSpace(before)
}

func parseCount(line, unit string, idx int) (int, error) {
	n, err := strconv.Atoi(valueBefore(line, unit))
	if err != nil || n < 0 {
		return 0, &ParseError{
			Kind:  KindMalformedNumber,
			Entry: idx,
			Line:  line,
			Msg:   "expected a non-negative whole number of " + unit,
		}
	}
	return n, nil
}

func parseWeight(line string, idx int) (float64, error) {
	w, err := strconv.ParseFloat(valueBefore(line, weightUnit), 64)
	if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, &ParseError{
			Kind:  KindMalformedNumber,
			Entry: idx,
			Line:  line,
			Msg:   "expected a non-negative weight in " + weightUnit,
		}
	}
	if w > MaxWeight {
		return 0, &ParseError{
			Kind:  KindMalformedNumber,
			Entry: idx,
			Line:  line,
			Msg:   "weight exceeds " + strconv.FormatFloat(MaxWeight, 'f', -1, 64) + " " + weightUnit,
		}
	}
	return w, nil
}
