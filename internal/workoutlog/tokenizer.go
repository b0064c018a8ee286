// Package workoutlog turns a free-form workout log into structured entries.
//
// A log is a list of entries separated by ';'. Each entry looks like:
//
//	#Legs
//	*Squat
//	3 sets
//	10 reps
//	80 kg
package workoutlog

import "strings"

const (
	entrySeparator = ";"
	categoryMarker = "#"
)

// Block is one ';'-delimited entry before its detail lines are parsed.
type Block struct {
	Category string
	Lines    []string // detail lines, category line excluded
}

// Tokenize splits raw into blocks. A non-empty segment that does not start
// with '#' fails the whole log.
func Tokenize(raw string) ([]Block, error) {
	var blocks []Block
	for _, segment := range strings.Split(raw, entrySeparator) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		entry := len(blocks) + 1
		if !strings.HasPrefix(segment, categoryMarker) {
			return nil, &ParseError{
				Kind:  KindMissingMarker,
				Entry: entry,
				Line:  firstLine(segment),
				Msg:   "entry must start with a '#' category line",
			}
		}

		lines := strings.Split(segment, "\n")
		for i := range lines {
			lines[i] = strings.TrimSpace(lines[i])
		}
		blocks = append(blocks, Block{
			Category: strings.TrimSpace(strings.TrimPrefix(lines[0], categoryMarker)),
			Lines:    lines[1:],
		})
	}
	return blocks, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
