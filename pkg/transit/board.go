package transit

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// Source is the capability both feed variants implement: fetch and
// normalize the upcoming departures for one monitored stop. A source may
// return partial results together with a non-nil error (the tolerant SIRI
// variant does this when it skips a visit with a malformed timestamp);
// callers choose between warning and aborting.
type Source interface {
	Departures(station string, count int) ([]Departure, error)
}

func boardKey(d Departure) time.Time {
	if !d.Expected.IsZero() {
		return d.Expected
	}
	return d.Aimed
}

// SortBoard returns a copy of the departures in ascending order of their
// expected instant (aimed when no prediction exists). The sort is stable,
// so ties keep upstream order and re-sorting is a no-op.
func SortBoard(deps []Departure) []Departure {
	sorted := make([]Departure, len(deps))
	copy(sorted, deps)

	sort.SliceStable(sorted, func(i, j int) bool {
		return boardKey(sorted[i]).Before(boardKey(sorted[j]))
	})

	return sorted
}

// FilterByDestination keeps departures whose destination matches exactly,
// dropping any whose physical mode is in the exclusion set (e.g. replacement
// buses on a rail board).
func FilterByDestination(deps []Departure, destination string, excludeModes map[string]bool) []Departure {
	var filtered []Departure
	for _, d := range deps {
		if d.Destination != destination {
			continue
		}
		if excludeModes[d.Mode] {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

func statusTag(s Status) string {
	switch s {
	case StatusCancelled:
		return "cancelled"
	case StatusDelayed:
		return "delayed"
	default:
		return "on time"
	}
}

// RenderLine formats a single board line: status tag, train number,
// destination, then either a single time or "aimed → expected (+N min)"
// when the departure is delayed.
func RenderLine(d Departure) string {
	var times string
	if d.Status == StatusDelayed {
		times = fmt.Sprintf("%s → %s (+%d min)", d.AimedDisplay(), d.ExpectedDisplay(), d.Delay)
	} else if !d.Expected.IsZero() {
		times = d.ExpectedDisplay()
	} else {
		times = d.AimedDisplay()
	}

	return fmt.Sprintf("[%-9s] %-8s %-34s %s", statusTag(d.Status), d.TrainNumber, d.Destination, times)
}

// RenderBoard produces the plain-text report, one line per departure in
// the order given. An empty board renders as the empty string. Styling is
// deliberately left to the caller so the output stays deterministic.
func RenderBoard(deps []Departure) string {
	if len(deps) == 0 {
		return ""
	}

	lines := make([]string, len(deps))
	for i, d := range deps {
		lines[i] = RenderLine(d)
	}
	return strings.Join(lines, "\n")
}

// WriteBoard renders the departures into the given sink.
func WriteBoard(w io.Writer, deps []Departure) error {
	if len(deps) == 0 {
		return nil
	}
	_, err := io.WriteString(w, RenderBoard(deps)+"\n")
	return err
}
