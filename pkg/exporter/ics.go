package exporter

import (
	"fmt"
	"io"
	"time"

	"github.com/White-On/transilien-bot/pkg/transit"

	ics "github.com/arran4/golang-ical"
)

// How long a departure blocks the calendar; SNCF does not expose journey
// durations on departure boards.
const eventDuration = 10 * time.Minute

// GenerateICS creates an ICS file from the departure board and writes it
// to the provided writer. One event per departure, at the expected time
// (aimed when no prediction exists); departures with no usable instant and
// cancelled trains are skipped.
func GenerateICS(departures []transit.Departure, station string, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for i, d := range departures {
		start := d.Expected
		if start.IsZero() {
			start = d.Aimed
		}
		if start.IsZero() || d.Status == transit.StatusCancelled {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d", start.UTC().Format("20060102T150405Z"), i))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(start)
		event.SetEndAt(start.Add(eventDuration))
		event.SetSummary(fmt.Sprintf("🚆 Train %s to %s", d.TrainNumber, d.Destination))
		event.SetLocation(station)

		description := fmt.Sprintf("Scheduled: %s\nExpected: %s\nStatus: %s",
			d.AimedDisplay(), d.ExpectedDisplay(), d.Status)
		if d.Delay > 0 {
			description += fmt.Sprintf(" (+%d min)", d.Delay)
		}
		event.SetDescription(description)
	}

	return cal.SerializeTo(w)
}
