package transit

import (
	"fmt"
	"time"

	_ "time/tzdata"
)

// TimePlaceholder is shown when a departure has no usable instant.
const TimePlaceholder = "—"

// Both feeds describe the Transilien network, so boards always display
// Paris local time no matter which offset the payload was encoded with.
var paris = mustParis()

func mustParis() *time.Location {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		panic(fmt.Sprintf("could not load Europe/Paris timezone: %v", err))
	}
	return loc
}

// MalformedTimestampError reports a non-empty timestamp string that could
// not be parsed in any of the formats the feeds are known to emit.
type MalformedTimestampError struct {
	Raw string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("malformed timestamp %q", e.Raw)
}

// ParseInstant converts an upstream timestamp string into a Paris-local
// instant. The SIRI feed emits RFC 3339 ("2024-01-01T08:00:00Z", offsets
// allowed), the SNCF feed Navitia's basic format ("20240101T080000",
// already local). An empty input returns the zero time and no error.
func ParseInstant(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(paris), nil
	}
	if t, err := time.ParseInLocation("20060102T150405", raw, paris); err == nil {
		return t, nil
	}

	return time.Time{}, &MalformedTimestampError{Raw: raw}
}

// FormatInstant renders an instant as a 24-hour HH:MM display string in
// Paris time, or the placeholder for the zero time.
func FormatInstant(t time.Time) string {
	if t.IsZero() {
		return TimePlaceholder
	}
	return t.In(paris).Format("15:04")
}

// MinutesBetween returns the whole minutes from aimed to expected,
// truncated towards zero. Either instant being absent yields 0. The result
// is negative when a train is predicted early; callers decide whether that
// matters (the Departure constructor clamps it).
func MinutesBetween(aimed, expected time.Time) int {
	if aimed.IsZero() || expected.IsZero() {
		return 0
	}
	return int(expected.Sub(aimed).Truncate(time.Minute).Minutes())
}
