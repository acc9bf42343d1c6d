package transit

import (
	"fmt"
	"strings"
	"time"
)

// Unknown is the fallback for text fields the tolerant feed omitted.
const Unknown = "unknown"

// Status is the derived state of a departure.
type Status string

const (
	StatusOnTime    Status = "OnTime"
	StatusDelayed   Status = "Delayed"
	StatusCancelled Status = "Cancelled"
)

// Departure is the canonical record both feed variants normalize into.
// It is built once during parsing and never mutated afterwards.
type Departure struct {
	Origin      string
	Destination string
	TrainNumber string
	Mode        string

	// Aimed and Expected are Paris-local instants; the zero time means
	// the feed did not provide one.
	Aimed    time.Time
	Expected time.Time

	Status Status
	Delay  int
}

// NewDeparture derives delay and status from the raw extraction. Delay is
// clamped to zero so an early train never reads as delayed, and a
// cancellation flag overrides whatever the timestamps say.
func NewDeparture(origin, destination, trainNumber, mode string, aimed, expected time.Time, cancelled bool) Departure {
	delay := MinutesBetween(aimed, expected)
	if delay < 0 {
		delay = 0
	}

	status := StatusOnTime
	switch {
	case cancelled:
		status = StatusCancelled
	case delay > 0:
		status = StatusDelayed
	}

	return Departure{
		Origin:      origin,
		Destination: destination,
		TrainNumber: trainNumber,
		Mode:        mode,
		Aimed:       aimed,
		Expected:    expected,
		Status:      status,
		Delay:       delay,
	}
}

// AimedDisplay returns the scheduled time as HH:MM, or the placeholder.
func (d Departure) AimedDisplay() string {
	return FormatInstant(d.Aimed)
}

// ExpectedDisplay returns the predicted time as HH:MM, or the placeholder.
func (d Departure) ExpectedDisplay() string {
	return FormatInstant(d.Expected)
}

// IsCancelled reports whether either upstream status flag marked the
// departure or its arrival as cancelled.
func IsCancelled(departureStatus, arrivalStatus string) bool {
	return strings.Contains(strings.ToLower(departureStatus), "cancel") ||
		strings.Contains(strings.ToLower(arrivalStatus), "cancel")
}

// TransportError reports a failed fetch: either a non-2xx response or a
// network-level failure reaching the feed.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport failure: %v", e.Err)
	}
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MissingFieldError reports an absent mandatory field in the strict feed
// variant. The whole document fails; there are no partial results.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}
