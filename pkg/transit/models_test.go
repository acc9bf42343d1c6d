package transit

import (
	"testing"
	"time"
)

func TestNewDeparture_Delayed(t *testing.T) {
	aimed, _ := ParseInstant("2024-01-01T08:00:00Z")
	expected, _ := ParseInstant("2024-01-01T08:05:00Z")

	d := NewDeparture("DACHA", "Ermont Eaubonne", "134742", "Train", aimed, expected, false)

	if d.Delay != 5 {
		t.Errorf("expected delay of 5 minutes, got %d", d.Delay)
	}
	if d.Status != StatusDelayed {
		t.Errorf("expected status Delayed, got %s", d.Status)
	}
}

func TestNewDeparture_OnTime(t *testing.T) {
	aimed, _ := ParseInstant("2024-01-01T08:00:00Z")

	d := NewDeparture("DACHA", "Ermont Eaubonne", "134742", "Train", aimed, aimed, false)

	if d.Delay != 0 {
		t.Errorf("expected no delay, got %d", d.Delay)
	}
	if d.Status != StatusOnTime {
		t.Errorf("expected status OnTime, got %s", d.Status)
	}
}

func TestNewDeparture_CancelledOverridesDelay(t *testing.T) {
	aimed, _ := ParseInstant("2024-01-01T08:00:00Z")
	expected, _ := ParseInstant("2024-01-01T08:25:00Z")

	d := NewDeparture("DACHA", "Ermont Eaubonne", "134742", "Train", aimed, expected, true)

	if d.Status != StatusCancelled {
		t.Errorf("cancellation must override the delay-based status, got %s", d.Status)
	}
	if d.Delay != 25 {
		t.Errorf("delay stays computed even when cancelled, got %d", d.Delay)
	}
}

func TestNewDeparture_EarlyTrainClampsToZero(t *testing.T) {
	aimed, _ := ParseInstant("2024-01-01T08:05:00Z")
	expected, _ := ParseInstant("2024-01-01T08:02:00Z")

	d := NewDeparture("DACHA", "Ermont Eaubonne", "134742", "Train", aimed, expected, false)

	if d.Delay != 0 {
		t.Errorf("early trains must clamp delay to 0, got %d", d.Delay)
	}
	if d.Status != StatusOnTime {
		t.Errorf("early trains are on time, got %s", d.Status)
	}
}

func TestNewDeparture_MissingInstants(t *testing.T) {
	d := NewDeparture(Unknown, Unknown, Unknown, "", time.Time{}, time.Time{}, false)

	if d.Delay != 0 {
		t.Errorf("delay must be 0 when instants are absent, got %d", d.Delay)
	}
	if d.Status != StatusOnTime {
		t.Errorf("expected OnTime when nothing is known, got %s", d.Status)
	}
	if d.AimedDisplay() != TimePlaceholder || d.ExpectedDisplay() != TimePlaceholder {
		t.Errorf("absent instants must display as the placeholder, got %q / %q",
			d.AimedDisplay(), d.ExpectedDisplay())
	}
}

func TestIsCancelled(t *testing.T) {
	cases := []struct {
		departureStatus string
		arrivalStatus   string
		want            bool
	}{
		{"cancelled", "", true},
		{"", "Cancelled", true},
		{"CANCELLED", "onTime", true},
		{"trainCancelled", "", true},
		{"onTime", "onTime", false},
		{"delayed", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		if got := IsCancelled(c.departureStatus, c.arrivalStatus); got != c.want {
			t.Errorf("IsCancelled(%q, %q) = %v, want %v",
				c.departureStatus, c.arrivalStatus, got, c.want)
		}
	}
}
