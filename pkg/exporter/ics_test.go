package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/White-On/transilien-bot/pkg/transit"
)

func TestGenerateICS(t *testing.T) {
	aimed, err := transit.ParseInstant("2026-03-04T08:00:00+01:00")
	if err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	expected, err := transit.ParseInstant("2026-03-04T08:15:00+01:00")
	if err != nil {
		t.Fatalf("bad fixture: %v", err)
	}

	departures := []transit.Departure{
		transit.NewDeparture("J", "Paris Saint-Lazare (Paris)", "134742", "Train", aimed, expected, false),
		transit.NewDeparture("J", "Gisors (Gisors)", "134744", "Train", aimed, expected, true),
	}

	var buf bytes.Buffer
	if err := GenerateICS(departures, "Gare d'Ermont Eaubonne", &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "Train 134742 to Paris Saint-Lazare (Paris)") {
		t.Errorf("Expected ICS to contain the train summary, got: \n%s", output)
	}

	if !strings.Contains(output, "LOCATION:Gare d'Ermont Eaubonne") {
		t.Errorf("Expected ICS to contain the station location")
	}

	// 04-Mar-2026 08:15 Paris time is 07:15 UTC.
	if !strings.Contains(output, "DTSTART:20260304T071500Z") {
		t.Errorf("Expected start time string in ICS (should be UTC), got: \n%s", output)
	}

	// The cancelled train must not produce an event
	if strings.Contains(output, "134744") {
		t.Errorf("Cancelled departures must be skipped")
	}
}

func TestGenerateICS_EmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateICS(nil, "Anywhere", &buf); err != nil {
		t.Fatalf("GenerateICS failed on empty board: %v", err)
	}
	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Errorf("empty board must produce a calendar with no events")
	}
}
