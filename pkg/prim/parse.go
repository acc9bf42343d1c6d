package prim

import (
	"encoding/json"
	"fmt"

	"github.com/White-On/transilien-bot/pkg/transit"
)

func firstValue(fields []ValueField, fallback string) string {
	if len(fields) > 0 && fields[0].Value != "" {
		return fields[0].Value
	}
	return fallback
}

// ParseStopMonitoring normalizes a SIRI stop-monitoring document into
// canonical departures, preserving upstream visit order. Missing objects,
// arrays, and scalars at any level degrade to placeholders instead of
// failing, so an empty document parses to an empty board.
//
// The one thing that cannot degrade is a non-empty timestamp that does not
// parse: the affected visit is skipped and the first such error is
// returned alongside the visits that did parse. Callers pick between
// warning on a partial board and aborting.
func ParseStopMonitoring(doc []byte) ([]transit.Departure, error) {
	var resp StopMonitoringResponse
	if err := json.Unmarshal(doc, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode stop-monitoring JSON: %w", err)
	}

	deliveries := resp.Siri.ServiceDelivery.StopMonitoringDelivery
	if len(deliveries) == 0 {
		return nil, nil
	}

	var departures []transit.Departure
	var skipped error

	for _, visit := range deliveries[0].MonitoredStopVisit {
		journey := visit.MonitoredVehicleJourney
		call := journey.MonitoredCall

		aimed, err := transit.ParseInstant(call.AimedDepartureTime)
		if err != nil {
			if skipped == nil {
				skipped = err
			}
			continue
		}
		expected, err := transit.ParseInstant(call.ExpectedDepartureTime)
		if err != nil {
			if skipped == nil {
				skipped = err
			}
			continue
		}

		origin := journey.DirectionRef.Value
		if origin == "" {
			origin = transit.Unknown
		}

		departures = append(departures, transit.NewDeparture(
			origin,
			firstValue(journey.DestinationName, transit.Unknown),
			firstValue(journey.TrainNumbers.TrainNumberRef, transit.Unknown),
			"Train",
			aimed,
			expected,
			transit.IsCancelled(call.DepartureStatus, call.ArrivalStatus),
		))
	}

	return departures, skipped
}
