package sncf

import (
	"encoding/json"
	"fmt"

	"github.com/White-On/transilien-bot/pkg/transit"
)

// ParseDepartures normalizes a flat departures document into canonical
// departures, preserving upstream order. Unlike the SIRI variant this feed
// is strict: train number, departure time, destination, and physical mode
// are mandatory, and any absence (or a malformed timestamp) fails the
// whole document with no partial results.
func ParseDepartures(doc []byte) ([]transit.Departure, error) {
	var resp DeparturesResponse
	if err := json.Unmarshal(doc, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode departures JSON: %w", err)
	}

	departures := make([]transit.Departure, 0, len(resp.Departures))

	for _, entry := range resp.Departures {
		info := entry.DisplayInformations
		stop := entry.StopDateTime

		switch {
		case info.TripShortName == "":
			return nil, &transit.MissingFieldError{Field: "display_informations.trip_short_name"}
		case info.Direction == "":
			return nil, &transit.MissingFieldError{Field: "display_informations.direction"}
		case info.PhysicalMode == "":
			return nil, &transit.MissingFieldError{Field: "display_informations.physical_mode"}
		case stop.DepartureDateTime == "":
			return nil, &transit.MissingFieldError{Field: "stop_date_time.departure_date_time"}
		}

		expected, err := transit.ParseInstant(stop.DepartureDateTime)
		if err != nil {
			return nil, err
		}

		// The base time is the schedule; without one the realtime value
		// stands for both and the departure reads as on time.
		aimed := expected
		if stop.BaseDepartureDateTime != "" {
			aimed, err = transit.ParseInstant(stop.BaseDepartureDateTime)
			if err != nil {
				return nil, err
			}
		}

		origin := info.Name
		if origin == "" {
			origin = transit.Unknown
		}

		departures = append(departures, transit.NewDeparture(
			origin,
			info.Direction,
			info.TripShortName,
			info.PhysicalMode,
			aimed,
			expected,
			false,
		))
	}

	return departures, nil
}
