package sncf

// DeparturesResponse is the document returned by the SNCF open API's
// stop-area departures endpoint (a Navitia instance).
type DeparturesResponse struct {
	Departures []DepartureEntry `json:"departures"`
}

// DepartureEntry is one row of the flat departures list.
type DepartureEntry struct {
	DisplayInformations DisplayInformations `json:"display_informations"`
	StopDateTime        StopDateTime        `json:"stop_date_time"`
}

type DisplayInformations struct {
	TripShortName string `json:"trip_short_name"`
	Direction     string `json:"direction"`
	PhysicalMode  string `json:"physical_mode"`
	// Line name ("J", "L", ...); optional.
	Name string `json:"name"`
}

type StopDateTime struct {
	// Realtime departure, Navitia basic format ("20240101T080000").
	DepartureDateTime string `json:"departure_date_time"`
	// Scheduled departure before realtime adjustments; optional.
	BaseDepartureDateTime string `json:"base_departure_date_time"`
}
