package prim

// SIRI Lite wraps most scalars in {"value": ...} objects.
type ValueField struct {
	Value string `json:"value"`
}

// StopMonitoringResponse is the document returned by the PRIM
// stop-monitoring endpoint. Every level can be absent; the zero value of
// each struct stands in for a missing object.
type StopMonitoringResponse struct {
	Siri Siri `json:"Siri"`
}

type Siri struct {
	ServiceDelivery ServiceDelivery `json:"ServiceDelivery"`
}

type ServiceDelivery struct {
	ResponseTimestamp      string                   `json:"ResponseTimestamp"`
	StopMonitoringDelivery []StopMonitoringDelivery `json:"StopMonitoringDelivery"`
}

type StopMonitoringDelivery struct {
	ResponseTimestamp  string               `json:"ResponseTimestamp"`
	MonitoredStopVisit []MonitoredStopVisit `json:"MonitoredStopVisit"`
}

// MonitoredStopVisit is one vehicle's stop at the monitored location.
type MonitoredStopVisit struct {
	RecordedAtTime          string                  `json:"RecordedAtTime"`
	MonitoringRef           ValueField              `json:"MonitoringRef"`
	MonitoredVehicleJourney MonitoredVehicleJourney `json:"MonitoredVehicleJourney"`
}

type MonitoredVehicleJourney struct {
	LineRef         ValueField    `json:"LineRef"`
	DirectionRef    ValueField    `json:"DirectionRef"`
	DestinationName []ValueField  `json:"DestinationName"`
	JourneyNote     []ValueField  `json:"JourneyNote"`
	TrainNumbers    TrainNumbers  `json:"TrainNumbers"`
	MonitoredCall   MonitoredCall `json:"MonitoredCall"`
}

type TrainNumbers struct {
	TrainNumberRef []ValueField `json:"TrainNumberRef"`
}

type MonitoredCall struct {
	StopPointName         []ValueField `json:"StopPointName"`
	AimedDepartureTime    string       `json:"AimedDepartureTime"`
	ExpectedDepartureTime string       `json:"ExpectedDepartureTime"`
	DepartureStatus       string       `json:"DepartureStatus"`
	ArrivalStatus         string       `json:"ArrivalStatus"`
}
