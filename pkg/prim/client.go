package prim

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/White-On/transilien-bot/pkg/transit"
)

var baseURL = "https://prim.iledefrance-mobilites.fr/marketplace"

const defaultTimeout = 30 * time.Second

// Client fetches live stop-monitoring data from the Île-de-France
// Mobilités PRIM API.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a PRIM client authenticating with the given API key.
// A zero timeout falls back to 30 seconds.
func NewClient(apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Departures fetches and normalizes the next departures for the given
// monitoring reference (e.g. "STIF:StopPoint:Q:41087:"). See
// ParseStopMonitoring for the partial-result error contract.
func (c *Client) Departures(monitoringRef string, count int) ([]transit.Departure, error) {
	params := url.Values{}
	params.Set("MonitoringRef", monitoringRef)
	if count > 0 {
		params.Set("MaximumStopVisits", strconv.Itoa(count))
	}
	reqURL := fmt.Sprintf("%s/stop-monitoring?%s", baseURL, params.Encode())

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &transit.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &transit.TransportError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read stop-monitoring response body: %w", err)
	}

	return ParseStopMonitoring(body)
}
