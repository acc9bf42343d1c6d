package sncf

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/White-On/transilien-bot/pkg/transit"
)

var baseURL = "https://api.sncf.com/v1/coverage/sncf"

const defaultTimeout = 30 * time.Second

// Client fetches departures from the SNCF open API.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an SNCF client authenticating with the given API key.
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

// Departures fetches and normalizes the next departures for a stop area
// (e.g. "stop_area:SNCF:87386649").
func (c *Client) Departures(station string, count int) ([]transit.Departure, error) {
	reqURL := fmt.Sprintf("%s/stop_areas/%s/departures?count=%d", baseURL, url.PathEscape(station), count)

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.apiKey)

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
		return nil, fmt.Errorf("failed to read departures response body: %w", err)
	}

	return ParseDepartures(body)
}
