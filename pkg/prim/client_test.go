package prim

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/White-On/transilien-bot/pkg/transit"
)

func TestClient_Departures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("apikey"); got != "secret-key" {
			t.Errorf("expected apikey header to be set, got %q", got)
		}
		if got := r.URL.Query().Get("MonitoringRef"); got != "STIF:StopPoint:Q:41087:" {
			t.Errorf("unexpected MonitoringRef: %q", got)
		}
		if got := r.URL.Query().Get("MaximumStopVisits"); got != "10" {
			t.Errorf("unexpected MaximumStopVisits: %q", got)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(fullVisitJSON))
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient("secret-key", 5*time.Second)

	deps, err := client.Departures("STIF:StopPoint:Q:41087:", 10)
	if err != nil {
		t.Fatalf("unexpected error fetching mocked departures: %v", err)
	}
	if len(deps) != 2 {
		t.Fatalf("expected 2 departures, got %d", len(deps))
	}
}

func TestClient_Departures_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient("wrong-key", 0)

	_, err := client.Departures("STIF:StopPoint:Q:41087:", 10)

	var transport *transit.TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
	if transport.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401 in the error, got %d", transport.StatusCode)
	}
}

func TestClient_Departures_ConnectionFailure(t *testing.T) {
	originalBaseURL := baseURL
	baseURL = "http://127.0.0.1:1" // nothing listens here
	defer func() { baseURL = originalBaseURL }()

	client := NewClient("key", time.Second)

	_, err := client.Departures("STIF:StopPoint:Q:41087:", 10)

	var transport *transit.TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected TransportError for a connection failure, got %T: %v", err, err)
	}
}
