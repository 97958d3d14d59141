package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Jakarta" {
			t.Errorf("expected q=Jakarta, got %q", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("expected units=metric, got %q", got)
		}
		w.Write([]byte(`{
			"cod": 200,
			"name": "Jakarta",
			"weather": [{"description": "light rain"}],
			"main": {"temp": 29.4, "humidity": 81},
			"wind": {"speed": 3.2}
		}`))
	}))
	defer srv.Close()

	c := New("test-key")
	c.baseURL = srv.URL

	obs, err := c.Current(context.Background(), "Jakarta")
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if obs.City != "Jakarta" {
		t.Errorf("expected city Jakarta, got %q", obs.City)
	}
	if obs.Description != "light rain" {
		t.Errorf("expected description 'light rain', got %q", obs.Description)
	}
	if obs.Temperature != 29.4 || obs.Humidity != 81 || obs.WindSpeed != 3.2 {
		t.Errorf("unexpected observation: %+v", obs)
	}
}

func TestCurrent_CityNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer srv.Close()

	c := New("test-key")
	c.baseURL = srv.URL

	if _, err := c.Current(context.Background(), "Nowhere"); err == nil {
		t.Fatal("expected error for unknown city")
	}
}
