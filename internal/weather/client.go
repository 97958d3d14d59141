package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client fetches current conditions from OpenWeather.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		// Bounded so one slow lookup cannot stall the caller indefinitely
		http: &http.Client{Timeout: 12 * time.Second},
	}
}

// Observation is the subset of the OpenWeather response the bot reports.
type Observation struct {
	City        string
	Description string
	Temperature float64
	Humidity    int
	WindSpeed   float64
}

type apiResponse struct {
	// cod is a number on success and a string on errors
	Cod     any    `json:"cod"`
	Message string `json:"message"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

// Current looks up current conditions for a city.
func (c *Client) Current(ctx context.Context, city string) (*Observation, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	var data apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	if cod := fmt.Sprint(data.Cod); cod != "200" {
		if data.Message != "" {
			return nil, fmt.Errorf("weather API error: %s", data.Message)
		}
		return nil, fmt.Errorf("weather API error: cod %s", cod)
	}

	obs := &Observation{
		City:        data.Name,
		Temperature: data.Main.Temp,
		Humidity:    data.Main.Humidity,
		WindSpeed:   data.Wind.Speed,
	}
	if obs.City == "" {
		obs.City = city
	}
	if len(data.Weather) > 0 {
		obs.Description = data.Weather[0].Description
	}
	return obs, nil
}
