package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

// DefaultBaseURL is the OpenWeatherMap One Call API 3.0 endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/3.0/onecall"

const (
	maxHourly = 24
	maxDaily  = 8
)

// ClientConfig configures the One Call client.
type ClientConfig struct {
	APIKey  string
	Lat     float64
	Lon     float64
	BaseURL string        // defaults to DefaultBaseURL
	Timeout time.Duration // per-fetch timeout, defaults to 10s
}

// Client fetches One Call 3.0 data from OpenWeatherMap. A circuit breaker
// wraps the HTTP call so a flapping network fails fast instead of stalling
// the control loop for the full timeout on every refresh.
type Client struct {
	cfg     ClientConfig
	http    *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewClient returns a One Call client for the given location.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 2,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		circuit: cb,
	}
}

// Name identifies the provider in logs.
func (c *Client) Name() string { return "openweathermap" }

// onecallPayload mirrors the subset of the One Call 3.0 response the display
// uses.
type onecallPayload struct {
	Current struct {
		Temp       float64 `json:"temp"`
		FeelsLike  float64 `json:"feels_like"`
		Humidity   int     `json:"humidity"`
		WindSpeed  float64 `json:"wind_speed"`
		WindDeg    int     `json:"wind_deg"`
		Sunrise    int64   `json:"sunrise"`
		Sunset     int64   `json:"sunset"`
		UVI        float64 `json:"uvi"`
		Visibility int     `json:"visibility"`
		Pressure   int     `json:"pressure"`
		DewPoint   float64 `json:"dew_point"`
		Clouds     int     `json:"clouds"`
		Weather    []struct {
			ID          int    `json:"id"`
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"current"`
	Minutely []struct {
		Precipitation float64 `json:"precipitation"`
	} `json:"minutely"`
	Hourly []struct {
		Dt      int64   `json:"dt"`
		Temp    float64 `json:"temp"`
		Weather []struct {
			ID int `json:"id"`
		} `json:"weather"`
	} `json:"hourly"`
	Daily []struct {
		Dt   int64 `json:"dt"`
		Temp struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"temp"`
		Weather []struct {
			ID int `json:"id"`
		} `json:"weather"`
		POP       float64 `json:"pop"`
		Moonrise  int64   `json:"moonrise"`
		Moonset   int64   `json:"moonset"`
		MoonPhase float64 `json:"moon_phase"`
	} `json:"daily"`
}

// Refresh performs one blocking fetch and maps the response to a Snapshot.
func (c *Client) Refresh(ctx context.Context) (*Snapshot, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

func (c *Client) fetch(ctx context.Context) (*Snapshot, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%.4f", c.cfg.Lat))
	values.Set("lon", fmt.Sprintf("%.4f", c.cfg.Lon))
	values.Set("units", "metric")
	values.Set("exclude", "alerts")
	values.Set("appid", c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("onecall fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("onecall fetch: HTTP %d", resp.StatusCode)
	}

	var payload onecallPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("onecall decode: %w", err)
	}
	return mapPayload(&payload, time.Now()), nil
}

// mapPayload converts the decoded response to a Snapshot.
func mapPayload(p *onecallPayload, fetchedAt time.Time) *Snapshot {
	s := &Snapshot{
		Valid:      true,
		Temp:       p.Current.Temp,
		FeelsLike:  p.Current.FeelsLike,
		Humidity:   p.Current.Humidity,
		WindSpeed:  p.Current.WindSpeed,
		WindDeg:    p.Current.WindDeg,
		WindDir:    DegToCompass(p.Current.WindDeg),
		UVI:        p.Current.UVI,
		Visibility: p.Current.Visibility,
		Pressure:   p.Current.Pressure,
		DewPoint:   p.Current.DewPoint,
		Clouds:     p.Current.Clouds,
		Sunrise:    time.Unix(p.Current.Sunrise, 0),
		Sunset:     time.Unix(p.Current.Sunset, 0),
		FetchedAt:  fetchedAt,
	}

	if len(p.Current.Weather) > 0 {
		s.Code = p.Current.Weather[0].ID
		s.Condition = capitalize(p.Current.Weather[0].Description)
	}

	if len(p.Minutely) > 0 {
		s.HasMinutely = true
		for i := 0; i < len(p.Minutely) && i < len(s.MinutelyRain); i++ {
			s.MinutelyRain[i] = p.Minutely[i].Precipitation
		}
	}

	for i, h := range p.Hourly {
		if i >= maxHourly {
			break
		}
		code := 0
		if len(h.Weather) > 0 {
			code = h.Weather[0].ID
		}
		s.Hourly = append(s.Hourly, Hourly{
			Temp: h.Temp,
			Code: code,
			Hour: time.Unix(h.Dt, 0).Local().Hour(),
		})
	}

	for i, d := range p.Daily {
		if i >= maxDaily {
			break
		}
		code := 0
		if len(d.Weather) > 0 {
			code = d.Weather[0].ID
		}
		s.Daily = append(s.Daily, Daily{
			TempMin: d.Temp.Min,
			TempMax: d.Temp.Max,
			Code:    code,
			POP:     int(d.POP * 100),
			Day:     shortDay(time.Unix(d.Dt, 0).Local()),
		})
	}

	// Moon data comes from today's daily entry.
	if len(p.Daily) > 0 {
		s.Moonrise = time.Unix(p.Daily[0].Moonrise, 0)
		s.Moonset = time.Unix(p.Daily[0].Moonset, 0)
		s.MoonPhase = p.Daily[0].MoonPhase
	}

	return s
}
