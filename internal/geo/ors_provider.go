package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ORSProvider talks to an OpenRouteService-compatible API for geocoding,
// distance lookups, directions, and address autocomplete.
//
// Outbound calls are throttled with a shared rate limiter and retried with
// exponential backoff on transient failures. Safe for concurrent use.
type ORSProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
	region  string
	limiter *rate.Limiter
}

func NewORSProvider(apiKey, baseURL string) (*ORSProvider, error) {
	if apiKey == "" {
		return nil, errors.New("geocoder api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://api.openrouteservice.org"
	}

	return &ORSProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: "driving-car",
		region:  "ZM",
		// free-tier quota is 40 requests/minute; stay under it
		limiter: rate.NewLimiter(rate.Limit(0.6), 5),
	}, nil
}

// normalize collapses whitespace so equal addresses compare equal.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Distance returns the travel distance and duration between two addresses
// using the matrix endpoint.
func (o *ORSProvider) Distance(ctx context.Context, origin, destination string) (DistanceResult, error) {
	normOrigin := normalize(origin)
	normDestination := normalize(destination)
	if normOrigin == "" || normDestination == "" {
		return DistanceResult{}, errors.New("origin and destination must be non-empty")
	}

	originPt, err := o.geocode(ctx, normOrigin)
	if err != nil {
		return DistanceResult{}, fmt.Errorf("geocode origin %q: %w", normOrigin, err)
	}

	destPt, err := o.geocode(ctx, normDestination)
	if err != nil {
		return DistanceResult{}, fmt.Errorf("geocode destination %q: %w", normDestination, err)
	}

	return o.fetchMatrixCell(ctx, originPt, destPt)
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

func (o *ORSProvider) geocode(ctx context.Context, address string) (Point, error) {
	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", address)
		q.Set("boundary.country", o.region)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return Point{}, fmt.Errorf("execute geocode request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Point{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return Point{}, fmt.Errorf("%w: %q", ErrNoGeocodeResult, address)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return Point{}, fmt.Errorf("invalid coordinate format for %q", address)
	}

	return Point{Lon: coords[0], Lat: coords[1]}, nil
}

type matrixRequest struct {
	Locations    [][]float64 `json:"locations"`
	Destinations []int       `json:"destinations"`
	Metrics      []string    `json:"metrics"`
	Sources      []int       `json:"sources"`
}

type matrixResponse struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

func (o *ORSProvider) fetchMatrixCell(ctx context.Context, origin, destination Point) (DistanceResult, error) {
	endpoint := fmt.Sprintf("%s/v2/matrix/%s", o.baseURL, o.profile)

	bodyObj := matrixRequest{
		Locations:    [][]float64{{origin.Lon, origin.Lat}, {destination.Lon, destination.Lat}},
		Destinations: []int{1},
		Metrics:      []string{"distance", "duration"},
		Sources:      []int{0},
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return DistanceResult{}, fmt.Errorf("marshal matrix request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return DistanceResult{}, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return DistanceResult{}, fmt.Errorf("decode matrix response: %w", err)
	}

	if len(mr.Distances) != 1 || len(mr.Distances[0]) != 1 ||
		len(mr.Durations) != 1 || len(mr.Durations[0]) != 1 {
		return DistanceResult{}, errors.New("matrix response shape mismatch")
	}

	meters := mr.Distances[0][0]
	seconds := mr.Durations[0][0]
	if meters == nil || seconds == nil {
		return DistanceResult{}, errors.New("matrix returned no metrics for destination")
	}

	return DistanceResult{
		DistanceMeters:  int(math.Round(*meters)),
		DurationSeconds: int(math.Round(*seconds)),
	}, nil
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
		Geometry string `json:"geometry"`
	} `json:"routes"`
}

// Route geocodes both endpoints and fetches a drivable route between them.
func (o *ORSProvider) Route(ctx context.Context, origin, destination string) (*Route, error) {
	normOrigin := normalize(origin)
	normDestination := normalize(destination)
	if normOrigin == "" || normDestination == "" {
		return nil, fmt.Errorf("%w: origin and destination required", ErrRouteUnavailable)
	}

	originPt, err := o.geocode(ctx, normOrigin)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRouteUnavailable, err)
	}

	destPt, err := o.geocode(ctx, normDestination)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRouteUnavailable, err)
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, o.profile)
	bodyObj := map[string]any{
		"coordinates": [][]float64{{originPt.Lon, originPt.Lat}, {destPt.Lon, destPt.Lat}},
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return nil, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("%w: directions request failed: %v", ErrRouteUnavailable, err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if len(dr.Routes) == 0 {
		return nil, fmt.Errorf("%w: no route between %q and %q", ErrRouteUnavailable, normOrigin, normDestination)
	}

	summary := dr.Routes[0].Summary
	return &Route{
		Origin:       originPt,
		Destination:  destPt,
		Geometry:     dr.Routes[0].Geometry,
		DistanceText: formatDistance(summary.Distance),
		DurationText: formatDuration(summary.Duration),
	}, nil
}

type autocompleteResponse struct {
	Features []struct {
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// Suggest returns candidate address labels for a partial input.
func (o *ORSProvider) Suggest(ctx context.Context, partial string) ([]string, error) {
	text := normalize(partial)
	if text == "" {
		return nil, nil
	}

	endpoint := o.baseURL + "/geocode/autocomplete"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", text)
		q.Set("boundary.country", o.region)
		q.Set("size", "5")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("execute autocomplete request: %w", err)
	}
	defer resp.Body.Close()

	var decoded autocompleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode autocomplete response: %w", err)
	}

	out := make([]string, 0, len(decoded.Features))
	for _, f := range decoded.Features {
		if f.Properties.Label != "" {
			out = append(out, f.Properties.Label)
		}
	}
	return out, nil
}

func formatDistance(meters float64) string {
	return fmt.Sprintf("%.1f km", meters/1000)
}

func formatDuration(seconds float64) string {
	mins := int(math.Round(seconds / 60))
	if mins < 60 {
		return fmt.Sprintf("%d mins", mins)
	}
	return fmt.Sprintf("%d hr %d mins", mins/60, mins%60)
}

// --- HTTP plumbing ---

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (o *ORSProvider) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", o.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

func (o *ORSProvider) do(req *http.Request) (*http.Response, error) {
	resp, err := o.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429, 5xx) with
// exponential backoff while respecting context cancellation.
func (o *ORSProvider) doWithRetry(ctx context.Context, makeReq func() (*http.Request, error)) (*http.Response, error) {
	const maxAttempts = 4
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := o.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := o.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}
