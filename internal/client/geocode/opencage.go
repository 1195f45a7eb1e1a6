package geocode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/emergencyhelp/internal/jsonx"
)

// NoResultsFound is returned for a well-formed response with no results.
const NoResultsFound = "No results found"

// Geocoder resolves a coordinate pair to a formatted address.
type Geocoder interface {
	Reverse(ctx context.Context, latitude, longitude float64) (string, error)
}

type OpenCage struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func NewOpenCage(endpoint, apiKey string, timeout time.Duration) *OpenCage {
	return &OpenCage{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
	}
}

type openCageResponse struct {
	Results []struct {
		Formatted string `json:"formatted"`
	} `json:"results"`
}

// Reverse queries q=<lat>+<lon>. The first result's formatted string wins.
func (o *OpenCage) Reverse(ctx context.Context, latitude, longitude float64) (string, error) {
	u, err := url.Parse(o.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid geocoding url %q: %w", o.endpoint, err)
	}
	q := url.Values{
		"q":   {formatCoord(latitude) + " " + formatCoord(longitude)},
		"key": {o.apiKey},
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}

	resp, err := o.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("geocoding request: unexpected status %s", resp.Status)
	}

	var body openCageResponse
	if err := jsonx.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode geocoding response: %w", err)
	}

	if len(body.Results) == 0 {
		return NoResultsFound, nil
	}
	return body.Results[0].Formatted, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
