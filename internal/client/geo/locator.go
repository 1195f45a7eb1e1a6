// Package geo supplies the current position of the person using the client.
package geo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrUnavailable      = errors.New("location unavailable")
)

type Position struct {
	Latitude  float64
	Longitude float64
}

func (p Position) String() string {
	return strconv.FormatFloat(p.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(p.Longitude, 'f', -1, 64)
}

type Locator interface {
	Locate(ctx context.Context) (Position, error)
}

// StaticLocator always reports the same position.
type StaticLocator struct {
	Position Position
}

func (s StaticLocator) Locate(ctx context.Context) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	return s.Position, nil
}

// PromptLocator asks for a "lat,lon" answer on r. An empty answer or "n"
// refuses to share the position.
type PromptLocator struct {
	r *bufio.Reader
	w io.Writer
}

func NewPromptLocator(r *bufio.Reader, w io.Writer) *PromptLocator {
	return &PromptLocator{r: r, w: w}
}

func (p *PromptLocator) Locate(ctx context.Context) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}

	fmt.Fprint(p.w, "Share your location as lat,lon (empty or n to deny): ")
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return Position{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" || strings.EqualFold(answer, "n") {
		return Position{}, ErrPermissionDenied
	}
	return ParsePosition(answer)
}

// ParsePosition parses "lat,lon" and checks coordinate ranges.
func ParsePosition(s string) (Position, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return Position{}, fmt.Errorf("%w: expected lat,lon, got %q", ErrUnavailable, s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil || lat < -90 || lat > 90 {
		return Position{}, fmt.Errorf("%w: invalid latitude %q", ErrUnavailable, latStr)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil || lon < -180 || lon > 180 {
		return Position{}, fmt.Errorf("%w: invalid longitude %q", ErrUnavailable, lonStr)
	}

	return Position{Latitude: lat, Longitude: lon}, nil
}
