package geocode

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/emergencyhelp/internal/client/models"
	"github.com/dmitrijs2005/emergencyhelp/internal/logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type Resolver struct {
	geocoder Geocoder
	cache    *Cache
	logger   logging.Logger
	workers  int
	inflight singleflight.Group
}

// NewResolver wires g behind cache. workers bounds concurrent lookups in Enrich.
func NewResolver(g Geocoder, cache *Cache, logger logging.Logger, workers int) *Resolver {
	if logger == nil {
		logger = logging.Nop{}
	}
	if workers < 1 {
		workers = 1
	}
	return &Resolver{geocoder: g, cache: cache, logger: logger, workers: workers}
}

// Resolve returns the address of the point, or "" when the lookup failed.
// The empty string means "unknown" and is not cached.
func (r *Resolver) Resolve(ctx context.Context, latitude, longitude float64) string {
	key := Coordinate{Latitude: latitude, Longitude: longitude}
	if addr, ok := r.cache.Get(key); ok {
		return addr
	}

	// The shared lookup outlives any single waiter; OpenCage bounds it
	// with its own client timeout.
	ch := r.inflight.DoChan(flightKey(key), func() (any, error) {
		addr, err := r.geocoder.Reverse(context.WithoutCancel(ctx), latitude, longitude)
		if err != nil {
			return "", err
		}
		r.cache.Add(key, addr)
		return addr, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			r.logger.Warn(ctx, "error fetching location", "lat", latitude, "long", longitude, "error", res.Err)
			return ""
		}
		return res.Val.(string)
	case <-ctx.Done():
		r.logger.Warn(ctx, "location lookup abandoned", "lat", latitude, "long", longitude, "error", ctx.Err())
		return ""
	}
}

// Enrich returns copies of users with Address populated from each location.
// Order is preserved; a failed row gets an empty address.
func (r *Resolver) Enrich(ctx context.Context, users []models.User) []models.User {
	out := make([]models.User, len(users))
	copy(out, users)

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i := range out {
		g.Go(func() error {
			loc := out[i].Location
			out[i].Address = r.Resolve(ctx, loc.Latitude(), loc.Longitude())
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// Invalidate drops the cached address of one point.
func (r *Resolver) Invalidate(latitude, longitude float64) {
	r.cache.Remove(Coordinate{Latitude: latitude, Longitude: longitude})
}

// Purge drops every cached address.
func (r *Resolver) Purge() {
	r.cache.Purge()
}

func flightKey(c Coordinate) string {
	return strconv.FormatFloat(c.Latitude, 'g', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'g', -1, 64)
}
