package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/emergencyhelp/internal/client/geo"
)

// Locate asks the locator for the current position. It runs once on the
// first nearby listing and again whenever the user issues "locate".
func (a *App) Locate(ctx context.Context) error {
	a.located = true

	pos, err := a.locator.Locate(ctx)
	if err != nil {
		switch {
		case errors.Is(err, geo.ErrPermissionDenied):
			printError(a.out, "Location access denied. Type 'locate' to try again.")
		default:
			printError(a.out, "Unable to determine your location. Type 'locate' to try again.")
		}
		a.logger.Debug(ctx, "locate failed", "error", err)
		return err
	}

	a.position = &pos
	fmt.Fprintf(a.out, "Location set to %s\n", pos)
	return nil
}

// searchPosition is the last located position, or the configured default.
func (a *App) searchPosition() (geo.Position, bool) {
	if a.position != nil {
		return *a.position, true
	}
	return geo.Position{Latitude: a.config.DefaultLatitude, Longitude: a.config.DefaultLongitude}, false
}

// Nearby lists one page of users around the search position.
func (a *App) Nearby(ctx context.Context, args []string) error {
	page, err := parsePage(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: nearby [page]")
		return err
	}

	if !a.located {
		_ = a.Locate(ctx)
	}

	pos, own := a.searchPosition()
	if !own {
		printStatus(a.out, fmt.Sprintf("Using default location %s", pos))
	}

	if err := a.dir.ListNearby(ctx, pos.Latitude, pos.Longitude, page); err != nil {
		a.reportFailure(err)
		return err
	}

	nearby := a.dirStore.State().NearbyUsers
	users := a.resolver.Enrich(ctx, nearby.Users)
	return renderNearby(a.out, users, nearby)
}
