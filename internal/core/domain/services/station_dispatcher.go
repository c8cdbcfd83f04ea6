package services

import (
	"errors"

	"kitchenops/internal/core/domain/model/station"
)

// ErrStationNotFound is returned when no suitable station is available
// for assignment. This occurs when no stations are provided, or none of
// the provided stations is active with load below capacity. Callers
// treat this as "leave the order unassigned", not as a failure.
var ErrStationNotFound = errors.New("station not found")

// StationDispatcher is a domain service responsible for finding the
// optimal station for a kitchen order.
//
// Selection algorithm:
//   - Only active stations with current load < capacity are candidates
//   - Station types are tried in the fixed preference order (grill,
//     fryer, oven, assembly, prep, cold); within the first type that has
//     candidates, the lowest-loaded station wins
//   - When no preferred type has candidates, the lowest-loaded candidate
//     overall wins
//   - Ties keep the first-seen station, so the input order decides
//
// The dispatcher only selects; incrementing the winner's load is the
// caller's job and happens under the atomic persistence guard, so a
// concurrent assignment that fills the station after selection simply
// loses the race and retries.
type StationDispatcher struct{}

// NewStationDispatcher creates a new StationDispatcher instance.
func NewStationDispatcher() StationDispatcher {
	return StationDispatcher{}
}

// Dispatch selects the optimal station from the given pool.
//
// Returns ErrStationNotFound when no active station has headroom.
func (d StationDispatcher) Dispatch(stations []*station.Station) (*station.Station, error) {
	candidates := make([]*station.Station, 0, len(stations))
	for _, s := range stations {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if s.HasHeadroom() {
			candidates = append(candidates, s)
		}
	}

	if len(candidates) == 0 {
		return nil, ErrStationNotFound
	}

	for _, typ := range station.PreferenceOrder() {
		if best := lowestLoaded(candidates, typ); best != nil {
			return best, nil
		}
	}

	// No candidate matched a preferred type; fall back to global lowest load.
	return lowestLoadedAny(candidates), nil
}

// lowestLoaded returns the lowest-loaded candidate of the given type, or
// nil when the type has no candidates. First-seen wins ties.
func lowestLoaded(candidates []*station.Station, typ station.Type) *station.Station {
	var best *station.Station
	for _, s := range candidates {
		if s.Type() != typ {
			continue
		}
		if best == nil || s.CurrentLoad() < best.CurrentLoad() {
			best = s
		}
	}
	return best
}

// lowestLoadedAny returns the lowest-loaded candidate regardless of
// type. First-seen wins ties.
func lowestLoadedAny(candidates []*station.Station) *station.Station {
	best := candidates[0]
	for _, s := range candidates[1:] {
		if s.CurrentLoad() < best.CurrentLoad() {
			best = s
		}
	}
	return best
}
