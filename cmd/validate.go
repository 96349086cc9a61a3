package cmd

import (
	"errors"
	"fmt"

	"github.com/Tiliavir/trivial-trip-planner/internal/model"
	"github.com/Tiliavir/trivial-trip-planner/internal/triptree"
)

var (
	errContiguous  = errors.New("the same destination would be visited twice in a row")
	errTooFewItems = errors.New("a sub-trip needs at least two items")
)

// validateTree checks every composite of a tree before it is sent to the
// backend. The root may hold any number of items; sub-trips need two.
func validateTree(root *model.Composite) error {
	for _, c := range triptree.Composites(root) {
		if triptree.HasContiguousDestinations(c) {
			return fmt.Errorf("%q (#%d): %w", c.Name, c.ID, errContiguous)
		}
		if c != root && triptree.HasFewerThanTwoChildren(triptree.Reorder{Source: c, StayedInSource: true}) {
			return fmt.Errorf("%q (#%d): %w", c.Name, c.ID, errTooFewItems)
		}
	}
	return nil
}

// validateReorder checks the composites a move touched.
func validateReorder(root *model.Composite, r triptree.Reorder) error {
	if triptree.ContiguousAfterReorder(r) {
		return errContiguous
	}
	subTrips := r
	if subTrips.Source == root {
		subTrips.Source = nil
	}
	if subTrips.Target == root {
		subTrips.Target = nil
	}
	if triptree.HasFewerThanTwoChildren(subTrips) {
		return errTooFewItems
	}
	return nil
}

// validateStops checks the stops of a new trip.
func validateStops(stops []model.Stop) error {
	if len(stops) < 2 {
		return fmt.Errorf("a trip needs at least two destinations, got %d", len(stops))
	}
	trip := &model.Composite{Children: make([]model.Node, 0, len(stops))}
	for _, s := range stops {
		trip.Children = append(trip.Children, &model.DestinationLeaf{Destination: model.Destination{ID: s.DestinationID}})
	}
	if triptree.HasContiguousDestinations(trip) {
		return errContiguous
	}
	return nil
}
