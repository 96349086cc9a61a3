// Package export writes the flattened destinations of a trip for use outside
// the CLI: spreadsheets, scripts and map overlays.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/twpayne/go-polyline"

	"github.com/Tiliavir/trivial-trip-planner/internal/model"
)

// Row is one destination in a CSV export.
type Row struct {
	Position      int     `csv:"position"`
	Group         int     `csv:"group"`
	DestinationID int     `csv:"destination_id"`
	Name          string  `csv:"name"`
	Country       string  `csv:"country"`
	Latitude      float64 `csv:"latitude"`
	Longitude     float64 `csv:"longitude"`
}

// Rows numbers the destinations from 1 in visiting order.
func Rows(ds []model.GroupedDestination) []Row {
	rows := make([]Row, 0, len(ds))
	for i, d := range ds {
		rows = append(rows, Row{
			Position:      i + 1,
			Group:         d.Group,
			DestinationID: d.ID,
			Name:          d.Name,
			Country:       d.Country,
			Latitude:      d.Latitude,
			Longitude:     d.Longitude,
		})
	}
	return rows
}

// WriteCSV writes the destinations as CSV with a header line.
func WriteCSV(w io.Writer, ds []model.GroupedDestination) error {
	rows := Rows(ds)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

// WriteJSON writes the destinations as an indented JSON array.
func WriteJSON(w io.Writer, ds []model.GroupedDestination) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

// GroupPath is the route through every destination of one group, encoded as
// a Google polyline so a map can draw each group in its own colour.
type GroupPath struct {
	Group    int    `json:"group"`
	Points   int    `json:"points"`
	Polyline string `json:"polyline"`
}

// Paths returns one GroupPath per group, in order of each group's first
// destination. Points keep their visiting order within a group.
func Paths(ds []model.GroupedDestination) []GroupPath {
	var order []int
	coords := map[int][][]float64{}
	for _, d := range ds {
		if _, seen := coords[d.Group]; !seen {
			order = append(order, d.Group)
		}
		coords[d.Group] = append(coords[d.Group], []float64{d.Latitude, d.Longitude})
	}

	paths := make([]GroupPath, 0, len(order))
	for _, g := range order {
		paths = append(paths, GroupPath{
			Group:    g,
			Points:   len(coords[g]),
			Polyline: string(polyline.EncodeCoords(coords[g])),
		})
	}
	return paths
}

// WritePaths writes the group paths as an indented JSON array.
func WritePaths(w io.Writer, ds []model.GroupedDestination) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Paths(ds)); err != nil {
		return fmt.Errorf("writing paths: %w", err)
	}
	return nil
}
