package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-trip-planner/internal/export"
	"github.com/Tiliavir/trivial-trip-planner/internal/model"
	"github.com/Tiliavir/trivial-trip-planner/internal/triptree"
)

var exportFormat string

var tripExportCmd = &cobra.Command{
	Use:   "export <trip-id>",
	Short: "Export the destinations of a trip to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	tripExportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, paths")
}

func runExport(cmd *cobra.Command, args []string) error {
	tripID := parseID("trip id", args[0])

	write, err := exportWriter(exportFormat)
	if err != nil {
		fail(exitUsage, err)
	}

	a := loadApp()
	sess := a.session()
	ctx, cancel := a.context()
	defer cancel()

	trip, err := a.client.GetTrip(ctx, sess, tripID)
	if err != nil {
		fail(exitFailure, err)
	}
	if err := write(os.Stdout, triptree.Flatten(trip)); err != nil {
		fail(exitFailure, fmt.Errorf("error writing %s: %w", exportFormat, err))
	}
	return nil
}

func exportWriter(format string) (func(io.Writer, []model.GroupedDestination) error, error) {
	switch format {
	case "csv", "":
		return export.WriteCSV, nil
	case "json":
		return export.WriteJSON, nil
	case "paths":
		return export.WritePaths, nil
	}
	return nil, fmt.Errorf("unknown format %q: want csv, json or paths", format)
}
