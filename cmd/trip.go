package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-trip-planner/internal/model"
	"github.com/Tiliavir/trivial-trip-planner/internal/timecalc"
	"github.com/Tiliavir/trivial-trip-planner/internal/triptree"
)

var (
	showJSON   bool
	showLegacy bool

	createStops []string
	createUsers []int

	editFile string

	moveTo     int
	moveIndex  int
	moveDryRun bool
)

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Inspect and change a single trip",
}

var tripShowCmd = &cobra.Command{
	Use:   "show <trip-id>",
	Short: "Show a trip as a tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runTripShow,
}

var tripCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a trip from a list of destinations",
	Long: `Create a trip from a list of destinations.

Each --stop is "destinationId[,arrivalDate[,arrivalTime[,departureDate[,departureTime]]]]"
with dates as YYYY-MM-DD and times as HH:mm. Leave a field empty to skip it:
  ttp trip create "Weekend" --stop 7,2026-03-01,09:30 --stop 8,,,2026-03-03`,
	Args: cobra.ExactArgs(1),
	RunE: runTripCreate,
}

var tripEditCmd = &cobra.Command{
	Use:   "edit --file <trip.json>",
	Short: "Replace a trip with the tree in a JSON file (as printed by show --json)",
	Args:  cobra.NoArgs,
	RunE:  runTripEdit,
}

var tripStopsCmd = &cobra.Command{
	Use:   "set-stops <trip-id>",
	Short: "Replace the stops of a trip through the older flat traveller endpoint",
	Args:  cobra.ExactArgs(1),
	RunE:  runTripSetStops,
}

var tripRenameCmd = &cobra.Command{
	Use:   "rename <trip-id> <name>",
	Short: "Rename a trip or sub-trip",
	Args:  cobra.ExactArgs(2),
	RunE:  runTripRename,
}

var tripMoveCmd = &cobra.Command{
	Use:   "move <trip-id> <node-id>",
	Short: "Move a destination or sub-trip to another position",
	Args:  cobra.ExactArgs(2),
	RunE:  runTripMove,
}

var tripLeaveCmd = &cobra.Command{
	Use:   "leave <trip-id>",
	Short: "Leave a trip shared with you",
	Args:  cobra.ExactArgs(1),
	RunE:  runTripLeave,
}

var tripDeleteCmd = &cobra.Command{
	Use:   "delete <trip-id>",
	Short: "Delete a trip you own",
	Args:  cobra.ExactArgs(1),
	RunE:  runTripDelete,
}

func init() {
	tripShowCmd.Flags().BoolVar(&showJSON, "json", false, "Print the trip as JSON")
	tripShowCmd.Flags().BoolVar(&showLegacy, "legacy", false, "Use the older flat traveller endpoint")

	tripCreateCmd.Flags().StringArrayVar(&createStops, "stop", nil, "Destination to visit (repeatable)")
	tripCreateCmd.Flags().IntSliceVar(&createUsers, "user", nil, "User id to share the trip with (repeatable)")

	tripStopsCmd.Flags().StringArrayVar(&createStops, "stop", nil, "Destination to visit, same format as create (repeatable)")

	tripEditCmd.Flags().StringVar(&editFile, "file", "", "Trip JSON file (required)")
	_ = tripEditCmd.MarkFlagRequired("file")

	tripMoveCmd.Flags().IntVar(&moveTo, "to", -1, "Id of the trip or sub-trip to move into (default: current parent)")
	tripMoveCmd.Flags().IntVar(&moveIndex, "index", 0, "Position among the new siblings, starting at 0")
	tripMoveCmd.Flags().BoolVar(&moveDryRun, "dry-run", false, "Validate and print the result without saving")

	tripCmd.AddCommand(tripShowCmd)
	tripCmd.AddCommand(tripCreateCmd)
	tripCmd.AddCommand(tripEditCmd)
	tripCmd.AddCommand(tripStopsCmd)
	tripCmd.AddCommand(tripRenameCmd)
	tripCmd.AddCommand(tripMoveCmd)
	tripCmd.AddCommand(tripLeaveCmd)
	tripCmd.AddCommand(tripDeleteCmd)
	tripCmd.AddCommand(tripExportCmd)
}

func runTripShow(cmd *cobra.Command, args []string) error {
	tripID := parseID("trip id", args[0])
	a := loadApp()
	sess := a.session()
	ctx, cancel := a.context()
	defer cancel()

	if showLegacy {
		ft, err := a.client.GetTravellerTrip(ctx, sess, tripID)
		if err != nil {
			fail(exitFailure, err)
		}
		if showJSON {
			return writeJSON(ft)
		}
		printStops(os.Stdout, ft)
		return nil
	}

	trip, err := a.client.GetTrip(ctx, sess, tripID)
	if err != nil {
		fail(exitFailure, err)
	}
	if showJSON {
		return writeJSON(trip)
	}
	printTree(os.Stdout, trip)
	return nil
}

func writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fail(exitFailure, fmt.Errorf("error encoding JSON: %w", err))
	}
	fmt.Println(string(data))
	return nil
}

// parseStop parses a --stop value.
func parseStop(s string) (model.Stop, error) {
	fields := strings.Split(s, ",")
	if len(fields) > 5 {
		return model.Stop{}, fmt.Errorf("stop %q: too many fields", s)
	}
	for len(fields) < 5 {
		fields = append(fields, "")
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Stop{}, fmt.Errorf("stop %q: invalid destination id", s)
	}
	stop := model.Stop{DestinationID: id}

	targets := []**string{&stop.ArrivalDate, &stop.ArrivalTime, &stop.DepartureDate, &stop.DepartureTime}
	for i, f := range fields[1:] {
		if f == "" {
			continue
		}
		if i%2 == 0 {
			if _, err := timecalc.ParseEpochDate(f, nil); err != nil {
				return model.Stop{}, fmt.Errorf("stop %q: %w", s, err)
			}
		} else if _, err := timecalc.ParseClock(f); err != nil {
			return model.Stop{}, fmt.Errorf("stop %q: %w", s, err)
		}
		v := f
		*targets[i] = &v
	}
	return stop, nil
}

// parseStops parses and validates all --stop values.
func parseStops(values []string) ([]model.Stop, error) {
	stops := make([]model.Stop, 0, len(values))
	for _, v := range values {
		stop, err := parseStop(v)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
	if err := validateStops(stops); err != nil {
		return nil, err
	}
	return stops, nil
}

func runTripCreate(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		fail(exitUsage, fmt.Errorf("trip name must not be empty"))
	}
	stops, err := parseStops(createStops)
	if err != nil {
		fail(exitUsage, err)
	}

	a := loadApp()
	sess := a.session()
	ctx, cancel := a.context()
	defer cancel()

	trip, err := a.client.CreateTrip(ctx, sess, name, stops, createUsers)
	if err != nil {
		fail(exitFailure, err)
	}
	fmt.Printf("Created trip %q (#%d) with %d destinations.\n", name, trip.ID, len(stops))
	return nil
}

func runTripEdit(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(editFile)
	if err != nil {
		fail(exitUsage, fmt.Errorf("reading %s: %w", editFile, err))
	}
	var trip model.Composite
	if err := json.Unmarshal(data, &trip); err != nil {
		fail(exitUsage, fmt.Errorf("parsing %s: %w", editFile, err))
	}
	if err := validateTree(&trip); err != nil {
		fail(exitUsage, err)
	}

	a := loadApp()
	sess := a.session()
	ctx, cancel := a.context()
	defer cancel()

	// Sub-trips are sent by reference, so save the deepest ones first.
	composites := triptree.Composites(&trip)
	slices.Reverse(composites)
	for _, c := range composites {
		if err := a.client.EditTrip(ctx, sess, c); err != nil {
			fail(exitFailure, fmt.Errorf("saving %q (#%d): %w", c.Name, c.ID, err))
		}
		a.log.Debug().Int("trip_node_id", c.ID).Msg("saved")
	}
	fmt.Printf("Saved trip %q (#%d).\n", trip.Name, trip.ID)
	return nil
}

func runTripSetStops(cmd *cobra.Command, args []string) error {
	tripID := parseID("trip id", args[0])
	stops, err := parseStops(createStops)
	if err != nil {
		fail(exitUsage, err)
	}

	a := loadApp()
	sess := a.session()
	ctx, cancel := a.context()
	defer cancel()

	ft, err := a.client.GetTravellerTrip(ctx, sess, tripID)
	if err != nil {
		fail(exitFailure, err)
	}
	ft.Stops = stops
	if err := a.client.EditTravellerTrip(ctx, sess, tripID, ft); err != nil {
		fail(exitFailure, err)
	}
	printStops(os.Stdout, ft)
	return nil
}

func runTripRename(cmd *cobra.Command, args []string) error {
	tripID := parseID("trip id", args[0])
	name := strings.TrimSpace(args[1])
	if name == "" {
		fail(exitUsage, fmt.Errorf("trip name must not be empty"))
	}

	a := loadApp()
	sess := a.session()
	ctx, cancel := a.context()
	defer cancel()

	trip, err := a.client.GetTrip(ctx, sess, tripID)
	if err != nil {
		fail(exitFailure, err)
	}
	old := trip.Name
	trip.Name = name
	if err := a.client.EditTrip(ctx, sess, trip); err != nil {
		fail(exitFailure, err)
	}
	fmt.Printf("Renamed %q to %q.\n", old, name)
	return nil
}

func runTripMove(cmd *cobra.Command, args []string) error {
	tripID := parseID("trip id", args[0])
	nodeID := parseID("node id", args[1])

	a := loadApp()
	sess := a.session()
	ctx, cancel := a.context()
	defer cancel()

	trip, err := a.client.GetTrip(ctx, sess, tripID)
	if err != nil {
		fail(exitFailure, err)
	}

	target := moveTo
	if target < 0 {
		parent, ok := triptree.FindParentByID(trip, nodeID)
		if !ok {
			fail(exitUsage, fmt.Errorf("node %d is not part of trip %d", nodeID, tripID))
		}
		target = parent.ID
	}

	moved, r, err := triptree.Move(trip, nodeID, target, moveIndex)
	if err != nil {
		fail(exitUsage, err)
	}
	if err := validateReorder(moved, r); err != nil {
		fail(exitUsage, fmt.Errorf("cannot move node %d: %w", nodeID, err))
	}

	if moveDryRun {
		printTree(os.Stdout, moved)
		return nil
	}

	touched := []*model.Composite{r.Target}
	if !r.StayedInSource {
		touched = append(touched, r.Source)
	}
	for _, c := range touched {
		if err := a.client.EditTrip(ctx, sess, c); err != nil {
			fail(exitFailure, fmt.Errorf("saving %q (#%d): %w", c.Name, c.ID, err))
		}
	}
	printTree(os.Stdout, moved)
	return nil
}

func runTripLeave(cmd *cobra.Command, args []string) error {
	tripID := parseID("trip id", args[0])
	a := loadApp()
	sess := a.session()
	ctx, cancel := a.context()
	defer cancel()

	result, err := a.client.LeaveTrip(ctx, sess, tripID)
	if err != nil {
		fail(exitFailure, err)
	}
	if len(result) > 0 {
		a.log.Debug().RawJSON("result", result).Msg("left trip")
	}
	fmt.Printf("Left trip #%d.\n", tripID)
	return nil
}

func runTripDelete(cmd *cobra.Command, args []string) error {
	tripID := parseID("trip id", args[0])
	a := loadApp()
	sess := a.session()
	ctx, cancel := a.context()
	defer cancel()

	if err := a.client.DeleteTrip(ctx, sess, tripID); err != nil {
		fail(exitFailure, err)
	}
	fmt.Printf("Deleted trip #%d.\n", tripID)
	return nil
}
