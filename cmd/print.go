package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Tiliavir/trivial-trip-planner/internal/model"
	"github.com/Tiliavir/trivial-trip-planner/internal/timecalc"
	"github.com/Tiliavir/trivial-trip-planner/internal/triptree"
)

// formatSchedule renders a schedule like "arr 2026-03-01 09:30 · dep 2026-03-02".
func formatSchedule(s model.Schedule) string {
	var parts []string
	if p := formatPoint(s.ArrivalDate, s.ArrivalTime); p != "" {
		parts = append(parts, "arr "+p)
	}
	if p := formatPoint(s.DepartureDate, s.DepartureTime); p != "" {
		parts = append(parts, "dep "+p)
	}
	return strings.Join(parts, " · ")
}

func formatPoint(date, clock *string) string {
	switch {
	case date != nil && clock != nil:
		return *date + " " + *clock
	case date != nil:
		return *date
	case clock != nil:
		return *clock
	}
	return ""
}

// formatSummary renders the display totals of a trip.
func formatSummary(s triptree.Summary) string {
	out := fmt.Sprintf("%d destinations", s.Destinations)
	if s.Destinations == 1 {
		out = "1 destination"
	}
	switch s.SubTrips {
	case 0:
	case 1:
		out += ", 1 sub-trip"
	default:
		out += fmt.Sprintf(", %d sub-trips", s.SubTrips)
	}
	if s.FirstDate != "" {
		out += fmt.Sprintf(", %s → %s (%s)", s.FirstDate, s.LastDate, timecalc.FormatDays(s.Days))
	}
	return out
}

// printTree writes root and its subtree as an indented outline.
func printTree(w io.Writer, root *model.Composite) {
	fmt.Fprintf(w, "%s (#%d)  %s\n", root.Name, root.ID, formatSummary(triptree.Summarize(root)))
	if sched := formatSchedule(root.Schedule); sched != "" {
		fmt.Fprintf(w, "  %s\n", sched)
	}
	printChildren(w, root.Children, "")
}

func printChildren(w io.Writer, children []model.Node, indent string) {
	for i, child := range children {
		branch, next := "├── ", "│   "
		if i == len(children)-1 {
			branch, next = "└── ", "    "
		}
		line := fmt.Sprintf("%s (#%d)", child.NodeName(), child.NodeID())
		if leaf, ok := child.(*model.DestinationLeaf); ok {
			line = fmt.Sprintf("%s (#%d) → %s [dest %d]", leaf.Name, leaf.ID, leaf.Destination.Name, leaf.Destination.ID)
		}
		if sched := formatSchedule(child.NodeSchedule()); sched != "" {
			line += "  " + sched
		}
		fmt.Fprintln(w, indent+branch+line)
		if c, ok := child.(*model.Composite); ok {
			printChildren(w, c.Children, indent+next)
		}
	}
}

// printStops writes the stops of a flat trip, one per line.
func printStops(w io.Writer, t model.FlatTrip) {
	fmt.Fprintln(w, t.Name)
	if len(t.Stops) == 0 {
		fmt.Fprintln(w, "  No destinations.")
		return
	}
	for i, s := range t.Stops {
		line := fmt.Sprintf("  %d. dest %d", i+1, s.DestinationID)
		if sched := formatSchedule(s.Schedule); sched != "" {
			line += "  " + sched
		}
		fmt.Fprintln(w, line)
	}
}
