package triptree

import (
	"github.com/Tiliavir/trivial-trip-planner/internal/model"
	"github.com/Tiliavir/trivial-trip-planner/internal/timecalc"
)

// Summary holds display totals for a trip tree.
type Summary struct {
	Destinations int
	SubTrips     int
	Depth        int
	// FirstDate and LastDate are the earliest and latest scheduled dates of
	// any leaf, empty when no leaf has a date.
	FirstDate string
	LastDate  string
	Days      int
}

// Summarize computes display totals for the tree rooted at root. The root
// itself is not counted as a sub-trip.
func Summarize(root model.Node) Summary {
	var s Summary
	var walk func(n model.Node, depth int)
	walk = func(n model.Node, depth int) {
		if depth > s.Depth {
			s.Depth = depth
		}
		switch n := n.(type) {
		case *model.DestinationLeaf:
			s.Destinations++
			for _, d := range []*string{n.ArrivalDate, n.DepartureDate} {
				if d == nil || *d == "" {
					continue
				}
				if s.FirstDate == "" || *d < s.FirstDate {
					s.FirstDate = *d
				}
				if *d > s.LastDate {
					s.LastDate = *d
				}
			}
		case *model.Composite:
			if depth > 0 {
				s.SubTrips++
			}
			for _, child := range n.Children {
				walk(child, depth+1)
			}
		}
	}
	walk(root, 0)
	if s.FirstDate != "" {
		s.Days = timecalc.DaysSpanned(s.FirstDate, s.LastDate)
	}
	return s
}
