package cmd

import (
	"bytes"
	"testing"

	"golang.org/x/oauth2"

	"github.com/Tiliavir/trivial-trip-planner/internal/model"
	"github.com/Tiliavir/trivial-trip-planner/internal/triptree"
)

func strp(s string) *string { return &s }

func TestFormatSchedule(t *testing.T) {
	tests := []struct {
		name string
		in   model.Schedule
		want string
	}{
		{"empty", model.Schedule{}, ""},
		{"arrival date only", model.Schedule{ArrivalDate: strp("2026-03-01")}, "arr 2026-03-01"},
		{"arrival time only", model.Schedule{ArrivalTime: strp("09:30")}, "arr 09:30"},
		{
			"full",
			model.Schedule{
				ArrivalDate:   strp("2026-03-01"),
				ArrivalTime:   strp("09:30"),
				DepartureDate: strp("2026-03-02"),
				DepartureTime: strp("18:00"),
			},
			"arr 2026-03-01 09:30 · dep 2026-03-02 18:00",
		},
		{"departure only", model.Schedule{DepartureDate: strp("2026-03-02")}, "dep 2026-03-02"},
	}
	for _, tt := range tests {
		got := formatSchedule(tt.in)
		if got != tt.want {
			t.Errorf("%s: formatSchedule = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFormatSummary(t *testing.T) {
	tests := []struct {
		in   triptree.Summary
		want string
	}{
		{triptree.Summary{}, "0 destinations"},
		{triptree.Summary{Destinations: 1}, "1 destination"},
		{triptree.Summary{Destinations: 3, SubTrips: 1}, "3 destinations, 1 sub-trip"},
		{triptree.Summary{Destinations: 4, SubTrips: 2}, "4 destinations, 2 sub-trips"},
		{
			triptree.Summary{Destinations: 2, FirstDate: "2026-03-01", LastDate: "2026-03-03", Days: 3},
			"2 destinations, 2026-03-01 → 2026-03-03 (3 days)",
		},
	}
	for _, tt := range tests {
		got := formatSummary(tt.in)
		if got != tt.want {
			t.Errorf("formatSummary(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrintTree(t *testing.T) {
	root := &model.Composite{
		ID:   1,
		Name: "Italy",
		Children: []model.Node{
			&model.DestinationLeaf{
				ID:          2,
				Name:        "Rome",
				Destination: model.Destination{ID: 10, Name: "Roma"},
				Schedule:    model.Schedule{ArrivalDate: strp("2026-03-01")},
			},
			&model.Composite{
				ID:   3,
				Name: "North",
				Children: []model.Node{
					&model.DestinationLeaf{ID: 4, Name: "Milan", Destination: model.Destination{ID: 11, Name: "Milano"}},
					&model.DestinationLeaf{ID: 5, Name: "Turin", Destination: model.Destination{ID: 12, Name: "Torino"}},
				},
			},
		},
	}

	var buf bytes.Buffer
	printTree(&buf, root)

	want := "Italy (#1)  3 destinations, 1 sub-trip, 2026-03-01 → 2026-03-01 (1 day)\n" +
		"├── Rome (#2) → Roma [dest 10]  arr 2026-03-01\n" +
		"└── North (#3)\n" +
		"    ├── Milan (#4) → Milano [dest 11]\n" +
		"    └── Turin (#5) → Torino [dest 12]\n"
	if buf.String() != want {
		t.Errorf("printTree output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrintStopsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printStops(&buf, model.FlatTrip{Name: "Empty"})
	want := "Empty\n  No destinations.\n"
	if buf.String() != want {
		t.Errorf("printStops = %q, want %q", buf.String(), want)
	}
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		tok  *oauth2.Token
		want string
	}{
		{nil, "(none)"},
		{&oauth2.Token{}, "(none)"},
		{&oauth2.Token{AccessToken: "abc"}, "****"},
		{&oauth2.Token{AccessToken: "secret-token-1234"}, "****1234"},
	}
	for _, tt := range tests {
		got := maskToken(tt.tok)
		if got != tt.want {
			t.Errorf("maskToken(%v) = %q, want %q", tt.tok, got, tt.want)
		}
	}
}
