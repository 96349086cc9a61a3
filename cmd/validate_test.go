package cmd

import (
	"errors"
	"testing"

	"github.com/Tiliavir/trivial-trip-planner/internal/model"
	"github.com/Tiliavir/trivial-trip-planner/internal/triptree"
)

func leafAt(id, destID int) *model.DestinationLeaf {
	return &model.DestinationLeaf{ID: id, Destination: model.Destination{ID: destID}}
}

func TestValidateTree(t *testing.T) {
	tests := []struct {
		name string
		root *model.Composite
		want error
	}{
		{
			"single item root",
			&model.Composite{ID: 1, Children: []model.Node{leafAt(2, 10)}},
			nil,
		},
		{
			"contiguous at root",
			&model.Composite{ID: 1, Children: []model.Node{leafAt(2, 10), leafAt(3, 10)}},
			errContiguous,
		},
		{
			"contiguous in sub-trip",
			&model.Composite{ID: 1, Children: []model.Node{
				leafAt(2, 10),
				&model.Composite{ID: 3, Children: []model.Node{leafAt(4, 11), leafAt(5, 11)}},
			}},
			errContiguous,
		},
		{
			"sub-trip with one item",
			&model.Composite{ID: 1, Children: []model.Node{
				leafAt(2, 10),
				&model.Composite{ID: 3, Children: []model.Node{leafAt(4, 11)}},
			}},
			errTooFewItems,
		},
		{
			"valid nested",
			&model.Composite{ID: 1, Children: []model.Node{
				leafAt(2, 10),
				&model.Composite{ID: 3, Children: []model.Node{leafAt(4, 11), leafAt(5, 12)}},
				leafAt(6, 10),
			}},
			nil,
		},
	}
	for _, tt := range tests {
		err := validateTree(tt.root)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: validateTree = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestValidateReorder(t *testing.T) {
	root := &model.Composite{ID: 1, Children: []model.Node{
		leafAt(2, 10),
		&model.Composite{ID: 3, Children: []model.Node{leafAt(4, 11), leafAt(5, 12)}},
	}}

	// Pulling one of two items out of a sub-trip leaves it too small.
	moved, r, err := triptree.Move(root, 4, 1, 0)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if err := validateReorder(moved, r); !errors.Is(err, errTooFewItems) {
		t.Errorf("validateReorder = %v, want errTooFewItems", err)
	}

	// Reordering inside the root is fine even though the root is small.
	small := &model.Composite{ID: 1, Children: []model.Node{leafAt(2, 10), leafAt(3, 11)}}
	moved, r, err = triptree.Move(small, 3, 1, 0)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if err := validateReorder(moved, r); err != nil {
		t.Errorf("validateReorder = %v, want nil", err)
	}

	// Moving a destination next to itself.
	dup := &model.Composite{ID: 1, Children: []model.Node{leafAt(2, 10), leafAt(3, 11), leafAt(4, 10)}}
	moved, r, err = triptree.Move(dup, 4, 1, 1)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if err := validateReorder(moved, r); !errors.Is(err, errContiguous) {
		t.Errorf("validateReorder = %v, want errContiguous", err)
	}
}

func TestValidateStops(t *testing.T) {
	tests := []struct {
		ids []int
		ok  bool
	}{
		{nil, false},
		{[]int{1}, false},
		{[]int{1, 2}, true},
		{[]int{1, 2, 1}, true},
		{[]int{1, 2, 2}, false},
	}
	for _, tt := range tests {
		stops := make([]model.Stop, len(tt.ids))
		for i, id := range tt.ids {
			stops[i] = model.Stop{DestinationID: id}
		}
		err := validateStops(stops)
		if (err == nil) != tt.ok {
			t.Errorf("validateStops(%v) = %v, want ok=%v", tt.ids, err, tt.ok)
		}
	}
}
