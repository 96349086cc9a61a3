package triptree

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Tiliavir/trivial-trip-planner/internal/model"
)

var (
	ErrNodeNotFound    = errors.New("trip node not found")
	ErrMoveRoot        = errors.New("the trip itself cannot be moved")
	ErrNotComposite    = errors.New("target is not a sub-trip")
	ErrMoveIntoSelf    = errors.New("a sub-trip cannot be moved into itself")
	ErrIndexOutOfRange = errors.New("position out of range")
)

// Clone returns a deep copy of the tree rooted at n.
func Clone(n model.Node) model.Node {
	switch n := n.(type) {
	case *model.Composite:
		c := &model.Composite{
			ID:        n.ID,
			Name:      n.Name,
			Users:     slices.Clone(n.Users),
			UserRoles: slices.Clone(n.UserRoles),
			Showing:   n.Showing,
			Schedule:  cloneSchedule(n.Schedule),
			Children:  make([]model.Node, 0, len(n.Children)),
		}
		for _, child := range n.Children {
			c.Children = append(c.Children, Clone(child))
		}
		return c
	case *model.DestinationLeaf:
		return &model.DestinationLeaf{
			ID:          n.ID,
			Name:        n.Name,
			Destination: n.Destination,
			Schedule:    cloneSchedule(n.Schedule),
		}
	}
	return nil
}

func cloneSchedule(s model.Schedule) model.Schedule {
	return model.Schedule{
		ArrivalDate:   cloneString(s.ArrivalDate),
		ArrivalTime:   cloneString(s.ArrivalTime),
		DepartureDate: cloneString(s.DepartureDate),
		DepartureTime: cloneString(s.DepartureTime),
	}
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	s := *p
	return &s
}

// Move relocates node nodeID to position index among the children of the
// composite targetID. The move is applied to a copy of root, which is
// returned together with the touched composites so the caller can validate
// the result before committing it.
func Move(root *model.Composite, nodeID, targetID, index int) (*model.Composite, Reorder, error) {
	tree := Clone(root).(*model.Composite)
	if nodeID == tree.ID {
		return nil, Reorder{}, ErrMoveRoot
	}

	node, ok := FindByID(tree, nodeID)
	if !ok {
		return nil, Reorder{}, fmt.Errorf("%w: %d", ErrNodeNotFound, nodeID)
	}
	source, _ := FindParentByID(tree, nodeID)

	found, ok := FindByID(tree, targetID)
	if !ok {
		return nil, Reorder{}, fmt.Errorf("%w: %d", ErrNodeNotFound, targetID)
	}
	target, ok := found.(*model.Composite)
	if !ok {
		return nil, Reorder{}, fmt.Errorf("%w: %d", ErrNotComposite, targetID)
	}
	if Contains(node, targetID) {
		return nil, Reorder{}, fmt.Errorf("%w: %d", ErrMoveIntoSelf, nodeID)
	}

	size := len(target.Children)
	if target == source {
		size--
	}
	if index < 0 || index > size {
		return nil, Reorder{}, fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, index, size)
	}

	from := slices.IndexFunc(source.Children, func(n model.Node) bool { return n.NodeID() == nodeID })
	source.Children = slices.Delete(source.Children, from, from+1)
	target.Children = slices.Insert(target.Children, index, node)

	return tree, Reorder{Source: source, Target: target, StayedInSource: source == target}, nil
}
