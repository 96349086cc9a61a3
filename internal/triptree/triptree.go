// Package triptree provides read-only queries and validation over a trip
// tree snapshot. Every function is pure: none of them mutate their input or
// perform I/O.
package triptree

import "github.com/Tiliavir/trivial-trip-planner/internal/model"

// FindByID searches the tree rooted at root depth-first, pre-order, in child
// order, and returns the first node whose id equals id.
func FindByID(root model.Node, id int) (model.Node, bool) {
	if root.NodeID() == id {
		return root, true
	}
	c, ok := root.(*model.Composite)
	if !ok {
		return nil, false
	}
	for _, child := range c.Children {
		if n, found := FindByID(child, id); found {
			return n, true
		}
	}
	return nil, false
}

// FindParentByID returns the composite whose direct child has the given id.
// The root has no parent, so looking up the root's id reports false.
func FindParentByID(root model.Node, id int) (*model.Composite, bool) {
	return findParent(root, id, nil)
}

func findParent(n model.Node, id int, parent *model.Composite) (*model.Composite, bool) {
	if n.NodeID() == id {
		return parent, parent != nil
	}
	c, ok := n.(*model.Composite)
	if !ok {
		return nil, false
	}
	for _, child := range c.Children {
		if p, found := findParent(child, id, c); found {
			return p, true
		}
	}
	return nil, false
}

// Contains reports whether a node with the given id exists in the tree.
func Contains(root model.Node, id int) bool {
	if root.NodeID() == id {
		return true
	}
	c, ok := root.(*model.Composite)
	if !ok {
		return false
	}
	for _, child := range c.Children {
		if Contains(child, id) {
			return true
		}
	}
	return false
}

// Flatten lists the destinations of every leaf in depth-first, left-to-right
// order. Each entry's Group is the depth the leaf was found at; the root's
// direct children are at depth 1.
func Flatten(root model.Node) []model.GroupedDestination {
	out := []model.GroupedDestination{}
	return flatten(root, 0, out)
}

func flatten(n model.Node, depth int, out []model.GroupedDestination) []model.GroupedDestination {
	switch n := n.(type) {
	case *model.DestinationLeaf:
		return append(out, model.GroupedDestination{Destination: n.Destination, Group: depth})
	case *model.Composite:
		for _, child := range n.Children {
			out = flatten(child, depth+1, out)
		}
	}
	return out
}

// HasContiguousDestinations reports whether two adjacent leaf children of c
// visit the same destination. Only c's direct children are inspected, and a
// composite between two leaves breaks adjacency.
func HasContiguousDestinations(c *model.Composite) bool {
	if c == nil {
		return false
	}
	for i := 1; i < len(c.Children); i++ {
		prev, ok := c.Children[i-1].(*model.DestinationLeaf)
		if !ok {
			continue
		}
		cur, ok := c.Children[i].(*model.DestinationLeaf)
		if !ok {
			continue
		}
		if prev.Destination.ID == cur.Destination.ID {
			return true
		}
	}
	return false
}

// Reorder describes the composites touched by a drag-and-drop move, in their
// post-move state.
type Reorder struct {
	// Source is the composite the node was dragged out of.
	Source *model.Composite
	// Target is the composite the node was dropped into.
	Target *model.Composite
	// StayedInSource is true when the node moved within Source.
	StayedInSource bool
}

// ContiguousAfterReorder reports whether the move left two adjacent leaves
// with the same destination in any composite it touched.
func ContiguousAfterReorder(r Reorder) bool {
	if HasContiguousDestinations(r.Source) {
		return true
	}
	return !r.StayedInSource && HasContiguousDestinations(r.Target)
}

// HasFewerThanTwoChildren reports whether the move left a composite it
// touched with fewer than two children.
func HasFewerThanTwoChildren(r Reorder) bool {
	if fewerThanTwo(r.Source) {
		return true
	}
	return !r.StayedInSource && fewerThanTwo(r.Target)
}

func fewerThanTwo(c *model.Composite) bool {
	return c != nil && len(c.Children) < 2
}

// Composites returns every composite in the tree in pre-order, root first.
func Composites(root model.Node) []*model.Composite {
	var out []*model.Composite
	var walk func(model.Node)
	walk = func(n model.Node) {
		c, ok := n.(*model.Composite)
		if !ok {
			return
		}
		out = append(out, c)
		for _, child := range c.Children {
			walk(child)
		}
	}
	walk(root)
	return out
}
