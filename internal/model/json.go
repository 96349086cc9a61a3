package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownNodeType is returned when a node's nodeType tag is neither
// TripComposite nor TripDestinationLeaf.
var ErrUnknownNodeType = errors.New("unknown trip node type")

// nodeJSON is the display-format JSON shape shared by both node variants.
type nodeJSON struct {
	TripNodeID  int               `json:"tripNodeId"`
	Name        string            `json:"name"`
	NodeType    string            `json:"nodeType"`
	Destination *Destination      `json:"destination,omitempty"`
	Users       []User            `json:"users,omitempty"`
	UserRoles   []UserRole        `json:"userRoles,omitempty"`
	IsShowing   bool              `json:"isShowing,omitempty"`
	TripNodes   []json.RawMessage `json:"tripNodes"`
	Schedule
}

type compositeOut struct {
	TripNodeID int        `json:"tripNodeId"`
	Name       string     `json:"name"`
	NodeType   string     `json:"nodeType"`
	Users      []User     `json:"users"`
	UserRoles  []UserRole `json:"userRoles,omitempty"`
	IsShowing  bool       `json:"isShowing"`
	TripNodes  []Node     `json:"tripNodes"`
	Schedule
}

type leafOut struct {
	TripNodeID  int         `json:"tripNodeId"`
	Name        string      `json:"name"`
	NodeType    string      `json:"nodeType"`
	Destination Destination `json:"destination"`
	TripNodes   []Node      `json:"tripNodes"`
	Schedule
}

// MarshalJSON encodes c and its subtree in display form.
func (c *Composite) MarshalJSON() ([]byte, error) {
	children := c.Children
	if children == nil {
		children = []Node{}
	}
	return json.Marshal(compositeOut{
		TripNodeID: c.ID,
		Name:       c.Name,
		NodeType:   NodeTypeComposite,
		Users:      c.Users,
		UserRoles:  c.UserRoles,
		IsShowing:  c.Showing,
		TripNodes:  children,
		Schedule:   c.Schedule,
	})
}

// MarshalJSON encodes l in display form. Leaves carry an empty tripNodes
// list so both variants have the same shape.
func (l *DestinationLeaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(leafOut{
		TripNodeID:  l.ID,
		Name:        l.Name,
		NodeType:    NodeTypeLeaf,
		Destination: l.Destination,
		TripNodes:   []Node{},
		Schedule:    l.Schedule,
	})
}

// UnmarshalJSON decodes a display-form composite. It fails if the document
// describes a leaf.
func (c *Composite) UnmarshalJSON(data []byte) error {
	n, err := UnmarshalNode(data)
	if err != nil {
		return err
	}
	got, ok := n.(*Composite)
	if !ok {
		return fmt.Errorf("expected %s, got %s", NodeTypeComposite, NodeTypeLeaf)
	}
	*c = *got
	return nil
}

// UnmarshalJSON decodes a display-form destination leaf.
func (l *DestinationLeaf) UnmarshalJSON(data []byte) error {
	n, err := UnmarshalNode(data)
	if err != nil {
		return err
	}
	got, ok := n.(*DestinationLeaf)
	if !ok {
		return fmt.Errorf("expected %s, got %s", NodeTypeLeaf, NodeTypeComposite)
	}
	*l = *got
	return nil
}

// UnmarshalNode decodes a display-form node of either variant, recursing
// into composite children.
func UnmarshalNode(data []byte) (Node, error) {
	var raw nodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	switch raw.NodeType {
	case NodeTypeComposite:
		c := &Composite{
			ID:        raw.TripNodeID,
			Name:      raw.Name,
			Children:  make([]Node, 0, len(raw.TripNodes)),
			Users:     raw.Users,
			UserRoles: raw.UserRoles,
			Showing:   raw.IsShowing,
			Schedule:  raw.Schedule,
		}
		for i, child := range raw.TripNodes {
			n, err := UnmarshalNode(child)
			if err != nil {
				return nil, fmt.Errorf("trip node %d child %d: %w", raw.TripNodeID, i, err)
			}
			c.Children = append(c.Children, n)
		}
		return c, nil
	case NodeTypeLeaf:
		l := &DestinationLeaf{
			ID:       raw.TripNodeID,
			Name:     raw.Name,
			Schedule: raw.Schedule,
		}
		if raw.Destination != nil {
			l.Destination = *raw.Destination
		}
		return l, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodeType, raw.NodeType)
	}
}
