package wire

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tiliavir/trivial-trip-planner/internal/model"
	"github.com/Tiliavir/trivial-trip-planner/internal/timecalc"
)

// ErrRootNotComposite is returned when a trip's root node is a leaf.
var ErrRootNotComposite = errors.New("trip root is not a composite")

// Codec converts between wire and display shapes. Dates are interpreted in
// Location; a nil Location means UTC. Times are always UTC-normalized.
type Codec struct {
	Location *time.Location
}

// DecodeTrip converts a trip tree from the backend. The root must be a
// composite.
func (c Codec) DecodeTrip(n Node) (*model.Composite, error) {
	if n.NodeType != model.NodeTypeComposite {
		return nil, fmt.Errorf("trip %d: %w", n.TripNodeID, ErrRootNotComposite)
	}
	root, err := c.DecodeNode(n)
	if err != nil {
		return nil, err
	}
	return root.(*model.Composite), nil
}

// DecodeTrips converts a list of trip trees.
func (c Codec) DecodeTrips(nodes []Node) ([]*model.Composite, error) {
	trips := make([]*model.Composite, 0, len(nodes))
	for _, n := range nodes {
		t, err := c.DecodeTrip(n)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, nil
}

// DecodeNode converts a single wire node and its subtree. A composite with
// no tripNodes decodes with an empty child list.
func (c Codec) DecodeNode(n Node) (model.Node, error) {
	switch n.NodeType {
	case model.NodeTypeComposite:
		comp := &model.Composite{
			ID:        n.TripNodeID,
			Name:      n.Name,
			Children:  make([]model.Node, 0, len(n.TripNodes)),
			Users:     n.Users,
			UserRoles: n.UserRoles,
			Schedule:  c.decodeSchedule(n.Schedule),
		}
		for _, child := range n.TripNodes {
			d, err := c.DecodeNode(child)
			if err != nil {
				return nil, fmt.Errorf("trip node %d: %w", n.TripNodeID, err)
			}
			comp.Children = append(comp.Children, d)
		}
		return comp, nil
	case model.NodeTypeLeaf:
		leaf := &model.DestinationLeaf{
			ID:       n.TripNodeID,
			Name:     n.Name,
			Schedule: c.decodeSchedule(n.Schedule),
		}
		if n.Destination != nil {
			leaf.Destination = *n.Destination
		}
		return leaf, nil
	default:
		return nil, fmt.Errorf("trip node %d: %w: %q", n.TripNodeID, model.ErrUnknownNodeType, n.NodeType)
	}
}

// DecodeFlatTrip converts a trip from the older traveller endpoint.
func (c Codec) DecodeFlatTrip(t FlatTrip) model.FlatTrip {
	out := model.FlatTrip{Name: t.TripName, Stops: make([]model.Stop, 0, len(t.TripDestinations))}
	for _, d := range t.TripDestinations {
		out.Stops = append(out.Stops, model.Stop{
			DestinationID: d.Destination.ID,
			Schedule:      c.decodeSchedule(d.Schedule),
		})
	}
	return out
}

// EncodeCreate builds the body for creating a trip from a list of stops.
func (c Codec) EncodeCreate(name string, stops []model.Stop, userIDs []int) (CreateTripRequest, error) {
	req := CreateTripRequest{Name: name, TripNodes: make([]NodeRequest, 0, len(stops)), UserIDs: userIDs}
	if req.UserIDs == nil {
		req.UserIDs = []int{}
	}
	for i, s := range stops {
		ws, err := c.encodeSchedule(s.Schedule)
		if err != nil {
			return CreateTripRequest{}, fmt.Errorf("stop %d: %w", i+1, err)
		}
		req.TripNodes = append(req.TripNodes, NodeRequest{
			NodeType:      model.NodeTypeLeaf,
			DestinationID: s.DestinationID,
			Schedule:      ws,
		})
	}
	return req, nil
}

// EncodeEdit builds the body for replacing the direct children of a trip.
// Sub-trips are sent by id; the backend keeps their own children.
func (c Codec) EncodeEdit(trip *model.Composite) (EditTripRequest, error) {
	req := EditTripRequest{
		Name:      trip.Name,
		TripNodes: make([]NodeRequest, 0, len(trip.Children)),
		UserIDs:   trip.UserIDs(),
	}
	for _, child := range trip.Children {
		switch n := child.(type) {
		case *model.Composite:
			req.TripNodes = append(req.TripNodes, NodeRequest{
				NodeType:   model.NodeTypeComposite,
				TripNodeID: n.ID,
			})
		case *model.DestinationLeaf:
			ws, err := c.encodeSchedule(n.Schedule)
			if err != nil {
				return EditTripRequest{}, fmt.Errorf("trip node %d: %w", n.ID, err)
			}
			req.TripNodes = append(req.TripNodes, NodeRequest{
				NodeType:      model.NodeTypeLeaf,
				DestinationID: n.Destination.ID,
				Schedule:      ws,
			})
		}
	}
	return req, nil
}

// EncodeFlatEdit builds the body for the older traveller edit endpoint.
func (c Codec) EncodeFlatEdit(t model.FlatTrip) (EditFlatTripRequest, error) {
	req := EditFlatTripRequest{TripName: t.Name, TripDestinations: make([]FlatStopRequest, 0, len(t.Stops))}
	for i, s := range t.Stops {
		ws, err := c.encodeSchedule(s.Schedule)
		if err != nil {
			return EditFlatTripRequest{}, fmt.Errorf("stop %d: %w", i+1, err)
		}
		req.TripDestinations = append(req.TripDestinations, FlatStopRequest{DestinationID: s.DestinationID, Schedule: ws})
	}
	return req, nil
}

func (c Codec) decodeSchedule(s Schedule) model.Schedule {
	return model.Schedule{
		ArrivalDate:   c.decodeDate(s.ArrivalDate),
		ArrivalTime:   decodeTime(s.ArrivalTime),
		DepartureDate: c.decodeDate(s.DepartureDate),
		DepartureTime: decodeTime(s.DepartureTime),
	}
}

func (c Codec) decodeDate(ms *int64) *string {
	if ms == nil || *ms == NoDate {
		return nil
	}
	s := timecalc.FormatEpochDate(*ms, c.Location)
	return &s
}

func decodeTime(minutes *int) *string {
	if minutes == nil || *minutes == NoTime {
		return nil
	}
	s := timecalc.FormatClock(*minutes)
	return &s
}

func (c Codec) encodeSchedule(s model.Schedule) (Schedule, error) {
	var (
		out Schedule
		err error
	)
	if out.ArrivalDate, err = c.encodeDate(s.ArrivalDate); err != nil {
		return Schedule{}, fmt.Errorf("arrival date: %w", err)
	}
	if out.ArrivalTime, err = encodeTime(s.ArrivalTime); err != nil {
		return Schedule{}, fmt.Errorf("arrival time: %w", err)
	}
	if out.DepartureDate, err = c.encodeDate(s.DepartureDate); err != nil {
		return Schedule{}, fmt.Errorf("departure date: %w", err)
	}
	if out.DepartureTime, err = encodeTime(s.DepartureTime); err != nil {
		return Schedule{}, fmt.Errorf("departure time: %w", err)
	}
	return out, nil
}

func (c Codec) encodeDate(s *string) (*int64, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	ms, err := timecalc.ParseEpochDate(*s, c.Location)
	if err != nil {
		return nil, err
	}
	return &ms, nil
}

func encodeTime(s *string) (*int, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	m, err := timecalc.ParseClock(*s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
