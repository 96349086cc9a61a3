// Package wire holds the backend's JSON shapes for trips and converts them to
// and from the display model.
//
// Wire contract: dates are epoch milliseconds of local midnight, times are
// minutes since midnight. Requests always send JSON null for an unset date
// or time. Responses are read leniently: null, an absent field, a 0 date or
// a -1 time all decode as unset. A time of 0 is midnight, not unset.
package wire

import (
	"encoding/json"

	"github.com/Tiliavir/trivial-trip-planner/internal/model"
)

// Legacy "unset" sentinels still produced by older backend endpoints.
const (
	NoDate int64 = 0
	NoTime int   = -1
)

// Schedule is the wire form of model.Schedule.
type Schedule struct {
	ArrivalDate   *int64 `json:"arrivalDate"`
	ArrivalTime   *int   `json:"arrivalTime"`
	DepartureDate *int64 `json:"departureDate"`
	DepartureTime *int   `json:"departureTime"`
}

// Node is a trip node as returned by the backend.
type Node struct {
	TripNodeID  int                `json:"tripNodeId"`
	NodeType    string             `json:"nodeType"`
	Name        string             `json:"name"`
	Destination *model.Destination `json:"destination,omitempty"`
	TripNodes   []Node             `json:"tripNodes"`
	Users       []model.User       `json:"users,omitempty"`
	UserRoles   []model.UserRole   `json:"userRoles,omitempty"`
	Schedule
}

// FlatTrip is the response of the older traveller trip endpoint.
type FlatTrip struct {
	TripName         string            `json:"tripName"`
	TripDestinations []FlatDestination `json:"tripDestinations"`
}

// FlatDestination is one stop of a FlatTrip.
type FlatDestination struct {
	Destination model.Destination `json:"destination"`
	Schedule
}

// NodeRequest is a trip node in a create or edit request. Composites are
// sent by reference, leaves by value.
type NodeRequest struct {
	NodeType      string
	TripNodeID    int
	DestinationID int
	Schedule      Schedule
}

// MarshalJSON emits only the fields the backend reads for the node type.
func (n NodeRequest) MarshalJSON() ([]byte, error) {
	if n.NodeType == model.NodeTypeComposite {
		return json.Marshal(struct {
			NodeType   string `json:"nodeType"`
			TripNodeID int    `json:"tripNodeId"`
		}{n.NodeType, n.TripNodeID})
	}
	return json.Marshal(struct {
		NodeType      string `json:"nodeType"`
		DestinationID int    `json:"destinationId"`
		Schedule
	}{n.NodeType, n.DestinationID, n.Schedule})
}

// CreateTripRequest is the body of POST /users/{userId}/trips.
type CreateTripRequest struct {
	Name      string        `json:"name"`
	TripNodes []NodeRequest `json:"tripNodes"`
	UserIDs   []int         `json:"userIds"`
}

// EditTripRequest is the body of PUT /users/{userId}/trips/{tripId}.
// UserIDs is omitted when nil so the backend keeps the current members.
type EditTripRequest struct {
	Name      string        `json:"name"`
	TripNodes []NodeRequest `json:"tripNodes"`
	UserIDs   []int         `json:"userIds,omitzero"`
}

// FlatStopRequest is one destination of an EditFlatTripRequest.
type FlatStopRequest struct {
	DestinationID int `json:"destinationId"`
	Schedule
}

// EditFlatTripRequest is the body of PUT /travellers/{userId}/trips/{tripId}.
type EditFlatTripRequest struct {
	TripName         string            `json:"tripName"`
	TripDestinations []FlatStopRequest `json:"tripDestinations"`
}
