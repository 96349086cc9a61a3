package model

// Node type tags used by both the display JSON and the backend wire format.
const (
	NodeTypeComposite = "TripComposite"
	NodeTypeLeaf      = "TripDestinationLeaf"
)

// Node is a single element of a trip tree. It is implemented by *Composite
// and *DestinationLeaf only; consumers switch on the concrete type.
type Node interface {
	NodeID() int
	NodeName() string
	NodeSchedule() Schedule
	tripNode()
}

// Schedule holds the optional arrival and departure of a trip node in
// display form. Dates are "YYYY-MM-DD", times are "HH:mm". A nil field means
// the value is not set; "00:00" is a real time.
type Schedule struct {
	ArrivalDate   *string `json:"arrivalDate"`
	ArrivalTime   *string `json:"arrivalTime"`
	DepartureDate *string `json:"departureDate"`
	DepartureTime *string `json:"departureTime"`
}

// Destination is a physical place a trip can visit.
type Destination struct {
	ID        int     `json:"destinationId"`
	Name      string  `json:"destinationName"`
	Type      string  `json:"destinationType,omitempty"`
	District  string  `json:"district,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GroupedDestination is a destination tagged with the depth of the sub-trip
// it was found in. Destinations sharing a group are plotted in one colour.
type GroupedDestination struct {
	Destination
	Group int `json:"group"`
}

// User is a traveller that can be attached to a trip.
type User struct {
	ID        int    `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
}

// UserRole assigns a role on a trip to one of its users.
type UserRole struct {
	UserID int    `json:"userId"`
	Role   string `json:"role"`
}

// Composite is a trip or sub-trip owning an ordered list of child nodes.
type Composite struct {
	ID        int
	Name      string
	Children  []Node
	Users     []User
	UserRoles []UserRole
	// Showing is the expanded/collapsed state of the node in a tree view.
	Showing bool
	Schedule
}

// DestinationLeaf is a single visit to a destination.
type DestinationLeaf struct {
	ID          int
	Name        string
	Destination Destination
	Schedule
}

func (c *Composite) NodeID() int            { return c.ID }
func (c *Composite) NodeName() string       { return c.Name }
func (c *Composite) NodeSchedule() Schedule { return c.Schedule }
func (*Composite) tripNode()                {}

func (l *DestinationLeaf) NodeID() int            { return l.ID }
func (l *DestinationLeaf) NodeName() string       { return l.Name }
func (l *DestinationLeaf) NodeSchedule() Schedule { return l.Schedule }
func (*DestinationLeaf) tripNode()                {}

// UserIDs returns the ids of the users attached to c, or nil when c has no
// user list at all.
func (c *Composite) UserIDs() []int {
	if c.Users == nil {
		return nil
	}
	ids := make([]int, 0, len(c.Users))
	for _, u := range c.Users {
		ids = append(ids, u.ID)
	}
	return ids
}

// Stop is a destination visit without tree structure, used when creating a
// trip and by the flat trip representation.
type Stop struct {
	DestinationID int `json:"destinationId"`
	Schedule
}

// FlatTrip is the older, non-hierarchical trip representation.
type FlatTrip struct {
	Name  string `json:"tripName"`
	Stops []Stop `json:"tripDestinations"`
}
