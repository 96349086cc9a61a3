package tripapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Tiliavir/trivial-trip-planner/internal/model"
	"github.com/Tiliavir/trivial-trip-planner/internal/wire"
)

func tripsPath(sess Session) string {
	return fmt.Sprintf("/users/%d/trips", sess.UserID)
}

func tripPath(sess Session, tripID int) string {
	return fmt.Sprintf("/users/%d/trips/%d", sess.UserID, tripID)
}

func travellerTripPath(sess Session, tripID int) string {
	return fmt.Sprintf("/travellers/%d/trips/%d", sess.UserID, tripID)
}

// CreateTrip creates a trip for the session user made of the given stops,
// shared with userIDs.
func (c *Client) CreateTrip(ctx context.Context, sess Session, name string, stops []model.Stop, userIDs []int) (*model.Composite, error) {
	req, err := c.codec.EncodeCreate(name, stops, userIDs)
	if err != nil {
		return nil, err
	}
	var created wire.Node
	if err := c.do(ctx, sess, http.MethodPost, tripsPath(sess), nil, req, &created); err != nil {
		return nil, err
	}
	// Older backends answer with the bare trip record, without a node type.
	if created.NodeType == "" {
		created.NodeType = model.NodeTypeComposite
	}
	return c.codec.DecodeTrip(created)
}

// GetTrip fetches a whole trip tree.
func (c *Client) GetTrip(ctx context.Context, sess Session, tripID int) (*model.Composite, error) {
	var n wire.Node
	if err := c.do(ctx, sess, http.MethodGet, tripPath(sess, tripID), nil, nil, &n); err != nil {
		return nil, err
	}
	return c.codec.DecodeTrip(n)
}

// GetTrips fetches every trip of the session user.
func (c *Client) GetTrips(ctx context.Context, sess Session) ([]*model.Composite, error) {
	var nodes []wire.Node
	if err := c.do(ctx, sess, http.MethodGet, tripsPath(sess), nil, nil, &nodes); err != nil {
		return nil, err
	}
	return c.codec.DecodeTrips(nodes)
}

// EditTrip replaces the name, direct children and (when trip.Users is set)
// the members of a trip.
func (c *Client) EditTrip(ctx context.Context, sess Session, trip *model.Composite) error {
	req, err := c.codec.EncodeEdit(trip)
	if err != nil {
		return err
	}
	return c.do(ctx, sess, http.MethodPut, tripPath(sess, trip.ID), nil, req, nil)
}

// GetTravellerTrip fetches a trip from the older flat endpoint.
func (c *Client) GetTravellerTrip(ctx context.Context, sess Session, tripID int) (model.FlatTrip, error) {
	var ft wire.FlatTrip
	if err := c.do(ctx, sess, http.MethodGet, travellerTripPath(sess, tripID), nil, nil, &ft); err != nil {
		return model.FlatTrip{}, err
	}
	return c.codec.DecodeFlatTrip(ft), nil
}

// EditTravellerTrip replaces a trip through the older flat endpoint.
func (c *Client) EditTravellerTrip(ctx context.Context, sess Session, tripID int, trip model.FlatTrip) error {
	req, err := c.codec.EncodeFlatEdit(trip)
	if err != nil {
		return err
	}
	return c.do(ctx, sess, http.MethodPut, travellerTripPath(sess, tripID), nil, req, nil)
}

// LeaveTrip removes the session user from a shared trip and returns the
// backend's result body, or nil when the response is empty.
func (c *Client) LeaveTrip(ctx context.Context, sess Session, tripID int) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.do(ctx, sess, http.MethodPatch, tripPath(sess, tripID)+"/leaveTrip", nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteTrip deletes a trip owned by the session user.
func (c *Client) DeleteTrip(ctx context.Context, sess Session, tripID int) error {
	return c.do(ctx, sess, http.MethodDelete, tripPath(sess, tripID), nil, nil, nil)
}

// SearchUsers returns the users whose name matches name.
func (c *Client) SearchUsers(ctx context.Context, sess Session, name string) ([]model.User, error) {
	users := []model.User{}
	if err := c.do(ctx, sess, http.MethodGet, "/users/search", url.Values{"name": {name}}, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
