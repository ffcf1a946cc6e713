// Package events publishes appointment lifecycle notifications.
//
// Subjects have the form <prefix>.appointment.<action>.<id> and the payload
// is the decimal appointment id, so subscribers can wildcard on either the
// action or the id.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/nats-io/nats.go"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Publisher is implemented by NATS and by Nop.
type Publisher interface {
	AppointmentChanged(ctx context.Context, action Action, id int64)
}

// Subject builds the subject for an appointment event.
func Subject(prefix string, action Action, id int64) string {
	return fmt.Sprintf("%s.appointment.%s.%d", prefix, action, id)
}

// ParseID reads the appointment id carried in an event payload.
func ParseID(data []byte) (int64, error) {
	return strconv.ParseInt(string(data), 10, 64)
}

// Conn is the subset of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subj string, data []byte) error
}

type natsPublisher struct {
	nc     Conn
	prefix string
}

// NewNATS returns a Publisher on top of an established connection.
func NewNATS(nc Conn, prefix string) Publisher {
	return &natsPublisher{nc: nc, prefix: prefix}
}

// Events are fire-and-forget. A publish failure never fails the write that
// produced it.
func (p *natsPublisher) AppointmentChanged(ctx context.Context, action Action, id int64) {
	subject := Subject(p.prefix, action, id)
	if err := p.nc.Publish(subject, []byte(strconv.FormatInt(id, 10))); err != nil {
		slog.WarnContext(ctx, "publish appointment event failed", "subject", subject, "error", err)
	}
}

type nop struct{}

// Nop discards every event.
func Nop() Publisher { return nop{} }

func (nop) AppointmentChanged(context.Context, Action, int64) {}

// Connect dials NATS with the client name set, as used by the process
// wiring.
func Connect(url, name string) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Name(name))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return nc, nil
}
