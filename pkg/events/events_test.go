package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	subject string
	data    string
}

type fakeConn struct {
	msgs []published
	err  error
}

func (f *fakeConn) Publish(subj string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, published{subject: subj, data: string(data)})
	return nil
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "dental.appointment.created.42", Subject("dental", ActionCreated, 42))
	assert.Equal(t, "clinic.appointment.deleted.7", Subject("clinic", ActionDeleted, 7))
}

func TestNATSPublisher(t *testing.T) {
	conn := &fakeConn{}
	p := NewNATS(conn, "dental")

	p.AppointmentChanged(context.Background(), ActionCreated, 3)
	p.AppointmentChanged(context.Background(), ActionUpdated, 3)

	require.Len(t, conn.msgs, 2)
	assert.Equal(t, published{"dental.appointment.created.3", "3"}, conn.msgs[0])
	assert.Equal(t, published{"dental.appointment.updated.3", "3"}, conn.msgs[1])

	id, err := ParseID([]byte(conn.msgs[0].data))
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestNATSPublisher_ErrorIsSwallowed(t *testing.T) {
	conn := &fakeConn{err: errors.New("nats: connection closed")}
	p := NewNATS(conn, "dental")

	assert.NotPanics(t, func() {
		p.AppointmentChanged(context.Background(), ActionDeleted, 9)
	})
	assert.Empty(t, conn.msgs)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().AppointmentChanged(context.Background(), ActionCreated, 1)
	})
}
