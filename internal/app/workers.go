package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/dental_backend/config"
	"github.com/Alijeyrad/dental_backend/pkg/events"
)

// WorkerModule registers the NATS event workers. It does nothing when
// events are disabled.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc  fx.Lifecycle
	Cfg *config.Config
	NC  *nats.Conn `optional:"true"`
}

func RegisterWorkers(p WorkerParams) {
	if p.NC == nil {
		return
	}

	var sub *nats.Subscription
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			sub, err = startAuditWorker(p.NC, p.Cfg.Events.SubjectPrefix)
			return err
		},
		OnStop: func(ctx context.Context) error {
			if sub == nil {
				return nil
			}
			return sub.Unsubscribe()
		},
	})
}

// ---------------------------------------------------------------------------
// audit_worker
// ---------------------------------------------------------------------------

// startAuditWorker logs every appointment change published by this or any
// other instance.
func startAuditWorker(nc *nats.Conn, prefix string) (*nats.Subscription, error) {
	subject := prefix + ".appointment.>"
	sub, err := nc.Subscribe(subject, func(msg *nats.Msg) {
		action, id, err := parseAppointmentEvent(prefix, msg.Subject, msg.Data)
		if err != nil {
			slog.Warn("audit_worker: malformed event", "subject", msg.Subject, "err", err)
			return
		}
		slog.Info("audit_worker: appointment changed", "action", action, "appointment_id", id)
	})
	if err != nil {
		return nil, fmt.Errorf("audit_worker: subscribe %s: %w", subject, err)
	}
	slog.Info("audit_worker: started", "subject", subject)
	return sub, nil
}

// parseAppointmentEvent reads <prefix>.appointment.<action>.<id>. The id in
// the subject must match the payload.
func parseAppointmentEvent(prefix, subject string, data []byte) (events.Action, int64, error) {
	rest, ok := strings.CutPrefix(subject, prefix+".appointment.")
	if !ok {
		return "", 0, errors.New("unexpected subject")
	}
	action, idPart, ok := strings.Cut(rest, ".")
	if !ok {
		return "", 0, errors.New("missing appointment id")
	}
	switch events.Action(action) {
	case events.ActionCreated, events.ActionUpdated, events.ActionDeleted:
	default:
		return "", 0, fmt.Errorf("unknown action %q", action)
	}

	id, err := events.ParseID(data)
	if err != nil {
		return "", 0, fmt.Errorf("payload: %w", err)
	}
	if idPart != fmt.Sprint(id) {
		return "", 0, fmt.Errorf("subject id %s does not match payload %d", idPart, id)
	}
	return events.Action(action), id, nil
}
