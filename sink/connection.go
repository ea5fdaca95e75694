package sink

import (
	"chat-hub/domain/event"
	"chat-hub/errors"
	"context"
	"log/slog"
	"sync"
	"time"
)

// ConnectionSink is the outbound queue of one live connection.
// The transport handler drains Events and writes them on the wire.
type ConnectionSink struct {
	connID          string
	events          chan event.Event
	done            chan struct{}
	closeOnce       sync.Once
	deliveryTimeout time.Duration
	telemetry       chan<- event.Telemetry
	log             *slog.Logger
}

func NewConnectionSink(connID string, bufferSize int, deliveryTimeout time.Duration,
	telemetry chan<- event.Telemetry, log *slog.Logger) *ConnectionSink {
	return &ConnectionSink{
		connID:          connID,
		events:          make(chan event.Event, bufferSize),
		done:            make(chan struct{}),
		deliveryTimeout: deliveryTimeout,
		telemetry:       telemetry,
		log:             log.With("conn_id", connID),
	}
}

// Consume is called by the room workers and the presence tracker.
// A full buffer makes it wait at most deliveryTimeout, then the event is dropped
// so one slow reader never stalls a room.
func (s *ConnectionSink) Consume(ctx context.Context, e event.Event) error {
	select {
	case <-s.done:
		return errors.ErrSessionClosed
	default:
	}

	timer := time.NewTimer(s.deliveryTimeout)
	defer timer.Stop()

	select {
	case s.events <- e:
		return nil
	case <-s.done:
		return errors.ErrSessionClosed
	case <-ctx.Done():
		s.drop(e)
		return ctx.Err()
	case <-timer.C:
		s.drop(e)
		return errors.ErrDeliveryTimeout
	}
}

func (s *ConnectionSink) Events() <-chan event.Event { return s.events }

// Done is closed once the connection is gone.
func (s *ConnectionSink) Done() <-chan struct{} { return s.done }

// Close is idempotent. Pending events are abandoned.
func (s *ConnectionSink) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *ConnectionSink) drop(e event.Event) {
	s.log.Warn("Event dropped for slow connection", "event", e.Name())
	if s.telemetry == nil {
		return
	}
	select {
	case s.telemetry <- event.NewTelemetry(event.DeliveryDroppedType, event.DeliveryDropped{ConnID: s.connID, Event: e.Name()}):
	default:
	}
}
