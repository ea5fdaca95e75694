package workers

import (
	"chat-hub/domain/event"
	"context"
	"log/slog"
)

type TelemetryWorker struct {
	log           *slog.Logger
	telemetryChan chan event.Telemetry
	handlers      []event.Handler
}

func NewTelemetryWorker(log *slog.Logger,
	telemetryChan chan event.Telemetry,
	handlers ...event.Handler) *TelemetryWorker {
	return &TelemetryWorker{
		log:           log,
		telemetryChan: telemetryChan,
		handlers:      handlers,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry worker")
			return nil
		case t, ok := <-w.telemetryChan:
			if !ok {
				return nil
			}
			w.handle(t)
		}
	}
}

func (w *TelemetryWorker) handle(t event.Telemetry) {
	for _, h := range w.handlers {
		h.Handle(t)
	}
}
