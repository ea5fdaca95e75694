package event

import (
	"fmt"
	"log/slog"
)

// WorkerRestartedAfterPanicHandler counts the supervisor restarts.
type WorkerRestartedAfterPanicHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewWorkerRestartedAfterPanicHandler(log *slog.Logger, counter *Counter) *WorkerRestartedAfterPanicHandler {
	return &WorkerRestartedAfterPanicHandler{log: log, counter: counter}
}

func (h *WorkerRestartedAfterPanicHandler) Handle(t Telemetry) {
	if t.Type != RestartedAfterPanicType {
		return
	}
	payload, ok := t.Payload.(WorkerRestartedAfterPanic)
	if !ok {
		h.log.Error("invalid telemetry payload", "type", t.Type)
		return
	}
	h.counter.Increment(RestartedAfterPanicType)
	h.log.Warn(fmt.Sprintf("Worker %s restarted after panic, total: %d", payload.WorkerName, h.counter.Get(RestartedAfterPanicType)))
}
