package event

import (
	"log/slog"
	"time"
)

type LatencyHandler struct {
	log              *slog.Logger
	latencyThreshold time.Duration
}

func NewLatencyHandler(log *slog.Logger, latencyThreshold time.Duration) *LatencyHandler {
	return &LatencyHandler{log: log, latencyThreshold: latencyThreshold}
}

func (h *LatencyHandler) Handle(t Telemetry) {
	payload, ok := t.Payload.(DeliveryLatency)
	if !ok {
		return
	}
	leadTime := t.CreatedAt.Sub(payload.AcceptedAt)

	h.log.Debug("telemetry: delivery latency",
		"room_id", payload.RoomID,
		"message_id", payload.MessageID,
		"recipients", payload.Recipients,
		"lead_time_ms", leadTime.Milliseconds(),
	)

	if leadTime > h.latencyThreshold {
		h.log.Warn("high delivery latency detected", "room_id", payload.RoomID, "lead_time", leadTime)
	}
}
