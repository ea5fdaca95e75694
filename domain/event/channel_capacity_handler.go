package event

import (
	"fmt"
	"log/slog"
)

// ChannelCapacityHandler handles events reporting the capacity of channels.
// Useful for detecting backpressure on room mailboxes before commands get rejected.
type ChannelCapacityHandler struct {
	log                  *slog.Logger
	lowCapacityThreshold int
}

func NewChannelCapacityHandler(log *slog.Logger, lowCapacityThreshold int) *ChannelCapacityHandler {
	return &ChannelCapacityHandler{log: log, lowCapacityThreshold: lowCapacityThreshold}
}

func (h ChannelCapacityHandler) Handle(t Telemetry) {
	if t.Type != ChannelCapacityType {
		return
	}
	payload, ok := t.Payload.(ChannelCapacity)
	if !ok {
		h.log.Error("invalid telemetry payload", "type", t.Type)
		return
	}
	h.log.Debug(fmt.Sprintf("Channel %s usage: %d / %d", payload.ChannelName, payload.Length, payload.Capacity))
	if payload.Capacity <= 0 {
		// In case of unbuffered channel
		return
	}
	capacityLeft := payload.Capacity - payload.Length
	if capacityLeft <= h.lowCapacityThreshold {
		h.log.Warn("channel close to saturation", "channel", payload.ChannelName, "capacity_left", capacityLeft)
	}
}
