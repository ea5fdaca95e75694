package event

import "log/slog"

type ProcessStatsHandler struct {
	log          *slog.Logger
	rssThreshold uint64
}

func NewProcessStatsHandler(log *slog.Logger, rssThreshold uint64) *ProcessStatsHandler {
	return &ProcessStatsHandler{log: log, rssThreshold: rssThreshold}
}

func (h *ProcessStatsHandler) Handle(t Telemetry) {
	switch t.Type {
	case ProcessStatsType:
		payload, ok := t.Payload.(ProcessStats)
		if !ok {
			return
		}
		h.log.Debug("process stats",
			"pid", payload.PID,
			"rss", payload.RSS,
			"threads", payload.Threads,
			"cpu", payload.CPUPercent,
			"goroutines", payload.Goroutines)
		if h.rssThreshold > 0 && payload.RSS > h.rssThreshold {
			h.log.Warn("resident memory above threshold", "rss", payload.RSS, "threshold", h.rssThreshold)
		}
	case DeliveryDroppedType:
		if payload, ok := t.Payload.(DeliveryDropped); ok {
			h.log.Warn("event dropped for slow connection", "conn_id", payload.ConnID, "event", payload.Event)
		}
	}
}
