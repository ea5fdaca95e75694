package observability

import (
	"chat-hub/domain/event"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Handle(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.Default())

	mm.Handle(event.NewTelemetry(event.DeliveryLatencyType, event.DeliveryLatency{Recipients: 3}))
	mm.Handle(event.NewTelemetry(event.DeliveryLatencyType, event.DeliveryLatency{Recipients: 2}))
	mm.Handle(event.NewTelemetry(event.DeliveryDroppedType, event.DeliveryDropped{ConnID: "c1"}))
	mm.Handle(event.NewTelemetry(event.RestartedAfterPanicType, event.WorkerRestartedAfterPanic{WorkerName: "RoomWorker"}))
	mm.Handle(event.NewTelemetry(event.ProcessStatsType, event.ProcessStats{PID: 42, RSS: 64 * 1024 * 1024, Threads: 8}))
	mm.Handle(event.NewTelemetry(event.ChannelCapacityType, event.ChannelCapacity{ChannelName: "ignored"}))

	stats := mm.GetLatest()
	req.Equal("ok", stats.Status)
	req.EqualValues(5, stats.MessagesDelivered)
	req.EqualValues(1, stats.DeliveriesDropped)
	req.EqualValues(1, stats.WorkerRestarts)
	req.EqualValues(42, stats.Process.PID)
	req.EqualValues(64, stats.Process.RSSMb)
	req.EqualValues(8, stats.Process.Threads)
}
