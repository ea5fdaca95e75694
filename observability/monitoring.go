package observability

import (
	"chat-hub/domain/event"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

type ProcessInfo struct {
	PID        int32   `json:"pid"`
	RSSMb      uint64  `json:"rss_mb"`
	Threads    int32   `json:"threads"`
	CPUPercent float64 `json:"cpu_percent"`
	Goroutines int     `json:"goroutines"`
	SampledAt  string  `json:"sampled_at,omitempty"`
}

// MonitoringStats is the liveness report served on /health.
type MonitoringStats struct {
	Status            string      `json:"status"`
	Uptime            string      `json:"uptime"`
	MessagesDelivered uint64      `json:"messages_delivered"`
	DeliveriesDropped uint64      `json:"deliveries_dropped"`
	WorkerRestarts    uint64      `json:"worker_restarts"`
	AllocMemMb        uint64      `json:"alloc_mem_mb"`
	NumGC             uint32      `json:"num_gc"`
	Process           ProcessInfo `json:"process"`
}

// MonitoringManager folds telemetry into the latest health figures.
// It is registered as a telemetry handler.
type MonitoringManager struct {
	log       *slog.Logger
	startedAt time.Time

	mu      sync.RWMutex
	process ProcessInfo

	delivered atomic.Uint64
	dropped   atomic.Uint64
	restarts  atomic.Uint64
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log, startedAt: time.Now()}
}

func (mm *MonitoringManager) Handle(t event.Telemetry) {
	switch p := t.Payload.(type) {
	case event.DeliveryLatency:
		mm.delivered.Add(uint64(p.Recipients))
	case event.DeliveryDropped:
		mm.dropped.Add(1)
	case event.WorkerRestartedAfterPanic:
		mm.restarts.Add(1)
	case event.ProcessStats:
		mm.mu.Lock()
		mm.process = ProcessInfo{
			PID:        p.PID,
			RSSMb:      p.RSS / 1024 / 1024,
			Threads:    p.Threads,
			CPUPercent: p.CPUPercent,
			Goroutines: p.Goroutines,
			SampledAt:  t.CreatedAt.Format(time.RFC3339),
		}
		mm.mu.Unlock()
	}
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	mm.mu.RLock()
	process := mm.process
	mm.mu.RUnlock()

	return MonitoringStats{
		Status:            "ok",
		Uptime:            time.Since(mm.startedAt).Round(time.Second).String(),
		MessagesDelivered: mm.delivered.Load(),
		DeliveriesDropped: mm.dropped.Load(),
		WorkerRestarts:    mm.restarts.Load(),
		AllocMemMb:        m.Alloc / 1024 / 1024,
		NumGC:             m.NumGC,
		Process:           process,
	}
}
