package workers

import (
	"chat-hub/domain/event"
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthMonitoringWorker samples the hub process itself and publishes
// a ProcessStats telemetry on every tick.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	telemetryChan  chan event.Telemetry
	metricInterval time.Duration
	pid            int32
}

func NewHealthMonitoringWorker(
	log *slog.Logger,
	telemetryChan chan event.Telemetry,
	metricInterval time.Duration,
) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:            log,
		telemetryChan:  telemetryChan,
		metricInterval: metricInterval,
		pid:            int32(os.Getpid()),
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(w.pid)
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping process sampling")
			return nil
		case <-ticker.C:
			stats, err := Snapshot(p)
			if err != nil {
				w.log.Error("Error while sampling process", "pid", w.pid, "error", err)
				continue
			}
			select {
			case <-ctx.Done():
				return nil
			case w.telemetryChan <- event.NewTelemetry(event.ProcessStatsType, stats):
			default:
				w.log.Debug("Observability telemetry event lost")
			}
		}
	}
}

// Snapshot reads memory, thread and cpu usage of a process.
func Snapshot(p *process.Process) (event.ProcessStats, error) {
	mem, err := p.MemoryInfo()
	if err != nil {
		return event.ProcessStats{}, err
	}
	threads, err := p.NumThreads()
	if err != nil {
		return event.ProcessStats{}, err
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return event.ProcessStats{}, err
	}
	return event.ProcessStats{
		PID:        p.Pid,
		RSS:        mem.RSS,
		Threads:    threads,
		CPUPercent: cpu,
		Goroutines: runtime.NumGoroutine(),
	}, nil
}
