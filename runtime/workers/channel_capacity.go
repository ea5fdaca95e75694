package workers

import (
	"chat-hub/domain/event"
	"context"
	"log/slog"
	"reflect"
	"time"
)

type NamedChannel struct {
	Name    string
	Channel any
}

// ChannelCapacityWorker periodically reports the current channel capacity and length.
// Reading len(channel) and cap(channel) is non-blocking, so this won't interfere
// with other goroutines. It's okay if a sample is dropped occasionally because
// metrics are sampled periodically.
type ChannelCapacityWorker struct {
	log            *slog.Logger
	channels       []NamedChannel
	dynamic        func() []NamedChannel
	telemetryChan  chan event.Telemetry
	metricInterval time.Duration
}

func NewChannelCapacityWorker(log *slog.Logger,
	channels []NamedChannel, telemetryChan chan event.Telemetry,
	metricInterval time.Duration) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{
		log: log, channels: channels,
		telemetryChan:  telemetryChan,
		metricInterval: metricInterval,
	}
}

// WithDynamicChannels samples channels created after startup, such as room mailboxes.
func (w *ChannelCapacityWorker) WithDynamicChannels(fn func() []NamedChannel) *ChannelCapacityWorker {
	w.dynamic = fn
	return w
}

func (w *ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping channel sampling")
			return nil
		case <-ticker.C:
			w.sample(ctx)
		}
	}
}

func (w *ChannelCapacityWorker) sample(ctx context.Context) {
	channels := w.channels
	if w.dynamic != nil {
		channels = append(append([]NamedChannel(nil), channels...), w.dynamic()...)
	}
	for _, nc := range channels {
		v := reflect.ValueOf(nc.Channel)
		// Verify if this is a channel
		if v.Kind() != reflect.Chan {
			w.log.Error("Provided object is not a channel", "name", nc.Name)
			continue
		}
		select {
		case <-ctx.Done():
			return
		case w.telemetryChan <- toCapacityTelemetry(nc.Name, v.Cap(), v.Len()):
		default:
			w.log.Debug("Observability telemetry event lost")
		}
	}
}

func toCapacityTelemetry(name string, capacity, length int) event.Telemetry {
	return event.NewTelemetry(event.ChannelCapacityType, event.ChannelCapacity{
		ChannelName: name,
		Capacity:    capacity,
		Length:      length,
	})
}
