package event

import (
	"sync"
	"time"
)

type Type string

const (
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
	ChannelCapacityType     Type = "CHANNEL_CAPACITY"
	CensorshipHitType       Type = "CENSORSHIP_HIT"
	DeliveryLatencyType     Type = "DELIVERY_LATENCY"
	ProcessStatsType        Type = "PROCESS_STATS"
	DeliveryDroppedType     Type = "DELIVERY_DROPPED"
)

// Telemetry is a technical event, never shown to users.
type Telemetry struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

func NewTelemetry(t Type, payload any) Telemetry {
	return Telemetry{Type: t, CreatedAt: time.Now().UTC(), Payload: payload}
}

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

type ChannelCapacity struct {
	ChannelName string
	Capacity    int
	Length      int
}

type Censored struct {
	RoomID string
	Words  []string
	Lang   string
}

type DeliveryLatency struct {
	RoomID     string
	MessageID  string
	AcceptedAt time.Time
	Recipients int
}

type DeliveryDropped struct {
	ConnID string
	Event  string
}

type ProcessStats struct {
	PID        int32
	RSS        uint64
	Threads    int32
	CPUPercent float64
	Goroutines int
}

// Handler Each kind of telemetry has its own handler
// Based on the Chain of responsibility pattern
type Handler interface {
	Handle(t Telemetry)
}

type Counter struct {
	mu     sync.Mutex
	counts map[Type]uint64
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[Type]uint64)}
}

func (c *Counter) Increment(t Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[t]++
}

func (c *Counter) Get(t Type) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[t]
}
