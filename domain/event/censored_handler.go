package event

import (
	"log/slog"
	"sync"
)

type CensoredHandler struct {
	mu      sync.Mutex
	log     *slog.Logger
	counter *Counter
	hit     map[string]uint64
}

func NewCensoredHandler(log *slog.Logger, counter *Counter) *CensoredHandler {
	return &CensoredHandler{
		log:     log,
		counter: counter,
		hit:     make(map[string]uint64),
	}
}

func (h *CensoredHandler) Handle(t Telemetry) {
	if t.Type != CensorshipHitType {
		return
	}
	payload, ok := t.Payload.(Censored)
	if !ok {
		h.log.Error("invalid telemetry payload", "type", t.Type)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.counter.Increment(CensorshipHitType)
	for _, w := range payload.Words {
		h.hit[w]++
	}
	h.log.Debug("message censored", "room_id", payload.RoomID, "words", len(payload.Words), "lang", payload.Lang)
}

// Hits returns how many times a word was masked since startup.
func (h *CensoredHandler) Hits(word string) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hit[word]
}
