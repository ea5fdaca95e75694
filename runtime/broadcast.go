package runtime

import (
	"chat-hub/contract"
	"chat-hub/domain/event"
	"context"
	"sync"
	"sync/atomic"
)

// broadcast hands the event to every sink concurrently and waits for all of them.
// Each sink bounds its own delivery time, so one slow connection costs at most one timeout.
// It returns the number of sinks that accepted the event.
func broadcast(ctx context.Context, sinks []contract.EventSink, evt event.Event) int {
	var wg sync.WaitGroup
	var delivered atomic.Int32
	for _, sink := range sinks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sink.Consume(ctx, evt); err == nil {
				delivered.Add(1)
			}
		}()
	}
	wg.Wait()
	return int(delivered.Load())
}
