//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-hub/domain/event"
	"context"
	"reflect"
)

// ISupervisor restarts its workers after a panic until its context ends.
// Add registers workers before Run; Spawn starts one while running.
type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Spawn(worker Worker) error
	Stop()
	Wait()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName returns the type name of the worker for logs and restart telemetry.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives events for one consumer: a live connection,
// the search index or the log.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}
