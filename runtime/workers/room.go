package workers

import (
	"chat-hub/errors"
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// RoomState is owned by a single RoomWorker goroutine, never shared.
type RoomState struct {
	RoomID         string
	LastAcceptedAt time.Time
}

// NextTimestamp returns a creation time strictly after the previously accepted one.
func (s *RoomState) NextTimestamp(now time.Time) time.Time {
	if !now.After(s.LastAcceptedAt) {
		now = s.LastAcceptedAt.Add(time.Microsecond)
	}
	s.LastAcceptedAt = now
	return now
}

const (
	commandPending int32 = iota
	commandStarted
	commandAbandoned
)

// RoomCommand is claimed once, either by the worker starting it or by the
// caller abandoning it. A started command always gets a reply.
type RoomCommand struct {
	Fn     func(ctx context.Context, state *RoomState) error
	Reply  chan error
	status *atomic.Int32
}

func NewRoomCommand(fn func(ctx context.Context, state *RoomState) error) RoomCommand {
	return RoomCommand{Fn: fn, Reply: make(chan error, 1), status: new(atomic.Int32)}
}

// Abandon withdraws a command the worker has not started yet.
// It returns false once the command runs: the caller must then wait for Reply.
func (c RoomCommand) Abandon() bool {
	return c.status.CompareAndSwap(commandPending, commandAbandoned)
}

func (c RoomCommand) start() bool {
	return c.status.CompareAndSwap(commandPending, commandStarted)
}

// RoomWorker serializes every command targeting one room.
// Commands run one at a time in arrival order.
type RoomWorker struct {
	state    *RoomState
	commands chan RoomCommand
	log      *slog.Logger
}

func NewRoomWorker(roomID string, commands chan RoomCommand, log *slog.Logger) *RoomWorker {
	return &RoomWorker{
		state:    &RoomState{RoomID: roomID},
		commands: commands,
		log:      log.With("room", roomID),
	}
}

func (w *RoomWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping room worker")
			return nil
		case cmd, ok := <-w.commands:
			if !ok {
				return nil
			}
			if !cmd.start() {
				w.log.Debug("Skipping abandoned room command")
				continue
			}
			cmd.Reply <- w.execute(ctx, cmd)
		}
	}
}

// execute isolates a failing command so the room keeps processing the next ones.
func (w *RoomWorker) execute(ctx context.Context, cmd RoomCommand) (err error) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Room command panicked", "panic", r)
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	return cmd.Fn(ctx, w.state)
}
