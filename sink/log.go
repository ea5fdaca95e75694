package sink

import (
	"chat-hub/domain/event"
	"context"
	"log/slog"
)

// LogSink writes an audit line per domain event.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) LogSink {
	return LogSink{log: log}
}

func (l LogSink) Consume(_ context.Context, e event.Event) error {
	switch evt := e.(type) {
	case event.MessageReceived:
		l.log.Info("Message posted", "message_id", evt.ID, "room_id", evt.RoomID, "user_id", evt.Sender.ID)
	case event.MessageEdited:
		l.log.Info("Message edited", "message_id", evt.Message.ID, "room_id", evt.Message.RoomID)
	case event.MessageDeleted:
		l.log.Info("Message deleted", "message_id", evt.MessageID, "room_id", evt.RoomID)
	default:
		l.log.Debug("Not implemented event", "event", e.Name())
	}
	return nil
}
