package notification

import (
	"context"
	"log/slog"

	"github.com/adnanmuhammad4393/henna-storefront/internal/models"
)

// Notifier is the notification sink: it receives user-facing outcome
// events (toasts in the original UI). Implementations must not block and
// must never fail the caller.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

type logNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (l *logNotifier) Notify(ctx context.Context, n models.Notification) {

	attrs := []any{
		slog.String("kind", string(n.Kind)),
		slog.String("title", n.Title),
		slog.String("description", n.Description),
	}

	if n.Kind == models.NotificationError {
		l.logger.ErrorContext(ctx, "notification", attrs...)
	} else {
		l.logger.InfoContext(ctx, "notification", attrs...)
	}
}

type multiNotifier struct {
	sinks []Notifier
}

// NewMultiNotifier fans one event out to every sink.
func NewMultiNotifier(sinks ...Notifier) Notifier {
	return &multiNotifier{sinks: sinks}
}

func (m *multiNotifier) Notify(ctx context.Context, n models.Notification) {
	for _, sink := range m.sinks {
		sink.Notify(ctx, n)
	}
}
