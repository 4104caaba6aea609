package notification

import (
	"context"
	"log/slog"
)

const (
	// KindDeposit indicates a completed deposit event.
	KindDeposit = "deposit"
	// KindWithdrawal indicates a completed withdrawal event.
	KindWithdrawal = "withdrawal"
)

// Message describes a ledger event payload.
type Message struct {
	Kind          string
	AccountNumber int64
	Body          string
}

// Notifier delivers ledger events to downstream systems.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier is a stub implementation that writes events to the logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier stub.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("notification", "kind", message.Kind, "account", message.AccountNumber, "body", message.Body)
	return nil
}
