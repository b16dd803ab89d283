package board

import "log/slog"

// Notifier receives user-visible notifications from the board. The default
// implementation logs; a UI wires its own toast layer here.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type logNotifier struct {
	logger *slog.Logger
}

func (n logNotifier) Success(msg string) {
	n.logger.Info(msg)
}

func (n logNotifier) Error(msg string) {
	n.logger.Error(msg)
}
