package listview

import "go.uber.org/zap"

// LogNotifier renders toasts as structured log lines.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(msg string) {
	n.logger.Info("toast", zap.String("kind", "success"), zap.String("message", msg))
}

func (n *LogNotifier) Error(msg string) {
	n.logger.Warn("toast", zap.String("kind", "error"), zap.String("message", msg))
}
