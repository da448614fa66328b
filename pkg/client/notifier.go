package client

import "go.uber.org/zap"

// Notifier receives the outcome of every mutation. Reads never notify.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier reports outcomes through a zap logger.
type LogNotifier struct {
	log *zap.Logger
}

// NewLogNotifier returns a Notifier that logs successes at info and
// failures at warn.
func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log.Named("notify")}
}

func (n *LogNotifier) Success(message string) { n.log.Info(message) }
func (n *LogNotifier) Error(message string)   { n.log.Warn(message) }

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
