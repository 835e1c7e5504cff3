package scheduler

import (
	"github.com/thejerf/suture/v4"
	"go.uber.org/zap"
)

// ZapEventHook routes supervisor lifecycle events into the application
// logger. Service failures are errors; backoff housekeeping is
// informational.
func ZapEventHook(logger *zap.Logger) suture.EventHook {
	return func(event suture.Event) {
		fields := []zap.Field{
			zap.String("event", event.String()),
			zap.Any("details", event.Map()),
		}
		switch event.Type() {
		case suture.EventTypeServiceTerminate, suture.EventTypeServicePanic:
			logger.Error("Supervised service failed", fields...)
		default:
			logger.Info("Supervisor event", fields...)
		}
	}
}
