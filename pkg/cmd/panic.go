package cmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/klwxsrx/hawk-session-service/pkg/log"
)

// HandleAppPanic logs a value taken by recover() in the caller's deferred function:
//
//	defer func() { cmd.HandleAppPanic(ctx, logger, recover()) }()
//
// Lazy providers panic with their init error, such values are logged as the entry error.
func HandleAppPanic(ctx context.Context, logger log.Logger, recovered any) (panicCaught bool) {
	if recovered == nil {
		return false
	}

	logger = logger.WithField("stack", string(debug.Stack()))
	if err, ok := recovered.(error); ok {
		logger.WithError(err).Error(ctx, "session service failed with panic")
		return true
	}

	logger.WithField("panic", fmt.Sprintf("%v", recovered)).Error(ctx, "session service failed with panic")
	return true
}
