package logging

import (
	"context"
	"fmt"
	"runtime/debug"
)

// RecoverPanic turns a panic into an error log entry. It must be deferred
// directly: defer logging.RecoverPanic(ctx, "bridge.saveImage", nil).
// onPanic, when set, runs after the entry is written.
func RecoverPanic(ctx context.Context, where string, onPanic func(recovered any)) {
	r := recover()
	if r == nil {
		return
	}

	FromContext(ctx).Error().
		Str("where", where).
		Str("panic", fmt.Sprint(r)).
		Bytes("stack", debug.Stack()).
		Msg("recovered from panic")

	if onPanic != nil {
		onPanic(r)
	}
}
