// Package goroutine launches goroutines that log a panic instead of crashing
// the process.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/parley-chat/parley/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic is logged with its stack under
// name. The returned channel is closed when fn returns or panics.
func SafeGo(log logger.Interface, name string, fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
	return done
}
