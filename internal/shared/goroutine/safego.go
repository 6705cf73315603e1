// Package goroutine launches background work that must not crash the process.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/tripline/tripline/internal/shared/logger"
)

// Run calls fn and reports a panic as an error naming the task.
func Run(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %s panicked: %v\n%s", name, r, debug.Stack())
		}
	}()
	return fn()
}

// Go runs fn on its own goroutine. Failures and panics are logged under name
// and never reach the caller.
func Go(log logger.Interface, name string, fn func() error) {
	go func() {
		if err := Run(name, fn); err != nil {
			log.Errorw("background task failed", "task", name, "error", err)
		}
	}()
}
