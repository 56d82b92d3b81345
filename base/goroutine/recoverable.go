package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/x-xyz/ensapi/base/log"
)

var (
	logger = log.Log()
)

// PanicError is returned by a recovered task in place of the value it never produced.
type PanicError struct {
	Panic interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Panic)
}

type TaskFunc = func() (interface{}, error)

type RecoverableOptions struct {
	afterRecovered *func(panic interface{}, stack []byte)
}

type RecoverableOptionsFunc = func(*RecoverableOptions)

func WithAfterRecovered(f func(panic interface{}, stack []byte)) RecoverableOptionsFunc {
	return func(options *RecoverableOptions) {
		options.afterRecovered = &f
	}
}

// Recoverable wraps a task so a panic inside it surfaces as a *PanicError
// result instead of tearing down the worker running it.
func Recoverable(f TaskFunc, fns ...RecoverableOptionsFunc) TaskFunc {
	opts := RecoverableOptions{}
	for _, fn := range fns {
		fn(&opts)
	}

	return func() (val interface{}, err error) {
		defer func() {
			if p := recover(); p != nil {
				stack := debug.Stack()

				logger.WithFields(log.Fields{
					"err":   p,
					"stack": string(stack),
				}).Error("panic")

				if opts.afterRecovered != nil {
					(*opts.afterRecovered)(p, stack)
				}

				val, err = nil, &PanicError{p, stack}
			}
		}()

		return f()
	}
}
