// Package panicerr isolates a function call so that panics and abnormal
// goroutine exits surface as ordinary error returns.
package panicerr

import (
	"fmt"
	"runtime/debug"
)

// Recover runs f in a new goroutine wrapped in defer logic that recovers
// any panic or runtime.Goexit as a non-nil error return.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExitError(name, errch)
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}

func recoverExitError(name string, errch chan<- error) {
	select {
	case errch <- exitError(name):
	default:
		// the happy path already did a (maybe nil) send
	}
}

func recoverPanicError(name string, errch chan<- error) {
	var pe panicError
	if pe.e = recover(); pe.e != nil {
		pe.name = name
		pe.stack = debug.Stack()
		select {
		case errch <- pe:
		default:
		}
	}
}

type exitError string

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

type panicError struct {
	name  string
	e     interface{}
	stack []byte
}

func (pe panicError) Error() string {
	return fmt.Sprint(pe)
}

func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.e)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.name, pe.e)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

func (pe panicError) Unwrap() error {
	err, _ := pe.e.(error)
	return err
}
