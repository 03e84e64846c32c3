package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/gopicol/internal/flushio"
)

// Status is the five-valued outcome of evaluating a script. StatusOK and
// StatusErr are produced by commands themselves; the remaining values are
// control signals produced only by the corresponding built-ins. A proc call
// collapses StatusReturn to StatusOK, a while loop interprets StatusBreak
// and StatusContinue, and anything uninterpreted propagates outward.
type Status int

const (
	StatusOK Status = iota
	StatusErr
	StatusReturn
	StatusBreak
	StatusContinue
)

var statusNames = [...]string{"ok", "err", "return", "break", "continue"}

func (st Status) String() string {
	if st < 0 || int(st) >= len(statusNames) {
		return fmt.Sprintf("invalid status %d", int(st))
	}
	return statusNames[st]
}

// A cmdFunc implements one command. The argv slice carries the command's own
// name in argv[0]; priv is whatever was registered alongside the function,
// nil for built-ins and a {formals, body} pair for user procedures. It must
// leave the interpreter result valid and return a status.
type cmdFunc func(in *Interp, argv, priv []string) Status

type command struct {
	fn   cmdFunc
	priv []string
}

// A frame holds the variable bindings local to one procedure activation.
// The parent link is a non-owning back pointer; the root frame, created at
// interpreter construction, has none and is never popped.
type frame struct {
	vars   map[string]string
	parent *frame
}

// Interp is a single-threaded command language interpreter. It owns its
// command table, its call-frame chain, and the result string left by the
// last evaluation. An Interp is not safe for concurrent use; independent
// interpreters are fully isolated from each other.
type Interp struct {
	logging

	out     flushio.WriteFlusher
	closers []io.Closer

	level  int // eval nesting depth, shown in the state dump
	frame  *frame
	cmds   map[string]*command
	result string
}

// Result returns the result string left by the last evaluation. It is valid
// (possibly empty) after any public operation.
func (in *Interp) Result() string { return in.result }

func (in *Interp) setResult(s string) { in.result = s }

// errf formats an error message into the result and reports StatusErr.
func (in *Interp) errf(mess string, args ...interface{}) Status {
	in.result = fmt.Sprintf(mess, args...)
	return StatusErr
}

func (in *Interp) arityErr(name string) Status {
	return in.errf("Wrong number of args for %s", name)
}

// getVar resolves a variable in the current frame only; there is no
// parent-chain lookup.
func (in *Interp) getVar(name string) (string, bool) {
	val, ok := in.frame.vars[name]
	return val, ok
}

func (in *Interp) setVar(name, value string) {
	in.frame.vars[name] = value
}

func (in *Interp) pushFrame() {
	in.frame = &frame{vars: make(map[string]string), parent: in.frame}
}

func (in *Interp) popFrame() {
	in.frame = in.frame.parent
}

// Register adds a command under name. Registering an existing name fails
// with StatusErr and leaves the table unchanged.
func (in *Interp) Register(name string, fn cmdFunc, priv []string) Status {
	if _, defined := in.cmds[name]; defined {
		return in.errf("Command '%s' already defined", name)
	}
	in.cmds[name] = &command{fn: fn, priv: priv}
	return StatusOK
}

// writeLine sends one output line to the interpreter's sink, flushing so
// that interactive use sees it immediately.
func (in *Interp) writeLine(line string) error {
	if _, err := io.WriteString(in.out, line); err != nil {
		return err
	}
	if _, err := in.out.Write([]byte{'\n'}); err != nil {
		return err
	}
	return in.out.Flush()
}

// Close releases any closers adopted from options, last first.
func (in *Interp) Close() (err error) {
	for i := len(in.closers) - 1; i >= 0; i-- {
		if cerr := in.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

// withLogPrefix prepends prefix to every message logged until the returned
// restore function runs.
func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	if logfn == nil {
		return func() {}
	}
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() { log.logfn = logfn }
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	log.logfn(mess, args...)
}
