package main

import (
	"io"

	"github.com/jcorbin/gopicol/internal/flushio"
)

// New creates an interpreter with the root call frame in place, the core
// command set registered, and an empty result.
func New(opts ...Option) *Interp {
	in := Interp{
		frame: &frame{vars: make(map[string]string)},
		cmds:  make(map[string]*command),
	}
	in.registerCore()
	defaultOptions.apply(&in)
	Options(opts...).apply(&in)
	return &in
}

// WithOutput directs puts output to w, closing it with the interpreter when
// it is a closer.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee copies puts output to w in addition to the current sink.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithLogf installs a trace logging function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// Option configures an interpreter under construction.
type Option interface{ apply(in *Interp) }

var defaultOptions = Options(WithOutput(io.Discard))

// Options flattens any number of options into one, eliding nils.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(in *Interp) {}

type options []Option

func (opts options) apply(in *Interp) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(in *Interp) {
	in.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }

func (o outputOption) apply(in *Interp) {
	if in.out != nil {
		in.out.Flush()
	}
	in.out = flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		in.closers = append(in.closers, cl)
	}
}

func (o teeOption) apply(in *Interp) {
	in.out = flushio.WriteFlushers(in.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		in.closers = append(in.closers, cl)
	}
}
