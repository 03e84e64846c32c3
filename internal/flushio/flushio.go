// Package flushio provides flush-aware writer plumbing.
package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

var discard WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher adapts a writer into a WriteFlusher: writers that already
// flush, along with in-memory buffers and the discard writer (which need no
// flushing), pass through; anything else is wrapped in a bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == io.Discard {
		return discard
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// in-memory buffers, as implemented by types like bytes.Buffer and
	// strings.Builder, do not need to be flushed
	type buffer interface {
		io.Writer
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

// WriteFlushers combines any number of WriteFlusher-s into a single one that
// writes into and flushes all of them.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var all writeFlushers
	for _, wf := range wfs {
		if many, ok := wf.(writeFlushers); ok {
			all = append(all, many...)
		} else if wf != nil {
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return all
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

type writeFlushers []WriteFlusher

func (wfs writeFlushers) Write(p []byte) (n int, err error) {
	for _, wf := range wfs {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (wfs writeFlushers) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
