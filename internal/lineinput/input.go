// Package lineinput implements sequential line reading through a queue of
// one or more input streams, tracking name:line locations to facilitate
// user feedback.
package lineinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input reads lines from a Queue of input streams, moving to the next
// stream when the current one runs out. Loc names the line most recently
// returned.
type Input struct {
	br    *bufio.Reader
	Queue []io.Reader
	Loc   Location

	cur io.Reader
}

// ReadLine returns the next input line without its trailing newline.
// Returns io.EOF once the queue is exhausted.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return "", io.EOF
		}
		line, err := in.br.ReadString('\n')
		if err == nil {
			in.Loc.Line++
			return strings.TrimSuffix(line, "\n"), nil
		}
		if err != io.EOF {
			return "", err
		}
		in.close()
		if line != "" {
			in.Loc.Line++
			return line, nil
		}
	}
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	in.cur = in.Queue[0]
	in.Queue = in.Queue[1:]
	in.br = bufio.NewReader(in.cur)
	in.Loc = Location{Name: nameOf(in.cur)}
	return true
}

func (in *Input) close() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur = nil
	in.br = nil
}

// NamedReader attaches a name to a reader for location reporting.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
