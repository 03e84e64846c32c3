package main

import (
	"fmt"
	"io"
	"sort"
)

// interpDumper writes a human-readable snapshot of interpreter state: the
// last result, the command table in name order with each entry marked as a
// built-in or a procedure, and
// the variable bindings of every frame from the root down to the current
// one.
type interpDumper struct {
	in  *Interp
	out io.Writer
}

func (dump interpDumper) dump() {
	fmt.Fprintf(dump.out, "# Interp Dump\n")
	fmt.Fprintf(dump.out, "  level: %v\n", dump.in.level)
	fmt.Fprintf(dump.out, "  result: %q\n", dump.in.result)
	dump.dumpCommands()
	dump.dumpFrames()
}

func (dump interpDumper) dumpCommands() {
	names := make([]string, 0, len(dump.in.cmds))
	for name := range dump.in.cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(dump.out, "# Commands\n")
	for _, name := range names {
		if cmd := dump.in.cmds[name]; len(cmd.priv) == 2 {
			fmt.Fprintf(dump.out, "  proc %v {%v} {%v}\n", name, cmd.priv[0], cmd.priv[1])
		} else {
			fmt.Fprintf(dump.out, "  builtin %v\n", name)
		}
	}
}

func (dump interpDumper) dumpFrames() {
	var frames []*frame
	for f := dump.in.frame; f != nil; f = f.parent {
		frames = append(frames, f)
	}
	// root first, current frame last
	for level := len(frames) - 1; level >= 0; level-- {
		f := frames[level]
		fmt.Fprintf(dump.out, "# Frame %v\n", len(frames)-1-level)
		names := make([]string, 0, len(f.vars))
		for name := range f.vars {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(dump.out, "  %v = %q\n", name, f.vars[name])
		}
	}
}
