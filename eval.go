package main

// Eval evaluates a script, leaving the interpreter result and returning the
// final status. The result starts empty, is updated by every dispatched
// command, and holds the error message when the status is StatusErr.
//
// Tokens stream straight from the scanner into an argument vector: literal
// fragments are escape-decoded, variable tokens are resolved in the current
// frame, and command tokens re-enter Eval and contribute its result. A
// fragment following a separator opens a new argument; otherwise it
// concatenates onto the previous one. Each statement terminator dispatches
// the assembled vector, and the first non-OK status unwinds the whole call.
//
// Eval is re-entrant via nested command substitution and procedure calls;
// the only bound on depth is the goroutine stack.
func (in *Interp) Eval(script string) Status {
	in.level++
	defer func() { in.level-- }()
	defer in.withLogPrefix("| ")()

	in.result = ""
	sc := newScanner(script)
	var argv []string
	st := StatusOK

scan:
	for prev := sc.kind; sc.next() != tokenEOF; prev = sc.kind {
		text := sc.text()
		switch sc.kind {
		case tokenSep:
			continue
		case tokenEOL:
			if len(argv) > 0 {
				if st = in.dispatch(argv); st != StatusOK {
					break scan
				}
			}
			argv = argv[:0]
			continue
		case tokenVar:
			val, ok := in.getVar(text)
			if !ok {
				st = in.errf("No such variable '%s'", text)
				break scan
			}
			text = val
		case tokenCmd:
			if st = in.Eval(text); st != StatusOK {
				break scan
			}
			text = in.result
		case tokenEsc:
			text = unescape(text)
		}
		if prev == tokenSep || prev == tokenEOL {
			argv = append(argv, text)
		} else {
			argv[len(argv)-1] += text
		}
	}
	return st
}

// dispatch resolves argv[0] in the command table and invokes it.
func (in *Interp) dispatch(argv []string) Status {
	cmd, defined := in.cmds[argv[0]]
	if !defined {
		return in.errf("No such command '%s'", argv[0])
	}
	in.logf("dispatch %q", argv)
	return cmd.fn(in, argv, cmd.priv)
}
