package main

import (
	"strconv"
	"strings"
)

// mathOps names the binary integer commands; all of them share cmdMath.
var mathOps = []string{"+", "-", "*", "/", ">", ">=", "<", "<=", "==", "!="}

// registerCore installs the built-in command set. Names are fresh on a new
// interpreter, so registration cannot fail here.
func (in *Interp) registerCore() {
	for _, name := range mathOps {
		in.Register(name, cmdMath, nil)
	}
	in.Register("set", cmdSet, nil)
	in.Register("puts", cmdPuts, nil)
	in.Register("if", cmdIf, nil)
	in.Register("while", cmdWhile, nil)
	in.Register("break", cmdRetCode, nil)
	in.Register("continue", cmdRetCode, nil)
	in.Register("proc", cmdProc, nil)
	in.Register("return", cmdReturn, nil)
}

// atoi parses a decimal signed integer: optional leading ASCII whitespace,
// optional sign, digits up to the first non-digit; no digits yields 0.
// Overflow wraps in two's complement.
func atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// cmdMath implements the ten binary operators. Operands parse per atoi;
// division truncates toward zero and a zero divisor is an error. Comparisons
// yield "1" or "0". There is no unary minus: every operator takes exactly
// two operands.
func cmdMath(in *Interp, argv, _ []string) Status {
	if len(argv) != 3 {
		return in.arityErr(argv[0])
	}
	a, b := atoi(argv[1]), atoi(argv[2])
	var c int
	switch argv[0] {
	case "+":
		c = a + b
	case "-":
		c = a - b
	case "*":
		c = a * b
	case "/":
		if b == 0 {
			return in.errf("Division by zero")
		}
		c = a / b
	case ">":
		c = boolInt(a > b)
	case ">=":
		c = boolInt(a >= b)
	case "<":
		c = boolInt(a < b)
	case "<=":
		c = boolInt(a <= b)
	case "==":
		c = boolInt(a == b)
	case "!=":
		c = boolInt(a != b)
	}
	in.setResult(strconv.Itoa(c))
	return StatusOK
}

func cmdSet(in *Interp, argv, _ []string) Status {
	if len(argv) != 3 {
		return in.arityErr(argv[0])
	}
	in.setVar(argv[1], argv[2])
	in.setResult(argv[2])
	return StatusOK
}

func cmdPuts(in *Interp, argv, _ []string) Status {
	if len(argv) != 2 {
		return in.arityErr(argv[0])
	}
	if err := in.writeLine(argv[1]); err != nil {
		return in.errf("puts: %v", err)
	}
	in.setResult("")
	return StatusOK
}

// cmdIf evaluates its condition script in the current frame and tests the
// integer value of its result. The word between the branches is accepted
// without inspection. When no branch runs the status is OK with an empty
// result.
func cmdIf(in *Interp, argv, _ []string) Status {
	if len(argv) != 3 && len(argv) != 5 {
		return in.arityErr(argv[0])
	}
	if st := in.Eval(argv[1]); st != StatusOK {
		return st
	}
	if atoi(in.result) != 0 {
		return in.Eval(argv[2])
	}
	if len(argv) == 5 {
		return in.Eval(argv[4])
	}
	in.setResult("")
	return StatusOK
}

// cmdWhile re-evaluates its condition before each pass; a zero condition
// ends the loop with OK. Break from the body ends the loop with OK,
// continue starts the next pass, and any other non-OK status propagates.
func cmdWhile(in *Interp, argv, _ []string) Status {
	if len(argv) != 3 {
		return in.arityErr(argv[0])
	}
	for {
		if st := in.Eval(argv[1]); st != StatusOK {
			return st
		}
		if atoi(in.result) == 0 {
			return StatusOK
		}
		switch st := in.Eval(argv[2]); st {
		case StatusOK, StatusContinue:
		case StatusBreak:
			return StatusOK
		default:
			return st
		}
	}
}

// cmdRetCode serves both break and continue, keyed by its own name.
func cmdRetCode(in *Interp, argv, _ []string) Status {
	if len(argv) != 1 {
		return in.arityErr(argv[0])
	}
	in.setResult("")
	if argv[0] == "break" {
		return StatusBreak
	}
	return StatusContinue
}

func cmdReturn(in *Interp, argv, _ []string) Status {
	if len(argv) != 1 && len(argv) != 2 {
		return in.arityErr(argv[0])
	}
	if len(argv) == 2 {
		in.setResult(argv[1])
	} else {
		in.setResult("")
	}
	return StatusReturn
}

// cmdProc registers a user procedure whose private data is its formal
// parameter string and body script.
func cmdProc(in *Interp, argv, _ []string) Status {
	if len(argv) != 4 {
		return in.arityErr(argv[0])
	}
	return in.Register(argv[1], cmdCallProc, []string{argv[2], argv[3]})
}

// cmdCallProc is the callable installed by proc. It pushes a fresh frame,
// binds each formal parameter to the corresponding caller argument, runs the
// body, and pops the frame on every exit path. A return status from the
// body collapses to OK.
func cmdCallProc(in *Interp, argv, priv []string) Status {
	formals, body := priv[0], priv[1]
	in.pushFrame()
	arity := 0
	for _, name := range strings.Split(formals, " ") {
		if name == "" {
			continue
		}
		if arity++; arity > len(argv)-1 {
			in.popFrame()
			return in.errf("Proc '%s' called with wrong arg num", argv[0])
		}
		in.setVar(name, argv[arity])
	}
	if arity != len(argv)-1 {
		in.popFrame()
		return in.errf("Proc '%s' called with wrong arg num", argv[0])
	}
	st := in.Eval(body)
	if st == StatusReturn {
		st = StatusOK
	}
	in.popFrame()
	return st
}
