package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_math_commands(t *testing.T) {
	evalTestCases{
		evalTest("add", `+ 2 3`).expectResult("5"),
		evalTest("sub", `- 2 3`).expectResult("-1"),
		evalTest("mul", `* 4 5`).expectResult("20"),
		evalTest("div", `/ 7 2`).expectResult("3"),
		evalTest("div negative truncates toward zero", `/ -7 2`).expectResult("-3"),
		evalTest("div by zero", `/ 1 0`).expectErr("Division by zero"),

		evalTest("gt true", `> 3 2`).expectResult("1"),
		evalTest("gt false", `> 2 3`).expectResult("0"),
		evalTest("ge equal", `>= 2 2`).expectResult("1"),
		evalTest("lt", `< 2 3`).expectResult("1"),
		evalTest("le", `<= 3 2`).expectResult("0"),
		evalTest("eq", `== 5 5`).expectResult("1"),
		evalTest("ne", `!= 5 5`).expectResult("0"),

		evalTest("operands parse leading digits", `+ {  7x} 2`).expectResult("9"),
		evalTest("non numeric operand is zero", `+ foo 4`).expectResult("4"),
		evalTest("negative literal operand", `+ -5 3`).expectResult("-2"),
		evalTest("no unary minus", `- 5`).
			expectErr("Wrong number of args for -"),
	}.run(t)
}

func Test_builtin_arity(t *testing.T) {
	evalTestCases{
		evalTest("math", `+ 1`).expectErr("Wrong number of args for +"),
		evalTest("set", `set x`).expectErr("Wrong number of args for set"),
		evalTest("set extra", `set x 1 2`).expectErr("Wrong number of args for set"),
		evalTest("puts", `puts`).expectErr("Wrong number of args for puts"),
		evalTest("puts extra", `puts a b`).expectErr("Wrong number of args for puts"),
		evalTest("if", `if {1}`).expectErr("Wrong number of args for if"),
		evalTest("if four words", `if {1} {a} {b}`).expectErr("Wrong number of args for if"),
		evalTest("while", `while {1}`).expectErr("Wrong number of args for while"),
		evalTest("break", `break now`).expectErr("Wrong number of args for break"),
		evalTest("continue", `continue now`).expectErr("Wrong number of args for continue"),
		evalTest("return", `return a b`).expectErr("Wrong number of args for return"),
		evalTest("proc", `proc f {x}`).expectErr("Wrong number of args for proc"),
	}.run(t)
}

func Test_set_command(t *testing.T) {
	evalTestCases{
		evalTest("set binds and results", `set x 5`).
			expectResult("5").expectVar("x", "5"),
		evalTest("set replaces", `set x 5; set x 6`).expectVar("x", "6"),
		evalTest("names are case sensitive", `set x 1; set X 2; + $x $X`).
			expectResult("3"),
	}.run(t)
}

func Test_puts_command(t *testing.T) {
	evalTestCases{
		evalTest("writes line to sink", `puts hi`).
			expectResult("").expectOutput("hi\n"),
		evalTest("multiple lines accumulate", `puts one; puts two`).
			expectOutput("one\ntwo\n"),
	}.run(t)
}

func Test_while_statuses(t *testing.T) {
	evalTestCases{
		evalTest("condition error propagates",
			`while {boom} {set x 1}`).expectErr("No such command 'boom'"),
		evalTest("body error propagates",
			`while {== 1 1} {boom}`).expectErr("No such command 'boom'"),
		evalTest("return from body propagates", `
			proc f {} { while {== 1 1} { return done } }
			f`).expectResult("done"),
	}.run(t)
}

func Test_return_command(t *testing.T) {
	evalTestCases{
		evalTest("bare return clears result",
			`set x 5; return`).expectStatus(StatusReturn).expectResult(""),
		evalTest("return with value",
			`return hi`).expectStatus(StatusReturn).expectResult("hi"),
	}.run(t)
}

func Test_proc_command(t *testing.T) {
	evalTestCases{
		evalTest("empty formals take no args",
			`proc f {} { + 1 1 }; f`).expectResult("2"),
		evalTest("registration result",
			`proc f {} { + 1 1 }`).expectResult(""),
		evalTest("procs can call procs", `
			proc double {n} { * $n 2 }
			proc quad {n} { double [double $n] }
			quad 3`).expectResult("12"),
		evalTest("proc over builtin name fails",
			`proc set {a b} {}`).expectErr("Command 'set' already defined"),
	}.run(t)
}

func Test_Register_direct(t *testing.T) {
	in := New()
	echo := func(in *Interp, argv, _ []string) Status {
		in.setResult(strings.Join(argv[1:], ","))
		return StatusOK
	}
	require.Equal(t, StatusOK, in.Register("echo", echo, nil))
	assert.Equal(t, StatusErr, in.Register("echo", echo, nil))
	assert.Equal(t, "Command 'echo' already defined", in.Result())

	require.Equal(t, StatusOK, in.Eval(`echo a b c`))
	assert.Equal(t, "a,b,c", in.Result())
}

func Test_Status_string(t *testing.T) {
	for st, name := range map[Status]string{
		StatusOK:       "ok",
		StatusErr:      "err",
		StatusReturn:   "return",
		StatusBreak:    "break",
		StatusContinue: "continue",
	} {
		assert.Equal(t, name, st.String())
		assert.Equal(t, name, fmt.Sprint(st))
	}
	assert.Equal(t, "invalid status 9", Status(9).String())
}

func Test_options(t *testing.T) {
	var out, tee strings.Builder
	var logs []string
	in := New(
		WithOutput(&out),
		WithTee(&tee),
		WithLogf(func(mess string, args ...interface{}) {
			logs = append(logs, fmt.Sprintf(mess, args...))
		}),
	)
	require.Equal(t, StatusOK, in.Eval(`puts hi`))
	assert.Equal(t, "hi\n", out.String())
	assert.Equal(t, "hi\n", tee.String())
	assert.NotEmpty(t, logs, "expected trace logging")
}
