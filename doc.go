/* Package main: gopicol -- a tiny Tcl-like command language

A gopicol script is a sequence of commands separated by newlines or
semicolons. Each command is a whitespace-separated list of words; the first
word names a command and the rest are its arguments. There is no other
syntax: control flow, procedure definition, and arithmetic are all ordinary
commands taking ordinary word arguments.

Words are assembled from fragments as the scanner walks the script:

	$name        is replaced by the value of the variable name in the
	             current call frame; a lone $ is a literal dollar sign.
	[script]     is replaced by the result of evaluating the bracketed
	             script; brackets nest, and braces inside them balance.
	{literal}    is taken verbatim -- no substitution and no backslash
	             decoding happens inside braces, which nest.
	"quoted"     groups whitespace and semicolons into one word while
	             leaving $, [ and backslash substitution active.

Adjacent fragments with no separating whitespace concatenate into a single
word, which is how interpolation like x$i[f $i]y works. Backslash sequences
in unbraced words are decoded after scanning: \n \r \t produce the control
byte, \xHH a hex-valued byte, a backslashed graphic byte stands for itself,
and a backslash before whitespace swallows the whitespace run (line
continuation).

A # starts a comment, but only where a command could begin; it runs to the
end of the line.

The built-in command set is small: the binary integer operators + - * / >
>= < <= == and !=, set, puts, if, while, break, continue, return, and proc.
proc registers a new command with a formal parameter list and a body script;
calling it pushes a fresh call frame, binds the parameters, evaluates the
body, and pops the frame on every exit path. Variables live only in the
current frame -- there is no outer-scope lookup.

Every evaluation leaves a result string on the interpreter and returns one
of five statuses: ok, err, return, break, or continue. The last three are
control signals: return is collapsed to ok by the procedure call that
receives it, break and continue steer while loops, and all of them simply
propagate when nothing interprets them.

The interpreter core is split across a handful of files:

	scan.go      the token scanner
	escape.go    backslash decoding for unbraced words
	eval.go      word assembly, substitution, and dispatch
	builtin.go   the core command set
	interp.go    interpreter state: frames, variables, commands, result
	api.go       construction and functional options
	main.go      the CLI: an interactive prompt and a script-file runner
*/
package main
