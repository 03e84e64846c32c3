package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcorbin/gopicol/internal/lineinput"
	"github.com/jcorbin/gopicol/internal/logio"
	"github.com/jcorbin/gopicol/internal/panicerr"
)

var (
	cliLog   logio.Logger
	evalExpr string
	trace    bool
	dump     bool
)

var rootCmd = &cobra.Command{
	Use:   "gopicol [file ...]",
	Short: "A tiny Tcl-like command language interpreter",
	Long: `gopicol interprets a tiny Tcl-like command language: scripts are
sequences of commands, words assemble from literal, variable, and
bracket-substituted fragments, and a small built-in command set covers
arithmetic, variables, control flow, and user-defined procedures.

With no arguments it reads commands interactively, printing each non-empty
result as "[status] result"; type quit to leave. With file arguments it
evaluates each file as one script. With -e it evaluates the given text
directly.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading files or stdin")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "enable trace logging")
	rootCmd.Flags().BoolVar(&dump, "dump", false, "print an interpreter dump after execution")
}

func main() {
	cliLog.SetOutput(os.Stderr)
	defer func() { os.Exit(cliLog.ExitCode()) }()
	cliLog.ErrorIf(rootCmd.Execute())
}

func run(_ *cobra.Command, args []string) error {
	return panicerr.Recover("interp", func() error {
		opts := Options(WithOutput(os.Stdout))
		if trace {
			opts = Options(opts, WithLogf(cliLog.Leveledf("TRACE")))
		}
		in := New(opts)

		if dump {
			lw := &logio.Writer{Logf: cliLog.Leveledf("DUMP")}
			defer lw.Close()
			defer interpDumper{in: in, out: lw}.dump()
		}

		switch {
		case evalExpr != "":
			return evalOnce(in, "<eval>", evalExpr)
		case len(args) > 0:
			return runFiles(in, args)
		}
		return runREPL(in)
	})
}

func evalOnce(in *Interp, name, script string) error {
	if st := in.Eval(script); st != StatusOK {
		return fmt.Errorf("%v: %v", name, in.Result())
	}
	if res := in.Result(); res != "" {
		fmt.Println(res)
	}
	return nil
}

func runFiles(in *Interp, names []string) error {
	for _, name := range names {
		buf, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		if st := in.Eval(string(buf)); st != StatusOK {
			return fmt.Errorf("%v: %v", name, in.Result())
		}
	}
	return nil
}

func runREPL(in *Interp) error {
	input := lineinput.Input{Queue: []io.Reader{
		lineinput.NamedReader("<stdin>", os.Stdin),
	}}
	for {
		fmt.Print("gopicol> ")
		line, err := input.ReadLine()
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		if line == "quit" {
			return nil
		}
		st := in.Eval(line)
		if res := in.Result(); res != "" {
			fmt.Printf("[%d] %v\n", int(st), res)
		}
	}
}
