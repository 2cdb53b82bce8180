// Command mython is the interpreter's driver: read a program, lex it,
// parse it, run it against one root closure, and report errors the
// way original_source/mython's main.cpp does — an uncaught error
// goes to stderr and the process exits 1.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/env"
	"github.com/mythonlang/mython/internal/fixture"
	"github.com/mythonlang/mython/internal/lexer"
	"github.com/mythonlang/mython/internal/object"
	"github.com/mythonlang/mython/internal/parser"
)

func main() {
	var (
		trace      = pflag.Bool("trace", false, "dump the token stream before running")
		dumpAST    = pflag.Bool("dump-ast", false, "dump the parsed program before running")
		outputPath = pflag.StringP("output", "o", "", "write print output here instead of stdout")
		fixturesAt = pflag.String("fixtures", "", "replay golden fixtures from this directory instead of running a program")
	)
	pflag.Parse()

	errLog := log.New(os.Stderr, "", 0)

	if *fixturesAt != "" {
		if err := runFixtures(*fixturesAt); err != nil {
			errLog.Println(err)
			os.Exit(1)
		}
		return
	}

	src, err := readSource(pflag.Args())
	if err != nil {
		errLog.Println(err)
		os.Exit(1)
	}

	out := os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			errLog.Println(err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := run(src, out, *trace, *dumpAST); err != nil {
		errLog.Println(err)
		os.Exit(1)
	}
}

func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func run(src string, out *os.File, trace, dumpAST bool) error {
	lx, err := lexer.New(src)
	if err != nil {
		return fmt.Errorf("lex error: %w", err)
	}
	if trace {
		for _, t := range lx.Tokens() {
			fmt.Fprintln(os.Stderr, t)
		}
	}

	program, err := parser.New(lx).ParseProgram()
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	if dumpAST {
		fmt.Fprintf(os.Stderr, "%#v\n", program)
	}

	ctx := object.NewStreamContext(out)
	_, err = ast.Run(program, env.New(), ctx)
	return err
}

// runFixtures replays every fixture under dir without using `go
// test`, for quick manual sanity checks of the whole pipeline.
func runFixtures(dir string) error {
	cases, err := fixture.LoadDir(dir)
	if err != nil {
		return fmt.Errorf("loading fixtures: %w", err)
	}

	failed := 0
	for _, c := range cases {
		ctx := object.NewBufferContext()
		program, err := parser.Parse(c.Source)
		exitCode := 0
		var runErr error
		if err != nil {
			exitCode = 1
			runErr = err
		} else if _, err := ast.Run(program, env.New(), ctx); err != nil {
			exitCode = 1
			runErr = err
		}

		switch {
		case exitCode != c.ExitCode:
			failed++
			fmt.Printf("FAIL %s: exit code %d, want %d (%v)\n", c.Name, exitCode, c.ExitCode, runErr)
		case exitCode == 0 && ctx.String() != c.Stdout:
			failed++
			fmt.Printf("FAIL %s: stdout mismatch\n--- got ---\n%s--- want ---\n%s", c.Name, ctx.String(), c.Stdout)
		default:
			fmt.Printf("PASS %s\n", c.Name)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d/%d fixtures failed", failed, len(cases))
	}
	return nil
}
