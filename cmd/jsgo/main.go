// Command jsgo is the embedder spec.md §6/§7 refers to abstractly as
// "the caller": it owns the source file, drives the Lexer/Parser/
// Executor pipeline, and prints to_string(value) on an uncaught throw.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-jsgo/jsgo/ast"
	"github.com/go-jsgo/jsgo/interpreter"
	"github.com/go-jsgo/jsgo/lexer"
	"github.com/go-jsgo/jsgo/parser"
	"github.com/go-jsgo/jsgo/runtime"
)

var traceFlag bool

func main() {
	root := &cobra.Command{
		Use:   "jsgo",
		Short: "a small prototype-based scripting language interpreter",
	}
	root.PersistentFlags().BoolVar(&traceFlag, "trace", false, "print the Go error chain (via pkg/errors) in addition to the JS-level message")

	root.AddCommand(runCmd(), evalCmd(), replCmd(), tokensCmd(), astCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "lex, parse, and evaluate a script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}
			return runSource(string(data))
		},
	}
}

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expr>",
		Short: "evaluate a single expression given on the command line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSource(args[0])
		},
	}
}

// runSource parses and evaluates a whole source string against a
// fresh Interpreter, printing the uncaught thrown value's to_string
// to stderr and exiting non-zero on failure, per spec.md §6/§7.
func runSource(source string) error {
	program, err := parseProgram(source)
	if err != nil {
		printErr(err)
		os.Exit(1)
	}
	it := interpreter.New()
	result, err := it.Eval(program)
	if err != nil {
		printErr(err)
		os.Exit(1)
	}
	if result != nil && result.Kind != runtime.KindUndefined {
		fmt.Println(runtime.ToString(result))
	}
	return nil
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "a line-at-a-time read-eval-print loop sharing one Interpreter across lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepl()
			return nil
		},
	}
}

// runRepl demonstrates the Executor interface's persistence contract
// (spec.md §6): one Interpreter, one global object, one scope stack,
// shared across every line read.
func runRepl() {
	it := interpreter.New()
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			fmt.Print("> ")
			continue
		}
		program, err := parseProgram(line)
		if err != nil {
			printErr(err)
			fmt.Print("> ")
			continue
		}
		result, err := it.Eval(program)
		if err != nil {
			printErr(err)
			fmt.Print("> ")
			continue
		}
		if result != nil && result.Kind != runtime.KindUndefined {
			fmt.Println(runtime.ToString(result))
		}
		fmt.Print("> ")
	}
}

func tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "spew-dump the lexer's token stream for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}
			toks, err := lexer.New(string(data)).Lex()
			if err != nil {
				printErr(err)
				os.Exit(1)
			}
			spew.Dump(toks)
			return nil
		},
	}
}

func astCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "spew-dump the parsed AST for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}
			program, err := parseProgram(string(data))
			if err != nil {
				printErr(err)
				os.Exit(1)
			}
			spew.Dump(program)
			return nil
		},
	}
}

func parseProgram(source string) (*ast.Block, error) {
	p, err := parser.New(source)
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

// printErr prints the JS-level "line:column: message" spec.md
// requires; with --trace it additionally prints the pkg/errors stack
// wrapped around the sentinel lexer/parser error.
func printErr(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	if traceFlag {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	}
}
