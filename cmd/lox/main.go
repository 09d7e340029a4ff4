// Command lox is the CLI wrapper around the scanner, parser, and
// interpreter: it selects a mode, reads the source file, and routes
// failures to the documented exit codes.
package main

import (
	"fmt"
	"os"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/config"
	"github.com/loxlang/lox/internal/diagnostics"
	"github.com/loxlang/lox/internal/interp"
	"github.com/loxlang/lox/internal/parser"
	"github.com/loxlang/lox/internal/repl"
	"github.com/loxlang/lox/internal/scanner"
	"github.com/loxlang/lox/internal/value"
)

const (
	exitOK      = 0
	exitUsage   = 64
	exitDataErr = 65
	exitSoftErr = 70
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	opts, args := parseFlags(args)
	if opts.noColor {
		diagnostics.DisableColor()
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		diagnostics.Error(stderr, "could not read config %s: %v", opts.configPath, err)
		return exitUsage
	}
	if !cfg.ColorEnabled(opts.noColor) {
		diagnostics.DisableColor()
	}

	if opts.showHelp {
		printUsage(stdout)
		return exitOK
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, cfg.Version)
		return exitOK
	}

	if len(args) == 0 || args[0] == "repl" {
		if err := repl.New(cfg).Start(stdout); err != nil {
			diagnostics.Error(stderr, "%s", err.Error())
			return exitUsage
		}
		return exitOK
	}

	if len(args) < 2 {
		printUsage(stderr)
		return exitUsage
	}

	command, filename := args[0], args[1]
	source, err := os.ReadFile(filename)
	if err != nil {
		diagnostics.Error(stderr, "Could not read file '%s': %v", filename, err)
		return exitUsage
	}

	switch command {
	case "tokenize":
		return runTokenize(string(source), stdout, stderr)
	case "parse":
		return runParse(string(source), stdout, stderr)
	case "evaluate":
		return runEvaluate(string(source), stdout, stderr)
	case "run":
		return runProgram(string(source), stdout, stderr)
	default:
		printUsage(stderr)
		return exitUsage
	}
}

type cliOptions struct {
	configPath  string
	noColor     bool
	showHelp    bool
	showVersion bool
}

func parseFlags(args []string) (cliOptions, []string) {
	var opts cliOptions
	opts.configPath = ".lox.yaml"

	var rest []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 < len(args) {
				i++
				opts.configPath = args[i]
			}
		case "--no-color":
			opts.noColor = true
		case "--help", "-h":
			opts.showHelp = true
		case "--version", "-v":
			opts.showVersion = true
		default:
			rest = append(rest, args[i])
		}
	}
	if os.Getenv("NO_COLOR") != "" {
		opts.noColor = true
	}
	return opts, rest
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "Usage: lox <command> <filename>")
	fmt.Fprintln(w, "Commands: tokenize, parse, evaluate, run, repl")
}

func runTokenize(source string, stdout, stderr *os.File) int {
	sc := scanner.New(source)
	tokens, errs := sc.ScanTokens()
	for _, t := range tokens {
		fmt.Fprintln(stdout, t.String())
	}
	for _, e := range errs {
		diagnostics.Error(stderr, "%s", e.Error())
	}
	if len(errs) > 0 {
		return exitDataErr
	}
	return exitOK
}

func runParse(source string, stdout, stderr *os.File) int {
	p, lexErrs := parseExpressionMode(source, stderr)
	if len(lexErrs) > 0 {
		return exitDataErr
	}
	expr := p.ParseExpression()
	if len(p.Errors) > 0 {
		for _, e := range p.Errors {
			diagnostics.Error(stderr, "%s", e.Error())
		}
		return exitDataErr
	}
	fmt.Fprintln(stdout, ast.Print(expr))
	return exitOK
}

func runEvaluate(source string, stdout, stderr *os.File) int {
	p, lexErrs := parseExpressionMode(source, stderr)
	if len(lexErrs) > 0 {
		return exitDataErr
	}
	expr := p.ParseExpression()
	if len(p.Errors) > 0 {
		for _, e := range p.Errors {
			diagnostics.Error(stderr, "%s", e.Error())
		}
		return exitDataErr
	}

	it := interp.New()
	it.Out = stdout
	v, err := it.EvaluateExpression(expr)
	if err != nil {
		diagnostics.Error(stderr, "%s", err.Error())
		return exitSoftErr
	}
	fmt.Fprintln(stdout, value.Stringify(v))
	return exitOK
}

func runProgram(source string, stdout, stderr *os.File) int {
	sc := scanner.New(source)
	tokens, lexErrs := sc.ScanTokens()
	for _, e := range lexErrs {
		diagnostics.Error(stderr, "%s", e.Error())
	}
	if len(lexErrs) > 0 {
		return exitDataErr
	}

	p := parser.New(tokens)
	statements := p.ParseProgram()
	if len(p.Errors) > 0 {
		for _, e := range p.Errors {
			diagnostics.Error(stderr, "%s", e.Error())
		}
		return exitDataErr
	}

	it := interp.New()
	it.Out = stdout
	if err := it.Interpret(statements); err != nil {
		diagnostics.Error(stderr, "%s", err.Error())
		return exitSoftErr
	}
	return exitOK
}

// parseExpressionMode scans source and returns a parser primed on the
// resulting tokens, along with any lex errors (already printed).
func parseExpressionMode(source string, stderr *os.File) (*parser.Parser, []error) {
	sc := scanner.New(source)
	tokens, lexErrs := sc.ScanTokens()
	for _, e := range lexErrs {
		diagnostics.Error(stderr, "%s", e.Error())
	}
	return parser.New(tokens), lexErrs
}
