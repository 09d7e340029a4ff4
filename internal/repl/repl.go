// Package repl implements the interactive read-eval-print loop: each
// line is scanned, parsed in statement-list mode, and interpreted
// against an environment that persists across lines, so a variable
// declared on one line is visible on the next. This is the ambient
// REPL surface layered on top of the four core CLI commands.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/loxlang/lox/internal/config"
	"github.com/loxlang/lox/internal/interp"
	"github.com/loxlang/lox/internal/parser"
	"github.com/loxlang/lox/internal/scanner"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's cosmetic configuration.
type Repl struct {
	Cfg *config.Config
}

// New builds a Repl from cfg (config.Default() if the caller has no
// config file).
func New(cfg *config.Config) *Repl {
	return &Repl{Cfg: cfg}
}

func (r *Repl) printBanner(w io.Writer) {
	line := strings.Repeat("-", 60)
	blueColor.Fprintln(w, line)
	greenColor.Fprintln(w, r.Cfg.Banner)
	blueColor.Fprintln(w, line)
	yellowColor.Fprintln(w, "Version: "+r.Cfg.Version)
	blueColor.Fprintln(w, line)
	cyanColor.Fprintln(w, "Type an expression or statement and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintln(w, line)
}

// Start runs the loop until the user exits or EOF is reached (e.g.
// Ctrl+D).
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Cfg.Prompt, Stdout: w})
	if err != nil {
		return err
	}
	defer rl.Close()

	it := interp.New()
	it.Out = w

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Goodbye.\n"))
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Goodbye.\n"))
			return nil
		}
		rl.SaveHistory(line)
		r.evalLine(w, it, line)
	}
}

func (r *Repl) evalLine(w io.Writer, it *interp.Interpreter, line string) {
	sc := scanner.New(line)
	tokens, lexErrs := sc.ScanTokens()
	for _, e := range lexErrs {
		redColor.Fprintln(w, e.Error())
	}
	if len(lexErrs) > 0 {
		return
	}

	p := parser.New(tokens)
	statements := p.ParseProgram()
	if len(p.Errors) > 0 {
		for _, e := range p.Errors {
			redColor.Fprintln(w, e.Error())
		}
		return
	}

	if err := it.Interpret(statements); err != nil {
		redColor.Fprintln(w, err.Error())
		return
	}
}
