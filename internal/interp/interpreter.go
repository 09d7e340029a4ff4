// Package interp walks the AST the parser produces, evaluating
// expressions and executing statements against a chain of lexical
// environments. It owns the global environment (including the clock
// native) and implements the language's operator semantics, control
// flow, and function call/return protocol.
package interp

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/callable"
	"github.com/loxlang/lox/internal/environment"
	"github.com/loxlang/lox/internal/token"
	"github.com/loxlang/lox/internal/value"
)

// RuntimeError is a type/arity/undefined-variable/division-by-zero
// fault raised while evaluating. It carries the offending token so
// the line can be reported, and terminates the program with exit
// code 70 once it reaches the top-level Interpreter.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// returnSignal is the non-local exit `return` produces. It shares the
// error-return channel with RuntimeError (per the language's single-
// mechanism design for exceptional outcomes) but is caught at a
// user-function call boundary and converted back into an ordinary
// result rather than propagating to the top level.
type returnSignal struct {
	Keyword token.Token
	Value   value.Value
}

func (r *returnSignal) Error() string { return "return outside a function" }

// Interpreter holds the mutable state of one run: the current scope
// and a fixed reference to globals.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	Out     io.Writer
}

// New builds an Interpreter with a fresh global scope, installing the
// `clock` native before any user code can run.
func New() *Interpreter {
	globals := environment.New(nil)
	it := &Interpreter{globals: globals, env: globals, Out: os.Stdout}
	it.defineNatives()
	return it
}

func (it *Interpreter) defineNatives() {
	it.globals.Define("clock", &callable.Native{
		NativeArity: 0,
		Invoke: func(args []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}

// Interpret runs a parsed program (statement-list mode). A
// RuntimeError bubbling out of a top-level statement is returned to
// the caller, which reports it and exits 70.
func (it *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if _, err := it.execute(stmt); err != nil {
			if rs, ok := err.(*returnSignal); ok {
				// A `return` at top level (outside any function) has
				// nowhere to unwind to; treat it as the runtime fault
				// it effectively is rather than let it escape silently.
				return &RuntimeError{Token: rs.Keyword, Message: "Can't return from top-level code."}
			}
			return err
		}
	}
	return nil
}

// EvaluateExpression runs single-expression mode (`evaluate`): parse
// produced one expression, evaluate it, return its value.
func (it *Interpreter) EvaluateExpression(expr ast.Expr) (value.Value, error) {
	return it.eval(expr)
}
