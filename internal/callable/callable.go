// Package callable defines the two kinds of invocable value the
// interpreter supports: user-defined functions, which close over the
// environment active at their declaration, and native functions
// implemented by the host (currently only `clock`).
package callable

import (
	"fmt"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/environment"
	"github.com/loxlang/lox/internal/value"
)

// Callable is anything that can appear on the left of a call
// expression.
type Callable interface {
	value.Value
	Arity() int
}

// Function is a user-defined function: it holds a shared reference to
// its declaration (so every call sees the same parameter list and
// body) and the environment captured at the point the `fun`
// statement ran, which is what gives the language closures and
// lexical (not dynamic) scoping.
type Function struct {
	Decl    *ast.FunctionDecl
	Closure *environment.Environment
}

func (*Function) Type() value.Type { return value.CallableType }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme)
}

func (f *Function) Arity() int { return len(f.Decl.Params) }

// Native is a host-implemented callable, e.g. `clock`.
type Native struct {
	NativeArity int
	Invoke      func(args []value.Value) (value.Value, error)
}

func (*Native) Type() value.Type { return value.CallableType }
func (*Native) String() string   { return "<native fn>" }
func (n *Native) Arity() int     { return n.NativeArity }
