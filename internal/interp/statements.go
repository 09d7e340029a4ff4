package interp

import (
	"fmt"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/callable"
	"github.com/loxlang/lox/internal/environment"
	"github.com/loxlang/lox/internal/value"
)

// execute runs a single statement. The returned value is only
// meaningful for the return-signal/error cases; normal statement
// execution yields no usable result of its own.
func (it *Interpreter) execute(stmt ast.Stmt) (value.Value, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := it.eval(s.Expr)
		return nil, err

	case *ast.PrintStmt:
		v, err := it.eval(s.Expr)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(it.Out, value.Stringify(v))
		return nil, nil

	case *ast.VarStmt:
		var v value.Value = value.NilValue
		if s.Init != nil {
			var err error
			v, err = it.eval(s.Init)
			if err != nil {
				return nil, err
			}
		}
		it.env.Define(s.Name.Lexeme, v)
		return nil, nil

	case *ast.BlockStmt:
		return it.executeBlock(s.Statements, environment.New(it.env))

	case *ast.IfStmt:
		return it.executeIf(s)

	case *ast.WhileStmt:
		return it.executeWhile(s)

	case *ast.FunctionStmt:
		fn := &callable.Function{Decl: s.Decl, Closure: it.env}
		it.env.Define(s.Decl.Name.Lexeme, fn)
		if it.env != it.globals {
			// Later declarations in this local scope go into a child
			// scope, so the closure sees only the bindings that existed
			// when the function was declared (lexical, not dynamic).
			// Globals stay late-bound.
			it.env = environment.New(it.env)
		}
		return nil, nil

	case *ast.ReturnStmt:
		var v value.Value = value.NilValue
		if s.Value != nil {
			var err error
			v, err = it.eval(s.Value)
			if err != nil {
				return nil, err
			}
		}
		return nil, &returnSignal{Keyword: s.Keyword, Value: v}

	default:
		return nil, &RuntimeError{Message: "unknown statement node"}
	}
}

// executeBlock saves the current environment, installs newEnv, runs
// statements in order, and restores the saved environment on every
// exit path: normal completion, a runtime error, or a non-local
// return.
func (it *Interpreter) executeBlock(statements []ast.Stmt, newEnv *environment.Environment) (value.Value, error) {
	previous := it.env
	it.env = newEnv
	defer func() { it.env = previous }()

	for _, stmt := range statements {
		if v, err := it.execute(stmt); err != nil {
			return v, err
		}
	}
	return nil, nil
}

func (it *Interpreter) executeIf(s *ast.IfStmt) (value.Value, error) {
	cond, err := it.eval(s.Cond)
	if err != nil {
		return nil, err
	}
	if value.IsTruthy(cond) {
		return it.execute(s.Then)
	}
	if s.Else != nil {
		return it.execute(s.Else)
	}
	return nil, nil
}

func (it *Interpreter) executeWhile(s *ast.WhileStmt) (value.Value, error) {
	for {
		cond, err := it.eval(s.Cond)
		if err != nil {
			return nil, err
		}
		if !value.IsTruthy(cond) {
			return nil, nil
		}
		if v, err := it.execute(s.Body); err != nil {
			return v, err
		}
	}
}
