package interp

import (
	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/callable"
	"github.com/loxlang/lox/internal/token"
	"github.com/loxlang/lox/internal/value"
)

// eval evaluates a single expression node. The returned error is
// always either nil or a *RuntimeError; expressions never produce a
// returnSignal directly (only a statement can).
func (it *Interpreter) eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil
	case *ast.GroupingExpr:
		return it.eval(e.Inner)
	case *ast.UnaryExpr:
		return it.evalUnary(e)
	case *ast.BinaryExpr:
		return it.evalBinary(e)
	case *ast.LogicalExpr:
		return it.evalLogical(e)
	case *ast.VariableExpr:
		return it.evalVariable(e)
	case *ast.AssignExpr:
		return it.evalAssign(e)
	case *ast.CallExpr:
		return it.evalCall(e)
	default:
		return nil, &RuntimeError{Message: "unknown expression node"}
	}
}

func literalValue(v interface{}) value.Value {
	switch vv := v.(type) {
	case nil:
		return value.NilValue
	case bool:
		return value.Boolean(vv)
	case float64:
		return value.Number(vv)
	case string:
		return value.String(vv)
	default:
		return value.NilValue
	}
}

func (it *Interpreter) evalUnary(e *ast.UnaryExpr) (value.Value, error) {
	operand, err := it.eval(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.Minus:
		n, ok := operand.(value.Number)
		if !ok {
			return nil, &RuntimeError{Token: e.Op, Message: "Operand must be a number."}
		}
		return -n, nil
	case token.Bang:
		return value.Boolean(!value.IsTruthy(operand)), nil
	default:
		return nil, &RuntimeError{Token: e.Op, Message: "unknown unary operator"}
	}
}

func (it *Interpreter) evalBinary(e *ast.BinaryExpr) (value.Value, error) {
	left, err := it.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Plus:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return ls + rs, nil
			}
		}
		return nil, &RuntimeError{Token: e.Op, Message: "Operands must be two numbers or two strings."}

	case token.Minus, token.Star, token.Slash,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, &RuntimeError{Token: e.Op, Message: "Operands must be numbers."}
		}
		switch e.Op.Kind {
		case token.Minus:
			return ln - rn, nil
		case token.Star:
			return ln * rn, nil
		case token.Slash:
			if rn == 0 {
				return nil, &RuntimeError{Token: e.Op, Message: "Division by zero."}
			}
			return ln / rn, nil
		case token.Greater:
			return value.Boolean(ln > rn), nil
		case token.GreaterEqual:
			return value.Boolean(ln >= rn), nil
		case token.Less:
			return value.Boolean(ln < rn), nil
		default: // LessEqual
			return value.Boolean(ln <= rn), nil
		}

	case token.EqualEqual:
		return value.Boolean(value.Equal(left, right)), nil
	case token.BangEqual:
		return value.Boolean(!value.Equal(left, right)), nil

	default:
		return nil, &RuntimeError{Token: e.Op, Message: "unknown binary operator"}
	}
}

// evalLogical implements short-circuiting: the right operand is only
// evaluated when the left doesn't already decide the result, and the
// result is the deciding operand's own value, not coerced to bool.
func (it *Interpreter) evalLogical(e *ast.LogicalExpr) (value.Value, error) {
	left, err := it.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.Or {
		if value.IsTruthy(left) {
			return left, nil
		}
	} else { // and
		if !value.IsTruthy(left) {
			return left, nil
		}
	}
	return it.eval(e.Right)
}

func (it *Interpreter) evalVariable(e *ast.VariableExpr) (value.Value, error) {
	if v, ok := it.env.Get(e.Name.Lexeme); ok {
		return v, nil
	}
	return nil, undefinedVariable(e.Name)
}

func undefinedVariable(name token.Token) *RuntimeError {
	return &RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."}
}

func (it *Interpreter) evalAssign(e *ast.AssignExpr) (value.Value, error) {
	v, err := it.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if !it.env.Assign(e.Name.Lexeme, v) {
		return nil, undefinedVariable(e.Name)
	}
	return v, nil
}

func (it *Interpreter) evalCall(e *ast.CallExpr) (value.Value, error) {
	calleeVal, err := it.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := it.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := calleeVal.(callable.Callable)
	if !ok {
		return nil, &RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."}
	}
	if len(args) != fn.Arity() {
		return nil, &RuntimeError{
			Token:   e.Paren,
			Message: argCountMessage(fn.Arity(), len(args)),
		}
	}

	switch f := fn.(type) {
	case *callable.Function:
		return it.callFunction(f, args)
	case *callable.Native:
		return f.Invoke(args)
	default:
		return nil, &RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."}
	}
}
