package interp

import (
	"fmt"

	"github.com/loxlang/lox/internal/callable"
	"github.com/loxlang/lox/internal/environment"
	"github.com/loxlang/lox/internal/value"
)

// callFunction invokes a user-defined function: a fresh environment
// is created whose parent is the function's closure — not the
// caller's environment — which is what makes scoping lexical instead
// of dynamic. Parameters are bound there, the body runs as a block,
// and a returnSignal reaching this frame is caught and unwrapped into
// an ordinary result; normal completion yields Nil.
func (it *Interpreter) callFunction(fn *callable.Function, args []value.Value) (value.Value, error) {
	callEnv := environment.New(fn.Closure)
	for i, param := range fn.Decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	_, err := it.executeBlock(fn.Decl.Body, callEnv)
	if err == nil {
		return value.NilValue, nil
	}
	if rs, ok := err.(*returnSignal); ok {
		return rs.Value, nil
	}
	return nil, err
}

func argCountMessage(want, got int) string {
	return fmt.Sprintf("Expected %d arguments but got %d.", want, got)
}
