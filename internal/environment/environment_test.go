package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/lox/internal/value"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", value.Number(1))

	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Number(1), v)
}

func TestGet_UndefinedReturnsNotOK(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestDefine_RedefinitionInSameScopeOverwrites(t *testing.T) {
	env := New(nil)
	env.Define("x", value.Number(1))
	env.Define("x", value.Number(2))

	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Number(2), v)
}

func TestGet_WalksParentChain(t *testing.T) {
	globals := New(nil)
	globals.Define("x", value.String("global"))
	child := New(globals)

	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.String("global"), v)
}

func TestGet_ChildShadowsParent(t *testing.T) {
	globals := New(nil)
	globals.Define("x", value.String("global"))
	child := New(globals)
	child.Define("x", value.String("local"))

	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.String("local"), v)

	// the parent's own binding is untouched
	pv, ok := globals.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.String("global"), pv)
}

func TestAssign_WritesToNearestDefiningScope(t *testing.T) {
	globals := New(nil)
	globals.Define("x", value.Number(1))
	child := New(globals)

	ok := child.Assign("x", value.Number(2))
	require.True(t, ok)

	// the assignment found and mutated the global binding, not a new
	// one in the child scope
	v, _ := globals.Get("x")
	assert.Equal(t, value.Number(2), v)

	cv, _ := child.Get("x")
	assert.Equal(t, value.Number(2), cv)
}

func TestAssign_UndefinedVariableFails(t *testing.T) {
	env := New(nil)
	ok := env.Assign("missing", value.Number(1))
	assert.False(t, ok, "assign must never create a new binding")

	_, ok = env.Get("missing")
	assert.False(t, ok)
}

func TestAssign_NeverCreatesBindingInChildScope(t *testing.T) {
	globals := New(nil)
	child := New(globals)

	ok := child.Assign("x", value.Number(1))
	assert.False(t, ok)
}
