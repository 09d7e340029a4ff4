package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/scanner"
)

func parseExpr(t *testing.T, src string) (ast.Expr, *Parser) {
	t.Helper()
	tokens, lexErrs := scanner.New(src).ScanTokens()
	require.Empty(t, lexErrs)
	p := New(tokens)
	expr := p.ParseExpression()
	return expr, p
}

func parseProgram(t *testing.T, src string) ([]ast.Stmt, *Parser) {
	t.Helper()
	tokens, lexErrs := scanner.New(src).ScanTokens()
	require.Empty(t, lexErrs)
	p := New(tokens)
	stmts := p.ParseProgram()
	return stmts, p
}

func TestParseExpression_Precedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(+ 1.0 (* 2.0 3.0))"},
		{"(1 + 2) * 3", "(* (group (+ 1.0 2.0)) 3.0)"},
		{"-1 + 2", "(+ (- 1.0) 2.0)"},
		{"!true", "(! true)"},
		{"1 < 2 == 3 < 4", "(== (< 1.0 2.0) (< 3.0 4.0))"},
		{`"a" + "b"`, "(+ a b)"},
		{"nil", "nil"},
		{"a = 1", "(= a 1.0)"},
		{"a or b and c", "(or a (and b c))"},
	}
	for _, tt := range tests {
		expr, p := parseExpr(t, tt.input)
		require.Empty(t, p.Errors, tt.input)
		assert.Equal(t, tt.want, ast.Print(expr), tt.input)
	}
}

func TestParseExpression_Call(t *testing.T) {
	expr, p := parseExpr(t, "f(1, 2, 3)")
	require.Empty(t, p.Errors)
	assert.Equal(t, "(call f 1.0 2.0 3.0)", ast.Print(expr))
}

func TestParseExpression_InvalidAssignmentTarget(t *testing.T) {
	_, p := parseExpr(t, "1 + 2 = 3")
	require.Len(t, p.Errors, 1)
	assert.Contains(t, p.Errors[0].Error(), "Invalid assignment target.")
}

func TestParseExpression_TooManyArguments(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ")"
	_, p := parseExpr(t, src)
	require.NotEmpty(t, p.Errors)
	assert.Contains(t, p.Errors[0].Error(), "Can't have more than 255 arguments.")
}

func TestParseExpression_MissingClosingParen(t *testing.T) {
	_, p := parseExpr(t, "(1 + 2")
	require.Len(t, p.Errors, 1)
	assert.Contains(t, p.Errors[0].Error(), "Expect ')' after expression.")
	assert.Contains(t, p.Errors[0].Error(), "at end")
}

func TestParseProgram_ForDesugarsToWhileInBlock(t *testing.T) {
	stmts, p := parseProgram(t, "for (var i = 0; i < 5; i = i + 1) print i;")
	require.Empty(t, p.Errors)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok, "for-loop should desugar into an outer block containing init + while")
	require.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar)

	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)
	assert.Equal(t, "(< i 5.0)", ast.Print(whileStmt.Cond))

	body, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok, "a for-loop with an increment wraps its body in a block with the increment appended")
	require.Len(t, body.Statements, 2)
}

func TestParseProgram_ForWithOmittedClausesDefaultsConditionToTrue(t *testing.T) {
	stmts, p := parseProgram(t, "for (;;) print 1;")
	require.Empty(t, p.Errors)
	require.Len(t, stmts, 1)
	whileStmt, ok := stmts[0].(*ast.WhileStmt)
	require.True(t, ok, "a for-loop with no init/inc should not be wrapped in an extra block")
	assert.Equal(t, "true", ast.Print(whileStmt.Cond))
}

func TestParseProgram_FunctionDeclaration(t *testing.T) {
	stmts, p := parseProgram(t, "fun add(a, b) { return a + b; }")
	require.Empty(t, p.Errors)
	require.Len(t, stmts, 1)
	fn, ok := stmts[0].(*ast.FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Decl.Name.Lexeme)
	require.Len(t, fn.Decl.Params, 2)
	assert.Equal(t, "a", fn.Decl.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Decl.Params[1].Lexeme)
	require.Len(t, fn.Decl.Body, 1)
}

func TestParseProgram_PanicModeRecoversAndReportsAllErrors(t *testing.T) {
	// The first statement is missing its ';', so the parser should
	// report exactly one error for it and then recover cleanly at the
	// next "print" keyword, without swallowing the statements after it.
	src := "print 1 print 2; print 3;"
	stmts, p := parseProgram(t, src)
	require.Len(t, p.Errors, 1)
	assert.Contains(t, p.Errors[0].Error(), "Expect ';' after value.")
	require.Len(t, stmts, 2, "recovery must not consume the valid statements that follow the error")

	for i, want := range []float64{2, 3} {
		printStmt, ok := stmts[i].(*ast.PrintStmt)
		require.True(t, ok)
		lit, ok := printStmt.Expr.(*ast.LiteralExpr)
		require.True(t, ok)
		assert.Equal(t, want, lit.Value)
	}
}

func TestParseProgram_EmptyProgramParsesToNoStatements(t *testing.T) {
	stmts, p := parseProgram(t, "")
	require.Empty(t, p.Errors)
	assert.Empty(t, stmts)
}

func TestParseProgram_IfElse(t *testing.T) {
	stmts, p := parseProgram(t, "if (true) print 1; else print 2;")
	require.Empty(t, p.Errors)
	require.Len(t, stmts, 1)
	ifStmt, ok := stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParseProgram_BlockScopesNest(t *testing.T) {
	stmts, p := parseProgram(t, "{ var a = 1; { var b = 2; } }")
	require.Empty(t, p.Errors)
	require.Len(t, stmts, 1)
	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)
	_, ok = outer.Statements[1].(*ast.BlockStmt)
	assert.True(t, ok)
}
