// Package ast defines the expression and statement node types produced
// by the parser and walked by the interpreter. Dispatch is done by a
// direct type switch on these concrete types rather than through a
// visitor interface: in a language without a visitor's usual payoff
// (exhaustiveness checking, double dispatch across two open
// hierarchies) a type switch says the same thing with less machinery.
package ast

import "github.com/loxlang/lox/internal/token"

// Expr is any expression node.
type Expr interface{ exprNode() }

// Stmt is any statement node.
type Stmt interface{ stmtNode() }

// LiteralExpr holds a scanned constant: a float64, string, bool, or
// nil.
type LiteralExpr struct {
	Value interface{}
}

// UnaryExpr is `op operand`, e.g. `-x` or `!x`.
type UnaryExpr struct {
	Op      token.Token
	Operand Expr
}

// BinaryExpr is `left op right` for arithmetic, comparison, and
// equality operators.
type BinaryExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// LogicalExpr is `left op right` for `and`/`or`, which short-circuit
// and therefore cannot share BinaryExpr's always-evaluate-both
// evaluation rule.
type LogicalExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// GroupingExpr is a parenthesized expression, kept distinct from its
// inner expression so the AST printer can render `(group ...)`.
type GroupingExpr struct {
	Inner Expr
}

// VariableExpr reads the value bound to Name.
type VariableExpr struct {
	Name token.Token
}

// AssignExpr assigns Value to the variable Name and evaluates to
// Value.
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

// CallExpr invokes Callee with Args. Paren is the closing `)`,
// retained so arity/type errors can be reported at the call site.
type CallExpr struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (*LiteralExpr) exprNode()  {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates Expr and writes its display form followed by a
// newline.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares Name, optionally initialized by Init (nil means
// the variable starts bound to Nil).
type VarStmt struct {
	Name token.Token
	Init Expr
}

// BlockStmt is a `{ ... }` sequence executed in a fresh child scope.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt evaluates Cond and runs Then or Else (Else may be nil).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt runs Body while Cond is truthy. `for` loops desugar into
// this plus a BlockStmt at parse time (see parser.forStatement).
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// FunctionDecl is the declaration shared between the parser (which
// builds it) and the runtime (whose function values hold a reference
// to it so every call sees the same body and parameter list).
type FunctionDecl struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// FunctionStmt declares a named function in the current scope.
type FunctionStmt struct {
	Decl *FunctionDecl
}

// ReturnStmt unwinds the nearest enclosing call with Value (Nil if
// omitted).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
