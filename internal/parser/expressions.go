package parser

import (
	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/token"
)

// expression → assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → IDENT "=" assignment | logic_or
//
// The left side is parsed as an ordinary `or` expression first; on
// seeing `=` the parser checks after the fact that it parsed a bare
// variable reference, since assignment targets are validated, not
// predicted.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.VariableExpr); ok {
			return &ast.AssignExpr{Name: v.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target.")
		return expr
	}
	return expr
}

// logic_or → logic_and ("or" logic_and)*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// logic_and → equality ("and" equality)*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality → comparison (("!=" | "==") comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison → term (("<"|"<="|">"|">=") term)*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// term → factor (("+"|"-") factor)*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor → unary (("*"|"/") unary)*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Star, token.Slash) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary → ("!"|"-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		operand := p.unary()
		return &ast.UnaryExpr{Op: op, Operand: operand}
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(token.LeftParen) {
		expr = p.finishCall(expr)
	}
	return expr
}

// arguments → expression ("," expression)*  (max 255)
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxParams {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments.")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

// primary → "true"|"false"|"nil"|NUMBER|STRING
//         | "(" expression ")" | IDENT
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.LiteralExpr{Value: false}
	case p.match(token.True):
		return &ast.LiteralExpr{Value: true}
	case p.match(token.Nil):
		return &ast.LiteralExpr{Value: nil}
	case p.match(token.Number, token.String):
		return &ast.LiteralExpr{Value: p.previous().Literal}
	case p.match(token.Identifier):
		return &ast.VariableExpr{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.GroupingExpr{Inner: expr}
	}

	p.errorAt(p.peek(), "Expect expression.")
	return nil
}
