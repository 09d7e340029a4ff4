package parser

import (
	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/token"
)

const maxParams = 255

// declaration → funDecl | varDecl | statement, with panic-mode
// recovery: a nil return here means "error already recorded and the
// parser already synchronized past it; the caller just moves on".
func (p *Parser) declaration() ast.Stmt {
	before := len(p.Errors)
	start := p.current
	stmt := p.declarationNoSync()
	if len(p.Errors) > before {
		if p.current == start {
			// The failed declaration consumed nothing; skip the bad
			// token so recovery always makes progress.
			p.advance()
		}
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) declarationNoSync() ast.Stmt {
	switch {
	case p.match(token.Fun):
		return p.functionDeclaration("function")
	case p.match(token.Var):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// funDecl → "fun" IDENT "(" params? ")" block
func (p *Parser) functionDeclaration(kind string) ast.Stmt {
	name := p.consume(token.Identifier, "Expect "+kind+" name.")
	p.consume(token.LeftParen, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxParams {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name."))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")
	p.consume(token.LeftBrace, "Expect '{' before "+kind+" body.")
	body := p.block()

	return &ast.FunctionStmt{Decl: &ast.FunctionDecl{Name: name, Params: params, Body: body}}
}

// varDecl → "var" IDENT ("=" expression)? ";"
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expect variable name.")

	var init ast.Expr
	if p.match(token.Equal) {
		init = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Init: init}
}

// statement → printStmt | ifStmt | whileStmt | forStmt | returnStmt
//           | block | exprStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.LeftBrace):
		return &ast.BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return &ast.PrintStmt{Expr: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: expr}
}

// block → "{" declaration* "}" (the leading "{" is already consumed
// by the caller).
func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return statements
}

// ifStmt → "if" "(" expression ")" statement ("else" statement)?
func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: thenBranch, Else: elseBranch}
}

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

// forStmt desugars at parse time into a while loop wrapped in a
// block, so the evaluator never needs to know `for` exists:
//
//	for (init; cond; inc) body
//	=>
//	{ init; while (cond) { body; inc; } }
//
// A missing cond becomes literal true; a missing init or inc is
// simply elided.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(token.Semicolon):
		init = nil
	case p.check(token.Var):
		p.advance()
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	var inc ast.Expr
	if !p.check(token.RightParen) {
		inc = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if inc != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expr: inc}}}
	}
	if cond == nil {
		cond = &ast.LiteralExpr{Value: true}
	}
	body = &ast.WhileStmt{Cond: cond, Body: body}

	if init != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{init, body}}
	}
	return body
}

// returnStmt → "return" expression? ";"
func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}
