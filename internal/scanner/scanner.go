// Package scanner turns Lox source text into a stream of tokens.
package scanner

import (
	"fmt"
	"strconv"

	"github.com/loxlang/lox/internal/token"
)

// Error is a lex-time failure: an unterminated string or an
// unrecognized character. Message already carries the "[line N]
// Error: ..." form the tokenize command prints verbatim.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Scanner turns a source string into tokens, tracking the current
// line for diagnostics. ScanTokens scans the whole source in one call;
// there is no token-at-a-time interface. Errors are collected rather
// than fatal so a single scan surfaces every bad lexeme.
type Scanner struct {
	src     string
	start   int
	current int
	line    int
	errors  []error
}

// New returns a Scanner positioned at the start of src.
func New(src string) *Scanner {
	return &Scanner{src: src, line: 1}
}

// ScanTokens consumes the entire source and returns every token
// (terminated by a trailing EOF token) plus any lex errors
// encountered along the way.
func (s *Scanner) ScanTokens() ([]token.Token, []error) {
	var tokens []token.Token
	for !s.isAtEnd() {
		s.start = s.current
		if tok, ok := s.scanToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, token.New(token.EOF, "", s.line))
	return tokens, s.errors
}

func (s *Scanner) isAtEnd() bool { return s.current >= len(s.src) }

func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.src[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) lexeme() string { return s.src[s.start:s.current] }

func (s *Scanner) emit(kind token.Kind) token.Token {
	return token.New(kind, s.lexeme(), s.line)
}

func (s *Scanner) emitLiteral(kind token.Kind, literal interface{}) token.Token {
	return token.WithLiteral(kind, s.lexeme(), literal, s.line)
}

func (s *Scanner) errorf(format string, args ...interface{}) {
	s.errors = append(s.errors, &Error{
		Line:    s.line,
		Message: fmt.Sprintf("[line %d] Error: %s", s.line, fmt.Sprintf(format, args...)),
	})
}

// scanToken scans and returns exactly one token, or ok=false if the
// lexeme produced no token (whitespace, a comment, or a lex error).
func (s *Scanner) scanToken() (token.Token, bool) {
	c := s.advance()
	switch c {
	case '(':
		return s.emit(token.LeftParen), true
	case ')':
		return s.emit(token.RightParen), true
	case '{':
		return s.emit(token.LeftBrace), true
	case '}':
		return s.emit(token.RightBrace), true
	case ',':
		return s.emit(token.Comma), true
	case '.':
		return s.emit(token.Dot), true
	case '-':
		return s.emit(token.Minus), true
	case '+':
		return s.emit(token.Plus), true
	case ';':
		return s.emit(token.Semicolon), true
	case '*':
		return s.emit(token.Star), true

	case '!':
		if s.match('=') {
			return s.emit(token.BangEqual), true
		}
		return s.emit(token.Bang), true
	case '=':
		if s.match('=') {
			return s.emit(token.EqualEqual), true
		}
		return s.emit(token.Equal), true
	case '<':
		if s.match('=') {
			return s.emit(token.LessEqual), true
		}
		return s.emit(token.Less), true
	case '>':
		if s.match('=') {
			return s.emit(token.GreaterEqual), true
		}
		return s.emit(token.Greater), true

	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
			return token.Token{}, false
		}
		return s.emit(token.Slash), true

	case ' ', '\r', '\t':
		return token.Token{}, false
	case '\n':
		s.line++
		return token.Token{}, false

	case '"':
		return s.scanString()

	default:
		switch {
		case isDigit(c):
			return s.scanNumber()
		case isAlpha(c):
			return s.scanIdentifier()
		default:
			s.errorf("Unexpected character: %s", string(c))
			return token.Token{}, false
		}
	}
}

func (s *Scanner) scanString() (token.Token, bool) {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isAtEnd() {
		s.errorf("Unterminated string.")
		return token.Token{}, false
	}
	s.advance() // the closing quote
	value := s.src[s.start+1 : s.current-1]
	return s.emitLiteral(token.String, value), true
}

func (s *Scanner) scanNumber() (token.Token, bool) {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	value, err := strconv.ParseFloat(s.lexeme(), 64)
	if err != nil {
		s.errorf("invalid number literal: %s", s.lexeme())
		return token.Token{}, false
	}
	return s.emitLiteral(token.Number, value), true
}

func (s *Scanner) scanIdentifier() (token.Token, bool) {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.lexeme()
	if kind, ok := token.Keywords[text]; ok {
		return s.emit(kind), true
	}
	return s.emit(token.Identifier), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
