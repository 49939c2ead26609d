package lexer

import (
	"modnorm/internal/source"
	"modnorm/internal/token"
)

// Lexer produces tokens for the Java declaration subset. Comments and
// whitespace are skipped; bodies and initializers are tokenized but never
// interpreted beyond bracket balance.
type Lexer struct {
	file   *source.File
	cursor Cursor
	look   *token.Token // one-token lookahead buffer
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Next returns the next significant token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.cursor.SpanFrom(lx.cursor.Mark()),
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString('"', token.StringLit)
	case ch == '\'':
		return lx.scanString('\'', token.CharLit)
	default:
		return lx.scanPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// skipTrivia consumes whitespace, line comments and block comments.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()
		case ch == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			case '*':
				lx.cursor.Bump()
				lx.cursor.Bump()
				for !lx.cursor.EOF() {
					if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
						lx.cursor.Bump()
						lx.cursor.Bump()
						break
					}
					lx.cursor.Bump()
				}
			default:
				return
			}
		default:
			return
		}
	}
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	span := lx.cursor.SpanFrom(m)
	text := string(lx.file.Content[span.Start:span.End])
	kind := token.Ident
	if kw, ok := token.LookupKeyword(text); ok {
		kind = kw
	}
	return token.Token{Kind: kind, Span: span, Text: text}
}

func (lx *Lexer) scanNumber() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		// Digits, radix prefixes, separators, suffixes, exponent signs.
		if isDec(ch) || isIdentContinue(ch) || ch == '.' || ch == '_' {
			lx.cursor.Bump()
			continue
		}
		break
	}
	span := lx.cursor.SpanFrom(m)
	return token.Token{
		Kind: token.IntLit,
		Span: span,
		Text: string(lx.file.Content[span.Start:span.End]),
	}
}

func (lx *Lexer) scanString(quote byte, kind token.Kind) token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		ch := lx.cursor.Bump()
		if ch == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump()
			continue
		}
		if ch == quote || ch == '\n' {
			break
		}
	}
	span := lx.cursor.SpanFrom(m)
	return token.Token{
		Kind: kind,
		Span: span,
		Text: string(lx.file.Content[span.Start:span.End]),
	}
}

func (lx *Lexer) scanPunct() token.Token {
	m := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	kind := token.Punct
	switch ch {
	case '@':
		kind = token.At
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && b1 == '.' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			kind = token.Ellipsis
		}
	case '=':
		kind = token.Assign
		// '==' stays a plain operator, it never starts an initializer.
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.Punct
		}
	}

	span := lx.cursor.SpanFrom(m)
	return token.Token{
		Kind: kind,
		Span: span,
		Text: string(lx.file.Content[span.Start:span.End]),
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ch == '$' ||
		('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') ||
		ch >= 0x80 // treat any non-ASCII byte as identifier text
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDec(ch)
}

func isDec(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
