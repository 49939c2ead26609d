package parser

import (
	"strings"

	"modnorm/internal/ast"
	"modnorm/internal/diag"
	"modnorm/internal/source"
	"modnorm/internal/token"
)

// extModifier is one parsed member of an extended-modifier list before
// it is attached to its declaration.
type extModifier struct {
	isModifier bool
	keyword    ast.Keyword
	name       string
	span       source.Span
}

// parseExtendedModifiers consumes the leading annotations and modifier
// keywords of a declaration, in source order. An '@' directly followed
// by 'interface' is left alone: it starts an annotation-type
// declaration, not an annotation.
func (p *Parser) parseExtendedModifiers() []extModifier {
	var out []extModifier
	for {
		switch {
		case p.tok.IsModifier():
			t := p.bump()
			out = append(out, extModifier{
				isModifier: true,
				keyword:    ast.KeywordOf(t.Text),
				name:       t.Text,
				span:       t.Span,
			})
		case p.at(token.At) && p.lx.Peek().Kind != token.KwInterface:
			out = append(out, p.parseAnnotation())
		default:
			return out
		}
	}
}

// parseAnnotation consumes '@' Name ('.' Name)* ('(' ... ')')?.
func (p *Parser) parseAnnotation() extModifier {
	at := p.bump() // '@'
	span := at.Span

	var name strings.Builder
	for p.at(token.Ident) {
		t := p.bump()
		name.WriteString(t.Text)
		span = span.Cover(t.Span)
		if !p.at(token.Dot) {
			break
		}
		p.bump()
		name.WriteByte('.')
	}
	if name.Len() == 0 {
		p.error(diag.SynExpectIdentifier, p.tok.Span, "expected annotation name after '@'")
	}

	if p.at(token.LParen) {
		span = span.Cover(p.skipBalancedParens())
	}
	return extModifier{
		name: name.String(),
		span: span,
	}
}

func (p *Parser) attachExtendedModifiers(decl ast.NodeID, mods []extModifier) {
	for _, m := range mods {
		kind := ast.NodeAnnotation
		if m.isModifier {
			kind = ast.NodeModifier
		}
		id := p.tree.New(ast.Node{
			Kind:    kind,
			Name:    m.name,
			Keyword: m.keyword,
			Span:    m.span,
		})
		p.tree.Attach(decl, ast.SlotModifiers, id)
	}
}

// parseFieldOrMethod disambiguates a member header after its extended
// modifiers: an identifier followed by '(' at bracket depth zero is a
// method (or constructor), anything terminated by '=', ',' or ';' is a
// field. Generic arguments and array brackets raise the depth so their
// contents never decide the shape.
func (p *Parser) parseFieldOrMethod(parent ast.NodeID, mods []extModifier) {
	var (
		depth     int
		lastIdent token.Token
		start     = p.tok.Span
	)

	for {
		switch p.tok.Kind {
		case token.LParen:
			if depth == 0 {
				p.parseMethod(parent, mods, lastIdent, start)
				return
			}
			depth++
		case token.Assign, token.Comma, token.Semicolon:
			if depth == 0 {
				p.parseFieldTail(parent, mods, lastIdent, start)
				return
			}
		case token.Lt, token.LBracket:
			depth++
		case token.Gt, token.RBracket, token.RParen:
			if depth > 0 {
				depth--
			}
		case token.Ident:
			if depth == 0 {
				lastIdent = p.tok
			}
		case token.RBrace, token.EOF:
			p.error(diag.SynExpectMember, p.tok.Span, "member declaration never completes")
			return
		}
		p.bump()
	}
}

// parseFieldTail records the field declaration and skips the rest of
// the statement, initializer included, up to its ';'.
func (p *Parser) parseFieldTail(parent ast.NodeID, mods []extModifier, name token.Token, start source.Span) {
	field := p.tree.New(ast.Node{
		Kind: ast.NodeField,
		Name: name.Text,
		Span: start.Cover(name.Span),
	})
	p.tree.Attach(parent, ast.SlotMembers, field)
	p.attachExtendedModifiers(field, mods)
	p.skipToSemicolon()
}

// parseMethod records a method (or constructor, or annotation-type
// member when the enclosing declaration is an annotation type), parses
// its parameter list, and skips the throws clause plus body or default
// value.
func (p *Parser) parseMethod(parent ast.NodeID, mods []extModifier, name token.Token, start source.Span) {
	kind := ast.NodeMethod
	if enclosing := p.tree.Get(parent); enclosing != nil && enclosing.Kind == ast.NodeAnnotationType {
		kind = ast.NodeAnnotationTypeMember
	}
	method := p.tree.New(ast.Node{
		Kind: kind,
		Name: name.Text,
		Span: start.Cover(name.Span),
	})
	p.tree.Attach(parent, ast.SlotMembers, method)
	p.attachExtendedModifiers(method, mods)

	p.parseParams(method)

	// throws clause, annotation default value, then body or ';'.
	for {
		switch p.tok.Kind {
		case token.LBrace:
			p.skipBalancedBraces()
			return
		case token.Semicolon:
			p.bump()
			return
		case token.RBrace, token.EOF:
			return
		default:
			p.bump()
		}
	}
}

// parseParams consumes '(' ... ')' and records one NodeParam per
// formal parameter. Parameter names are the last identifier of each
// comma-separated segment, so generic, array and vararg types all
// resolve without interpreting the type itself.
func (p *Parser) parseParams(method ast.NodeID) {
	if !p.at(token.LParen) {
		return
	}
	p.bump() // '('

	toks := p.collectUntilCloseParen()
	for _, segment := range splitTopLevel(toks) {
		p.buildParam(method, segment)
	}
}

// collectUntilCloseParen buffers tokens up to the matching ')'.
func (p *Parser) collectUntilCloseParen() []token.Token {
	var (
		out   []token.Token
		depth int
	)
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			if depth == 0 {
				p.bump()
				return out
			}
			depth--
		case token.RBrace:
			// A stray close brace means the parameter list never
			// closed; leave it for the member loop.
			p.error(diag.SynUnclosedDelimiter, p.tok.Span, "unclosed parameter list")
			return out
		}
		out = append(out, p.bump())
	}
	return out
}

// splitTopLevel splits a parameter-list token stream at commas that sit
// outside any (), [], {} or <> nesting.
func splitTopLevel(toks []token.Token) [][]token.Token {
	var (
		out     [][]token.Token
		current []token.Token
		depth   int
	)
	for _, t := range toks {
		switch t.Kind {
		case token.LParen, token.LBracket, token.LBrace, token.Lt:
			depth++
		case token.RParen, token.RBracket, token.RBrace, token.Gt:
			if depth > 0 {
				depth--
			}
		case token.Comma:
			if depth == 0 {
				out = append(out, current)
				current = nil
				continue
			}
		}
		current = append(current, t)
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}

// buildParam turns one parameter segment into a NodeParam with its
// extended modifiers attached.
func (p *Parser) buildParam(method ast.NodeID, toks []token.Token) {
	if len(toks) == 0 {
		return
	}

	var mods []extModifier
	i := 0
	for i < len(toks) {
		t := toks[i]
		switch {
		case t.IsModifier():
			mods = append(mods, extModifier{
				isModifier: true,
				keyword:    ast.KeywordOf(t.Text),
				name:       t.Text,
				span:       t.Span,
			})
			i++
		case t.Kind == token.At:
			ann, next := scanAnnotationTokens(toks, i)
			mods = append(mods, ann)
			i = next
		default:
			i = len(toks) // type and name follow; handled below
		}
	}

	var name token.Token
	for _, t := range toks {
		if t.Kind == token.Ident {
			name = t
		}
	}
	if name.Kind != token.Ident {
		// No identifier at all (e.g. a receiver parameter); nothing
		// the rule engine could edit.
		return
	}

	span := toks[0].Span.Cover(toks[len(toks)-1].Span)
	param := p.tree.New(ast.Node{
		Kind: ast.NodeParam,
		Name: name.Text,
		Span: span,
	})
	p.tree.Attach(method, ast.SlotParams, param)
	p.attachExtendedModifiers(param, mods)
}

// scanAnnotationTokens reads '@' Name ('.' Name)* ('(' ... ')')? from a
// buffered token slice, returning the annotation and the next index.
func scanAnnotationTokens(toks []token.Token, start int) (extModifier, int) {
	span := toks[start].Span
	i := start + 1 // past '@'

	var name strings.Builder
	for i < len(toks) && toks[i].Kind == token.Ident {
		name.WriteString(toks[i].Text)
		span = span.Cover(toks[i].Span)
		i++
		if i < len(toks) && toks[i].Kind == token.Dot {
			name.WriteByte('.')
			i++
			continue
		}
		break
	}

	if i < len(toks) && toks[i].Kind == token.LParen {
		depth := 0
		for i < len(toks) {
			switch toks[i].Kind {
			case token.LParen:
				depth++
			case token.RParen:
				depth--
			}
			span = span.Cover(toks[i].Span)
			i++
			if depth == 0 {
				break
			}
		}
	}
	return extModifier{name: name.String(), span: span}, i
}

// skipToSemicolon consumes tokens through the next ';' at bracket
// depth zero. Initializers may nest braces, parens and brackets.
func (p *Parser) skipToSemicolon() {
	depth := 0
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.LParen, token.LBrace, token.LBracket:
			depth++
		case token.RParen, token.RBrace, token.RBracket:
			if depth > 0 {
				depth--
			}
		case token.Semicolon:
			if depth == 0 {
				p.bump()
				return
			}
		}
		p.bump()
	}
}

// skipBalancedBraces consumes a '{'-opened block through its matching '}'.
func (p *Parser) skipBalancedBraces() {
	if !p.at(token.LBrace) {
		return
	}
	open := p.bump()
	depth := 1
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
			if depth == 0 {
				p.bump()
				return
			}
		}
		p.bump()
	}
	p.error(diag.SynUnclosedDelimiter, open.Span, "unclosed block")
}

// skipBalancedParens consumes '(' ... ')' and returns the covered span.
func (p *Parser) skipBalancedParens() source.Span {
	open := p.bump() // '('
	span := open.Span
	depth := 1
	for !p.at(token.EOF) {
		t := p.bump()
		span = span.Cover(t.Span)
		switch t.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return span
			}
		}
	}
	p.error(diag.SynUnclosedDelimiter, open.Span, "unclosed annotation arguments")
	return span
}
