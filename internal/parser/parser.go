package parser

import (
	"modnorm/internal/ast"
	"modnorm/internal/diag"
	"modnorm/internal/lexer"
	"modnorm/internal/source"
	"modnorm/internal/token"
)

// Parser holds the state for one compilation unit. It recognizes the
// declaration structure the rule engine needs (type declarations, their
// members and method parameters, each with its extended-modifier list)
// and skips over everything else with bracket balancing. Bodies and
// initializers are never interpreted.
type Parser struct {
	fs   *source.FileSet
	file *source.File
	lx   *lexer.Lexer
	tree *ast.Tree
	bag  *diag.Bag
	tok  token.Token
}

// ParseFile parses one file into a declaration tree. Syntax problems
// are reported into bag; the returned tree holds whatever declarations
// were recognized before (and after) each problem.
func ParseFile(fs *source.FileSet, id source.FileID, bag *diag.Bag) *ast.Tree {
	p := &Parser{
		fs:   fs,
		file: fs.Get(id),
		tree: ast.NewTree(id),
		bag:  bag,
	}
	p.lx = lexer.New(p.file)
	p.tok = p.lx.Next()

	p.parseCompilationUnit()
	return p.tree
}

func (p *Parser) at(k token.Kind) bool {
	return p.tok.Kind == k
}

// bump consumes the current token and returns it.
func (p *Parser) bump() token.Token {
	t := p.tok
	p.tok = p.lx.Next()
	return t
}

func (p *Parser) error(code diag.Code, span source.Span, msg string) {
	if p.bag != nil {
		p.bag.Add(diag.NewError(code, span, msg))
	}
}

func (p *Parser) parseCompilationUnit() {
	if p.at(token.KwPackage) {
		p.skipToSemicolon()
	}
	for p.at(token.KwImport) {
		p.skipToSemicolon()
	}

	for !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.bump()
			continue
		}
		id, ok := p.parseTypeDecl(ast.NoNodeID, ast.SlotNone)
		if !ok {
			p.error(diag.SynUnexpectedToken, p.tok.Span,
				"expected a type declaration, got "+p.tok.Kind.String())
			p.bump()
			continue
		}
		p.tree.AddRoot(id)
		if p.tree.UnitName == "" {
			if n := p.tree.Get(id); n != nil {
				p.tree.UnitName = n.Name
			}
		}
	}
}

// parseTypeDecl parses a class, interface, enum or annotation-type
// declaration starting at its extended modifiers. Returns false when the
// current token does not start a type declaration.
func (p *Parser) parseTypeDecl(parent ast.NodeID, slot ast.SlotKind) (ast.NodeID, bool) {
	mods := p.parseExtendedModifiers()
	return p.parseTypeDeclAfterModifiers(parent, slot, mods)
}

func (p *Parser) parseTypeDeclAfterModifiers(parent ast.NodeID, slot ast.SlotKind, mods []extModifier) (ast.NodeID, bool) {
	var kind ast.NodeKind
	isInterface := false

	switch p.tok.Kind {
	case token.KwClass:
		kind = ast.NodeType
	case token.KwInterface:
		kind = ast.NodeType
		isInterface = true
	case token.KwEnum:
		kind = ast.NodeEnum
	case token.At:
		if p.lx.Peek().Kind != token.KwInterface {
			return ast.NoNodeID, false
		}
		p.bump() // '@'
		kind = ast.NodeAnnotationType
	default:
		return ast.NoNodeID, false
	}
	p.bump() // class/interface/enum keyword

	name := p.tok
	if !p.at(token.Ident) {
		p.error(diag.SynExpectTypeName, p.tok.Span,
			"expected type name, got "+p.tok.Kind.String())
	} else {
		p.bump()
	}

	decl := p.tree.New(ast.Node{
		Kind:      kind,
		Name:      name.Text,
		Interface: isInterface,
		Span:      name.Span,
	})
	if parent.IsValid() {
		p.tree.Attach(parent, slot, decl)
	}
	p.attachExtendedModifiers(decl, mods)

	// Generics, extends and implements clauses carry nothing the rule
	// engine reads.
	for !p.at(token.LBrace) && !p.at(token.EOF) {
		p.bump()
	}
	if p.at(token.EOF) {
		p.error(diag.SynUnclosedDelimiter, name.Span, "type body never opens")
		return decl, true
	}
	p.bump() // '{'

	if kind == ast.NodeEnum {
		if !p.skipEnumConstants() {
			return decl, true
		}
	}
	p.parseMembers(decl)
	return decl, true
}

// skipEnumConstants skips the constant list of an enum body, stopping
// after the ';' that separates constants from members. Returns false
// when the body closed (or the file ended) with no member section.
func (p *Parser) skipEnumConstants() bool {
	depth := 0
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.LParen, token.LBrace, token.LBracket:
			depth++
		case token.RParen, token.RBracket:
			if depth > 0 {
				depth--
			}
		case token.RBrace:
			if depth == 0 {
				p.bump()
				return false
			}
			depth--
		case token.Semicolon:
			if depth == 0 {
				p.bump()
				return true
			}
		}
		p.bump()
	}
	return false
}

// parseMembers parses declarations inside a type body up to the
// closing brace.
func (p *Parser) parseMembers(parent ast.NodeID) {
	for {
		switch p.tok.Kind {
		case token.RBrace:
			p.bump()
			return
		case token.EOF:
			p.error(diag.SynUnclosedDelimiter, p.tok.Span, "unclosed type body")
			return
		case token.Semicolon:
			p.bump()
			continue
		}

		mods := p.parseExtendedModifiers()

		switch p.tok.Kind {
		case token.KwClass, token.KwInterface, token.KwEnum:
			p.parseTypeDeclAfterModifiers(parent, ast.SlotMembers, mods)
			continue
		case token.At:
			if p.lx.Peek().Kind == token.KwInterface {
				p.parseTypeDeclAfterModifiers(parent, ast.SlotMembers, mods)
				continue
			}
		case token.LBrace:
			// Instance or static initializer block; not a declaration.
			p.skipBalancedBraces()
			continue
		}

		p.parseFieldOrMethod(parent, mods)
	}
}
