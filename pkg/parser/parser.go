// Package parser implements EGA's recursive-descent parser. The grammar has
// a single production, expression, because every construct — literals,
// variables, calls, control flow, operators — is either a literal, a
// variable reference, or a `name(arg, ...)` call.
package parser

import (
	"github.com/katayama-lang/ega/pkg/ast"
	"github.com/katayama-lang/ega/pkg/diagnostics"
	"github.com/katayama-lang/ega/pkg/lexer"
)

// Registry tells the parser which identifiers are registered function
// names. Parsing is binding-sensitive: an identifier immediately followed
// by `(` parses as a Call only if it is already known to the registry at
// parse time, otherwise it is a syntax error (a bare identifier can never
// be followed by `(`) or, with no following `(`, a Var. The registry must
// therefore be fully populated before Parse is called.
type Registry interface {
	IsFunction(name string) bool
}

type parser struct {
	tokens []lexer.Token
	pos    int
	reg    Registry
}

// Parse tokenizes and parses source into a Program. fns reports which
// identifiers are registered functions, resolving the grammar's only
// ambiguity (Var vs. Call) the same way at parse time as the original
// implementation does.
func Parse(source string, fns Registry) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, reg: fns}
	return p.parseProgram()
}

func (p *parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) line() int {
	return p.current().Line
}

func (p *parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) atSymbol(s string) bool {
	t := p.current()
	return t.Type == lexer.TokSymbol && t.Str == s
}

// parseProgram mirrors visit_translation_unit: a `;`-separated sequence of
// expressions, terminated by EOF. A dangling `;` right before EOF is
// accepted; anything else unparsable is a syntax error.
func (p *parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{LineNo: p.line()}

	for {
		if p.current().Type == lexer.TokEOF {
			return prog, nil
		}

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if expr == nil {
			return nil, diagnostics.New(diagnostics.KindSyntax, p.line())
		}
		prog.Statements = append(prog.Statements, expr)

		if p.atSymbol(";") {
			p.advance()
			if p.current().Type == lexer.TokEOF {
				return prog, nil
			}
			continue
		}
		continue
	}
}

// parseExpression mirrors visit_expression: dispatch on the current
// token's lexical class.
func (p *parser) parseExpression() (ast.Node, error) {
	tok := p.current()

	switch tok.Type {
	case lexer.TokEOF:
		return nil, nil

	case lexer.TokInt:
		p.advance()
		return &ast.Int{LineNo: tok.Line, Value: tok.Int}, nil

	case lexer.TokStr:
		p.advance()
		return &ast.Str{LineNo: tok.Line, Value: tok.Str}, nil

	case lexer.TokIdent:
		name := tok.Str
		if p.reg.IsFunction(name) {
			p.advance()
			return p.parseCall(name)
		}
		v := &ast.Var{LineNo: tok.Line, Name: name}
		p.advance()
		if p.atSymbol("(") {
			return nil, diagnostics.New(diagnostics.KindSyntax, tok.Line)
		}
		return v, nil

	case lexer.TokSymbol:
		switch tok.Str {
		case "(":
			return p.parseCall("")
		case "{":
			return p.parseArrayLiteral()
		default:
			return nil, nil
		}
	}

	return nil, nil
}

// parseCall mirrors visit_call: `name` has already been consumed, and the
// current token must be `(`. name is "" for a parenthesized sub-program.
func (p *parser) parseCall(name string) (ast.Node, error) {
	if !p.atSymbol("(") {
		return nil, nil
	}
	line := p.line()
	p.advance()

	call := &ast.Call{LineNo: line, Name: name}

	if p.atSymbol(")") {
		p.advance()
		return call, nil
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, diagnostics.New(diagnostics.KindSyntax, p.line())
	}
	call.Args = append(call.Args, expr)

	for {
		if p.atSymbol(")") {
			p.advance()
			return call, nil
		}
		if !p.atSymbol(",") {
			return nil, diagnostics.New(diagnostics.KindSyntax, p.line())
		}
		p.advance()

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if expr == nil {
			return nil, diagnostics.New(diagnostics.KindSyntax, p.line())
		}
		call.Args = append(call.Args, expr)
	}
}

// parseArrayLiteral mirrors visit_array_literal: `{` has not yet been
// consumed.
func (p *parser) parseArrayLiteral() (ast.Node, error) {
	line := p.line()
	p.advance() // consume '{'

	arr := &ast.Array{LineNo: line}

	if p.atSymbol("}") {
		p.advance()
		return arr, nil
	}

	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if expr == nil {
			return nil, diagnostics.New(diagnostics.KindSyntax, p.line())
		}
		arr.Elements = append(arr.Elements, expr)

		if p.atSymbol(",") {
			p.advance()
			continue
		}
		if p.atSymbol("}") {
			p.advance()
			return arr, nil
		}
		return nil, diagnostics.New(diagnostics.KindSyntax, p.line())
	}
}
