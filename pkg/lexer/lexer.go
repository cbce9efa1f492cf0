// Package lexer implements the EGA tokenizer: a single left-to-right pass
// that turns source text into a flat token stream for the parser.
package lexer

import (
	"strconv"
	"strings"

	"github.com/katayama-lang/ega/pkg/diagnostics"
)

// TokenType identifies the kind of a lexer token.
type TokenType int

const (
	TokEOF TokenType = iota
	TokInt
	TokStr
	TokIdent
	TokSymbol
)

func (t TokenType) String() string {
	switch t {
	case TokEOF:
		return "EOF"
	case TokInt:
		return "INT"
	case TokStr:
		return "STR"
	case TokIdent:
		return "IDENT"
	case TokSymbol:
		return "SYMBOL"
	default:
		return "?"
	}
}

// Token is a single lexical token. Int is only meaningful when Type is
// TokInt.
type Token struct {
	Type TokenType
	Line int
	Str  string
	Int  int
}

// identFirst/identRest mirror is_ident_fchar/is_ident_char: identifiers are
// alphabetic or drawn from this fixed symbol set, which is how `+`, `-`,
// `==`, `<=`, `?:` and friends get to be ordinary identifiers rather than
// dedicated operator tokens.
const identSymbols = "_+-[]<>=!~*&|%^?:"

func isIdentFirst(ch byte) bool {
	return isAlpha(ch) || strings.IndexByte(identSymbols, ch) >= 0
}

func isIdentRest(ch byte) bool {
	return isAlphaNum(ch) || strings.IndexByte(identSymbols, ch) >= 0
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlphaNum(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	default:
		return false
	}
}

// eofByte is the sentinel the original implementation treats as an
// explicit end of input in the middle of a buffer (0x7F / DEL).
const eofByte = 0x7F

type scanner struct {
	src  string
	pos  int
	line int
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekAt(off int) byte {
	p := s.pos + off
	if p >= len(s.src) {
		return 0
	}
	return s.src[p]
}

func (s *scanner) advance() byte {
	ch := s.src[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
	}
	return ch
}

// Tokenize scans source into a token stream terminated by a TokEOF token.
// Lines are counted from 1. `@` begins a line comment; a doubled `"` inside
// a string literal is an escaped quote, the only escape EGA recognizes.
func Tokenize(source string) ([]Token, error) {
	s := &scanner{src: source, line: 1}
	var tokens []Token

	for !s.atEnd() {
		ch := s.peek()

		if ch == '@' {
			for !s.atEnd() && s.peek() != '\n' {
				s.advance()
			}
			continue
		}

		if isSpace(ch) {
			s.advance()
			continue
		}

		if ch == eofByte {
			break
		}

		startLine := s.line

		if isIdentFirst(ch) {
			start := s.pos
			s.advance()
			for !s.atEnd() && isIdentRest(s.peek()) {
				s.advance()
			}
			tokens = append(tokens, Token{Type: TokIdent, Line: startLine, Str: s.src[start:s.pos]})
			continue
		}

		if isDigit(ch) {
			start := s.pos
			for !s.atEnd() && isDigit(s.peek()) {
				s.advance()
			}
			text := s.src[start:s.pos]
			n, _ := strconv.Atoi(text)
			tokens = append(tokens, Token{Type: TokInt, Line: startLine, Str: text, Int: n})
			continue
		}

		switch ch {
		case '"':
			s.advance()
			var buf strings.Builder
			for {
				if s.atEnd() {
					return nil, diagnostics.New(diagnostics.KindSyntax, startLine)
				}
				c := s.peek()
				if c == '"' {
					if s.peekAt(1) == '"' {
						buf.WriteByte('"')
						s.advance()
						s.advance()
						continue
					}
					s.advance()
					break
				}
				buf.WriteByte(c)
				s.advance()
			}
			tokens = append(tokens, Token{Type: TokStr, Line: startLine, Str: buf.String()})
			continue

		case '(', ')', ',', '{', '}', ';':
			s.advance()
			tokens = append(tokens, Token{Type: TokSymbol, Line: startLine, Str: string(ch)})
			continue
		}

		return nil, diagnostics.New(diagnostics.KindSyntax, startLine)
	}

	tokens = append(tokens, Token{Type: TokEOF, Line: s.line})
	return tokens, nil
}
