package logic

import (
	"fmt"
	"unicode/utf8"

	"github.com/midbel/taut/logic/op"
)

type ScanMode int8

const (
	// ModeStrict rejects dangling multi character operators with a
	// lex error.
	ModeStrict ScanMode = 1 << iota
	// ModeLegacy drops dangling multi character operators silently,
	// as the historical tool did.
	ModeLegacy
)

type Scanner struct {
	input []byte
	pos   int
	next  int
	char  rune

	Position

	mode ScanMode
}

func NewScanner(str string, mode ScanMode) *Scanner {
	var scan Scanner
	scan.mode = mode
	scan.input = []byte(str)
	scan.Position.Line = 1
	scan.read()
	return &scan
}

// Scan tokenizes the whole input and collects the variables found,
// in first occurrence order. In strict mode dangling '-' and '<'
// sequences give a lex error; in legacy mode they vanish.
func Scan(str string, mode ScanMode) ([]Token, *Registry, error) {
	var (
		scan   = NewScanner(str, mode)
		vars   = NewRegistry()
		tokens []Token
	)
	for {
		tok := scan.Scan()
		if tok.Kind == op.EOF {
			break
		}
		if tok.Kind == op.Invalid {
			return nil, nil, fmt.Errorf("%s: incomplete operator %q: %w", tok.Position, tok.Literal, ErrInvalid)
		}
		if tok.Kind == op.Variable {
			vars.Add(tok.Literal)
		}
		tokens = append(tokens, tok)
	}
	return tokens, vars, nil
}

func (s *Scanner) Scan() Token {
	for {
		s.skipBlanks()

		var tok Token
		tok.Position = s.Position
		if s.done() {
			tok.Kind = op.EOF
			return tok
		}
		switch s.char {
		case zero, falsum, one, verum:
			s.scanConstant(&tok)
		case lparen, rparen:
			s.scanGroup(&tok)
		case bang, tilde, caret, star, vee, plus:
			s.scanOperator(&tok)
		case minus, langle:
			s.scanArrow(&tok)
			if tok.Kind == op.Invalid && s.mode == ModeLegacy {
				continue
			}
		default:
			s.scanVariable(&tok)
		}
		return tok
	}
}

func (s *Scanner) scanConstant(tok *Token) {
	tok.Kind = op.Literal
	tok.Literal = string(s.char)
	s.read()
}

func (s *Scanner) scanGroup(tok *Token) {
	tok.Kind = op.BegGrp
	if s.char == rparen {
		tok.Kind = op.EndGrp
	}
	tok.Literal = string(s.char)
	s.read()
}

func (s *Scanner) scanOperator(tok *Token) {
	switch s.char {
	case bang, tilde:
		tok.Kind = op.Not
	case caret, star:
		tok.Kind = op.And
	case vee, plus:
		tok.Kind = op.Or
	}
	tok.Literal = string(s.char)
	s.read()
}

func (s *Scanner) scanArrow(tok *Token) {
	tok.Kind = op.Invalid
	switch s.char {
	case minus:
		s.read()
		if s.char == rangle {
			tok.Kind = op.Implies
			tok.Literal = "->"
			s.read()
			return
		}
		tok.Literal = "-"
	case langle:
		s.read()
		if s.char != minus {
			tok.Literal = "<"
			return
		}
		s.read()
		if s.char == rangle {
			tok.Kind = op.Iff
			tok.Literal = "<->"
			s.read()
			return
		}
		tok.Literal = "<-"
	}
}

func (s *Scanner) scanVariable(tok *Token) {
	tok.Kind = op.Variable
	tok.Literal = string(s.char)
	s.read()
}

func (s *Scanner) read() {
	if s.next >= len(s.input) {
		s.char = 0
		s.pos = len(s.input)
		return
	}
	r, n := utf8.DecodeRune(s.input[s.next:])
	if r == utf8.RuneError && n == 1 {
		// undecodable byte, keep it as a raw one character token
		r = rune(s.input[s.next])
	}
	if s.char == nl {
		s.Line++
		s.Column = 0
	}
	s.char, s.pos, s.next = r, s.next, s.next+n
	s.Column++
}

func (s *Scanner) done() bool {
	return s.char == 0
}

func (s *Scanner) skipBlanks() {
	for isBlank(s.char) {
		s.read()
	}
}

const (
	zero   = '0'
	one    = '1'
	falsum = 'F'
	verum  = 'T'
	lparen = '('
	rparen = ')'
	bang   = '!'
	tilde  = '~'
	caret  = '^'
	star   = '*'
	vee    = 'v'
	plus   = '+'
	minus  = '-'
	langle = '<'
	rangle = '>'
	space  = ' '
	tab    = '\t'
	cr     = '\r'
	nl     = '\n'
)

func isBlank(c rune) bool {
	return c == space || c == tab || c == cr || c == nl
}
