package logic

import (
	"fmt"

	"github.com/midbel/taut/logic/op"
)

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Literal string
	Kind    op.Kind
	Position
}

// Bool gives the truth value carried by a constant token.
func (t Token) Bool() bool {
	return t.Kind == op.Literal && (t.Literal == "1" || t.Literal == "T")
}

func (t Token) String() string {
	switch t.Kind {
	case op.Invalid:
		return fmt.Sprintf("invalid(%s)", t.Literal)
	case op.EOF:
		return "<eof>"
	case op.Literal:
		return fmt.Sprintf("literal(%s)", t.Literal)
	case op.Variable:
		return fmt.Sprintf("variable(%s)", t.Literal)
	case op.Not:
		return "<not>"
	case op.And:
		return "<and>"
	case op.Or:
		return "<or>"
	case op.Implies:
		return "<implies>"
	case op.Iff:
		return "<iff>"
	case op.BegGrp:
		return "<beg-group>"
	case op.EndGrp:
		return "<end-group>"
	}
	return fmt.Sprintf("unknown(%s)", t.Literal)
}

// Registry keeps the distinct variable names of an expression in
// first occurrence order. The order fixes the columns of the table.
type Registry struct {
	names []string
	seen  map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		seen: make(map[string]struct{}),
	}
}

func (r *Registry) Add(name string) {
	if _, ok := r.seen[name]; ok {
		return
	}
	r.seen[name] = struct{}{}
	r.names = append(r.names, name)
}

func (r *Registry) Has(name string) bool {
	_, ok := r.seen[name]
	return ok
}

func (r *Registry) Len() int {
	return len(r.names)
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}
