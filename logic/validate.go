package logic

import (
	"errors"
	"fmt"

	"github.com/midbel/taut/logic/op"
)

// ErrInvalid is the coarse rejection outcome. Every validation and
// lex error wraps it so callers can collapse all of them to a single
// "invalid expression" answer with errors.Is.
var ErrInvalid = errors.New("invalid expression")

// Validate checks each token against its neighbours. Rules are the
// usual adjacency constraints of infix notation: binary operators
// need an operand on both sides, negations and opening parentheses
// need one on their right, operands can not be juxtaposed. Both ends
// of the sequence are guarded explicitly and parentheses have to
// balance.
func Validate(tokens []Token) error {
	if len(tokens) == 0 {
		return fmt.Errorf("empty expression: %w", ErrInvalid)
	}
	var depth int
	for i, t := range tokens {
		var (
			prev, hasPrev = neighbour(tokens, i-1)
			next, hasNext = neighbour(tokens, i+1)
		)
		switch {
		case op.IsOperand(t.Kind):
			if hasPrev && !opensOperand(prev.Kind) {
				return misplaced(t)
			}
			if hasNext && !closesOperand(next.Kind) {
				return misplaced(t)
			}
		case t.Kind == op.Not:
			if hasPrev && !opensOperand(prev.Kind) {
				return misplaced(t)
			}
			if !hasNext || !startsOperand(next.Kind) {
				return misplaced(t)
			}
		case op.IsBinary(t.Kind):
			if !hasPrev || !endsOperand(prev.Kind) {
				return misplaced(t)
			}
			if !hasNext || !startsOperand(next.Kind) {
				return misplaced(t)
			}
		case t.Kind == op.BegGrp:
			depth++
			if hasPrev && !opensOperand(prev.Kind) {
				return misplaced(t)
			}
			if !hasNext || !startsOperand(next.Kind) {
				return misplaced(t)
			}
		case t.Kind == op.EndGrp:
			depth--
			if depth < 0 {
				return unbalanced(t)
			}
			if !hasPrev || !endsOperand(prev.Kind) {
				return misplaced(t)
			}
			if hasNext && !closesOperand(next.Kind) {
				return misplaced(t)
			}
		default:
			return misplaced(t)
		}
	}
	if depth != 0 {
		return fmt.Errorf("unbalanced parenthesis: %w", ErrInvalid)
	}
	return nil
}

func neighbour(tokens []Token, i int) (Token, bool) {
	if i < 0 || i >= len(tokens) {
		return Token{}, false
	}
	return tokens[i], true
}

// opensOperand tells whether kind may appear directly before an
// operand, a negation or an opening parenthesis.
func opensOperand(kind op.Kind) bool {
	return op.IsOperator(kind) || kind == op.BegGrp
}

// closesOperand tells whether kind may appear directly after an
// operand or a closing parenthesis.
func closesOperand(kind op.Kind) bool {
	return op.IsBinary(kind) || kind == op.EndGrp
}

// startsOperand tells whether kind can begin a sub expression.
func startsOperand(kind op.Kind) bool {
	return op.IsOperand(kind) || kind == op.Not || kind == op.BegGrp
}

// endsOperand tells whether kind can end a sub expression.
func endsOperand(kind op.Kind) bool {
	return op.IsOperand(kind) || kind == op.EndGrp
}

func misplaced(t Token) error {
	return fmt.Errorf("%s: unexpected %s: %w", t.Position, t, ErrInvalid)
}

func unbalanced(t Token) error {
	return fmt.Errorf("%s: unbalanced parenthesis: %w", t.Position, ErrInvalid)
}
