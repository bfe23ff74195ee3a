package logic

import (
	"errors"
	"fmt"

	"github.com/midbel/taut/logic/op"
)

// ErrMalformed reports a postfix sequence that does not reduce to a
// single value. Validation rejects every input that could cause it,
// so seeing it outside the logic package is a programming error.
var ErrMalformed = errors.New("malformed postfix sequence")

// Eval walks a postfix sequence with an operand stack and returns
// the value of the expression under the given binding. Variables are
// looked up by their lexeme; a variable absent from the binding is
// an error, not an implicit false.
func Eval(postfix []Token, binding map[string]bool) (bool, error) {
	var stack operandStack
	for _, t := range postfix {
		switch t.Kind {
		case op.Literal:
			stack.push(t.Bool())
		case op.Variable:
			val, ok := binding[t.Literal]
			if !ok {
				return false, fmt.Errorf("%s: unbound variable: %w", t, ErrMalformed)
			}
			stack.push(val)
		case op.Not:
			right, err := stack.pop()
			if err != nil {
				return false, err
			}
			stack.push(!right)
		case op.And, op.Or, op.Implies, op.Iff:
			right, err := stack.pop()
			if err != nil {
				return false, err
			}
			left, err := stack.pop()
			if err != nil {
				return false, err
			}
			stack.push(apply(t.Kind, left, right))
		default:
			return false, fmt.Errorf("%s: %w", t, ErrMalformed)
		}
	}
	if len(stack) != 1 {
		return false, fmt.Errorf("%d values left on stack: %w", len(stack), ErrMalformed)
	}
	return stack.pop()
}

func apply(kind op.Kind, left, right bool) bool {
	switch kind {
	case op.And:
		return left && right
	case op.Or:
		return left || right
	case op.Implies:
		return !left || right
	case op.Iff:
		return left == right
	default:
		return false
	}
}

type operandStack []bool

func (s *operandStack) push(v bool) {
	*s = append(*s, v)
}

func (s *operandStack) pop() (bool, error) {
	if len(*s) == 0 {
		return false, fmt.Errorf("operand stack underflow: %w", ErrMalformed)
	}
	n := len(*s) - 1
	v := (*s)[n]
	*s = (*s)[:n]
	return v, nil
}
