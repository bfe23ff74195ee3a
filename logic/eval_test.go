package logic

import (
	"errors"
	"testing"

	"github.com/midbel/taut/logic/op"
)

func evalString(t *testing.T, expr string, binding map[string]bool) bool {
	t.Helper()
	tokens, _, err := Scan(expr, ModeStrict)
	if err != nil {
		t.Fatalf("%s: fail to scan: %s", expr, err)
	}
	if err := Validate(tokens); err != nil {
		t.Fatalf("%s: fail to validate: %s", expr, err)
	}
	res, err := Eval(Postfix(tokens), binding)
	if err != nil {
		t.Fatalf("%s: fail to evaluate: %s", expr, err)
	}
	return res
}

func TestEval(t *testing.T) {
	tests := []struct {
		Expr    string
		Binding map[string]bool
		Want    bool
	}{
		{Expr: "1", Want: true},
		{Expr: "0", Want: false},
		{Expr: "T ^ T", Want: true},
		{Expr: "~0", Want: true},
		{Expr: "p", Binding: map[string]bool{"p": true}, Want: true},
		{Expr: "p ^ q", Binding: map[string]bool{"p": true, "q": false}, Want: false},
		{Expr: "p v q", Binding: map[string]bool{"p": true, "q": false}, Want: true},
		{Expr: "p -> q", Binding: map[string]bool{"p": true, "q": false}, Want: false},
		{Expr: "p -> q", Binding: map[string]bool{"p": false, "q": false}, Want: true},
		{Expr: "p <-> q", Binding: map[string]bool{"p": false, "q": false}, Want: true},
		{Expr: "p <-> q", Binding: map[string]bool{"p": true, "q": false}, Want: false},
		{Expr: "~p v q", Binding: map[string]bool{"p": true, "q": false}, Want: false},
		{Expr: "(p v q) ^ ~(p ^ q)", Binding: map[string]bool{"p": true, "q": false}, Want: true},
		// precedence: negation binds tighter than conjunction,
		// conjunction tighter than disjunction, and so on
		{Expr: "~p ^ q", Binding: map[string]bool{"p": false, "q": true}, Want: true},
		{Expr: "p v q ^ r", Binding: map[string]bool{"p": true, "q": false, "r": false}, Want: true},
		{Expr: "p ^ q -> r", Binding: map[string]bool{"p": true, "q": true, "r": false}, Want: false},
	}
	for _, c := range tests {
		got := evalString(t, c.Expr, c.Binding)
		if got != c.Want {
			t.Errorf("%s (%v): results mismatched! want %t, got %t", c.Expr, c.Binding, c.Want, got)
		}
	}
}

func TestEvalImplicationOrder(t *testing.T) {
	// left and right operands of the implication must not be
	// swapped when popped from the stack
	binding := map[string]bool{"p": true, "q": false}
	if evalString(t, "p -> q", binding) {
		t.Errorf("true -> false should not hold")
	}
	if !evalString(t, "q -> p", binding) {
		t.Errorf("false -> true should hold")
	}
}

func TestEvalUnboundVariable(t *testing.T) {
	tokens := []Token{
		{Kind: op.Variable, Literal: "p"},
		{Kind: op.Variable, Literal: "x"},
		{Kind: op.And, Literal: "^"},
	}
	_, err := Eval(tokens, map[string]bool{"p": true})
	if err == nil {
		t.Fatal("error expected")
	}
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("error does not wrap the malformed outcome: %s", err)
	}
}

func TestEvalMalformed(t *testing.T) {
	tests := [][]Token{
		{
			{Kind: op.And, Literal: "^"},
		},
		{
			{Kind: op.Variable, Literal: "p"},
			{Kind: op.And, Literal: "^"},
		},
		{
			{Kind: op.Variable, Literal: "p"},
			{Kind: op.Variable, Literal: "q"},
		},
		{
			{Kind: op.Not, Literal: "~"},
		},
	}
	for i, c := range tests {
		_, err := Eval(c, map[string]bool{"p": true, "q": true})
		if err == nil {
			t.Errorf("sequence %d: error expected", i)
			continue
		}
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("sequence %d: error does not wrap the malformed outcome: %s", i, err)
		}
	}
}
