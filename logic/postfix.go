package logic

import (
	"github.com/midbel/taut/logic/op"
)

// Postfix reorders a validated infix sequence into reverse polish
// form with the shunting yard algorithm. An incoming operator pops
// every stacked operator that binds strictly tighter; operators of
// equal rank stay on the stack, which makes same level chains group
// to the right. Parentheses only group and are dropped from the
// output.
func Postfix(tokens []Token) []Token {
	var (
		output    = make([]Token, 0, len(tokens))
		operators []Token
	)
	for _, t := range tokens {
		switch {
		case op.IsOperator(t.Kind):
			for len(operators) > 0 && op.Priority(t.Kind) > op.Priority(top(operators).Kind) {
				output = append(output, top(operators))
				operators = pop(operators)
			}
			operators = append(operators, t)
		case t.Kind == op.BegGrp:
			operators = append(operators, t)
		case t.Kind == op.EndGrp:
			for len(operators) > 0 {
				curr := top(operators)
				operators = pop(operators)
				if curr.Kind == op.BegGrp {
					break
				}
				output = append(output, curr)
			}
		default:
			output = append(output, t)
		}
	}
	for len(operators) > 0 {
		output = append(output, top(operators))
		operators = pop(operators)
	}
	return output
}

func top(tokens []Token) Token {
	return tokens[len(tokens)-1]
}

func pop(tokens []Token) []Token {
	return tokens[:len(tokens)-1]
}
