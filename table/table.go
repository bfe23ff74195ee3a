package table

import (
	"github.com/midbel/taut/logic"
)

type Row struct {
	Values []bool
	Result bool
}

type Table struct {
	Expr  string
	Names []string
	Rows  []Row
}

// Generate runs the whole pipeline on expr and enumerates the 2^N
// assignments of its N variables. Row i binds the variable in column
// j to the complement of bit N-1-j of i, so the first row binds every
// variable to true and the last one to false. An expression without
// variable gives a single row.
func Generate(expr string, mode logic.ScanMode) (*Table, error) {
	tokens, vars, err := logic.Scan(expr, mode)
	if err != nil {
		return nil, err
	}
	if err := logic.Validate(tokens); err != nil {
		return nil, err
	}
	var (
		postfix = logic.Postfix(tokens)
		tab     = Table{
			Expr:  expr,
			Names: vars.Names(),
		}
		count   = 1 << vars.Len()
		binding = make(map[string]bool, vars.Len())
	)
	for i := 0; i < count; i++ {
		row := Row{
			Values: make([]bool, len(tab.Names)),
		}
		for j, name := range tab.Names {
			val := (i>>(len(tab.Names)-1-j))&1 == 0
			binding[name] = val
			row.Values[j] = val
		}
		res, err := logic.Eval(postfix, binding)
		if err != nil {
			return nil, err
		}
		row.Result = res
		tab.Rows = append(tab.Rows, row)
	}
	return &tab, nil
}

type Verdict int

const (
	Contingent Verdict = iota
	Tautology
	Contradiction
)

func (v Verdict) String() string {
	switch v {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		return "contingent"
	}
}

// Classify reads the result column of a generated table and tells
// whether the expression always, never or sometimes holds. The row
// returned is the first satisfying assignment, nil for a
// contradiction.
func Classify(tab *Table) (Verdict, *Row) {
	var (
		sat   *Row
		holds int
	)
	for i := range tab.Rows {
		if tab.Rows[i].Result {
			holds++
			if sat == nil {
				sat = &tab.Rows[i]
			}
		}
	}
	switch holds {
	case len(tab.Rows):
		return Tautology, sat
	case 0:
		return Contradiction, nil
	default:
		return Contingent, sat
	}
}
