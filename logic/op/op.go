package op

type Kind rune

const (
	Invalid Kind = 0

	EOF Kind = 1 << iota
	Literal
	Variable
	Not
	And
	Or
	Implies
	Iff
	BegGrp
	EndGrp
)

// Precedence ranks, tightest first. Lower rank binds tighter.
const (
	L1 = iota + 1
	L2
	L3
	L4
	L5
	NotApplicable
)

var priorities = map[Kind]int{
	Not:     L1,
	And:     L2,
	Or:      L3,
	Implies: L4,
	Iff:     L5,
}

func Priority(kind Kind) int {
	if p, ok := priorities[kind]; ok {
		return p
	}
	return NotApplicable
}

func IsOperator(kind Kind) bool {
	switch kind {
	case Not, And, Or, Implies, Iff:
		return true
	default:
		return false
	}
}

func IsBinary(kind Kind) bool {
	return IsOperator(kind) && kind != Not
}

func IsOperand(kind Kind) bool {
	return kind == Literal || kind == Variable
}

var mapping = map[Kind]string{
	Not:     "!",
	And:     "^",
	Or:      "v",
	Implies: "->",
	Iff:     "<->",
	BegGrp:  "(",
	EndGrp:  ")",
}

func Symbol(kind Kind) string {
	return mapping[kind]
}
