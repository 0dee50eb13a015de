package expr

// Operator is a closed, fixed enumeration of JsonLogic operator keys.
// Like the teacher's condition.Operator, it is a named string type so
// a dispatch table can switch on it directly.
type Operator string

const (
	Eq       Operator = "=="
	Ne       Operator = "!="
	StrictEq Operator = "==="
	StrictNe Operator = "!=="

	Not   Operator = "!"
	Bang2 Operator = "!!"
	And   Operator = "and"
	Or    Operator = "or"
	If    Operator = "if"

	Lt  Operator = "<"
	Lte Operator = "<="
	Gt  Operator = ">"
	Gte Operator = ">="

	Add Operator = "+"
	Sub Operator = "-"
	Mul Operator = "*"
	Div Operator = "/"
	Mod Operator = "%"
	Min Operator = "min"
	Max Operator = "max"

	Cat    Operator = "cat"
	Substr Operator = "substr"
	In     Operator = "in"

	Merge  Operator = "merge"
	Map    Operator = "map"
	Filter Operator = "filter"
	Reduce Operator = "reduce"
	All    Operator = "all"
	Some   Operator = "some"
	None   Operator = "none"

	Var         Operator = "var"
	Missing     Operator = "missing"
	MissingSome Operator = "missing_some"

	Log Operator = "log"
)

// operators is the closed set of recognized operator keys (spec 3).
var operators = map[Operator]bool{
	Eq: true, Ne: true, StrictEq: true, StrictNe: true,
	Not: true, Bang2: true, And: true, Or: true, If: true,
	Lt: true, Lte: true, Gt: true, Gte: true,
	Add: true, Sub: true, Mul: true, Div: true, Mod: true, Min: true, Max: true,
	Cat: true, Substr: true, In: true,
	Merge: true, Map: true, Filter: true, Reduce: true, All: true, Some: true, None: true,
	Var: true, Missing: true, MissingSome: true,
	Log: true,
}

// Lookup resolves a raw JSON object key against the fixed operator
// table. The second result is false for any key outside the closed
// set (spec 4.1, rule 3).
func Lookup(key string) (Operator, bool) {
	op := Operator(key)
	if operators[op] {
		return op, true
	}
	return "", false
}
