package expr

import "github.com/growthbook/jsonlogic-go/internal/value"

// VariableNames implements the static analysis behind the public
// VariableNames entry point (spec 6): the set of constant string
// argument-names reachable under `var`. Per spec, only `var`'s own
// first argument is inspected; a `var`'s other arguments (e.g. its
// default value) are not walked for further names, but every other
// operator's children are.
func VariableNames(root Expression) (map[string]struct{}, error) {
	names := map[string]struct{}{}
	if err := walkVarNames(root, names); err != nil {
		return nil, err
	}
	return names, nil
}

func walkVarNames(e Expression, names map[string]struct{}) error {
	switch node := e.(type) {
	case Constant:
		return nil
	case Computed:
		if node.Op == Var {
			return collectVarName(node, names)
		}
		for _, child := range node.Args {
			if err := walkVarNames(child, names); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func collectVarName(node Computed, names map[string]struct{}) error {
	if len(node.Args) == 0 {
		return ErrMissingVariableName
	}
	first, ok := node.Args[0].(Constant)
	if !ok {
		return ErrVariableNameNotConstant
	}
	name, ok := first.Value.(value.StrValue)
	if !ok {
		return ErrVariableNameNotString
	}
	names[string(name)] = struct{}{}
	return nil
}
