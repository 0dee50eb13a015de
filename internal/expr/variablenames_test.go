package expr

import (
	"errors"
	"testing"

	"github.com/growthbook/jsonlogic-go/internal/value"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, v value.Value) Expression {
	t.Helper()
	e, err := Parse(v)
	require.NoError(t, err)
	return e
}

func TestVariableNames(t *testing.T) {
	rule := value.ObjValue{
		"and": value.Arr(
			value.ObjValue{">": value.Arr(value.ObjValue{"var": value.Str("age")}, 18)},
			value.ObjValue{"==": value.Arr(value.ObjValue{"var": value.Str("country")}, "US")},
		),
	}
	e := mustParse(t, rule)
	names, err := VariableNames(e)
	require.NoError(t, err)
	require.Equal(t, map[string]struct{}{"age": {}, "country": {}}, names)
}

func TestVariableNamesDoesNotRecurseIntoVarDefault(t *testing.T) {
	rule := value.ObjValue{"var": value.Arr("a", value.ObjValue{"var": value.Str("b")})}
	e := mustParse(t, rule)
	names, err := VariableNames(e)
	require.NoError(t, err)
	require.Equal(t, map[string]struct{}{"a": {}}, names)
}

func TestVariableNamesMissingArgument(t *testing.T) {
	rule := value.ObjValue{"var": value.Null()}
	e := mustParse(t, rule)
	_, err := VariableNames(e)
	require.True(t, errors.Is(err, ErrMissingVariableName))
}

func TestVariableNamesNonConstant(t *testing.T) {
	rule := value.ObjValue{"var": value.Arr(value.ObjValue{"cat": value.Arr("a")})}
	e := mustParse(t, rule)
	_, err := VariableNames(e)
	require.True(t, errors.Is(err, ErrVariableNameNotConstant))
}

func TestVariableNamesNonString(t *testing.T) {
	rule := value.ObjValue{"var": value.Arr(5)}
	e := mustParse(t, rule)
	_, err := VariableNames(e)
	require.True(t, errors.Is(err, ErrVariableNameNotString))
}
