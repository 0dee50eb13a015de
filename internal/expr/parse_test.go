package expr

import (
	"errors"
	"testing"

	"github.com/growthbook/jsonlogic-go/internal/value"
	"github.com/stretchr/testify/require"
)

func TestParseConstant(t *testing.T) {
	tests := []value.Value{
		value.Null(), value.True(), value.Num(5), value.Str("hi"),
		value.Arr(1, 2, 3),
	}
	for _, v := range tests {
		e, err := Parse(v)
		require.NoError(t, err)
		require.Equal(t, Constant{Value: v}, e)
	}
}

func TestParseMalformedOperatorObjectIsConstant(t *testing.T) {
	empty := value.ObjValue{}
	e, err := Parse(empty)
	require.NoError(t, err)
	require.Equal(t, Constant{Value: empty}, e)

	multi := value.ObjValue{"==": value.Arr(1, 1), "!=": value.Arr(2, 2)}
	e, err = Parse(multi)
	require.NoError(t, err)
	require.Equal(t, Constant{Value: multi}, e)
}

func TestParseUnrecognizedOperator(t *testing.T) {
	rule := value.ObjValue{"nope": value.Arr(1)}
	_, err := Parse(rule)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnrecognizedOperator))
	require.Contains(t, err.Error(), "nope")
}

func TestParseArgsNormalization(t *testing.T) {
	t.Run("array args", func(t *testing.T) {
		rule := value.ObjValue{"+": value.Arr(1, 2)}
		e, err := Parse(rule)
		require.NoError(t, err)
		require.Equal(t, Computed{Op: Add, Args: []Expression{
			Constant{value.Num(1)}, Constant{value.Num(2)},
		}}, e)
	})

	t.Run("null args means empty", func(t *testing.T) {
		rule := value.ObjValue{"and": value.Null()}
		e, err := Parse(rule)
		require.NoError(t, err)
		require.Equal(t, Computed{Op: And, Args: []Expression{}}, e)
	})

	t.Run("bare value is shorthand for one arg", func(t *testing.T) {
		rule := value.ObjValue{"var": value.Str("a")}
		e, err := Parse(rule)
		require.NoError(t, err)
		require.Equal(t, Computed{Op: Var, Args: []Expression{
			Constant{value.Str("a")},
		}}, e)
	})
}

func TestParseNested(t *testing.T) {
	rule := value.ObjValue{
		"if": value.Arr(
			value.ObjValue{"<": value.Arr(value.ObjValue{"var": value.Str("temp")}, 0)},
			"freezing",
			"liquid",
		),
	}
	e, err := Parse(rule)
	require.NoError(t, err)
	c, ok := e.(Computed)
	require.True(t, ok)
	require.Equal(t, If, c.Op)
	require.Len(t, c.Args, 3)
	cond, ok := c.Args[0].(Computed)
	require.True(t, ok)
	require.Equal(t, Lt, cond.Op)
}

func TestParseMaxDepthExceeded(t *testing.T) {
	var rule value.Value = value.Num(1)
	for i := 0; i < MaxParseDepth+2; i++ {
		rule = value.ObjValue{"!": rule}
	}
	_, err := Parse(rule)
	require.True(t, errors.Is(err, ErrMaxDepthExceeded))
}
