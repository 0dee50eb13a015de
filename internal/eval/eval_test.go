package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/growthbook/jsonlogic-go/internal/eval"
	"github.com/growthbook/jsonlogic-go/internal/expr"
	"github.com/growthbook/jsonlogic-go/internal/value"
)

func run(t *testing.T, rule any, data any) any {
	t.Helper()
	e, err := expr.Parse(value.New(rule))
	require.NoError(t, err)
	ctx := eval.NewContext(value.New(data))
	return value.ToAny(eval.Evaluate(e, ctx))
}

func TestArithmeticOperators(t *testing.T) {
	cases := []struct {
		name string
		rule any
		want any
	}{
		{"add coerces strings", map[string]any{"+": []any{"1", "2"}}, float64(3)},
		{"add with uncoercible value is null", map[string]any{"+": []any{"1", "abc"}}, nil},
		{"sub single arg negates", map[string]any{"-": []any{5}}, float64(-5)},
		{"mul single arg passes through unchanged", map[string]any{"*": []any{"7"}}, "7"},
		{"mul empty is null", map[string]any{"*": []any{}}, nil},
		{"div by zero is null", map[string]any{"/": []any{1, 0}}, nil},
		{"mod by zero is null", map[string]any{"%": []any{1, 0}}, nil},
		{"min of mixed numbers", map[string]any{"min": []any{3, 1.5, 2}}, 1.5},
		{"max of mixed numbers", map[string]any{"max": []any{3, 1.5, 2}}, float64(3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, run(t, tc.rule, nil))
		})
	}
}

func TestStringAndArrayOperators(t *testing.T) {
	cases := []struct {
		name string
		rule any
		want any
	}{
		{"cat coerces numbers", map[string]any{"cat": []any{"a", 1, "b"}}, "a1b"},
		{"substr default length runs to end", map[string]any{"substr": []any{"jsonlogic", 4}}, "logic"},
		{"substr negative start", map[string]any{"substr": []any{"jsonlogic", -4}}, "ogic"},
		{"in false for non-collection rhs", map[string]any{"in": []any{"a", 5}}, false},
		{"merge with scalar appends it", map[string]any{"merge": []any{[]any{1}, 2}}, []any{float64(1), float64(2)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, run(t, tc.rule, nil))
		})
	}
}

func TestHigherOrderArrayOperators(t *testing.T) {
	cases := []struct {
		name string
		rule any
		data any
		want any
	}{
		{
			"map over a non-array source is empty",
			map[string]any{"map": []any{5, map[string]any{"var": ""}}},
			nil,
			[]any{},
		},
		{
			"filter with no body excludes everything",
			map[string]any{"filter": []any{[]any{1, 2, 3}}},
			nil,
			[]any{},
		},
		{
			"map with no body defaults every element to null",
			map[string]any{"map": []any{[]any{1, 2, 3, 4, 5}}},
			nil,
			[]any{nil, nil, nil, nil, nil},
		},
		{
			"reduce over a non-array returns the initial value",
			map[string]any{"reduce": []any{5, map[string]any{"+": []any{1, 1}}, 10}},
			nil,
			float64(10),
		},
		{
			"none is true for an empty array",
			map[string]any{"none": []any{[]any{}, true}},
			nil,
			true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, run(t, tc.rule, tc.data))
		})
	}
}

func TestDataAccessOperators(t *testing.T) {
	cases := []struct {
		name string
		rule any
		data any
		want any
	}{
		{
			"var dotted path descent",
			map[string]any{"var": "a.b"},
			map[string]any{"a": map[string]any{"b": 7}},
			float64(7),
		},
		{
			"var array index path",
			map[string]any{"var": "a.1"},
			map[string]any{"a": []any{"x", "y"}},
			"y",
		},
		{
			"missing with empty-segment path always misses",
			map[string]any{"missing": []any{"a..b"}},
			map[string]any{"a": map[string]any{"": map[string]any{"b": 1}}},
			[]any{"a..b"},
		},
		{
			"missing piping from an array literal",
			map[string]any{"missing": []any{[]any{"a", "b"}}},
			map[string]any{"a": 1},
			[]any{"b"},
		},
		{
			"missing array-valued first argument ignores trailing arguments",
			map[string]any{"missing": []any{[]any{"a", "b"}, "c"}},
			map[string]any{"a": 1},
			[]any{"b"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, run(t, tc.rule, tc.data))
		})
	}
}

func TestLogOperatorIsIdentityOnResult(t *testing.T) {
	got := run(t, map[string]any{"log": []any{map[string]any{"+": []any{1, 2}}}}, nil)
	require.Equal(t, float64(3), got)
}

func TestConstantCloningDoesNotAliasExpressionTree(t *testing.T) {
	e, err := expr.Parse(value.New([]any{1, 2, 3}))
	require.NoError(t, err)
	ctx := eval.NewContext(value.New(nil))

	first := eval.Evaluate(e, ctx)
	arr, ok := first.(value.ArrValue)
	require.True(t, ok)
	arr[0] = value.NumFromInt(999)

	second := eval.Evaluate(e, ctx)
	require.Equal(t, []any{float64(1), float64(2), float64(3)}, value.ToAny(second))
}

// TestConstantNumberSurvivesCloning guards against a NumValue's
// unexported f/i/isInt fields being zeroed by the generic
// reflection-based deep copy Evaluate(Constant) applies on emission.
func TestConstantNumberSurvivesCloning(t *testing.T) {
	require.Equal(t, float64(7), run(t, map[string]any{"+": []any{3, 4}}, nil))
	require.Equal(t, true, run(t, map[string]any{"==": []any{[]any{1, 2}, "1,2"}}, nil))
}
