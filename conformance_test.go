package jsonlogic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/growthbook/jsonlogic-go/internal/value"
	"github.com/growthbook/jsonlogic-go/jsonsrc"
)

// conformanceCase is one rule/data/expected triple, JSON text all the
// way through the jsonsrc bridge — this suite doubles as jsonsrc's own
// exercise, not just the operator dispatch table's.
type conformanceCase struct {
	name string
	rule string
	data string
	want string
}

func runConformance(t *testing.T, cases []conformanceCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ApplyJSON([]byte(tc.rule), []byte(tc.data))
			require.NoError(t, err)

			wantVal, err := jsonsrc.ParseString(tc.want)
			require.NoError(t, err)

			require.Equal(t, value.ToAny(wantVal), got)
		})
	}
}

// TestConformanceScenarios exercises the concrete worked scenarios
// from spec.md §8.
func TestConformanceScenarios(t *testing.T) {
	runConformance(t, []conformanceCase{
		{
			name: "temperature if-elseif-else chain",
			rule: `{"if":[{"<":[{"var":"temp"},0]},"freezing",{"<":[{"var":"temp"},100]},"liquid","gas"]}`,
			data: `{"temp":50}`,
			want: `"liquid"`,
		},
		{
			name: "array vs comma-joined string abstract equality",
			rule: `{"==":[[1,2],"1,2"]}`,
			data: `null`,
			want: `true`,
		},
		{
			name: "missing with dotted and indexed paths",
			rule: `{"missing":["a","b","6.foo.1","6.foo.3"]}`,
			data: `{"a":"apple","c":"carrot","6":{"foo":"bar"}}`,
			want: `["b","6.foo.3"]`,
		},
		{
			name: "map doubling an array via empty-path var scope",
			rule: `{"map":[{"var":"integers"},{"*":[{"var":""},2]}]}`,
			data: `{"integers":[1,2,3,4,5]}`,
			want: `[2,4,6,8,10]`,
		},
		{
			name: "reduce summing via current/accumulator scope",
			rule: `{"reduce":[{"var":"integers"},{"+":[{"var":"current"},{"var":"accumulator"}]},0]}`,
			data: `{"integers":[1,2,3,4,5]}`,
			want: `15`,
		},
		{
			name: "all iterates a string character by character",
			rule: `{"all":["aaa",{"===":[{"var":""},"a"]}]}`,
			data: `null`,
			want: `true`,
		},
		{
			name: "some treats a string as non-array",
			rule: `{"some":["aaa",{"===":[{"var":""},"a"]}]}`,
			data: `null`,
			want: `false`,
		},
		{
			name: "substr with a negative length",
			rule: `{"substr":["jsonlogic",4,-2]}`,
			data: `null`,
			want: `"log"`,
		},
	})
}

// TestConformanceOperators gives every other operator in the closed
// set at least one exercised case beyond spec.md §8's worked examples.
func TestConformanceOperators(t *testing.T) {
	runConformance(t, []conformanceCase{
		{"eq loose", `{"==":[1,"1"]}`, `null`, `true`},
		{"ne loose", `{"!=":[1,2]}`, `null`, `true`},
		{"strict eq", `{"===":[1,"1"]}`, `null`, `false`},
		{"strict ne", `{"!==":[1,"1"]}`, `null`, `true`},
		{"not", `{"!":[0]}`, `null`, `true`},
		{"double bang", `{"!!":[1]}`, `null`, `true`},
		{"and short-circuits on first falsy", `{"and":[1,0,{"var":"never"}]}`, `{}`, `0`},
		{"and returns last when all truthy", `{"and":[1,2,3]}`, `null`, `3`},
		{"or returns first truthy", `{"or":[0,false,5,99]}`, `null`, `5`},
		{"if two-arg with no else", `{"if":[false,"yes"]}`, `null`, `null`},
		{"between form of <", `{"<":[0,5,10]}`, `null`, `true`},
		{"between form fails", `{"<":[0,15,10]}`, `null`, `false`},
		{"lte", `{"<=":[5,5]}`, `null`, `true`},
		{"gt", `{">":[5,3]}`, `null`, `true`},
		{"gte", `{">=":[3,3]}`, `null`, `true`},
		{"add sums", `{"+":[1,2,3]}`, `null`, `6`},
		{"add empty is zero", `{"+":[]}`, `null`, `0`},
		{"sub unary negation", `{"-":[5]}`, `null`, `-5`},
		{"sub two args", `{"-":[10,4]}`, `null`, `6`},
		{"mul product", `{"*":[2,3,4]}`, `null`, `24`},
		{"div", `{"/":[10,4]}`, `null`, `2.5`},
		{"div by zero is null", `{"/":[1,0]}`, `null`, `null`},
		{"mod", `{"%":[7,3]}`, `null`, `1`},
		{"min", `{"min":[3,1,2]}`, `null`, `1`},
		{"max", `{"max":[3,1,2]}`, `null`, `3`},
		{"cat", `{"cat":["foo","bar",1]}`, `null`, `"foobar1"`},
		{"in substring", `{"in":["bar","foobar"]}`, `null`, `true`},
		{"in membership", `{"in":[1,[1,2,3]]}`, `null`, `true`},
		{"in object is false", `{"in":["a",{}]}`, `null`, `false`},
		{"merge flattens one level", `{"merge":[[1,2],3,[4]]}`, `null`, `[1,2,3,4]`},
		{"filter keeps truthy", `{"filter":[{"var":"a"},{">":[{"var":""},2]}]}`, `{"a":[1,2,3,4]}`, `[3,4]`},
		{"none on empty is true", `{"none":[[],{"var":""}]}`, `null`, `true`},
		{"all on empty is false", `{"all":[[],{"var":""}]}`, `null`, `false`},
		{"some on empty is false", `{"some":[[],{"var":""}]}`, `null`, `false`},
		{"var default on miss", `{"var":["z",42]}`, `{"a":1}`, `42`},
		{"var whole data on null path", `{"var":null}`, `{"a":1}`, `{"a":1}`},
		{"missing_some satisfied returns empty", `{"missing_some":[1,["a","z"]]}`, `{"a":1}`, `[]`},
		{"missing_some unsatisfied lists gaps", `{"missing_some":[2,["a","y","z"]]}`, `{"a":1}`, `["y","z"]`},
		{"log returns its argument", `{"log":"hi"}`, `null`, `"hi"`},
	})
}

// TestConformanceConstantPassthrough exercises spec.md §8's invariant
// that a malformed- or non-operator-object input reduces to itself.
func TestConformanceConstantPassthrough(t *testing.T) {
	runConformance(t, []conformanceCase{
		{"bare number", `5`, `null`, `5`},
		{"bare string", `"hi"`, `null`, `"hi"`},
		{"bare array", `[1,2,3]`, `null`, `[1,2,3]`},
		{"multi-key object is a constant", `{"==":[1,1],"!=":[2,2]}`, `null`, `{"==":[1,1],"!=":[2,2]}`},
		{"empty object is a constant", `{}`, `null`, `{}`},
	})
}
