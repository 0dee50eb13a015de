/*
Package jsonlogic is a Go implementation of a JsonLogic rule-evaluation
engine: given a rule (a JSON document describing an expression) and a
data document, it reduces the rule to a JSON result.

	result, err := jsonlogic.Apply(
		map[string]any{"if": []any{
			map[string]any{"<": []any{map[string]any{"var": "temp"}, 0}}, "freezing",
			map[string]any{"<": []any{map[string]any{"var": "temp"}, 100}}, "liquid",
			"gas",
		}},
		map[string]any{"temp": 50},
	)
	// result == "liquid"

The operator set is closed and fixed: equality (==, !=, ===, !==),
logic (!, !!, and, or, if), relational (<, <=, >, >=), arithmetic
(+, -, *, /, %, min, max), string/array (cat, substr, in, merge),
higher-order array operators (map, filter, reduce, all, some, none),
data access (var, missing, missing_some) and log. No user-defined
operators are loaded at runtime.

*/
package jsonlogic

/*
Error handling:

Apply and VariableNames both fail only at parse/static-analysis time:
Apply when a rule object key doesn't resolve to a recognized operator
or the rule nests deeper than the parser's depth limit, VariableNames
additionally when it can't statically determine a var's
name. Evaluation itself is total — every operator defines a result for
every input shape, using null as its "nothing sensible" default — so
once a rule parses successfully, Apply never fails.

Non-fatal observations during evaluation (the log operator firing, an
array operator falling back to its empty-input default) go through a
separate, optional diagnostic channel: install a Logger with SetLogger
to receive them. A nil logger, the default, discards them silently.
DevLogger prints them to standard output; SlogLogger routes them
through golang.org/x/exp/slog for production deployments that already
centralize logging that way.

*/

/*
JSON data representations:

Apply and VariableNames operate on the same generic shape
encoding/json.Unmarshal produces for arbitrary JSON: map[string]any,
[]any, float64, string, bool, and nil. There is no distinct rule or
data type to construct — a rule is just the JSON document describing
it, decoded however the caller prefers (encoding/json, a config file,
a literal Go value).

	var rule any
	if err := json.Unmarshal(ruleJSON, &rule); err != nil {
		log.Fatal(err)
	}
	var data any
	if err := json.Unmarshal(dataJSON, &data); err != nil {
		log.Fatal(err)
	}
	result, err := jsonlogic.Apply(rule, data)

*/
