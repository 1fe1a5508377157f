// Package filter selects resources of the manager clients with expr
// expressions such as
//
//	monitored && !hasFile && added < daysAgo(90)
//	hasTag("kids") or year < 1980
//	statistics.sizeOnDisk > 50e9
//	istartsWith(title, "the ")
//
// Fields are addressed by their JSON names. Timestamps are time.Time values.
// The case-insensitive string helpers are prefixed with i, since contains,
// startsWith and endsWith are case-sensitive expr operators.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled filter expression. It is safe for concurrent use.
type Filter struct {
	program *vm.Program
	expr    string
	tags    map[string]int
}

// Option configures a Filter
type Option func(*Filter)

// WithTags makes hasTag resolve labels against the given tag id to label
// map. Without it hasTag never matches.
func WithTags(tags map[int]string) Option {
	return func(f *Filter) {
		for id, label := range tags {
			f.tags[strings.ToLower(label)] = id
		}
	}
}

// helpers are the functions available in every expression, next to the expr
// builtins (lower, upper, now, len, ...).
func helpers() map[string]any {
	return map[string]any{
		"daysSince": func(v any) int {
			t, ok := v.(time.Time)
			if !ok {
				return -1
			}
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"yearsAgo": func(years int) time.Time {
			return time.Now().AddDate(-years, 0, 0)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		"icontains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"istartsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"iendsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"hasTag": func(string) bool { return false },
	}
}

// Compile compiles a filter expression
func Compile(expression string, opts ...Option) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{Expression: expression, Err: fmt.Errorf("empty expression")}
	}

	program, err := expr.Compile(expression,
		expr.Env(helpers()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Err: err}
	}

	f := &Filter{
		program: program,
		expr:    expression,
		tags:    make(map[string]int),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expr
}

// Match evaluates the filter against a single item
func (f *Filter) Match(v any) (bool, error) {
	item, err := ToItem(v)
	if err != nil {
		return false, &EvaluationError{Expression: f.expr, Err: err}
	}

	env := helpers()
	for k, val := range item {
		if _, reserved := env[k]; !reserved {
			env[k] = val
		}
	}
	env["hasTag"] = func(label string) bool {
		id, ok := f.tags[strings.ToLower(label)]
		if !ok {
			return false
		}
		tags, _ := item["tags"].([]any)
		for _, t := range tags {
			if n, ok := t.(float64); ok && int(n) == id {
				return true
			}
		}
		return false
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{Expression: f.expr, Item: item.Name(), Err: err}
	}

	matched, _ := result.(bool)
	return matched, nil
}

// Select returns the items matching f. Items the filter cannot be evaluated
// against are skipped and reported through onError when it is not nil.
func Select[T any](f *Filter, items []T, onError func(error)) []T {
	var selected []T
	for _, item := range items {
		ok, err := f.Match(item)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			continue
		}
		if ok {
			selected = append(selected, item)
		}
	}
	return selected
}
