package condition

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
)

func options() []expr.Option {
	return []expr.Option{
		expr.Env(map[string]any{"answers": map[string]any{}}),
		expr.AsBool(),
		expr.Function("eq", func(params ...any) (any, error) {
			return equal(params[0], params[1]), nil
		}, new(func(any, any) bool)),
		expr.Function("has", func(params ...any) (any, error) {
			return contains(params[0], params[1]), nil
		}, new(func(any, any) bool)),
		expr.Function("num", func(params ...any) (any, error) {
			if n, ok := toNumber(params[0]); ok {
				return n, nil
			}
			return nil, nil
		}, new(func(any) any)),
	}
}

// equal compares loosely: numbers numerically, everything else by text.
func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if x, ok := toNumber(a); ok {
		if y, ok := toNumber(b); ok {
			return x == y
		}
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// contains matches a substring of a text answer or an element of a list answer.
func contains(haystack, needle any) bool {
	switch h := haystack.(type) {
	case nil:
		return false
	case string:
		return strings.Contains(h, fmt.Sprint(needle))
	case []any:
		for _, v := range h {
			if equal(v, needle) {
				return true
			}
		}
		return false
	case []string:
		for _, v := range h {
			if equal(v, needle) {
				return true
			}
		}
		return false
	default:
		return equal(h, needle)
	}
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
