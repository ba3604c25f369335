package validation

import (
	"time"

	"github.com/surveyspec/surveyspec/internal/survey"
)

// Rule is one independent check over a whole survey.
//
// Check reports expected problems as diagnostics. A panic inside Check is a
// defect of the rule; the Validator recovers it into a RULE_FAILURE error.
type Rule interface {
	Name() string
	Check(ctx *Context) []Diagnostic
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc struct {
	RuleName string
	Fn       func(ctx *Context) []Diagnostic
}

// NewRule wraps fn as a Rule called name.
func NewRule(name string, fn func(ctx *Context) []Diagnostic) Rule {
	return RuleFunc{RuleName: name, Fn: fn}
}

// Name returns the rule name.
func (r RuleFunc) Name() string { return r.RuleName }

// Check runs the wrapped function.
func (r RuleFunc) Check(ctx *Context) []Diagnostic { return r.Fn(ctx) }

// CodeKind says what kind of node a code belongs to.
type CodeKind string

const (
	KindSurvey CodeKind = "survey"
	KindItem   CodeKind = "item"
	KindRow    CodeKind = "row"
	KindColumn CodeKind = "column"
)

// Occurrence is one place in the document where a code is declared.
type Occurrence struct {
	Code  string
	Field string // path of the code field itself
	Kind  CodeKind
}

// Context is the input shared by all rules of one validation pass.
type Context struct {
	Survey    survey.Survey
	Timestamp time.Time
	Options   Options

	occurrences []Occurrence
	items       map[string]survey.Item
}

// NewContext builds a Context for s.
func NewContext(s survey.Survey, opts Options) *Context {
	return &Context{Survey: s, Timestamp: time.Now(), Options: opts}
}

// Occurrences returns every code of the document with its field path, in
// depth-first document order. The list is built once per pass.
func (c *Context) Occurrences() []Occurrence {
	if c.occurrences == nil {
		c.index()
	}
	return c.occurrences
}

// Item returns the first item declaring code.
func (c *Context) Item(code string) (survey.Item, bool) {
	if c.items == nil {
		c.index()
	}
	it, ok := c.items[code]
	return it, ok
}

func (c *Context) index() {
	c.occurrences = []Occurrence{{Code: c.Survey.Code, Field: "code", Kind: KindSurvey}}
	c.items = make(map[string]survey.Item)

	survey.Walk(c.Survey, func(it survey.Item, path string) bool {
		c.occurrences = append(c.occurrences, Occurrence{Code: it.Code, Field: survey.FieldPath(path, "code"), Kind: KindItem})
		if _, seen := c.items[it.Code]; !seen {
			c.items[it.Code] = it
		}
		for i, r := range it.Rows {
			c.occurrences = append(c.occurrences, Occurrence{Code: r.Code, Field: survey.FieldPath(survey.RowPath(path, i), "code"), Kind: KindRow})
		}
		for i, col := range it.Columns {
			c.occurrences = append(c.occurrences, Occurrence{Code: col.Code, Field: survey.FieldPath(survey.ColumnPath(path, i), "code"), Kind: KindColumn})
		}
		return true
	})
}
