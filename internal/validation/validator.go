package validation

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/surveyspec/surveyspec/internal/survey"
)

// Options control which diagnostics a Validator reports.
type Options struct {
	// StopOnFirstError skips the remaining rules once a rule reports an error.
	StopOnFirstError bool `json:"stopOnFirstError"`
	// EnabledSeverities lists the severities that are reported. Nil enables all.
	EnabledSeverities []Severity `json:"enabledSeverities,omitempty"`
}

// Enabled reports whether diagnostics of severity sev are kept.
func (o Options) Enabled(sev Severity) bool {
	if o.EnabledSeverities == nil {
		return true
	}
	return slices.Contains(o.EnabledSeverities, sev)
}

// OptionsUpdate is a partial Options. Nil fields leave the current value.
type OptionsUpdate struct {
	StopOnFirstError  *bool
	EnabledSeverities []Severity
}

// Option configures a Validator at construction.
type Option func(*Validator)

// WithRules replaces the default rule set.
func WithRules(rules ...Rule) Option {
	return func(v *Validator) {
		v.rules = slices.Clone(rules)
	}
}

// WithStopOnFirstError sets Options.StopOnFirstError.
func WithStopOnFirstError(stop bool) Option {
	return func(v *Validator) {
		v.opts.StopOnFirstError = stop
	}
}

// WithSeverities restricts reporting to the given severities.
func WithSeverities(sevs ...Severity) Option {
	return func(v *Validator) {
		v.opts.EnabledSeverities = slices.Clone(sevs)
		if v.opts.EnabledSeverities == nil {
			v.opts.EnabledSeverities = []Severity{}
		}
	}
}

// WithReferenceChecks appends the condition rules to the rule set.
func WithReferenceChecks() Option {
	return func(v *Validator) {
		v.rules = append(v.rules, ConditionRules()...)
	}
}

// Validator runs an ordered list of rules over a survey. It keeps no state
// between calls besides its rules and options, and is safe for concurrent use.
type Validator struct {
	mu    sync.RWMutex
	rules []Rule
	opts  Options
}

// New creates a Validator with the default rules and all severities enabled.
func New(opts ...Option) *Validator {
	v := &Validator{rules: DefaultRules()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewDefault returns a Validator with all default rules and severities.
func NewDefault() *Validator {
	return New()
}

// NewStrict returns a Validator that only reports errors.
func NewStrict() *Validator {
	return New(WithSeverities(SeverityError))
}

// NewLenient returns a Validator that reports errors and warnings but no info.
func NewLenient() *Validator {
	return New(WithSeverities(SeverityError, SeverityWarning))
}

// Preset returns the named preset validator: default, strict or lenient.
func Preset(name string, opts ...Option) (*Validator, error) {
	var base []Option
	switch name {
	case "", "default":
	case "strict":
		base = append(base, WithSeverities(SeverityError))
	case "lenient":
		base = append(base, WithSeverities(SeverityError, SeverityWarning))
	default:
		return nil, fmt.Errorf("unknown validator preset %q (valid: default, strict, lenient)", name)
	}
	return New(append(base, opts...)...), nil
}

// AddRule appends r to the rule list.
func (v *Validator) AddRule(r Rule) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rules = append(v.rules, r)
}

// RemoveRule removes every rule called name. It reports whether one was removed.
func (v *Validator) RemoveRule(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := len(v.rules)
	v.rules = slices.DeleteFunc(v.rules, func(r Rule) bool { return r.Name() == name })
	return len(v.rules) != n
}

// Rules returns a copy of the rule list in execution order.
func (v *Validator) Rules() []Rule {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.rules)
}

// UpdateOptions merges u into the current options.
func (v *Validator) UpdateOptions(u OptionsUpdate) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if u.StopOnFirstError != nil {
		v.opts.StopOnFirstError = *u.StopOnFirstError
	}
	if u.EnabledSeverities != nil {
		v.opts.EnabledSeverities = slices.Clone(u.EnabledSeverities)
	}
}

// Options returns a copy of the current options.
func (v *Validator) Options() Options {
	v.mu.RLock()
	defer v.mu.RUnlock()
	o := v.opts
	o.EnabledSeverities = slices.Clone(o.EnabledSeverities)
	return o
}

// Result is the outcome of one validation pass.
type Result struct {
	IsValid      bool         `json:"isValid"`
	HasWarnings  bool         `json:"hasWarnings"`
	Diagnostics  []Diagnostic `json:"errors"`
	ErrorCount   int          `json:"errorCount"`
	WarningCount int          `json:"warningCount"`
	InfoCount    int          `json:"infoCount"`
	Summary      string       `json:"summary"`
	Timestamp    time.Time    `json:"timestamp"`
}

// Errors returns the error diagnostics of r.
func (r *Result) Errors() []Diagnostic { return r.bySeverity(SeverityError) }

// Warnings returns the warning diagnostics of r.
func (r *Result) Warnings() []Diagnostic { return r.bySeverity(SeverityWarning) }

// Infos returns the info diagnostics of r.
func (r *Result) Infos() []Diagnostic { return r.bySeverity(SeverityInfo) }

func (r *Result) bySeverity(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// Validate runs every rule in registration order and aggregates the reported
// diagnostics. Disabled severities are dropped before counting, and only a
// reported error stops the pass when StopOnFirstError is set.
func (v *Validator) Validate(s survey.Survey) *Result {
	v.mu.RLock()
	rules := slices.Clone(v.rules)
	opts := v.opts
	v.mu.RUnlock()

	ctx := NewContext(s, opts)
	res := &Result{Diagnostics: []Diagnostic{}, Timestamp: ctx.Timestamp}

	for _, rule := range rules {
		diags := runRule(rule, ctx)

		failed := false
		for _, d := range diags {
			if !opts.Enabled(d.Severity) {
				continue
			}
			if d.Severity == SeverityError {
				failed = true
			}
			res.add(d)
		}

		if failed && opts.StopOnFirstError {
			break
		}
	}

	res.IsValid = res.ErrorCount == 0
	res.HasWarnings = res.WarningCount > 0
	res.Summary = summarize(res)
	return res
}

// ValidateField runs a full validation and keeps the diagnostics whose field
// equals path.
func (v *Validator) ValidateField(s survey.Survey, path string) []Diagnostic {
	var out []Diagnostic
	for _, d := range v.Validate(s).Diagnostics {
		if d.Field == path {
			out = append(out, d)
		}
	}
	return out
}

// IsValid reports whether s has no error diagnostics.
func (v *Validator) IsValid(s survey.Survey) bool {
	return v.Validate(s).IsValid
}

// Errors returns the error diagnostics for s.
func (v *Validator) Errors(s survey.Survey) []Diagnostic {
	return v.Validate(s).Errors()
}

// Warnings returns the warning diagnostics for s.
func (v *Validator) Warnings(s survey.Survey) []Diagnostic {
	return v.Validate(s).Warnings()
}

func (r *Result) add(d Diagnostic) {
	switch d.Severity {
	case SeverityError:
		r.ErrorCount++
	case SeverityWarning:
		r.WarningCount++
	case SeverityInfo:
		r.InfoCount++
	}
	r.Diagnostics = append(r.Diagnostics, d)
}

// runRule calls rule.Check, stamping the rule name on its diagnostics and
// turning a panic into a RULE_FAILURE error.
func runRule(rule Rule, ctx *Context) (diags []Diagnostic) {
	name := rule.Name()
	defer func() {
		if rec := recover(); rec != nil {
			diags = []Diagnostic{{
				Field:    "",
				Message:  fmt.Sprintf("Rule %q failed: %v", name, rec),
				Severity: SeverityError,
				Code:     CodeRuleFailure,
				Rule:     name,
			}}
		}
	}()

	diags = rule.Check(ctx)
	for i := range diags {
		if diags[i].Rule == "" {
			diags[i].Rule = name
		}
	}
	return diags
}

func summarize(r *Result) string {
	if r.ErrorCount == 0 && r.WarningCount == 0 && r.InfoCount == 0 {
		return "Survey is valid"
	}
	status := "Survey is valid"
	if !r.IsValid {
		status = "Survey is invalid"
	}
	return fmt.Sprintf("%s: %s, %s, %s", status,
		plural(r.ErrorCount, "error"),
		plural(r.WarningCount, "warning"),
		plural(r.InfoCount, "info"))
}

func plural(n int, noun string) string {
	if n == 1 || noun == "info" {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
