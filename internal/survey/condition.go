package survey

// Action is what a condition controls on its item.
type Action string

const (
	ActionShow    Action = "show"
	ActionRequire Action = "require"
	ActionSet     Action = "set"
	ActionIterate Action = "iterate"
)

// Operator compares an answer with a rule value.
type Operator string

const (
	OpEqual       Operator = "="
	OpNotEqual    Operator = "!="
	OpGreater     Operator = ">"
	OpLess        Operator = "<"
	OpGreaterEq   Operator = ">="
	OpLessEq      Operator = "<="
	OpContains    Operator = "contains"
	OpNotContains Operator = "not_contains"
)

// Gate combines a rule with the rules before it.
type Gate string

const (
	GateAnd Gate = "and"
	GateOr  Gate = "or"
)

// Condition controls visibility, requirement, value or iteration of an item.
type Condition struct {
	Action Action          `json:"action"`
	Rules  []ConditionRule `json:"rules"`
}

// ConditionRule tests the answer of another item, referenced by code.
// The reference is weak: nothing keeps Code pointing at an existing item.
type ConditionRule struct {
	Negate     bool     `json:"negate,omitempty"`
	Code       string   `json:"code"`
	RowCode    string   `json:"rowCode,omitempty"`
	ColumnCode string   `json:"columnCode,omitempty"`
	Operator   Operator `json:"operator"`
	Value      any      `json:"value"`
	Gate       Gate     `json:"gate,omitempty"`
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	switch a {
	case ActionShow, ActionRequire, ActionSet, ActionIterate:
		return true
	}
	return false
}

// Valid reports whether o is a known operator.
func (o Operator) Valid() bool {
	switch o {
	case OpEqual, OpNotEqual, OpGreater, OpLess, OpGreaterEq, OpLessEq, OpContains, OpNotContains:
		return true
	}
	return false
}

// Valid reports whether g is a known gate. The empty gate is valid and means "and".
func (g Gate) Valid() bool {
	switch g {
	case "", GateAnd, GateOr:
		return true
	}
	return false
}
