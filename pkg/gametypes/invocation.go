package gametypes

import "strconv"

// Invocation is the structured result of classifying the parameters of a
// sub-command style call: <action> [target words...] [value].
// Numeric and Boolean are never both set.
type Invocation struct {
	Action     string
	TargetName string
	Numeric    *float64
	Boolean    *bool
	// Remaining holds the raw tokens after the action token. Never nil.
	Remaining []string
}

// HasAction reports whether an action token was present.
func (i Invocation) HasAction() bool { return i.Action != "" }

// HasTarget reports whether a target name was classified.
func (i Invocation) HasTarget() bool { return i.TargetName != "" }

// HasNumeric reports whether the last token was consumed as a number.
func (i Invocation) HasNumeric() bool { return i.Numeric != nil }

// HasBoolean reports whether the last token was consumed as a boolean.
func (i Invocation) HasBoolean() bool { return i.Boolean != nil }

// NumericOr returns the numeric value or def when unset.
func (i Invocation) NumericOr(def float64) float64 {
	if i.Numeric == nil {
		return def
	}
	return *i.Numeric
}

// BooleanOr returns the boolean value or def when unset.
func (i Invocation) BooleanOr(def bool) bool {
	if i.Boolean == nil {
		return def
	}
	return *i.Boolean
}

// String renders the invocation for debug logging.
func (i Invocation) String() string {
	s := "action=" + strconv.Quote(i.Action) + " target=" + strconv.Quote(i.TargetName)
	if i.Numeric != nil {
		s += " numeric=" + strconv.FormatFloat(*i.Numeric, 'g', -1, 64)
	}
	if i.Boolean != nil {
		s += " boolean=" + strconv.FormatBool(*i.Boolean)
	}
	return s
}
