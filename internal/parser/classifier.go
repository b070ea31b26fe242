// Package parser turns the raw parameter tokens of a console command into a
// structured gametypes.Invocation.
//
// Classification is a tail heuristic, not a grammar: a trailing number or
// boolean word is taken as the value, everything between the action token and
// that value is the target name.
package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"gameshell/pkg/gametypes"
)

// Classify classifies tokens whose first element is the action token.
// It is ClassifyPlayerAndValue(tokens, 0).
func Classify(tokens []string) gametypes.Invocation {
	return ClassifyPlayerAndValue(tokens, 0)
}

// ClassifyPlayerAndValue classifies tokens[start:], treating tokens[start] as
// the action token. Tokens before start are ignored. An out-of-range start
// yields an empty invocation.
func ClassifyPlayerAndValue(tokens []string, start int) gametypes.Invocation {
	inv := gametypes.Invocation{Remaining: []string{}}
	if start < 0 || start >= len(tokens) {
		return inv
	}

	window := tokens[start:]
	inv.Action = strings.ToLower(window[0])
	inv.Remaining = append(inv.Remaining, window[1:]...)

	nameTokens := window[1:]
	if len(window) >= 2 {
		last := window[len(window)-1]
		if n, ok := ParseNumber(last); ok {
			inv.Numeric = &n
			nameTokens = window[1 : len(window)-1]
		} else if b, ok := ParseBool(last); ok {
			inv.Boolean = &b
			nameTokens = window[1 : len(window)-1]
		}
	}

	inv.TargetName = StripQuotes(strings.Join(nameTokens, " "))
	return inv
}

// decimalPattern is plain decimal notation with an optional exponent. Go
// literal forms such as hex floats and digit separators are not values.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber parses a finite decimal number. NaN, infinities, hex floats and
// underscore separators are rejected so that names such as "Nan", "Inf" or
// "1_000" stay part of the target.
func ParseNumber(s string) (float64, bool) {
	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ParseBool matches the fixed boolean vocabulary, case-insensitively.
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "on", "enable", "true", "1":
		return true, true
	case "off", "disable", "false", "0":
		return false, true
	default:
		return false, false
	}
}

// StripQuotes removes one matching pair of surrounding double or single
// quotes. Unbalanced or mismatched quotes are left untouched.
func StripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
