// Package typed binds a declarative table of game methods to the typed
// console. Each parameter is parsed by a TypeParser looked up by its
// ParamType, and the same parser supplies autocomplete suggestions.
package typed

import (
	"strings"
)

// ParamType identifies the parser used for a parameter.
type ParamType string

// Native parameter types are parsed by the adapter itself.
const (
	TypeString ParamType = "string"
	TypeInt    ParamType = "int"
	TypeFloat  ParamType = "float"
	TypeBool   ParamType = "bool"
)

// Types served by the default plugin parsers.
const (
	TypeActor  ParamType = "actor"
	TypeQuoted ParamType = "quoted"
)

// TypeParser converts one argument token into a typed value and suggests
// completions for a partially typed token.
type TypeParser interface {
	Parse(text string) (any, error)
	Suggest(partial string) []string
}

// Param is one positional method parameter.
type Param struct {
	Name string
	Type ParamType
}

// Method is one entry of the declarative method table. Invoke receives the
// parsed arguments in parameter order.
type Method struct {
	Name   string
	Help   string
	Params []Param
	Invoke func(args []any) error
}

// Binding is a method bound to its parsers. It is immutable once built.
type Binding struct {
	Name   string
	Help   string
	Params []Param

	parsers []TypeParser
	invoke  func(args []any) error
}

// Arity returns the number of positional parameters.
func (b Binding) Arity() int {
	return len(b.Params)
}

// Usage renders "name <param:type> ...".
func (b Binding) Usage() string {
	var sb strings.Builder
	sb.WriteString(b.Name)
	for _, p := range b.Params {
		sb.WriteString(" <")
		sb.WriteString(p.Name)
		sb.WriteString(":")
		sb.WriteString(string(p.Type))
		sb.WriteString(">")
	}
	return sb.String()
}

// absorbsRest reports whether a trailing quoted parameter takes every
// remaining token, re-joined with single spaces.
func (b Binding) absorbsRest() bool {
	return len(b.Params) > 0 && b.Params[len(b.Params)-1].Type == TypeQuoted
}
