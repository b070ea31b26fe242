package typed

import (
	"fmt"
	"strconv"
	"strings"

	"gameshell/internal/parser"
	"gameshell/internal/roster"
)

// ActorParser resolves an actor name against the live roster, exact match
// first and substring second. Suggestions are the live names.
type ActorParser struct {
	resolver *roster.Resolver
}

// NewActorParser creates an ActorParser reading resolver's roster.
func NewActorParser(resolver *roster.Resolver) *ActorParser {
	return &ActorParser{resolver: resolver}
}

// Parse returns the matching gametypes.Actor.
func (p *ActorParser) Parse(text string) (any, error) {
	return p.resolver.ResolveOne(parser.StripQuotes(text))
}

// Suggest returns live names starting with partial, ignoring case, in
// roster order.
func (p *ActorParser) Suggest(partial string) []string {
	return filterPrefix(p.resolver.Names(), partial)
}

// QuotedStringParser strips one matching pair of outer quotes.
type QuotedStringParser struct{}

// Parse returns the unquoted text.
func (QuotedStringParser) Parse(text string) (any, error) {
	return parser.StripQuotes(text), nil
}

// Suggest has nothing to offer for free text.
func (QuotedStringParser) Suggest(string) []string {
	return []string{}
}

type stringParser struct{}

func (stringParser) Parse(text string) (any, error) { return text, nil }
func (stringParser) Suggest(string) []string        { return []string{} }

type intParser struct{}

func (intParser) Parse(text string) (any, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, fmt.Errorf("invalid integer value '%s'", text)
	}
	return n, nil
}

func (intParser) Suggest(string) []string { return []string{} }

type floatParser struct{}

func (floatParser) Parse(text string) (any, error) {
	n, ok := parser.ParseNumber(text)
	if !ok {
		return nil, fmt.Errorf("invalid float value '%s'", text)
	}
	return n, nil
}

func (floatParser) Suggest(string) []string { return []string{} }

type boolParser struct{}

func (boolParser) Parse(text string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	if b, ok := parser.ParseBool(strings.TrimSpace(text)); ok {
		return b, nil
	}
	return nil, fmt.Errorf("invalid boolean value '%s' (use on/off, true/false, enable/disable, 1/0)", text)
}

func (boolParser) Suggest(partial string) []string {
	return filterPrefix([]string{"on", "off"}, partial)
}

// nativeParsers are owned by the adapter and never enter the shared registry.
var nativeParsers = map[ParamType]TypeParser{
	TypeString: stringParser{},
	TypeInt:    intParser{},
	TypeFloat:  floatParser{},
	TypeBool:   boolParser{},
}

func filterPrefix(candidates []string, partial string) []string {
	prefix := strings.ToLower(partial)
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), prefix) {
			out = append(out, c)
		}
	}
	return out
}

var (
	_ TypeParser = (*ActorParser)(nil)
	_ TypeParser = QuotedStringParser{}
)
