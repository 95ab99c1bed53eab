package adextopa

import (
	"fmt"
	"strconv"
	"strings"
)

// FetchResult is what a Fetchable resolves to: either a literal string or a
// reference to a Matcher value pulled from scope.
type FetchResult struct {
	IsMatcher bool
	String    string
	Matcher   Matcher
}

// Fetchable is a value source resolvable at evaluation time: a literal
// string, a dotted scope-variable lookup, or a matcher value. Equals,
// Sequence, Pin, and Ref accept Fetchables rather than raw strings so
// grammars can parameterize patterns by run-time captures.
type Fetchable interface {
	FetchValue(ctx *ParserContext, scope *ScopeContext) (FetchResult, error)
}

// Literal is a Fetchable that always resolves to the same string, the
// common case of a pattern written directly in source rather than fetched
// from scope.
type Literal string

func (l Literal) FetchValue(*ParserContext, *ScopeContext) (FetchResult, error) {
	return FetchResult{String: string(l)}, nil
}

// LiteralMatcher is a Fetchable that always resolves to the same Matcher.
type LiteralMatcher struct{ M Matcher }

func (l LiteralMatcher) FetchValue(*ParserContext, *ScopeContext) (FetchResult, error) {
	return FetchResult{IsMatcher: true, Matcher: l.M}, nil
}

// ScopeFetch is a Fetchable resolving a possibly-dotted scope variable
// name: "id" alone resolves the whole binding, "id.value", "id.raw_value",
// "id.start", "id.end", "id.value_start", "id.value_end", "id.range", and
// "id.value_range" pull specific facts off a Token binding.
type ScopeFetch struct{ Name string }

func (f ScopeFetch) FetchValue(_ *ParserContext, scope *ScopeContext) (FetchResult, error) {
	base, attr, hasAttr := strings.Cut(f.Name, ".")

	v, ok := scope.Get(base)
	if !ok {
		return FetchResult{}, fmt.Errorf("adextopa: no such scope variable %q", base)
	}

	if !hasAttr {
		switch val := v.(type) {
		case MatcherScopeValue:
			return FetchResult{IsMatcher: true, Matcher: val.Matcher}, nil
		case StringScopeValue:
			return FetchResult{String: val.Value}, nil
		case TokenScopeValue:
			return FetchResult{String: val.Token.Value()}, nil
		default:
			return FetchResult{}, fmt.Errorf("adextopa: scope variable %q has no value", base)
		}
	}

	tv, ok := v.(TokenScopeValue)
	if !ok {
		return FetchResult{}, fmt.Errorf("adextopa: %q is not a token, cannot fetch %q", base, attr)
	}
	t := tv.Token

	switch attr {
	case "value":
		return FetchResult{String: t.Value()}, nil
	case "raw_value":
		return FetchResult{String: t.RawValue()}, nil
	case "start":
		return FetchResult{String: strconv.Itoa(t.MatchedRange.Start)}, nil
	case "end":
		return FetchResult{String: strconv.Itoa(t.MatchedRange.End)}, nil
	case "value_start":
		return FetchResult{String: strconv.Itoa(t.CapturedRange.Start)}, nil
	case "value_end":
		return FetchResult{String: strconv.Itoa(t.CapturedRange.End)}, nil
	case "range":
		return FetchResult{String: t.MatchedRange.String()}, nil
	case "value_range":
		return FetchResult{String: t.CapturedRange.String()}, nil
	default:
		return FetchResult{}, fmt.Errorf("adextopa: unknown token attribute %q", attr)
	}
}
