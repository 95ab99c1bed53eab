package match

import (
	"strings"

	"github.com/zostay/adextopa"
)

// store writes a variable into scope: either the token produced by running
// an inner matcher, or a literal string, with no matcher involved at all.
type store struct {
	adextopa.Base
	varName string
	inner   adextopa.Matcher
	literal string
	isLit   bool
}

// StoreMatcher returns a matcher that runs inner and, on a token result,
// binds name to that token in scope. The inner result (success or
// failure) passes through unchanged.
func StoreMatcher(name string, inner adextopa.Matcher) adextopa.Matcher {
	if strings.Contains(name, ".") {
		panic("adextopa: `Store` variable names can not contain `.` characters")
	}
	s := &store{varName: name, inner: inner}
	s.Init("Store")
	s.SetName(name)
	return s
}

// StoreString returns a non-consuming matcher that binds name to literal
// in scope and always succeeds with Skip(0).
func StoreString(name, literal string) adextopa.Matcher {
	if strings.Contains(name, ".") {
		panic("adextopa: `Store` variable names can not contain `.` characters")
	}
	s := &store{varName: name, literal: literal, isLit: true}
	s.Init("Store")
	s.SetName(name)
	return s
}

func (s *store) IsConsuming() bool {
	return !s.isLit
}

func (s *store) Children() []adextopa.Matcher {
	if s.isLit {
		return nil
	}
	return []adextopa.Matcher{s.inner}
}

func (s *store) SetChild(i int, m adextopa.Matcher) {
	if s.isLit || i != 0 {
		panic("adextopa: Store has no settable child here")
	}
	s.inner = m
}

func (s *store) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	if s.isLit {
		scope.Set(s.varName, adextopa.StringScopeValue{Value: s.literal})
		return adextopa.SkipResult(0), nil
	}

	sub := ctx.CloneWithName(s.Name())
	result, err := s.inner.Exec(sub, scope)
	if err != nil {
		return adextopa.MatcherSuccess{}, err
	}

	if result.Kind == adextopa.SuccessToken {
		scope.Set(s.varName, adextopa.TokenScopeValue{Token: result.Token})
	}

	return result, nil
}
