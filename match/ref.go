package match

import (
	"fmt"

	"github.com/zostay/adextopa"
)

// ref looks up a matcher through scope (by name or by a Fetchable) and
// delegates to it, resolved lazily at evaluation time so matcher trees may
// be mutually recursive.
type ref struct {
	adextopa.Base
	target adextopa.Fetchable
}

// Ref returns a matcher that looks up name in scope and delegates to the
// registered matcher found there.
func Ref(name string) adextopa.Matcher {
	return RefFetch(adextopa.Literal(name))
}

// RefNamed is Ref, with a custom display name for the reference itself
// (distinct from the name it looks up).
func RefNamed(name, target string) adextopa.Matcher {
	r := refFetchBase(adextopa.Literal(target))
	r.SetName(name)
	return r
}

// RefFetch is Ref, with the target name resolved at evaluation time from a
// Fetchable (a literal, a scope lookup, or a matcher value directly).
func RefFetch(target adextopa.Fetchable) adextopa.Matcher {
	return refFetchBase(target)
}

func refFetchBase(target adextopa.Fetchable) *ref {
	r := &ref{target: target}
	r.Init("Ref")
	return r
}

func (r *ref) Children() []adextopa.Matcher { return nil }

func (r *ref) AddPattern(adextopa.Matcher) {
	panic("adextopa: cannot add a pattern to a `Ref` matcher")
}

func (r *ref) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	sub := ctx.CloneWithName(r.Name())

	target, err := r.target.FetchValue(sub, scope)
	if err != nil {
		return adextopa.MatcherSuccess{}, err
	}

	if target.IsMatcher {
		return target.Matcher.Exec(sub, scope)
	}

	m, ok := scope.GetMatcher(target.String)
	if !ok {
		return adextopa.MatcherSuccess{}, fmt.Errorf("adextopa: `Ref` matcher unable to locate target reference %q", target.String)
	}
	return m.Exec(sub, scope)
}
