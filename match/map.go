package match

import "github.com/zostay/adextopa"

// MapSuccess transforms a successful token result. A nil MapSuccess
// leaves a token result unchanged.
type MapSuccess func(ctx *adextopa.ParserContext, result adextopa.MatcherSuccess) (adextopa.MatcherSuccess, error)

// MapFailure transforms a failed result. A nil MapFailure leaves the
// failure unchanged.
type MapFailure func(ctx *adextopa.ParserContext, err error) (adextopa.MatcherSuccess, error)

// mapMatcher runs inner and lets caller-supplied callbacks rewrite either
// outcome: a token can be replaced (e.g. with an error token), and a
// failure can be recovered or escalated.
type mapMatcher struct {
	adextopa.Base
	inner     adextopa.Matcher
	onSuccess MapSuccess
	onFailure MapFailure
}

// Map returns a matcher that runs inner, then passes the result through
// onSuccess (on any success) or onFailure (on any error), whichever
// applies. Either callback may be nil to leave that outcome unchanged.
func Map(inner adextopa.Matcher, onSuccess MapSuccess, onFailure MapFailure) adextopa.Matcher {
	m := &mapMatcher{inner: inner, onSuccess: onSuccess, onFailure: onFailure}
	m.Init("Map")
	return m
}

func (m *mapMatcher) SetName(string) {
	panic("adextopa: cannot set `name` on a `Map` matcher")
}

func (m *mapMatcher) Children() []adextopa.Matcher { return []adextopa.Matcher{m.inner} }

func (m *mapMatcher) SetChild(i int, child adextopa.Matcher) {
	if i != 0 {
		panic("adextopa: Map has only one child")
	}
	m.inner = child
}

func (m *mapMatcher) AddPattern(adextopa.Matcher) {
	panic("adextopa: cannot add a pattern to a `Map` matcher")
}

func (m *mapMatcher) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	sub := ctx.CloneWithName(m.Name())
	result, err := m.inner.Exec(sub, scope)

	if err != nil {
		if m.onFailure == nil {
			return adextopa.MatcherSuccess{}, err
		}
		return m.onFailure(sub, err)
	}

	if m.onSuccess == nil {
		return result, nil
	}
	return m.onSuccess(sub, result)
}
