package match

import "github.com/zostay/adextopa"

// setScope runs its inner matcher against a fixed scope, ignoring whatever
// scope the caller passed in. Used to isolate an imported pattern's
// internal references from the importing grammar's scope.
type setScope struct {
	adextopa.Base
	scope *adextopa.ScopeContext
	inner adextopa.Matcher
}

// SetScope returns a matcher that runs inner with scope substituted for
// whatever scope the caller provides.
func SetScope(scope *adextopa.ScopeContext, inner adextopa.Matcher) adextopa.Matcher {
	s := &setScope{scope: scope, inner: inner}
	s.Init("SetScope")
	return s
}

func (s *setScope) SetName(string) {
	panic("adextopa: cannot set `name` on a `SetScope` matcher")
}

func (s *setScope) Children() []adextopa.Matcher { return []adextopa.Matcher{s.inner} }

func (s *setScope) SetChild(i int, m adextopa.Matcher) {
	if i != 0 {
		panic("adextopa: SetScope has only one child")
	}
	s.inner = m
}

func (s *setScope) AddPattern(adextopa.Matcher) {
	panic("adextopa: cannot add a pattern to a `SetScope` matcher")
}

func (s *setScope) Exec(ctx *adextopa.ParserContext, _ *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	sub := ctx.CloneWithName(s.Name())
	return s.inner.Exec(sub, s.scope)
}
