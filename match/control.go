package match

import "github.com/zostay/adextopa"

// breakMatcher always succeeds with a Break signal, unwinding to the
// nearest enclosing Loop named loopName (or any Loop, if loopName is "").
type breakMatcher struct {
	adextopa.Base
	loopName string
}

// Break returns a matcher that unwinds to the enclosing Loop named
// loopName, or the nearest enclosing Loop if loopName is "".
func Break(loopName string) adextopa.Matcher {
	b := &breakMatcher{loopName: loopName}
	b.Init("Break")
	return b
}

func (b *breakMatcher) IsConsuming() bool { return false }

func (b *breakMatcher) SetName(string) {
	panic("adextopa: cannot set `name` on a `Break` matcher")
}

func (b *breakMatcher) AddPattern(adextopa.Matcher) {
	panic("adextopa: cannot add a pattern to a `Break` matcher")
}

func (b *breakMatcher) Exec(*adextopa.ParserContext, *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	return adextopa.BreakResult(b.loopName, nil), nil
}

// continueMatcher always succeeds with a Continue signal, restarting the
// nearest enclosing Loop named loopName (or any Loop, if loopName is "").
type continueMatcher struct {
	adextopa.Base
	loopName string
}

// Continue returns a matcher that restarts the enclosing Loop named
// loopName, or the nearest enclosing Loop if loopName is "".
func Continue(loopName string) adextopa.Matcher {
	c := &continueMatcher{loopName: loopName}
	c.Init("Continue")
	return c
}

func (c *continueMatcher) IsConsuming() bool { return false }

func (c *continueMatcher) SetName(string) {
	panic("adextopa: cannot set `name` on a `Continue` matcher")
}

func (c *continueMatcher) AddPattern(adextopa.Matcher) {
	panic("adextopa: cannot add a pattern to a `Continue` matcher")
}

func (c *continueMatcher) Exec(*adextopa.ParserContext, *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	return adextopa.ContinueResult(c.loopName, nil), nil
}

// stopMatcher always succeeds with a Stop signal, ending the enclosing
// Program/Loop successfully at the current point.
type stopMatcher struct {
	adextopa.Base
}

// Stop returns a matcher that ends the enclosing Program/Loop successfully
// at the current point.
func Stop() adextopa.Matcher {
	s := &stopMatcher{}
	s.Init("Stop")
	return s
}

func (s *stopMatcher) IsConsuming() bool { return false }

func (s *stopMatcher) SetName(string) {
	panic("adextopa: cannot set `name` on a `Stop` matcher")
}

func (s *stopMatcher) AddPattern(adextopa.Matcher) {
	panic("adextopa: cannot add a pattern to a `Stop` matcher")
}

func (s *stopMatcher) Exec(*adextopa.ParserContext, *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	return adextopa.StopResult(), nil
}
