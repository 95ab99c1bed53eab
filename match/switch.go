package match

import "github.com/zostay/adextopa"

// switchMatcher tries each of its children in turn and returns the first
// success. A recoverable Fail moves on to the next alternative; a fatal
// error is not caught and propagates immediately.
type switchMatcher struct {
	adextopa.Base
	patterns []adextopa.Matcher
}

// Switch returns a matcher that tries patterns in order, returning the
// first one that succeeds.
func Switch(patterns ...adextopa.Matcher) adextopa.Matcher {
	s := &switchMatcher{patterns: patterns}
	s.Init("Switch")
	return s
}

func (s *switchMatcher) Children() []adextopa.Matcher { return s.patterns }

func (s *switchMatcher) SetChild(i int, m adextopa.Matcher) {
	s.patterns[i] = m
}

func (s *switchMatcher) AddPattern(m adextopa.Matcher) {
	s.patterns = append(s.patterns, m)
}

func (s *switchMatcher) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	sub := ctx.CloneWithName(s.Name())
	sub.Trace(adextopa.StageTry, s.Name())

	for _, pat := range s.patterns {
		result, err := pat.Exec(sub, scope)
		if err == nil {
			return result, nil
		}
		if !adextopa.IsFail(err) {
			return adextopa.MatcherSuccess{}, err
		}
	}

	return adextopa.MatcherSuccess{}, adextopa.ErrFail
}
