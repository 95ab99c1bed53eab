// Package match implements the primitive and composite matchers: the
// twenty-odd concrete patterns a grammar compiles into and that can also be
// composed directly as a builder API.
package match

import (
	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/token"
)

// equals succeeds iff the current window starts with the literal text its
// Fetchable pattern resolves to.
type equals struct {
	adextopa.Base
	pattern adextopa.Fetchable
}

// Equals returns a matcher that succeeds iff the input starts with the
// literal string pattern.
func Equals(pattern string) adextopa.Matcher {
	return EqualsFetch(adextopa.Literal(pattern))
}

// EqualsFetch is Equals, but the pattern is resolved at evaluation time
// from a Fetchable (typically a scope variable captured earlier).
func EqualsFetch(pattern adextopa.Fetchable) adextopa.Matcher {
	e := &equals{pattern: pattern}
	e.Init("Equals")
	return e
}

func (e *equals) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	ctx = ctx.CloneWithName(e.Name())
	ctx.Trace(adextopa.StageTry, e.Name())

	result, err := e.pattern.FetchValue(ctx, scope)
	if err != nil {
		return adextopa.MatcherSuccess{}, err
	}
	if result.IsMatcher {
		return adextopa.MatcherSuccess{}, adextopa.ErrFail
	}

	r, ok := ctx.MatchesString(result.String)
	if !ok {
		ctx.Trace(adextopa.StageFail, e.Name())
		return adextopa.MatcherSuccess{}, adextopa.ErrFail
	}

	t := token.New(e.Name(), ctx.Source(), r)
	ctx.Trace(adextopa.StageGot, e.Name(), t)
	return adextopa.Success(t), nil
}
