package match

import (
	"regexp"

	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/token"
)

// matches succeeds iff re matches anchored at the window start.
type matches struct {
	adextopa.Base
	re *regexp.Regexp
}

// Matches returns a matcher that succeeds iff pattern matches anchored at
// the current offset. pattern is compiled once at construction; it panics
// on an invalid expression, the same way grammar-compiled regex literals
// are expected to already be syntactically valid by the time they reach
// here.
func Matches(pattern string) adextopa.Matcher {
	return MatchesRegexp(regexp.MustCompile(pattern))
}

// MatchesRegexp is Matches, given an already-compiled expression.
func MatchesRegexp(re *regexp.Regexp) adextopa.Matcher {
	m := &matches{re: re}
	m.Init("Matches")
	return m
}

func (m *matches) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	ctx = ctx.CloneWithName(m.Name())
	ctx.Trace(adextopa.StageTry, m.Name())

	r, ok := ctx.MatchesRegexp(m.re)
	if !ok {
		ctx.Trace(adextopa.StageFail, m.Name())
		return adextopa.MatcherSuccess{}, adextopa.ErrFail
	}

	t := token.New(m.Name(), ctx.Source(), r)
	ctx.Trace(adextopa.StageGot, m.Name(), t)
	return adextopa.Success(t), nil
}
