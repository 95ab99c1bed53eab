package match

import "github.com/zostay/adextopa"

// Assert returns a non-consuming matcher that succeeds silently whenever
// inner fails, but emits an Error(msg) token whenever inner succeeds. Used
// as a negative lookaround with a diagnostic: "this must not be here".
func Assert(inner adextopa.Matcher, msg string) adextopa.Matcher {
	return Flatten(Optional(ProgramNamed("Assert", Discard(Not(Not(inner))), Error(msg))))
}

// AssertNot returns a non-consuming matcher that succeeds silently
// whenever inner succeeds, but emits an Error(msg) token whenever inner
// fails. Used as a positive lookaround with a diagnostic: "this must be
// here".
func AssertNot(inner adextopa.Matcher, msg string) adextopa.Matcher {
	return Flatten(Optional(ProgramNamed("Assert", Discard(Not(inner)), Error(msg))))
}

// AssertIf is Assert, built directly against Map rather than through the
// Program/Discard/Optional composition. Semantically identical to Assert.
func AssertIf(inner adextopa.Matcher, msg string) adextopa.Matcher {
	return Map(inner,
		func(ctx *adextopa.ParserContext, result adextopa.MatcherSuccess) (adextopa.MatcherSuccess, error) {
			r := adextopa.Range{Start: ctx.Offset().Start, End: ctx.Offset().Start}
			return adextopa.Success(newErrorToken(ctx, msg, r)), nil
		},
		func(ctx *adextopa.ParserContext, err error) (adextopa.MatcherSuccess, error) {
			if adextopa.IsFail(err) {
				return adextopa.SkipResult(0), nil
			}
			return adextopa.MatcherSuccess{}, err
		},
	)
}

// AssertIfNot is AssertNot, built directly against Map. Semantically
// identical to AssertNot.
func AssertIfNot(inner adextopa.Matcher, msg string) adextopa.Matcher {
	return Map(inner,
		func(ctx *adextopa.ParserContext, result adextopa.MatcherSuccess) (adextopa.MatcherSuccess, error) {
			return adextopa.SkipResult(0), nil
		},
		func(ctx *adextopa.ParserContext, err error) (adextopa.MatcherSuccess, error) {
			if adextopa.IsFail(err) {
				start := ctx.Offset().Start
				r := adextopa.Range{Start: start, End: start}
				return adextopa.Success(newErrorToken(ctx, msg, r)), nil
			}
			return adextopa.MatcherSuccess{}, err
		},
	)
}
