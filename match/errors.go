package match

import (
	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/token"
)

// newErrorToken builds the zero-width "Error" token Error() and the
// Assert family emit: a soft failure marker collected by Discard and
// token.CollectErrors rather than aborting the parse.
func newErrorToken(ctx *adextopa.ParserContext, message string, r adextopa.Range) *token.Token {
	t := token.New("Error", ctx.Source(), r)
	t.Attributes["__message"] = message
	t.Attributes["__is_error"] = "true"
	return t
}

type errorMatcher struct {
	adextopa.Base
	message string
}

// Error returns a matcher that always succeeds with a zero-width "Error"
// token carrying message, without failing the parse.
func Error(message string) adextopa.Matcher {
	e := &errorMatcher{message: message}
	e.Init("Error")
	return e
}

func (e *errorMatcher) SetName(string) {
	panic("adextopa: cannot set `name` on an `Error` matcher")
}

func (e *errorMatcher) Children() []adextopa.Matcher { return nil }

func (e *errorMatcher) AddPattern(adextopa.Matcher) {
	panic("adextopa: cannot add a pattern to an `Error` matcher")
}

func (e *errorMatcher) Exec(ctx *adextopa.ParserContext, _ *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	r := adextopa.Range{Start: ctx.Offset().Start, End: ctx.Offset().Start}
	return adextopa.Success(newErrorToken(ctx, e.message, r)), nil
}

type fatalMatcher struct {
	adextopa.Base
	message string
}

// Fatal returns a matcher that always fails with a *adextopa.ParseError
// carrying message verbatim, aborting the parse rather than backtracking.
func Fatal(message string) adextopa.Matcher {
	f := &fatalMatcher{message: message}
	f.Init("Error")
	return f
}

func (f *fatalMatcher) Children() []adextopa.Matcher { return nil }

func (f *fatalMatcher) AddPattern(adextopa.Matcher) {
	panic("adextopa: cannot add a pattern to a `Fatal` matcher")
}

func (f *fatalMatcher) Exec(ctx *adextopa.ParserContext, _ *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	r := adextopa.Range{Start: ctx.Offset().Start, End: ctx.Offset().Start}
	return adextopa.MatcherSuccess{}, adextopa.NewParseError(ctx, f.message, r)
}

type panicMatcher struct {
	adextopa.Base
	message string
}

// Panic is Fatal with the message prefixed by its source position and a
// range spanning from the nearest enclosing structural matcher's start to
// the current offset, for diagnostics that point at the whole construct
// that went wrong rather than just where it was noticed.
func Panic(message string) adextopa.Matcher {
	p := &panicMatcher{message: message}
	p.Init("Error")
	return p
}

func (p *panicMatcher) Children() []adextopa.Matcher { return nil }

func (p *panicMatcher) AddPattern(adextopa.Matcher) {
	panic("adextopa: cannot add a pattern to a `Panic` matcher")
}

func (p *panicMatcher) Exec(ctx *adextopa.ParserContext, _ *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	r := adextopa.Range{Start: ctx.StructStart(), End: ctx.Offset().Start}
	pos := ctx.Parser().Position(r.Start)
	return adextopa.MatcherSuccess{}, adextopa.NewParseError(ctx, "Error: @["+pos.String()+"]: "+p.message, r)
}
