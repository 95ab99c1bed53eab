package match

import (
	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/token"
)

// discard runs inner and converts a token result into a Skip, preserving
// any embedded soft Error descendants by collecting them into a synthetic
// Error token instead.
type discard struct {
	adextopa.Base
	inner adextopa.Matcher
}

// Discard returns a matcher that consumes whatever inner consumes but
// emits no token of its own, unless inner's result tree contains Error
// descendants, in which case those are collected and returned.
func Discard(inner adextopa.Matcher) adextopa.Matcher {
	d := &discard{inner: inner}
	d.Init("Discard")
	return d
}

func (d *discard) IsConsuming() bool { return d.inner.IsConsuming() }

func (d *discard) Children() []adextopa.Matcher { return []adextopa.Matcher{d.inner} }

func (d *discard) SetChild(i int, m adextopa.Matcher) {
	if i != 0 {
		panic("adextopa: Discard has only one child")
	}
	d.inner = m
}

func (d *discard) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	ctx = ctx.CloneWithName(d.Name())

	result, err := d.inner.Exec(ctx, scope)
	if err != nil {
		return adextopa.MatcherSuccess{}, err
	}

	var t *token.Token
	switch result.Kind {
	case adextopa.SuccessToken, adextopa.SuccessExtractChildren:
		t = result.Token
	default:
		return result, nil
	}

	if errs := token.CollectErrors(t); len(errs) > 0 {
		synthetic := token.New("Error", ctx.Source(), t.MatchedRange)
		synthetic.Attributes["__is_error"] = "true"
		for _, e := range errs {
			synthetic.AddChild(e)
		}
		return adextopa.Success(synthetic), nil
	}

	return adextopa.SkipResult(t.MatchedRange.Len()), nil
}
