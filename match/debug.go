package match

import "github.com/zostay/adextopa"

// debug is a side channel: it prints the current context (or, wrapping a
// child, the child's result) and is otherwise semantically transparent.
type debug struct {
	adextopa.Base
	inner adextopa.Matcher
}

// Debug returns a matcher equivalent to inner, except that it fires the
// parser's Tracer with the context and result as it runs. With no inner
// matcher, Debug is equivalent to Null.
func Debug(inner adextopa.Matcher) adextopa.Matcher {
	d := &debug{inner: inner}
	d.Init("Debug")
	return d
}

func (d *debug) IsConsuming() bool {
	if d.inner == nil {
		return false
	}
	return d.inner.IsConsuming()
}

func (d *debug) Children() []adextopa.Matcher {
	if d.inner == nil {
		return nil
	}
	return []adextopa.Matcher{d.inner}
}

func (d *debug) SetChild(i int, m adextopa.Matcher) {
	if i != 0 {
		panic("adextopa: Debug has only one child")
	}
	d.inner = m
}

func (d *debug) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	ctx = ctx.CloneWithName(d.Name())
	ctx.Trace(adextopa.StageTry, d.Name(), ctx.Remaining())

	if d.inner == nil {
		return adextopa.SkipResult(0), nil
	}

	result, err := d.inner.Exec(ctx, scope)
	if err != nil {
		ctx.Trace(adextopa.StageFail, d.Name(), err)
		return adextopa.MatcherSuccess{}, err
	}

	ctx.Trace(adextopa.StageGot, d.Name(), result)
	return result, nil
}
