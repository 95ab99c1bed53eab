package match

import (
	"errors"

	"github.com/zostay/adextopa"
)

// optional runs inner; a recoverable failure becomes Skip(0), success
// passes through, and a fatal error propagates.
type optional struct {
	adextopa.Base
	inner adextopa.Matcher
}

// Optional returns a matcher that never fails recoverably: inner's success
// passes through, and a Fail becomes Skip(0).
func Optional(inner adextopa.Matcher) adextopa.Matcher {
	o := &optional{inner: inner}
	o.Init("Optional")
	return o
}

func (o *optional) IsConsuming() bool { return o.inner.IsConsuming() }

func (o *optional) Children() []adextopa.Matcher { return []adextopa.Matcher{o.inner} }

func (o *optional) SetChild(i int, m adextopa.Matcher) {
	if i != 0 {
		panic("adextopa: Optional has only one child")
	}
	o.inner = m
}

func (o *optional) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	ctx = ctx.CloneWithName(o.Name())

	result, err := o.inner.Exec(ctx, scope)
	if err != nil {
		if errors.Is(err, adextopa.ErrFail) {
			return adextopa.SkipResult(0), nil
		}
		return adextopa.MatcherSuccess{}, err
	}
	return result, nil
}
