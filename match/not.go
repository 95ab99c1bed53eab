package match

import (
	"errors"

	"github.com/zostay/adextopa"
)

// not succeeds (with Skip(0)) iff its inner matcher fails; it fails iff
// inner succeeds. A fatal error from inner propagates unchanged.
type not struct {
	adextopa.Base
	inner adextopa.Matcher
}

// Not returns a matcher that inverts inner's success/failure, consuming
// nothing either way.
func Not(inner adextopa.Matcher) adextopa.Matcher {
	n := &not{inner: inner}
	n.Init("Not")
	return n
}

func (n *not) IsConsuming() bool { return false }

func (n *not) Children() []adextopa.Matcher { return []adextopa.Matcher{n.inner} }

func (n *not) SetChild(i int, m adextopa.Matcher) {
	if i != 0 {
		panic("adextopa: Not has only one child")
	}
	n.inner = m
}

func (n *not) SetName(name string) {
	// Not delegates its own display name to the wrapped matcher, matching
	// the source's practice of renaming the inner pattern rather than
	// itself.
	n.inner.SetName(name)
}

func (n *not) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	ctx = ctx.CloneWithName(n.Name())

	result, err := n.inner.Exec(ctx, scope)
	if err != nil {
		if errors.Is(err, adextopa.ErrFail) {
			return adextopa.SkipResult(0), nil
		}
		return adextopa.MatcherSuccess{}, err
	}

	switch result.Kind {
	case adextopa.SuccessToken, adextopa.SuccessExtractChildren, adextopa.SuccessSkip:
		return adextopa.MatcherSuccess{}, adextopa.ErrFail
	default:
		return result, nil
	}
}
