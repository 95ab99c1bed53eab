package match

import "github.com/zostay/adextopa"

// flatten runs inner and, on a token result, signals the parent to splice
// the token's children in directly rather than attaching the token itself.
//
// This is the one surviving form of what were two identically-behaving
// matchers at different ages of the source (Flatten and ProxyChildren);
// both produced the same ExtractChildren signal, so only one constructor
// is kept here.
type flatten struct {
	adextopa.Base
	inner adextopa.Matcher
}

// Flatten returns a matcher that, on a successful match, splices inner's
// token's children into the enclosing composite instead of attaching
// inner's token itself.
func Flatten(inner adextopa.Matcher) adextopa.Matcher {
	f := &flatten{inner: inner}
	f.Init("Flatten")
	return f
}

func (f *flatten) IsConsuming() bool { return f.inner.IsConsuming() }

func (f *flatten) Children() []adextopa.Matcher { return []adextopa.Matcher{f.inner} }

func (f *flatten) SetChild(i int, m adextopa.Matcher) {
	if i != 0 {
		panic("adextopa: Flatten has only one child")
	}
	f.inner = m
}

func (f *flatten) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	ctx = ctx.CloneWithName(f.Name())

	result, err := f.inner.Exec(ctx, scope)
	if err != nil {
		return adextopa.MatcherSuccess{}, err
	}

	switch result.Kind {
	case adextopa.SuccessToken, adextopa.SuccessExtractChildren:
		return adextopa.ExtractChildren(result.Token), nil
	case adextopa.SuccessBreak, adextopa.SuccessContinue:
		if result.Payload != nil {
			result.PayloadExtract = true
		}
		return result, nil
	default:
		return result, nil
	}
}
