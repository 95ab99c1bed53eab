package match

import "github.com/zostay/adextopa"

// CatchFunc handles a failure from a Catch matcher's inner pattern,
// returning either a recovered success or a different failure.
type CatchFunc func(ctx *adextopa.ParserContext, err error) (adextopa.MatcherSuccess, error)

// catch runs inner and, only on failure, hands control to catchFunc.
// Successes pass straight through.
type catch struct {
	adextopa.Base
	inner     adextopa.Matcher
	catchFunc CatchFunc
}

// Catch returns a matcher that is transparent on success and calls
// catchFunc on any failure from inner.
func Catch(inner adextopa.Matcher, catchFunc CatchFunc) adextopa.Matcher {
	c := &catch{inner: inner, catchFunc: catchFunc}
	c.Init("Catch")
	return c
}

// SetName delegates to the wrapped matcher, the same way Not does, so
// naming a Catch names what it wraps.
func (c *catch) SetName(name string) {
	c.inner.SetName(name)
}

func (c *catch) Children() []adextopa.Matcher { return []adextopa.Matcher{c.inner} }

func (c *catch) SetChild(i int, child adextopa.Matcher) {
	if i != 0 {
		panic("adextopa: Catch has only one child")
	}
	c.inner = child
}

func (c *catch) AddPattern(adextopa.Matcher) {
	panic("adextopa: cannot add a pattern to a `Catch` matcher")
}

func (c *catch) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	sub := ctx.CloneWithName(c.Name())
	result, err := c.inner.Exec(sub, scope)
	if err == nil {
		return result, nil
	}
	return c.catchFunc(sub, err)
}
