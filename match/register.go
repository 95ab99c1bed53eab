package match

import (
	"github.com/zostay/go-std/slices"

	"github.com/zostay/adextopa"
)

// register is a no-op pattern: on evaluation it inserts each of its
// children into scope under that child's own name, then always succeeds
// with Skip(0). Used by the grammar compiler to make named patterns
// resolvable by Ref before they're referenced.
type register struct {
	adextopa.Base
	patterns []adextopa.Matcher
}

// Register returns a matcher that binds each of patterns into scope under
// its own Name(), then succeeds with Skip(0).
func Register(patterns ...adextopa.Matcher) adextopa.Matcher {
	r := &register{patterns: patterns}
	r.Init("Register")
	return r
}

func (r *register) IsConsuming() bool { return false }

func (r *register) Name() string { return "Register" }

func (r *register) SetName(string) {
	panic("adextopa: cannot set `name` on a `Register` matcher")
}

func (r *register) Children() []adextopa.Matcher { return r.patterns }

func (r *register) AddPattern(m adextopa.Matcher) {
	r.patterns = append(r.patterns, m)
}

func (r *register) Exec(_ *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	names := slices.Map(r.patterns, func(m adextopa.Matcher) string { return m.Name() })
	for i, p := range r.patterns {
		scope.Set(names[i], adextopa.MatcherScopeValue{Matcher: p})
	}
	return adextopa.SkipResult(0), nil
}
