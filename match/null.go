package match

import "github.com/zostay/adextopa"

// null always succeeds, consuming nothing. Used as a default body by the
// grammar compiler.
type null struct {
	adextopa.Base
}

// Null returns a matcher that always succeeds with Skip(0).
func Null() adextopa.Matcher {
	n := &null{}
	n.Init("Null")
	return n
}

func (n *null) IsConsuming() bool { return false }

func (n *null) Exec(*adextopa.ParserContext, *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	return adextopa.SkipResult(0), nil
}
