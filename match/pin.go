package match

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/token"
)

var emptyPinOffset = regexp.MustCompile(`^(\+|-|\+0|-0)?$`)

func isEmptyPinOffset(s string) bool {
	return emptyPinOffset.MatchString(s)
}

func parsePinOffset(base, fallback int, spec string) int {
	if isEmptyPinOffset(spec) {
		return fallback
	}

	sign := byte(0)
	numPart := spec
	if spec[0] == '+' || spec[0] == '-' {
		sign = spec[0]
		numPart = spec[1:]
	}

	n, err := strconv.Atoi(numPart)
	if err != nil {
		panic(fmt.Sprintf("adextopa: error parsing Pin offset %q: %v", spec, err))
	}

	switch sign {
	case '-':
		return base - n
	case '+':
		return base + n
	default:
		return n
	}
}

// pin is a non-consuming lookaround: it clones the context, relocates its
// offset window per an absolute/relative/range spec (possibly fetched from
// scope), and runs its optional inner matcher there. The outer context's
// offset is left untouched regardless of the inner matcher's outcome.
type pin struct {
	adextopa.Base
	offset  adextopa.Fetchable
	pattern adextopa.Matcher
}

// Pin returns a matcher that relocates to offsetSpec before running
// pattern (or, with pattern nil, before producing a zero-width token at
// the relocated position). offsetSpec is one of: "" / "+" / "-" (no
// change), an absolute integer, "+N" / "-N" relative to the current start,
// or "start..end" combining both forms for the two bounds.
func Pin(offsetSpec string, pattern adextopa.Matcher) adextopa.Matcher {
	return PinFetch(adextopa.Literal(offsetSpec), pattern)
}

// PinFetch is Pin, with the offset spec resolved at evaluation time from a
// Fetchable.
func PinFetch(offset adextopa.Fetchable, pattern adextopa.Matcher) adextopa.Matcher {
	p := &pin{offset: offset, pattern: pattern}
	p.Init("Pin")
	return p
}

func (p *pin) IsConsuming() bool { return false }

func (p *pin) Children() []adextopa.Matcher {
	if p.pattern == nil {
		return nil
	}
	return []adextopa.Matcher{p.pattern}
}

func (p *pin) SetChild(i int, m adextopa.Matcher) {
	if i != 0 {
		panic("adextopa: Pin has only one child")
	}
	p.pattern = m
}

func (p *pin) SetName(string) {
	panic("adextopa: cannot set `name` on a `Pin` matcher")
}

func (p *pin) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	sub := ctx.CloneWithName(p.Name())

	offsetResult, err := p.offset.FetchValue(sub, scope)
	if err != nil {
		return adextopa.MatcherSuccess{}, err
	}
	if offsetResult.IsMatcher {
		return adextopa.MatcherSuccess{}, fmt.Errorf("adextopa: `Pin` matcher received another matcher as an offset")
	}

	parts := strings.SplitN(offsetResult.String, "..", 2)

	window := sub.Offset()
	window.Start = parsePinOffset(window.Start, window.Start, parts[0])
	if len(parts) > 1 {
		window.End = parsePinOffset(window.Start, window.End, parts[1])
	}
	sub = sub.CloneWithOffset(window)

	if p.pattern == nil {
		t := token.New(p.Name(), sub.Source(), token.NewRange(window.Start, window.Start))
		return adextopa.Success(t), nil
	}

	return p.pattern.Exec(sub, scope)
}
