package match

import (
	"strings"

	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/token"
)

// sequence scans for a start delimiter, then reads until an end delimiter,
// honoring an escape marker that causes the byte following it to be
// consumed literally rather than tested as a delimiter.
type sequence struct {
	adextopa.Base
	start, end, escape adextopa.Fetchable
}

// Sequence returns a matcher recognizing `start ... end`, where escape (if
// non-empty) causes the next byte after it to be treated literally. Any of
// the three may be "" except start and end, which must be non-empty.
func Sequence(start, end, escape string) adextopa.Matcher {
	return SequenceFetch(adextopa.Literal(start), adextopa.Literal(end), adextopa.Literal(escape))
}

// SequenceFetch is Sequence, with delimiters resolved at evaluation time
// from Fetchables.
func SequenceFetch(start, end, escape adextopa.Fetchable) adextopa.Matcher {
	s := &sequence{start: start, end: end, escape: escape}
	s.Init("Sequence")
	return s
}

func (s *sequence) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	ctx = ctx.CloneWithName(s.Name())
	ctx.Trace(adextopa.StageTry, s.Name())

	source := ctx.Source()
	windowEnd := ctx.Offset().End
	start := ctx.Offset().Start

	startR, err := fetchString(ctx, scope, s.start)
	if err != nil {
		return adextopa.MatcherSuccess{}, err
	}
	if startR == "" {
		panic("adextopa: Sequence `start` pattern of \"\" makes no sense")
	}

	matchedStart, ok := ctx.MatchesString(startR)
	if !ok {
		ctx.Trace(adextopa.StageFail, s.Name())
		return adextopa.MatcherSuccess{}, adextopa.ErrFail
	}
	scanStart := matchedStart.End
	if scanStart >= windowEnd {
		return adextopa.MatcherSuccess{}, adextopa.ErrFail
	}

	endR, err := fetchString(ctx, scope, s.end)
	if err != nil {
		return adextopa.MatcherSuccess{}, err
	}
	if endR == "" {
		panic("adextopa: Sequence `end` pattern of \"\" makes no sense")
	}

	escapeR, err := fetchString(ctx, scope, s.escape)
	if err != nil {
		return adextopa.MatcherSuccess{}, err
	}

	index := scanStart
	previous := scanStart
	var parts strings.Builder

	for {
		if index >= windowEnd {
			return adextopa.MatcherSuccess{}, adextopa.ErrFail
		}

		if matchesAt(source, endR, index, windowEnd) {
			if previous < index {
				parts.WriteString(source[previous:index])
			}
			endOfEnd := index + len(endR)

			captured := token.NewRange(start+len(startR), index)
			matched := token.NewRange(start, endOfEnd)
			t := token.NewCaptured(s.Name(), source, captured, matched)
			t.Attributes["__value"] = parts.String()

			ctx.Trace(adextopa.StageGot, s.Name(), t)
			return adextopa.Success(t), nil
		}

		if escapeR != "" && matchesAt(source, escapeR, index, windowEnd) {
			if previous < index {
				parts.WriteString(source[previous:index])
			}
			index = index + len(escapeR) + 1
			previous = index - 1
			continue
		}

		index++
	}
}

func matchesAt(source, pattern string, offset, windowEnd int) bool {
	if pattern == "" || offset >= windowEnd {
		return false
	}
	if offset+len(pattern) > len(source) {
		return false
	}
	return source[offset:offset+len(pattern)] == pattern
}

func fetchString(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext, f adextopa.Fetchable) (string, error) {
	r, err := f.FetchValue(ctx, scope)
	if err != nil {
		return "", err
	}
	if r.IsMatcher {
		return "", adextopa.ErrFail
	}
	return r.String, nil
}
