package match

import (
	"math"

	"github.com/zostay/go-std/slices"

	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/token"
)

// program runs its patterns in sequence, once (Program) or repeatedly
// within an iteration-count range (Loop), aggregating the tokens its
// children produce under one synthesized token.
//
// Program and Loop are the same evaluator with the loop bounds present or
// absent, the shape the source itself uses (ProgramPattern with an
// optional iterate_range) before spec.md split the concept into two named
// matchers.
type program struct {
	adextopa.Base
	patterns []adextopa.Matcher
	isLoop   bool
	minIter  int
	maxIter  int
}

// Program returns a matcher that runs patterns once, in order, attaching
// each one's result to a synthesized "Program" token.
func Program(patterns ...adextopa.Matcher) adextopa.Matcher {
	return ProgramNamed("Program", patterns...)
}

// ProgramNamed is Program with an explicit token name.
func ProgramNamed(name string, patterns ...adextopa.Matcher) adextopa.Matcher {
	p := &program{patterns: patterns}
	p.Init(name)
	return p
}

// Loop returns a matcher that repeats patterns as a body between min and
// max (inclusive) times; max may be math.MaxInt for unbounded.
func Loop(min, max int, patterns ...adextopa.Matcher) adextopa.Matcher {
	return LoopNamed("Loop", min, max, patterns...)
}

// LoopNamed is Loop with an explicit token name, also used as the Break/
// Continue target label.
func LoopNamed(name string, min, max int, patterns ...adextopa.Matcher) adextopa.Matcher {
	p := &program{patterns: patterns, isLoop: true, minIter: min, maxIter: max}
	p.Init(name)
	return p
}

func (p *program) Children() []adextopa.Matcher { return p.patterns }

func (p *program) SetChild(i int, m adextopa.Matcher) {
	p.patterns[i] = m
}

func (p *program) AddPattern(m adextopa.Matcher) {
	p.patterns = append(p.patterns, m)
}

// addToken widens the aggregate ranges and appends t to children, after
// checking that matching t made forward progress. A zero-width,
// non-error token repeated within a Loop body would loop the evaluator
// forever, so that case is a recoverable failure rather than the source's
// hard panic. A plain, single-pass Program carries no such risk (it can
// only ever fold one such token per matcher site, not repeat it), so the
// guard only applies when isLoop is set: otherwise non-consuming
// bookmarks like Pin("", nil) could never be folded into a Program's
// children at all.
func addToken(sub *adextopa.ParserContext, children *[]*token.Token, agg *token.Range, t *token.Token, isLoop bool) (*adextopa.ParserContext, error) {
	if isLoop && t.MatchedRange.End == sub.Offset().Start && !t.IsError() {
		return sub, adextopa.ErrFail
	}

	*agg = agg.Union(t.MatchedRange)
	*children = append(*children, t)

	return sub.Advance(t.MatchedRange.End - sub.Offset().Start), nil
}

func (p *program) Exec(ctx *adextopa.ParserContext, scope *adextopa.ScopeContext) (adextopa.MatcherSuccess, error) {
	sub := ctx.CloneWithName(p.Name()).CloneWithStructStart(ctx.Offset().Start)
	sub.Trace(adextopa.StageTry, p.Name())

	children := make([]*token.Token, 0, len(p.patterns))
	agg := token.Unbounded()

	maxIter := p.maxIter
	if !p.isLoop {
		maxIter = 1
	}
	if maxIter == 0 {
		maxIter = math.MaxInt
	}

	completed := 0

iterations:
	for iteration := 0; iteration < maxIter; iteration++ {
		var pending adextopa.MatcherSuccess
		havePending := false
		iterFailed := false

	patterns:
		for _, pat := range p.patterns {
			result, err := pat.Exec(sub, scope)
			if err != nil {
				if p.isLoop {
					iterFailed = true
					break patterns
				}
				return adextopa.MatcherSuccess{}, err
			}

			switch result.Kind {
			case adextopa.SuccessToken:
				var addErr error
				sub, addErr = addToken(sub, &children, &agg, result.Token, p.isLoop)
				if addErr != nil {
					if p.isLoop {
						iterFailed = true
						break patterns
					}
					return adextopa.MatcherSuccess{}, addErr
				}
			case adextopa.SuccessExtractChildren:
				for _, c := range result.Token.Children {
					var addErr error
					sub, addErr = addToken(sub, &children, &agg, c, p.isLoop)
					if addErr != nil {
						if p.isLoop {
							iterFailed = true
							break patterns
						}
						return adextopa.MatcherSuccess{}, addErr
					}
				}
			case adextopa.SuccessSkip:
				sub = sub.Advance(result.Skip)
			default:
				pending = result
				havePending = true
				break patterns
			}
		}

		if iterFailed {
			if completed >= p.minIter {
				return finalizeProgram(sub, p.Name(), children, agg)
			}
			return adextopa.MatcherSuccess{}, adextopa.ErrFail
		}

		if havePending {
			switch pending.Kind {
			case adextopa.SuccessBreak:
				result, _, err := p.handleBreakOrContinue(sub, children, agg, pending, true)
				return result, err
			case adextopa.SuccessContinue:
				result, done, err := p.handleBreakOrContinue(sub, children, agg, pending, false)
				if done {
					return result, err
				}
				continue
			case adextopa.SuccessStop:
				completed++
				break iterations
			default:
				// SuccessNone and anything else: treat as a completed,
				// contentless step of this iteration.
				completed++
			}
			continue
		}

		completed++
	}

	return finalizeProgram(sub, p.Name(), children, agg)
}

// handleBreakOrContinue folds a control-flow signal's token payload (if
// any) into this program's own children, then either absorbs it (this is
// the targeted loop) or re-wraps and re-propagates it outward.
//
// The bool return is only meaningful for Continue: true means the caller
// should return the accompanying result immediately (the signal wasn't
// for this loop and has been re-propagated); false means the caller
// should proceed to the next iteration.
func (p *program) handleBreakOrContinue(
	sub *adextopa.ParserContext,
	children []*token.Token,
	agg token.Range,
	signal adextopa.MatcherSuccess,
	isBreak bool,
) (adextopa.MatcherSuccess, bool, error) {
	if signal.Payload != nil {
		if signal.PayloadExtract {
			for _, c := range signal.Payload.Children {
				var addErr error
				sub, addErr = addToken(sub, &children, &agg, c, p.isLoop)
				if addErr != nil {
					break
				}
			}
			signal.Payload = nil
			signal.PayloadExtract = false
		} else {
			var addErr error
			sub, addErr = addToken(sub, &children, &agg, signal.Payload, p.isLoop)
			if addErr == nil {
				signal.Payload = nil
			}
		}
	}

	targetsThisLoop := p.isLoop && (signal.Label == p.Name() || signal.Label == "")

	if targetsThisLoop {
		if isBreak {
			result, err := finalizeProgram(sub, p.Name(), children, agg)
			return result, true, err
		}
		return adextopa.MatcherSuccess{}, false, nil
	}

	if len(children) == 0 {
		return signal, true, nil
	}

	finalToken, err := finalizeProgram(sub, p.Name(), children, agg)
	if err != nil {
		return signal, true, nil
	}
	signal.Payload = finalToken.Token
	return signal, true, nil
}

func finalizeProgram(ctx *adextopa.ParserContext, name string, children []*token.Token, agg token.Range) (adextopa.MatcherSuccess, error) {
	if agg.IsUnset() {
		return adextopa.MatcherSuccess{}, adextopa.ErrFail
	}

	// Re-derive the aggregate range from the finished child list rather
	// than trusting the incrementally folded agg alone, projecting each
	// child down to its matched range before unioning them.
	ranges := slices.Map(children, func(t *token.Token) token.Range { return t.MatchedRange })
	confirmed := agg
	for _, r := range ranges {
		confirmed = confirmed.Union(r)
	}

	t := token.New(name, ctx.Source(), confirmed)
	for _, c := range children {
		t.AddChild(c)
	}
	t.CapturedRange = confirmed
	// The matched range also covers input consumed by skips, from the
	// program's start to the cursor where it stopped.
	t.MatchedRange = confirmed.Union(token.NewRange(ctx.StructStart(), ctx.Offset().Start))

	return adextopa.Success(t), nil
}
