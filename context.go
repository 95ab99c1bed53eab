package adextopa

import (
	"regexp"

	"github.com/zostay/adextopa/token"
)

// Range is an alias of token.Range so callers of the root package don't
// need to import the token package just to build one.
type Range = token.Range

// ParserContext is the per-evaluation cursor handed to a Matcher: the
// window of source text still visible, a back-reference to the Parser
// that owns it, a name used for tracing, and a debug-mode counter.
//
// ParserContext is cloned on descent so siblings see an independent
// cursor while sharing the Parser, the grounding for this split on the
// teacher's Input.MayFail/Keep/Discard trio (parser/input.go) — except
// that here the "buffer" is the whole in-memory source rather than a
// streaming reader, so cloning copies an offset window instead of a
// reader cursor.
type ParserContext struct {
	Name string

	parser      *Parser
	offset      Range
	debugMode   int
	structStart int
}

// NewContext creates a ParserContext spanning the whole of parser's
// source, named name for tracing purposes.
func NewContext(parser *Parser, name string) *ParserContext {
	return &ParserContext{
		Name:        name,
		parser:      parser,
		offset:      Range{Start: 0, End: len(parser.Source())},
		structStart: -1,
	}
}

// NewContextWithOffset creates a ParserContext over an explicit window,
// used by Pin to re-run a matcher at a captured location.
func NewContextWithOffset(parser *Parser, offset Range, name string) *ParserContext {
	return &ParserContext{
		Name:        name,
		parser:      parser,
		offset:      offset,
		structStart: -1,
	}
}

// CloneWithName returns a copy of ctx carrying a different trace name,
// sharing the same Parser and offset window. Matchers clone the context
// they were given before descending into children so their own
// advancement is independent of the caller's cursor.
func (c *ParserContext) CloneWithName(name string) *ParserContext {
	clone := *c
	clone.Name = name
	return &clone
}

// CloneWithOffset returns a copy of ctx with a replaced offset window,
// used by Pin.
func (c *ParserContext) CloneWithOffset(offset Range) *ParserContext {
	clone := *c
	clone.offset = offset
	return &clone
}

// Advance returns a copy of ctx whose window start has moved forward by n
// bytes, used by composite matchers to hand the next child a cursor past
// what was already consumed.
func (c *ParserContext) Advance(n int) *ParserContext {
	clone := *c
	clone.offset.Start += n
	return &clone
}

// Offset returns the context's current window into the source.
func (c *ParserContext) Offset() Range {
	return c.offset
}

// CloneWithStructStart returns a copy of ctx recording start as the
// beginning of the nearest enclosing structural matcher (Program/Loop),
// consulted by Panic to report a range rather than a single point.
func (c *ParserContext) CloneWithStructStart(start int) *ParserContext {
	clone := *c
	clone.structStart = start
	return &clone
}

// StructStart returns the start offset of the nearest enclosing
// structural matcher, or the context's own current offset if none has
// been recorded.
func (c *ParserContext) StructStart() int {
	if c.structStart < 0 {
		return c.offset.Start
	}
	return c.structStart
}

// Parser returns the owning Parser.
func (c *ParserContext) Parser() *Parser {
	return c.parser
}

// Source returns the full source text of the owning Parser.
func (c *ParserContext) Source() string {
	return c.parser.Source()
}

// Remaining returns the source text still visible in the window.
func (c *ParserContext) Remaining() string {
	if c.offset.Start >= c.offset.End || c.offset.Start > len(c.Source()) {
		return ""
	}
	end := c.offset.End
	if end > len(c.Source()) {
		end = len(c.Source())
	}
	return c.Source()[c.offset.Start:end]
}

// IsDebugMode reports whether debug tracing is active for this context.
func (c *ParserContext) IsDebugMode() bool {
	return c.debugMode > 0
}

// SetDebugMode sets the debug-mode counter; propagated by Debug.
func (c *ParserContext) SetDebugMode(v int) {
	c.debugMode = v
}

// MatchesString reports whether the window starts with pattern, returning
// the matched range if so.
func (c *ParserContext) MatchesString(pattern string) (Range, bool) {
	if pattern == "" {
		return Range{}, false
	}
	remaining := c.Remaining()
	if len(remaining) < len(pattern) || remaining[:len(pattern)] != pattern {
		return Range{}, false
	}
	return Range{Start: c.offset.Start, End: c.offset.Start + len(pattern)}, true
}

// MatchesRegexp reports whether re matches anchored at the window start,
// returning the matched range if so.
func (c *ParserContext) MatchesRegexp(re *regexp.Regexp) (Range, bool) {
	remaining := c.Remaining()
	loc := re.FindStringIndex(remaining)
	if loc == nil || loc[0] != 0 {
		return Range{}, false
	}
	return Range{Start: c.offset.Start, End: c.offset.Start + loc[1]}, true
}

// Trace fires the owning Parser's Tracer hook, if any, at the context's
// current offset.
func (c *ParserContext) Trace(stage Stage, name string, args ...any) {
	c.parser.trace(stage, c.offset.Start, name, args...)
}

// Tokenize runs matcher at the top of a parse and reduces its
// MatcherSuccess into a single root *token.Token, the shape library
// callers actually want rather than the raw tagged result composite
// matchers pass between each other.
func Tokenize(ctx *ParserContext, scope *ScopeContext, m Matcher) (*token.Token, error) {
	result, err := m.Exec(ctx, scope)
	if err != nil {
		return nil, err
	}

	switch result.Kind {
	case SuccessToken:
		return result.Token, nil
	case SuccessExtractChildren:
		wrapper := token.New(m.Name(), ctx.Source(), result.Token.MatchedRange)
		for _, child := range result.Token.Children {
			wrapper.AddChild(child)
		}
		return wrapper, nil
	case SuccessSkip:
		return token.New(m.Name(), ctx.Source(), Range{Start: ctx.Offset().Start, End: ctx.Offset().Start + result.Skip}), nil
	case SuccessBreak, SuccessContinue:
		if result.Payload != nil {
			return result.Payload, nil
		}
		return token.New(m.Name(), ctx.Source(), token.Blank()), nil
	default:
		return token.New(m.Name(), ctx.Source(), token.Blank()), nil
	}
}
