// Package token defines the tree of matched regions produced by a parse:
// Range, Token, and a small Visitor utility for walking the resulting tree.
package token

import "fmt"

// Unset is used as a sentinel during range-union aggregation (see
// Range.Union): a range with Start == Unset has not yet contributed any
// bounds.
const Unset = int(^uint(0) >> 1)

// Range is a half-open interval of byte offsets into a source string.
type Range struct {
	Start int
	End   int
}

// NewRange builds a Range from explicit bounds.
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// Blank returns the zero-width range at offset zero.
func Blank() Range {
	return Range{}
}

// Unbounded returns a range with Start set to the Unset sentinel, suitable
// as the identity element for Union.
func Unbounded() Range {
	return Range{Start: Unset, End: 0}
}

// IsUnset reports whether r has not been assigned any bounds yet.
func (r Range) IsUnset() bool {
	return r.Start == Unset
}

// Len returns the width of the range.
func (r Range) Len() int {
	if r.IsUnset() {
		return 0
	}
	return r.End - r.Start
}

// Union returns the smallest range containing both r and o, treating an
// unset operand as the identity element.
func (r Range) Union(o Range) Range {
	switch {
	case r.IsUnset():
		return o
	case o.IsUnset():
		return r
	}

	start := r.Start
	if o.Start < start {
		start = o.Start
	}
	end := r.End
	if o.End > end {
		end = o.End
	}
	return Range{Start: start, End: end}
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return !r.IsUnset() && r.Start <= o.Start && o.End <= r.End
}

// String renders the range in "start..end" form, the same notation the
// grammar's Fetch attributes use for `id.range`/`id.value_range`.
func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Token is a node in the tree produced by matching: a name, the span it
// captured, the (possibly larger) span it consumed, a side-channel
// attribute map, an ordered list of children, and a back-reference to its
// parent.
//
// The parent pointer is weak only in intent: Go's collector already
// reclaims the resulting cycle, so callers simply must not rely on Parent
// for ownership, the same discipline the source documents for its own
// back-references.
type Token struct {
	Name          string
	CapturedRange Range
	MatchedRange  Range
	Attributes    map[string]string
	Parent        *Token
	Children      []*Token

	source string
}

// New creates a Token over the given source text, with both ranges set to
// the same span.
func New(name string, source string, matched Range) *Token {
	return &Token{
		Name:          name,
		CapturedRange: matched,
		MatchedRange:  matched,
		Attributes:    make(map[string]string),
		source:        source,
	}
}

// NewCaptured creates a Token whose captured and matched ranges differ, as
// produced by Sequence (delimiters are matched but not captured).
func NewCaptured(name string, source string, captured, matched Range) *Token {
	t := New(name, source, matched)
	t.CapturedRange = captured
	return t
}

// Value returns the source text of the captured range, unless the
// __value attribute has been set (Sequence sets it to the unescaped text).
func (t *Token) Value() string {
	if v, ok := t.Attributes["__value"]; ok {
		return v
	}
	return t.slice(t.CapturedRange)
}

// RawValue returns the source text of the matched range, unless the
// __matched_value attribute overrides it.
func (t *Token) RawValue() string {
	if v, ok := t.Attributes["__matched_value"]; ok {
		return v
	}
	return t.slice(t.MatchedRange)
}

func (t *Token) slice(r Range) string {
	if r.IsUnset() || r.Start < 0 || r.End > len(t.source) || r.Start > r.End {
		return ""
	}
	return t.source[r.Start:r.End]
}

// Message returns the __message attribute, used by soft Error tokens.
func (t *Token) Message() string {
	return t.Attributes["__message"]
}

// IsError reports whether the __is_error attribute has been set to "true".
func (t *Token) IsError() bool {
	return t.Attributes["__is_error"] == "true"
}

// AddChild appends c to t's children and sets c's parent, then widens t's
// matched range to contain c's. It is the caller's responsibility to ensure
// children are appended in left-to-right, non-overlapping order.
func (t *Token) AddChild(c *Token) {
	c.Parent = t
	t.Children = append(t.Children, c)
	t.MatchedRange = t.MatchedRange.Union(c.MatchedRange)
}

// Walk visits t and every descendant in document order, calling v for each.
// v returns false to stop descending into that node's children.
func Walk(t *Token, v func(*Token) bool) {
	if t == nil {
		return
	}
	if !v(t) {
		return
	}
	for _, c := range t.Children {
		Walk(c, v)
	}
}

// Visitor dispatches a Walk over named callbacks, with an optional
// fallback ("*") for names with no specific handler.
type Visitor struct {
	byName   map[string]func(*Token)
	fallback func(*Token)
}

// NewVisitor creates an empty Visitor.
func NewVisitor() *Visitor {
	return &Visitor{byName: make(map[string]func(*Token))}
}

// On registers fn to be called for every token named name.
func (v *Visitor) On(name string, fn func(*Token)) *Visitor {
	v.byName[name] = fn
	return v
}

// Default registers the fallback handler, called for tokens with no
// specific registration.
func (v *Visitor) Default(fn func(*Token)) *Visitor {
	v.fallback = fn
	return v
}

// Walk runs the visitor over root and its descendants.
func (v *Visitor) Walk(root *Token) {
	Walk(root, func(t *Token) bool {
		if fn, ok := v.byName[t.Name]; ok {
			fn(t)
		} else if v.fallback != nil {
			v.fallback(t)
		}
		return true
	})
}

// FindChild returns t's first direct child named name, or nil if none.
func (t *Token) FindChild(name string) *Token {
	for _, c := range t.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// HasChild reports whether t has a direct child named name.
func (t *Token) HasChild(name string) bool {
	return t.FindChild(name) != nil
}

// CollectErrors gathers every descendant of t (t included) whose Name is
// "Error", in document order.
func CollectErrors(t *Token) []*Token {
	var errs []*Token
	Walk(t, func(n *Token) bool {
		if n.Name == "Error" {
			errs = append(errs, n)
		}
		return true
	})
	return errs
}
