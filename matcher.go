package adextopa

import "github.com/zostay/adextopa/token"

// SuccessKind tags the variant of a successful matcher evaluation. Rust's
// sum type for MatcherSuccess becomes one struct tagged by this enum, since
// Go has no sum types.
type SuccessKind int

const (
	// SuccessToken carries a new token to attach to the caller.
	SuccessToken SuccessKind = iota
	// SuccessExtractChildren instructs the caller to splice the token's
	// children directly into its own children, not the token itself. This
	// is the single form Flatten and ProxyChildren both produce.
	SuccessExtractChildren
	// SuccessSkip advances the cursor by N bytes without producing a token.
	SuccessSkip
	// SuccessBreak unwinds to the nearest enclosing Loop matching Label (or
	// any Loop if Label is empty), carrying an optional Payload token.
	SuccessBreak
	// SuccessContinue starts the next iteration of the nearest enclosing
	// Loop matching Label (or any Loop if Label is empty).
	SuccessContinue
	// SuccessStop ends the enclosing Program/Loop successfully at the
	// current point.
	SuccessStop
	// SuccessNone is a no-op result.
	SuccessNone
)

// MatcherSuccess is the result of a successful matcher evaluation.
type MatcherSuccess struct {
	Kind    SuccessKind
	Token   *token.Token
	Skip    int
	Label   string
	Payload *token.Token
	// PayloadExtract marks a Break/Continue's Payload for splicing: the
	// payload's own children should be folded into whatever program
	// finally absorbs this signal, rather than the payload token itself.
	// Set by Flatten when it wraps a Break/Continue whose payload is a
	// token, mirroring how Flatten also extracts a plain token result.
	PayloadExtract bool
}

// Success wraps a token as a SuccessToken result.
func Success(t *token.Token) MatcherSuccess {
	return MatcherSuccess{Kind: SuccessToken, Token: t}
}

// ExtractChildren wraps a token as a SuccessExtractChildren result.
func ExtractChildren(t *token.Token) MatcherSuccess {
	return MatcherSuccess{Kind: SuccessExtractChildren, Token: t}
}

// SkipResult produces a SuccessSkip result advancing the cursor by n bytes.
func SkipResult(n int) MatcherSuccess {
	return MatcherSuccess{Kind: SuccessSkip, Skip: n}
}

// BreakResult produces a SuccessBreak result targeting the loop named
// label ("" targets the nearest enclosing loop), carrying payload.
func BreakResult(label string, payload *token.Token) MatcherSuccess {
	return MatcherSuccess{Kind: SuccessBreak, Label: label, Payload: payload}
}

// ContinueResult produces a SuccessContinue result targeting the loop named
// label ("" targets the nearest enclosing loop).
func ContinueResult(label string, payload *token.Token) MatcherSuccess {
	return MatcherSuccess{Kind: SuccessContinue, Label: label, Payload: payload}
}

// StopResult produces a SuccessStop result.
func StopResult() MatcherSuccess {
	return MatcherSuccess{Kind: SuccessStop}
}

// NoneResult produces a no-op SuccessNone result.
func NoneResult() MatcherSuccess {
	return MatcherSuccess{Kind: SuccessNone}
}

// Matcher is the contract every pattern in the engine implements: attempt
// to recognize input at ctx's current offset without mutating ctx, and
// report naming/tree-navigation facts used by the grammar compiler and Ref
// resolution.
type Matcher interface {
	// Exec attempts to recognize input at ctx.Offset().Start. It must not
	// mutate ctx; the caller advances its own cursor based on the returned
	// token or skip count.
	Exec(ctx *ParserContext, scope *ScopeContext) (MatcherSuccess, error)

	Name() string
	SetName(name string)
	HasCustomName() bool

	// Children returns this matcher's sub-matchers for tree navigation, or
	// nil if it has none.
	Children() []Matcher
	// SetChild replaces the child at index i, panicking if i is out of
	// bounds for matchers with a fixed single child.
	SetChild(i int, m Matcher)
	// AddPattern appends a child, for matchers that accept an arbitrary
	// number (Program, Switch, Register).
	AddPattern(m Matcher)

	// IsConsuming reports whether this matcher ever advances the cursor
	// (false for lookaround, Store of a literal, Register, Null, ...).
	IsConsuming() bool
}

// Base provides the default, panicking implementations of the
// tree-navigation methods that most leaf matchers don't support, the same
// way the grammar compiler's matchers embed a shared default rather than
// repeating boilerplate across every concrete type.
type Base struct {
	name       string
	customName bool
}

func (b *Base) Name() string { return b.name }

func (b *Base) SetName(name string) {
	b.name = name
	b.customName = true
}

func (b *Base) HasCustomName() bool { return b.customName }

func (b *Base) Children() []Matcher { return nil }

func (b *Base) SetChild(int, Matcher) {
	panic("adextopa: this matcher has no settable child")
}

func (b *Base) AddPattern(Matcher) {
	panic("adextopa: this matcher does not accept added patterns")
}

func (b *Base) IsConsuming() bool { return true }

// Init sets name as the matcher's default, uncustomized name. Concrete
// matchers call this once at construction; a later SetName still counts
// as the first customization.
func (b *Base) Init(name string) {
	b.name = name
}
