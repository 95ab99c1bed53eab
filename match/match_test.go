package match_test

import (
	"strings"
	"testing"

	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/match"
	"github.com/zostay/adextopa/token"
)

// run tokenizes source against m from a fresh context and scope.
func run(t *testing.T, source string, m adextopa.Matcher) (*token.Token, error) {
	t.Helper()
	p := adextopa.NewParser(source)
	ctx := adextopa.NewContext(p, "test")
	scope := adextopa.NewScopeContext()
	return adextopa.Tokenize(ctx, scope, m)
}

func TestEquals(t *testing.T) {
	tok, err := run(t, "hello world", match.Equals("hello"))
	if err != nil {
		t.Fatalf("Equals: %v", err)
	}
	if tok.Value() != "hello" {
		t.Errorf("Value() = %q, want %q", tok.Value(), "hello")
	}

	if _, err := run(t, "goodbye", match.Equals("hello")); !adextopa.IsFail(err) {
		t.Errorf("Equals mismatch: err = %v, want ErrFail", err)
	}
}

func TestMatchesRegexp(t *testing.T) {
	tok, err := run(t, "12345abc", match.Matches(`\d+`))
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if tok.Value() != "12345" {
		t.Errorf("Value() = %q, want %q", tok.Value(), "12345")
	}

	if _, err := run(t, "abc", match.Matches(`\d+`)); !adextopa.IsFail(err) {
		t.Errorf("Matches mismatch: err = %v, want ErrFail", err)
	}
}

func TestSequence(t *testing.T) {
	tok, err := run(t, `'it\'s fine'`, match.Sequence("'", "'", "\\"))
	if err != nil {
		t.Fatalf("Sequence: %v", err)
	}
	if want := "it's fine"; tok.Value() != want {
		t.Errorf("Value() = %q, want %q", tok.Value(), want)
	}
}

func TestSwitchPassesThroughWinnerUnmodified(t *testing.T) {
	m := match.Switch(
		match.Equals("foo"),
		match.Equals("bar"),
	)

	tok, err := run(t, "bar", m)
	if err != nil {
		t.Fatalf("Switch: %v", err)
	}
	if tok.Value() != "bar" {
		t.Errorf("Value() = %q, want %q", tok.Value(), "bar")
	}

	if _, err := run(t, "baz", m); !adextopa.IsFail(err) {
		t.Errorf("Switch with no matching alternative: err = %v, want ErrFail", err)
	}
}

func TestOptional(t *testing.T) {
	m := match.Program(
		match.Optional(match.Equals("foo")),
		match.Equals("bar"),
	)

	if _, err := run(t, "bar", m); err != nil {
		t.Errorf("Optional absent: %v", err)
	}
	if _, err := run(t, "foobar", m); err != nil {
		t.Errorf("Optional present: %v", err)
	}
}

func TestNot(t *testing.T) {
	m := match.Program(
		match.Not(match.Equals("foo")),
		match.Equals("bar"),
	)

	if _, err := run(t, "bar", m); err != nil {
		t.Errorf("Not with no forbidden prefix: %v", err)
	}
	if _, err := run(t, "foobar", m); !adextopa.IsFail(err) {
		t.Errorf("Not with a forbidden prefix present: err = %v, want ErrFail", err)
	}
}

func TestDiscard(t *testing.T) {
	m := match.Program(
		match.Discard(match.Equals("(")),
		match.Equals("x"),
		match.Discard(match.Equals(")")),
	)

	tok, err := run(t, "(x)", m)
	if err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if tok.RawValue() != "(x)" {
		t.Errorf("RawValue() = %q, want %q (matched range still spans delimiters)", tok.RawValue(), "(x)")
	}
}

func TestProgramForwardProgressGuard(t *testing.T) {
	// a* can match a zero-width token (a non-error SuccessToken that
	// consumes nothing), which addToken must reject to avoid looping
	// forever.
	zeroWidth := match.Matches(`a*`)
	loop := match.Loop(0, 0, zeroWidth)

	if _, err := run(t, "zzz", loop); !adextopa.IsFail(err) {
		t.Errorf("Loop over a zero-width body: err = %v, want ErrFail", err)
	}
}

func TestLoopBounds(t *testing.T) {
	digit := match.Matches(`\d`)

	if _, err := run(t, "abc", match.Loop(1, 0, digit)); !adextopa.IsFail(err) {
		t.Errorf("Loop(1,0) with zero matches: err = %v, want ErrFail", err)
	}

	tok, err := run(t, "123abc", match.Loop(1, 0, digit))
	if err != nil {
		t.Fatalf("Loop(1,0): %v", err)
	}
	if tok.Value() != "123" {
		t.Errorf("Value() = %q, want %q", tok.Value(), "123")
	}
}

func TestFlattenSplicesChildren(t *testing.T) {
	inner := match.Program(
		match.Matches(`\d+`),
		match.Matches(`[a-z]+`),
	)
	m := match.Program(match.Flatten(inner))

	tok, err := run(t, "123abc", m)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if tok.Value() != "123abc" {
		t.Errorf("Value() = %q, want %q", tok.Value(), "123abc")
	}
	if len(tok.Children) != 2 {
		t.Errorf("len(Children) = %d, want 2 (spliced from the inner Program, not nested)", len(tok.Children))
	}
}

func TestPinRelocatesWithoutConsuming(t *testing.T) {
	m := match.Program(
		match.StoreMatcher("start", match.Matches(`\d+`)),
		match.Discard(match.Equals(",")),
		match.Matches(`[a-z]+`),
		match.PinFetch(adextopa.ScopeFetch{Name: "start.start"}, match.Matches(`\d+`)),
	)

	tok, err := run(t, "123,abc", m)
	if err != nil {
		t.Fatalf("Pin: %v", err)
	}
	// Pin is non-consuming: the overall match only spans up to "abc".
	if !strings.HasPrefix(tok.Value(), "123,abc") {
		t.Errorf("Value() = %q, want it to start with %q", tok.Value(), "123,abc")
	}
}

func TestAssertEmitsErrorOnMatch(t *testing.T) {
	m := match.Program(
		match.Assert(match.Equals("bad"), "bad is not allowed here"),
		match.Matches(`.+`),
	)

	tok, err := run(t, "badstuff", m)
	if err != nil {
		t.Fatalf("Assert: %v", err)
	}
	if !tok.HasChild("Error") {
		t.Error("Assert over a matching inner: expected an Error child, found none")
	}
}

func TestAssertSilentOnMismatch(t *testing.T) {
	m := match.Program(
		match.Assert(match.Equals("bad"), "bad is not allowed here"),
		match.Matches(`.+`),
	)

	tok, err := run(t, "goodstuff", m)
	if err != nil {
		t.Fatalf("Assert: %v", err)
	}
	if tok.HasChild("Error") {
		t.Error("Assert over a non-matching inner: expected no Error child")
	}
}

func TestRegisterAndRef(t *testing.T) {
	greeting := match.Equals("hi")
	m := match.Program(
		match.Register(greeting),
		match.Ref("Equals"),
	)

	if _, err := run(t, "hi", m); err != nil {
		t.Fatalf("Register+Ref: %v", err)
	}
}

func TestSetScopeIsolatesRef(t *testing.T) {
	outerScope := adextopa.NewScopeContext()
	outerScope.Set("Greeting", adextopa.MatcherScopeValue{Matcher: match.Equals("outer")})

	innerScope := adextopa.NewScopeContext()
	innerScope.Set("Greeting", adextopa.MatcherScopeValue{Matcher: match.Equals("inner")})

	m := match.SetScope(innerScope, match.Ref("Greeting"))

	p := adextopa.NewParser("inner")
	ctx := adextopa.NewContext(p, "test")
	tok, err := adextopa.Tokenize(ctx, outerScope, m)
	if err != nil {
		t.Fatalf("SetScope: %v", err)
	}
	if tok.Value() != "inner" {
		t.Errorf("Value() = %q, want %q (SetScope's baked-in scope should win)", tok.Value(), "inner")
	}
}

func TestStoreMatcherBindsScope(t *testing.T) {
	scope := adextopa.NewScopeContext()
	m := match.StoreMatcher("number", match.Matches(`\d+`))

	p := adextopa.NewParser("42")
	ctx := adextopa.NewContext(p, "test")
	if _, err := adextopa.Tokenize(ctx, scope, m); err != nil {
		t.Fatalf("StoreMatcher: %v", err)
	}

	tok, ok := scope.GetToken("number")
	if !ok {
		t.Fatal("scope did not bind \"number\"")
	}
	if tok.Value() != "42" {
		t.Errorf("bound token Value() = %q, want %q", tok.Value(), "42")
	}
}

func TestBreakStopsLoop(t *testing.T) {
	m := match.LoopNamed("Digits", 0, 0,
		match.Switch(
			match.Program(match.Discard(match.Equals(".")), match.Break("Digits")),
			match.Matches(`\d`),
		),
	)

	tok, err := run(t, "123.456", m)
	if err != nil {
		t.Fatalf("Break: %v", err)
	}
	if tok.Value() != "123" {
		t.Errorf("Value() = %q, want %q", tok.Value(), "123")
	}
}

func TestNullAlwaysSucceedsZeroWidth(t *testing.T) {
	tok, err := run(t, "anything", match.Null())
	if err != nil {
		t.Fatalf("Null: %v", err)
	}
	if tok.Value() != "" {
		t.Errorf("Value() = %q, want empty", tok.Value())
	}
}
