package grammar

import (
	"testing"

	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/token"
)

func tokenizeWith(t *testing.T, source string, m adextopa.Matcher) (*token.Token, error) {
	t.Helper()
	p := adextopa.NewParser(source)
	ctx := adextopa.NewContext(p, "test")
	scope := adextopa.NewScopeContext()
	return adextopa.Tokenize(ctx, scope, m)
}

func TestIdentifier(t *testing.T) {
	tok, err := tokenizeWith(t, "fooBar123 rest", identifier("Identifier"))
	if err != nil {
		t.Fatalf("identifier: %v", err)
	}
	if tok.Value() != "fooBar123" {
		t.Errorf("Value() = %q, want %q", tok.Value(), "fooBar123")
	}
}

func TestScriptString(t *testing.T) {
	tok, err := tokenizeWith(t, `'it\'s here'`, scriptString("String"))
	if err != nil {
		t.Fatalf("scriptString: %v", err)
	}
	if want := "it's here"; tok.Value() != want {
		t.Errorf("Value() = %q, want %q", tok.Value(), want)
	}
}

func TestRepeatSpecifierRange(t *testing.T) {
	tests := []struct {
		source  string
		wantMin int
		wantMax int
	}{
		{"*", 0, 0},
		{"+", 1, 0},
		{"{3}", 0, 3},
		{"{2,}", 2, 0},
		{"{2,5}", 2, 5},
	}

	for _, tt := range tests {
		// repeatSpecifier wraps its three alternatives in a Switch, which
		// passes the winner's token through unrenamed, so the returned
		// token's own Name is already one of RepeatZeroOrMore/
		// RepeatOneOrMore/RepeatRange.
		tok, err := tokenizeWith(t, tt.source, repeatSpecifier())
		if err != nil {
			t.Fatalf("repeatSpecifier(%q): %v", tt.source, err)
		}
		if !repeatSpecifierNames[tok.Name] {
			t.Fatalf("repeatSpecifier(%q): got token named %q, want one of %v", tt.source, tok.Name, repeatSpecifierNames)
		}
		min, max, err := repeatSpecifierRange(tok)
		if err != nil {
			t.Fatalf("repeatSpecifierRange(%q): %v", tt.source, err)
		}
		if min != tt.wantMin || max != tt.wantMax {
			t.Errorf("repeatSpecifierRange(%q) = (%d, %d), want (%d, %d)", tt.source, min, max, tt.wantMin, tt.wantMax)
		}
	}
}

func TestRepeatRangeMaxLessThanMinErrors(t *testing.T) {
	tok, err := tokenizeWith(t, "{5,2}", repeatSpecifier())
	if err != nil {
		t.Fatalf("repeatSpecifier: %v", err)
	}
	if _, _, err := repeatSpecifierRange(tok); err == nil {
		t.Error("repeatSpecifierRange({5,2}): expected an error, got nil")
	}
}

func TestAttributes(t *testing.T) {
	tok, err := tokenizeWith(t, "name='value' other='thing'", attributes())
	if err != nil {
		t.Fatalf("attributes: %v", err)
	}
	values := attributeValues(tok)
	if values["name"] != "value" || values["other"] != "thing" {
		t.Errorf("attributeValues() = %v, want map[name:value other:thing]", values)
	}
}

func TestAttributeUnderscoreNameFlagsError(t *testing.T) {
	tok, err := tokenizeWith(t, "_bad='value'", attribute())
	if err != nil {
		t.Fatalf("attribute: %v", err)
	}
	if len(token.CollectErrors(tok)) == 0 {
		t.Error("attribute with a leading-underscore name: expected a collected Error token, found none")
	}
}

func TestPatternDefinitionEquals(t *testing.T) {
	tok, err := tokenizeWith(t, "<='hello'>", patternDefinition())
	if err != nil {
		t.Fatalf("patternDefinition: %v", err)
	}
	body := findChildAny(tok, matcherBodyNames)
	if body == nil || body.Name != "EqualsMatcher" {
		t.Fatalf("patternDefinition body = %v, want EqualsMatcher", body)
	}
}

func TestPatternDefinitionModifierClashFails(t *testing.T) {
	// "?!" leaves one modifier character unconsumed right where the
	// opening "<" is required, so the overall definition never parses;
	// the clash is reported as an outright failure rather than a token
	// carrying a diagnostic.
	if _, err := tokenizeWith(t, "?!<='x'>", patternDefinition()); !adextopa.IsFail(err) {
		t.Errorf("patternDefinition with a ?! modifier clash: err = %v, want ErrFail", err)
	}
}

func TestConstructMatcherFromInnerDefinitionEquals(t *testing.T) {
	tok, err := tokenizeWith(t, "='hello'", equalsMatcherBody())
	if err != nil {
		t.Fatalf("equalsMatcherBody: %v", err)
	}
	m, err := constructMatcherFromInnerDefinition(tok)
	if err != nil {
		t.Fatalf("constructMatcherFromInnerDefinition: %v", err)
	}

	matched, err := tokenizeWith(t, "hello world", m)
	if err != nil {
		t.Fatalf("built matcher: %v", err)
	}
	if matched.Value() != "hello" {
		t.Errorf("Value() = %q, want %q", matched.Value(), "hello")
	}
}

func TestConstructMatcherFromInnerDefinitionRegexWithFlagsAndBrackets(t *testing.T) {
	// Exercises a regex literal that opens with a bracket expression (so
	// the leading plain-text Part has nothing to capture) and carries a
	// flags suffix.
	tok, err := tokenizeWith(t, "/[a-z]+/i", regexMatcherBody())
	if err != nil {
		t.Fatalf("regexMatcherBody: %v", err)
	}
	m, err := constructMatcherFromInnerDefinition(tok)
	if err != nil {
		t.Fatalf("constructMatcherFromInnerDefinition: %v", err)
	}

	// Case-insensitive thanks to the (?i) prefix, and the bracket
	// expression must have survived with its delimiters intact.
	matched, err := tokenizeWith(t, "ABC", m)
	if err != nil {
		t.Fatalf("built matcher: %v", err)
	}
	if matched.Value() != "ABC" {
		t.Errorf("Value() = %q, want %q", matched.Value(), "ABC")
	}
}
