package token_test

import (
	"testing"

	"github.com/zostay/adextopa/token"
)

func TestTokenValueAndRawValue(t *testing.T) {
	tok := token.NewCaptured("String", "'abc'", token.NewRange(1, 4), token.NewRange(0, 5))
	if got := tok.Value(); got != "abc" {
		t.Errorf("Value() = %q, want %q", got, "abc")
	}
	if got := tok.RawValue(); got != "'abc'" {
		t.Errorf("RawValue() = %q, want %q", got, "'abc'")
	}
}

func TestTokenValueOverrideAttribute(t *testing.T) {
	tok := token.New("String", "a\\nb", token.NewRange(0, 4))
	tok.Attributes["__value"] = "a\nb"
	if got := tok.Value(); got != "a\nb" {
		t.Errorf("Value() with __value override = %q, want %q", got, "a\nb")
	}
}

func TestTokenAddChildWidensRange(t *testing.T) {
	parent := token.New("Program", "abcdef", token.NewRange(0, 0))
	child1 := token.New("Literal", "abcdef", token.NewRange(0, 3))
	child2 := token.New("Literal", "abcdef", token.NewRange(3, 6))

	parent.AddChild(child1)
	parent.AddChild(child2)

	if parent.MatchedRange.Start != 0 || parent.MatchedRange.End != 6 {
		t.Errorf("MatchedRange = %v, want [0,6)", parent.MatchedRange)
	}
	if len(parent.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(parent.Children))
	}
	if child1.Parent != parent {
		t.Error("child1.Parent was not set to parent")
	}
}

func TestTokenFindAndHasChild(t *testing.T) {
	parent := token.New("Pattern", "abc", token.NewRange(0, 3))
	name := token.New("Name", "abc", token.NewRange(0, 3))
	parent.AddChild(name)

	if !parent.HasChild("Name") {
		t.Error("HasChild(\"Name\") = false, want true")
	}
	if parent.FindChild("Name") != name {
		t.Error("FindChild(\"Name\") did not return the added child")
	}
	if parent.FindChild("Missing") != nil {
		t.Error("FindChild(\"Missing\") = non-nil, want nil")
	}
}

func TestTokenIsErrorAndMessage(t *testing.T) {
	tok := token.New("Error", "x", token.NewRange(0, 1))
	tok.Attributes["__is_error"] = "true"
	tok.Attributes["__message"] = "something went wrong"

	if !tok.IsError() {
		t.Error("IsError() = false, want true")
	}
	if got := tok.Message(); got != "something went wrong" {
		t.Errorf("Message() = %q, want %q", got, "something went wrong")
	}
}

func TestWalkDocumentOrder(t *testing.T) {
	root := token.New("Program", "abc", token.NewRange(0, 3))
	a := token.New("A", "abc", token.NewRange(0, 1))
	b := token.New("B", "abc", token.NewRange(1, 2))
	root.AddChild(a)
	root.AddChild(b)

	var seen []string
	token.Walk(root, func(n *token.Token) bool {
		seen = append(seen, n.Name)
		return true
	})

	want := []string{"Program", "A", "B"}
	if len(seen) != len(want) {
		t.Fatalf("Walk visited %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Walk order[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestVisitorDispatch(t *testing.T) {
	root := token.New("Program", "ab", token.NewRange(0, 2))
	a := token.New("AssignmentExpression", "ab", token.NewRange(0, 1))
	other := token.New("Whitespace", "ab", token.NewRange(1, 2))
	root.AddChild(a)
	root.AddChild(other)

	var assignments, defaults int
	v := token.NewVisitor().
		On("AssignmentExpression", func(*token.Token) { assignments++ }).
		Default(func(*token.Token) { defaults++ })
	v.Walk(root)

	if assignments != 1 {
		t.Errorf("assignments = %d, want 1", assignments)
	}
	if defaults != 2 {
		t.Errorf("defaults = %d, want 2 (Program and Whitespace)", defaults)
	}
}

func TestCollectErrors(t *testing.T) {
	root := token.New("Program", "abc", token.NewRange(0, 3))
	errTok := token.New("Error", "abc", token.NewRange(1, 2))
	root.AddChild(token.New("Literal", "abc", token.NewRange(0, 1)))
	root.AddChild(errTok)

	errs := token.CollectErrors(root)
	if len(errs) != 1 || errs[0] != errTok {
		t.Errorf("CollectErrors() = %v, want [%v]", errs, errTok)
	}
}

func TestRangeUnion(t *testing.T) {
	a := token.NewRange(2, 5)
	b := token.NewRange(4, 9)
	u := a.Union(b)
	if u.Start != 2 || u.End != 9 {
		t.Errorf("Union = %v, want [2,9)", u)
	}

	unbounded := token.Unbounded()
	if got := unbounded.Union(a); got != a {
		t.Errorf("Unbounded().Union(a) = %v, want %v", got, a)
	}
}
