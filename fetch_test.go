package adextopa_test

import (
	"testing"

	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/token"
)

func TestScopeFetchAttributes(t *testing.T) {
	s := adextopa.NewScopeContext()
	tok := token.NewCaptured("String", "'abc'def", token.NewRange(1, 4), token.NewRange(0, 5))
	s.Set("str", adextopa.TokenScopeValue{Token: tok})

	tests := []struct {
		name string
		want string
	}{
		{"str", "abc"},
		{"str.value", "abc"},
		{"str.raw_value", "'abc'"},
		{"str.start", "0"},
		{"str.end", "5"},
		{"str.value_start", "1"},
		{"str.value_end", "4"},
	}

	for _, tt := range tests {
		result, err := adextopa.ScopeFetch{Name: tt.name}.FetchValue(nil, s)
		if err != nil {
			t.Errorf("FetchValue(%q): %v", tt.name, err)
			continue
		}
		if result.String != tt.want {
			t.Errorf("FetchValue(%q) = %q, want %q", tt.name, result.String, tt.want)
		}
	}
}

func TestScopeFetchUnknownVariable(t *testing.T) {
	s := adextopa.NewScopeContext()
	if _, err := (adextopa.ScopeFetch{Name: "nope"}).FetchValue(nil, s); err == nil {
		t.Error("FetchValue on an unbound name: expected error, got nil")
	}
}

func TestLiteralFetchValue(t *testing.T) {
	result, err := adextopa.Literal("hi").FetchValue(nil, nil)
	if err != nil {
		t.Fatalf("FetchValue: %v", err)
	}
	if result.String != "hi" || result.IsMatcher {
		t.Errorf("FetchValue() = %+v, want String=\"hi\" IsMatcher=false", result)
	}
}
