package match_test

import (
	"errors"
	"testing"

	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/match"
)

func TestErrorMatcherAlwaysSucceeds(t *testing.T) {
	tok, err := run(t, "anything", match.Error("bad thing"))
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if !tok.IsError() {
		t.Error("IsError() = false, want true")
	}
	if tok.Message() != "bad thing" {
		t.Errorf("Message() = %q, want %q", tok.Message(), "bad thing")
	}
}

func TestFatalAbortsParse(t *testing.T) {
	_, err := run(t, "anything", match.Fatal("boom"))
	if err == nil {
		t.Fatal("Fatal: expected an error, got nil")
	}
	var parseErr *adextopa.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("Fatal error = %v (%T), want *adextopa.ParseError", err, err)
	}
}

func TestCatchRecoversFatal(t *testing.T) {
	m := match.Catch(match.Fatal("boom"), func(ctx *adextopa.ParserContext, err error) (adextopa.MatcherSuccess, error) {
		return adextopa.SkipResult(0), nil
	})

	if _, err := run(t, "anything", m); err != nil {
		t.Errorf("Catch did not recover a fatal error: %v", err)
	}
}

func TestCatchPassesThroughSuccess(t *testing.T) {
	m := match.Catch(match.Equals("hi"), func(ctx *adextopa.ParserContext, err error) (adextopa.MatcherSuccess, error) {
		t.Fatal("catchFunc should not run on a success")
		return adextopa.MatcherSuccess{}, err
	})

	tok, err := run(t, "hi", m)
	if err != nil {
		t.Fatalf("Catch: %v", err)
	}
	if tok.Value() != "hi" {
		t.Errorf("Value() = %q, want %q", tok.Value(), "hi")
	}
}

func TestMapTransformsFailure(t *testing.T) {
	m := match.Map(match.Equals("hi"), nil,
		func(ctx *adextopa.ParserContext, err error) (adextopa.MatcherSuccess, error) {
			return adextopa.SkipResult(0), nil
		},
	)

	if _, err := run(t, "bye", m); err != nil {
		t.Errorf("Map onFailure did not recover: %v", err)
	}
}

func TestFatalIfAbortsOnMatch(t *testing.T) {
	m := match.FatalIf(match.Equals("bad"), "bad found")
	if _, err := run(t, "bad", m); err == nil {
		t.Error("FatalIf over a matching inner: expected an error, got nil")
	}
	if _, err := run(t, "good", m); err != nil {
		t.Errorf("FatalIf over a non-matching inner: %v, want nil", err)
	}
}

func TestPanicNotAbortsOnMismatch(t *testing.T) {
	m := match.PanicNot(match.Equals("good"), "expected good")
	if _, err := run(t, "good", m); err != nil {
		t.Errorf("PanicNot over a matching inner: %v, want nil", err)
	}
	if _, err := run(t, "bad", m); err == nil {
		t.Error("PanicNot over a non-matching inner: expected an error, got nil")
	}
}
