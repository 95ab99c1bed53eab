package match

import "github.com/zostay/adextopa"

// FatalIf returns a matcher that succeeds silently whenever inner fails,
// but aborts the parse with Fatal(msg) whenever inner succeeds.
func FatalIf(inner adextopa.Matcher, msg string) adextopa.Matcher {
	return Flatten(Optional(ProgramNamed("Fatal", Discard(inner), Fatal(msg))))
}

// FatalIfNot returns a matcher that succeeds silently whenever inner
// succeeds, but aborts the parse with Fatal(msg) whenever inner fails.
func FatalIfNot(inner adextopa.Matcher, msg string) adextopa.Matcher {
	return Flatten(Optional(ProgramNamed("Fatal", Discard(Not(inner)), Fatal(msg))))
}

// PanicNot is FatalIfNot with a positioned message: it succeeds silently
// whenever inner succeeds, but aborts with Panic(msg) whenever inner
// fails.
func PanicNot(inner adextopa.Matcher, msg string) adextopa.Matcher {
	return Flatten(Optional(ProgramNamed("Panic", Discard(Not(inner)), Panic(msg))))
}
