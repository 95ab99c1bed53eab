package grammar

import (
	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/match"
)

// registerSelfHostedMatchers returns a non-consuming matcher that, on its
// first Exec, binds "Pattern", "ProgramMatcher", "SwitchMatcher", and
// "CustomMatcher" into scope. Program and Switch matcher bodies are
// mutually recursive with Pattern (a Program's children are Patterns, and
// a Pattern can itself be a PatternDefinition whose body is a Program), so
// building the two sides of that cycle as a single eager Go call graph
// would never terminate. The grammar resolves this the same way it
// resolves any other cyclic reference: the recursive edges
// (programMatcherBody and switchMatcherBody's loop bodies, and
// matcherBody's Program/Switch/Custom alternatives) are Refs, looked up
// through scope at evaluation time rather than at construction time. This
// matcher must run before any of those Refs are evaluated, so script()
// places it first.
func registerSelfHostedMatchers() adextopa.Matcher {
	return match.Register(
		patternMatcher(),
		programMatcherBody(),
		switchMatcherBody(),
		customMatcherBody(),
	)
}
