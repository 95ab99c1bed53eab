package grammar

import (
	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/match"
)

const modifierClashMsg = "Can not use ? and ! at the same time in this context. Use one or the other, not both."

// patternDefinition recognizes the full `<...>` pattern body: optional
// outer/inner `?`/`!` modifiers around the matcher body, attributes, and
// an optional trailing repeat specifier.
func patternDefinition() adextopa.Matcher {
	return match.ProgramNamed("PatternDefinition",
		match.Assert(match.MatchesRegexp(modifierClashRe), modifierClashMsg),
		match.Optional(match.Switch(
			named(match.Equals("?"), "OuterOptionalModifier"),
			named(match.Equals("!"), "OuterNotModifier"),
		)),
		match.Discard(match.Equals("<")),
		match.Assert(match.MatchesRegexp(modifierClashRe), modifierClashMsg),
		match.Optional(match.Switch(
			named(match.Equals("?"), "InnerOptionalModifier"),
			named(match.Equals("!"), "InnerNotModifier"),
		)),
		wsn0Discard(),
		matcherBody(),
		wsn0Discard(),
		attributes(),
		match.Discard(match.Equals(">")),
		match.Optional(repeatSpecifier()),
	)
}

// patternMatcher recognizes either a captured pattern, `(?'name' <...>)`,
// or a bare PatternDefinition — the "Pattern" production that Program and
// Switch bodies, and the top-level pattern scope, all loop over.
func patternMatcher() adextopa.Matcher {
	return named(match.Switch(
		match.ProgramNamed("PatternDefinitionCaptured",
			match.Discard(match.Equals("(")),
			wsn0Discard(),
			match.Optional(matcherName()),
			wsn0Discard(),
			patternDefinition(),
			wsn0Discard(),
			match.Discard(match.Equals(")")),
		),
		patternDefinition(),
	), "Pattern")
}
