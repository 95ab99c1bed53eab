package grammar

import (
	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/match"
)

// equalsMatcherBody recognizes `='literal'`.
func equalsMatcherBody() adextopa.Matcher {
	return match.ProgramNamed("EqualsMatcher",
		match.Discard(match.Equals("=")),
		scriptString("String"),
	)
}

// sequenceMatcherBody recognizes `%'start','end','escape'`.
func sequenceMatcherBody() adextopa.Matcher {
	return match.ProgramNamed("SequenceMatcher",
		match.Discard(match.MatchesRegexp(sequenceLeadRe)),
		scriptString("StartPattern"),
		match.Discard(match.MatchesRegexp(sequenceSepRe)),
		scriptString("EndPattern"),
		match.Discard(match.MatchesRegexp(sequenceSepRe)),
		scriptString("EscapePattern"),
	)
}

// regexMatcherBody recognizes `/.../flags`, scanning character by character
// rather than with a single regex so that escape sequences and bracket
// classes can contain an unescaped closing `/`.
//
// The leading Part and the trailing flags are both matched one-or-more
// wrapped in Optional rather than the bare zero-or-more form: either is a
// legitimate zero-width capture on its own (a regex can open with a
// bracket expression, and a regex can carry no flags at all), and
// RegexCaptureLoop's forward-progress guard rejects a zero-width
// non-error token the same way any other Loop body does. Optional
// sidesteps this by producing no token at all (a Skip), rather than an
// empty one, whenever there's nothing to capture in that position.
func regexMatcherBody() adextopa.Matcher {
	return match.ProgramNamed("RegexMatcher",
		match.Discard(match.Equals("/")),
		match.Flatten(match.LoopNamed("RegexCaptureLoop", 0, 0,
			match.Optional(named(match.MatchesRegexp(regexPartRe), "Part")),
			match.Switch(
				named(match.MatchesRegexp(regexEscapeRe), "Part"),
				match.Flatten(match.Program(
					match.Discard(match.Equals("/")),
					match.Optional(named(match.MatchesRegexp(regexFlagsRe), "Flags")),
					match.Break("RegexCaptureLoop"),
				)),
				named(match.Sequence("[", "]", "\\"), "Part"),
			),
		)),
	)
}

// customMatcherBody recognizes a bare identifier, resolved through scope by
// Ref at translation time.
func customMatcherBody() adextopa.Matcher {
	return match.ProgramNamed("CustomMatcher", identifier("Identifier"))
}

// programMatcherBody recognizes `{ pat1 pat2 ... }`. Its loop body refers
// to "Pattern" through Ref rather than calling patternMatcher directly:
// Pattern's own construction reaches back here through "Matcher", and
// building both sides eagerly would recurse forever. Ref defers the
// lookup to scope at evaluation time instead, the grammar's own documented
// cycle-handling mechanism (spec.md §4.11).
func programMatcherBody() adextopa.Matcher {
	return match.ProgramNamed("ProgramMatcher",
		match.Discard(match.Equals("{")),
		match.Flatten(match.Loop(0, 0,
			wsn0Discard(),
			match.Ref("Pattern"),
			wsn0Discard(),
			match.Discard(match.Optional(match.Program(
				match.Discard(match.Equals("}")),
				match.Break(""),
			))),
		)),
	)
}

// switchMatcherBody recognizes `[ pat1 | pat2 | ... ]`, referring to
// "Pattern" through Ref for the same reason programMatcherBody does.
func switchMatcherBody() adextopa.Matcher {
	return match.ProgramNamed("SwitchMatcher",
		match.Discard(match.Equals("[")),
		match.Flatten(match.Loop(0, 0,
			wsn0Discard(),
			match.Switch(
				match.Discard(match.Program(match.Discard(match.Equals("]")), match.Break(""))),
				match.Ref("Pattern"),
			),
			wsn0Discard(),
			match.Discard(match.Switch(
				match.Equals("|"),
				match.Program(match.Discard(match.Equals("]")), match.Break("")),
			)),
		)),
	)
}

// matcherName recognizes the `?'name'` matcher-naming prefix.
func matcherName() adextopa.Matcher {
	return match.ProgramNamed("MatcherName",
		match.Discard(match.Equals("?")),
		scriptString("Name"),
	)
}

// matcherBody recognizes a PatternDefinition's matcher body: one of the six
// forms spec.md names. The source's own ScriptMatcher! macro only
// alternates Regex/Equals/Sequence directly, referring to the other three
// by name elsewhere; Custom/Program/Switch are referred to here by Ref for
// the same reason, matching the grammar's documented, authoritative
// six-form surface (spec.md §4.11/§6) rather than the narrower direct
// alternation.
func matcherBody() adextopa.Matcher {
	return named(match.Switch(
		equalsMatcherBody(),
		regexMatcherBody(),
		sequenceMatcherBody(),
		match.Ref("ProgramMatcher"),
		match.Ref("SwitchMatcher"),
		match.Ref("CustomMatcher"),
	), "Matcher")
}
