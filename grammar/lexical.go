// Package grammar implements the self-hosted pattern-definition language:
// compiling adextopa grammar source into a match.Matcher tree. It is the
// one part of the engine that builds matcher trees from text rather than
// from Go code, the same role the teacher's own generated-from-config
// matchers play, just driven by a richer source language.
package grammar

import (
	"regexp"

	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/match"
)

var (
	identifierRe = regexp.MustCompile(`[a-zA-Z$_][a-zA-Z0-9$_]*`)
	commentRe    = regexp.MustCompile(`#[^\n]*`)
	ws0Re        = regexp.MustCompile(`[^\S\n\r]*`)
	ws1Re        = regexp.MustCompile(`[^\S\n\r]+`)
	wsn0Re       = regexp.MustCompile(`\s*`)
	wsn1Re       = regexp.MustCompile(`\s+`)

	sequenceLeadRe = regexp.MustCompile(`%\s*`)
	sequenceSepRe  = regexp.MustCompile(`\s*,\s*`)

	regexPartRe   = regexp.MustCompile(`[^/\\\[]+`)
	regexEscapeRe = regexp.MustCompile(`\\.`)
	regexFlagsRe  = regexp.MustCompile(`[imsU]+`)

	attributeNameUnderscore = regexp.MustCompile(`_[\w+_]+`)

	modifierClashRe = regexp.MustCompile(`\?!|!\?`)

	adextopaHeaderRe = regexp.MustCompile(`<!--\[adextopa:v`)
)

// named renames a freshly built matcher, relying on the fact that only a
// handful of leaf constructors (Error, Register, Pin, SetScope, ...)
// refuse SetName; the ones used here (Matches, Sequence, Equals, Switch,
// Ref) don't.
func named(m adextopa.Matcher, name string) adextopa.Matcher {
	m.SetName(name)
	return m
}

// identifier matches a bare identifier: a leading letter, `$`, or `_`,
// followed by any number of word characters plus `$`.
func identifier(name string) adextopa.Matcher {
	return named(match.MatchesRegexp(identifierRe), name)
}

// scriptString matches a single-quoted, backslash-escaped string literal,
// naming the produced token name.
func scriptString(name string) adextopa.Matcher {
	return named(match.Sequence("'", "'", "\\"), name)
}

// comment matches a `#` to end-of-line comment.
func comment() adextopa.Matcher {
	return match.ProgramNamed("Comment", match.MatchesRegexp(commentRe))
}

// ws0Discard consumes zero or more non-newline whitespace characters,
// producing no token.
func ws0Discard() adextopa.Matcher {
	return match.Discard(match.MatchesRegexp(ws0Re))
}

// ws1Discard consumes one or more non-newline whitespace characters,
// producing no token.
func ws1Discard() adextopa.Matcher {
	return match.Discard(match.MatchesRegexp(ws1Re))
}

// wsn0Discard consumes zero or more whitespace characters, including
// newlines, producing no token.
func wsn0Discard() adextopa.Matcher {
	return match.Discard(match.MatchesRegexp(wsn0Re))
}

// wsn1Discard consumes one or more whitespace characters, including
// newlines, producing no token.
func wsn1Discard() adextopa.Matcher {
	return match.Discard(match.MatchesRegexp(wsn1Re))
}
