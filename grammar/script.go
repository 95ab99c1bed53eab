package grammar

import (
	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/match"
	"github.com/zostay/adextopa/token"
)

// assignmentExpression recognizes `name = <pattern>` or `name = otherName`,
// a top-level named pattern binding.
func assignmentExpression() adextopa.Matcher {
	return match.ProgramNamed("AssignmentExpression",
		identifier("Identifier"),
		wsn0Discard(),
		match.Discard(match.Equals("=")),
		wsn0Discard(),
		match.Switch(
			identifier("Identifier"),
			patternDefinition(),
		),
	)
}

// importIdentifier recognizes one entry of a named-import list: `name` or
// `name as alias`.
func importIdentifier() adextopa.Matcher {
	return match.ProgramNamed("ImportIdentifier",
		identifier("ImportName"),
		match.Optional(match.Flatten(match.Program(
			wsn1Discard(),
			match.Discard(match.Equals("as")),
			wsn1Discard(),
			identifier("ImportAsName"),
		))),
	)
}

// importNamedList recognizes `{ a, b as c } from 'path'`.
func importNamedList() adextopa.Matcher {
	return match.Program(
		match.Discard(match.Equals("{")),
		wsn0Discard(),
		match.LoopNamed("ImportIdentifiers", 1, 0,
			importIdentifier(),
			wsn0Discard(),
			match.Discard(match.Optional(match.Equals(","))),
			wsn0Discard(),
		),
		match.Discard(match.Equals("}")),
		wsn1Discard(),
		match.Discard(match.Equals("from")),
		wsn1Discard(),
		scriptString("Path"),
	)
}

// importSingle recognizes `'path' [as name]`, importing the file's root
// matcher bound under name, or under the file's base name (without its
// extension) when no name is given.
func importSingle() adextopa.Matcher {
	return match.Program(
		scriptString("Path"),
		match.Optional(match.Flatten(match.Program(
			wsn1Discard(),
			match.Discard(match.Equals("as")),
			wsn1Discard(),
			identifier("ImportAsName"),
		))),
	)
}

// importStatement recognizes `import 'path' [as name]` or
// `import { a, b as c } from 'path'`.
func importStatement() adextopa.Matcher {
	return match.ProgramNamed("ImportStatement",
		match.Discard(match.Equals("import")),
		wsn1Discard(),
		match.Switch(
			match.Flatten(importNamedList()),
			match.Flatten(importSingle()),
		),
	)
}

// adextopaScope recognizes the optional `<!--[adextopa:v<N>] ... -->`
// version header, containing its own nested scope of comments, imports,
// and assignments. The Scope loop ends when the closing `-->` is next
// (a non-consuming Pin lookahead followed by Break); other content inside
// the header is not skipped, so the header then does not match.
func adextopaScope() adextopa.Matcher {
	return match.ProgramNamed("AdextopaScope",
		match.Discard(match.MatchesRegexp(adextopaHeaderRe)),
		match.Switch(
			named(match.Matches(`\d+`), "Version"),
			match.Fatal("You must specify an ADEXTOPA version in your `adextopa:` scope: i.e. `<!--[adextopa:v{version}`"),
		),
		match.Discard(match.Equals("]")),
		match.Optional(match.LoopNamed("Scope", 0, 0,
			wsn0Discard(),
			match.Switch(
				comment(),
				importStatement(),
				assignmentExpression(),
				match.Discard(match.Program(
					match.Discard(match.Pin("", match.Equals("-->"))),
					match.Break(""),
				)),
			),
		)),
		match.Discard(match.Equals("-->")),
	)
}

// patternScope recognizes the top-level run of comments and pattern
// definitions that make up a script's body, failing with a diagnostic
// Error token if anything is left unconsumed at the end.
func patternScope() adextopa.Matcher {
	return match.Map(
		match.LoopNamed("PatternScope", 1, 0,
			wsn0Discard(),
			match.Switch(
				comment(),
				patternMatcher(),
			),
		),
		func(ctx *adextopa.ParserContext, result adextopa.MatcherSuccess) (adextopa.MatcherSuccess, error) {
			if result.Kind != adextopa.SuccessToken {
				return result, nil
			}
			t := result.Token
			if t.MatchedRange.End < len(ctx.Source()) {
				r := token.NewRange(t.MatchedRange.End, t.MatchedRange.End)
				errTok := token.New("Error", ctx.Source(), r)
				errTok.Attributes["__message"] = "Syntax error. Expected a pattern definition, but instead found: " +
					ctx.Source()[t.MatchedRange.End:]
				errTok.Attributes["__is_error"] = "true"
				return adextopa.Success(errTok), nil
			}
			return result, nil
		},
		nil,
	)
}

// script recognizes a complete pattern-definition source file: a leading
// run of comments, an optional version header, then the pattern scope.
func script() adextopa.Matcher {
	return match.ProgramNamed("Script",
		match.Discard(registerSelfHostedMatchers()),
		match.Optional(match.LoopNamed("PreHead", 0, 0,
			wsn0Discard(),
			comment(),
		)),
		wsn0Discard(),
		match.Optional(adextopaScope()),
		patternScope(),
	)
}
