package grammar

import (
	"fmt"
	"math"
	"strconv"

	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/match"
	"github.com/zostay/adextopa/token"
)

// repeatZeroOrMore recognizes `*`.
func repeatZeroOrMore() adextopa.Matcher {
	return named(match.Equals("*"), "RepeatZeroOrMore")
}

// repeatOneOrMore recognizes `+`.
func repeatOneOrMore() adextopa.Matcher {
	return named(match.Equals("+"), "RepeatOneOrMore")
}

// repeatRange recognizes `{n}`, `{n,}`, or `{n,m}`.
func repeatRange() adextopa.Matcher {
	return match.ProgramNamed("RepeatRange",
		match.Discard(match.Equals("{")),
		ws0Discard(),
		named(match.Matches(`\d+`), "Minimum"),
		ws0Discard(),
		match.Optional(named(match.Equals(","), "Separator")),
		ws0Discard(),
		match.Optional(named(match.Matches(`\d+`), "Maximum")),
		ws0Discard(),
		match.Discard(match.Equals("}")),
	)
}

// repeatSpecifier recognizes the full `*` / `+` / `{...}` repeat-specifier
// grammar, appearing after a PatternDefinition's closing `>`.
func repeatSpecifier() adextopa.Matcher {
	return named(match.Switch(
		repeatZeroOrMore(),
		repeatOneOrMore(),
		repeatRange(),
	), "RepeatSpecifier")
}

// repeatSpecifierRange converts a RepeatSpecifier token (one of its three
// alternatives) into the [min, max] iteration bounds Loop expects, per
// spec.md's mapping: `*` -> 0..∞, `+` -> 1..∞, `{n}` -> 0..n, `{n,}` ->
// n..∞, `{n,m}` -> n..m.
func repeatSpecifierRange(t *token.Token) (min, max int, err error) {
	switch t.Name {
	case "RepeatZeroOrMore":
		return 0, 0, nil // 0 == unbounded, by match.Loop's own convention
	case "RepeatOneOrMore":
		return 1, 0, nil
	case "RepeatRange":
		minChild := t.FindChild("Minimum")
		if minChild == nil {
			return 0, 0, fmt.Errorf("adextopa: malformed repeat range: missing minimum")
		}
		minimum, err := strconv.Atoi(minChild.Value())
		if err != nil {
			return 0, 0, err
		}

		if !t.HasChild("Separator") {
			return 0, minimum, nil
		}

		maxChild := t.FindChild("Maximum")
		if maxChild == nil {
			return minimum, 0, nil
		}

		maximum, err := strconv.Atoi(maxChild.Value())
		if err != nil {
			return 0, 0, err
		}
		if maximum < minimum {
			return 0, 0, fmt.Errorf("adextopa: repeat range maximum %d is smaller than minimum %d", maximum, minimum)
		}
		if maximum == math.MaxInt {
			maximum = 0
		}
		return minimum, maximum, nil
	default:
		return 0, 0, fmt.Errorf("adextopa: expected a RepeatZeroOrMore, RepeatOneOrMore, or RepeatRange token, got %q", t.Name)
	}
}
