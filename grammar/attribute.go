package grammar

import (
	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/match"
)

// attribute recognizes a single `name='value'` pair on a PatternDefinition.
// A name starting with an underscore is flagged with a soft Error rather
// than rejected outright: the start offset is pinned via Store+Pin before
// the name is known to be well-formed, then revisited once the whole
// attribute has matched.
func attribute() adextopa.Matcher {
	return match.ProgramNamed("Attribute",
		match.StoreMatcher("AttributeStartOffset", match.Pin("", nil)),
		named(match.Matches(`[\w+_]+`), "Name"),
		ws0Discard(),
		match.Discard(match.Equals("=")),
		ws0Discard(),
		match.PanicNot(match.Equals("'"), "Malformed attribute detected. Attribute value is not single-quoted. The proper format for an attribute is: name='value'"),
		scriptString("Value"),
		match.PinFetch(adextopa.ScopeFetch{Name: "AttributeStartOffset.start"},
			match.Assert(match.MatchesRegexp(attributeNameUnderscore), "Attribute names can not start with an underscore"),
		),
	)
}

// attributes recognizes zero or more whitespace-separated attributes.
func attributes() adextopa.Matcher {
	return match.Optional(match.LoopNamed("Attributes", 1, 0,
		attribute(),
		wsn0Discard(),
	))
}
