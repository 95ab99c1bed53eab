package grammar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zostay/adextopa"
	"github.com/zostay/adextopa/match"
	"github.com/zostay/adextopa/token"
)

// matcherBodyNames lists the six token names matcherBody can produce,
// whichever of EqualsMatcher/RegexMatcher/SequenceMatcher/ProgramMatcher/
// SwitchMatcher/CustomMatcher actually matched.
var matcherBodyNames = map[string]bool{
	"EqualsMatcher":   true,
	"RegexMatcher":    true,
	"SequenceMatcher": true,
	"ProgramMatcher":  true,
	"SwitchMatcher":   true,
	"CustomMatcher":   true,
}

// repeatSpecifierNames lists the three token names repeatSpecifier can
// produce.
var repeatSpecifierNames = map[string]bool{
	"RepeatZeroOrMore": true,
	"RepeatOneOrMore":  true,
	"RepeatRange":      true,
}

func findChildAny(t *token.Token, names map[string]bool) *token.Token {
	for _, c := range t.Children {
		if names[c.Name] {
			return c
		}
	}
	return nil
}

// constructMatcherFromInnerDefinition turns one of the six matcher-body
// token shapes into the matcher it describes.
func constructMatcherFromInnerDefinition(mt *token.Token) (adextopa.Matcher, error) {
	switch mt.Name {
	case "EqualsMatcher":
		if len(mt.Children) == 0 {
			return nil, fmt.Errorf("adextopa: EqualsMatcher is missing its literal value")
		}
		value := mt.Children[0].Value()
		if value == "" {
			return nil, fmt.Errorf("adextopa: EqualsMatcher literal value must not be empty")
		}
		return match.Equals(value), nil

	case "RegexMatcher":
		var parts []string
		for _, c := range mt.Children {
			if c.Name == "Part" {
				// RawValue, not Value: a bracket-expression Part comes
				// through Sequence, whose Value() strips the `[`/`]`
				// delimiters. The regex text needs them back.
				parts = append(parts, c.RawValue())
			}
		}
		value := strings.Join(parts, "")
		if value == "" {
			return nil, fmt.Errorf("adextopa: RegexMatcher is missing its pattern")
		}
		if flags := mt.FindChild("Flags"); flags != nil {
			value = "(?" + flags.Value() + ")" + value
		}
		return match.Matches(value), nil

	case "SequenceMatcher":
		start := mt.FindChild("StartPattern")
		end := mt.FindChild("EndPattern")
		if start == nil || start.Value() == "" {
			return nil, fmt.Errorf("adextopa: SequenceMatcher is missing its start pattern")
		}
		if end == nil || end.Value() == "" {
			return nil, fmt.Errorf("adextopa: SequenceMatcher is missing its end pattern")
		}
		escape := ""
		if e := mt.FindChild("EscapePattern"); e != nil {
			escape = e.Value()
		}
		return match.Sequence(start.Value(), end.Value(), escape), nil

	case "CustomMatcher":
		ident := mt.FindChild("Identifier")
		if ident == nil || ident.Value() == "" {
			return nil, fmt.Errorf("adextopa: CustomMatcher is missing its identifier")
		}
		return match.Ref(ident.Value()), nil

	case "ProgramMatcher", "SwitchMatcher":
		if len(mt.Children) == 0 {
			return match.Null(), nil
		}
		built := make([]adextopa.Matcher, 0, len(mt.Children))
		for _, c := range mt.Children {
			m, _, err := constructMatcherFromPattern(c)
			if err != nil {
				return nil, err
			}
			built = append(built, m)
		}
		if mt.Name == "ProgramMatcher" {
			return match.Program(built...), nil
		}
		return match.Switch(built...), nil

	default:
		return nil, fmt.Errorf("adextopa: unrecognized matcher body %q", mt.Name)
	}
}

// attributeValues collects a PatternDefinition's Attributes child into a
// plain name/value map, or nil if there are none.
func attributeValues(attrs *token.Token) map[string]string {
	if attrs == nil {
		return nil
	}
	values := make(map[string]string)
	for _, a := range attrs.Children {
		if a.Name != "Attribute" {
			continue
		}
		name := a.FindChild("Name")
		value := a.FindChild("Value")
		if name == nil || value == nil {
			continue
		}
		values[name.Value()] = value.Value()
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

// withAttributes wraps inner so that, on a successful match, each of attrs
// is set on the produced token unless that attribute is already present
// (an explicit value set downstream, e.g. by Sequence, wins).
func withAttributes(inner adextopa.Matcher, attrs map[string]string) adextopa.Matcher {
	return match.Map(inner,
		func(_ *adextopa.ParserContext, result adextopa.MatcherSuccess) (adextopa.MatcherSuccess, error) {
			if result.Kind == adextopa.SuccessToken {
				for k, v := range attrs {
					if _, ok := result.Token.Attributes[k]; !ok {
						result.Token.Attributes[k] = v
					}
				}
			}
			return result, nil
		},
		nil,
	)
}

// constructMatcherFromPatternDefinition turns a PatternDefinition token
// into the matcher it describes: the matcher body, named if name is
// non-empty, then with attributes, the Inner Optional/Not modifier, a
// repeat specifier and the Outer Optional/Not modifier applied in that
// order, and discarded if the pattern wasn't written in captured form.
func constructMatcherFromPatternDefinition(t *token.Token, name string, captured bool) (adextopa.Matcher, error) {
	if t.Name != "PatternDefinition" {
		return nil, fmt.Errorf("adextopa: expected a PatternDefinition token, got %q", t.Name)
	}

	body := findChildAny(t, matcherBodyNames)
	if body == nil {
		return nil, fmt.Errorf("adextopa: PatternDefinition has no matcher body")
	}

	m, err := constructMatcherFromInnerDefinition(body)
	if err != nil {
		return nil, err
	}

	if name != "" {
		m.SetName(name)
	}

	if attrs := attributeValues(t.FindChild("Attributes")); attrs != nil {
		m = withAttributes(m, attrs)
	}

	switch {
	case t.HasChild("InnerOptionalModifier"):
		m = match.Optional(m)
	case t.HasChild("InnerNotModifier"):
		m = match.Not(m)
	}

	if rep := findChildAny(t, repeatSpecifierNames); rep != nil {
		min, max, rerr := repeatSpecifierRange(rep)
		if rerr != nil {
			return nil, rerr
		}
		m = match.Loop(min, max, m)
	}

	switch {
	case t.HasChild("OuterOptionalModifier"):
		m = match.Optional(m)
	case t.HasChild("OuterNotModifier"):
		m = match.Not(m)
	}

	if !captured {
		m = match.Discard(m)
	}

	return m, nil
}

// constructMatcherFromPattern dispatches a "Pattern" production's actual
// token (PatternDefinitionCaptured or bare PatternDefinition) to
// constructMatcherFromPatternDefinition, returning the matcher it builds
// along with whatever name it was bound to (empty for a bare definition or
// an unnamed captured one).
func constructMatcherFromPattern(t *token.Token) (matcher adextopa.Matcher, name string, err error) {
	switch t.Name {
	case "PatternDefinitionCaptured":
		def := t.FindChild("PatternDefinition")
		if def == nil {
			return nil, "", fmt.Errorf("adextopa: PatternDefinitionCaptured is missing its PatternDefinition")
		}
		if mn := t.FindChild("MatcherName"); mn != nil {
			if n := mn.FindChild("Name"); n != nil {
				name = n.Value()
			}
		}
		matcher, err = constructMatcherFromPatternDefinition(def, name, true)
		return matcher, name, err
	case "PatternDefinition":
		matcher, err = constructMatcherFromPatternDefinition(t, "", false)
		return matcher, "", err
	default:
		return nil, "", fmt.Errorf("adextopa: expected a Pattern token, got %q", t.Name)
	}
}

// importIdentifierRef is one normalized entry of an ImportStatement: the
// name to look up in the imported file (or "_" for its whole root matcher)
// and the name to bind it under locally.
type importIdentifierRef struct {
	identifier string
	bindName   string
}

// importIdentifierRefs normalizes both of importStatement's grammar forms
// (a named list, or a single path with an optional alias) into one shape.
// The single-path form has no source name to import by, only the whole
// file's root matcher, so it is always normalized to "_"; its bind name
// defaults to the imported file's base name, sans extension, when no `as`
// alias was written.
func importIdentifierRefs(t *token.Token, path string) []importIdentifierRef {
	if list := t.FindChild("ImportIdentifiers"); list != nil {
		refs := make([]importIdentifierRef, 0, len(list.Children))
		for _, c := range list.Children {
			if c.Name != "ImportIdentifier" {
				continue
			}
			ident := c.FindChild("ImportName")
			if ident == nil {
				continue
			}
			bindName := ident.Value()
			if asName := c.FindChild("ImportAsName"); asName != nil {
				bindName = asName.Value()
			}
			refs = append(refs, importIdentifierRef{identifier: ident.Value(), bindName: bindName})
		}
		return refs
	}

	bindName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if asName := t.FindChild("ImportAsName"); asName != nil {
		bindName = asName.Value()
	}
	return []importIdentifierRef{{identifier: "_", bindName: bindName}}
}

// compileUnit is the outcome of compiling one grammar source file: its
// root matcher, plus a registry of the matchers every AssignmentExpression
// in it bound a name to, used to resolve a named import from elsewhere.
type compileUnit struct {
	root     adextopa.Matcher
	registry map[string]adextopa.Matcher
}

// buildMatcherFromTokens walks a tokenized "Script" tree and assembles the
// matcher tree it describes: a root Program carrying a Register of every
// top-level AssignmentExpression and ImportStatement binding, followed by
// each pattern the PatternScope defines directly.
//
// dir is the directory imported paths are resolved relative to; an empty
// dir makes any ImportStatement an error, mirroring the restriction that
// imports are only available when compiling from a named file.
func buildMatcherFromTokens(root *token.Token, name, dir string) (*compileUnit, error) {
	if root.Name != "Script" {
		return nil, fmt.Errorf("adextopa: expected a Script token, got %q", root.Name)
	}

	registerMatchers := match.Register()
	rootMatcher := match.ProgramNamed(name, registerMatchers)
	registry := make(map[string]adextopa.Matcher)

	var walkErr error

	v := token.NewVisitor()

	v.On("AssignmentExpression", func(t *token.Token) {
		if walkErr != nil || len(t.Children) < 2 {
			return
		}
		matcherName := t.Children[0].Value()
		value := t.Children[1]

		var m adextopa.Matcher
		switch value.Name {
		case "Identifier":
			m = named(match.Ref(value.Value()), matcherName)
		case "PatternDefinition":
			built, err := constructMatcherFromPatternDefinition(value, matcherName, true)
			if err != nil {
				walkErr = err
				return
			}
			m = named(match.RefFetch(adextopa.LiteralMatcher{M: built}), matcherName)
		default:
			walkErr = fmt.Errorf("adextopa: AssignmentExpression value must be an Identifier or PatternDefinition, got %q", value.Name)
			return
		}

		registerMatchers.AddPattern(m)
		registry[matcherName] = m
	})

	v.On("ImportStatement", func(t *token.Token) {
		if walkErr != nil {
			return
		}
		if dir == "" {
			walkErr = fmt.Errorf("adextopa: import statements are forbidden when not compiling from a file")
			return
		}

		pathTok := t.FindChild("Path")
		if pathTok == nil {
			walkErr = fmt.Errorf("adextopa: ImportStatement is missing its path")
			return
		}
		path := pathTok.Value()

		fullPath, err := filepath.Abs(filepath.Join(dir, path))
		if err != nil {
			walkErr = err
			return
		}

		imported, err := compileFile(fullPath)
		if err != nil {
			walkErr = fmt.Errorf("adextopa: importing %q: %w", path, err)
			return
		}

		scope := adextopa.NewScopeContext()
		for _, ref := range importIdentifierRefs(t, path) {
			var target adextopa.Matcher
			if ref.identifier == "_" {
				target = imported.root
			} else {
				found, ok := imported.registry[ref.identifier]
				if !ok {
					walkErr = fmt.Errorf("adextopa: failed to import %q from %q: not found", ref.identifier, path)
					return
				}
				target = found
			}

			bound := named(match.RefFetch(adextopa.LiteralMatcher{M: match.SetScope(scope, target)}), ref.bindName)
			registerMatchers.AddPattern(bound)
			registry[ref.bindName] = bound
		}
	})

	v.On("PatternScope", func(t *token.Token) {
		if walkErr != nil {
			return
		}
		for _, child := range t.Children {
			if child.Name != "PatternDefinitionCaptured" && child.Name != "PatternDefinition" {
				continue
			}
			m, _, err := constructMatcherFromPattern(child)
			if err != nil {
				walkErr = err
				return
			}
			rootMatcher.AddPattern(m)
		}
	})

	v.Walk(root)

	if walkErr != nil {
		return nil, walkErr
	}

	return &compileUnit{root: rootMatcher, registry: registry}, nil
}

// compileSource tokenizes a grammar source string and translates it into a
// matcher tree. dir resolves ImportStatement paths; pass "" to forbid them
// (compiling a source string with no file of origin).
func compileSource(source, name, dir string) (*compileUnit, error) {
	parser := adextopa.NewParser(source)
	ctx := adextopa.NewContext(parser, name)
	scope := adextopa.NewScopeContext()

	root, err := adextopa.Tokenize(ctx, scope, script())
	if err != nil {
		if adextopa.IsFail(err) {
			return nil, fmt.Errorf("adextopa: invalid syntax")
		}
		return nil, fmt.Errorf("adextopa: %w", err)
	}

	if errs := token.CollectErrors(root); len(errs) > 0 {
		return nil, fmt.Errorf("adextopa: %s", errs[0].Message())
	}

	return buildMatcherFromTokens(root, name, dir)
}

// compileFile compiles the grammar source at path, resolving any
// ImportStatement relative to path's own directory.
func compileFile(path string) (*compileUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("adextopa: reading %q: %w", path, err)
	}
	return compileSource(string(data), path, filepath.Dir(path))
}

// Compile compiles grammar source held in memory, under the given name,
// with imports disabled (there is no file to resolve them against).
func Compile(source, name string) (adextopa.Matcher, error) {
	unit, err := compileSource(source, name, "")
	if err != nil {
		return nil, err
	}
	return unit.root, nil
}

// CompileFile compiles the grammar source file at path, naming the result
// after path and resolving any ImportStatement relative to its directory.
func CompileFile(path string) (adextopa.Matcher, error) {
	unit, err := compileFile(path)
	if err != nil {
		return nil, err
	}
	return unit.root, nil
}
