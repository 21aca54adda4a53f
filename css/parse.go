package css

import (
	"strings"

	"github.com/npillmayer/stylecore/grammar"
	"github.com/npillmayer/stylecore/messages"
	"github.com/npillmayer/stylecore/token"
)

func loc(t token.Token) messages.Location {
	return messages.Location{Filename: t.Loc.Filename, Line: t.Loc.Line, Column: t.Loc.Column, Offset: t.Loc.Offset, Length: t.Loc.Length}
}

func skipSpace(lx *token.Lexer) {
	for lx.Peek().Kind == token.Space {
		lx.Next()
	}
}

// atDeclarationEnd reports whether lx is positioned at a top-level
// terminator for a declaration value: a semicolon, a closing brace (the end
// of the enclosing rule, not consumed here), or EOF.
func atDeclarationEnd(lx *token.Lexer) bool {
	k := lx.Peek().Kind
	return k == token.Semicolon || k == token.RightBrace || k == token.EOF
}

// skipToDeclarationEnd consumes tokens up to (but not including) the next
// top-level `;`/`}`/EOF, tracking bracket/paren/brace nesting so commas and
// parens inside e.g. a function call don't prematurely end a malformed
// declaration's recovery skip.
func skipToDeclarationEnd(lx *token.Lexer) {
	depth := 0
	for {
		t := lx.Peek()
		switch t.Kind {
		case token.EOF:
			return
		case token.Semicolon, token.RightBrace:
			if depth == 0 {
				return
			}
			if t.Kind == token.RightBrace {
				depth--
			}
		case token.LeftParen, token.LeftBracket, token.LeftBrace, token.Function:
			depth++
		case token.RightParen, token.RightBracket:
			if depth > 0 {
				depth--
			}
		}
		lx.Next()
	}
}

// tryParseImportant consumes a trailing `!important` token (with any
// surrounding whitespace) if present, reporting whether one was found.
func tryParseImportant(lx *token.Lexer) bool {
	skipSpace(lx)
	if lx.Peek().Kind == token.Important {
		lx.Next()
		return true
	}
	return false
}

// ParseDeclaration parses one `name: value[ !important]` declaration body,
// with lx positioned immediately after the `:` that introduced it. It always
// returns a StyleProperty (Flags.Valid is false for an unknown property name
// or an unparseable value), and always leaves lx positioned at the
// declaration's terminating `;`/`}`/EOF, whatever happened while parsing the
// value. This bracket-nesting-aware error recovery keeps one bad declaration
// from desynchronizing the rest of the rule body.
func ParseDeclaration(rawName string, lx *token.Lexer, msgs *messages.Messages) StyleProperty {
	name := normalizePropertyName(rawName)
	start := lx.Position()
	skipSpace(lx)

	if kw := tryConsumeCSSWideKeyword(lx); kw != "" {
		important := tryParseImportant(lx)
		skipSpace(lx)
		flags := PropertyFlags{Valid: true, Important: important}
		cssWideKeywords[kw](&flags)
		if !atDeclarationEnd(lx) {
			lx.Rewind(start)
			return parseOpaqueInvalid(name, lx, msgs)
		}
		kind := Unknown
		if def, ok := propertyTable[name]; ok {
			kind = def.kind
		}
		return StyleProperty{Kind: kind, Name: name, Flags: flags}
	}

	def, known := propertyTable[name]
	if !known {
		return parseOpaqueInvalid(name, lx, msgs)
	}

	v, ok := attemptValue(lx, msgs, def.syntax)
	if !ok {
		msgs.Errorf(loc(lx.Peek()), "invalid value for property %q", name)
		skipToDeclarationEnd(lx)
		return StyleProperty{Kind: def.kind, Name: name, Flags: PropertyFlags{Valid: false}}
	}
	if def.convert != nil {
		converted, ok := def.convert(v)
		if !ok {
			msgs.Errorf(loc(lx.Peek()), "invalid value for property %q", name)
			skipToDeclarationEnd(lx)
			return StyleProperty{Kind: def.kind, Name: name, Flags: PropertyFlags{Valid: false}}
		}
		v = converted
	}

	important := tryParseImportant(lx)
	skipSpace(lx)
	if !atDeclarationEnd(lx) {
		msgs.Errorf(loc(lx.Peek()), "unexpected trailing tokens in value for property %q", name)
		skipToDeclarationEnd(lx)
		return StyleProperty{Kind: def.kind, Name: name, Flags: PropertyFlags{Valid: false}}
	}

	prop := StyleProperty{Kind: def.kind, Name: name, Value: v, Flags: PropertyFlags{Valid: true, Important: important}}
	if prop.IsShorthand() {
		return decomposeShorthand(prop)
	}
	return prop
}

// attemptValue runs a value grammar at the current position without the
// leading-whitespace skip attempt() normally performs a second time (we
// already skipped it above), for clarity at the one call site that needs
// the raw (lx, msgs) -> (any, bool) shape.
func attemptValue(lx *token.Lexer, msgs *messages.Messages, m grammar.Matcher) (any, bool) {
	return m(lx, msgs)
}

func tryConsumeCSSWideKeyword(lx *token.Lexer) string {
	t := lx.Peek()
	if t.Kind != token.Ident {
		return ""
	}
	low := strings.ToLower(t.Text)
	if _, ok := cssWideKeywords[low]; !ok {
		return ""
	}
	lx.Next()
	return low
}

func parseOpaqueInvalid(name string, lx *token.Lexer, msgs *messages.Messages) StyleProperty {
	msgs.Warnf(loc(lx.Peek()), "unknown property %q", name)
	skipToDeclarationEnd(lx)
	return StyleProperty{Kind: Unknown, Name: name, Flags: PropertyFlags{Valid: false}}
}

// decomposeShorthand expands a successfully-parsed shorthand's raw grammar
// result into the []any of its longhand values (in longhand order), stored
// as the shorthand StyleProperty's Value; Property.Decompose turns that
// slice into the longhand StyleProperty set.
func decomposeShorthand(p StyleProperty) StyleProperty {
	values := shorthandValues(p.Kind, p.Value)
	p.Value = values
	return p
}

// shorthandValues normalizes a shorthand's raw grammar result (which may be
// a plain []any in longhand order, an edge-expansion []any of 1-4 values, or
// an AnyOrder() result already indexed by alternative) into the []any
// Decompose expects.
func shorthandValues(kind KnownPropertyKind, raw any) []any {
	switch kind {
	case PropMargin, PropPadding, PropBorderWidth, PropBorderColor, PropBorderStyle:
		if vs, ok := raw.([]any); ok {
			return edgeValues(vs)
		}
	case PropBorder:
		// AnyOrder(width, style, color) yields one value per alternative;
		// `border` applies each uniformly to all four edges.
		if vs, ok := raw.([]any); ok && len(vs) == 3 {
			out := make([]any, 0, 12)
			for _, v := range vs {
				out = append(out, v, v, v, v)
			}
			return out
		}
	case PropBackground:
		// AnyOrder(color, image, position) yields three slots; repeat and
		// attachment are not part of the grammar and are left unspecified.
		if vs, ok := raw.([]any); ok && len(vs) == 3 {
			return []any{vs[0], vs[1], nil, nil, vs[2]}
		}
	}
	if vs, ok := raw.([]any); ok {
		return vs
	}
	return []any{raw}
}
