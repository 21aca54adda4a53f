package css

import (
	"github.com/npillmayer/stylecore/messages"
	"github.com/npillmayer/stylecore/selector"
	"github.com/npillmayer/stylecore/token"
)

// Rule is one parsed style rule: a selector group paired with its
// declaration block.
type Rule struct {
	Selectors    *selector.CompoundSelector
	Declarations StylePropertySet
}

// Stylesheet is a parsed, ordered sequence of style rules. At-rules
// (@media, @import, @font-face, ...) are consumed and skipped whole —
// conditional and descriptor at-rules are out of scope for the cascade.
type Stylesheet struct {
	Rules []Rule
}

// ParseStylesheet parses an entire CSS stylesheet, recovering from malformed
// rules by skipping to the next top-level `}` so one bad rule cannot corrupt
// the rest of the sheet.
func ParseStylesheet(src, filename string, msgs *messages.Messages) Stylesheet {
	lx := token.New(src, filename, msgs)
	return parseStylesheetFromLexer(lx, msgs)
}

// TryParseStylesheet parses src in strict mode, returning an error built
// from the first diagnostic if parsing produced any errors.
func TryParseStylesheet(src, filename string) (Stylesheet, error) {
	msgs := messages.New()
	msgs.SetStrict(true)
	sheet := ParseStylesheet(src, filename, msgs)
	return sheet, msgs.ErrIfFailed()
}

func parseStylesheetFromLexer(lx *token.Lexer, msgs *messages.Messages) Stylesheet {
	var sheet Stylesheet
	for {
		skipSpace(lx)
		t := lx.Peek()
		switch t.Kind {
		case token.EOF:
			return sheet
		case token.CDO, token.CDC:
			lx.Next()
			continue
		case token.AtKeyword:
			skipAtRule(lx)
			continue
		}
		rule, ok := parseRule(lx, msgs)
		if ok {
			sheet.Rules = append(sheet.Rules, rule)
		}
	}
}

// skipAtRule consumes an at-rule wholesale: either up to its terminating
// `;` (e.g. @import "x.css";) or, if it has a brace body, up to and
// including the matching `}` (brace-depth aware, so a nested @media block's
// inner rules don't prematurely close it).
func skipAtRule(lx *token.Lexer) {
	depth := 0
	for {
		t := lx.Next()
		switch t.Kind {
		case token.EOF:
			return
		case token.Semicolon:
			if depth == 0 {
				return
			}
		case token.LeftBrace:
			depth++
		case token.RightBrace:
			depth--
			if depth <= 0 {
				return
			}
		}
	}
}

// parseRule parses one `selector-group { declaration* }` rule. On a
// malformed selector it reports an error and skips to the next top-level `}`
// (or EOF), returning ok=false. A block cut off by EOF ends there: the rule
// is returned with the declarations read so far.
func parseRule(lx *token.Lexer, msgs *messages.Messages) (Rule, bool) {
	sel, ok := selector.ParseFromLexer(lx, msgs)
	skipSpace(lx)
	if !ok || lx.Peek().Kind != token.LeftBrace {
		msgs.Errorf(loc(lx.Peek()), "malformed rule, expected selector followed by '{'")
		skipToRuleEnd(lx)
		return Rule{}, false
	}
	lx.Next() // consume '{'

	var decls []StyleProperty
	for {
		skipSpace(lx)
		t := lx.Peek()
		if t.Kind == token.RightBrace || t.Kind == token.EOF {
			if t.Kind == token.RightBrace {
				lx.Next()
			}
			break
		}
		if t.Kind == token.Semicolon {
			lx.Next()
			continue
		}
		if t.Kind != token.Ident {
			msgs.Errorf(loc(t), "expected property name")
			skipToDeclarationEnd(lx)
			consumeDeclarationTerminator(lx)
			continue
		}
		name := t.Text
		lx.Next()
		skipSpace(lx)
		if lx.Peek().Kind != token.Colon {
			msgs.Errorf(loc(lx.Peek()), "expected ':' after property name %q", name)
			skipToDeclarationEnd(lx)
			consumeDeclarationTerminator(lx)
			continue
		}
		lx.Next() // consume ':'
		prop := ParseDeclaration(name, lx, msgs)
		decls = append(decls, prop)
		consumeDeclarationTerminator(lx)
	}

	return Rule{Selectors: sel, Declarations: NewStylePropertySet(decls...)}, true
}

func consumeDeclarationTerminator(lx *token.Lexer) {
	skipSpace(lx)
	if lx.Peek().Kind == token.Semicolon {
		lx.Next()
	}
}

// skipToRuleEnd consumes tokens up to and including the next top-level `}`,
// used to recover from a rule whose selector or opening brace was malformed.
func skipToRuleEnd(lx *token.Lexer) {
	depth := 0
	for {
		t := lx.Next()
		switch t.Kind {
		case token.EOF:
			return
		case token.LeftBrace:
			depth++
		case token.RightBrace:
			depth--
			if depth <= 0 {
				return
			}
		}
	}
}
