package selector

import (
	"strings"

	"github.com/npillmayer/stylecore/internal/fp/result"
	"github.com/npillmayer/stylecore/messages"
	"github.com/npillmayer/stylecore/token"
)

// Parse parses text as a CompoundSelector, recording diagnostics into msgs
// (which may be nil). It returns (selector, true) on success or (nil,
// false) if the text does not form a valid compound_selector.
func Parse(text, filename string, msgs *messages.Messages) (*CompoundSelector, bool) {
	lx := token.New(text, filename, msgs)
	cs, ok := ParseFromLexer(lx, msgs)
	if !ok {
		return nil, false
	}
	skipSpace(lx)
	if p := lx.Next(); p.Kind != token.EOF {
		msgs.Errorf(loc(p), "unexpected trailing input after selector: %q", p.Text)
		return nil, false
	}
	return cs, true
}

// TryParse is the Result-style counterpart of Parse: it runs in strict mode
// against a fresh Messages collection and turns any recorded error into a Go
// error, using the Ok/Err outcome-carrier pattern.
func TryParse(text string) result.Result[*CompoundSelector] {
	msgs := messages.New()
	msgs.SetStrict(true)
	cs, ok := Parse(text, "<selector>", msgs)
	if !ok || msgs.HasErrors() {
		return result.Err[*CompoundSelector](msgs.ErrIfFailed())
	}
	return result.Ok(cs)
}

// ParseFromLexer parses a compound_selector starting at the lexer's current
// position, stopping before the first token that cannot continue the
// selector grammar (typically '{'). It is the entry point the stylesheet
// parser in package css uses, since it must not itself consume the
// following '{'.
func ParseFromLexer(lx *token.Lexer, msgs *messages.Messages) (*CompoundSelector, bool) {
	var sels []*Selector
	for {
		sel, ok := parseSelector(lx, msgs)
		if !ok {
			return nil, false
		}
		sels = append(sels, sel)
		skipSpace(lx)
		p := lx.Peek()
		if p.Kind != token.Comma {
			break
		}
		lx.Next() // consume comma
		skipSpace(lx)
	}
	return NewCompoundSelector(sels...), true
}

func parseSelector(lx *token.Lexer, msgs *messages.Messages) (*Selector, bool) {
	skipSpace(lx)
	first, ok := parseSimpleSelector(lx, msgs)
	if !ok {
		return nil, false
	}
	components := []SelectorComponent{{Combinator: Self, Simple: first}}
	for {
		hadSpace := false
		for lx.Peek().Kind == token.Space {
			lx.Next()
			hadSpace = true
		}
		p := lx.Peek()
		var comb Combinator
		explicit := false
		switch p.Kind {
		case token.Greater:
			comb, explicit = Child, true
		case token.Plus:
			comb, explicit = AdjacentSibling, true
		case token.Tilde:
			comb, explicit = GeneralSibling, true
		}
		if explicit {
			lx.Next()
			skipSpace(lx)
			simple, ok := parseSimpleSelector(lx, msgs)
			if !ok {
				return nil, false
			}
			components = append(components, SelectorComponent{Combinator: comb, Simple: simple})
			continue
		}
		if hadSpace && startsSimpleSelector(p) {
			simple, ok := parseSimpleSelector(lx, msgs)
			if !ok {
				return nil, false
			}
			components = append(components, SelectorComponent{Combinator: Descendant, Simple: simple})
			continue
		}
		break
	}
	return NewSelector(components...), true
}

func startsSimpleSelector(t token.Token) bool {
	switch t.Kind {
	case token.Ident, token.Star, token.Dot, token.Hash, token.LeftBracket, token.Colon:
		return true
	}
	return false
}

func parseSimpleSelector(lx *token.Lexer, msgs *messages.Messages) (SimpleSelector, bool) {
	simple := SimpleSelector{}
	p := lx.Peek()
	switch p.Kind {
	case token.Ident:
		lx.Next()
		simple.ElementName = strings.ToLower(p.Text)
	case token.Star:
		lx.Next()
		simple.ElementName = "*"
	}
	sawAny := simple.ElementName != ""
	for {
		p = lx.Peek()
		switch p.Kind {
		case token.Dot:
			lx.Next()
			id := lx.Next()
			if id.Kind != token.Ident {
				msgs.Errorf(loc(id), "expected class name after '.'")
				return SimpleSelector{}, false
			}
			simple.Filters = append(simple.Filters, Class(id.Text))
			sawAny = true
		case token.Hash:
			lx.Next()
			simple.Filters = append(simple.Filters, ID(p.Text))
			sawAny = true
		case token.LeftBracket:
			f, ok := parseAttrFilter(lx, msgs)
			if !ok {
				return SimpleSelector{}, false
			}
			simple.Filters = append(simple.Filters, f)
			sawAny = true
		case token.Colon:
			f, ok := parsePseudo(lx, msgs)
			if !ok {
				return SimpleSelector{}, false
			}
			simple.Filters = append(simple.Filters, f)
			sawAny = true
		default:
			if !sawAny {
				msgs.Errorf(loc(p), "expected a simple selector, found %s", p.Kind)
				return SimpleSelector{}, false
			}
			return simple, true
		}
	}
}

func parseAttrFilter(lx *token.Lexer, msgs *messages.Messages) (SelectorFilter, bool) {
	lx.Next() // '['
	skipSpace(lx)
	name := lx.Next()
	if name.Kind != token.Ident {
		msgs.Errorf(loc(name), "expected attribute name")
		return SelectorFilter{}, false
	}
	skipSpace(lx)
	p := lx.Peek()
	var op AttrOp
	switch p.Kind {
	case token.Equals:
		op = AttrEq
	case token.Includes:
		op = AttrIncludes
	case token.DashMatch:
		op = AttrDashMatch
	case token.PrefixMatch:
		op = AttrPrefix
	case token.SuffixMatch:
		op = AttrSuffix
	case token.SubstrMatch:
		op = AttrSubstr
	case token.RightBracket:
		lx.Next()
		return HasAttr(strings.ToLower(name.Text)), true
	default:
		msgs.Errorf(loc(p), "expected ']' or an attribute operator")
		return SelectorFilter{}, false
	}
	lx.Next() // operator
	skipSpace(lx)
	val := lx.Next()
	var value string
	switch val.Kind {
	case token.String, token.Ident:
		value = val.Text
	default:
		msgs.Errorf(loc(val), "expected attribute value")
		return SelectorFilter{}, false
	}
	skipSpace(lx)
	caseMode := CaseDefault
	if p := lx.Peek(); p.Kind == token.Ident && (strings.EqualFold(p.Text, "i") || strings.EqualFold(p.Text, "s")) {
		lx.Next()
		if strings.EqualFold(p.Text, "i") {
			caseMode = CaseInsensitive
		} else {
			caseMode = CaseSensitive
		}
		skipSpace(lx)
	}
	closer := lx.Next()
	if closer.Kind != token.RightBracket {
		msgs.Errorf(loc(closer), "expected ']'")
		return SelectorFilter{}, false
	}
	return Attr(op, strings.ToLower(name.Text), value, caseMode), true
}

func parsePseudo(lx *token.Lexer, msgs *messages.Messages) (SelectorFilter, bool) {
	lx.Next() // ':'
	name := lx.Next()
	if name.Kind != token.Ident && name.Kind != token.Function {
		msgs.Errorf(loc(name), "expected pseudo-class name")
		return SelectorFilter{}, false
	}
	lname := strings.ToLower(name.Text)
	if name.Kind == token.Function {
		switch lname {
		case "is":
			sub, ok := ParseFromLexer(lx, msgs)
			if !ok {
				return SelectorFilter{}, false
			}
			if closer := lx.Next(); closer.Kind != token.RightParen {
				msgs.Errorf(loc(closer), "expected ')' after :is(...)")
				return SelectorFilter{}, false
			}
			return Is(sub), true
		case "not":
			sub, ok := ParseFromLexer(lx, msgs)
			if !ok {
				return SelectorFilter{}, false
			}
			if closer := lx.Next(); closer.Kind != token.RightParen {
				msgs.Errorf(loc(closer), "expected ')' after :not(...)")
				return SelectorFilter{}, false
			}
			return Not(sub), true
		default:
			skipSpace(lx)
			var sb strings.Builder
			depth := 1
			for depth > 0 {
				t := lx.Next()
				if t.Kind == token.EOF {
					msgs.Errorf(loc(t), "unterminated pseudo-class argument")
					return SelectorFilter{}, false
				}
				if t.Kind == token.LeftParen {
					depth++
				}
				if t.Kind == token.RightParen {
					depth--
					if depth == 0 {
						break
					}
				}
				sb.WriteString(t.Text)
			}
			return Unknown(lname, sb.String()), true
		}
	}
	if f, ok := SimplePseudo(lname); ok {
		return f, true
	}
	return Unknown(lname, ""), true
}

func skipSpace(lx *token.Lexer) {
	for lx.Peek().Kind == token.Space {
		lx.Next()
	}
}

func loc(t token.Token) messages.Location {
	return messages.Location{Filename: t.Loc.Filename, Line: t.Loc.Line, Column: t.Loc.Column, Offset: t.Loc.Offset, Length: t.Loc.Length}
}
