package css

import (
	"github.com/npillmayer/stylecore/messages"
	"github.com/npillmayer/stylecore/token"
)

// ParseInlineStyle parses the body of an HTML style="" attribute — a bare
// declaration list with no selector or surrounding braces — into a
// StylePropertySet, using the same per-declaration grammar as a stylesheet
// rule's body.
func ParseInlineStyle(src, filename string, msgs *messages.Messages) StylePropertySet {
	lx := token.New(src, filename, msgs)
	var decls []StyleProperty
	for {
		skipSpace(lx)
		t := lx.Peek()
		if t.Kind == token.EOF {
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
		decls = append(decls, ParseDeclaration(name, lx, msgs))
		consumeDeclarationTerminator(lx)
	}
	return NewStylePropertySet(decls...)
}
