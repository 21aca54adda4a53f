package domhtml

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/npillmayer/stylecore/css"
	"github.com/npillmayer/stylecore/messages"
)

// ExtractStyleElements walks an entire parsed document and parses the text
// content of every <style> element into a css.Stylesheet, in document
// order. Unlike a single-level <head>/<body> scan, nested <style> elements
// (inside <svg>, template content, etc.) are found too.
func ExtractStyleElements(doc *html.Node, msgs *messages.Messages) []css.Stylesheet {
	var sheets []css.Stylesheet
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Style {
			if n.FirstChild != nil {
				sheets = append(sheets, css.ParseStylesheet(n.FirstChild.Data, "<style>", msgs))
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sheets
}

// InlineStyle returns the parsed style="" declaration set for e, or an empty
// set if e carries no such attribute.
func InlineStyle(e *Element, msgs *messages.Messages) css.StylePropertySet {
	v, ok := e.attr("style")
	if !ok {
		return css.NewStylePropertySet()
	}
	return css.ParseInlineStyle(v, "style attribute", msgs)
}
