package token

import (
	"testing"

	"github.com/npillmayer/stylecore/messages"
)

func collect(src string) []Token {
	lx := New(src, "test.css", messages.New())
	var out []Token
	for {
		t := lx.Next()
		out = append(out, t)
		if t.Kind == EOF {
			break
		}
	}
	return out
}

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func assertKinds(t *testing.T, src string, want ...Kind) {
	t.Helper()
	got := kinds(collect(src))
	if len(got) != len(want) {
		t.Fatalf("%q: got %d tokens %v, want %d %v", src, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d: got %s, want %s", src, i, got[i], want[i])
		}
	}
}

func TestLexerIdentAndSpace(t *testing.T) {
	assertKinds(t, "foo bar", Ident, Space, Ident, EOF)
}

func TestLexerNumberUnitsAndPercent(t *testing.T) {
	toks := collect("12px 50% .5em -3 +4")
	if toks[0].Kind != Number || toks[0].Num != 12 || toks[0].Unit != "px" {
		t.Fatalf("unexpected first token: %#v", toks[0])
	}
	if toks[2].Kind != Percentage || toks[2].Num != 50 {
		t.Fatalf("unexpected percentage token: %#v", toks[2])
	}
	if toks[4].Kind != Number || toks[4].Num != 0.5 || toks[4].Unit != "em" {
		t.Fatalf("unexpected decimal token: %#v", toks[4])
	}
}

func TestLexerStringEscapesAndLineContinuation(t *testing.T) {
	toks := collect(`"a\62 c" 'x\` + "\n" + `y'`)
	if toks[0].Kind != String || toks[0].Text != "abc" {
		t.Fatalf("hex escape not decoded: %#v", toks[0])
	}
	if toks[2].Kind != String || toks[2].Text != "xy" {
		t.Fatalf("line continuation not collapsed: %#v", toks[2])
	}
}

func TestLexerHashIdVsNonIdent(t *testing.T) {
	toks := collect("#main #123")
	if toks[0].Kind != Hash || !toks[0].IsID || toks[0].Text != "main" {
		t.Fatalf("expected identifier hash: %#v", toks[0])
	}
	if toks[2].Kind != Hash || toks[2].IsID || toks[2].Text != "123" {
		t.Fatalf("expected non-identifier hash: %#v", toks[2])
	}
}

func TestLexerFunctionAndURL(t *testing.T) {
	toks := collect(`rgb(1,2,3) url(foo.png) url("bar.png")`)
	if toks[0].Kind != Function || toks[0].Text != "rgb" {
		t.Fatalf("expected function token: %#v", toks[0])
	}
	var urlToks []Token
	for _, tk := range toks {
		if tk.Kind == URL {
			urlToks = append(urlToks, tk)
		}
	}
	if len(urlToks) != 2 || urlToks[0].Text != "foo.png" || urlToks[1].Text != "bar.png" {
		t.Fatalf("unexpected url tokens: %#v", urlToks)
	}
}

func TestLexerImportant(t *testing.T) {
	assertKinds(t, "!important", Important, EOF)
	assertKinds(t, "! \t important", Important, EOF)
	assertKinds(t, "!IMPORTANT", Important, EOF)
}

func TestLexerCDOCDC(t *testing.T) {
	assertKinds(t, "<!-- -->", CDO, Space, CDC, EOF)
}

func TestLexerComment(t *testing.T) {
	assertKinds(t, "a/* hi */b", Ident, Ident, EOF)
}

func TestLexerAttributeMatchOperators(t *testing.T) {
	assertKinds(t, "~= |= ^= $= *=", Includes, Space, DashMatch, Space, PrefixMatch, Space, SuffixMatch, Space, SubstrMatch, EOF)
}

func TestLexerAtKeyword(t *testing.T) {
	assertKinds(t, "@media screen", AtKeyword, Space, Ident, EOF)
}

func TestLexerUngetAndPeek(t *testing.T) {
	lx := New("a b", "t.css", nil)
	peeked := lx.Peek()
	if peeked.Kind != Ident {
		t.Fatalf("peek: got %s", peeked.Kind)
	}
	next := lx.Next()
	if next.Kind != Ident || next.Text != peeked.Text {
		t.Fatalf("next after peek mismatch: %#v vs %#v", next, peeked)
	}
	space := lx.Next()
	lx.Unget(space)
	again := lx.Next()
	if again.Kind != Space {
		t.Fatalf("unget did not restore token: %#v", again)
	}
}

func TestLexerPositionRewind(t *testing.T) {
	lx := New("abc def", "t.css", nil)
	pos := lx.Position()
	first := lx.Next()
	lx.Next() // space
	lx.Next() // def
	lx.Rewind(pos)
	again := lx.Next()
	if again.Kind != first.Kind || again.Text != first.Text {
		t.Fatalf("rewind did not restore stream: %#v vs %#v", again, first)
	}
}

func TestLexerUnterminatedStringReported(t *testing.T) {
	msgs := messages.New()
	lx := New(`"abc`, "t.css", msgs)
	lx.Next()
	if !msgs.HasErrors() {
		t.Fatalf("expected an error for unterminated string")
	}
}

func TestLexerUnterminatedCommentReported(t *testing.T) {
	msgs := messages.New()
	lx := New("/* abc", "t.css", msgs)
	lx.Next()
	if !msgs.HasErrors() {
		t.Fatalf("expected an error for unterminated comment")
	}
}

func TestLexerHighCodepointEscapeOverflow(t *testing.T) {
	toks := collect(`\110000`)
	if toks[0].Kind != Ident {
		t.Fatalf("expected ident: %#v", toks[0])
	}
	if []rune(toks[0].Text)[0] != 0xFFFD {
		t.Fatalf("expected overflow replacement U+FFFD, got %U", []rune(toks[0].Text)[0])
	}
}
