package token

import (
	"testing"

	gcss "github.com/gorilla/css/scanner"
)

// TestCrosscheckAgainstGorillaScanner runs a handful of representative CSS
// snippets through both this package's Lexer and gorilla/css/scanner, and
// checks they agree on the coarse token shape: the count of non-whitespace
// tokens. The two tokenizers are
// not required to agree on every token-kind label (gorilla/css predates
// several CSS3 additions this lexer also recognizes, e.g. ^= and $=), so
// this is a sanity cross-check rather than an exhaustive equivalence proof.
func TestCrosscheckAgainstGorillaScanner(t *testing.T) {
	samples := []string{
		`div.foo > p#bar { color: red; margin: 1.5em 2px; }`,
		`a:hover, a:focus { text-decoration: underline; }`,
		`.a, .b .c { background: url(foo.png) no-repeat; }`,
		`h1 { font-family: "Helvetica Neue", sans-serif; }`,
	}

	for _, src := range samples {
		ours := nonSpaceTexts(src)
		theirs := gorillaTexts(src)
		if len(ours) != len(theirs) {
			t.Errorf("%q: token count mismatch: ours=%d (%v) theirs=%d (%v)",
				src, len(ours), ours, len(theirs), theirs)
		}
	}
}

func nonSpaceTexts(src string) []string {
	lx := New(src, "cross.css", nil)
	var out []string
	for {
		tk := lx.Next()
		if tk.Kind == EOF {
			break
		}
		if tk.Kind == Space {
			continue
		}
		out = append(out, tk.Text)
	}
	return out
}

func gorillaTexts(src string) []string {
	s := gcss.New(src)
	var out []string
	for {
		tk := s.Next()
		if tk.Type == gcss.TokenEOF || tk.Type == gcss.TokenError {
			break
		}
		if tk.Type == gcss.TokenS || tk.Type == gcss.TokenComment {
			continue
		}
		out = append(out, tk.Value)
	}
	return out
}
