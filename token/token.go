// Package token implements the CSS 2.1 lexer: a pull-based scanner
// producing an immutable stream of Tokens, with one-token unget and
// arbitrary rewind for the selector/grammar parsers built on top of it.
package token

import "fmt"

// Kind classifies a Token.
type Kind uint8

// Token kinds. Whitespace is significant — CSS selector grammar uses it as
// the descendant combinator — so it is a first-class Kind, not skipped by
// the lexer.
const (
	EOF Kind = iota
	Error
	Space
	Ident
	Function // "ident(" — the opening paren is part of this token
	AtKeyword
	Hash // "#foo" or "#ffcc00"; IsID distinguishes the two lexically-similar forms
	String
	URL
	Number     // optionally carries a Unit (px, em, ...)
	Percentage // "37%"
	Important  // "!important", whitespace- and case-insensitive between ! and the word
	CDO        // "<!--"
	CDC        // "-->"
	Dot
	Colon
	Semicolon
	Comma
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Slash
	Plus
	Minus
	Greater
	Tilde
	Star
	Equals
	Includes // ~=
	DashMatch
	PrefixMatch // ^=
	SuffixMatch // $=
	SubstrMatch // *=
	Pipe        // |
	Delim       // any other single-character punctuation not named above
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Error:
		return "error"
	case Space:
		return "space"
	case Ident:
		return "ident"
	case Function:
		return "function"
	case AtKeyword:
		return "at-keyword"
	case Hash:
		return "hash"
	case String:
		return "string"
	case URL:
		return "url"
	case Number:
		return "number"
	case Percentage:
		return "percentage"
	case Important:
		return "!important"
	case CDO:
		return "<!--"
	case CDC:
		return "-->"
	case Dot:
		return "."
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	case Comma:
		return ","
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	case LeftBrace:
		return "{"
	case RightBrace:
		return "}"
	case LeftBracket:
		return "["
	case RightBracket:
		return "]"
	case Slash:
		return "/"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Greater:
		return ">"
	case Tilde:
		return "~"
	case Star:
		return "*"
	case Equals:
		return "="
	case Includes:
		return "~="
	case DashMatch:
		return "|="
	case PrefixMatch:
		return "^="
	case SuffixMatch:
		return "$="
	case SubstrMatch:
		return "*="
	case Pipe:
		return "|"
	case Delim:
		return "delim"
	}
	return "?"
}

// Location carries source position information for a Token: the file it
// came from, its line/column, and its byte span. Every Token and every
// diagnostic raised while producing one carries a Location.
type Location struct {
	Filename string
	Line     int
	Column   int
	Offset   int
	Length   int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Column)
}

// Token is an immutable lexical unit.
type Token struct {
	Kind Kind
	Text string  // raw or decoded text, depending on Kind (see Lexer docs)
	Num  float64 // valid for Number/Percentage
	Unit string  // valid for Number only ("px", "em", ... or "" for unitless)
	IsID bool    // valid for Hash: true if the name is a valid identifier (not just hex digits)
	Loc  Location
}

func (t Token) String() string {
	if t.Text != "" {
		return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Loc)
	}
	return fmt.Sprintf("%s@%s", t.Kind, t.Loc)
}

// IsPunct reports whether the token is one of the given punctuation kinds.
func (t Token) IsPunct(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}
