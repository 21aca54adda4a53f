package grammar

import (
	"github.com/npillmayer/stylecore/internal/fp/maybe"
	"github.com/npillmayer/stylecore/messages"
	"github.com/npillmayer/stylecore/token"
)

// Matcher attempts to consume a value-grammar fragment from lx. On success
// it returns (value, true) with the lexer positioned just past the
// consumed tokens. On failure it returns (nil, false) with the lexer
// rewound to the position it held when the matcher was entered —
// transactional, so a failed alternative never leaves partial side effects
// on the lexer position.
type Matcher func(lx *token.Lexer, msgs *messages.Messages) (any, bool)

// skipSpace consumes any run of whitespace tokens. attempt calls this
// before running a matcher, so whitespace may always be skipped before a
// primitive run through attempt.
func skipSpace(lx *token.Lexer) {
	for lx.Peek().Kind == token.Space {
		lx.Next()
	}
}

// attempt runs m transactionally: it records the lexer's position, skips
// leading whitespace, runs m, and rewinds to the recorded position on
// failure (restoring any skipped whitespace along with it, since a sibling
// alternative may need it).
func attempt(lx *token.Lexer, msgs *messages.Messages, m Matcher) (any, bool) {
	start := lx.Position()
	skipSpace(lx)
	v, ok := m(lx, msgs)
	if !ok {
		lx.Rewind(start)
		return nil, false
	}
	return v, true
}

// Sequence matches every matcher in order, returning their values as a
// []any. Fails (and rewinds) if any matcher fails.
func Sequence(ms ...Matcher) Matcher {
	return func(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
		start := lx.Position()
		out := make([]any, 0, len(ms))
		for _, m := range ms {
			v, ok := attempt(lx, msgs, m)
			if !ok {
				lx.Rewind(start)
				return nil, false
			}
			out = append(out, v)
		}
		return out, true
	}
}

// OneOf tries each matcher in order and returns the first success.
func OneOf(ms ...Matcher) Matcher {
	return func(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
		for _, m := range ms {
			if v, ok := attempt(lx, msgs, m); ok {
				return v, true
			}
		}
		return nil, false
	}
}

// AnyOrder implements CSS's `&&` combinator: every alternative may match at
// most once, in any order, until none of the remaining alternatives match.
// Succeeds once at least one alternative has matched; returns the matched
// values indexed by their position in ms (unmatched slots are nil).
func AnyOrder(ms ...Matcher) Matcher {
	return func(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
		matched := make([]bool, len(ms))
		out := make([]any, len(ms))
		matchedAny := false
		for {
			progressed := false
			for i, m := range ms {
				if matched[i] {
					continue
				}
				if v, ok := attempt(lx, msgs, m); ok {
					out[i] = v
					matched[i] = true
					progressed = true
					matchedAny = true
				}
			}
			if !progressed {
				break
			}
		}
		if !matchedAny {
			return nil, false
		}
		return out, true
	}
}

// Optional wraps m so that failure succeeds with maybe.Nothing instead of
// failing the surrounding grammar.
func Optional(m Matcher) Matcher {
	return func(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
		if v, ok := attempt(lx, msgs, m); ok {
			return maybe.Just(v), true
		}
		return maybe.Nothing[any](), true
	}
}

// Range matches m between min and max times (inclusive; max<0 means
// unbounded), returning every matched value as a []any. Fails if fewer than
// min matches are found.
func Range(min, max int, m Matcher) Matcher {
	return func(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
		var out []any
		for max < 0 || len(out) < max {
			v, ok := attempt(lx, msgs, m)
			if !ok {
				break
			}
			out = append(out, v)
		}
		if len(out) < min {
			return nil, false
		}
		return out, true
	}
}

// ZeroOrMore matches m{0,}.
func ZeroOrMore(m Matcher) Matcher { return Range(0, -1, m) }

// OneOrMore matches m{1,}.
func OneOrMore(m Matcher) Matcher { return Range(1, -1, m) }

// comma matches a single ',' token; leading whitespace is skipped by
// attempt, not by comma itself.
func comma(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
	if lx.Peek().Kind != token.Comma {
		return nil, false
	}
	lx.Next()
	return token.Comma, true
}

// ZeroOrMoreWithCommas matches a comma-separated list of m, zero or more.
func ZeroOrMoreWithCommas(m Matcher) Matcher {
	full := OneOrMoreWithCommas(m)
	return func(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
		if v, ok := attempt(lx, msgs, full); ok {
			return v, true
		}
		return []any{}, true
	}
}

// OneOrMoreWithCommas matches a comma-separated list of m, one or more.
func OneOrMoreWithCommas(m Matcher) Matcher {
	return func(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
		start := lx.Position()
		first, ok := attempt(lx, msgs, m)
		if !ok {
			lx.Rewind(start)
			return nil, false
		}
		out := []any{first}
		for {
			save := lx.Position()
			if _, ok := attempt(lx, msgs, comma); !ok {
				break
			}
			v, ok := attempt(lx, msgs, m)
			if !ok {
				lx.Rewind(save)
				break
			}
			out = append(out, v)
		}
		return out, true
	}
}

// RequiredThenOptional matches a then optionally b, returning
// Pair{Left: a's value, Right: maybe.Maybe wrapping b's value}.
func RequiredThenOptional(a, b Matcher) Matcher {
	return func(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
		av, ok := attempt(lx, msgs, a)
		if !ok {
			return nil, false
		}
		bv, ok := attempt(lx, msgs, b)
		if !ok {
			return Pair{Left: av, Right: maybe.Nothing[any]()}, true
		}
		return Pair{Left: av, Right: maybe.Just(bv)}, true
	}
}

// Pair is the concrete value RequiredThenOptional produces: a's value
// paired with an optional b value.
type Pair struct {
	Left  any
	Right maybe.Maybe[any]
}

// Derive matches childSyntax, extracts a value from it via extract, and
// applies that value to an externally-held accumulator via apply. It is
// used to compose a shorthand's grammar out of an existing longhand's
// grammar, mirroring fp.Compose[A,B,C]'s shape: extract runs first, then
// apply consumes its result.
func Derive(childSyntax Matcher, extract func(any) any, apply func(any)) Matcher {
	return func(lx *token.Lexer, msgs *messages.Messages) (any, bool) {
		v, ok := attempt(lx, msgs, childSyntax)
		if !ok {
			return nil, false
		}
		extracted := extract(v)
		apply(extracted)
		return extracted, true
	}
}
