package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// namedToCodepoint is a representative subset of the HTML 4 named character
// references: the four markup-significant entities, the full Latin-1
// Supplement block, and the typographic/Greek/math symbols most documents
// actually use. See DESIGN.md for why this isn't the full 252-entry table.
var namedToCodepoint = map[string]rune{
	"quot": 34, "amp": 38, "lt": 60, "gt": 62,

	"nbsp": 160, "iexcl": 161, "cent": 162, "pound": 163, "curren": 164,
	"yen": 165, "brvbar": 166, "sect": 167, "uml": 168, "copy": 169,
	"ordf": 170, "laquo": 171, "not": 172, "shy": 173, "reg": 174,
	"macr": 175, "deg": 176, "plusmn": 177, "sup2": 178, "sup3": 179,
	"acute": 180, "micro": 181, "para": 182, "middot": 183, "cedil": 184,
	"sup1": 185, "ordm": 186, "raquo": 187, "frac14": 188, "frac12": 189,
	"frac34": 190, "iquest": 191,
	"Agrave": 192, "Aacute": 193, "Acirc": 194, "Atilde": 195, "Auml": 196,
	"Aring": 197, "AElig": 198, "Ccedil": 199, "Egrave": 200, "Eacute": 201,
	"Ecirc": 202, "Euml": 203, "Igrave": 204, "Iacute": 205, "Icirc": 206,
	"Iuml": 207, "ETH": 208, "Ntilde": 209, "Ograve": 210, "Oacute": 211,
	"Ocirc": 212, "Otilde": 213, "Ouml": 214, "times": 215, "Oslash": 216,
	"Ugrave": 217, "Uacute": 218, "Ucirc": 219, "Uuml": 220, "Yacute": 221,
	"THORN": 222, "szlig": 223,
	"agrave": 224, "aacute": 225, "acirc": 226, "atilde": 227, "auml": 228,
	"aring": 229, "aelig": 230, "ccedil": 231, "egrave": 232, "eacute": 233,
	"ecirc": 234, "euml": 235, "igrave": 236, "iacute": 237, "icirc": 238,
	"iuml": 239, "eth": 240, "ntilde": 241, "ograve": 242, "oacute": 243,
	"ocirc": 244, "otilde": 245, "ouml": 246, "divide": 247, "oslash": 248,
	"ugrave": 249, "uacute": 250, "ucirc": 251, "uuml": 252, "yacute": 253,
	"thorn": 254, "yuml": 255,

	"bull": 8226, "hellip": 8230, "permil": 8240, "euro": 8364,
	"trade": 8482, "ndash": 8211, "mdash": 8212,
	"lsquo": 8216, "rsquo": 8217, "ldquo": 8220, "rdquo": 8221,
	"dagger": 8224, "Dagger": 8225, "lsaquo": 8249, "rsaquo": 8250,

	"alpha": 945, "beta": 946, "gamma": 947, "delta": 948, "pi": 960,
	"Sigma": 931, "Omega": 937,

	"forall": 8704, "part": 8706, "exist": 8707, "empty": 8709,
	"nabla": 8711, "isin": 8712, "notin": 8713, "cap": 8745, "cup": 8746,
	"int": 8747, "infin": 8734, "prod": 8719, "sum": 8721, "radic": 8730,
	"sub": 8834, "sup": 8835, "sube": 8838, "supe": 8839,
	"oplus": 8853, "otimes": 8855, "perp": 8869, "sdot": 8901,
	"ne": 8800, "le": 8804, "ge": 8805,
}

// codepointToName is the inverse of namedToCodepoint, used by Escape. When
// more than one name maps to the same code point, the one seen first during
// init (map iteration order, fixed once per process) wins; none of the
// entities above collide, so this is only a defensive tie-break.
var codepointToName map[rune]string

// knownBits is the dense bit table backing IsKnownEntity: bit i of
// knownBits[i/64] is set iff code point i has a named entity.
var knownBits [1024]uint64 // covers code points [0, 0x10000)

func init() {
	codepointToName = make(map[rune]string, len(namedToCodepoint))
	for name, cp := range namedToCodepoint {
		if _, exists := codepointToName[cp]; !exists {
			codepointToName[cp] = name
		}
		setKnown(cp)
	}
}

func setKnown(cp rune) {
	if cp < 0 || int(cp) >= len(knownBits)*64 {
		return
	}
	knownBits[cp/64] |= 1 << uint(cp%64)
}

// IsKnownEntity reports whether r has a named HTML entity, in O(1) via the
// dense bit table.
func IsKnownEntity(r rune) bool {
	if r < 0 || int(r) >= len(knownBits)*64 {
		return false
	}
	return knownBits[r/64]&(1<<uint(r%64)) != 0
}

// Escape copies text to the result, replacing each entity-eligible code
// point with its named reference when one exists, or a numeric reference
// otherwise. A code point is entity-eligible when it has a known entity, or
// pureASCII is set and the code point is >= 128, or controlCodes is set and
// the code point is < 32.
func Escape(text string, pureASCII, controlCodes bool) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		eligible := IsKnownEntity(r) || (pureASCII && r >= 128) || (controlCodes && r < 32)
		if !eligible {
			b.WriteRune(r)
			continue
		}
		if name, ok := codepointToName[r]; ok {
			b.WriteByte('&')
			b.WriteString(name)
			b.WriteByte(';')
		} else {
			fmt.Fprintf(&b, "&#%d;", r)
		}
	}
	return b.String()
}

func isNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Unescape recognizes &name;, &name, &#DDDD; and &#DDDD (trailing ';'
// optional, per HTML 5 tolerance rules), copying any invalid escape
// verbatim. Numeric escapes outside [0, 0x110000) are treated as invalid.
func Unescape(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for i < len(runes) {
		if runes[i] != '&' {
			b.WriteRune(runes[i])
			i++
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '#' {
			j := i + 2
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			if j > i+2 {
				n, err := strconv.Atoi(string(runes[i+2 : j]))
				if err == nil && n >= 0 && n < 0x110000 {
					end := j
					if end < len(runes) && runes[end] == ';' {
						end++
					}
					b.WriteRune(rune(n))
					i = end
					continue
				}
			}
			b.WriteRune('&')
			i++
			continue
		}

		j := i + 1
		for j < len(runes) && isNameRune(runes[j]) {
			j++
		}
		minEnd := i + 2
		if j > i+1 && j < len(runes) && runes[j] == ';' {
			// A ';'-terminated name must be a known entity as a whole.
			minEnd = j
		}
		matched := false
		for end := j; end >= minEnd; end-- {
			name := string(runes[i+1 : end])
			if cp, ok := namedToCodepoint[name]; ok {
				b.WriteRune(cp)
				next := end
				if next < len(runes) && runes[next] == ';' {
					next++
				}
				i = next
				matched = true
				break
			}
		}
		if !matched {
			b.WriteRune('&')
			i++
		}
	}
	return b.String()
}
