package selector

import (
	"strconv"
	"strings"
)

// Serialize renders c in round-trippable text form: simple selectors as
// "[element-name]" followed by filters in source order,
// combinators as " ", " > ", " + ", " ~ ", compound selectors comma-joined.
func (c *CompoundSelector) Serialize() string {
	parts := make([]string, len(c.Selectors))
	for i, s := range c.Selectors {
		parts[i] = s.Serialize()
	}
	return strings.Join(parts, ", ")
}

// Serialize renders one Selector.
func (sel *Selector) Serialize() string {
	var sb strings.Builder
	for i, comp := range sel.Components {
		if i > 0 {
			sb.WriteString(comp.Combinator.String())
		}
		sb.WriteString(comp.Simple.Serialize())
	}
	return sb.String()
}

// Serialize renders one SimpleSelector.
func (s SimpleSelector) Serialize() string {
	var sb strings.Builder
	sb.WriteString(s.ElementName)
	for _, f := range s.Filters {
		sb.WriteString(f.Serialize())
	}
	return sb.String()
}

// Serialize renders one SelectorFilter.
func (f SelectorFilter) Serialize() string {
	switch f.Kind {
	case FilterClass:
		return "." + f.Name
	case FilterID:
		return "#" + f.Name
	case FilterHasAttr:
		return "[" + f.Name + "]"
	case FilterAttr:
		value := f.AttrValue
		if needsQuoting(value) {
			value = strconv.Quote(value)
		}
		s := "[" + f.Name + attrOpString(f.AttrOp) + value
		switch f.Case {
		case CaseInsensitive:
			s += " i"
		case CaseSensitive:
			s += " s"
		}
		return s + "]"
	case FilterFirstChild:
		return ":first-child"
	case FilterLastChild:
		return ":last-child"
	case FilterEmpty:
		return ":empty"
	case FilterLink:
		return ":link"
	case FilterVisited:
		return ":visited"
	case FilterHover:
		return ":hover"
	case FilterActive:
		return ":active"
	case FilterFocus:
		return ":focus"
	case FilterEnabled:
		return ":enabled"
	case FilterDisabled:
		return ":disabled"
	case FilterChecked:
		return ":checked"
	case FilterIndeterminate:
		return ":indeterminate"
	case FilterIs:
		return ":is(" + f.Sub.Serialize() + ")"
	case FilterNot:
		return ":not(" + f.Sub.Serialize() + ")"
	case FilterUnknown:
		if f.UnknownArg == "" {
			return ":" + f.UnknownName
		}
		return ":" + f.UnknownName + "(" + f.UnknownArg + ")"
	}
	return ""
}

func attrOpString(op AttrOp) string {
	switch op {
	case AttrEq:
		return "="
	case AttrIncludes:
		return "~="
	case AttrDashMatch:
		return "|="
	case AttrPrefix:
		return "^="
	case AttrSuffix:
		return "$="
	case AttrSubstr:
		return "*="
	}
	return "="
}

func needsQuoting(v string) bool {
	for _, r := range v {
		if !(r == '-' || r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')) {
			return true
		}
	}
	return v == ""
}
