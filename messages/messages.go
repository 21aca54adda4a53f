// Package messages implements the shared diagnostic sink every parser in
// this engine writes to instead of returning a Go error across the public
// parse boundary.
//
// A Messages value is safe for concurrent appends. The implementation is a
// lock-free compare-and-swap loop over a persistent singly-linked list.
// Readers take a snapshot of the head pointer, so Messages.All never blocks
// a concurrent Append and never loses a message, though it is not required
// to observe appends in a linearizable order relative to each other.
package messages

import (
	"fmt"
	"sync/atomic"
)

// Kind classifies a diagnostic.
type Kind uint8

// Diagnostic kinds.
const (
	Warning Kind = iota
	Error
)

func (k Kind) String() string {
	if k == Error {
		return "error"
	}
	return "warning"
}

// Location pinpoints where a diagnostic was raised; the zero value means
// "no location available".
type Location struct {
	Filename string
	Line     int
	Column   int
	Offset   int
	Length   int
}

func (l Location) String() string {
	if l.Filename == "" && l.Line == 0 && l.Column == 0 {
		return ""
	}
	if l.Filename == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Column)
}

// Message is one diagnostic: a lexer/parser/property error or warning.
type Message struct {
	Kind Kind
	Text string
	Loc  Location
}

func (m Message) String() string {
	if loc := m.Loc.String(); loc != "" {
		return fmt.Sprintf("%s: %s: %s", loc, m.Kind, m.Text)
	}
	return fmt.Sprintf("%s: %s", m.Kind, m.Text)
}

// node is one link of the persistent, append-only list backing Messages.
type node struct {
	msg  Message
	prev *node
}

// Messages is an append-only, concurrency-safe collection of diagnostics.
// The zero value is ready to use. Strict mode (see WithStrict) upgrades
// every subsequently appended Warning to an Error.
type Messages struct {
	head   atomic.Pointer[node]
	strict atomic.Bool
	count  atomic.Int64
}

// New returns an empty Messages collection.
func New() *Messages {
	return &Messages{}
}

// SetStrict turns strict mode on or off. In strict mode, Append upgrades any
// Warning to an Error as it is recorded, so HasErrors/ErrIfFailed see it.
func (m *Messages) SetStrict(strict bool) {
	m.strict.Store(strict)
}

// Strict reports whether strict mode is currently active.
func (m *Messages) Strict() bool {
	return m != nil && m.strict.Load()
}

// Append records a diagnostic. Safe for concurrent use; never blocks on a
// concurrent Append.
func (m *Messages) Append(kind Kind, text string, loc Location) {
	if m == nil {
		return
	}
	if kind == Warning && m.Strict() {
		kind = Error
	}
	msg := Message{Kind: kind, Text: text, Loc: loc}
	n := &node{msg: msg}
	for {
		old := m.head.Load()
		n.prev = old
		if m.head.CompareAndSwap(old, n) {
			m.count.Add(1)
			return
		}
	}
}

// Warnf appends a formatted warning.
func (m *Messages) Warnf(loc Location, format string, args ...any) {
	m.Append(Warning, fmt.Sprintf(format, args...), loc)
}

// Errorf appends a formatted error.
func (m *Messages) Errorf(loc Location, format string, args ...any) {
	m.Append(Error, fmt.Sprintf(format, args...), loc)
}

// Len returns the number of recorded messages. O(1).
func (m *Messages) Len() int {
	if m == nil {
		return 0
	}
	return int(m.count.Load())
}

// All returns every recorded message in append order. It is a consistent
// snapshot of the list as of the call to All, unaffected by concurrent
// appends that race with it.
func (m *Messages) All() []Message {
	if m == nil {
		return nil
	}
	n := m.head.Load()
	var rev []Message
	for n != nil {
		rev = append(rev, n.msg)
		n = n.prev
	}
	out := make([]Message, len(rev))
	for i, msg := range rev {
		out[len(rev)-1-i] = msg
	}
	return out
}

// HasErrors reports whether any Error-kind message has been recorded.
func (m *Messages) HasErrors() bool {
	for _, msg := range m.All() {
		if msg.Kind == Error {
			return true
		}
	}
	return false
}

// ErrIfFailed concatenates every message's text and returns it as a single
// error if HasErrors is true, or nil otherwise: a throw-on-error opt-in for
// callers that want the classic Go-error style at the public boundary
// instead of inspecting Messages themselves.
func (m *Messages) ErrIfFailed() error {
	if !m.HasErrors() {
		return nil
	}
	text := ""
	for _, msg := range m.All() {
		if msg.Kind != Error {
			continue
		}
		if text != "" {
			text += "; "
		}
		text += msg.String()
	}
	return errFailed(text)
}

type errFailed string

func (e errFailed) Error() string { return string(e) }
