package parc

import "fmt"

// Kind is the taxonomy tag of a parse error.
type Kind uint8

const (
	// KindIncomplete means the input ended before a production could complete.
	KindIncomplete Kind = iota
	// KindMismatch is a leaf failure: input did not match an expected pattern.
	KindMismatch
	// KindConversion is a semantic conversion failure on matched input.
	KindConversion
	// KindExpect wraps the failure of a named production with context.
	KindExpect
	// KindCustom is a caller-raised error with an optional cause.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindIncomplete:
		return "Incomplete"
	case KindMismatch:
		return "Mismatch"
	case KindConversion:
		return "Conversion"
	case KindExpect:
		return "Expect"
	case KindCustom:
		return "Custom"
	}
	return "Unknown"
}

// Msg constrains the message payload of an Error: Message for the
// delayed form, string for the resolved form.
type Msg interface {
	Message | string
}

// Error is a recursive parse-error tree, generic over the message
// payload. Error[Message] is the delayed form produced during parsing;
// Error[string] is the resolved form returned to callers (see Resolve).
//
// Position is a byte offset into the input that produced the error and
// is only meaningful relative to that input. Inner is non-nil for
// KindExpect, optional for KindCustom and always nil for leaves.
// Nodes are built bottom-up and never mutated afterwards.
type Error[M Msg] struct {
	Kind     Kind
	Message  M
	Position int
	Inner    *Error[M]
}

// Incomplete reports input exhausted mid-production. It carries no
// message or position.
func Incomplete() *Error[Message] {
	return &Error[Message]{Kind: KindIncomplete}
}

// Mismatch reports that input at pos did not match what msg describes.
func Mismatch(pos int, msg Message) *Error[Message] {
	return &Error[Message]{Kind: KindMismatch, Message: msg, Position: pos}
}

// Conversion reports that a matched region starting at pos failed a
// semantic conversion.
func Conversion(pos int, msg Message) *Error[Message] {
	return &Error[Message]{Kind: KindConversion, Message: msg, Position: pos}
}

// Expect wraps the failure of a named production. inner is the cause,
// msg the added context.
func Expect(pos int, msg Message, inner *Error[Message]) *Error[Message] {
	return &Error[Message]{Kind: KindExpect, Message: msg, Position: pos, Inner: inner}
}

// Custom builds a caller-raised error; inner may be nil.
func Custom(pos int, msg Message, inner *Error[Message]) *Error[Message] {
	return &Error[Message]{Kind: KindCustom, Message: msg, Position: pos, Inner: inner}
}

// text returns the message payload as a string, forcing it if delayed.
func text[M Msg](m M) string {
	switch v := any(m).(type) {
	case Message:
		return v.Force()
	case string:
		return v
	}
	return ""
}

// Resolve deep-copies the tree, forcing every message into owned text.
// Kind, Position and shape are preserved exactly; each node's message is
// forced exactly once. The result has no ties to the parsed input and is
// the form meant to outlive the parse call. Resolving an already
// resolved tree is a plain deep copy.
func (e *Error[M]) Resolve() *Error[string] {
	if e == nil {
		return nil
	}
	return &Error[string]{
		Kind:     e.Kind,
		Message:  text(e.Message),
		Position: e.Position,
		Inner:    e.Inner.Resolve(),
	}
}

// String renders the per-kind template, recursing into the cause chain.
// Delayed messages are forced transiently; the tree is not modified.
func (e *Error[M]) String() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindIncomplete:
		return "Incomplete"
	case KindMismatch:
		return fmt.Sprintf("Mismatch at %d: %s", e.Position, text(e.Message))
	case KindConversion:
		return fmt.Sprintf("Conversion failed at %d: %s", e.Position, text(e.Message))
	case KindExpect:
		return fmt.Sprintf("%s at %d: %s", text(e.Message), e.Position, e.Inner.String())
	case KindCustom:
		if e.Inner != nil {
			return fmt.Sprintf("%s at %d, (inner: %s)", text(e.Message), e.Position, e.Inner.String())
		}
		return fmt.Sprintf("%s at %d", text(e.Message), e.Position)
	}
	return "Unknown"
}

// Error implements the error interface with the same rendering as String.
func (e *Error[M]) Error() string {
	return e.String()
}

// GoString routes %#v through the display templates.
func (e *Error[M]) GoString() string {
	return e.String()
}

// Unwrap exposes the cause chain to errors.Is/errors.As.
func (e *Error[M]) Unwrap() error {
	if e == nil || e.Inner == nil {
		return nil
	}
	return e.Inner
}

// Is reports tag-only equality: the target matches iff it is an Error of
// the same Kind, in either phase. Message, position and cause content are
// ignored. Used by errors.Is.
func (e *Error[M]) Is(target error) bool {
	if e == nil {
		return false
	}
	switch t := target.(type) {
	case *Error[Message]:
		return t != nil && e.Kind == t.Kind
	case *Error[string]:
		return t != nil && e.Kind == t.Kind
	}
	return false
}

// SameKind reports whether two trees, in either phase, carry the same
// taxonomy tag at the root. Two nils are considered the same.
func SameKind[A, B Msg](a *Error[A], b *Error[B]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind == b.Kind
}
