package parc

import "fmt"

// Message is a deferred diagnostic message: a shared handle to a
// zero-argument producer. Building one is O(1); the string is only
// computed when the message is forced. Copies share the same producer,
// so discarding unread branch errors costs nothing.
//
// The producer must be pure: forcing may happen zero or more times
// (there is no memoization) and possibly from multiple goroutines.
type Message struct {
	produce func() string
}

// NewMessage wraps a message producer.
func NewMessage(produce func() string) Message {
	return Message{produce: produce}
}

// Text wraps an already-formatted string.
func Text(s string) Message {
	return Message{produce: func() string { return s }}
}

// Textf defers fmt.Sprintf until the message is forced. The arguments
// are captured as-is; pass copies if they alias mutable state.
func Textf(format string, args ...any) Message {
	return Message{produce: func() string { return fmt.Sprintf(format, args...) }}
}

// Force invokes the producer and returns the message text. Each call
// re-invokes the producer.
func (m Message) Force() string {
	if m.produce == nil {
		return ""
	}
	return m.produce()
}

// String forces the message transiently; the stored representation stays
// delayed.
func (m Message) String() string {
	return m.Force()
}

// GoString makes %#v print the forced text as well, so debug output and
// display output agree.
func (m Message) GoString() string {
	return m.Force()
}
