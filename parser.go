package parc

import (
	"bytes"
	"strings"
)

// Parser is a parsing function over byte input. On success it returns
// the parsed value and the position after the consumed bytes; on failure
// it returns a delayed error and leaves the position meaningless.
// Parsers never mutate the input, so alternatives can retry from the
// same position freely.
type Parser[T any] func(input []byte, pos int) (T, int, *Error[Message])

// Parse runs the parser at the start of input. On failure the surviving
// branch error is resolved, detaching it from input, so the returned
// error is safe to keep after the call. Parsers that must consume the
// whole input compose with End explicitly.
func (p Parser[T]) Parse(input []byte) (T, error) {
	v, _, err := p(input, 0)
	if err != nil {
		var zero T
		return zero, err.Resolve()
	}
	return v, nil
}

// Sym matches a single byte.
func Sym(b byte) Parser[byte] {
	return func(input []byte, pos int) (byte, int, *Error[Message]) {
		if pos >= len(input) {
			return 0, pos, Incomplete()
		}
		if got := input[pos]; got != b {
			return 0, pos, Mismatch(pos, Textf("expected %q, found %q", b, got))
		}
		return b, pos + 1, nil
	}
}

// Tag matches a literal string byte for byte.
func Tag(tag string) Parser[string] {
	return func(input []byte, pos int) (string, int, *Error[Message]) {
		end := pos + len(tag)
		if end > len(input) {
			return "", pos, Incomplete()
		}
		if !bytes.Equal(input[pos:end], []byte(tag)) {
			got := string(input[pos:end])
			return "", pos, Mismatch(pos, Textf("expected %q, found %q", tag, got))
		}
		return tag, end, nil
	}
}

// Any matches any single byte.
func Any() Parser[byte] {
	return func(input []byte, pos int) (byte, int, *Error[Message]) {
		if pos >= len(input) {
			return 0, pos, Incomplete()
		}
		return input[pos], pos + 1, nil
	}
}

// OneOf matches a byte contained in set.
func OneOf(set string) Parser[byte] {
	return func(input []byte, pos int) (byte, int, *Error[Message]) {
		if pos >= len(input) {
			return 0, pos, Incomplete()
		}
		got := input[pos]
		if strings.IndexByte(set, got) < 0 {
			return 0, pos, Mismatch(pos, Textf("expected one of %q, found %q", set, got))
		}
		return got, pos + 1, nil
	}
}

// NoneOf matches a byte not contained in set.
func NoneOf(set string) Parser[byte] {
	return func(input []byte, pos int) (byte, int, *Error[Message]) {
		if pos >= len(input) {
			return 0, pos, Incomplete()
		}
		got := input[pos]
		if strings.IndexByte(set, got) >= 0 {
			return 0, pos, Mismatch(pos, Textf("expected none of %q, found %q", set, got))
		}
		return got, pos + 1, nil
	}
}

// Range matches a byte in the inclusive range [lo, hi].
func Range(lo, hi byte) Parser[byte] {
	return func(input []byte, pos int) (byte, int, *Error[Message]) {
		if pos >= len(input) {
			return 0, pos, Incomplete()
		}
		got := input[pos]
		if got < lo || got > hi {
			return 0, pos, Mismatch(pos, Textf("expected %q..%q, found %q", lo, hi, got))
		}
		return got, pos + 1, nil
	}
}

// IsA matches a byte satisfying pred; what names the byte class in the
// mismatch message.
func IsA(what string, pred func(byte) bool) Parser[byte] {
	return func(input []byte, pos int) (byte, int, *Error[Message]) {
		if pos >= len(input) {
			return 0, pos, Incomplete()
		}
		got := input[pos]
		if !pred(got) {
			return 0, pos, Mismatch(pos, Textf("expected %s, found %q", what, got))
		}
		return got, pos + 1, nil
	}
}

// End succeeds only at the end of input.
func End() Parser[struct{}] {
	return func(input []byte, pos int) (struct{}, int, *Error[Message]) {
		if pos < len(input) {
			got := input[pos]
			return struct{}{}, pos, Mismatch(pos, Textf("expected end of input, found %q", got))
		}
		return struct{}{}, pos, nil
	}
}

// Empty consumes nothing and always succeeds.
func Empty() Parser[struct{}] {
	return func(input []byte, pos int) (struct{}, int, *Error[Message]) {
		return struct{}{}, pos, nil
	}
}

// Pos yields the current byte offset without consuming input.
func Pos() Parser[int] {
	return func(input []byte, pos int) (int, int, *Error[Message]) {
		return pos, pos, nil
	}
}
