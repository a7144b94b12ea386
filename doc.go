// Package parc implements a small PEG-style parser-combinator library
// built around a two-phase error representation.
//
// # Purpose
//
//   - Provide a Parser[T] function type plus primitive parsers and
//     combinators for composing grammars over byte input.
//   - Make failure reporting cheap in the common case: backtracking
//     parsers discard most branch errors unread, so messages are held as
//     deferred producers (Message) and only formatted on demand.
//   - Provide a one-way Resolve step that detaches a surviving error from
//     the input it was produced against, yielding an owned value that is
//     safe to store, log, or return past the parse call.
//
// # Error model
//
// Error[M] is a recursive tree of five kinds:
//
//   - KindIncomplete – the input ended before a production could complete.
//   - KindMismatch – the input at Position did not match what a primitive
//     parser expected.
//   - KindConversion – a syntactically matched region failed a semantic
//     conversion (see Convert).
//   - KindExpect – a named production failed; Inner holds the cause and
//     Message the added context (see Name).
//   - KindCustom – caller-raised error with an optional wrapped cause.
//
// The tree exists in two instantiations sharing one shape: Error[Message]
// (delayed, messages unforced) and Error[string] (resolved, owned text).
// Resolve converts the former into the latter, forcing every message
// exactly once; there is no reverse conversion.
//
// Construction is bottom-up. Primitives produce leaves, combinators wrap a
// finished child in a context node while propagating; no node is mutated
// after construction, so cause chains cannot form cycles.
//
// # Equality
//
// Equality between error trees is deliberately narrow: two errors are
// equal iff they are the same kind, independent of message text, position
// or nested cause. This is the relation exposed through errors.Is and
// SameKind, and it exists for "does this parse fail with the expected kind
// of error" assertions. Anything needing full structural comparison should
// compare rendered output instead.
//
// # Consumers
//
//   - jsonval: a JSON validator written against the public API.
//   - internal/render: renders resolved errors as compiler-style reports.
//   - cmd/parc: CLI wiring both together.
package parc
