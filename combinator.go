package parc

// Pair holds the results of two sequenced parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Map transforms a parser's result with a total function.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input []byte, pos int) (U, int, *Error[Message]) {
		v, next, err := p(input, pos)
		if err != nil {
			var zero U
			return zero, pos, err
		}
		return f(v), next, nil
	}
}

// Convert transforms a parser's result with a fallible function. A
// conversion failure becomes a KindConversion error at the position the
// matched region started; the returned error's text is deferred.
func Convert[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(input []byte, pos int) (U, int, *Error[Message]) {
		v, next, err := p(input, pos)
		if err != nil {
			var zero U
			return zero, pos, err
		}
		u, convErr := f(v)
		if convErr != nil {
			var zero U
			return zero, pos, Conversion(pos, NewMessage(convErr.Error))
		}
		return u, next, nil
	}
}

// And sequences two parsers and pairs their results.
func And[A, B any](pa Parser[A], pb Parser[B]) Parser[Pair[A, B]] {
	return func(input []byte, pos int) (Pair[A, B], int, *Error[Message]) {
		a, next, err := pa(input, pos)
		if err != nil {
			return Pair[A, B]{}, pos, err
		}
		b, next, err := pb(input, next)
		if err != nil {
			return Pair[A, B]{}, pos, err
		}
		return Pair[A, B]{First: a, Second: b}, next, nil
	}
}

// SkipThen sequences two parsers and keeps only the second result.
func SkipThen[A, B any](pa Parser[A], pb Parser[B]) Parser[B] {
	return Map(And(pa, pb), func(p Pair[A, B]) B { return p.Second })
}

// ThenSkip sequences two parsers and keeps only the first result.
func ThenSkip[A, B any](pa Parser[A], pb Parser[B]) Parser[A] {
	return Map(And(pa, pb), func(p Pair[A, B]) A { return p.First })
}

// Opt makes a parser optional; on failure it succeeds with nil without
// consuming input.
func Opt[T any](p Parser[T]) Parser[*T] {
	return func(input []byte, pos int) (*T, int, *Error[Message]) {
		v, next, err := p(input, pos)
		if err != nil {
			return nil, pos, nil
		}
		return &v, next, nil
	}
}

// Repeat applies p between min and max times (max < 0 means unbounded).
// Fewer than min matches propagates the failing attempt's error;
// otherwise the first failure after min ends the repetition.
func Repeat[T any](p Parser[T], min, max int) Parser[[]T] {
	return func(input []byte, pos int) ([]T, int, *Error[Message]) {
		var out []T
		cur := pos
		for max < 0 || len(out) < max {
			v, next, err := p(input, cur)
			if err != nil {
				if len(out) < min {
					return nil, pos, err
				}
				break
			}
			out = append(out, v)
			// Zero-width success would loop forever.
			if next == cur {
				break
			}
			cur = next
		}
		return out, cur, nil
	}
}

// Many0 applies p zero or more times.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return Repeat(p, 0, -1)
}

// Many1 applies p one or more times.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Repeat(p, 1, -1)
}

// SepBy parses zero or more p separated by sep.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(input []byte, pos int) ([]T, int, *Error[Message]) {
		first, next, err := p(input, pos)
		if err != nil {
			return nil, pos, nil
		}
		out := []T{first}
		cur := next
		for {
			_, afterSep, err := sep(input, cur)
			if err != nil {
				break
			}
			v, afterItem, err := p(input, afterSep)
			if err != nil {
				// Separator without an item is the item's failure.
				return nil, pos, err
			}
			out = append(out, v)
			cur = afterItem
		}
		return out, cur, nil
	}
}

// Or tries the alternatives in order and returns the first success. When
// every branch fails it propagates the error of the branch that got
// furthest into the input; at equal offsets a branch whose syntax matched
// but whose semantics failed (Conversion, Custom) wins over a plain
// mismatch, and remaining ties go to the later branch. Branch selection
// is an engine policy, not a property of the error values themselves.
func Or[T any](ps ...Parser[T]) Parser[T] {
	return func(input []byte, pos int) (T, int, *Error[Message]) {
		var zero T
		var best *Error[Message]
		bestPos, bestRank := -2, -1
		for _, p := range ps {
			v, next, err := p(input, pos)
			if err == nil {
				return v, next, nil
			}
			fp, r := furthest(err), semRank(err)
			if fp > bestPos || (fp == bestPos && r >= bestRank) {
				best, bestPos, bestRank = err, fp, r
			}
		}
		if best == nil {
			best = Mismatch(pos, Text("no alternatives given"))
		}
		return zero, pos, best
	}
}

// furthest finds the deepest failure offset recorded in a cause chain.
// Incomplete nodes carry no position and are skipped.
func furthest(e *Error[Message]) int {
	p := -1
	for n := e; n != nil; n = n.Inner {
		if n.Kind != KindIncomplete && n.Position > p {
			p = n.Position
		}
	}
	return p
}

// semRank ranks a chain that contains a semantic failure above one that
// is purely syntactic.
func semRank(e *Error[Message]) int {
	for n := e; n != nil; n = n.Inner {
		if n.Kind == KindConversion || n.Kind == KindCustom {
			return 1
		}
	}
	return 0
}

// Name labels a production: any failure of p is wrapped in a KindExpect
// node carrying msg verbatim and the position the production started at.
// The child error is wrapped as-is, never rewritten.
func Name[T any](p Parser[T], msg string) Parser[T] {
	return func(input []byte, pos int) (T, int, *Error[Message]) {
		v, next, err := p(input, pos)
		if err != nil {
			var zero T
			return zero, pos, Expect(pos, Text(msg), err)
		}
		return v, next, nil
	}
}

// Fail always fails with a KindCustom error at the current position.
func Fail[T any](msg Message) Parser[T] {
	return func(input []byte, pos int) (T, int, *Error[Message]) {
		var zero T
		return zero, pos, Custom(pos, msg, nil)
	}
}

// Collect runs p and yields the exact input slice it consumed. The
// slice aliases input; copy it if it must outlive the parse.
func Collect[T any](p Parser[T]) Parser[[]byte] {
	return func(input []byte, pos int) ([]byte, int, *Error[Message]) {
		_, next, err := p(input, pos)
		if err != nil {
			return nil, pos, err
		}
		return input[pos:next], next, nil
	}
}

// Ref defers resolution of p until parse time, breaking initialization
// cycles in recursive grammars.
func Ref[T any](p *Parser[T]) Parser[T] {
	return func(input []byte, pos int) (T, int, *Error[Message]) {
		return (*p)(input, pos)
	}
}
