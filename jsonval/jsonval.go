// Package jsonval validates and parses JSON documents using only the
// public parc API. It exists both as the library's worked example and as
// the grammar behind "parc check".
package jsonval

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"parc"
)

// Value is a parsed JSON value: Null, Bool, Number, String, Array or
// Object.
type Value interface {
	jsonValue()
}

type Null struct{}

type Bool bool

type Number float64

type String string

type Array []Value

type Object map[string]Value

func (Null) jsonValue()   {}
func (Bool) jsonValue()   {}
func (Number) jsonValue() {}
func (String) jsonValue() {}
func (Array) jsonValue()  {}
func (Object) jsonValue() {}

// valueParser is assigned in init to break the grammar's recursion
// through arrays and objects (see parc.Ref).
var valueParser parc.Parser[Value]

func init() {
	valueParser = buildValue()
}

// Parse parses a complete JSON document. Leading and trailing whitespace
// is allowed; anything after the document is a mismatch. The returned
// error, if any, is a resolved *parc.Error[string].
func Parse(input []byte) (Value, error) {
	doc := parc.ThenSkip(
		parc.SkipThen(space(), parc.Ref(&valueParser)),
		parc.SkipThen(space(), parc.End()),
	)
	return doc.Parse(input)
}

func space() parc.Parser[[]byte] {
	return parc.Many0(parc.OneOf(" \t\r\n"))
}

func buildValue() parc.Parser[Value] {
	null := parc.Map(parc.Tag("null"), func(string) Value { return Null{} })
	boolean := parc.Or(
		parc.Map(parc.Tag("true"), func(string) Value { return Bool(true) }),
		parc.Map(parc.Tag("false"), func(string) Value { return Bool(false) }),
	)
	str := parc.Map(stringLit(), func(s string) Value { return String(s) })
	return parc.Name(
		parc.Or(null, boolean, number(), str, array(), object()),
		"expected a JSON value",
	)
}

// number recognises the JSON number syntax and converts the matched
// slice in one step, so range errors (1e999) surface as conversion
// failures at the number's start.
func number() parc.Parser[Value] {
	digits := parc.Many1(parc.Range('0', '9'))
	integer := parc.Or(
		parc.Collect(parc.Tag("0")),
		parc.Collect(parc.And(parc.Range('1', '9'), parc.Many0(parc.Range('0', '9')))),
	)
	frac := parc.Collect(parc.And(parc.Sym('.'), digits))
	exp := parc.Collect(parc.And(
		parc.And(parc.OneOf("eE"), parc.Opt(parc.OneOf("+-"))),
		digits,
	))
	syntax := parc.And(
		parc.And(parc.And(parc.Opt(parc.Sym('-')), integer), parc.Opt(frac)),
		parc.Opt(exp),
	)
	lit := parc.Convert(parc.Collect(syntax), func(lit []byte) (float64, error) {
		return strconv.ParseFloat(string(lit), 64)
	})
	return parc.Map(lit, func(f float64) Value { return Number(f) })
}

func stringLit() parc.Parser[string] {
	escaped := parc.Or(
		parc.Sym('\\'),
		parc.Sym('/'),
		parc.Sym('"'),
		parc.Map(parc.Sym('b'), func(byte) byte { return '\b' }),
		parc.Map(parc.Sym('f'), func(byte) byte { return '\f' }),
		parc.Map(parc.Sym('n'), func(byte) byte { return '\n' }),
		parc.Map(parc.Sym('r'), func(byte) byte { return '\r' }),
		parc.Map(parc.Sym('t'), func(byte) byte { return '\t' }),
	)
	escape := parc.SkipThen(parc.Sym('\\'), escaped)
	charRun := parc.Map(
		parc.Many1(parc.Or(parc.NoneOf(`\"`), escape)),
		func(bs []byte) string { return string(bs) },
	)

	hex := parc.IsA("hex digit", func(b byte) bool {
		return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
	})
	utf16Unit := parc.Convert(
		parc.SkipThen(parc.Tag(`\u`), parc.Collect(parc.Repeat(hex, 4, 4))),
		func(h []byte) (uint16, error) {
			v, err := strconv.ParseUint(string(h), 16, 16)
			return uint16(v), err
		},
	)
	// Surrogate pairs span two \uXXXX units, so runs decode together.
	utf16Run := parc.Map(parc.Many1(utf16Unit), func(units []uint16) string {
		return string(utf16.Decode(units))
	})

	body := parc.Many0(parc.Or(charRun, utf16Run))
	quoted := parc.SkipThen(parc.Sym('"'), parc.ThenSkip(body, parc.Sym('"')))
	return parc.Name(
		parc.Map(quoted, func(parts []string) string { return strings.Join(parts, "") }),
		"expected a string",
	)
}

func array() parc.Parser[Value] {
	elem := parc.SkipThen(space(), parc.ThenSkip(parc.Ref(&valueParser), space()))
	inner := parc.ThenSkip(
		parc.ThenSkip(parc.SepBy(elem, parc.Sym(',')), space()),
		parc.Sym(']'),
	)
	return parc.Map(parc.SkipThen(parc.Sym('['), inner), func(vs []Value) Value {
		if vs == nil {
			vs = []Value{}
		}
		return Array(vs)
	})
}

func object() parc.Parser[Value] {
	key := parc.SkipThen(space(), parc.ThenSkip(stringLit(), space()))
	elem := parc.SkipThen(space(), parc.ThenSkip(parc.Ref(&valueParser), space()))
	member := parc.And(key, parc.SkipThen(parc.Sym(':'), elem))
	inner := parc.ThenSkip(
		parc.ThenSkip(parc.SepBy(member, parc.Sym(',')), space()),
		parc.Sym('}'),
	)
	return parc.Map(parc.SkipThen(parc.Sym('{'), inner), func(ms []parc.Pair[string, Value]) Value {
		obj := make(Object, len(ms))
		for _, m := range ms {
			obj[m.First] = m.Second
		}
		return obj
	})
}
