package jsonval

import (
	"errors"
	"reflect"
	"testing"

	"parc"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{name: "null", input: `null`, want: Null{}},
		{name: "true", input: `true`, want: Bool(true)},
		{name: "false", input: `false`, want: Bool(false)},
		{name: "zero", input: `0`, want: Number(0)},
		{name: "integer", input: `123`, want: Number(123)},
		{name: "negative", input: `-7`, want: Number(-7)},
		{name: "fraction", input: `3.25`, want: Number(3.25)},
		{name: "exponent", input: `2e3`, want: Number(2000)},
		{name: "signed exponent", input: `1.5E-2`, want: Number(0.015)},
		{name: "empty string", input: `""`, want: String("")},
		{name: "plain string", input: `"hi"`, want: String("hi")},
		{name: "escapes", input: `"a\n\t\"b\\"`, want: String("a\n\t\"b\\")},
		{name: "raw utf8 passthrough", input: `"héllo"`, want: String("héllo")},
		{name: "unicode escape", input: `"\u00e9"`, want: String("é")},
		{name: "surrogate pair", input: `"\ud83d\ude00"`, want: String("\U0001F600")},
		{name: "escape between runs", input: `"x\u0041y"`, want: String("xAy")},
		{name: "empty array", input: `[]`, want: Array{}},
		{name: "array", input: `[1, true, "x"]`, want: Array{Number(1), Bool(true), String("x")}},
		{name: "nested array", input: `[[0]]`, want: Array{Array{Number(0)}}},
		{name: "empty object", input: `{}`, want: Object{}},
		{
			name:  "object",
			input: `{"a": 1, "b": [null]}`,
			want:  Object{"a": Number(1), "b": Array{Null{}}},
		},
		{
			name: "whitespace everywhere",
			input: "\n\t {\r\n \"k\" : [ 1 , 2 ] } \n",
			want:  Object{"k": Array{Number(1), Number(2)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind parc.Kind
	}{
		{name: "empty input", input: ``, wantKind: parc.KindExpect},
		{name: "garbage", input: `?`, wantKind: parc.KindExpect},
		{name: "trailing content", input: `1 1`, wantKind: parc.KindMismatch},
		{name: "unterminated array", input: `[1, 2`, wantKind: parc.KindExpect},
		{name: "missing member value", input: `{"a":}`, wantKind: parc.KindExpect},
		{name: "number overflow", input: `1e999`, wantKind: parc.KindConversion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			var perr *parc.Error[string]
			if !errors.As(err, &perr) {
				t.Fatalf("expected resolved parc error, got %T", err)
			}
			if !errors.Is(err, &parc.Error[string]{Kind: tt.wantKind}) {
				t.Fatalf("error %q does not contain kind %v", perr, tt.wantKind)
			}
		})
	}
}

func TestParseErrorIsResolved(t *testing.T) {
	_, err := Parse([]byte(`[nulL]`))
	if err == nil {
		t.Fatal("expected error")
	}
	var perr *parc.Error[string]
	if !errors.As(err, &perr) {
		t.Fatalf("got %T", err)
	}
	// The resolved tree must render without touching the input again.
	if perr.String() == "" {
		t.Fatal("empty rendering")
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse([]byte(`[1, ?]`))
	if err == nil {
		t.Fatal("expected error")
	}
	var perr *parc.Error[string]
	if !errors.As(err, &perr) {
		t.Fatalf("got %T", err)
	}
	// The deepest recorded failure is at the offending byte.
	deepest := -1
	for n := perr; n != nil; n = n.Inner {
		if n.Kind != parc.KindIncomplete && n.Position > deepest {
			deepest = n.Position
		}
	}
	if deepest != 4 {
		t.Fatalf("deepest failure at %d, want 4", deepest)
	}
}
