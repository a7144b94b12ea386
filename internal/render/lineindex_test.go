package render

import "testing"

func TestLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nxyz")
	ix := newLineIndex(content)

	tests := []struct {
		name     string
		offset   int
		wantLine int
		wantCol  int
	}{
		{name: "start of file", offset: 0, wantLine: 1, wantCol: 1},
		{name: "middle of first line", offset: 1, wantLine: 1, wantCol: 2},
		{name: "newline belongs to its line", offset: 2, wantLine: 1, wantCol: 3},
		{name: "start of second line", offset: 3, wantLine: 2, wantCol: 1},
		{name: "empty line", offset: 6, wantLine: 3, wantCol: 1},
		{name: "last line", offset: 8, wantLine: 4, wantCol: 2},
		{name: "end of input", offset: 10, wantLine: 4, wantCol: 4},
		{name: "past the end clamps", offset: 999, wantLine: 4, wantCol: 4},
		{name: "negative clamps", offset: -5, wantLine: 1, wantCol: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := ix.lineCol(tt.offset)
			if line != tt.wantLine || col != tt.wantCol {
				t.Fatalf("lineCol(%d) = (%d, %d), want (%d, %d)",
					tt.offset, line, col, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestLineColSingleLine(t *testing.T) {
	ix := newLineIndex([]byte("hello"))
	if line, col := ix.lineCol(3); line != 1 || col != 4 {
		t.Fatalf("got (%d, %d), want (1, 4)", line, col)
	}
}

func TestLineColEmpty(t *testing.T) {
	ix := newLineIndex(nil)
	if line, col := ix.lineCol(0); line != 1 || col != 1 {
		t.Fatalf("got (%d, %d), want (1, 1)", line, col)
	}
}

func TestLineText(t *testing.T) {
	ix := newLineIndex([]byte("ab\ncd\r\nxyz"))
	tests := []struct {
		line int
		want string
	}{
		{line: 1, want: "ab"},
		{line: 2, want: "cd"}, // \r from CRLF stripped
		{line: 3, want: "xyz"},
		{line: 0, want: ""},
		{line: 9, want: ""},
	}
	for _, tt := range tests {
		if got := ix.lineText(tt.line); got != tt.want {
			t.Errorf("lineText(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty", content: "", want: 1},
		{name: "one line", content: "ab", want: 1},
		{name: "trailing newline", content: "ab\n", want: 1},
		{name: "two lines", content: "ab\ncd", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := newLineIndex([]byte(tt.content)).lineCount(); got != tt.want {
				t.Fatalf("lineCount = %d, want %d", got, tt.want)
			}
		})
	}
}
