package render

import (
	"bytes"

	"fortio.org/safecast"
)

// lineIndex maps byte offsets to 1-based line/column pairs. It records
// the offset of every newline once, then answers lookups with a binary
// search.
type lineIndex struct {
	content  []byte
	newlines []uint32
}

func newLineIndex(content []byte) *lineIndex {
	ix := &lineIndex{content: content}
	for i, b := range content {
		if b == '\n' {
			off, err := safecast.Conv[uint32](i)
			if err != nil {
				break
			}
			ix.newlines = append(ix.newlines, off)
		}
	}
	return ix
}

// lineCol converts a byte offset into 1-based line and column numbers.
// Offsets past the end of input clamp to the last position.
func (ix *lineIndex) lineCol(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(ix.content) {
		offset = len(ix.content)
	}
	off, err := safecast.Conv[uint32](offset)
	if err != nil {
		return 1, 1
	}

	// Largest newline strictly before off.
	lo, hi := 0, len(ix.newlines)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if ix.newlines[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line = hi + 2 // hi is the index of the last newline before off
	var lineStart uint32
	if hi >= 0 {
		lineStart = ix.newlines[hi] + 1
	}
	return line, int(off-lineStart) + 1
}

// lineText returns the text of a 1-based line without its trailing
// newline. A trailing \r from CRLF input is stripped too.
func (ix *lineIndex) lineText(line int) string {
	if line < 1 || line > ix.lineCount() {
		return ""
	}
	var start uint32
	if line > 1 {
		start = ix.newlines[line-2] + 1
	}
	end := uint32(len(ix.content))
	if line-1 < len(ix.newlines) {
		end = ix.newlines[line-1]
	}
	return string(bytes.TrimSuffix(ix.content[start:end], []byte("\r")))
}

func (ix *lineIndex) lineCount() int {
	n := len(ix.newlines) + 1
	if len(ix.content) > 0 && ix.content[len(ix.content)-1] == '\n' {
		n--
	}
	if n < 1 {
		n = 1
	}
	return n
}
