package nflverse

import (
	"bufio"
	"io"
)

// utf8BOM is the byte order mark some Windows tools prepend to UTF-8 files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM returns a reader positioned past a leading UTF-8 BOM, if one is
// present. Without this the first header column would parse as "\ufeffplayer_id"
// and the required-column check would reject the file.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(utf8BOM))
	if err != nil {
		// Short or unreadable input; let the CSV reader surface the error.
		return br
	}
	if head[0] == utf8BOM[0] && head[1] == utf8BOM[1] && head[2] == utf8BOM[2] {
		br.Discard(len(utf8BOM))
	}
	return br
}
