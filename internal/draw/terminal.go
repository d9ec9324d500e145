// Package draw renders to ANSI terminals: a scaled half-block canvas plus
// buffered cursor-addressed text output.
package draw

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	seqClearScreen = "\033[H\033[2J"
	seqHideCursor  = "\033[?25l"
	seqShowCursor  = "\033[?25h"
)

// maxChunkSize caps each write to the terminal, roughly one SSH packet.
const maxChunkSize = 1400

// ChunkWriter collects one frame of output (canvas diff, text overlays) and
// sends it on Flush as a series of writes of at most maxChunkSize bytes.
// Chunks never split an escape sequence or a multi-byte rune.
type ChunkWriter struct {
	out    io.Writer
	frame  []byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. The offset is added
// to every WriteAt position.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:    w,
		frame:  make([]byte, 0, 4096),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset moves the render area, e.g. after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// WriteAt queues s at a 1-based position inside the render area.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.frame = appendCursor(cw.frame, col+cw.offCol, row+cw.offRow)
	cw.frame = append(cw.frame, s...)
}

// WriteString queues s at the current cursor position.
func (cw *ChunkWriter) WriteString(s string) {
	cw.frame = append(cw.frame, s...)
}

// Write implements io.Writer so the canvas can render into the frame.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.frame = append(cw.frame, p...)
	return len(p), nil
}

// ClearScreen queues a full clear. Callers must force a canvas redraw after.
func (cw *ChunkWriter) ClearScreen() {
	cw.WriteString(seqClearScreen)
}

// Len returns the number of queued bytes.
func (cw *ChunkWriter) Len() int {
	return len(cw.frame)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends the queued frame and resets the buffer. An unchanged frame
// writes nothing.
func (cw *ChunkWriter) Flush() error {
	data := cw.frame
	cw.frame = cw.frame[:0]
	for len(data) > 0 {
		n := chunkEnd(data, maxChunkSize)
		if _, err := cw.out.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// chunkEnd returns where to cut data so the first chunk is at most limit
// bytes and ends outside any rune or CSI sequence.
func chunkEnd(data []byte, limit int) int {
	if len(data) <= limit {
		return len(data)
	}
	end := limit
	for end > 0 && !utf8.RuneStart(data[end]) {
		end--
	}
	if esc := bytes.LastIndexByte(data[:end], 0x1b); esc >= 0 && !sequenceComplete(data[esc:end]) {
		end = esc
	}
	if end == 0 {
		return limit
	}
	return end
}

// sequenceComplete reports whether seq, which starts with ESC, already holds
// its final byte.
func sequenceComplete(seq []byte) bool {
	if len(seq) < 2 {
		return false
	}
	if seq[1] != '[' {
		return true
	}
	for _, b := range seq[2:] {
		if b >= 0x40 && b <= 0x7e {
			return true
		}
	}
	return false
}

func appendCursor(b []byte, col, row int) []byte {
	b = append(b, "\033["...)
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	return append(b, 'H')
}

// TermSizeFunc returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClampTermSize limits the render area to maxWidth x maxHeight and returns
// the offset that centers it in the terminal.
func ClampTermSize(termWidth, termHeight, maxWidth, maxHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, maxWidth)
	renderHeight = min(termHeight, maxHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	io.WriteString(w, seqClearScreen)
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	io.WriteString(w, seqHideCursor)
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	io.WriteString(w, seqShowCursor)
}
