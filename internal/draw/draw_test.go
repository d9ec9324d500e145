package draw

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillRectScales(t *testing.T) {
	// 10 columns x 5 rows over a 100x100 logical space: 10 units per pixel.
	c := NewScaledCanvas(10, 5, 100, 100)
	c.FillRect(20, 0, 20, 20, ColorRed)

	assert.Equal(t, ColorRed, c.pixels[0*10+2])
	assert.Equal(t, ColorRed, c.pixels[0*10+3])
	assert.Equal(t, ColorRed, c.pixels[1*10+3])
	assert.Equal(t, ColorNone, c.pixels[0*10+4])
	assert.Equal(t, ColorNone, c.pixels[2*10+2])
}

func TestFillRectTinyStillVisible(t *testing.T) {
	c := NewScaledCanvas(10, 5, 1000, 1000)
	c.FillRect(505, 505, 4, 20, ColorYellow)

	var set int
	for _, p := range c.pixels {
		if p != ColorNone {
			set++
		}
	}
	assert.Equal(t, 1, set)
}

func TestFillRectClipsOffscreen(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	assert.NotPanics(t, func() {
		c.FillRect(-50, -50, 20, 20, ColorRed)
		c.FillRect(95, 95, 50, 50, ColorRed)
	})
	assert.Equal(t, ColorRed, c.pixels[len(c.pixels)-1])
}

func TestRenderOnlyChangedCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.FillRect(0, 0, 1, 2, ColorGreen)

	var first bytes.Buffer
	c.Render(&first)
	assert.Contains(t, first.String(), string(BlockFull))
	assert.Contains(t, first.String(), ColorGreen.Code())

	var second bytes.Buffer
	c.Render(&second)
	assert.Empty(t, second.String(), "nothing changed")

	c.Clear()
	c.FillRect(0, 0, 1, 1, ColorGreen)
	var third bytes.Buffer
	c.Render(&third)
	assert.Equal(t, 1, strings.Count(third.String(), "H"), "one cell rewritten")
	assert.Contains(t, third.String(), string(BlockUpperHalf))
}

func TestMarkTextDirtyRepaints(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	var out bytes.Buffer
	c.Render(&out)

	c.MarkTextDirty(2, 1, 2)
	out.Reset()
	c.Render(&out)
	assert.Equal(t, "\033[1;2H \033[1;3H ", out.String())
}

func TestDrawPolygonFilled(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.DrawPolygon([]Point{{1, 1}, {8, 1}, {8, 8}, {1, 8}}, true, ColorCyan)
	assert.Equal(t, ColorCyan, c.pixels[4*10+4], "interior")
	assert.Equal(t, ColorNone, c.pixels[0])
}

func TestClampTermSize(t *testing.T) {
	w, h, col, row := ClampTermSize(250, 70, 200, 60)
	assert.Equal(t, []int{200, 60, 25, 5}, []int{w, h, col, row})

	w, h, col, row = ClampTermSize(80, 24, 200, 60)
	assert.Equal(t, []int{80, 24, 0, 0}, []int{w, h, col, row})
}

type writeLog struct {
	writes [][]byte
}

func (w *writeLog) Write(p []byte) (int, error) {
	w.writes = append(w.writes, append([]byte(nil), p...))
	return len(p), nil
}

func TestChunkWriterOffsetAndFlush(t *testing.T) {
	var out writeLog
	cw := NewChunkWriter(&out, 3, 2)
	require.NoError(t, cw.Flush())
	assert.Empty(t, out.writes, "an unchanged frame writes nothing")

	cw.WriteAt(1, 1, "hi")
	assert.Empty(t, out.writes)
	require.NoError(t, cw.Flush())
	assert.Equal(t, [][]byte{[]byte("\033[3;4Hhi")}, out.writes)
	assert.Zero(t, cw.Len())

	cw.SetOffset(0, 0)
	cw.ClearScreen()
	cw.WriteAt(5, 9, "x")
	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[H\033[2J\033[9;5Hx", string(out.writes[1]))
}

func TestChunkWriterKeepsSequencesWhole(t *testing.T) {
	var out writeLog
	cw := NewChunkWriter(&out, 0, 0)
	var want bytes.Buffer
	for row := 1; want.Len() < 3*maxChunkSize; row++ {
		seq := "\033[" + strconv.Itoa(row) + ";17H" + Color(row%7+1).Code() + "▀▄"
		cw.WriteString(seq)
		want.WriteString(seq)
	}
	require.NoError(t, cw.Flush())

	require.Greater(t, len(out.writes), 2)
	var got []byte
	for _, chunk := range out.writes {
		assert.LessOrEqual(t, len(chunk), maxChunkSize)
		assert.True(t, utf8.Valid(chunk))
		if esc := bytes.LastIndexByte(chunk, 0x1b); esc >= 0 {
			assert.True(t, sequenceComplete(chunk[esc:]), "chunk ends inside %q", chunk[esc:])
		}
		got = append(got, chunk...)
	}
	assert.Equal(t, want.String(), string(got))
}

func TestChunkEndShortData(t *testing.T) {
	assert.Equal(t, 3, chunkEnd([]byte("abc"), 10))
	assert.Equal(t, 4, chunkEnd([]byte("abcd\033[12;3H"), 8))
	assert.Equal(t, 1, chunkEnd([]byte("a▀"), 2))
}
