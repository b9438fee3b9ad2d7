// Package viewport keeps one screen's worth of file bytes buffered as a
// bit raster and tracks how the visible window maps onto the backing file.
package viewport

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/bitraster/internal/life"
	"github.com/san-kum/bitraster/internal/raster"
)

// Source is the backing file: random-access reads plus a fixed size.
type Source interface {
	io.ReaderAt
	Size() int64
}

type fileSource struct {
	*os.File
	size int64
}

func (s *fileSource) Size() int64 { return s.size }

// NewFileSource wraps an open file as a Source, capturing its size once.
func NewFileSource(f *os.File) (Source, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return &fileSource{File: f, size: fi.Size()}, nil
}

// Options seed a Controller from the CLI surface.
type Options struct {
	WidthBits int   // display row width in bits; 0 = fit the terminal
	Offset    int64 // initial byte offset into the file
	Order     raster.Order
}

// Controller owns the viewer's bit buffer and scroll state. The buffer is
// stale whenever the terminal size or the file offset has changed since
// the last refill; Frame refills it before rendering. While the automaton
// is running the buffer evolves in place and is not reloaded from the
// file until the automaton stops.
type Controller struct {
	src   Source
	order raster.Order

	buf       *raster.Buffer
	widthBits int
	autoWidth bool

	fileOffset int64
	colOffset  int

	termW, termH int
	lastW, lastH int

	// file offset the buffer was last filled from; -1 forces a refill
	bufferedOffset int64

	lifeActive bool
}

// New builds a Controller over src. The first Frame call after SetSize
// performs the initial fill.
func New(src Source, opts Options) *Controller {
	return &Controller{
		src:            src,
		order:          opts.Order,
		widthBits:      opts.WidthBits,
		autoWidth:      opts.WidthBits == 0,
		fileOffset:     opts.Offset,
		bufferedOffset: -1,
	}
}

// SetSize records the terminal geometry in character cells.
func (c *Controller) SetSize(w, h int) {
	c.termW, c.termH = w, h
}

// ScrollRows moves the view delta raster rows down (negative = up).
func (c *Controller) ScrollRows(delta int) {
	c.fileOffset += int64(delta) * int64(c.widthBits/8)
	c.stopLife()
}

// ScrollColumns moves the view delta bit columns right (negative = left).
func (c *Controller) ScrollColumns(delta int) {
	c.colOffset += delta
	c.stopLife()
}

// Page moves the view delta whole buffers forward (negative = back).
func (c *Controller) Page(delta int) {
	if c.buf == nil {
		return
	}
	c.fileOffset += int64(delta) * int64(c.buf.Len())
	c.stopLife()
}

// JumpStart moves to the beginning of the file.
func (c *Controller) JumpStart() {
	c.fileOffset = 0
	c.stopLife()
}

// JumpEnd moves to the end of the file; the refill clamp lands the view
// on the last full buffer.
func (c *Controller) JumpEnd() {
	c.fileOffset = c.src.Size()
	c.stopLife()
}

// ToggleLife starts or stops the automaton. Stopping discards the evolved
// buffer: the next Frame reloads file contents.
func (c *Controller) ToggleLife() {
	c.lifeActive = !c.lifeActive
	if !c.lifeActive {
		c.bufferedOffset = -1
	}
}

func (c *Controller) stopLife() {
	if c.lifeActive {
		c.lifeActive = false
		c.bufferedOffset = -1
	}
}

// StepLife advances the automaton one generation, replacing the buffer.
// The file is not consulted; the raster evolves in place.
func (c *Controller) StepLife() {
	if !c.lifeActive || c.buf == nil {
		return
	}
	c.buf = life.Step(c.buf)
}

func (c *Controller) LifeActive() bool  { return c.lifeActive }
func (c *Controller) FileOffset() int64 { return c.fileOffset }
func (c *Controller) ColumnOffset() int { return c.colOffset }
func (c *Controller) WidthBits() int    { return c.widthBits }

// BufferLen reports the byte length of the current buffer, 0 before the
// first fill.
func (c *Controller) BufferLen() int {
	if c.buf == nil {
		return 0
	}
	return c.buf.Len()
}

// Frame refills the buffer if it is stale, clamps the column offset to
// the window the row width allows, and renders one glyph line per
// terminal row. A short or failing file read is fatal.
func (c *Controller) Frame() ([]string, error) {
	if err := c.refill(); err != nil {
		return nil, err
	}
	if c.colOffset+c.termW*2 > c.widthBits {
		c.colOffset = c.widthBits - c.termW*2
	}
	if c.colOffset < 0 {
		c.colOffset = 0
	}
	return raster.RenderLines(c.buf, c.termW, c.termH, c.colOffset), nil
}

func (c *Controller) refill() error {
	if c.termW == c.lastW && c.termH == c.lastH && c.bufferedOffset == c.fileOffset {
		return nil
	}

	if c.autoWidth {
		c.widthBits = c.termW * 2
	}
	c.widthBits -= c.widthBits % 8
	if c.widthBits <= 0 {
		return fmt.Errorf("terminal %d cells wide: too narrow to display a row", c.termW)
	}

	need := c.termH * 3 * c.widthBits
	byteLen := need / 8
	if need%8 != 0 {
		byteLen++
	}
	size := c.src.Size()
	if int64(byteLen) > size {
		byteLen = int(size)
	}

	if c.fileOffset+int64(byteLen) > size {
		c.fileOffset = size - int64(byteLen)
	}
	if c.fileOffset < 0 {
		c.fileOffset = 0
	}

	if c.buf == nil || c.buf.Stride() != c.widthBits {
		b, err := raster.New(byteLen, c.widthBits, c.order)
		if err != nil {
			return err
		}
		c.buf = b
	} else {
		c.buf.Resize(byteLen)
	}

	if byteLen > 0 {
		n, err := c.src.ReadAt(c.buf.Data(), c.fileOffset)
		if err != nil && !(errors.Is(err, io.EOF) && n == byteLen) {
			return fmt.Errorf("read %d bytes at offset %#x: %w", byteLen, c.fileOffset, err)
		}
	}

	c.lastW, c.lastH = c.termW, c.termH
	c.bufferedOffset = c.fileOffset
	return nil
}
