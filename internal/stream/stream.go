// Package stream renders standard input as sextant glyphs, one line per
// tick, for the case where no file path is given. There is no scrollback
// and no seeking: each cycle consumes exactly one line's worth of bytes.
package stream

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/san-kum/bitraster/internal/raster"
)

// SizeFunc reports the terminal dimensions in character cells.
type SizeFunc func() (w, h int, err error)

// TermSize queries the controlling terminal through stdout.
func TermSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Streamer copies In to Out one rendered glyph line at a time. EOF, or a
// trailing read shorter than a full line, ends the loop cleanly; it is
// the normal way a stream finishes, not an error.
type Streamer struct {
	In        io.Reader
	Out       io.Writer
	WidthBits int // 0 = fit the terminal width
	Order     raster.Order
	Delay     time.Duration
	Size      SizeFunc // nil = TermSize
}

// Run renders until the input is exhausted. The terminal is re-measured
// every cycle so the line width tracks resizes.
func (s *Streamer) Run() error {
	size := s.Size
	if size == nil {
		size = TermSize
	}
	for {
		w, _, err := size()
		if err != nil {
			return fmt.Errorf("terminal size: %w", err)
		}
		width := s.WidthBits
		if width == 0 {
			width = w * 2
		}
		width -= width % 8
		if width <= 0 {
			return fmt.Errorf("terminal %d cells wide: too narrow to display a row", w)
		}

		buf, err := raster.New(width/8*3, width, s.Order)
		if err != nil {
			return err
		}
		if _, err := io.ReadFull(s.In, buf.Data()); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return fmt.Errorf("read stdin: %w", err)
		}

		lines := raster.RenderLines(buf, width/2, 1, 0)
		if _, err := fmt.Fprintln(s.Out, lines[0]); err != nil {
			return err
		}
		time.Sleep(s.Delay)
	}
}
