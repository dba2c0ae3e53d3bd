package scrawl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// The file format is a list of integers, one per line:
//
//	width
//	height
//	color enabled (0 or 1)
//	pattern, fg, bg, bright, blink   repeated width*height times
//
// Cells are written column-major: x is the outer loop, y the inner one. There
// is no magic number or version field.

// Encode writes b to w in the board file format
func Encode(w io.Writer, b *Board) error {
	bw := bufio.NewWriter(w)
	writeInt(bw, b.width)
	writeInt(bw, b.height)
	writeInt(bw, btoi(b.color))
	for x := 0; x < b.width; x += 1 {
		for y := 0; y < b.height; y += 1 {
			cell := b.Get(x, y)
			writeInt(bw, cell.Pattern)
			writeInt(bw, int(cell.Fg))
			writeInt(bw, int(cell.Bg))
			writeInt(bw, btoi(cell.Bright))
			writeInt(bw, btoi(cell.Blink))
		}
	}
	// bufio.Writer keeps the first error, Flush reports it
	return bw.Flush()
}

// Save writes b to the file at path, creating or truncating it. The file is
// closed before Save returns.
func Save(b *Board, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w %s for writing: %w", ErrFileOpen, path, err)
	}
	defer func() {
		cerr := f.Close()
		if err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := Encode(f, b); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Decode reads a board in the board file format. Parsing is lenient: lines
// that aren't numbers read as 0, and if the data ends early the remaining
// fields and cells keep the values of [Blank]. Only a header declaring a
// width or height below 1 is rejected.
func Decode(r io.Reader) (*Board, error) {
	lr := &lineReader{r: bufio.NewReader(r)}
	width, _ := lr.next()
	height, _ := lr.next()
	color, _ := lr.next()
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("board %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	b, err := New(width, height, color != 0)
	if err != nil {
		return nil, err
	}
	for x := 0; x < width; x += 1 {
		for y := 0; y < height; y += 1 {
			cell := Blank
			if v, ok := lr.next(); ok {
				cell.Pattern = v
			}
			if v, ok := lr.next(); ok {
				cell.Fg = Color(v)
			}
			if v, ok := lr.next(); ok {
				cell.Bg = Color(v)
			}
			if v, ok := lr.next(); ok {
				cell.Bright = v != 0
			}
			if v, ok := lr.next(); ok {
				cell.Blink = v != 0
			}
			b.Put(cell, x, y)
		}
	}
	return b, nil
}

// Load reads the board stored at path. The file is closed before Load
// returns.
func Load(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrFileOpen, path, err)
	}
	defer f.Close()
	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// lineReader yields one leniently parsed integer per line. Once the
// underlying reader is exhausted or fails, every call reports no line.
type lineReader struct {
	r    *bufio.Reader
	done bool
}

func (lr *lineReader) next() (int, bool) {
	if lr.done {
		return 0, false
	}
	line, err := lr.r.ReadString('\n')
	if err != nil {
		lr.done = true
		if !errors.Is(err, io.EOF) || line == "" {
			return 0, false
		}
	}
	return atoi(line), true
}

// atoi parses like C's atoi: leading blanks are skipped, an optional sign
// and the leading digits are read, everything else is ignored. Strings
// without leading digits parse as 0. Values outside the int range saturate.
func atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end += 1
	}
	if end == 0 {
		return 0
	}
	digits := s[:end]
	if neg {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, 10, 0)
	if err != nil {
		// Only range errors are possible here
		if neg {
			return math.MinInt
		}
		return math.MaxInt
	}
	return int(v)
}

func writeInt(w *bufio.Writer, v int) {
	w.WriteString(strconv.Itoa(v))
	w.WriteByte('\n')
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
