package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	xterm "golang.org/x/term"

	"git.sr.ht/~rockorager/scrawl"
	"git.sr.ht/~rockorager/scrawl/config"
	"git.sr.ht/~rockorager/scrawl/editor"
	"git.sr.ht/~rockorager/scrawl/export"
	"git.sr.ht/~rockorager/scrawl/log"
	"git.sr.ht/~rockorager/scrawl/sketchbook"
	"git.sr.ht/~rockorager/scrawl/term"
)

func runEdit(ctx context.Context, e env, args []string) error {
	fs := newFlagSet(e, "edit", "[file]")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return errUsage
	}
	file := e.cfg.File
	if fs.NArg() == 1 {
		file = fs.Arg(0)
	}
	if !xterm.IsTerminal(int(e.stdin.Fd())) {
		return errors.New("edit requires a terminal")
	}
	if len(file) > editor.FilenameMax {
		return fmt.Errorf("file name is longer than %d", editor.FilenameMax)
	}

	// tcell owns the terminal, so the editor logs to a file or nowhere
	logger := log.Discard()
	if e.cfg.LogFile != "" {
		f, err := log.OpenFile(e.cfg.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		level, _ := log.ParseLevel(e.cfg.LogLevel)
		logger = log.New(f, log.Options{Level: level, AddSource: true})
	}

	b, err := openBoard(file, e.cfg)
	if err != nil {
		return err
	}
	opts := editor.Options{
		Logger:   logger,
		Filename: file,
	}
	if e.cfg.Sketchbook != "" {
		bk, err := sketchbook.Open(e.cfg.Sketchbook)
		if err != nil {
			b.Free()
			return err
		}
		defer bk.Close()
		opts.Sketchbook = bk
	}
	ed := editor.New(b, opts)
	defer ed.Close()
	return term.Run(ctx, ed, term.Options{Logger: logger})
}

// openBoard loads file, or allocates a blank board when it doesn't exist
func openBoard(file string, cfg config.Config) (*scrawl.Board, error) {
	b, err := scrawl.Load(file)
	if errors.Is(err, os.ErrNotExist) {
		return scrawl.New(cfg.Width, cfg.Height, cfg.Color)
	}
	return b, err
}

func runNew(_ context.Context, e env, args []string) error {
	fs := newFlagSet(e, "new", "[-w N] [-h N] [-color] file")
	width := fs.Int("w", e.cfg.Width, "board width")
	height := fs.Int("h", e.cfg.Height, "board height")
	color := fs.Bool("color", e.cfg.Color, "enable colors")
	if err := fs.Parse(args); err != nil {
		return err
	}
	file, err := fileArg(fs)
	if err != nil {
		return err
	}
	b, err := scrawl.New(*width, *height, *color)
	if err != nil {
		return err
	}
	defer b.Free()
	if err := scrawl.Save(b, file); err != nil {
		return err
	}
	e.log.Info("created board", "file", file, "width", *width, "height", *height)
	return nil
}

func runCat(_ context.Context, e env, args []string) error {
	fs := newFlagSet(e, "cat", "[-plain] file")
	plain := fs.Bool("plain", false, "print glyphs only")
	if err := fs.Parse(args); err != nil {
		return err
	}
	file, err := fileArg(fs)
	if err != nil {
		return err
	}
	b, err := scrawl.Load(file)
	if err != nil {
		return err
	}
	defer b.Free()
	if *plain {
		return export.Text(e.stdout, b)
	}
	return export.ANSI(e.stdout, b)
}

func runExport(_ context.Context, e env, args []string) error {
	fs := newFlagSet(e, "export", "[-format png|sixel] [-o out] file")
	format := fs.String("format", "png", "png or sixel")
	out := fs.String("o", "", "output file, - for stdout. Defaults to the board file with the format extension")
	cellW := fs.Int("cell-width", 0, "cell width in pixels")
	cellH := fs.Int("cell-height", 0, "cell height in pixels")
	maxW := fs.Int("max-width", 0, "maximum image width in pixels")
	maxH := fs.Int("max-height", 0, "maximum image height in pixels")
	if err := fs.Parse(args); err != nil {
		return err
	}
	file, err := fileArg(fs)
	if err != nil {
		return err
	}

	var encode func(io.Writer, *scrawl.Board, export.Options) error
	switch *format {
	case "png":
		encode = export.PNG
	case "sixel":
		encode = export.Sixel
		if *out == "" {
			*out = "-"
		}
	default:
		fs.Usage()
		return errUsage
	}
	if *out == "" {
		*out = strings.TrimSuffix(file, filepath.Ext(file)) + "." + *format
	}

	b, err := scrawl.Load(file)
	if err != nil {
		return err
	}
	defer b.Free()
	opts := export.Options{
		CellWidth:  *cellW,
		CellHeight: *cellH,
		MaxWidth:   *maxW,
		MaxHeight:  *maxH,
	}
	if *out == "-" {
		return encode(e.stdout, b, opts)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	if err := encode(f, b, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", *out, err)
	}
	e.log.Info("exported board", "file", file, "out", *out, "format", *format)
	return nil
}

// glyphCount is an entry of the glyph histogram
type glyphCount struct {
	pattern int
	count   int
}

// histogram counts the cells of each pattern, most frequent first
func histogram(b *scrawl.Board) []glyphCount {
	counts := map[int]int{}
	for x := 0; x < b.Width(); x += 1 {
		for y := 0; y < b.Height(); y += 1 {
			counts[b.Get(x, y).Pattern] += 1
		}
	}
	hist := make([]glyphCount, 0, len(counts))
	for p, n := range counts {
		hist = append(hist, glyphCount{pattern: p, count: n})
	}
	sort.Slice(hist, func(i, j int) bool {
		if hist[i].count != hist[j].count {
			return hist[i].count > hist[j].count
		}
		return hist[i].pattern < hist[j].pattern
	})
	return hist
}

const histogramTop = 5

func runInfo(_ context.Context, e env, args []string) error {
	fs := newFlagSet(e, "info", "file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	file, err := fileArg(fs)
	if err != nil {
		return err
	}
	b, err := scrawl.Load(file)
	if err != nil {
		return err
	}
	defer b.Free()

	hist := histogram(b)
	fmt.Fprintf(e.stdout, "size:   %dx%d\n", b.Width(), b.Height())
	fmt.Fprintf(e.stdout, "color:  %t\n", b.ColorEnabled())
	fmt.Fprintf(e.stdout, "glyphs: %d distinct\n", len(hist))
	for i, g := range hist {
		if i == histogramTop {
			break
		}
		fmt.Fprintf(e.stdout, "  %q %d\n", scrawl.Glyph(g.pattern), g.count)
	}
	return nil
}
