package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"git.sr.ht/~rockorager/scrawl"
	"git.sr.ht/~rockorager/scrawl/sketchbook"
)

func runBook(ctx context.Context, e env, args []string) error {
	fs := newFlagSet(e, "book", "[-book path] ls|put name file|get name file|rm name")
	path := fs.String("book", e.cfg.Sketchbook, "sketchbook database")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}
	if *path == "" {
		return errors.New("no sketchbook configured, set sketchbook or use -book")
	}

	sub, rest := fs.Arg(0), fs.Args()[1:]
	want := map[string]int{"ls": 0, "put": 2, "get": 2, "rm": 1}
	n, ok := want[sub]
	if !ok || len(rest) != n {
		fs.Usage()
		return errUsage
	}

	bk, err := sketchbook.Open(*path)
	if err != nil {
		return err
	}
	defer bk.Close()

	switch sub {
	case "ls":
		entries, err := bk.List(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
		for _, entry := range entries {
			fmt.Fprintf(tw, "%s\t%dx%d\t%s\n",
				entry.Name, entry.Width, entry.Height,
				entry.Updated.Format(time.DateTime))
		}
		return tw.Flush()
	case "put":
		b, err := scrawl.Load(rest[1])
		if err != nil {
			return err
		}
		defer b.Free()
		if err := bk.Put(ctx, rest[0], b); err != nil {
			return err
		}
		e.log.Info("stored board", "name", rest[0], "file", rest[1])
	case "get":
		b, err := bk.Get(ctx, rest[0])
		if err != nil {
			return err
		}
		defer b.Free()
		if err := scrawl.Save(b, rest[1]); err != nil {
			return err
		}
		e.log.Info("fetched board", "name", rest[0], "file", rest[1])
	case "rm":
		if err := bk.Delete(ctx, rest[0]); err != nil {
			return err
		}
		e.log.Info("removed board", "name", rest[0])
	}
	return nil
}
