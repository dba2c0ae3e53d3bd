// Command scrawl edits and renders text mode drawings
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.sr.ht/~rockorager/scrawl/config"
	"git.sr.ht/~rockorager/scrawl/log"
)

const usage = `usage: scrawl [command] [flags] [args]

commands:
  edit [-config path] [file]            edit a board (the default)
  new [-w N] [-h N] [-color] file       write a blank board
  cat [-plain] file                     print a board
  export [-format png|sixel] [-o out] file
                                        rasterize a board
  info file                             describe a board
  book ls|put|get|rm [args]             manage the sketchbook
`

// env is what every command runs with
type env struct {
	cfg    config.Config
	log    *slog.Logger
	stdin  *os.File
	stdout io.Writer
	stderr io.Writer
}

type command func(ctx context.Context, e env, args []string) error

var commands = map[string]command{
	"edit":   runEdit,
	"new":    runNew,
	"cat":    runCat,
	"export": runExport,
	"info":   runInfo,
	"book":   runBook,
}

// errUsage is returned after the usage of a command was printed
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command named by args[0], or edit, and returns the exit
// status
func run(ctx context.Context, args []string, stdin *os.File, stdout io.Writer, stderr io.Writer) int {
	name := "edit"
	if len(args) > 0 {
		switch args[0] {
		case "-h", "-help", "--help", "help":
			fmt.Fprint(stdout, usage)
			return 0
		}
		if _, ok := commands[args[0]]; ok {
			name = args[0]
			args = args[1:]
		}
	}

	// The configuration path is needed before the command flags are parsed
	cfgPath, args := configFlag(args)
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			fmt.Fprintln(stderr, "scrawl:", err)
			return 1
		}
	}
	cfg, err := config.Load(cfgPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(stderr, "scrawl:", err)
		return 1
	}
	level, _ := log.ParseLevel(cfg.LogLevel)

	e := env{
		cfg:    cfg,
		log:    log.New(stderr, log.Options{Level: level}),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	err = commands[name](ctx, e, args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return 2
	}
	e.log.Error(name+" failed", "err", err)
	return 1
}

// configFlag removes a leading -config flag from args and returns its value
func configFlag(args []string) (string, []string) {
	for i := 0; i < len(args); i += 1 {
		switch args[i] {
		case "-config", "--config":
			if i+1 >= len(args) {
				return "", args
			}
			path := args[i+1]
			rest := append(append([]string{}, args[:i]...), args[i+2:]...)
			return path, rest
		case "--":
			return "", args
		}
	}
	return "", args
}

func newFlagSet(e env, name string, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "usage: scrawl %s %s\n", name, synopsis)
		fs.PrintDefaults()
	}
	// Parsed earlier by run, declared for the usage text
	fs.String("config", "", "configuration file")
	return fs
}

// fileArg returns the single file argument of a command
func fileArg(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		fs.Usage()
		return "", errUsage
	}
	return fs.Arg(0), nil
}
