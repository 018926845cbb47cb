// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --fps, --pty, --record, --non-blocking, --force, --verbose

package main

import (
	"errors"
	"flag"
	"io"

	"github.com/mauromedda/superconsole/internal/config"
)

var errNoCommand = errors.New("no command given; usage: scon [flags] -- command [args...]")

type cliArgs struct {
	config      string
	fps         float64
	pty         bool
	record      string
	nonBlocking bool
	force       bool
	verbose     bool
	version     bool
	label       string

	// set holds the names of flags given explicitly on the command line.
	set     map[string]bool
	command []string
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("scon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&args.config, "config", "", "Path to a YAML config file (default: ~/.scon/config.yaml + .scon/config.yaml)")
	fs.Float64Var(&args.fps, "fps", 0, "Maximum frames per second (0 = unlimited)")
	fs.BoolVar(&args.pty, "pty", false, "Run the command on a pseudo-terminal")
	fs.StringVar(&args.record, "record", "", "Append every frame as JSON lines to this file")
	fs.BoolVar(&args.nonBlocking, "non-blocking", false, "Write frames from a background goroutine")
	fs.BoolVar(&args.force, "force", false, "Draw the canvas even when not attached to a terminal")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.StringVar(&args.label, "label", "", "Spinner label (default: the command name)")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}

	args.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { args.set[f.Name] = true })
	args.command = fs.Args()

	if !args.version && len(args.command) == 0 {
		return cliArgs{}, errNoCommand
	}
	return args, nil
}

// apply overlays explicitly given flags onto s.
func (a cliArgs) apply(s *config.Settings) {
	if a.set["fps"] {
		s.FPS = a.fps
	}
	if a.set["pty"] {
		s.PTY = a.pty
	}
	if a.set["record"] {
		s.Record = a.record
	}
	if a.set["non-blocking"] {
		s.NonBlocking = a.nonBlocking
	}
	if a.set["force"] {
		s.Force = a.force
	}
	if a.set["verbose"] {
		s.Verbose = a.verbose
	}
	if a.set["label"] {
		s.SpinnerLabel = a.label
	}
}
