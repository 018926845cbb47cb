// ABOUTME: CLI entry point for scon: runs a command under a live status canvas
// ABOUTME: Parses flags, loads config, builds the output chain, owns the console loop

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mauromedda/superconsole/internal/config"
	"github.com/mauromedda/superconsole/internal/log"
	"github.com/mauromedda/superconsole/internal/runner"
	"github.com/mauromedda/superconsole/pkg/superconsole"
	"github.com/mauromedda/superconsole/pkg/superconsole/components"
	"github.com/mauromedda/superconsole/pkg/superconsole/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const defaultTick = 33 * time.Millisecond

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("scon %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	code, err := run(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if code == 0 {
			code = 1
		}
	}
	os.Exit(code)
}

// loadSettings reads the config file named by --config, or the merged
// global and project files, then applies explicit flags.
func loadSettings(args cliArgs) (*config.Settings, error) {
	var (
		settings *config.Settings
		err      error
	)
	if args.config != "" {
		settings, err = config.LoadFrom(args.config)
	} else {
		var cwd string
		cwd, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		settings, err = config.Load(cwd)
	}
	if err != nil {
		return nil, err
	}

	args.apply(settings)
	if !args.set["label"] && settings.SpinnerLabel == config.Defaults().SpinnerLabel {
		settings.SpinnerLabel = "running " + args.command[0]
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// buildOutput chains the configured sinks. The rate limiter sits outermost
// so skipped ticks are never recorded. The returned closer releases the
// recording file.
func buildOutput(w io.Writer, s *config.Settings) (superconsole.Output, func() error, error) {
	var out superconsole.Output
	if s.NonBlocking {
		out = superconsole.NewNonBlockingOutput(w)
	} else {
		out = superconsole.NewBlockingOutput(w)
	}

	closer := func() error { return nil }
	if s.Record != "" {
		f, err := os.OpenFile(s.Record, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening recording: %w", err)
		}
		out = superconsole.NewRecordingOutput(out, f)
		closer = f.Close
	}

	return superconsole.NewRateLimitedOutput(out, s.FPS), closer, nil
}

func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		return defaultTick
	}
	return max(time.Duration(float64(time.Second)/fps), time.Millisecond)
}

// run executes the command and returns its exit code.
func run(args cliArgs) (int, error) {
	settings, err := loadSettings(args)
	if err != nil {
		return 1, fmt.Errorf("loading config: %w", err)
	}
	if settings.Verbose {
		log.SetLevel(log.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := terminal.NewProcessTerminal()
	interactive := settings.Force || superconsole.Compatible()

	opts := runner.Options{PTY: settings.PTY}
	if w, h, err := term.Size(); err == nil {
		opts.Cols, opts.Rows = uint16(w), uint16(h)
	}
	proc, err := runner.Start(ctx, args.command[0], args.command[1:], opts)
	if err != nil {
		return 1, err
	}
	log.Debug("started %s (pid %d)", args.command[0], proc.Pid())

	if !interactive {
		return passthrough(proc, os.Stdout, os.Stderr)
	}
	return runInteractive(ctx, settings, term, proc, args.command)
}

func runInteractive(ctx context.Context, settings *config.Settings, term *terminal.ProcessTerminal, proc *runner.Process, command []string) (int, error) {
	out, closeRecord, err := buildOutput(term, settings)
	if err != nil {
		return 1, abandon(proc, err)
	}
	defer closeRecord()

	spinner := components.NewSpinner(settings.SpinnerLabel)
	console := superconsole.NewWithOptions(newCanvas(spinner), superconsole.Options{
		Terminal: term,
		Output:   out,
		Fallback: &superconsole.Dimensions{Width: settings.FallbackWidth, Height: settings.FallbackHeight},
	})

	logs := &logSink{}
	prev := log.SetOutput(logs)
	defer log.SetOutput(prev)
	defer terminal.RestoreOnPanic(term)

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)

	resize := func() {
		w, h, err := term.Size()
		if err != nil {
			log.Debug("resize: %v", err)
			return
		}
		if err := proc.Resize(uint16(w), uint16(h)); err != nil {
			log.Warn("%v", err)
		}
	}

	a := newApp(console, spinner, logs, command, time.Now)
	if err := a.loop(ctx, proc, tickInterval(settings.FPS), winch, resize); err != nil {
		err = abandon(proc, err)
		a.abort(prev)
		return 1, err
	}

	waitErr := proc.Wait()
	code := runner.ExitCode(waitErr)
	if waitErr != nil && !runner.IsExitError(waitErr) {
		log.Error("%v", waitErr)
	}
	if err := a.finish(code); err != nil {
		return code, err
	}
	return code, nil
}

// passthrough copies child output unchanged when there is no terminal to
// draw on.
func passthrough(proc *runner.Process, stdout, stderr io.Writer) (int, error) {
	for l := range proc.Lines() {
		w := stdout
		if l.Stream == runner.Stderr {
			w = stderr
		}
		fmt.Fprintln(w, l.Text)
	}
	err := proc.Wait()
	code := runner.ExitCode(err)
	if err != nil && !runner.IsExitError(err) {
		return code, err
	}
	return code, nil
}

// abandon kills the child after a console failure and discards the rest of
// its output so Wait can return.
func abandon(proc *runner.Process, cause error) error {
	if err := proc.Kill(); err != nil {
		log.Debug("%v", err)
	}
	for range proc.Lines() {
	}
	_ = proc.Wait()
	return cause
}
