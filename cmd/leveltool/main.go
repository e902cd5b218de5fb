// Leveltool reads, validates, rewrites and generates level description files.
// Usage: leveltool [options] <check|fmt|json|gen|inspect|version> [command options] <file>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nathoo/leveldesc/cli"
	"github.com/nathoo/leveldesc/ctxlog"
	"github.com/nathoo/leveldesc/inspect"
	"github.com/nathoo/leveldesc/level"
	"github.com/nathoo/leveldesc/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		if !errors.Is(err, cli.ErrCheckFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// run encapsulates the application logic for easier testing and error handling.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	inv, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(inv.Config.LogLevel, inv.Config.LogFormat, stderr)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Configuration resolved.", "command", inv.Command, "config", inv.Config)

	switch inv.Command {
	case "version":
		fmt.Fprintf(stdout, "leveltool %s (commit %s, built %s)\n", version, commit, date)
		return nil
	case "check":
		if inv.Watch {
			return cli.Watch(ctx, stdout, inv.Path, inv.Paths())
		}
		return cli.Check(ctx, stdout, inv.Path, inv.Paths())
	case "fmt":
		return cli.Fmt(ctx, stdout, inv.Path, inv.Normalize, inv.Write)
	case "json":
		return cli.JSON(ctx, stdout, inv.Path, inv.Query)
	case "gen":
		return cli.Gen(ctx, stdout, inv.Path, inv.Output)
	case "inspect":
		return runInspect(ctx, stdout, inv)
	}
	return &cli.ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", inv.Command)}
}

func runInspect(ctx context.Context, stdout io.Writer, inv *cli.Invocation) error {
	f, err := level.Load(ctx, inv.Path)
	if err != nil {
		return err
	}
	paths := inv.Paths()
	if paths == nil {
		paths = level.LevelDir{Dir: filepath.Dir(inv.Path)}
	}
	f.Paths = paths
	sess := inspect.NewSession(f)

	// Script mode: read commands from a file and echo them.
	if inv.Script != "" {
		in, err := os.Open(inv.Script)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer in.Close()
		c := cli.New(sess, inv.Path)
		c.Paths = paths
		c.In = in
		c.Out = stdout
		c.EchoInput = true
		c.Run(ctx)
		return nil
	}

	// Use the plain CLI if asked or stdout is not a terminal.
	if inv.Plain || !isTerminal() {
		c := cli.New(sess, inv.Path)
		c.Paths = paths
		c.Out = stdout
		c.Run(ctx)
		return nil
	}

	err = tui.Run(ctx, sess, tui.Options{Path: inv.Path, Paths: paths, Theme: inv.Config.Theme})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
