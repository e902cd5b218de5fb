package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/nathoo/leveldesc/config"
	"github.com/nathoo/leveldesc/level"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Invocation is a parsed command line.
type Invocation struct {
	Config  *config.Config
	Command string
	// Path is the level file, or the Lua script for gen.
	Path string

	Watch     bool   // check
	Normalize bool   // fmt
	Write     bool   // fmt
	Query     string // json
	Output    string // gen
	Plain     bool   // inspect
	Script    string // inspect
}

// Paths returns the %lvl% expander configured for this run, or nil to use
// the directory of each level file.
func (inv *Invocation) Paths() level.PathExpander {
	if inv.Config.LevelDir == "" {
		return nil
	}
	return level.LevelDir{Dir: inv.Config.LevelDir}
}

const usageText = `
leveltool - read, check and rewrite level description files.

Usage:
  leveltool [options] <command> [command options] <file>

Commands:
  check   [-watch] LEVEL               read and validate a level file
  fmt     [-normalize] [-w] LEVEL      print a level file in canonical form
  json    [-q PATH] LEVEL              export a level file as JSON
  gen     [-o DEST] SCRIPT             generate a level file from a Lua script
  inspect [-plain] [-script FILE] LEVEL
                                       browse and edit a level file
  version                              print the version

Options:
`

// Parse processes command-line arguments. It returns the invocation, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	flagSet := flag.NewFlagSet("leveltool", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usageText)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", config.DefaultFile, "Path to the configuration file.")
	levelDirFlag := flagSet.String("level-dir", "", "Directory substituted for %lvl% in paths. Defaults to the level file's directory.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	themeFlag := flagSet.String("theme", "", "TUI palette. Options: 'dark', 'light', 'plain'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	// Flags given on the command line win over the file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level-dir":
			cfg.LevelDir = *levelDirFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		case "theme":
			cfg.Theme = *themeFlag
		}
	})
	resolved, err := config.New(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	inv := &Invocation{Config: resolved, Command: flagSet.Arg(0)}
	if inv.Command == "version" {
		return inv, false, nil
	}
	if err := inv.parseCommand(flagSet.Args()[1:], output); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, err
	}
	return inv, false, nil
}

func (inv *Invocation) parseCommand(args []string, output io.Writer) error {
	fs := flag.NewFlagSet("leveltool "+inv.Command, flag.ContinueOnError)
	fs.SetOutput(output)

	operand := "LEVEL"
	switch inv.Command {
	case "check":
		fs.BoolVar(&inv.Watch, "watch", false, "Re-check whenever the file changes.")
	case "fmt":
		fs.BoolVar(&inv.Normalize, "normalize", false, "Drop parameters equal to their default.")
		fs.BoolVar(&inv.Write, "w", false, "Write the result back to the file.")
	case "json":
		fs.StringVar(&inv.Query, "q", "", "Print only the value at this gjson path.")
	case "gen":
		operand = "SCRIPT"
		fs.StringVar(&inv.Output, "o", "", "Write the level here instead of standard output.")
	case "inspect":
		fs.BoolVar(&inv.Plain, "plain", false, "Use the line-oriented interface instead of the TUI.")
		fs.StringVar(&inv.Script, "script", "", "Read inspector commands from a file (implies -plain).")
	default:
		return &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q (run leveltool -h for usage)", inv.Command)}
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() != 1 {
		return &ExitError{Code: 2, Message: fmt.Sprintf("usage: leveltool %s [options] %s", inv.Command, operand)}
	}
	inv.Path = fs.Arg(0)
	if inv.Script != "" {
		inv.Plain = true
	}
	return nil
}
