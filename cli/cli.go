// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the level inspector, plus the one-shot tool commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/leveldesc/inspect"
	"github.com/nathoo/leveldesc/level"
)

// CLI handles line-oriented interaction with the user.
type CLI struct {
	Session   *inspect.Session
	Path      string             // file the session was loaded from
	Paths     level.PathExpander // attached to the file on /reload
	In        io.Reader
	Out       io.Writer
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again" repeat
	quitArmed bool   // a /quit was refused because of unsaved edits
}

// New creates a CLI for the given session.
func New(sess *inspect.Session, path string) *CLI {
	return &CLI{
		Session: sess,
		Path:    path,
		In:      os.Stdin,
		Out:     os.Stdout,
	}
}

// Run starts the loop: prompt → input → dispatch → output. It returns when
// input ends, on /quit, or when ctx is cancelled.
func (c *CLI) Run(ctx context.Context) {
	c.printSystem(fmt.Sprintf("%s: %d lines. Type help for commands, /help for session commands.",
		c.Session.File.Name, len(c.Session.File.Lines)))

	scanner := bufio.NewScanner(c.In)
	for ctx.Err() == nil {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(ctx, input) {
				return // /quit
			}
			continue
		}
		c.quitArmed = false

		// "again" repeats the last command.
		if strings.EqualFold(input, "again") {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		c.printResult(c.Session.Exec(ctx, input))
	}
}

// handleMeta dispatches meta-commands. Returns true if the loop should exit.
func (c *CLI) handleMeta(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		if c.Session.Dirty && !c.quitArmed {
			c.quitArmed = true
			c.printSystem("Unsaved changes. /save first, or /quit again to discard them.")
			return false
		}
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(arg)

	case "/reload":
		c.cmdReload(ctx)

	case "/help":
		c.cmdHelp()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	c.quitArmed = false
	return false
}

func (c *CLI) cmdSave(path string) {
	if path == "" {
		path = c.Path
	}
	if path == "" {
		c.printSystem("Save failed: no file name. Use /save <path>.")
		return
	}
	if err := c.Session.File.Save(path); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.Session.Dirty = false
	c.printSystem(fmt.Sprintf("Saved to %s.", path))
}

func (c *CLI) cmdReload(ctx context.Context) {
	if c.Path == "" {
		c.printSystem("Reload failed: session has no file.")
		return
	}
	f, err := level.Load(ctx, c.Path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Reload failed: %v", err))
		return
	}
	f.Paths = c.Paths
	c.Session.File = f
	c.Session.Dirty = false
	c.printSystem(fmt.Sprintf("Reloaded %s (%d lines).", c.Path, len(f.Lines)))
}

func (c *CLI) cmdHelp() {
	help := []string{
		"Session:",
		"  /save [path]  — Write the file (default: where it was loaded from)",
		"  /reload       — Discard edits and read the file again",
		"  /quit         — Exit",
		"  /help         — Show this help",
		"",
		"Commands:",
	}
	for _, line := range help {
		c.printLine(line)
	}
	for _, line := range c.Session.Exec(context.Background(), "help").Output {
		c.printLine("  " + line)
	}
	c.printLine("  again                        repeat the last command")
}

func (c *CLI) printResult(result inspect.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
	if result.Err != nil {
		c.printSystem(result.Err.Error())
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
