package level

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/leveldesc/ctxlog"
)

// maxLineLength bounds a single physical line of a level file.
const maxLineLength = 1 << 20

// Load reads and tokenizes a level file from disk.
func Load(ctx context.Context, path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening level file %s: %w", path, err)
	}
	defer f.Close()
	return Parse(ctx, f, path)
}

// Parse tokenizes level text. Each non-blank line holds a command followed by
// key=value arguments; values may be quoted with " or ' to include spaces,
// and "//" outside quotes starts a comment.
func Parse(ctx context.Context, r io.Reader, filename string) (*File, error) {
	logger := ctxlog.FromContext(ctx).With("file", filename)
	logger.Debug("Parsing level file.")

	file := NewFile(filename)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	number := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		number++

		text := stripComment(scanner.Text())
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		line, err := parseLine(text, filename, number)
		if err != nil {
			return nil, err
		}
		line.number = number
		file.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	logger.Debug("Parsed level file.", "lines", len(file.Lines))
	return file, nil
}

// ParseLine tokenizes a single line of text with no source location.
func ParseLine(text string) (*Line, error) {
	text = strings.TrimSpace(stripComment(text))
	if text == "" {
		return nil, &SyntaxError{Message: "empty line"}
	}
	return parseLine(text, "", 0)
}

func parseLine(text, filename string, number int) (*Line, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return nil, &SyntaxError{File: filename, Line: number, Message: err.Error()}
	}

	cmd := tokens[0]
	if strings.ContainsAny(cmd, "=\"'") {
		return nil, &SyntaxError{File: filename, Line: number,
			Message: fmt.Sprintf("expected a command name, got %q", cmd)}
	}

	line := NewLine(cmd)
	var last *Param
	for _, tok := range tokens[1:] {
		eq := indexUnquoted(tok, '=')
		if eq < 0 {
			// "pos=1; 2; 3" splits into several tokens; glue list
			// continuations back onto the previous value.
			if last != nil && (strings.HasSuffix(last.value, ArraySeparator) || strings.HasPrefix(tok, ArraySeparator)) {
				last.value += " " + tok
				continue
			}
			return nil, &SyntaxError{File: filename, Line: number,
				Message: fmt.Sprintf("expected key=value, got %q", tok)}
		}
		name := tok[:eq]
		if name == "" {
			return nil, &SyntaxError{File: filename, Line: number,
				Message: fmt.Sprintf("missing parameter name in %q", tok)}
		}
		last = newParam(name, tok[eq+1:])
		line.Set(last)
	}
	return line, nil
}

// tokenize splits on whitespace outside quotes.
func tokenize(text string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	var quote byte
	inToken := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			cur.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			inToken = true
			cur.WriteByte(c)
		case c == ' ' || c == '\t':
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			inToken = true
			cur.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}

// stripComment cuts the line at the first "//" outside quotes.
func stripComment(text string) string {
	var quote byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			return text[:i]
		}
	}
	return text
}

func indexUnquoted(s string, b byte) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == b:
			return i
		}
	}
	return -1
}
