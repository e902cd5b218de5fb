package level

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File is an ordered sequence of lines read from, or written to, one level
// description file.
type File struct {
	Name  string
	Lines []*Line

	// Paths expands %lvl% in path parameters. Nil disables expansion.
	Paths PathExpander
}

// NewFile creates an empty file.
func NewFile(name string) *File {
	return &File{Name: name}
}

// Add appends a line and binds it to the file. A nil line is ignored.
func (f *File) Add(l *Line) {
	if l == nil {
		return
	}
	l.file = f
	f.Lines = append(f.Lines, l)
}

// Renumber sets each line's number to its 1-based position in the file.
// Files built in memory use it so diagnostics point at the written output.
func (f *File) Renumber() {
	for i, l := range f.Lines {
		l.number = i + 1
	}
}

// Remove drops a line from the file. It reports whether the line was found.
func (f *File) Remove(l *Line) bool {
	for i, cur := range f.Lines {
		if cur == l {
			f.Lines = append(f.Lines[:i], f.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the first line with the given command, or nil.
func (f *File) Find(command string) *Line {
	for _, l := range f.Lines {
		if l.Command == command {
			return l
		}
	}
	return nil
}

// FindAll returns every line with the given command, in file order.
func (f *File) FindAll(command string) []*Line {
	var out []*Line
	for _, l := range f.Lines {
		if l.Command == command {
			out = append(out, l)
		}
	}
	return out
}

// Commands returns the distinct commands of the file in first-seen order.
func (f *File) Commands() []string {
	seen := map[string]bool{}
	var out []string
	for _, l := range f.Lines {
		if !seen[l.Command] {
			seen[l.Command] = true
			out = append(out, l.Command)
		}
	}
	return out
}

// WriteTo writes one line of text per Line. Nothing is written when a line
// fails Check.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	for i, l := range f.Lines {
		if err := l.Check(); err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	bw := bufio.NewWriter(w)
	var total int64
	for _, l := range f.Lines {
		n, err := bw.WriteString(l.String() + "\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// Save writes the file to path. The text is written next to its destination
// and renamed into place.
func (f *File) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".level-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
