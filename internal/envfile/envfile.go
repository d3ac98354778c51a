// ABOUTME: Ordered KEY=value env file editing with comment-preserving upserts
// ABOUTME: Replaces matching lines in place or appends; never reorders content

package envfile

import (
	"fmt"
	"os"
	"strings"
)

// File is the line-level representation of an environment file. Lines are
// kept verbatim, comments and blanks included, so edits never disturb
// unrelated content.
type File struct {
	lines []string
}

// Load reads an environment file. A missing file yields an empty File so a
// later Save can create it from scratch.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading env file: %w", err)
	}
	return Parse(data), nil
}

// Parse builds a File from raw bytes.
func Parse(data []byte) *File {
	if len(data) == 0 {
		return &File{}
	}
	s := strings.TrimSuffix(string(data), "\n")
	return &File{lines: strings.Split(s, "\n")}
}

// Upsert replaces each line starting with "key=" by "key=value", or appends
// a single new line when no such line exists.
func (f *File) Upsert(key, value string) {
	prefix := key + "="
	replaced := false
	for i, line := range f.lines {
		if strings.HasPrefix(line, prefix) {
			f.lines[i] = prefix + value
			replaced = true
		}
	}
	if !replaced {
		f.lines = append(f.lines, prefix+value)
	}
}

// Get returns the value of the first "key=" line.
func (f *File) Get(key string) (string, bool) {
	prefix := key + "="
	for _, line := range f.lines {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimRight(strings.TrimPrefix(line, prefix), "\r"), true
		}
	}
	return "", false
}

// Bytes renders the file content, newline-terminated when non-empty.
func (f *File) Bytes() []byte {
	if len(f.lines) == 0 {
		return nil
	}
	return []byte(strings.Join(f.lines, "\n") + "\n")
}

// Save writes the rendered file to path.
func (f *File) Save(path string) error {
	if err := os.WriteFile(path, f.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing env file: %w", err)
	}
	return nil
}
