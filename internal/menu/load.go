package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/quickrun/internal/logging/events"
)

// DefaultFileName is the catalog file looked up in the home directory
// when no explicit path is configured.
const DefaultFileName = ".quickrun.conf"

// SyntaxError reports a config line that is neither an item, a group
// header, a comment, nor blank.
type SyntaxError struct {
	Path string
	Line int
	Text string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid entry at %s:%d: %q", e.Path, e.Line, e.Text)
}

// ResolvePath returns the catalog path to load: the override when set,
// otherwise DefaultFileName inside the user's home directory.
func ResolvePath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Load reads the catalog file at path. A missing file yields an empty
// catalog rather than an error; a malformed line yields a
// *SyntaxError carrying the path and 1-based line number.
func Load(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			events.Catalog.Missing(path)
			return &Catalog{path: path}, nil
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()
	catalog, err := parse(file, path)
	if err != nil {
		return nil, err
	}
	events.Catalog.Loaded(path, len(catalog.Groups()), catalog.Len())
	return catalog, nil
}

// parse scans the config line by line. Item lines are recognized
// before group headers, so "{ x: y }" is an item named "{ x".
func parse(r io.Reader, path string) (*Catalog, error) {
	byLabel := make(map[string][]Item)
	current := ""

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name, command, ok := splitItem(line); ok {
			byLabel[current] = append(byLabel[current], Item{Name: name, Command: command})
			continue
		}
		if label, ok := splitGroup(line); ok {
			current = label
			continue
		}
		return nil, &SyntaxError{Path: path, Line: lineno, Text: line}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	groups := make([]Group, 0, len(byLabel))
	for label, items := range byLabel {
		groups = append(groups, Group{Label: label, Items: items})
	}
	return NewCatalog(path, groups), nil
}

// splitItem parses a "name : command" line. The name ends at the first
// unescaped colon; "\:" puts a literal colon into the name. Both
// halves are whitespace-trimmed and must be non-empty. The command is
// returned verbatim, embedded colons included.
func splitItem(line string) (name, command string, ok bool) {
	var head strings.Builder
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) && runes[i+1] == ':' {
			head.WriteRune(':')
			i++
			continue
		}
		if runes[i] == ':' {
			name = strings.TrimSpace(head.String())
			command = strings.TrimSpace(string(runes[i+1:]))
			if name == "" || command == "" {
				return "", "", false
			}
			return name, command, true
		}
		head.WriteRune(runes[i])
	}
	return "", "", false
}

// splitGroup parses a "{ label }" header. The line arrives already
// trimmed; an empty label switches back to the default group.
func splitGroup(line string) (label string, ok bool) {
	if len(line) < 2 || line[0] != '{' || line[len(line)-1] != '}' {
		return "", false
	}
	return strings.TrimSpace(line[1 : len(line)-1]), true
}
