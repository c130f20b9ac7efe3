// Package seen persists the set of document identifiers the user has marked
// as reviewed. The set is loaded once at startup, mutated in memory, and
// written back once on clean exit.
package seen

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is the per-user state file kept in the home directory.
const DefaultFileName = ".arxtab-seen"

// Set is an unordered collection of document identifiers.
type Set struct {
	ids map[string]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{ids: map[string]struct{}{}}
}

// DefaultPath returns the persisted location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Load reads a newline-delimited identifier file. A missing file is not an
// error and yields an empty set.
func Load(path string) (*Set, error) {
	set := NewSet()
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return set, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if id := strings.TrimSpace(scanner.Text()); id != "" {
			set.Mark(id)
		}
	}
	if err := scanner.Err(); err != nil {
		return set, err
	}
	return set, nil
}

// Mark inserts an identifier. Marking twice is a no-op.
func (s *Set) Mark(id string) {
	s.ids[id] = struct{}{}
}

// Unmark removes an identifier if present.
func (s *Set) Unmark(id string) {
	delete(s.ids, id)
}

// Contains reports membership.
func (s *Set) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of marked identifiers.
func (s *Set) Len() int {
	return len(s.ids)
}

// Save overwrites path with one identifier per line. Order is not
// significant. Failures propagate; at shutdown they abort with a reported
// error instead of being swallowed.
func (s *Set) Save(path string) error {
	var b strings.Builder
	for id := range s.ids {
		b.WriteString(id)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to persist seen set: %w", err)
	}
	return nil
}
