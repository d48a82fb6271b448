// Package history keeps the most recently generated commands so they can be
// listed and copied again.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/crazywolf132/statscmd/internal/config"
)

const DefaultMaxSize = 50

// Entry is one generated command. Command never contains a token value.
type Entry struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	Command   string    `json:"command"`
	Redacted  bool      `json:"redacted,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// History is the on-disk list of entries, newest first.
type History struct {
	Entries []Entry `json:"entries"`
	MaxSize int     `json:"max_size"`
}

func NewHistory() *History {
	return &History{
		Entries: make([]Entry, 0),
		MaxSize: DefaultMaxSize,
	}
}

// Add puts e at the front and trims the list to MaxSize.
func (h *History) Add(e Entry) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if e.ID == "" {
		e.ID = strconv.FormatInt(e.CreatedAt.UnixNano(), 36)
	}
	h.Entries = append([]Entry{e}, h.Entries...)

	if h.MaxSize > 0 && len(h.Entries) > h.MaxSize {
		h.Entries = h.Entries[:h.MaxSize]
	}
}

// Numbered is an entry with its 1-based position in the full history.
type Numbered struct {
	N int
	Entry
}

// Filter returns up to limit entries of the given mode. Empty mode matches
// every entry and limit <= 0 means no limit.
func (h *History) Filter(mode string, limit int) []Numbered {
	var filtered []Numbered
	for i, e := range h.Entries {
		if mode != "" && e.Mode != mode {
			continue
		}
		filtered = append(filtered, Numbered{N: i + 1, Entry: e})
		if limit > 0 && len(filtered) == limit {
			break
		}
	}
	return filtered
}

// At returns the entry at 1-based position n.
func (h *History) At(n int) (Entry, error) {
	if n < 1 || n > len(h.Entries) {
		return Entry{}, fmt.Errorf("no history entry %d (have %d)", n, len(h.Entries))
	}
	return h.Entries[n-1], nil
}

func (h *History) Clear() {
	h.Entries = make([]Entry, 0)
}

// DefaultPath is history.json in the statscmd config directory.
func DefaultPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// Save persists the history to path.
func (h *History) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// Load reads the history from path. A missing file leaves h unchanged.
func (h *History) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read history file: %w", err)
	}

	if err := json.Unmarshal(data, h); err != nil {
		return fmt.Errorf("failed to parse history file: %w", err)
	}
	if h.MaxSize == 0 {
		h.MaxSize = DefaultMaxSize
	}
	return nil
}

// Store is a History bound to a file.
type Store struct {
	Path string
}

// Append loads the file, adds e and saves it again.
func (s Store) Append(e Entry) error {
	h := NewHistory()
	if err := h.Load(s.Path); err != nil {
		return err
	}
	h.Add(e)
	return h.Save(s.Path)
}

// Read loads the file.
func (s Store) Read() (*History, error) {
	h := NewHistory()
	if err := h.Load(s.Path); err != nil {
		return nil, err
	}
	return h, nil
}
