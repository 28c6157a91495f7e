// Package export writes a loaded collection to disk for offline inspection,
// either as JSONL (one entity per line) or as a snapshot in a SQLite file.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/octofit/pkg/types"
)

// Format selects the export encoding.
type Format string

// Supported formats.
const (
	FormatJSONL  Format = "jsonl"
	FormatSQLite Format = "sqlite"
)

// ErrFormatUnknown is returned by ParseFormat for anything but jsonl or sqlite.
var ErrFormatUnknown = errors.New("unknown export format")

// ParseFormat accepts a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSONL, FormatSQLite:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (valid: jsonl, sqlite)", ErrFormatUnknown, s)
	}
}

// DefaultPath returns where an export of view lands inside dir.
// JSONL files are per view; all SQLite snapshots share one database.
func DefaultPath(dir, view string, f Format) string {
	if f == FormatSQLite {
		return filepath.Join(dir, "octofit.db")
	}
	return filepath.Join(dir, view+".jsonl")
}

// Snapshot is one loaded collection together with where and when it was taken.
type Snapshot struct {
	ID       string
	View     string
	Source   string
	TakenAt  time.Time
	Entities []types.Entity
}

// NewSnapshot stamps entities with a time-ordered id and the current time.
func NewSnapshot(view, source string, entities []types.Entity) Snapshot {
	return Snapshot{
		ID:       newID(),
		View:     view,
		Source:   source,
		TakenAt:  time.Now().UTC(),
		Entities: entities,
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
