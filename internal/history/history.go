// Package history records build and import runs in a local SQLite database
// so the CLI can show what happened to a project over time.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Event types recorded by the tool.
const (
	EventRender = "render"
	EventImport = "import"
)

// Event is one recorded run.
type Event struct {
	ID        int64
	BuildID   string
	Type      string
	Timestamp time.Time
	Payload   []byte
	Metadata  map[string]string
}

// Store persists and retrieves events.
type Store interface {
	// Append adds a new event to the store.
	Append(ctx context.Context, buildID, eventType string, payload []byte, metadata map[string]string) error

	// Recent returns the most recent events, newest first.
	Recent(ctx context.Context, limit int) ([]Event, error)

	// ByBuildID retrieves all events for a specific build.
	ByBuildID(ctx context.Context, buildID string) ([]Event, error)

	// Close closes the store and releases resources.
	Close() error
}

// RenderRecord is the payload of a render event.
type RenderRecord struct {
	Project    string  `json:"project"`
	OutputDir  string  `json:"output_dir"`
	Pages      int     `json:"pages"`
	DurationMS float64 `json:"duration_ms"`
	Success    bool    `json:"success"`
	Error      string  `json:"error,omitempty"`
}

// ImportRecord is the payload of an import event.
type ImportRecord struct {
	Project       string `json:"project"`
	Source        string `json:"source"`
	PagesImported int    `json:"pages_imported"`
	AssetsCopied  int    `json:"assets_copied"`
	CssFilesMerged int   `json:"css_files_merged"`
	Warnings      int    `json:"warnings"`
	Errors        int    `json:"errors"`
}

// AppendRender records a render run.
func AppendRender(ctx context.Context, store Store, buildID string, record RenderRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal render record: %w", err)
	}
	return store.Append(ctx, buildID, EventRender, payload, map[string]string{"project": record.Project})
}

// AppendImport records an import run.
func AppendImport(ctx context.Context, store Store, buildID string, record ImportRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal import record: %w", err)
	}
	return store.Append(ctx, buildID, EventImport, payload, map[string]string{"project": record.Project})
}
