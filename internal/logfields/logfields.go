package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyProject    = "project"
	KeyPage       = "page"
	KeyPath       = "path"
	KeySource     = "source"
	KeyOutput     = "output"
	KeyBuildID    = "build_id"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Project(name string) slog.Attr    { return slog.String(KeyProject, name) }
func Page(filename string) slog.Attr   { return slog.String(KeyPage, filename) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Source(s string) slog.Attr        { return slog.String(KeySource, s) }
func Output(dir string) slog.Attr      { return slog.String(KeyOutput, dir) }
func BuildID(id string) slog.Attr      { return slog.String(KeyBuildID, id) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
