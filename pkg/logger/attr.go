package logger

import (
	"log/slog"
	"maps"
	"slices"
)

// Error records err under "error". Returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// SessionID records the validation session id. Returns an empty Attr for "".
func SessionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("session_id", id)
}

// ValidationErrors groups failed field names by category under
// "validation_errors", with categories sorted by tag.
// Returns an empty Attr when there is nothing to report.
func ValidationErrors(errs map[string][]string) slog.Attr {
	if len(errs) == 0 {
		return slog.Attr{}
	}
	attrs := make([]slog.Attr, 0, len(errs))
	for _, tag := range slices.Sorted(maps.Keys(errs)) {
		attrs = append(attrs, slog.Any(tag, errs[tag]))
	}
	return slog.Attr{Key: "validation_errors", Value: slog.GroupValue(attrs...)}
}
