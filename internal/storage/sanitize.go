package storage

import (
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename reduces an uploaded filename to a filesystem safe key:
// directory components are stripped, unsafe characters collapse to "_",
// and leading dots are removed so the result can never traverse paths
// or hide as a dotfile.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")
	return name
}

// Extension returns the lowercased extension of name without the dot,
// or "" when there is none.
func Extension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	return strings.TrimPrefix(ext, ".")
}
