// Package fsutils wraps the filesystem primitives the service relies on:
// JSON documents, template text files, directory listings, and the
// identifier validation that guards every externally supplied path segment.
package fsutils

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"

	"template-renderer/internal/apperr"
)

// MaxNameLength bounds client ids, template names and category slugs.
const MaxNameLength = 50

var allowedNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateName checks an externally supplied identifier before it is used
// to build a filesystem path. This is the sole defense against path
// traversal, so every path-taking operation must call it.
func ValidateName(name string) error {
	if name == "" || len(name) > MaxNameLength {
		return apperr.Validation("invalid identifier")
	}
	if !allowedNamePattern.MatchString(name) {
		return apperr.Validation("invalid identifier")
	}
	// The pattern above already excludes these, but keep the explicit
	// traversal check so a future pattern change can't silently drop it.
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return apperr.Validation("invalid identifier")
	}
	return nil
}

// ReadJSON reads and unmarshals a JSON file into a generic map.
// A missing file yields an empty map; a file that exists but does not
// parse is a validation-class error, never silently defaulted.
func ReadJSON(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, apperr.IO(err, "reading %s", path)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, apperr.Validation("invalid JSON data in %s", path)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// WriteJSON serializes v with indentation and overwrites path.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperr.IO(err, "marshaling %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperr.IO(err, "writing %s", path)
	}
	return nil
}

// ReadText reads a text file, returning a distinct not-found error when
// the file is absent so callers can map it to a 404.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperr.NotFound("file not found: %s", path)
		}
		return "", apperr.IO(err, "reading %s", path)
	}
	return string(data), nil
}

// EnsureDir creates a directory (and parents) if it doesn't exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return apperr.IO(err, "creating directory %s", path)
	}
	return nil
}

// ListDir returns the entries of a directory. A missing directory yields
// an empty list, never an error.
func ListDir(path string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []os.DirEntry{}, nil
		}
		return nil, apperr.IO(err, "reading directory %s", path)
	}
	return entries, nil
}

// FileExists checks if a path exists and is a regular file (not a directory).
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// RemoveFile deletes a file. Deleting a file that does not exist is a
// no-op, making deletes idempotent.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return apperr.IO(err, "deleting %s", path)
	}
	return nil
}

// RemoveTree removes a directory subtree. Best-effort: a missing tree is
// not an error.
func RemoveTree(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return apperr.IO(err, "removing %s", path)
	}
	return nil
}
