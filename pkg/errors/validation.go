package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates a node identifier carried by a preview message.
//
// Identifiers come from the host graph and end up in log lines and output
// file names, so the rules are conservative:
//   - No empty identifiers
//   - Maximum length of 128 characters
//   - No control characters
//   - No path separators
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNodeID, "node id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidNodeID, "node id too long (max 128 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNodeID, "node id contains control characters")
		}
	}
	if strings.ContainsAny(id, `/\`) {
		return New(ErrCodeInvalidNodeID, "node id cannot contain path separators")
	}
	return nil
}

// ValidateOutputPath validates a path an artifact will be written to.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, `\`) {
		return New(ErrCodeInvalidInput, "output path %q names a directory", path)
	}
	return nil
}

// ValidatePreviewLimit checks a preview resolution limit against the node's
// widget range (256..8192).
func ValidatePreviewLimit(limit int) error {
	if limit < 256 || limit > 8192 {
		return New(ErrCodeInvalidInput, "preview limit %d out of range (256..8192)", limit)
	}
	return nil
}
