package storage

import (
	"os"
	"path/filepath"
)

const (
	reasonEmpty       = "key cannot be empty"
	reasonAbsolute    = "absolute paths are not allowed"
	reasonBadSegments = "contains unsupported segments"
)

// splitKey validates key and returns its path segments.
// Checks run in a fixed order and the first violation is reported.
func splitKey(key string) ([]string, error) {
	if key == "" {
		return nil, &KeyError{Key: key, Reason: reasonEmpty}
	}

	if filepath.IsAbs(key) || os.IsPathSeparator(key[0]) {
		return nil, &KeyError{Key: key, Reason: reasonAbsolute}
	}

	segments := splitSegments(key)
	for _, seg := range segments {
		if !isPlainSegment(seg) {
			return nil, &KeyError{Key: key, Reason: reasonBadSegments}
		}
	}

	return segments, nil
}

// splitSegments splits on every platform separator and keeps empty segments.
func splitSegments(key string) []string {
	var segments []string
	start := 0
	for i := 0; i < len(key); i++ {
		if os.IsPathSeparator(key[i]) {
			segments = append(segments, key[start:i])
			start = i + 1
		}
	}
	return append(segments, key[start:])
}

func isPlainSegment(seg string) bool {
	switch seg {
	case "", ".", "..":
		return false
	}
	// Volume names such as "C:" only exist on Windows; elsewhere this is always empty.
	return filepath.VolumeName(seg) == ""
}
