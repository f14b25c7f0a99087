package filestore

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound indicates the referenced file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrEmptyRef indicates an empty file reference was provided.
	ErrEmptyRef = errors.New("file reference must not be empty")
	// ErrInvalidRef indicates the file reference contains a path traversal segment.
	ErrInvalidRef = errors.New("file reference contains invalid path segment")
	// ErrInvalidName indicates the original file name reduces to nothing usable.
	ErrInvalidName = errors.New("invalid file name")
)

// MapHTTPStatus maps file store errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrEmptyRef) || errors.Is(err, ErrInvalidRef) || errors.Is(err, ErrInvalidName) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
