// Package filestore persists uploaded files under collision-resistant names
// and returns relative references usable for later retrieval. It provides a
// local-disk implementation and an Azure Blob Storage implementation.
package filestore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/zaffworks/ugcplug/pkg/lifecycle"
)

// System manages uploaded file persistence and lifecycle coordination.
type System interface {
	// Start registers a startup hook that initializes the upload area.
	Start(lc *lifecycle.Coordinator) error
	// Save writes the file bytes under a generated {token}_{original-name} key
	// and returns that key as the retrieval reference. The write completes
	// before Save returns.
	Save(ctx context.Context, originalName, contentType string, reader io.Reader) (string, error)
	// Open returns a stream for the file at the given reference. The caller
	// must close the reader. Returns ErrNotFound if no such file exists.
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
	// Exists reports whether a file exists at the given reference.
	Exists(ctx context.Context, ref string) (bool, error)
}

// New creates a file store from the given configuration.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	switch cfg.Provider {
	case ProviderLocal:
		return newLocal(cfg, logger), nil
	case ProviderAzure:
		return newAzure(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown filestore provider: %q", cfg.Provider)
	}
}

// storedName builds the unique storage key for an uploaded file. The original
// name is reduced to its base component so client-supplied paths cannot escape
// the upload area; the random token makes the key collision-resistant.
func storedName(originalName string) (string, error) {
	name := filepath.Base(strings.TrimSpace(originalName))
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidName
	}
	return uuid.NewString() + "_" + name, nil
}

func validateRef(ref string) error {
	if ref == "" {
		return ErrEmptyRef
	}
	if strings.Contains(ref, "..") || strings.HasPrefix(ref, "/") {
		return ErrInvalidRef
	}
	return nil
}
