package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zaffworks/ugcplug/pkg/lifecycle"
)

type local struct {
	root   string
	logger *slog.Logger
}

func newLocal(cfg *Config, logger *slog.Logger) System {
	return &local{
		root:   cfg.Root,
		logger: logger.With("system", "filestore"),
	}
}

func (l *local) Start(lc *lifecycle.Coordinator) error {
	l.logger.Info("starting file store", "provider", ProviderLocal, "root", l.root)

	lc.OnStartup(func() {
		if err := os.MkdirAll(l.root, 0o755); err != nil {
			l.logger.Error("upload root initialization failed", "error", err)
			return
		}
		l.logger.Info("upload root ready", "root", l.root)
	})

	return nil
}

func (l *local) Save(ctx context.Context, originalName, contentType string, reader io.Reader) (string, error) {
	key, err := storedName(originalName)
	if err != nil {
		return "", err
	}

	// O_EXCL guards against the generated key ever landing twice.
	f, err := os.OpenFile(filepath.Join(l.root, key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("save file %s: %w", key, err)
	}

	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		return "", fmt.Errorf("save file %s: %w", key, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("save file %s: %w", key, err)
	}

	return key, nil
}

func (l *local) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(l.root, ref))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open file %s: %w", ref, err)
	}

	return f, nil
}

func (l *local) Exists(ctx context.Context, ref string) (bool, error) {
	if err := validateRef(ref); err != nil {
		return false, err
	}

	if _, err := os.Stat(filepath.Join(l.root, ref)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat file %s: %w", ref, err)
	}

	return true, nil
}
