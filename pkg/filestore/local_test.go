package filestore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zaffworks/ugcplug/pkg/filestore"
	"github.com/zaffworks/ugcplug/pkg/lifecycle"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func localStore(t *testing.T) (filestore.System, string) {
	t.Helper()

	root := t.TempDir()
	store, err := filestore.New(&filestore.Config{
		Provider: filestore.ProviderLocal,
		Root:     root,
	}, testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	lc := lifecycle.New()
	if err := store.Start(lc); err != nil {
		t.Fatalf("Start: %v", err)
	}
	lc.WaitForStartup()

	return store, root
}

func TestLocalSave(t *testing.T) {
	store, root := localStore(t)
	ctx := context.Background()

	ref, err := store.Save(ctx, "photo.jpg", "image/jpeg", strings.NewReader("image bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasSuffix(ref, "_photo.jpg") {
		t.Errorf("ref = %q, want {token}_photo.jpg", ref)
	}
	if strings.ContainsAny(ref, `/\`) {
		t.Errorf("ref = %q, want no path separators", ref)
	}

	data, err := os.ReadFile(filepath.Join(root, ref))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "image bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestLocalSaveUniqueKeys(t *testing.T) {
	store, _ := localStore(t)
	ctx := context.Background()

	first, err := store.Save(ctx, "photo.jpg", "image/jpeg", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := store.Save(ctx, "photo.jpg", "image/jpeg", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if first == second {
		t.Errorf("identical refs for repeated uploads: %q", first)
	}
}

func TestLocalSaveSanitizesName(t *testing.T) {
	store, root := localStore(t)
	ctx := context.Background()

	ref, err := store.Save(ctx, "../../etc/passwd", "text/plain", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(ref, "_passwd") {
		t.Errorf("ref = %q, want base name only", ref)
	}

	if _, err := os.Stat(filepath.Join(root, ref)); err != nil {
		t.Errorf("stored file not under root: %v", err)
	}
}

func TestLocalSaveInvalidNames(t *testing.T) {
	store, _ := localStore(t)
	ctx := context.Background()

	for _, name := range []string{"", "   ", ".", ".."} {
		if _, err := store.Save(ctx, name, "text/plain", strings.NewReader("x")); !errors.Is(err, filestore.ErrInvalidName) {
			t.Errorf("Save(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestLocalOpen(t *testing.T) {
	store, _ := localStore(t)
	ctx := context.Background()

	ref, err := store.Save(ctx, "doc.txt", "text/plain", strings.NewReader("round trip"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Run("round trip", func(t *testing.T) {
		rc, err := store.Open(ctx, ref)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(data) != "round trip" {
			t.Errorf("content = %q", data)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := store.Open(ctx, "nope_doc.txt"); !errors.Is(err, filestore.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("empty ref", func(t *testing.T) {
		if _, err := store.Open(ctx, ""); !errors.Is(err, filestore.ErrEmptyRef) {
			t.Errorf("error = %v, want ErrEmptyRef", err)
		}
	})

	t.Run("traversal ref", func(t *testing.T) {
		for _, ref := range []string{"../secret", "/etc/passwd", "a/../../b"} {
			if _, err := store.Open(ctx, ref); !errors.Is(err, filestore.ErrInvalidRef) {
				t.Errorf("Open(%q) error = %v, want ErrInvalidRef", ref, err)
			}
		}
	})
}

func TestLocalExists(t *testing.T) {
	store, _ := localStore(t)
	ctx := context.Background()

	ref, err := store.Save(ctx, "doc.txt", "text/plain", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	ok, err := store.Exists(ctx, ref)
	if err != nil || !ok {
		t.Errorf("Exists(%q) = %v, %v, want true", ref, ok, err)
	}

	ok, err = store.Exists(ctx, "nope_doc.txt")
	if err != nil || ok {
		t.Errorf("Exists(missing) = %v, %v, want false", ok, err)
	}
}

func TestNewUnknownProvider(t *testing.T) {
	if _, err := filestore.New(&filestore.Config{Provider: "ftp"}, testLogger()); err == nil {
		t.Error("New accepted unknown provider")
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{filestore.ErrNotFound, 404},
		{filestore.ErrEmptyRef, 400},
		{filestore.ErrInvalidRef, 400},
		{filestore.ErrInvalidName, 400},
		{errors.New("disk full"), 500},
	}

	for _, tt := range tests {
		if got := filestore.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
