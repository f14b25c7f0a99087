package config_test

import (
	"os"
	"testing"

	"github.com/zaffworks/ugcplug/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr = %q", cfg.Server.Addr())
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("BasePath = %q", cfg.API.BasePath)
	}
	if cfg.API.MaxUploadSizeBytes() != 50*1024*1024 {
		t.Errorf("MaxUploadSizeBytes = %d, want 50MB", cfg.API.MaxUploadSizeBytes())
	}
	if cfg.FileStore.Provider != "local" {
		t.Errorf("FileStore.Provider = %q", cfg.FileStore.Provider)
	}
	if cfg.ShutdownTimeout != "30s" {
		t.Errorf("ShutdownTimeout = %q", cfg.ShutdownTimeout)
	}
}

func TestLoadBaseFile(t *testing.T) {
	t.Chdir(t.TempDir())

	base := `
shutdown_timeout = "45s"

[server]
port = 9090

[api]
max_upload_size = "10MB"

[filestore]
root = "data/uploads"
`
	if err := os.WriteFile(config.BaseConfigFile, []byte(base), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.API.MaxUploadSizeBytes() != 10*1024*1024 {
		t.Errorf("MaxUploadSizeBytes = %d, want 10MB", cfg.API.MaxUploadSizeBytes())
	}
	if cfg.FileStore.Root != "data/uploads" {
		t.Errorf("FileStore.Root = %q", cfg.FileStore.Root)
	}
	if cfg.ShutdownTimeout != "45s" {
		t.Errorf("ShutdownTimeout = %q", cfg.ShutdownTimeout)
	}
}

func TestLoadOverlay(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvUGCEnv, "staging")

	base := `
[server]
port = 9090
host = "127.0.0.1"
`
	overlay := `
[server]
port = 9999
`
	if err := os.WriteFile(config.BaseConfigFile, []byte(base), 0o644); err != nil {
		t.Fatalf("write base: %v", err)
	}
	if err := os.WriteFile("config.staging.toml", []byte(overlay), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Port = %d, want overlay value 9999", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Host = %q, want base value retained", cfg.Server.Host)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UGC_SERVER_PORT", "7777")
	t.Setenv("UGC_FILESTORE_ROOT", "/srv/uploads")
	t.Setenv("UGC_API_MAX_UPLOAD_SIZE", "5MB")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 7777 {
		t.Errorf("Port = %d, want env value 7777", cfg.Server.Port)
	}
	if cfg.FileStore.Root != "/srv/uploads" {
		t.Errorf("FileStore.Root = %q", cfg.FileStore.Root)
	}
	if cfg.API.MaxUploadSizeBytes() != 5*1024*1024 {
		t.Errorf("MaxUploadSizeBytes = %d, want 5MB", cfg.API.MaxUploadSizeBytes())
	}
}

func TestLoadInvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())

	base := `
[server]
port = 99999
`
	if err := os.WriteFile(config.BaseConfigFile, []byte(base), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := config.Load(); err == nil {
		t.Error("Load accepted out-of-range port")
	}
}
