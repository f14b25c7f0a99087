package filestore_test

import (
	"testing"

	"github.com/zaffworks/ugcplug/pkg/filestore"
)

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := &filestore.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if cfg.Provider != filestore.ProviderLocal {
		t.Errorf("Provider = %q, want local", cfg.Provider)
	}
	if cfg.Root != "uploaded_files" {
		t.Errorf("Root = %q, want uploaded_files", cfg.Root)
	}
	if cfg.ContainerName != "uploads" {
		t.Errorf("ContainerName = %q, want uploads", cfg.ContainerName)
	}
}

func TestConfigFinalizeEnv(t *testing.T) {
	t.Setenv("TEST_FILESTORE_PROVIDER", "local")
	t.Setenv("TEST_FILESTORE_ROOT", "/var/uploads")

	cfg := &filestore.Config{Root: "ignored"}
	err := cfg.Finalize(&filestore.Env{
		Provider: "TEST_FILESTORE_PROVIDER",
		Root:     "TEST_FILESTORE_ROOT",
	})
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if cfg.Root != "/var/uploads" {
		t.Errorf("Root = %q, want env override", cfg.Root)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     filestore.Config
		wantErr bool
	}{
		{"local defaults", filestore.Config{Provider: "local"}, false},
		{
			"azure complete",
			filestore.Config{
				Provider:         "azure",
				ConnectionString: "UseDevelopmentStorage=true",
			},
			false,
		},
		{"azure missing connection string", filestore.Config{Provider: "azure", ConnectionString: ""}, true},
		{"unknown provider", filestore.Config{Provider: "s3"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize(nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("Finalize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
