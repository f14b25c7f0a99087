package pagination_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/zaffworks/ugcplug/pkg/pagination"
	"github.com/zaffworks/ugcplug/pkg/query"
)

var testConfig = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func TestPageRequestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"zero values", 0, 0, 1, 20},
		{"negative page", -3, 10, 1, 10},
		{"oversized page size clamped", 1, 500, 1, 100},
		{"valid values untouched", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pagination.PageRequest{Page: tt.page, PageSize: tt.pageSize}
			req.Normalize(testConfig)

			if req.Page != tt.wantPage || req.PageSize != tt.wantPageSize {
				t.Errorf("normalized to (%d, %d), want (%d, %d)",
					req.Page, req.PageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestNewPageResult(t *testing.T) {
	t.Run("partial last page rounds up", func(t *testing.T) {
		result := pagination.NewPageResult([]int{1, 2, 3}, 23, 1, 10)
		if result.TotalPages != 3 {
			t.Errorf("TotalPages = %d, want 3", result.TotalPages)
		}
	})

	t.Run("empty data never nil", func(t *testing.T) {
		result := pagination.NewPageResult[int](nil, 0, 1, 10)
		if result.Data == nil {
			t.Error("Data = nil, want empty slice")
		}
		if result.TotalPages != 1 {
			t.Errorf("TotalPages = %d, want 1", result.TotalPages)
		}
	})
}

func TestSortFieldsUnmarshal(t *testing.T) {
	t.Run("string form", func(t *testing.T) {
		var fields pagination.SortFields
		if err := json.Unmarshal([]byte(`"name,-created_at"`), &fields); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		want := pagination.SortFields{
			{Field: "name"},
			{Field: "created_at", Descending: true},
		}
		if !reflect.DeepEqual(fields, want) {
			t.Errorf("fields = %v, want %v", fields, want)
		}
	})

	t.Run("array form", func(t *testing.T) {
		var fields pagination.SortFields
		data := `[{"Field": "name"}, {"Field": "created_at", "Descending": true}]`
		if err := json.Unmarshal([]byte(data), &fields); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		if len(fields) != 2 || fields[1] != (query.SortField{Field: "created_at", Descending: true}) {
			t.Errorf("fields = %v", fields)
		}
	})
}

func TestConfigFinalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := pagination.Config{}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("Finalize: %v", err)
		}
		if cfg.DefaultPageSize != 20 || cfg.MaxPageSize != 100 {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("TEST_PAGE_DEFAULT", "10")
		t.Setenv("TEST_PAGE_MAX", "50")

		cfg := pagination.Config{}
		err := cfg.Finalize(&pagination.ConfigEnv{
			DefaultPageSize: "TEST_PAGE_DEFAULT",
			MaxPageSize:     "TEST_PAGE_MAX",
		})
		if err != nil {
			t.Fatalf("Finalize: %v", err)
		}
		if cfg.DefaultPageSize != 10 || cfg.MaxPageSize != 50 {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("default above max rejected", func(t *testing.T) {
		cfg := pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
		if err := cfg.Finalize(nil); err == nil {
			t.Error("Finalize accepted default above max")
		}
	})
}
