package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// setupRegistryTest points the XDG config home at a temp directory and
// returns a cleanup function. xdg resolves env vars at init time, so the
// package variable is overridden directly.
func setupRegistryTest(t *testing.T) func() {
	t.Helper()
	tmpDir := t.TempDir()

	originalConfigHome := xdg.ConfigHome
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	xdg.ConfigHome = tmpDir

	return func() {
		xdg.ConfigHome = originalConfigHome
	}
}

func TestGetRegistryPath(t *testing.T) {
	cleanup := setupRegistryTest(t)
	defer cleanup()

	path, err := GetRegistryPath()
	if err != nil {
		t.Fatalf("GetRegistryPath() error = %v", err)
	}

	if !strings.Contains(path, configDirName) {
		t.Errorf("GetRegistryPath() = %q, want path containing %q", path, configDirName)
	}
	if !strings.HasSuffix(path, upstreamsFileName) {
		t.Errorf("GetRegistryPath() = %q, want path ending with %q", path, upstreamsFileName)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cleanup := setupRegistryTest(t)
	defer cleanup()

	reg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(reg.Upstreams) != 0 {
		t.Errorf("Load() upstreams = %d, want 0 for missing file", len(reg.Upstreams))
	}
}

func TestLoadInvalidFile(t *testing.T) {
	cleanup := setupRegistryTest(t)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "upstreams.yaml")
	if err := os.WriteFile(path, []byte("upstreams: {not a list}"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for invalid YAML, got nil")
	}
	if !strings.Contains(err.Error(), "parse upstreams") {
		t.Errorf("Load() error = %v, want error containing 'parse upstreams'", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cleanup := setupRegistryTest(t)
	defer cleanup()

	var reg Registry
	reg.Add("parquet", "https://github.com/apache/parquet-cpp")
	reg.Add("arrow", "https://example.com/arrow-mirror")

	if err := Save("", reg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded.Upstreams) != 2 {
		t.Fatalf("Load() upstreams = %d, want 2", len(loaded.Upstreams))
	}

	url, err := loaded.Resolve("parquet")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if url != "https://github.com/apache/parquet-cpp" {
		t.Errorf("Resolve() = %q, want parquet URL", url)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		reg         Registry
		lookup      string
		want        string
		wantErr     bool
		errContains string
	}{
		{
			name:   "built-in default",
			reg:    Registry{},
			lookup: DefaultName,
			want:   DefaultURL,
		},
		{
			name: "file entry",
			reg: Registry{Upstreams: []Upstream{
				{Name: "parquet", URL: "https://example.com/parquet"},
			}},
			lookup: "parquet",
			want:   "https://example.com/parquet",
		},
		{
			name: "file entry shadows default",
			reg: Registry{Upstreams: []Upstream{
				{Name: DefaultName, URL: "https://example.com/arrow-mirror"},
			}},
			lookup: DefaultName,
			want:   "https://example.com/arrow-mirror",
		},
		{
			name:        "unknown name",
			reg:         Registry{},
			lookup:      "nope",
			wantErr:     true,
			errContains: "unknown upstream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.reg.Resolve(tt.lookup)

			if (err != nil) != tt.wantErr {
				t.Errorf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Resolve() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAll(t *testing.T) {
	var reg Registry
	reg.Add("zlib", "https://example.com/zlib")
	reg.Add("abseil", "https://example.com/abseil")

	all := reg.All()
	if len(all) != 3 {
		t.Fatalf("All() = %d upstreams, want 3 (two entries plus default)", len(all))
	}

	// Sorted by name, default included.
	wantNames := []string{"abseil", DefaultName, "zlib"}
	for i, want := range wantNames {
		if all[i].Name != want {
			t.Errorf("All()[%d].Name = %q, want %q", i, all[i].Name, want)
		}
	}
}

func TestAllShadowedDefault(t *testing.T) {
	var reg Registry
	reg.Add(DefaultName, "https://example.com/arrow-mirror")

	all := reg.All()
	if len(all) != 1 {
		t.Fatalf("All() = %d upstreams, want 1 when the default is shadowed", len(all))
	}
	if all[0].URL != "https://example.com/arrow-mirror" {
		t.Errorf("All()[0].URL = %q, want shadowing URL", all[0].URL)
	}
}

func TestAddReplaces(t *testing.T) {
	var reg Registry
	reg.Add("parquet", "https://example.com/old")
	reg.Add("parquet", "https://example.com/new")

	if len(reg.Upstreams) != 1 {
		t.Fatalf("Add() upstreams = %d, want 1 after replace", len(reg.Upstreams))
	}
	if reg.Upstreams[0].URL != "https://example.com/new" {
		t.Errorf("Add() URL = %q, want replaced URL", reg.Upstreams[0].URL)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name        string
		reg         Registry
		remove      string
		wantErr     bool
		errContains string
	}{
		{
			name: "existing entry",
			reg: Registry{Upstreams: []Upstream{
				{Name: "parquet", URL: "https://example.com/parquet"},
			}},
			remove: "parquet",
		},
		{
			name:        "built-in default",
			reg:         Registry{},
			remove:      DefaultName,
			wantErr:     true,
			errContains: "built in",
		},
		{
			name:        "unknown entry",
			reg:         Registry{},
			remove:      "nope",
			wantErr:     true,
			errContains: "unknown upstream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg.Remove(tt.remove)

			if (err != nil) != tt.wantErr {
				t.Errorf("Remove() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && tt.errContains != "" {
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Remove() error = %v, want error containing %q", err, tt.errContains)
				}
			}
		})
	}
}
