package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "inputshowcase") {
		t.Errorf("GetConfigDir() = %v, should contain 'inputshowcase'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and other Unix-like systems")
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(xdg, "inputshowcase"); configDir != want {
		t.Errorf("GetConfigDir() = %v, want %v", configDir, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestSetConfigPath(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	SetConfigPath(custom)
	t.Cleanup(func() { SetConfigPath("") })

	got, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if got != custom {
		t.Errorf("GetConfigPath() = %v, want %v", got, custom)
	}

	dir, _ := GetConfigDir()
	if dir != filepath.Dir(custom) {
		t.Errorf("GetConfigDir() = %v, want %v", dir, filepath.Dir(custom))
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}

	if reg.Suggestions == nil || reg.Limits == nil || reg.Preferences == nil {
		t.Fatal("NewRegistry() sections should not be nil")
	}

	if len(reg.Suggestions.Hashtags) != 9 {
		t.Errorf("default hashtags = %d, want 9", len(reg.Suggestions.Hashtags))
	}

	if len(reg.Suggestions.Mentions) != 6 {
		t.Errorf("default mentions = %d, want 6", len(reg.Suggestions.Mentions))
	}

	if reg.Limits.Post != 280 {
		t.Errorf("NewRegistry().Limits.Post = %v, want 280", reg.Limits.Post)
	}

	if !reg.Preferences.AltScreen {
		t.Error("NewRegistry().Preferences.AltScreen should be true by default")
	}
}

func TestRegistryAddHashtag(t *testing.T) {
	reg := NewRegistry()
	before := len(reg.Suggestions.Hashtags)

	if !reg.AddHashtag("#GoLang") {
		t.Fatal("AddHashtag() should add a new tag")
	}
	if got := reg.Suggestions.Hashtags[len(reg.Suggestions.Hashtags)-1]; got != "GoLang" {
		t.Errorf("stored tag = %q, want marker stripped", got)
	}

	if reg.AddHashtag("golang") {
		t.Error("AddHashtag() should ignore case-insensitive duplicates")
	}
	if reg.AddHashtag("#") {
		t.Error("AddHashtag() should ignore a bare marker")
	}
	if len(reg.Suggestions.Hashtags) != before+1 {
		t.Errorf("hashtags = %d, want %d", len(reg.Suggestions.Hashtags), before+1)
	}
}

func TestRegistryAddMention(t *testing.T) {
	reg := &Registry{Version: 1}

	if !reg.AddMention("@gopher") {
		t.Fatal("AddMention() should add to an empty registry")
	}
	if reg.AddMention("Gopher") {
		t.Error("AddMention() should ignore duplicates")
	}
	if len(reg.Suggestions.Mentions) != 1 || reg.Suggestions.Mentions[0] != "gopher" {
		t.Errorf("mentions = %v", reg.Suggestions.Mentions)
	}
}

func TestRegistryRecordSearch(t *testing.T) {
	reg := NewRegistry()
	reg.Preferences.MaxRecent = 3
	reg.Suggestions.Recent = []string{"a", "b", "c"}

	reg.RecordSearch("  b ")
	if want := []string{"b", "a", "c"}; !stringSliceEqual(reg.Suggestions.Recent, want) {
		t.Errorf("Recent = %v, want %v", reg.Suggestions.Recent, want)
	}

	reg.RecordSearch("d")
	if want := []string{"d", "b", "a"}; !stringSliceEqual(reg.Suggestions.Recent, want) {
		t.Errorf("Recent = %v, want %v", reg.Suggestions.Recent, want)
	}

	reg.RecordSearch("   ")
	if len(reg.Suggestions.Recent) != 3 {
		t.Errorf("blank query should not be recorded, got %v", reg.Suggestions.Recent)
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	testConfigPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	reg := NewRegistry()
	reg.AddHashtag("GoLang")
	reg.AddMention("gopher")
	reg.Limits.Post = 140
	reg.Preferences.DefaultScreen = "social"

	if err := reg.SaveTo(testConfigPath); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	info, err := os.Stat(testConfigPath)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("config file mode = %v, want 0600", info.Mode().Perm())
	}
	if _, err := os.Stat(testConfigPath + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	loaded, err := LoadRegistryFrom(testConfigPath)
	if err != nil {
		t.Fatalf("LoadRegistryFrom() error = %v", err)
	}

	if loaded.Limits.Post != 140 {
		t.Errorf("Loaded post limit = %v, want 140", loaded.Limits.Post)
	}
	if loaded.Preferences.DefaultScreen != "social" {
		t.Errorf("Loaded default screen = %q, want social", loaded.Preferences.DefaultScreen)
	}
	if !stringSliceEqual(loaded.Suggestions.Hashtags, reg.Suggestions.Hashtags) {
		t.Errorf("Loaded hashtags = %v, want %v", loaded.Suggestions.Hashtags, reg.Suggestions.Hashtags)
	}
	if !stringSliceEqual(loaded.Suggestions.Mentions, reg.Suggestions.Mentions) {
		t.Errorf("Loaded mentions = %v, want %v", loaded.Suggestions.Mentions, reg.Suggestions.Mentions)
	}
}

func TestLoadRegistryFromMissingFile(t *testing.T) {
	reg, err := LoadRegistryFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadRegistryFrom() error = %v", err)
	}
	if reg.Limits.Post != DefaultPostLimit {
		t.Errorf("missing file should give defaults, got post limit %d", reg.Limits.Post)
	}
}

func TestParseRegistry(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, r *Registry)
	}{
		{
			name: "Partial limits fall back to defaults",
			yaml: "version: 1\nlimits:\n  post: 100\n",
			check: func(t *testing.T, r *Registry) {
				if r.Limits.Post != 100 {
					t.Errorf("Post = %d, want 100", r.Limits.Post)
				}
				if r.Limits.ReviewBody != DefaultReviewBodyLimit {
					t.Errorf("ReviewBody = %d, want default", r.Limits.ReviewBody)
				}
				if r.Suggestions == nil || len(r.Suggestions.Hashtags) == 0 {
					t.Error("missing suggestions section should get defaults")
				}
			},
		},
		{
			name: "Custom suggestions kept",
			yaml: "version: 1\nsuggestions:\n  hashtags: [Go]\n  mentions: [gopher]\n  search_items: [Item]\n",
			check: func(t *testing.T, r *Registry) {
				if !stringSliceEqual(r.Suggestions.Hashtags, []string{"Go"}) {
					t.Errorf("Hashtags = %v", r.Suggestions.Hashtags)
				}
				if r.Preferences.MaxRecent != DefaultMaxRecent {
					t.Errorf("MaxRecent = %d, want default", r.Preferences.MaxRecent)
				}
			},
		},
		{name: "Unsupported version", yaml: "version: 2\n", wantErr: true},
		{name: "Invalid YAML", yaml: "version: [1\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := parseRegistry([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseRegistry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, reg)
			}
		})
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	written, err := CreateDefaultConfig(false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if written != path {
		t.Errorf("written = %v, want %v", written, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# Input Showcase Configuration File") {
		t.Error("config file should start with the header comment")
	}

	if _, err := CreateDefaultConfig(false); err == nil {
		t.Error("second CreateDefaultConfig(false) should refuse to overwrite")
	}
	if _, err := CreateDefaultConfig(true); err != nil {
		t.Errorf("CreateDefaultConfig(true) error = %v", err)
	}
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Benchmark tests

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}

func BenchmarkRecordSearch(b *testing.B) {
	reg := NewRegistry()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.RecordSearch("keyboard")
	}
}
