package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type testPipeline struct {
	RecordCount int           `mapstructure:"record_count"`
	StageDelay  time.Duration `mapstructure:"stage_delay"`
}

type testConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Pipeline      testPipeline `yaml:"pipeline" mapstructure:"pipeline"`
}

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("expected logging defaults to apply, got level %q", cfg.Logging.Level)
		}
	})

	t.Run("production environment keeps debug false", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
	})
}

func TestServiceConfigValidate(t *testing.T) {
	valid := func(env string) ServiceConfig {
		c := ServiceConfig{Name: "svc", Environment: env}
		c.Logging.ApplyDefaults()
		return c
	}
	badLogging := valid("production")
	badLogging.Logging.Level = "loud"

	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr bool
		errMsg  string
	}{
		{"valid development", valid("development"), false, ""},
		{"valid production", valid("production"), false, ""},
		{"missing name", ServiceConfig{Environment: "production"}, true, "config.name is required"},
		{"invalid environment", valid("invalid"), true, "config.environment must be one of"},
		{"invalid logging", badLogging, true, "config.logging"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	yamlContent := `
name: batchpipe
environment: staging
pipeline:
  record_count: 5
  stage_delay: 250ms
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg testConfig
	if err := LoadConfig("batchpipe", &cfg, WithConfigFile(configPath), WithEnvPrefix("BPTEST")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Name != "batchpipe" || cfg.Environment != "staging" {
		t.Errorf("unexpected service config %+v", cfg.ServiceConfig)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging.level debug, got %q", cfg.Logging.Level)
	}
	if cfg.Pipeline.RecordCount != 5 || cfg.Pipeline.StageDelay != 250*time.Millisecond {
		t.Errorf("unexpected pipeline config %+v", cfg.Pipeline)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("pipeline:\n  record_count: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BPTEST_PIPELINE_RECORD_COUNT", "7")
	t.Setenv("BPTEST_PIPELINE_STAGE_DELAY", "0s")

	var cfg testConfig
	if err := LoadConfig("batchpipe", &cfg, WithConfigFile(configPath), WithEnvPrefix("BPTEST")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Pipeline.RecordCount != 7 {
		t.Errorf("expected env override 7, got %d", cfg.Pipeline.RecordCount)
	}
	if cfg.Pipeline.StageDelay != 0 {
		t.Errorf("expected stage delay 0, got %v", cfg.Pipeline.StageDelay)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	var cfg testConfig
	err := LoadConfig("nonexistent-service", &cfg,
		WithConfigFile("/nonexistent/path.yml"),
		WithEnvPrefix("BPTEST_DEFAULTS"),
		WithDefaults(map[string]any{
			"name":                  "batchpipe",
			"pipeline.record_count": 20,
			"pipeline.stage_delay":  "500ms",
		}),
	)
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
	if cfg.Name != "batchpipe" || cfg.Pipeline.RecordCount != 20 || cfg.Pipeline.StageDelay != 500*time.Millisecond {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("pipeline: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var cfg testConfig
	if err := LoadConfig("batchpipe", &cfg, WithConfigFile(configPath)); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("BPTEST_ENVFILE_PIPELINE_RECORD_COUNT=3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("BPTEST_ENVFILE_PIPELINE_RECORD_COUNT") })

	var cfg testConfig
	err := LoadConfig("batchpipe", &cfg,
		WithConfigFile("/nonexistent/path.yml"),
		WithEnvFile(envPath),
		WithEnvPrefix("BPTEST_ENVFILE"),
	)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Pipeline.RecordCount != 3 {
		t.Errorf("expected record_count from .env, got %d", cfg.Pipeline.RecordCount)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/batchpipe/config.yml": true,
		"./config.yml":               true,
		"./.env":                     true,
		"./cmd/batchpipe/.env":       true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("batchpipe", LoaderConfig{})
	want := ResolvedFiles{
		ConfigFile: "./cmd/batchpipe/config.yml",
		EnvFile:    "./cmd/batchpipe/.env",
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("ResolveFiles mismatch (-want +got):\n%s", diff)
	}
}

func TestResolver_ExplicitPathsWin(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{files: map[string]bool{"./config.yml": true}}}
	files := resolver.ResolveFiles("batchpipe", LoaderConfig{ConfigFile: "/etc/bp.yml", EnvFile: "/etc/bp.env"})
	if files.ConfigFile != "/etc/bp.yml" || files.EnvFile != "/etc/bp.env" {
		t.Errorf("explicit paths not kept: %+v", files)
	}
}

func TestResolver_NothingFound(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{}}
	if files := resolver.ResolveFiles("batchpipe", LoaderConfig{}); files != (ResolvedFiles{}) {
		t.Errorf("expected empty resolution, got %+v", files)
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	WithFileSystem(&mockFS{})(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("batchpipe_")(&lc)

	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("unexpected paths %+v", lc)
	}
	if lc.EnvPrefix != "BATCHPIPE" {
		t.Errorf("expected normalized prefix BATCHPIPE, got %q", lc.EnvPrefix)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("PIPELINE_STAGE_DELAY")
	want := []string{
		"pipeline_stage_delay",
		"pipeline.stage.delay",
		"pipeline.stage_delay",
		"pipeline_stage.delay",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("variants mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"name"}, generateEnvKeyVariants("NAME")); diff != "" {
		t.Errorf("single word mismatch (-want +got):\n%s", diff)
	}
}
