package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"telecom-metrics-service/internal/config"
)

// isolate runs the test in an empty directory with no config variables set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{
		"HTTP_ADDR", "DATASET_SOURCE", "DATASET_PATH", "POSTGRES_DSN", "SQLITE_PATH",
		"LOAD_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT", "KPI_TARGETS_FILE", "KPI_GROWTH_TARGET",
		"KPI_FIBER_TARGET", "KPI_GAP_REDUCTION_TARGET", "GAP_DECAY_RATE", "GAP_DECAY_PERIODS",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.DatasetSource != config.SourceXLSX || cfg.LoadTimeout != 30*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.KPI.Growth != 2 || cfg.KPI.FiberAdoption != 5 || cfg.KPI.GapReduction != 10 {
		t.Fatalf("unexpected KPI defaults: %+v", cfg.KPI)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("HTTP_ADDR")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("HTTP_ADDR=:9090\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected .env value, got %s", cfg.HTTPAddr)
	}
}

func TestLoad_KPIFileThenEnv(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "kpi.yaml")
	body := "growth: 3.5\nfiber_adoption: 7\ndecay_periods: 12\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write kpi file: %v", err)
	}
	t.Setenv("KPI_TARGETS_FILE", path)
	t.Setenv("KPI_FIBER_TARGET", "6")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.KPI.Growth != 3.5 {
		t.Fatalf("expected growth from file, got %v", cfg.KPI.Growth)
	}
	if cfg.KPI.FiberAdoption != 6 {
		t.Fatalf("expected env override, got %v", cfg.KPI.FiberAdoption)
	}
	if cfg.KPI.GapReduction != 10 || cfg.KPI.DecayPeriods != 12 {
		t.Fatalf("unexpected merge result: %+v", cfg.KPI)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown source", "DATASET_SOURCE", "csv"},
		{"postgres without dsn", "DATASET_SOURCE", "postgres"},
		{"bad timeout", "LOAD_TIMEOUT", "soon"},
		{"bad target", "KPI_GROWTH_TARGET", "two"},
		{"decay out of range", "GAP_DECAY_RATE", "1.5"},
		{"missing kpi file", "KPI_TARGETS_FILE", "does-not-exist.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)

			if _, err := config.Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
