// Package config reads process configuration from the environment, an
// optional .env file and an optional KPI targets YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Dataset sources.
const (
	SourceXLSX     = "xlsx"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

type Config struct {
	HTTPAddr string

	DatasetSource string
	DatasetPath   string
	PostgresDSN   string
	SQLitePath    string
	LoadTimeout   time.Duration

	LogLevel  string
	LogFormat string

	KPI KPITargets
}

// KPITargets holds the percentages the KPI endpoints compare against, and
// the default decay applied to gap projections.
type KPITargets struct {
	Growth        float64 `yaml:"growth"`
	FiberAdoption float64 `yaml:"fiber_adoption"`
	GapReduction  float64 `yaml:"gap_reduction"`
	DecayRate     float64 `yaml:"decay_rate"`
	DecayPeriods  int     `yaml:"decay_periods"`
}

func defaultKPITargets() KPITargets {
	return KPITargets{
		Growth:        2,
		FiberAdoption: 5,
		GapReduction:  10,
		DecayRate:     0.10,
		DecayPeriods:  8,
	}
}

// Load reads .env when present, then the environment. KPI targets come from
// KPI_TARGETS_FILE when set and are overridden by their env variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		DatasetSource: getEnv("DATASET_SOURCE", SourceXLSX),
		DatasetPath:   getEnv("DATASET_PATH", "data/telecom.xlsx"),
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		SQLitePath:    getEnv("SQLITE_PATH", "data/telecom.db"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
	}

	var err error
	if cfg.LoadTimeout, err = getEnvAsDuration("LOAD_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	cfg.KPI = defaultKPITargets()
	if path := os.Getenv("KPI_TARGETS_FILE"); path != "" {
		if cfg.KPI, err = readKPITargets(path, cfg.KPI); err != nil {
			return nil, err
		}
	}
	if err := overrideKPITargets(&cfg.KPI); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DatasetSource {
	case SourceXLSX:
		if c.DatasetPath == "" {
			return errors.New("DATASET_PATH is not set")
		}
	case SourcePostgres:
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is not set")
		}
	case SourceSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is not set")
		}
	default:
		return fmt.Errorf("DATASET_SOURCE must be xlsx, postgres or sqlite, got %q", c.DatasetSource)
	}

	if c.LoadTimeout <= 0 {
		return errors.New("LOAD_TIMEOUT must be positive")
	}
	if c.KPI.DecayRate < 0 || c.KPI.DecayRate > 1 {
		return fmt.Errorf("GAP_DECAY_RATE must be within [0,1], got %v", c.KPI.DecayRate)
	}
	if c.KPI.DecayPeriods < 0 {
		return fmt.Errorf("GAP_DECAY_PERIODS must not be negative, got %d", c.KPI.DecayPeriods)
	}
	return nil
}

// readKPITargets overlays the YAML file on base; keys missing from the file
// keep their base value.
func readKPITargets(path string, base KPITargets) (KPITargets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read KPI targets: %w", err)
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, fmt.Errorf("parse KPI targets %s: %w", path, err)
	}
	return base, nil
}

func overrideKPITargets(t *KPITargets) error {
	var err error
	if t.Growth, err = getEnvAsFloat("KPI_GROWTH_TARGET", t.Growth); err != nil {
		return err
	}
	if t.FiberAdoption, err = getEnvAsFloat("KPI_FIBER_TARGET", t.FiberAdoption); err != nil {
		return err
	}
	if t.GapReduction, err = getEnvAsFloat("KPI_GAP_REDUCTION_TARGET", t.GapReduction); err != nil {
		return err
	}
	if t.DecayRate, err = getEnvAsFloat("GAP_DECAY_RATE", t.DecayRate); err != nil {
		return err
	}
	if t.DecayPeriods, err = getEnvAsInt("GAP_DECAY_PERIODS", t.DecayPeriods); err != nil {
		return err
	}
	return nil
}
