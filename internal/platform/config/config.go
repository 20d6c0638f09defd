package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Swipe holds the interaction tuning the discovery deck consumes.
type Swipe struct {
	DistanceThreshold float64 `yaml:"distance_threshold"`
	VelocityThreshold float64 `yaml:"velocity_threshold"`
	PageSize          int     `yaml:"page_size"`
	MaxSwipes         int     `yaml:"max_swipes_per_session"`
	PrefetchLowWater  int     `yaml:"prefetch_low_water"`
}

type Config struct {
	DataDir     string `yaml:"-"`
	DBPath      string `yaml:"-"`
	APIBaseURL  string `yaml:"api_base_url"`
	APIKey      string `yaml:"api_key"`
	SessionType string `yaml:"session_type"`
	Swipe       Swipe  `yaml:"swipe"`
}

func defaults(dataDir string) Config {
	return Config{
		DataDir:     dataDir,
		DBPath:      filepath.Join(dataDir, "giftdrift.db"),
		APIBaseURL:  "http://localhost:8799",
		SessionType: "discovery",
		Swipe: Swipe{
			DistanceThreshold: 150,
			VelocityThreshold: 500,
			PageSize:          10,
			MaxSwipes:         50,
			PrefetchLowWater:  2,
		},
	}
}

// Load reads <dataDir>/config.yaml when present and applies GIFTDRIFT_*
// environment overrides on top. A missing file is not an error.
func Load(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := defaults(dataDir)

	raw, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config.yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config.yaml: %w", err)
	}

	if v := os.Getenv("GIFTDRIFT_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("GIFTDRIFT_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("GIFTDRIFT_MAX_SWIPES"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n <= 0 {
			return Config{}, fmt.Errorf("GIFTDRIFT_MAX_SWIPES must be a positive integer")
		}
		cfg.Swipe.MaxSwipes = n
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url is required")
	}
	if c.Swipe.DistanceThreshold <= 0 || c.Swipe.VelocityThreshold <= 0 {
		return fmt.Errorf("swipe thresholds must be positive")
	}
	if c.Swipe.PageSize <= 0 || c.Swipe.MaxSwipes <= 0 {
		return fmt.Errorf("page size and max swipes must be positive")
	}
	if c.Swipe.PrefetchLowWater < 0 {
		return fmt.Errorf("prefetch low water must not be negative")
	}
	return nil
}
