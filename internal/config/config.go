package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config captures the settings required to boot the mobility engine.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Data       DataConfig       `yaml:"data"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Cache      CacheConfig      `yaml:"cache"`
}

// CacheConfig controls the optional answer cache. An empty address keeps the
// in-process noop cache.
type CacheConfig struct {
	Address  string        `yaml:"address"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TLS      bool          `yaml:"tls"`
	TTL      time.Duration `yaml:"ttl"`
}

// ServerConfig controls gRPC listener behaviour.
type ServerConfig struct {
	Address         string        `yaml:"address"`
	MetricsAddress  string        `yaml:"metricsAddress"`
	GracefulTimeout time.Duration `yaml:"gracefulTimeout"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// DataConfig locates the normalized dataset exports.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// VocabularyConfig controls vocabulary-pack loading for the resolver. An
// empty path keeps the built-in corpus.
type VocabularyConfig struct {
	Path string `yaml:"path"`
}

// GridConfig sets the cell size for transit proximity binning, in degrees.
type GridConfig struct {
	LatStep float64 `yaml:"latStep"`
	LonStep float64 `yaml:"lonStep"`
}

// AnalysisConfig holds the evidence thresholds and aggregation limits.
type AnalysisConfig struct {
	// MinEvidenceRows is the filtered row count above which a result is
	// graded verified. Non-empty results at or below it are partial.
	MinEvidenceRows int `yaml:"minEvidenceRows"`
	// PartialFloor is the secondary minimum: a partial result at or below
	// it still enters the fallback cascade.
	PartialFloor int `yaml:"partialFloor"`
	// MinWeatherTypeRows is the per-category minimum of weather-tagged rows
	// for the service type lift ranking.
	MinWeatherTypeRows int        `yaml:"minWeatherTypeRows"`
	TopZones           int        `yaml:"topZones"`
	TopNeighborhoods   int        `yaml:"topNeighborhoods"`
	Grid               GridConfig `yaml:"grid"`
	// WidenCeilingDays caps window widening during fallback.
	WidenCeilingDays int `yaml:"widenCeilingDays"`
}

// SummarizerConfig selects and bounds the external reformulation layer.
// Provider is one of gemini, anthropic, openai or none.
type SummarizerConfig struct {
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	APIKey   string        `yaml:"apiKey"`
	BaseURL  string        `yaml:"baseURL"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Load initialises Config from a YAML file and optional environment overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("MOBILITY_ENGINE_CONFIG")
	}

	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Address:         ":50061",
			MetricsAddress:  ":2112",
			GracefulTimeout: 10 * time.Second,
		},
		Logging:    LoggingConfig{Level: "info", JSON: false},
		Data:       DataConfig{Dir: "data"},
		Vocabulary: VocabularyConfig{Path: "configs/vocabulary/default.yaml"},
		Analysis: AnalysisConfig{
			MinEvidenceRows:    5,
			PartialFloor:       3,
			MinWeatherTypeRows: 5,
			TopZones:           5,
			TopNeighborhoods:   8,
			Grid:               GridConfig{LatStep: 0.008, LonStep: 0.010},
			WidenCeilingDays:   365,
		},
		Summarizer: SummarizerConfig{
			Provider: "none",
			Timeout:  12 * time.Second,
		},
		Cache: CacheConfig{TTL: 5 * time.Minute},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MOBILITY_ENGINE_SERVER_ADDRESS"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("MOBILITY_ENGINE_METRICS_ADDRESS"); v != "" {
		cfg.Server.MetricsAddress = v
	}
	if v := os.Getenv("MOBILITY_ENGINE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MOBILITY_ENGINE_LOG_FORMAT"); v == "json" {
		cfg.Logging.JSON = true
	}
	if v := os.Getenv("MOBILITY_ENGINE_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("MOBILITY_ENGINE_VOCABULARY_PATH"); v != "" {
		cfg.Vocabulary.Path = v
	}
	if v := os.Getenv("MOBILITY_ENGINE_MIN_EVIDENCE_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Analysis.MinEvidenceRows = n
		}
	}
	if v := os.Getenv("MOBILITY_ENGINE_GRID_LAT_STEP"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Analysis.Grid.LatStep = f
		}
	}
	if v := os.Getenv("MOBILITY_ENGINE_GRID_LON_STEP"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Analysis.Grid.LonStep = f
		}
	}
	if v := os.Getenv("MOBILITY_ENGINE_SUMMARIZER_PROVIDER"); v != "" {
		cfg.Summarizer.Provider = v
	}
	if v := os.Getenv("MOBILITY_ENGINE_SUMMARIZER_MODEL"); v != "" {
		cfg.Summarizer.Model = v
	}
	if v := os.Getenv("MOBILITY_ENGINE_SUMMARIZER_API_KEY"); v != "" {
		cfg.Summarizer.APIKey = v
	}
	if v := os.Getenv("MOBILITY_ENGINE_SUMMARIZER_BASE_URL"); v != "" {
		cfg.Summarizer.BaseURL = v
	}
	if v := os.Getenv("MOBILITY_ENGINE_SUMMARIZER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Summarizer.Timeout = d
		}
	}
	if v := os.Getenv("MOBILITY_ENGINE_CACHE_ADDRESS"); v != "" {
		cfg.Cache.Address = v
	}
	if v := os.Getenv("MOBILITY_ENGINE_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Cache.TTL = d
		}
	}
}
