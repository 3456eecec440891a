package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP server and extraction settings.
type ServerConfig struct {
	Addr          string   `yaml:"addr"`
	LogLevel      string   `yaml:"logLevel"`
	LogOutputs    []string `yaml:"logOutputs"`
	MaxUploadSize int64    `yaml:"maxUploadSize"`
	OCRLanguage   string   `yaml:"ocrLanguage"`
	RasterDPI     float64  `yaml:"rasterDPI"`
}

// DefaultServerConfig returns the settings used when no config file is
// present.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:          ":8080",
		LogLevel:      "info",
		LogOutputs:    []string{"stdout", "logs/app.log"},
		MaxUploadSize: 50 * 1024 * 1024,
		OCRLanguage:   "eng",
		RasterDPI:     200,
	}
}

// LoadServerConfig reads a YAML config file, filling unset fields with
// defaults. A missing file is not an error.
func LoadServerConfig(path string) (*ServerConfig, error) {
	cfg := DefaultServerConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if len(cfg.LogOutputs) == 0 {
		cfg.LogOutputs = []string{"stdout"}
	}
	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = 50 * 1024 * 1024
	}
	if cfg.OCRLanguage == "" {
		cfg.OCRLanguage = "eng"
	}
	if cfg.RasterDPI <= 0 {
		cfg.RasterDPI = 200
	}

	return cfg, nil
}
