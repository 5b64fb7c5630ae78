package main

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the host-side editor configuration; the session itself never
// reads it.
type Config struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	AutoSave     bool   `yaml:"auto_save"`
	LastFile     string `yaml:"last_file"`
	TileCatalog  string `yaml:"tile_catalog"`
}

func defaultConfig() Config {
	return Config{
		WindowWidth:  1280,
		WindowHeight: 720,
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tankforge-editor.yaml"
	}
	return filepath.Join(dir, "tankforge", "editor.yaml")
}

// loadConfig returns the saved config, or defaults when the file is
// missing or unreadable.
func loadConfig(path string) Config {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("config %s: %v, using defaults", path, err)
		return defaultConfig()
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		cfg.WindowWidth = 1280
		cfg.WindowHeight = 720
	}
	return cfg
}

func saveConfig(path string, cfg Config) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Printf("config: %v", err)
		return
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		log.Printf("config: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("config: %v", err)
	}
}
