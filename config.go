// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/prodcat/catalog"
)

const configFileName = ".prodcat.yaml"

type CatalogConfig struct {
	Capacity    int  `yaml:"capacity"`
	BloomBits   uint `yaml:"bloom_bits"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type SearchConfig struct {
	CacheTTLSeconds     int `yaml:"cache_ttl_seconds"`
	CacheCleanupSeconds int `yaml:"cache_cleanup_seconds"`
}

type SeedConfig struct {
	Path string `yaml:"path"`
}

type UIConfig struct {
	WordWrap     int  `yaml:"word_wrap"`
	ShowProgress bool `yaml:"show_progress"`
}

type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Search  SearchConfig  `yaml:"search"`
	Seed    SeedConfig    `yaml:"seed"`
	UI      UIConfig      `yaml:"ui"`
}

func defaultConfig() Config {
	opts := catalog.DefaultOptions()
	return Config{
		Catalog: CatalogConfig{
			Capacity:    opts.Capacity,
			BloomBits:   opts.BloomBits,
			BloomHashes: opts.BloomHashes,
		},
		Search: SearchConfig{
			CacheTTLSeconds:     300,
			CacheCleanupSeconds: 60,
		},
		UI: UIConfig{
			WordWrap:     72,
			ShowProgress: true,
		},
	}
}

// CatalogOptions converts the catalog section for catalog.NewProductsWithOptions
func (c *Config) CatalogOptions() catalog.Options {
	return catalog.Options{
		Capacity:    c.Catalog.Capacity,
		BloomBits:   c.Catalog.BloomBits,
		BloomHashes: c.Catalog.BloomHashes,
	}
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Search.CacheTTLSeconds) * time.Second
}

func (c *Config) CacheCleanup() time.Duration {
	return time.Duration(c.Search.CacheCleanupSeconds) * time.Second
}

// LoadConfig reads ~/.prodcat.yaml, falling back to the defaults when the
// file is missing or unreadable.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig()
		return &cfg, nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the config at configPath. Fields missing from the
// file keep their defaults; a missing file yields the defaults.
func LoadConfigFrom(configPath string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return &cfg, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fallback := defaultConfig()
		return &fallback, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := defaultConfig()
	if cfg.Catalog.Capacity < 0 {
		cfg.Catalog.Capacity = 0
	}
	if cfg.Catalog.BloomBits == 0 {
		cfg.Catalog.BloomBits = def.Catalog.BloomBits
	}
	if cfg.Catalog.BloomHashes == 0 {
		cfg.Catalog.BloomHashes = def.Catalog.BloomHashes
	}
	if cfg.Search.CacheTTLSeconds <= 0 {
		cfg.Search.CacheTTLSeconds = def.Search.CacheTTLSeconds
	}
	if cfg.Search.CacheCleanupSeconds <= 0 {
		cfg.Search.CacheCleanupSeconds = def.Search.CacheCleanupSeconds
	}
	if cfg.UI.WordWrap <= 0 {
		cfg.UI.WordWrap = def.UI.WordWrap
	}
}

// loadConfigOrDefault is what the commands use: a broken config is
// reported and replaced by the defaults.
func loadConfigOrDefault() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return cfg
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfigFile(configPath string) error {
	cfg := defaultConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 Prodcat Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	capacity := "unlimited"
	if config.Catalog.Capacity > 0 {
		capacity = fmt.Sprintf("%d products", config.Catalog.Capacity)
	}
	fmt.Printf("🌳 %sCatalog:%s\n", Green, Reset)
	fmt.Printf("  • %scapacity%s: %s\n", Green, Reset, capacity)
	fmt.Printf("  • %sbloom_bits%s: %d\n", Green, Reset, config.Catalog.BloomBits)
	fmt.Printf("  • %sbloom_hashes%s: %d\n\n", Green, Reset, config.Catalog.BloomHashes)

	fmt.Printf("🔍 %sSearch cache:%s\n", Green, Reset)
	fmt.Printf("  • %scache_ttl_seconds%s: %d\n", Green, Reset, config.Search.CacheTTLSeconds)
	fmt.Printf("  • %scache_cleanup_seconds%s: %d\n\n", Green, Reset, config.Search.CacheCleanupSeconds)

	seed := config.Seed.Path
	if seed == "" {
		seed = "(none, pass --seed)"
	}
	fmt.Printf("🌱 %sSeed:%s\n", Green, Reset)
	fmt.Printf("  • %spath%s: %s\n\n", Green, Reset, seed)

	fmt.Printf("🖥  %sUI:%s\n", Green, Reset)
	fmt.Printf("  • %sword_wrap%s: %d\n", Green, Reset, config.UI.WordWrap)
	fmt.Printf("  • %sshow_progress%s: %t\n\n", Green, Reset, config.UI.ShowProgress)

	fmt.Printf("💡 Edit %s to change these values.\n", configPath)
}
