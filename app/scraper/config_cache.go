package scraper

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/eubelhor/house-scraper/app/parser"
)

// Built-in source set, used when the sources directory holds no
// configuration files. The tool works out of the box against the fixed
// target URLs; YAML files override or extend this set.
var defaultSources = []*SourceConfig{
	{
		Name: "house",
		URL:  "https://www.house.gov/representatives",
		Kind: parser.KindHouse,
		Rank: 0,
		Settings: SourceSettings{
			Enabled: true,
		},
	},
	{
		Name: "ballotpedia",
		URL:  "https://ballotpedia.org/List_of_current_members_of_the_U.S._Congress",
		Kind: parser.KindBallotpedia,
		Rank: 1,
		Settings: SourceSettings{
			Enabled: true,
		},
	},
	{
		Name: "govtrack",
		URL:  "https://www.govtrack.us/api/v2/role?current=true&role_type=representative&limit=500",
		Kind: parser.KindGovTrack,
		Rank: 2,
		Settings: SourceSettings{
			Enabled: true,
		},
	},
}

type ConfigCache struct {
	sourcesDir string
	cache      map[string]*SourceConfig
	mu         sync.RWMutex
}

func NewConfigCache(sourcesDir string) *ConfigCache {
	return &ConfigCache{
		sourcesDir: sourcesDir,
		cache:      make(map[string]*SourceConfig),
	}
}

func (cc *ConfigCache) Run() error {
	files, err := cc.findConfigFiles()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		cc.loadDefaults()
		slog.Debug("No source configuration files found, using built-in sources", "dir", cc.sourcesDir)
		return nil
	}

	for _, file := range files {
		// Derive source name from filename (remove extension)
		fileName := filepath.Base(file)
		sourceName := strings.TrimSuffix(fileName, filepath.Ext(fileName))

		config, err := cc.LoadConfig(sourceName)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}

		slog.Debug("Source configuration loaded", "source", sourceName,
			"kind", config.Kind, "rank", config.Rank, "enabled", config.Settings.Enabled)
	}

	return nil
}

func (cc *ConfigCache) LoadConfig(sourceName string) (*SourceConfig, error) {
	configFile := cc.getConfigFilePath(sourceName)
	sourceConfig, err := cc.parseConfig(configFile)
	if err != nil {
		return nil, err
	}

	// Set source name from parameter
	sourceConfig.Name = sourceName

	if err := cc.validateConfig(sourceConfig); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.cache[sourceConfig.Name] = sourceConfig

	return sourceConfig, nil
}

// GetConfigs returns the enabled sources ordered by rank.
func (cc *ConfigCache) GetConfigs() []*SourceConfig {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	configs := make([]*SourceConfig, 0, len(cc.cache))
	for _, config := range cc.cache {
		if config.Settings.Enabled {
			configs = append(configs, config)
		}
	}

	sort.Slice(configs, func(i, j int) bool {
		if configs[i].Rank != configs[j].Rank {
			return configs[i].Rank < configs[j].Rank
		}
		return configs[i].Name < configs[j].Name
	})

	return configs
}

func (cc *ConfigCache) GetConfig(sourceName string) (*SourceConfig, error) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	config, ok := cc.cache[sourceName]
	if !ok {
		return nil, fmt.Errorf("source configuration not found: %s", sourceName)
	}
	return config, nil
}

func (cc *ConfigCache) GetConfigCount() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.cache)
}

func (cc *ConfigCache) findConfigFiles() ([]string, error) {
	if _, err := os.Stat(cc.sourcesDir); os.IsNotExist(err) {
		return nil, nil
	}

	files, err := filepath.Glob(filepath.Join(cc.sourcesDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YML files: %w", err)
	}

	yamlFiles, err := filepath.Glob(filepath.Join(cc.sourcesDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YAML files: %w", err)
	}

	return append(files, yamlFiles...), nil
}

func (cc *ConfigCache) loadDefaults() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	for _, config := range defaultSources {
		// Copy so callers can adjust a cache entry without touching the
		// package-level defaults.
		c := *config
		cc.cache[c.Name] = &c
	}
}

func (cc *ConfigCache) getConfigFilePath(sourceName string) string {
	ymlPath := filepath.Join(cc.sourcesDir, sourceName+".yml")
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}
	return filepath.Join(cc.sourcesDir, sourceName+".yaml")
}

func (cc *ConfigCache) parseConfig(path string) (*SourceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config SourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &config, nil
}

func (cc *ConfigCache) validateConfig(config *SourceConfig) error {
	if config.URL == "" {
		return fmt.Errorf("source URL is required")
	}
	if _, err := parser.ForKind(config.Kind); err != nil {
		return err
	}
	if config.Rank < 0 {
		return fmt.Errorf("rank must be non-negative")
	}
	if config.Settings.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	return nil
}
