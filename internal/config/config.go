package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"panefind/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int              `toml:"version"`
	Search     SearchSettings   `toml:"search"`
	Debounce   DebounceSettings `toml:"debounce"`
	UISettings UISettings       `toml:"ui"`
}

// SearchSettings seeds the search options of the first session
type SearchSettings struct {
	CaseSensitive bool `toml:"case_sensitive"`
	UseRegex      bool `toml:"use_regex"`
	UseWildcard   bool `toml:"use_wildcard"`
}

// DebounceSettings holds the search timing knobs in milliseconds
type DebounceSettings struct {
	QueryMillis    int `toml:"query_ms"`
	MutationMillis int `toml:"mutation_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelpBar  bool `toml:"show_help_bar"`
	ConsoleLimit int  `toml:"console_limit"` // max lines the console panel retains
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	panefindDir := filepath.Join(configDir, "panefind")
	os.MkdirAll(panefindDir, 0755)

	return &configService{
		filePath: filepath.Join(panefindDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()
		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
		}
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	normalize(&cfg)
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalize repairs values a hand-edited file may have left inconsistent
func normalize(cfg *Config) {
	// regex and wildcard cannot both be on; regex wins like a last toggle would
	if cfg.Search.UseRegex && cfg.Search.UseWildcard {
		cfg.Search.UseWildcard = false
	}
	if cfg.Debounce.QueryMillis <= 0 {
		cfg.Debounce.QueryMillis = DefaultConfig().Debounce.QueryMillis
	}
	if cfg.Debounce.MutationMillis <= 0 {
		cfg.Debounce.MutationMillis = DefaultConfig().Debounce.MutationMillis
	}
	if cfg.UISettings.ConsoleLimit <= 0 {
		cfg.UISettings.ConsoleLimit = DefaultConfig().UISettings.ConsoleLimit
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Search: SearchSettings{
			CaseSensitive: false,
			UseRegex:      false,
			UseWildcard:   false,
		},
		Debounce: DebounceSettings{
			QueryMillis:    250,
			MutationMillis: 100,
		},
		UISettings: UISettings{
			ShowHelpBar:  true,
			ConsoleLimit: 500,
		},
	}
}
