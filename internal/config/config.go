package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"winpick/internal/eventbus"
)

const (
	DefaultPageSize  = 7
	DefaultCacheSize = 256
	DefaultMessage   = "Select an option"
)

var (
	ErrInvalidPageSize  = errors.New("page size must be at least 1")
	ErrInvalidCursor    = errors.New("starting cursor must not be negative")
	ErrInvalidCacheSize = errors.New("cache size must be at least 1")
	ErrUnknownAlgorithm = errors.New("unknown matching algorithm")
)

// Config represents the application configuration
type Config struct {
	Prompt   PromptSettings   `toml:"prompt"`
	Select   SelectSettings   `toml:"select"`
	Matching MatchingSettings `toml:"matching"`
	Cache    CacheSettings    `toml:"cache"`
}

// PromptSettings holds the text shown around the list
type PromptSettings struct {
	Message     string `toml:"message"`
	HelpMessage string `toml:"help_message"`
}

// SelectSettings holds the selection engine settings
type SelectSettings struct {
	VimMode        bool   `toml:"vim_mode"`
	PageSize       int    `toml:"page_size"`
	StartingCursor int    `toml:"starting_cursor"`
	StartingFilter string `toml:"starting_filter"`
}

// MatchingSettings controls how the built-in sources filter options
type MatchingSettings struct {
	Algorithm     string `toml:"algorithm"` // "fuzzy" or "substring"
	CaseSensitive bool   `toml:"case_sensitive"`
}

// CacheSettings controls the fetch cache in front of the option source
type CacheSettings struct {
	Enabled bool `toml:"enabled"`
	Size    int  `toml:"size"`
}

// SelectConfig is the immutable configuration handed to the key decoder and the engine
type SelectConfig struct {
	VimMode  bool
	PageSize int
}

// SelectConfig derives the engine configuration
func (c *Config) SelectConfig() SelectConfig {
	return SelectConfig{
		VimMode:  c.Select.VimMode,
		PageSize: c.Select.PageSize,
	}
}

// Validate checks the configuration for values the prompt cannot work with
func (c *Config) Validate() error {
	if c.Select.PageSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.Select.PageSize)
	}
	if c.Select.StartingCursor < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCursor, c.Select.StartingCursor)
	}
	if c.Cache.Enabled && c.Cache.Size < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCacheSize, c.Cache.Size)
	}
	switch c.Matching.Algorithm {
	case "fuzzy", "substring":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, c.Matching.Algorithm)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service using the user config directory
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

	return &configService{
		filePath: filepath.Join(configDir, "winpick", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus, filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			PageSize: cfg.Select.PageSize,
			VimMode:  cfg.Select.VimMode,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Prompt: PromptSettings{
			Message: DefaultMessage,
		},
		Select: SelectSettings{
			PageSize: DefaultPageSize,
		},
		Matching: MatchingSettings{
			Algorithm: "fuzzy",
		},
		Cache: CacheSettings{
			Enabled: true,
			Size:    DefaultCacheSize,
		},
	}
}
