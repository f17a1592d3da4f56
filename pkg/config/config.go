package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rustysnake/rustysnake/pkg/engine"
)

const (
	DefaultConfigPath = "/etc/rustysnake/config"
	ConfigFileName    = "rustysnake.yml"
)

// ValidEngines is the list of engine names accepted in configuration.
var ValidEngines = []string{engine.NameMiniMax, engine.NameMonteCarlo}

// Config holds all rustysnake configuration settings
type Config struct {
	// Engine selects the move engine: mini_max or monte_carlo
	Engine string `yaml:"engine" json:"engine"`

	// MinimaxDepth is the minimax search depth in plies
	MinimaxDepth int `yaml:"minimax_depth" json:"minimax_depth"`

	// MonteCarloIterations is the total playout budget per move
	MonteCarloIterations int `yaml:"monte_carlo_iterations" json:"monte_carlo_iterations"`

	// Appearance returned by the snake info endpoint
	Color  string `yaml:"color" json:"color"`
	Head   string `yaml:"head" json:"head"`
	Tail   string `yaml:"tail" json:"tail"`
	Author string `yaml:"author" json:"author"`

	// TrustedProxies lists peer IPs whose forwarded headers the server
	// honors when resolving client addresses
	TrustedProxies []string `yaml:"trusted_proxies" json:"trusted_proxies"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		Engine:               engine.NameMiniMax,
		MinimaxDepth:         engine.DefaultMaxDepth,
		MonteCarloIterations: engine.DefaultIterations,
		Color:                "#b7410e",
		Head:                 "fang",
		Tail:                 "rattle",
		Author:               "rustysnake",
		sources:              make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("RUSTYSNAKE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func attributeNames() []string {
	return []string{
		"engine", "minimax_depth", "monte_carlo_iterations",
		"color", "head", "tail", "author", "trusted_proxies",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.Engine != "" {
		c.Engine = file.Engine
		c.sources["engine"] = "file"
	}
	if file.MinimaxDepth != 0 {
		c.MinimaxDepth = file.MinimaxDepth
		c.sources["minimax_depth"] = "file"
	}
	if file.MonteCarloIterations != 0 {
		c.MonteCarloIterations = file.MonteCarloIterations
		c.sources["monte_carlo_iterations"] = "file"
	}
	if file.Color != "" {
		c.Color = file.Color
		c.sources["color"] = "file"
	}
	if file.Head != "" {
		c.Head = file.Head
		c.sources["head"] = "file"
	}
	if file.Tail != "" {
		c.Tail = file.Tail
		c.sources["tail"] = "file"
	}
	if file.Author != "" {
		c.Author = file.Author
		c.sources["author"] = "file"
	}
	if len(file.TrustedProxies) != 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("ENGINE"); val != "" {
		c.Engine = val
		c.sources["engine"] = "environment"
	}
	if val := os.Getenv("MINIMAX_DEPTH"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.MinimaxDepth = i
			c.sources["minimax_depth"] = "environment"
		}
	}
	if val := os.Getenv("MONTE_CARLO_ITERATIONS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.MonteCarloIterations = i
			c.sources["monte_carlo_iterations"] = "environment"
		}
	}
	if val := os.Getenv("SNAKE_COLOR"); val != "" {
		c.Color = val
		c.sources["color"] = "environment"
	}
	if val := os.Getenv("SNAKE_HEAD"); val != "" {
		c.Head = val
		c.sources["head"] = "environment"
	}
	if val := os.Getenv("SNAKE_TAIL"); val != "" {
		c.Tail = val
		c.sources["tail"] = "environment"
	}
	if val := os.Getenv("SNAKE_AUTHOR"); val != "" {
		c.Author = val
		c.sources["author"] = "environment"
	}
	if val := os.Getenv("TRUSTED_PROXIES"); val != "" {
		var proxies []string
		for _, p := range strings.Split(val, ",") {
			if p = strings.TrimSpace(p); p != "" {
				proxies = append(proxies, p)
			}
		}
		c.TrustedProxies = proxies
		c.sources["trusted_proxies"] = "environment"
	}
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	valid := false
	for _, name := range ValidEngines {
		if c.Engine == name {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid engine %q (valid: %v)", c.Engine, ValidEngines)
	}
	if c.MinimaxDepth <= 0 {
		return fmt.Errorf("minimax_depth must be positive, got %d", c.MinimaxDepth)
	}
	if c.MonteCarloIterations <= 0 {
		return fmt.Errorf("monte_carlo_iterations must be positive, got %d", c.MonteCarloIterations)
	}
	return nil
}

// NewEngine builds the configured engine.
func (c *Config) NewEngine() (engine.Engine, error) {
	switch c.Engine {
	case engine.NameMiniMax:
		return engine.NewMiniMax(c.MinimaxDepth), nil
	case engine.NameMonteCarlo:
		return engine.NewMonteCarlo(c.MonteCarloIterations), nil
	}
	return nil, fmt.Errorf("invalid engine %q", c.Engine)
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Attributes returns all configuration attributes with their sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "engine", Value: c.Engine, Source: c.Source("engine")},
		{Name: "minimax_depth", Value: strconv.Itoa(c.MinimaxDepth), Source: c.Source("minimax_depth")},
		{Name: "monte_carlo_iterations", Value: strconv.Itoa(c.MonteCarloIterations), Source: c.Source("monte_carlo_iterations")},
		{Name: "color", Value: c.Color, Source: c.Source("color")},
		{Name: "head", Value: c.Head, Source: c.Source("head")},
		{Name: "tail", Value: c.Tail, Source: c.Source("tail")},
		{Name: "author", Value: c.Author, Source: c.Source("author")},
		{Name: "trusted_proxies", Value: strings.Join(c.TrustedProxies, ","), Source: c.Source("trusted_proxies")},
	}
}
