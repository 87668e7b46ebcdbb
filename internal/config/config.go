package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/ojbennett/fpl-squad-picker/pkg/core/model"
)

// DefaultBudget is the reference deployment's squad budget in millions
const DefaultBudget = 100.0

// APIConfig holds the match-schedule API settings. The API key is read
// from the api_key environment variable, never stored in the file.
type APIConfig struct {
	URL string `yaml:"url" validate:"required,url"`
}

// Config represents the application configuration
type Config struct {
	PredictionsPath    string            `yaml:"predictionsPath" validate:"required"`
	Budget             float64           `yaml:"budget,omitempty" validate:"omitempty,gt=0"`
	TeamCapacity       int               `yaml:"teamCapacity,omitempty" validate:"omitempty,min=1"`
	PositionCapacities map[string]int    `yaml:"positionCapacities,omitempty" validate:"omitempty,dive,min=1"`
	APIConfig          APIConfig         `yaml:"apiConfig"`
	TeamNameMapping    map[string]string `yaml:"teamNameMapping,omitempty"`
	DeadlineRule       string            `yaml:"deadlineRule,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from squad_picker_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile("")
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadWithEnv loads the configuration for a named environment
// (e.g. "test" resolves test_squad_picker_config.yaml)
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file for env %q: %w", env, err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, position capacity keys,
// and the deadline rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for name := range cfg.PositionCapacities {
		if !model.Position(name).IsValid() {
			return fmt.Errorf("unknown position %q in positionCapacities", name)
		}
	}

	if cfg.DeadlineRule != "" {
		if _, err := rrule.StrToRRule(cfg.DeadlineRule); err != nil {
			return fmt.Errorf("invalid deadlineRule: %w", err)
		}
	}

	return nil
}

// Constraints builds the selection constraint set from the configuration.
// A zero budget falls back to the configured default; any configured
// position capacity overrides the standard squad shape.
func (c *Config) Constraints(budget float64, autoSelectBench bool) model.RosterConstraints {
	if budget == 0 {
		budget = c.Budget
	}

	constraints := model.DefaultConstraints(budget, autoSelectBench)

	if c.TeamCapacity > 0 {
		constraints.TeamCapacity = c.TeamCapacity
	}
	for name, capacity := range c.PositionCapacities {
		constraints.PositionCapacity[model.Position(name)] = capacity
	}

	return constraints
}

// APIKey reads the match-schedule API key from the environment
func APIKey() string {
	return os.Getenv("api_key")
}

func applyDefaults(cfg *Config) {
	if cfg.Budget == 0 {
		cfg.Budget = DefaultBudget
	}
}

// findConfigFile searches for the config file in the current directory and
// home directory. A non-empty env prefixes the filename (test_..., prod_...).
func findConfigFile(env string) (string, error) {
	configFileName := "squad_picker_config.yaml"
	if env != "" {
		configFileName = fmt.Sprintf("%s_%s", env, configFileName)
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
