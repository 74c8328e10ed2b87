package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/boardbrief/internal/metrics"
	"github.com/cleared-dev/boardbrief/internal/source"
)

// FileName is the default config file name.
const FileName = "boardbrief.yaml"

// Source kinds.
const (
	SourceMonday = "monday"
	SourceCSV    = "csv"
)

// Environment variables holding credentials.
const (
	EnvMondayAPIKey    = "MONDAY_API_KEY"
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
)

// Config represents the top-level boardbrief.yaml configuration.
type Config struct {
	Monday          MondayConfig  `yaml:"monday"`
	Source          SourceConfig  `yaml:"source"`
	LLM             LLMConfig     `yaml:"llm"`
	Filters         FiltersConfig `yaml:"filters"`
	CurrencySymbols []string      `yaml:"currency_symbols,omitempty"`
}

// MondayConfig identifies the API endpoint and the boards to read.
type MondayConfig struct {
	APIURL            string `yaml:"api_url"`
	DealsBoardID      string `yaml:"deals_board_id"`
	WorkOrdersBoardID string `yaml:"work_orders_board_id"`
}

// SourceConfig selects where board rows come from.
type SourceConfig struct {
	Kind   string `yaml:"kind"`              // "monday" or "csv"
	CSVDir string `yaml:"csv_dir,omitempty"` // <board_id>.csv files, for kind "csv"
}

// LLMConfig controls the language model calls.
type LLMConfig struct {
	Model     string `yaml:"model"`
	MaxTokens int64  `yaml:"max_tokens"`
}

// FiltersConfig holds the stage keyword sets.
type FiltersConfig struct {
	Closed []string `yaml:"closed"`
	Won    []string `yaml:"won"`
	Done   []string `yaml:"done"`
}

// Secrets are credentials read from the environment.
type Secrets struct {
	MondayAPIKey    string
	AnthropicAPIKey string
}

// Load reads a boardbrief.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults and no board IDs.
func Default() *Config {
	rules := metrics.DefaultRules()
	return &Config{
		Monday: MondayConfig{
			APIURL: source.DefaultMondayURL,
		},
		Source: SourceConfig{
			Kind: SourceMonday,
		},
		LLM: LLMConfig{
			Model:     "claude-sonnet-4-5",
			MaxTokens: 1024,
		},
		Filters: FiltersConfig{
			Closed: rules.Closed,
			Won:    rules.Won,
			Done:   rules.Done,
		},
		CurrencySymbols: rules.CurrencySymbols,
	}
}

// Validate reports settings that make the config unusable.
func (c *Config) Validate() error {
	var errs []error
	if c.Monday.DealsBoardID == "" {
		errs = append(errs, errors.New("monday.deals_board_id is required"))
	}
	switch c.Source.Kind {
	case SourceMonday:
	case SourceCSV:
		if c.Source.CSVDir == "" {
			errs = append(errs, errors.New("source.csv_dir is required for csv source"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown source kind %q", c.Source.Kind))
	}
	if c.LLM.Model == "" {
		errs = append(errs, errors.New("llm.model is required"))
	}
	if c.LLM.MaxTokens <= 0 {
		errs = append(errs, errors.New("llm.max_tokens must be positive"))
	}
	return errors.Join(errs...)
}

// Rules returns the metric rules described by the config.
func (c *Config) Rules() metrics.Rules {
	return metrics.Rules{
		Closed:          c.Filters.Closed,
		Won:             c.Filters.Won,
		Done:            c.Filters.Done,
		CurrencySymbols: c.CurrencySymbols,
	}
}

// LoadSecrets reads credentials from the environment, first loading
// envFile when it exists. Variables already set take precedence.
func LoadSecrets(envFile string) (Secrets, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Secrets{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	return Secrets{
		MondayAPIKey:    os.Getenv(EnvMondayAPIKey),
		AnthropicAPIKey: os.Getenv(EnvAnthropicAPIKey),
	}, nil
}
