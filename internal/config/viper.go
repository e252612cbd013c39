package config

import (
	"fmt"
	"strings"

	"fjacquet/proposal-search/internal/models"
	"fjacquet/proposal-search/internal/store"
	"fjacquet/proposal-search/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PROPSEARCH_LOG_LEVEL.
const EnvPrefix = "PROPSEARCH"


// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig describes the tabular source file.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	Encoding  string `mapstructure:"encoding" yaml:"encoding"`
}

// DataConfig names the input files.
type DataConfig struct {
	ProposalsFile  string `mapstructure:"proposals_file" yaml:"proposals_file"`
	CategoriesFile string `mapstructure:"categories_file" yaml:"categories_file"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	DefaultFields []string `mapstructure:"default_fields" yaml:"default_fields"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	CSV    CSVConfig    `mapstructure:"csv" yaml:"csv"`
	Data   DataConfig   `mapstructure:"data" yaml:"data"`
	Search SearchConfig `mapstructure:"search" yaml:"search"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// InitializeConfig loads configuration from defaults, an optional config.yaml
// and PROPSEARCH_* environment variables, in increasing precedence.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.proposal-search")
	v.AddConfigPath(".proposal-search")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.CSV.Encoding = strings.ToLower(config.CSV.Encoding)
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing overrides the defaults.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// Defaults are static and always decode.
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.encoding", store.EncodingUTF8)

	v.SetDefault("data.proposals_file", "budget.csv")
	v.SetDefault("data.categories_file", "bucket_2025.json")

	v.SetDefault("search.default_fields", []string{string(models.FieldContent)})

	v.SetDefault("output.format", "text")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", config.CSV.Delimiter)
	}

	switch config.CSV.Encoding {
	case store.EncodingUTF8, "utf8", store.EncodingBig5:
	default:
		return fmt.Errorf("unsupported CSV encoding: %s (must be 'utf-8' or 'big5')", config.CSV.Encoding)
	}

	if config.Data.ProposalsFile == "" {
		return fmt.Errorf("data.proposals_file must not be empty")
	}
	if config.Data.CategoriesFile == "" {
		return fmt.Errorf("data.categories_file must not be empty")
	}

	for _, name := range config.Search.DefaultFields {
		field, err := models.ParseField(name)
		if err != nil {
			return fmt.Errorf("search.default_fields: %w", err)
		}
		if !field.IsText() {
			return fmt.Errorf("search.default_fields: %s is not a text column", name)
		}
	}

	if err := validation.IsValidOutputFormat(config.Output.Format); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}

	return nil
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	runes := []rune(c.CSV.Delimiter)
	if len(runes) == 0 {
		return ','
	}
	return runes[0]
}

// Validate checks the configuration after command line overrides.
func (c *Config) Validate() error {
	c.CSV.Encoding = strings.ToLower(c.CSV.Encoding)
	return validateConfig(c)
}
