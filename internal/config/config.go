package config

import (
	"os"

	"deepsheep/internal/util"
	"deepsheep/pkg/sheepshead"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for deepsheep
type Config struct {
	loaded         bool
	Rules          sheepshead.Rules `yaml:"rules" envconfig:"rules"`
	PGDSN          string           `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string           `yaml:"migrationsPath" envconfig:"migrations_path"`
	Archive        bool             `yaml:"archive" envconfig:"archive"`
	Log            struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log" envconfig:"log"`
	Learner struct {
		Iterations  int     `yaml:"iterations" envconfig:"iterations"`
		Epsilon     float64 `yaml:"epsilon" envconfig:"epsilon"`
		LearnRate   float64 `yaml:"learnRate" envconfig:"learn_rate"`
		ReportEvery int     `yaml:"reportEvery" envconfig:"report_every"`
	} `yaml:"learner" envconfig:"learner"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	cfg := Config{
		Rules:          sheepshead.DefaultRules(),
		PGDSN:          "postgres://postgres@localhost:5432/postgres?sslmode=disable",
		MigrationsPath: "./sql",
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Learner.Iterations = 500000
	cfg.Learner.Epsilon = 0.1
	cfg.Learner.LearnRate = 0.05
	cfg.Learner.ReportEvery = 10000

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("SHEEPSHEAD_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("sheepshead", &cfg); err != nil {
		return err
	}

	if err := cfg.Rules.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
