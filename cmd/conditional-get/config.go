package main

import (
	"os"

	responsetransformer "github.com/always-cache/conditional-get/pkg/response-transformer"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen        string                    `yaml:"listen"`
	StaticRoot    string                    `yaml:"staticRoot"`
	StaticPrefix  string                    `yaml:"staticPrefix"`
	ContentPrefix string                    `yaml:"contentPrefix"`
	DB            string                    `yaml:"db"`
	LogFile       string                    `yaml:"logFile"`
	LogLevel      string                    `yaml:"logLevel"`
	Rules         responsetransformer.Rules `yaml:"rules"`
}

func defaultConfig() Config {
	return Config{
		Listen:        ":8080",
		StaticRoot:    ".",
		StaticPrefix:  "/static",
		ContentPrefix: "/content",
		LogLevel:      "debug",
	}
}

// getConfig reads the YAML config file on top of the defaults.
// An empty filename gives the defaults.
func getConfig(filename string) (Config, error) {
	config := defaultConfig()
	if filename == "" {
		return config, nil
	}
	configBytes, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrap(err, "could not read config file")
	}
	if err := yaml.Unmarshal(configBytes, &config); err != nil {
		return config, errors.Wrapf(err, "could not parse config file %s", filename)
	}
	return config, nil
}

// loadEnv loads .env files into the environment. Missing files are fine.
func loadEnv(filenames ...string) error {
	for _, filename := range filenames {
		if err := godotenv.Load(filename); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "could not load %s", filename)
		}
	}
	return nil
}

// applyEnv overrides config values with the CONDITIONAL_GET_* variables.
func (c *Config) applyEnv(getenv func(string) string) {
	for name, field := range map[string]*string{
		"CONDITIONAL_GET_LISTEN":      &c.Listen,
		"CONDITIONAL_GET_STATIC_ROOT": &c.StaticRoot,
		"CONDITIONAL_GET_DB":          &c.DB,
		"CONDITIONAL_GET_LOG_LEVEL":   &c.LogLevel,
	} {
		if v := getenv(name); v != "" {
			*field = v
		}
	}
}
