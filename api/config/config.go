/* config.go
 * Contains the bot configuration. Values come from an optional YAML file, then environment variables
 * (usually loaded from .env) override them
 * Authors: Zachary Bower
 */

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Discord DiscordConfig `yaml:"discord"`
	Web     WebConfig     `yaml:"web"`
}

type BackendConfig struct {
	URL       string        `yaml:"url"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit float64       `yaml:"rate_limit"` // requests per second
	Burst     int           `yaml:"burst"`
}

type MongoConfig struct {
	URI        string        `yaml:"uri"`
	Database   string        `yaml:"database"`
	SessionTTL time.Duration `yaml:"session_ttl"` // 0 keeps sessions until logout
}

type DiscordConfig struct {
	ProdToken string `yaml:"prod_token"`
	BetaToken string `yaml:"beta_token"`
}

type WebConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Backend: BackendConfig{
			Timeout:   60 * time.Second,
			RateLimit: 5,
			Burst:     5,
		},
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27017",
			Database:   "previsioni",
			SessionTTL: 30 * 24 * time.Hour,
		},
		Web: WebConfig{
			Addr: ":8080",
		},
	}
}

// Load reads the YAML file at configPath on top of the defaults. An empty path returns the defaults
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// ApplyEnv overrides values with the environment variables that are set
// Preconditions: Receives a lookup function, normally os.LookupEnv
// Postconditions: Updates the config in place, or returns an error if a variable has an invalid value
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	fields := map[string]*string{
		"BACKEND_URL":        &c.Backend.URL,
		"MONGO_URI":          &c.Mongo.URI,
		"MONGO_DB":           &c.Mongo.Database,
		"DISCORD_PROD_TOKEN": &c.Discord.ProdToken,
		"DISCORD_BETA_TOKEN": &c.Discord.BetaToken,
		"WEB_ADDR":           &c.Web.Addr,
	}
	for key, field := range fields {
		if value, ok := lookup(key); ok && value != "" {
			*field = value
		}
	}

	if value, ok := lookup("BACKEND_TIMEOUT"); ok && value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			// Plain numbers are seconds
			seconds, convErr := strconv.Atoi(value)
			if convErr != nil {
				return fmt.Errorf("invalid BACKEND_TIMEOUT '%s': %w", value, err)
			}
			timeout = time.Duration(seconds) * time.Second
		}
		c.Backend.Timeout = timeout
	}
	return nil
}

// Validate checks the values needed to start the bot
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("backend url is required (BACKEND_URL)")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend timeout must be positive, got %s", c.Backend.Timeout)
	}
	if c.Mongo.URI == "" || c.Mongo.Database == "" {
		return fmt.Errorf("mongo uri and database are required")
	}
	return nil
}

// DiscordToken returns the beta token in test mode and the production token otherwise
func (c *Config) DiscordToken(testMode bool) (string, error) {
	token := c.Discord.ProdToken
	name := "DISCORD_PROD_TOKEN"
	if testMode {
		token = c.Discord.BetaToken
		name = "DISCORD_BETA_TOKEN"
	}
	if token == "" {
		return "", fmt.Errorf("%s is not set", name)
	}
	return token, nil
}
