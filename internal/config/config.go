// Package config loads the client configuration.
//
// Values come from, in increasing precedence: built-in defaults, the YAML
// file (WHEEL_CONFIG, or config.yaml in the data directory), and WHEEL_*
// environment variables. A .env file in the working directory is loaded into
// the environment first without overriding variables that are already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the admin API the client talks to out of the box.
const DefaultAPIURL = "http://192.168.5.150:8080/retail-admin"

// Config is the client configuration.
type Config struct {
	// APIURL is the base URL of the admin API.
	APIURL string `yaml:"api_url"`

	// AdminURL is opened in the browser from the lottery view. Defaults to
	// the origin of APIURL.
	AdminURL string `yaml:"admin_url"`

	// PageSize is the number of prizes fetched for the wheel.
	PageSize int `yaml:"page_size"`

	// Timeout bounds each API request.
	Timeout time.Duration `yaml:"timeout"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// DataDir holds the session files, the log and the config file. It is
	// only taken from the environment.
	DataDir string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIURL:   DefaultAPIURL,
		PageSize: 10,
		Timeout:  30 * time.Second,
		LogLevel: "info",
	}
}

// LoadDotEnv loads path into the process environment. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// Load builds the configuration. getenv is usually os.Getenv.
func Load(getenv func(string) string) (Config, error) {
	cfg := Default()

	cfg.DataDir = getenv("WHEEL_DATA_DIR")
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("config: get home dir: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".lottery-wheel")
	}

	path := getenv("WHEEL_CONFIG")
	explicit := path != ""
	if !explicit {
		path = filepath.Join(cfg.DataDir, "config.yaml")
	}
	if err := cfg.loadFile(path, explicit); err != nil {
		return Config{}, err
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}
	if cfg.AdminURL == "" {
		cfg.AdminURL = origin(cfg.APIURL)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("WHEEL_API_URL"); v != "" {
		c.APIURL = v
	}
	if v := getenv("WHEEL_ADMIN_URL"); v != "" {
		c.AdminURL = v
	}
	if v := getenv("WHEEL_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("WHEEL_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: WHEEL_PAGE_SIZE: %w", err)
		}
		c.PageSize = n
	}
	if v := getenv("WHEEL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: WHEEL_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	return nil
}

// Validate checks the configuration for values the client cannot run with.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: api_url %q is not an http(s) URL", c.APIURL)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("config: page_size must be positive, got %d", c.PageSize)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return lvl, nil
}

// LogPath is where the client writes its log.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "wheel.log")
}

func origin(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/"
}
