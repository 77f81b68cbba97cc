package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/ruoka/internal/juvenes"
	"github.com/five82/ruoka/internal/menu"
)

// Config is everything ruoka needs besides the command line.
type Config struct {
	ServiceURL      string
	Language        string
	Theme           string
	LogLevel        string
	RequestTimeout  time.Duration
	ContinueOnError bool
	Restaurants     []menu.Restaurant
	MealOptions     []menu.OptionDef
}

const (
	defaultConfigPath = "~/.config/ruoka/config.toml"
	defaultLanguage   = "fi"
	defaultTheme      = "Classic"
	defaultLogLevel   = "warn"
)

// Environment overrides.
const (
	EnvConfigPath = "RUOKA_CONFIG"
	EnvLanguage   = "RUOKA_LANG"
	EnvLogLevel   = "RUOKA_LOG_LEVEL"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServiceURL:  juvenes.DefaultServiceURL,
		Language:    defaultLanguage,
		Theme:       defaultTheme,
		LogLevel:    defaultLogLevel,
		Restaurants: menu.DefaultRestaurants(),
		MealOptions: menu.DefaultOptions(),
	}
}

type rawRestaurant struct {
	Name     string `toml:"name"`
	Kitchen  int    `toml:"kitchen"`
	MenuType int    `toml:"menutype"`
}

type rawOption struct {
	Key  string `toml:"key"`
	Name string `toml:"name"`
}

type rawConfig struct {
	ServiceURL      string          `toml:"service_url"`
	Language        string          `toml:"language"`
	Theme           string          `toml:"theme"`
	LogLevel        string          `toml:"log_level"`
	RequestTimeout  string          `toml:"request_timeout"`
	ContinueOnError bool            `toml:"continue_on_error"`
	Restaurants     []rawRestaurant `toml:"restaurants"`
	MealOptions     []rawOption     `toml:"meal_options"`
}

// Load reads the config at path (or $RUOKA_CONFIG, or the default location),
// falling back to defaults when the file is missing, then applies
// environment overrides.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = os.Getenv(EnvConfigPath)
	}
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := merge(&cfg, raw); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

func merge(cfg *Config, raw rawConfig) error {
	if v := strings.TrimSpace(raw.ServiceURL); v != "" {
		cfg.ServiceURL = v
	}
	if v := strings.TrimSpace(raw.Language); v != "" {
		cfg.Language = v
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil || timeout < 0 {
			return fmt.Errorf("parse config: request_timeout %q is not a valid duration", v)
		}
		cfg.RequestTimeout = timeout
	}
	cfg.ContinueOnError = raw.ContinueOnError

	if len(raw.Restaurants) > 0 {
		cfg.Restaurants = make([]menu.Restaurant, 0, len(raw.Restaurants))
		for i, r := range raw.Restaurants {
			name := strings.TrimSpace(r.Name)
			if name == "" {
				return fmt.Errorf("parse config: restaurants[%d] has no name", i)
			}
			cfg.Restaurants = append(cfg.Restaurants, menu.Restaurant{
				Name:       name,
				KitchenID:  r.Kitchen,
				MenuTypeID: r.MenuType,
			})
		}
	}
	if len(raw.MealOptions) > 0 {
		cfg.MealOptions = make([]menu.OptionDef, 0, len(raw.MealOptions))
		for i, o := range raw.MealOptions {
			if o.Key == "" {
				return fmt.Errorf("parse config: meal_options[%d] has no key", i)
			}
			name := strings.TrimSpace(o.Name)
			if name == "" {
				name = menu.Capitalize(o.Key)
			}
			cfg.MealOptions = append(cfg.MealOptions, menu.OptionDef{Key: o.Key, Name: name})
		}
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvLanguage)); v != "" {
		cfg.Language = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
