package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"pdf-reader/internal/logger"
	"pdf-reader/internal/menu"
)

// Config holds application configuration.
type Config struct {
	Log      LogConfig
	Platform string
	Window   WindowConfig
	Events   EventsConfig
}

type LogConfig struct {
	Level string
	JSON  bool
}

type WindowConfig struct {
	Width  float32
	Height float32
}

type EventsConfig struct {
	Buffer int
}

const envPrefix = "PDF_READER"

// Default is the configuration with no file and no environment.
func Default() Config {
	return Config{
		Log:      LogConfig{Level: "info"},
		Platform: "auto",
		Window:   WindowConfig{Width: 1200, Height: 800},
		Events:   EventsConfig{Buffer: 64},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("platform", d.Platform)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("events.buffer", d.Events.Buffer)
}

// Load reads configuration from path (or the user config dir when empty)
// and the environment. Env var overrides use prefix PDF_READER_. A missing
// config file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "pdf-reader"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config log.level: %w", err)
	}
	if _, err := menu.ParseProfile(c.Platform); err != nil {
		return fmt.Errorf("config platform: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config window: size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	if c.Events.Buffer < 1 {
		return fmt.Errorf("config events.buffer: must be at least 1, got %d", c.Events.Buffer)
	}
	return nil
}

// Profile resolves the configured platform profile.
func (c Config) Profile() (menu.PlatformProfile, error) {
	return menu.ParseProfile(c.Platform)
}
