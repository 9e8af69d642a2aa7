// Package config loads runtime settings from rockets.toml and ROCKETS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/rocket-range/audio"
	"github.com/lixenwraith/rocket-range/constants"
	"github.com/lixenwraith/rocket-range/logging"
)

const (
	fileName  = "rockets"
	fileType  = "toml"
	envPrefix = "ROCKETS"
)

// Color modes accepted by view.color_mode
const (
	ColorAuto      = "auto"
	Color256       = "256"
	ColorTrueColor = "truecolor"
)

var ErrInvalidConfig = errors.New("invalid config")

// ViewConfig controls the terminal host
type ViewConfig struct {
	ColorMode   string        `mapstructure:"color_mode"`
	TimeScale   float64       `mapstructure:"time_scale"`
	FPS         int           `mapstructure:"fps"`
	IdleAdvance time.Duration `mapstructure:"idle_advance"`
}

// FrameInterval converts FPS to a tick period
func (v ViewConfig) FrameInterval() time.Duration {
	if v.FPS <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(v.FPS)
}

// AudioSection mirrors [audio]
type AudioSection struct {
	Enabled      bool    `mapstructure:"enabled"`
	MasterVolume float64 `mapstructure:"master_volume"`
	SampleRate   int     `mapstructure:"sample_rate"`
}

// LogSection mirrors [log]
type LogSection struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Dir    string `mapstructure:"dir"`
}

// ListenSection holds a listen address, empty disables the listener
type ListenSection struct {
	Addr string `mapstructure:"addr"`
}

// Config is the merged result of defaults, file and environment
type Config struct {
	View    ViewConfig    `mapstructure:"view"`
	Audio   AudioSection  `mapstructure:"audio"`
	Log     LogSection    `mapstructure:"log"`
	Metrics ListenSection `mapstructure:"metrics"`
	Stream  ListenSection `mapstructure:"stream"`

	// File is the config file that was read, empty when running on defaults
	File string `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("view.color_mode", ColorAuto)
	v.SetDefault("view.time_scale", 1.0)
	v.SetDefault("view.fps", int(time.Second/constants.FrameUpdateInterval))
	v.SetDefault("view.idle_advance", constants.IdleAdvanceDelay)

	def := audio.DefaultAudioConfig()
	v.SetDefault("audio.enabled", def.Enabled)
	v.SetDefault("audio.master_volume", def.MasterVolume)
	v.SetDefault("audio.sample_rate", def.SampleRate)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.dir", "logs")

	v.SetDefault("metrics.addr", "")
	v.SetDefault("stream.addr", "")
}

// Load reads path, or rockets.toml from the working directory and
// $HOME/.config/rocket-range when path is empty. A missing default file is
// not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	var search []string
	search = append(search, ".")
	if home, err := os.UserHomeDir(); err == nil {
		search = append(search, filepath.Join(home, ".config", "rocket-range"))
	}
	return load(viper.New(), path, search)
}

func load(v *viper.Viper, path string, search []string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType(fileType)
		for _, dir := range search {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	cfg.View.ColorMode = strings.ToLower(cfg.View.ColorMode)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no host can run with
func (c *Config) Validate() error {
	switch c.View.ColorMode {
	case ColorAuto, Color256, ColorTrueColor:
	default:
		return fmt.Errorf("%w: view.color_mode %q", ErrInvalidConfig, c.View.ColorMode)
	}
	if c.View.TimeScale <= 0 {
		return fmt.Errorf("%w: view.time_scale %.2f must be positive", ErrInvalidConfig, c.View.TimeScale)
	}
	if c.View.FPS <= 0 {
		return fmt.Errorf("%w: view.fps %d must be positive", ErrInvalidConfig, c.View.FPS)
	}
	if c.View.IdleAdvance < 0 {
		return fmt.Errorf("%w: view.idle_advance %s is negative", ErrInvalidConfig, c.View.IdleAdvance)
	}
	if err := c.AudioConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// AudioConfig converts [audio] into the mixer settings, keeping the stock per-effect balance
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	return ac
}

// LogConfig converts [log] into logger settings
func (c *Config) LogConfig() logging.Config {
	return logging.Config{
		Level:  c.Log.Level,
		Format: c.Log.Format,
	}
}
