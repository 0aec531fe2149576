// Package config loads sanpo settings from defaults, an optional
// sanpo.json/sanpo.yaml file, SANPO_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wesen/sanpo/internal/overlay"
)

// Source types.
const (
	SourceScript  = "script"
	SourceManual  = "manual"
	SourceStatic  = "static"
	SourceTLV493D = "tlv493d"
	SourceNone    = "none"
)

// OverlayConfig holds marker animation and canvas settings. Lengths are
// in braille dots (2 per cell horizontally, 4 vertically).
type OverlayConfig struct {
	Padding      float64 `json:"padding" mapstructure:"padding"`
	CornerRadius float64 `json:"cornerRadius" mapstructure:"cornerRadius"`
	DurationMs   int     `json:"durationMs" mapstructure:"durationMs"`
	Easing       string  `json:"easing" mapstructure:"easing"`
	FrameRate    int     `json:"frameRate" mapstructure:"frameRate"`
	Outline      bool    `json:"outline" mapstructure:"outline"`
}

// Duration returns the transition duration.
func (o OverlayConfig) Duration() time.Duration {
	return time.Duration(o.DurationMs) * time.Millisecond
}

// FrameInterval returns the redraw interval while markers move.
func (o OverlayConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(max(o.FrameRate, 1))
}

// SourceConfig selects and configures the heading source.
type SourceConfig struct {
	Type       string  `json:"type" mapstructure:"type"`
	Script     string  `json:"script" mapstructure:"script"`
	IntervalMs int     `json:"intervalMs" mapstructure:"intervalMs"`
	Heading    float64 `json:"heading" mapstructure:"heading"`
	Offset     float64 `json:"offset" mapstructure:"offset"`
	Step       float64 `json:"step" mapstructure:"step"`
}

// Interval returns the sampling interval of polled sources.
func (s SourceConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMs) * time.Millisecond
}

// I2CConfig holds the magnetometer bus settings.
type I2CConfig struct {
	Bus  int `json:"bus" mapstructure:"bus"`
	Addr int `json:"addr" mapstructure:"addr"`
}

// LogConfig holds logging settings. An empty File discards logs.
type LogConfig struct {
	Level string `json:"level" mapstructure:"level"`
	File  string `json:"file" mapstructure:"file"`
}

// Config is the full application configuration.
type Config struct {
	Overlay OverlayConfig `json:"overlay" mapstructure:"overlay"`
	Source  SourceConfig  `json:"source" mapstructure:"source"`
	I2C     I2CConfig     `json:"i2c" mapstructure:"i2c"`
	Log     LogConfig     `json:"log" mapstructure:"log"`
}

func setDefaults() {
	viper.SetDefault("overlay.padding", 2)
	viper.SetDefault("overlay.cornerRadius", 14)
	viper.SetDefault("overlay.durationMs", 150)
	viper.SetDefault("overlay.easing", "linear")
	viper.SetDefault("overlay.frameRate", 30)
	viper.SetDefault("overlay.outline", true)

	viper.SetDefault("source.type", SourceScript)
	viper.SetDefault("source.script", "t * 24 + 20 * Math.sin(t / 2)")
	viper.SetDefault("source.intervalMs", 100)
	viper.SetDefault("source.heading", 0)
	viper.SetDefault("source.offset", 0)
	viper.SetDefault("source.step", 5)

	viper.SetDefault("i2c.bus", 1)
	viper.SetDefault("i2c.addr", 0x5e)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "")
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"source":    "source.type",
	"script":    "source.script",
	"heading":   "source.heading",
	"offset":    "source.offset",
	"interval":  "source.intervalMs",
	"radius":    "overlay.cornerRadius",
	"padding":   "overlay.padding",
	"duration":  "overlay.durationMs",
	"easing":    "overlay.easing",
	"fps":       "overlay.frameRate",
	"outline":   "overlay.outline",
	"i2c-bus":   "i2c.bus",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// RegisterFlags adds the flags Load understands to fs. Flag defaults
// only document the built-in defaults; unset flags never override the
// config file or environment.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config-dir", ".", "directory containing sanpo.json or sanpo.yaml")
	fs.String("source", SourceScript, "heading source: script, manual, static, tlv493d or none")
	fs.String("script", "t * 24 + 20 * Math.sin(t / 2)", "JavaScript heading expression of t (seconds)")
	fs.Float64("heading", 0, "initial heading for the manual and static sources")
	fs.Float64("offset", 0, "magnetometer mounting offset in degrees")
	fs.Int("interval", 100, "source sampling interval in milliseconds")
	fs.Float64("radius", 14, "corner radius in braille dots")
	fs.Float64("padding", 2, "inset from the screen edge in braille dots")
	fs.Int("duration", 150, "marker transition duration in milliseconds")
	fs.String("easing", "linear", "transition easing: linear or ease-in-out")
	fs.Int("fps", 30, "frame rate while markers move")
	fs.Bool("outline", true, "draw the border outline")
	fs.Int("i2c-bus", 1, "I2C bus number of the magnetometer")
	fs.String("log-level", "info", "log level")
	fs.String("log-file", "", "log file (empty discards logs)")
}

// Load reads the configuration. configDir is searched for sanpo.json or
// sanpo.yaml; a missing file is not an error. fs may be nil.
func Load(configDir string, fs *pflag.FlagSet) (Config, error) {
	setDefaults()

	viper.SetConfigName("sanpo")
	viper.AddConfigPath(configDir)
	viper.SetEnvPrefix("SANPO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := viper.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// File returns the config file that was read, or "" if none was found.
func File() string {
	return viper.ConfigFileUsed()
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	var errs []error
	o := c.Overlay
	if o.Padding < 0 {
		errs = append(errs, fmt.Errorf("overlay.padding must be >= 0, got %v", o.Padding))
	}
	if o.CornerRadius < 0 {
		errs = append(errs, fmt.Errorf("overlay.cornerRadius must be >= 0, got %v", o.CornerRadius))
	}
	if o.DurationMs < 0 {
		errs = append(errs, fmt.Errorf("overlay.durationMs must be >= 0, got %d", o.DurationMs))
	}
	if o.FrameRate < 1 || o.FrameRate > 240 {
		errs = append(errs, fmt.Errorf("overlay.frameRate must be in [1,240], got %d", o.FrameRate))
	}
	if _, err := overlay.ParseEasing(o.Easing); err != nil {
		errs = append(errs, fmt.Errorf("overlay.easing: %w", err))
	}

	s := c.Source
	switch s.Type {
	case SourceScript, SourceManual, SourceStatic, SourceTLV493D, SourceNone:
	default:
		errs = append(errs, fmt.Errorf("unknown source.type %q", s.Type))
	}
	if (s.Type == SourceScript || s.Type == SourceTLV493D) && s.IntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("source.intervalMs must be > 0, got %d", s.IntervalMs))
	}
	if s.Type == SourceScript && strings.TrimSpace(s.Script) == "" {
		errs = append(errs, errors.New("source.script is empty"))
	}

	if c.I2C.Addr < 0 || c.I2C.Addr > 0x7f {
		errs = append(errs, fmt.Errorf("i2c.addr must be a 7-bit address, got %#x", c.I2C.Addr))
	}
	if c.I2C.Bus < 0 {
		errs = append(errs, fmt.Errorf("i2c.bus must be >= 0, got %d", c.I2C.Bus))
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}
