// Package config loads the site configuration: defaults, then an optional
// YAML file, then PORTFOLIO_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. Sections are separated
// by a double underscore: PORTFOLIO_TYPEWRITER__HOLD_DELAY=2s.
const EnvPrefix = "PORTFOLIO_"

// Config is the full site configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server" koanf:"server"`
	Content    ContentConfig    `yaml:"content" koanf:"content"`
	Typewriter TypewriterConfig `yaml:"typewriter" koanf:"typewriter"`
	Hero       TypewriterConfig `yaml:"hero" koanf:"hero"`
	Reveal     RevealConfig     `yaml:"reveal" koanf:"reveal"`
	Carousel   CarouselConfig   `yaml:"carousel" koanf:"carousel"`
	Log        LogConfig        `yaml:"log" koanf:"log"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" koanf:"addr"`
	// Mode is the gin mode: debug, release or test.
	Mode string `yaml:"mode" koanf:"mode"`
}

type ContentConfig struct {
	// Dir overrides the embedded markdown with files on disk.
	Dir string `yaml:"dir" koanf:"dir"`
}

type TypewriterConfig struct {
	TypeDelay  time.Duration `yaml:"type_delay" koanf:"type_delay"`
	EraseDelay time.Duration `yaml:"erase_delay" koanf:"erase_delay"`
	HoldDelay  time.Duration `yaml:"hold_delay" koanf:"hold_delay"`
	GraceDelay time.Duration `yaml:"grace_delay" koanf:"grace_delay"`
	Hold       bool          `yaml:"hold" koanf:"hold"`
}

type RevealConfig struct {
	Duration      time.Duration `yaml:"duration" koanf:"duration"`
	FrameInterval time.Duration `yaml:"frame_interval" koanf:"frame_interval"`
	// Retrigger replays the skill bars every time they scroll back in.
	Retrigger bool `yaml:"retrigger" koanf:"retrigger"`
}

type CarouselConfig struct {
	Interval time.Duration `yaml:"interval" koanf:"interval"`
}

type LogConfig struct {
	Level string `yaml:"level" koanf:"level"`
}

// Load reads configuration from path, if it exists, and overlays the
// environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// PORT is what most hosts set; it wins over server.addr.
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}

	return cfg, nil
}

// envKey maps PORTFOLIO_TYPEWRITER__HOLD_DELAY to typewriter.hold_delay.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// YAML encodes the configuration in the same layout Load reads.
func (c *Config) YAML() ([]byte, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

var validLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"error": true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if !validModes[c.Server.Mode] {
		return fmt.Errorf("invalid server.mode %q: must be one of debug, release, test", c.Server.Mode)
	}
	if c.Log.Level != "" && !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	for name, tw := range map[string]TypewriterConfig{"typewriter": c.Typewriter, "hero": c.Hero} {
		if tw.TypeDelay < 0 || tw.EraseDelay < 0 || tw.HoldDelay < 0 || tw.GraceDelay < 0 {
			return fmt.Errorf("%s delays must be non-negative", name)
		}
	}
	if c.Reveal.Duration < 0 || c.Reveal.FrameInterval < 0 {
		return fmt.Errorf("reveal durations must be non-negative")
	}
	if c.Carousel.Interval < 0 {
		return fmt.Errorf("carousel.interval must be non-negative")
	}
	return nil
}
