package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "gallery"

// Backend names for catalog loading.
const (
	BackendFixture = "fixture"
	BackendRemote  = "remote"
)

type Config struct {
	Source   SourceConfig   `koanf:"source"`
	Gesture  GestureConfig  `koanf:"gesture"`
	Playback PlaybackConfig `koanf:"playback"`
	MPRIS    MPRISConfig    `koanf:"mpris"`
	Notify   NotifyConfig   `koanf:"notifications"`
	Log      LogConfig      `koanf:"log"`
}

// SourceConfig selects where the catalog comes from.
type SourceConfig struct {
	Backend string       `koanf:"backend"` // "fixture" or "remote"
	Fixture string       `koanf:"fixture"` // path to a .json or .toml fixture
	Remote  RemoteConfig `koanf:"remote"`
}

// RemoteConfig holds the content API settings.
type RemoteConfig struct {
	URL            string `koanf:"url"`   // e.g., "https://example.org/api/posts"
	Token          string `koanf:"token"` // sent as a bearer token when set
	TimeoutSeconds int    `koanf:"timeout_seconds"`
}

// GestureConfig tunes swipe detection.
type GestureConfig struct {
	MinDistance   float64 `koanf:"min_distance"`
	MaxDurationMS int     `koanf:"max_duration_ms"`
}

// PlaybackConfig holds player settings.
type PlaybackConfig struct {
	SeekStepSeconds float64 `koanf:"seek_step_seconds"`
	Volume          float64 `koanf:"volume"` // 0.0-1.0
}

// MPRISConfig toggles the media-key bridge.
type MPRISConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// NotifyConfig controls desktop now-playing notifications.
type NotifyConfig struct {
	Enabled   *bool `koanf:"enabled"`    // default: false
	TimeoutMS int   `koanf:"timeout_ms"` // default: 5000
}

// LogConfig holds file logging settings.
type LogConfig struct {
	Path  string `koanf:"path"`
	Level string `koanf:"level"` // debug, info, warn, error
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given files in order (last wins), skipping missing ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Source.Backend = strings.ToLower(strings.TrimSpace(cfg.Source.Backend))
	if cfg.Source.Backend == "" {
		if cfg.Source.Remote.URL != "" {
			cfg.Source.Backend = BackendRemote
		} else {
			cfg.Source.Backend = BackendFixture
		}
	}

	if cfg.Source.Fixture != "" {
		cfg.Source.Fixture = expandPath(cfg.Source.Fixture)
	}
	if cfg.Log.Path != "" {
		cfg.Log.Path = expandPath(cfg.Log.Path)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/gallery/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasRemote returns true if the remote backend is selected and configured.
func (c *Config) HasRemote() bool {
	return c.Source.Backend == BackendRemote && c.Source.Remote.URL != ""
}

// RemoteTimeout returns the request timeout with the default applied.
func (c *Config) RemoteTimeout() time.Duration {
	if c.Source.Remote.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Source.Remote.TimeoutSeconds) * time.Second
}

// SwipeThresholds returns the gesture thresholds with defaults applied.
func (c *Config) SwipeThresholds() (float64, time.Duration) {
	dist := c.Gesture.MinDistance
	if dist <= 0 {
		dist = 50
	}
	dur := time.Duration(c.Gesture.MaxDurationMS) * time.Millisecond
	if dur <= 0 {
		dur = 500 * time.Millisecond
	}
	return dist, dur
}

// SeekStep returns the keyboard seek step in seconds.
func (c *Config) SeekStep() float64 {
	if c.Playback.SeekStepSeconds <= 0 {
		return 5
	}
	return c.Playback.SeekStepSeconds
}

// VolumeLevel returns the volume clamped to 0.0-1.0, defaulting to 1.0.
func (c *Config) VolumeLevel() float64 {
	v := c.Playback.Volume
	if v <= 0 || v > 1 {
		return 1
	}
	return v
}

// MPRISEnabled returns whether the MPRIS bridge should start.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}

// NotifyEnabled returns whether now-playing notifications are sent.
func (c *Config) NotifyEnabled() bool {
	return c.Notify.Enabled != nil && *c.Notify.Enabled
}

// NotifyTimeout returns the notification timeout in milliseconds.
func (c *Config) NotifyTimeout() int32 {
	if c.Notify.TimeoutMS <= 0 {
		return 5000
	}
	return int32(c.Notify.TimeoutMS)
}

// LogPath returns the log file path, defaulting to the XDG state dir.
func (c *Config) LogPath() string {
	if c.Log.Path != "" {
		return c.Log.Path
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}
