package press

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config mirrors the controller options for file-based setup, so a host
// can keep behavior tuning (localized announcement strings, timing
// defaults, teardown policy) next to its other configuration.
type Config struct {
	// LoadingMessage is announced when a loading session begins.
	LoadingMessage string `toml:"loading_message"`

	// LoadedMessage is announced when a loading session completes.
	LoadedMessage string `toml:"loaded_message"`

	// DefaultDurationMs is the fallback for missing or malformed
	// duration attributes, in milliseconds.
	DefaultDurationMs int `toml:"default_duration_ms"`

	// MinDurationMs and MaxDurationMs bound every transient duration.
	MinDurationMs int `toml:"min_duration_ms"`
	MaxDurationMs int `toml:"max_duration_ms"`

	// AnnounceDelayMs is the clear-to-set delay on the live region.
	AnnounceDelayMs int `toml:"announce_delay_ms"`

	// ItemCacheWindowMs is the dropdown item cache freshness window.
	ItemCacheWindowMs int `toml:"item_cache_window_ms"`

	// FrameRate approximates the host frame rate for deferred layout
	// work. Valid range is 1-240.
	FrameRate int `toml:"frame_rate"`

	// QueueSize is the controller event queue capacity.
	QueueSize int `toml:"queue_size"`

	// AutoStart starts the controller at construction when true.
	AutoStart bool `toml:"auto_start"`

	// CancelTimersOnTeardown makes Stop cancel in-flight timers instead
	// of leaving them to the detached-widget fallback.
	CancelTimersOnTeardown bool `toml:"cancel_timers_on_teardown"`

	// RightToLeft marks the host layout direction.
	RightToLeft bool `toml:"right_to_left"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		LoadingMessage:    defaultLoadingMessage,
		LoadedMessage:     defaultLoadedMessage,
		DefaultDurationMs: int(defaultDuration / time.Millisecond),
		MinDurationMs:     int(defaultMinDuration / time.Millisecond),
		MaxDurationMs:     int(defaultMaxDuration / time.Millisecond),
		AnnounceDelayMs:   int(defaultAnnounceDelay / time.Millisecond),
		ItemCacheWindowMs: int(defaultCacheWindow / time.Millisecond),
		FrameRate:         60,
		QueueSize:         defaultQueueSize,
		AutoStart:         true,
	}
}

// LoadConfig reads a TOML file over the defaults and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges without applying anything.
func (cfg Config) Validate() error {
	if cfg.LoadingMessage == "" || cfg.LoadedMessage == "" {
		return fmt.Errorf("announcement messages cannot be empty")
	}
	if cfg.DefaultDurationMs <= 0 {
		return fmt.Errorf("default_duration_ms must be positive")
	}
	if cfg.MinDurationMs <= 0 || cfg.MaxDurationMs < cfg.MinDurationMs {
		return fmt.Errorf("invalid duration bounds [%d, %d]", cfg.MinDurationMs, cfg.MaxDurationMs)
	}
	if cfg.AnnounceDelayMs <= 0 {
		return fmt.Errorf("announce_delay_ms must be positive")
	}
	if cfg.ItemCacheWindowMs <= 0 {
		return fmt.Errorf("item_cache_window_ms must be positive")
	}
	if cfg.FrameRate < 1 || cfg.FrameRate > 240 {
		return fmt.Errorf("frame_rate must be in 1-240, got %d", cfg.FrameRate)
	}
	if cfg.QueueSize < 1 {
		return fmt.Errorf("queue_size must be at least 1")
	}
	return nil
}

// Options converts the config into controller options.
func (cfg Config) Options() []Option {
	opts := []Option{
		WithLoadingMessage(cfg.LoadingMessage),
		WithLoadedMessage(cfg.LoadedMessage),
		WithDefaultDuration(time.Duration(cfg.DefaultDurationMs) * time.Millisecond),
		WithDurationBounds(
			time.Duration(cfg.MinDurationMs)*time.Millisecond,
			time.Duration(cfg.MaxDurationMs)*time.Millisecond,
		),
		WithAnnounceDelay(time.Duration(cfg.AnnounceDelayMs) * time.Millisecond),
		WithItemCacheWindow(time.Duration(cfg.ItemCacheWindowMs) * time.Millisecond),
		WithFrameRate(cfg.FrameRate),
		WithQueueSize(cfg.QueueSize),
	}
	if !cfg.AutoStart {
		opts = append(opts, WithoutAutoStart())
	}
	if cfg.CancelTimersOnTeardown {
		opts = append(opts, WithCancelTimersOnTeardown())
	}
	if cfg.RightToLeft {
		opts = append(opts, WithRightToLeft())
	}
	return opts
}
