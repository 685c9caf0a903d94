package config

import "time"

// DefaultConfig returns the configuration used when no file or environment
// override is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
		Typewriter: TypewriterConfig{
			TypeDelay:  120 * time.Millisecond,
			EraseDelay: 60 * time.Millisecond,
			HoldDelay:  time.Second,
		},
		Hero: TypewriterConfig{
			TypeDelay:  80 * time.Millisecond,
			EraseDelay: 40 * time.Millisecond,
			HoldDelay:  1500 * time.Millisecond,
		},
		Reveal: RevealConfig{
			Duration:      1500 * time.Millisecond,
			FrameInterval: 16 * time.Millisecond,
		},
		Carousel: CarouselConfig{
			Interval: time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
