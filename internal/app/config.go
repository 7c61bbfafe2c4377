package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config controls runtime behavior for the accessibility layer.
type Config struct {
	LogPath   string `env:"MENUVOX_LOG"`
	DataDir   string `env:"MENUVOX_DATA_DIR"`
	ASCIIOnly bool   `env:"MENUVOX_ASCII"`
	Debug     bool   `env:"MENUVOX_DEBUG"`
	Speech    SpeechConfig
	UI        UIConfig
}

type SpeechConfig struct {
	// Backend selects the synthesizer: auto probes the local speech
	// dispatchers, log routes utterances to the logger, off mutes.
	Backend            string `env:"MENUVOX_SPEECH_BACKEND"`
	DebounceMS         int    `env:"MENUVOX_SPEECH_DEBOUNCE_MS"`
	DeferredCooldownMS int    `env:"MENUVOX_SPEECH_COOLDOWN_MS"`
}

type UIConfig struct {
	StyleVariant string `env:"MENUVOX_STYLE"`
	MotionLevel  string `env:"MENUVOX_MOTION"`
}

func DefaultConfig() Config {
	return Config{
		Speech: SpeechConfig{
			Backend:            "auto",
			DebounceMS:         1500,
			DeferredCooldownMS: 250,
		},
		UI: UIConfig{
			StyleVariant: "midnight",
			MotionLevel:  "full",
		},
	}
}

// FromEnv layers environment overrides on the defaults.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Speech.Backend {
	case "", "auto", "log", "off":
	default:
		return fmt.Errorf("invalid speech backend %q", c.Speech.Backend)
	}
	if c.Speech.Backend == "" {
		c.Speech.Backend = "auto"
	}
	if c.Speech.DebounceMS <= 0 {
		c.Speech.DebounceMS = 1500
	}
	if c.Speech.DeferredCooldownMS <= 0 {
		c.Speech.DeferredCooldownMS = 250
	}
	switch c.UI.StyleVariant {
	case "", "midnight", "high_contrast", "retro_terminal":
	default:
		return fmt.Errorf("invalid ui style variant %q", c.UI.StyleVariant)
	}
	if c.UI.StyleVariant == "" {
		c.UI.StyleVariant = "midnight"
	}
	switch c.UI.MotionLevel {
	case "", "off", "reduced", "full":
	default:
		return fmt.Errorf("invalid ui motion level %q", c.UI.MotionLevel)
	}
	if c.UI.MotionLevel == "" {
		c.UI.MotionLevel = "full"
	}

	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.New("cannot resolve user home directory")
		}
		c.DataDir = filepath.Join(home, ".local", "share", "menuvox")
	}

	return nil
}
