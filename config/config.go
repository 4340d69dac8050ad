package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"github.com/soocke/firescreen-go/domain/compositor"
	"github.com/soocke/firescreen-go/domain/recorder"
)

// DefaultPath is the config file name used when -config is not given.
const DefaultPath = "firescreen.json"

// Environment variables read by ApplyEnv.
const (
	EnvFFmpeg    = "FIRESCREEN_FFMPEG"
	EnvBackend   = "FIRESCREEN_BACKEND"
	EnvOutputDir = "FIRESCREEN_OUTPUT_DIR"
	EnvDebug     = "FIRESCREEN_DEBUG"
)

// Config holds runtime configuration for recording and app behaviour.
// Fields may be loaded from a JSON file and overridden by the environment.
type Config struct {
	Debug bool `json:"debug"`

	// Recording parameters
	FrameRate                int      `json:"frame_rate"`
	CursorRadius             int      `json:"cursor_radius"`
	CursorColor              [3]uint8 `json:"cursor_color"` // r, g, b
	AutoMinimizeOnScreenshot bool     `json:"auto_minimize_on_screenshot"`

	// Environment
	CaptureBackend       string `json:"capture_backend"`
	FFmpegPath           string `json:"ffmpeg_path"`
	OutputDir            string `json:"output_dir"`
	CopyStillToClipboard bool   `json:"copy_still_to_clipboard"`
	Tray                 bool   `json:"tray"`
	DarkMode             bool   `json:"dark_mode"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		FrameRate:      20,
		CursorRadius:   10,
		CursorColor:    [3]uint8{0, 255, 0},
		CaptureBackend: "kbinani",
		FFmpegPath:     "ffmpeg",
	}
}

// Validate replaces out-of-range values with safe ones and normalizes the
// backend name. Every replaced value is reported in the returned error, which
// wraps recorder.ErrInvalidConfiguration; c is usable either way.
func (c *Config) Validate() error {
	var errs *multierror.Error
	replace := func(field string, got, use int) int {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s %d out of range, using %d", recorder.ErrInvalidConfiguration, field, got, use))
		return use
	}
	def := recorder.DefaultSettings()
	switch {
	case c.FrameRate <= 0:
		c.FrameRate = replace("frame_rate", c.FrameRate, def.FrameRate)
	case c.FrameRate > recorder.MaxFrameRate:
		c.FrameRate = replace("frame_rate", c.FrameRate, recorder.MaxFrameRate)
	}
	switch {
	case c.CursorRadius <= 0:
		c.CursorRadius = replace("cursor_radius", c.CursorRadius, def.CursorRadius)
	case c.CursorRadius > recorder.MaxCursorRadius:
		c.CursorRadius = replace("cursor_radius", c.CursorRadius, recorder.MaxCursorRadius)
	}
	backend := strings.ToLower(strings.TrimSpace(c.CaptureBackend))
	switch backend {
	case "kbinani", "vova616", "gdi":
		c.CaptureBackend = backend
	case "":
		c.CaptureBackend = "kbinani"
	default:
		errs = multierror.Append(errs, fmt.Errorf("%w: unknown capture_backend %q, using kbinani", recorder.ErrInvalidConfiguration, c.CaptureBackend))
		c.CaptureBackend = "kbinani"
	}
	if strings.TrimSpace(c.FFmpegPath) == "" {
		c.FFmpegPath = "ffmpeg"
	}
	return errs.ErrorOrNil()
}

// Settings returns the recorder settings carried by the config.
func (c *Config) Settings() recorder.Settings {
	return recorder.Settings{
		FrameRate:    c.FrameRate,
		CursorRadius: c.CursorRadius,
		CursorColor:  compositor.RGB{R: c.CursorColor[0], G: c.CursorColor[1], B: c.CursorColor[2]},
		AutoMinimize: c.AutoMinimizeOnScreenshot,
	}
}

// SetSettings copies s into the config.
func (c *Config) SetSettings(s recorder.Settings) {
	c.FrameRate = s.FrameRate
	c.CursorRadius = s.CursorRadius
	c.CursorColor = [3]uint8{s.CursorColor.R, s.CursorColor.G, s.CursorColor.B}
	c.AutoMinimizeOnScreenshot = s.AutoMinimize
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
// Values replaced by Validate are reported as an error alongside the usable config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv loads the optional dotenv files (".env" when none are given) and
// applies FIRESCREEN_* overrides. Variables already set in the process
// environment win over the files.
func (c *Config) ApplyEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("dotenv: %w", err)
	}
	if v, ok := os.LookupEnv(EnvFFmpeg); ok && strings.TrimSpace(v) != "" {
		c.FFmpegPath = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvBackend); ok && strings.TrimSpace(v) != "" {
		c.CaptureBackend = v
	}
	if v, ok := os.LookupEnv(EnvOutputDir); ok {
		c.OutputDir = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	return c.Validate()
}

// Save writes the configuration to the given path in JSON format. Settings
// that Load would replace are rejected instead of being written.
func (c *Config) Save(path string) error {
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
