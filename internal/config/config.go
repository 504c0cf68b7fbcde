// Package config loads the user configuration: a YAML file validated
// against an embedded JSON schema, merged over defaults, with environment
// overrides applied last.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	applog "github.com/ha1tch/mathpad/internal/log"
	"github.com/ha1tch/mathpad/internal/paint"
)

//go:embed schema.json
var schemaJSON []byte

// ErrInvalid is wrapped by every schema or syntax failure.
var ErrInvalid = errors.New("invalid config")

// Environment overrides.
const (
	EnvConfig    = "MATHPAD_CONFIG"
	EnvTargetFPS = "MATHPAD_TARGET_FPS"
	EnvAssetsDir = "MATHPAD_ASSETS_DIR"
)

// Color is [r, g, b] or [r, g, b, a].
type Color []int

type Display struct {
	TargetFPS int  `yaml:"target_fps"`
	MSAA      bool `yaml:"msaa"`
}

type Assets struct {
	// Dir is an icon directory; empty means the embedded set.
	Dir string `yaml:"dir"`
}

type Colors struct {
	Stroke     Color `yaml:"stroke"`
	Preview    Color `yaml:"preview"`
	Background Color `yaml:"background"`
	Panel      Color `yaml:"panel"`
	Controls   Color `yaml:"controls"`
	Highlight  Color `yaml:"highlight"`
}

type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int     `yaml:"config_version"`
	Display       Display `yaml:"display"`
	Assets        Assets  `yaml:"assets"`
	Colors        Colors  `yaml:"colors"`
	Logging       Logging `yaml:"logging"`
}

func fromRGBA(c color.RGBA) Color {
	return Color{int(c.R), int(c.G), int(c.B), int(c.A)}
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	p := paint.DefaultPalette()
	return AppConfig{
		ConfigVersion: 1,
		Display:       Display{TargetFPS: 60, MSAA: true},
		Colors: Colors{
			Stroke:     fromRGBA(p.Stroke),
			Preview:    fromRGBA(p.Preview),
			Background: fromRGBA(p.Background),
			Panel:      fromRGBA(p.Panel),
			Controls:   fromRGBA(p.Controls),
			Highlight:  fromRGBA(p.Highlight),
		},
		Logging: Logging{Level: "info", Format: "console"},
	}
}

// Path returns the config file location: $MATHPAD_CONFIG, or config.yaml
// under the per-user config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "mathpad", "config.yaml"), nil
}

// Load reads path (Path() when empty). A missing file yields the defaults;
// a file that does not parse or fails validation is an error.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := Parse(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse validates data and decodes it over cfg. Keys absent from data keep
// their current values.
func Parse(data []byte, cfg *AppConfig) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if doc == nil {
		return nil
	}
	if err := Validate(doc); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Validate checks a decoded YAML document against the config schema.
func Validate(doc any) error {
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv(EnvTargetFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil || fps <= 0 {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvTargetFPS, v)
		}
		cfg.Display.TargetFPS = fps
	}
	if v, ok := os.LookupEnv(EnvAssetsDir); ok {
		cfg.Assets.Dir = v
	}
	if v := os.Getenv(applog.EnvLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(applog.EnvFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(applog.EnvSource); v != "" {
		cfg.Logging.Source = strings.EqualFold(v, "true")
	}
	if v := os.Getenv(applog.EnvFile); v != "" {
		cfg.Logging.File = v
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg AppConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// LogOptions converts the logging section.
func (l Logging) LogOptions() applog.Options {
	return applog.Options{Level: l.Level, Format: l.Format, AddSource: l.Source, File: l.File}
}

// RGBA converts c, treating a missing alpha as opaque. Components outside
// 0..255 are clamped.
func (c Color) RGBA(fallback color.RGBA) color.RGBA {
	if len(c) < 3 {
		return fallback
	}
	ch := func(i int) uint8 { return uint8(min(max(c[i], 0), 255)) }
	out := color.RGBA{R: ch(0), G: ch(1), B: ch(2), A: 255}
	if len(c) > 3 {
		out.A = ch(3)
	}
	return out
}

// Palette builds the session palette, falling back to the defaults for
// unset entries.
func (c Colors) Palette() paint.Palette {
	d := paint.DefaultPalette()
	return paint.Palette{
		Stroke:     c.Stroke.RGBA(d.Stroke),
		Preview:    c.Preview.RGBA(d.Preview),
		Background: c.Background.RGBA(d.Background),
		Panel:      c.Panel.RGBA(d.Panel),
		Controls:   c.Controls.RGBA(d.Controls),
		Highlight:  c.Highlight.RGBA(d.Highlight),
	}
}
