package wavemenu

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// MenuConfig is the shell-level configuration: the wave animation plus the
// layout of the menu content drawn on top of the revealed panel.
type MenuConfig struct {
	Animation AnimationConfig
	// ContentMargin is the inset of menu items from the panel's left edge.
	ContentMargin float64
	// Items are the menu entry labels, top to bottom.
	Items []string
}

// DefaultMenuConfig returns the stock demo menu.
func DefaultMenuConfig() MenuConfig {
	return MenuConfig{
		Animation:     DefaultAnimationConfig(),
		ContentMargin: 20,
		Items:         []string{"Home", "Library", "Settings", "About"},
	}
}

// menuFile is the YAML layout of a MenuConfig. Pointer fields distinguish
// "absent" from zero so defaults survive partial files.
type menuFile struct {
	PanelWidth    *float64 `yaml:"panel_width"`
	WaveAmplitude *float64 `yaml:"wave_amplitude"`
	Duration      *string  `yaml:"duration"`
	FillColor     *string  `yaml:"fill_color"`
	ContentMargin *float64 `yaml:"content_margin"`
	Items         []string `yaml:"items"`
}

// LoadConfig parses a YAML menu configuration. Missing keys keep the values
// from DefaultMenuConfig.
func LoadConfig(data []byte) (MenuConfig, error) {
	var f menuFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return MenuConfig{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := DefaultMenuConfig()
	if f.PanelWidth != nil {
		cfg.Animation.PanelWidth = *f.PanelWidth
	}
	if f.WaveAmplitude != nil {
		cfg.Animation.WaveAmplitude = *f.WaveAmplitude
	}
	if f.Duration != nil {
		d, err := time.ParseDuration(*f.Duration)
		if err != nil {
			return MenuConfig{}, fmt.Errorf("parse config: duration: %w", err)
		}
		cfg.Animation.Duration = d
	}
	if f.FillColor != nil {
		cfg.Animation.FillColor = *f.FillColor
	}
	if f.ContentMargin != nil {
		cfg.ContentMargin = *f.ContentMargin
	}
	if len(f.Items) > 0 {
		cfg.Items = f.Items
	}

	if err := cfg.Validate(); err != nil {
		return MenuConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be rendered.
func (c MenuConfig) Validate() error {
	if err := c.Animation.Validate(); err != nil {
		return err
	}
	if c.ContentMargin < 0 {
		return fmt.Errorf("content_margin %v is negative", c.ContentMargin)
	}
	return nil
}

// Validate reports settings the animator cannot use. A non-positive
// Duration is allowed and means "complete immediately".
func (c AnimationConfig) Validate() error {
	if c.PanelWidth < 0 {
		return fmt.Errorf("panel_width %v is negative", c.PanelWidth)
	}
	if c.WaveAmplitude < 0 {
		return fmt.Errorf("wave_amplitude %v is negative", c.WaveAmplitude)
	}
	if _, err := ParseColor(c.FillColor); err != nil {
		return err
	}
	return nil
}

// ParseColor parses a "#rrggbb" or "#rgb" hex string into an opaque Color.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("fill_color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}
