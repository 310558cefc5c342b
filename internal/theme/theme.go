// Package theme holds presentation settings for the profile page.
//
// A Theme is a plain value: the page renderer receives a copy per request and
// never reads shared mutable state. Store swaps whole values when the theme
// file changes.
package theme

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Defaults applied when fields are absent from the theme file.
const (
	DefaultTitle       = "五运六气推演"
	DefaultAccentColor = "#b22222"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Theme is the cosmetic configuration of the rendered page.
type Theme struct {
	// Title is shown in the page header and <title>.
	Title string `yaml:"title"`

	// AccentColor is a CSS hex color used for headings and highlights.
	AccentColor string `yaml:"accent_color"`

	// Footer is an optional disclaimer line under the reference table.
	Footer string `yaml:"footer"`
}

// Default returns the built-in theme with the given accent color.
func Default(accent string) Theme {
	t := Theme{AccentColor: accent}
	t.applyDefaults()
	return t
}

func (t *Theme) applyDefaults() {
	if t.Title == "" {
		t.Title = DefaultTitle
	}
	if t.AccentColor == "" {
		t.AccentColor = DefaultAccentColor
	}
	if t.Footer == "" {
		t.Footer = "数据仅供中医爱好者学习交流，临床诊疗请遵医嘱。"
	}
}

// Validate checks the accent color.
func (t Theme) Validate() error {
	if !hexColor.MatchString(t.AccentColor) {
		return fmt.Errorf("accent_color must be a hex color like #b22222; got %q", t.AccentColor)
	}
	return nil
}

// Load reads a YAML theme file and applies defaults.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML theme bytes and applies defaults.
func Parse(data []byte) (Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}
	t.applyDefaults()
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Store holds the current theme for concurrent readers.
type Store struct {
	current atomic.Pointer[Theme]
}

// NewStore returns a store holding initial.
func NewStore(initial Theme) *Store {
	s := &Store{}
	s.Set(initial)
	return s
}

// Current returns a copy of the active theme.
func (s *Store) Current() Theme {
	return *s.current.Load()
}

// Set replaces the active theme.
func (s *Store) Set(t Theme) {
	s.current.Store(&t)
}

// ErrNoPath is returned by Watch when no theme file is configured.
var ErrNoPath = errors.New("theme path not set")

// LoadOrDefault loads path when set, otherwise returns Default(accent).
func LoadOrDefault(path, accent string) (Theme, error) {
	if path == "" {
		return Default(accent), nil
	}
	t, err := Load(path)
	if err != nil {
		return Theme{}, err
	}
	return t, nil
}
