package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/memesmith/internal/overlay"
	"github.com/example/memesmith/internal/render"
	"github.com/example/memesmith/internal/theme"
)

// Caption holds the default caption style.
type Caption struct {
	Font   string
	Size   float64
	Color  string
	Shadow bool
}

// Config holds the application configuration.
type Config struct {
	Theme    string
	LogLevel string
	Static   bool
	Caption  Caption
	Themes   map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	def := overlay.DefaultStyle()
	return &Config{
		Theme: "", // Empty so the environment or the built-in default can apply
		Caption: Caption{
			Font:   def.FontFamily,
			Size:   def.FontSizePx,
			Color:  render.ColorName(def.Color),
			Shadow: def.HasShadow,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// Style resolves the caption section into a label style.
func (c *Config) Style() (overlay.Style, error) {
	st := overlay.DefaultStyle()
	family, ok := render.CanonicalFamily(c.Caption.Font)
	if !ok {
		return st, fmt.Errorf("unknown font %q", c.Caption.Font)
	}
	st.FontFamily = family
	if c.Caption.Size > 0 {
		st.FontSizePx = render.ClampSize(c.Caption.Size)
	}
	if c.Caption.Color != "" {
		col, err := render.ParseColor(c.Caption.Color)
		if err != nil {
			return st, err
		}
		st.Color = col
	}
	st.HasShadow = c.Caption.Shadow
	return st, nil
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.LogLevel != "" {
		fmt.Fprintf(&sb, "log_level = %s\n", c.LogLevel)
	}
	fmt.Fprintf(&sb, "static = %v\n", c.Static)
	sb.WriteString("\n")

	sb.WriteString("[caption]\n")
	fmt.Fprintf(&sb, "font = %s\n", c.Caption.Font)
	fmt.Fprintf(&sb, "size = %g\n", c.Caption.Size)
	fmt.Fprintf(&sb, "color = %s\n", c.Caption.Color)
	fmt.Fprintf(&sb, "shadow = %v\n", c.Caption.Shadow)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.Hex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
