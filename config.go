package govega

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultMaxRows is the row ceiling applied to composites that do not set
// max_rows explicitly.
const DefaultMaxRows = 5000

// Config holds process-wide settings. It is meant to be set once at startup.
type Config struct {
	// MaxRows is the default row ceiling for new composites.
	MaxRows int `yaml:"max_rows"`
	// Rendering enables the externally rendered image formats (png, svg).
	Rendering bool `yaml:"rendering"`
	// Renderers maps an image format to the external command producing it.
	Renderers map[string]string `yaml:"renderers"`
	// HTMLTitle is the default document title of the markup export.
	HTMLTitle string `yaml:"html_title"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		MaxRows:   DefaultMaxRows,
		Renderers: map[string]string{"png": "vl2png", "svg": "vl2svg"},
		HTMLTitle: "Vega-Lite Chart",
	}
}

var (
	configMu      sync.RWMutex
	currentConfig = DefaultConfig()
	currentLogger = slog.Default()
)

// Configure replaces the process-wide configuration. Zero-valued fields fall
// back to their defaults.
func Configure(c Config) {
	def := DefaultConfig()
	if c.MaxRows <= 0 {
		c.MaxRows = def.MaxRows
	}
	if c.HTMLTitle == "" {
		c.HTMLTitle = def.HTMLTitle
	}
	merged := def.Renderers
	for k, v := range c.Renderers {
		merged[k] = v
	}
	c.Renderers = merged
	configMu.Lock()
	currentConfig = c
	configMu.Unlock()
}

// CurrentConfig returns a copy of the process-wide configuration.
func CurrentConfig() Config {
	configMu.RLock()
	c := currentConfig
	configMu.RUnlock()
	rs := make(map[string]string, len(c.Renderers))
	for k, v := range c.Renderers {
		rs[k] = v
	}
	c.Renderers = rs
	return c
}

// EnableRendering toggles the externally rendered image formats. The export
// path checks this flag; it never alters any type.
func EnableRendering(on bool) {
	configMu.Lock()
	currentConfig.Rendering = on
	configMu.Unlock()
}

// RenderingEnabled reports whether image formats may be produced.
func RenderingEnabled() bool {
	configMu.RLock()
	defer configMu.RUnlock()
	return currentConfig.Rendering
}

// LoadConfig reads a YAML configuration. Unknown keys are rejected so that
// typos surface instead of being silently ignored.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if err == io.EOF {
			return c, nil
		}
		return Config{}, fmt.Errorf("govega: load config: %w", err)
	}
	if c.MaxRows < 0 {
		return Config{}, fmt.Errorf("govega: load config: max_rows must not be negative, got %d", c.MaxRows)
	}
	return c, nil
}

// SetLogger replaces the logger used for warnings and debug traces. A nil
// logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	configMu.Lock()
	currentLogger = l
	configMu.Unlock()
}

// Logger returns the process-wide logger.
func Logger() *slog.Logger {
	configMu.RLock()
	defer configMu.RUnlock()
	return currentLogger
}
