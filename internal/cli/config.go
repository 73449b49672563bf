package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/internal/chart"
)

// ConfigError reports a config value that cannot be used.
type ConfigError struct {
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cli: invalid %s: %v", e.Field, e.Value)
}

// AxisConfig is the [x_axis] or [y_axis] table of a config file.
type AxisConfig struct {
	Label        string    `toml:"label"`
	Placement    string    `toml:"placement"`
	LabelSpacing []float64 `toml:"label_spacing"`
	MinThickness float64   `toml:"min_thickness"`
	Locale       string    `toml:"locale"`
}

// Config is a chart config file.
type Config struct {
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	CenterX        bool    `toml:"center_x"`
	CenterY        bool    `toml:"center_y"`
	DataAspect     float64 `toml:"data_aspect"`
	Margin         float64 `toml:"margin"`
	GridLogBase    int64   `toml:"grid_log_base"`
	GridMinSpacing float64 `toml:"grid_min_spacing"`

	XAxis AxisConfig `toml:"x_axis"`
	YAxis AxisConfig `toml:"y_axis"`
}

func defaultAxisConfig(axis plot.Axis) AxisConfig {
	h := plot.NewAxisHints(axis)
	return AxisConfig{
		Label:        axis.String(),
		Placement:    h.Placement.Name(axis),
		LabelSpacing: []float64{h.LabelSpacing.Min, h.LabelSpacing.Max},
		MinThickness: h.MinThickness,
	}
}

// DefaultConfig returns the config used when no file is given.
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		Margin:         0.05,
		GridLogBase:    10,
		GridMinSpacing: 8,
		XAxis:          defaultAxisConfig(plot.X),
		YAxis:          defaultAxisConfig(plot.Y),
	}
}

// loadConfig reads the config file at path on top of DefaultConfig.
// An empty path returns DefaultConfig.
func loadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("cli: open config: %w", err)
	}
	defer f.Close()
	return decodeConfig(f)
}

func decodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("cli: decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("cli: unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Width <= 0:
		return &ConfigError{Field: "width", Value: c.Width}
	case c.Height <= 0:
		return &ConfigError{Field: "height", Value: c.Height}
	case !(c.DataAspect >= 0) || math.IsInf(c.DataAspect, 0):
		return &ConfigError{Field: "data_aspect", Value: c.DataAspect}
	case !(c.Margin >= 0) || math.IsInf(c.Margin, 0):
		return &ConfigError{Field: "margin", Value: c.Margin}
	case c.GridLogBase < 2:
		return &ConfigError{Field: "grid_log_base", Value: c.GridLogBase}
	case !(c.GridMinSpacing > 0) || math.IsInf(c.GridMinSpacing, 0):
		return &ConfigError{Field: "grid_min_spacing", Value: c.GridMinSpacing}
	}
	if _, err := c.XAxis.hints(plot.X); err != nil {
		return err
	}
	if _, err := c.YAxis.hints(plot.Y); err != nil {
		return err
	}
	return nil
}

// hints converts the axis table to plot.AxisHints.
func (a AxisConfig) hints(axis plot.Axis) (plot.AxisHints, error) {
	field := func(name string) string {
		return axis.String() + "_axis." + name
	}

	placement, err := plot.ParsePlacement(axis, a.Placement)
	if err != nil {
		return plot.AxisHints{}, &ConfigError{Field: field("placement"), Value: a.Placement}
	}
	if len(a.LabelSpacing) != 2 || !(a.LabelSpacing[0] >= 0) || !(a.LabelSpacing[0] < a.LabelSpacing[1]) {
		return plot.AxisHints{}, &ConfigError{Field: field("label_spacing"), Value: a.LabelSpacing}
	}
	if !(a.MinThickness >= 0) || math.IsInf(a.MinThickness, 0) {
		return plot.AxisHints{}, &ConfigError{Field: field("min_thickness"), Value: a.MinThickness}
	}

	opts := []plot.AxisOption{
		plot.WithLabel(a.Label),
		plot.WithPlacement(placement),
		plot.WithLabelSpacing(plot.Range{Min: a.LabelSpacing[0], Max: a.LabelSpacing[1]}),
		plot.WithMinThickness(a.MinThickness),
	}
	if a.Locale != "" {
		tag, err := language.Parse(a.Locale)
		if err != nil {
			return plot.AxisHints{}, &ConfigError{Field: field("locale"), Value: a.Locale}
		}
		opts = append(opts, plot.WithFormatter(plot.SafeFormatter(plot.LocaleFormatter(tag))))
	}
	return plot.NewAxisHints(axis, opts...), nil
}

// chartOptions converts a validated config to chart options.
func (c Config) chartOptions() (chart.Options, error) {
	x, err := c.XAxis.hints(plot.X)
	if err != nil {
		return chart.Options{}, err
	}
	y, err := c.YAxis.hints(plot.Y)
	if err != nil {
		return chart.Options{}, err
	}
	return chart.Options{
		XHints:         x,
		YHints:         y,
		CenterX:        c.CenterX,
		CenterY:        c.CenterY,
		DataAspect:     c.DataAspect,
		Margin:         c.Margin,
		GridBase:       c.GridLogBase,
		GridMinSpacing: c.GridMinSpacing,
	}, nil
}
