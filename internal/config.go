package internal

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"go.yaml.in/yaml/v4"
)

// Config holds the configuration for the application, parsed from a YAML file.
type Config struct {
	Unit      string       `yaml:"unit"`   // miles or kilometers; required.
	Clock     string       `yaml:"clock"`  // 12h or 24h.
	Window    string       `yaml:"window"` // day, week, month or year; the chart has no all-time history.
	DailyGoal DailyGoal    `yaml:"daily_goal"`
	Source    SourceConfig `yaml:"source"`
	Chart     ChartConfig  `yaml:"chart"`
}

// DailyGoal holds one goal per unit so switching units keeps a sensible goal.
type DailyGoal struct {
	Miles      float64 `yaml:"miles"`
	Kilometers float64 `yaml:"kilometers"`
}

type SourceConfig struct {
	Kind string `yaml:"kind"` // fake, file or http.
	URL  string `yaml:"url"`
	Path string `yaml:"path"`
	Seed int64  `yaml:"seed"`
}

type ChartConfig struct {
	Style        string       `yaml:"style"` // bar or line.
	Width        int          `yaml:"width"`
	Height       int          `yaml:"height"`
	Rounded      bool         `yaml:"rounded"`
	CornerRadius float64      `yaml:"corner_radius"`
	Margin       float64      `yaml:"margin"`
	TopBorder    float64      `yaml:"top_border"`
	BottomBorder float64      `yaml:"bottom_border"`
	Colors       ColorsConfig `yaml:"colors"`
}

// ColorsConfig holds hex colors such as "#646464". Empty keeps the default.
type ColorsConfig struct {
	GradientTop    string `yaml:"gradient_top"`
	GradientBottom string `yaml:"gradient_bottom"`
	Line           string `yaml:"line"`
	Data           string `yaml:"data"`
	Font           string `yaml:"font"`
}

func defaultConfig() Config {
	style := DefaultChartStyle()
	return Config{
		Clock:  "12h",
		Window: "week",
		DailyGoal: DailyGoal{
			Miles:      3,
			Kilometers: 5,
		},
		Source: SourceConfig{
			Kind: "fake",
			Seed: 1,
		},
		Chart: ChartConfig{
			Style:        "bar",
			Width:        640,
			Height:       360,
			CornerRadius: style.CornerRadius,
			Margin:       style.Margin,
			TopBorder:    style.TopBorder,
			BottomBorder: style.BottomBorder,
		},
	}
}

func ReadConfig(reader io.Reader) (Config, error) {
	config := defaultConfig()
	if err := yaml.NewDecoder(reader).Decode(&config); err != nil {
		return config, err
	}
	if err := config.validate(); err != nil {
		return config, err
	}
	return config, nil
}

func (c Config) validate() error {
	if _, err := c.GetDisplayOptions(); err != nil {
		return err
	}
	switch c.Source.Kind {
	case "fake":
	case "file":
		if c.Source.Path == "" {
			return &ConfigurationError{Field: "source.path"}
		}
	case "http":
		if c.Source.URL == "" {
			return &ConfigurationError{Field: "source.url"}
		}
	default:
		return &ConfigurationError{Field: "source.kind", Value: c.Source.Kind}
	}
	if c.Chart.Style != "bar" && c.Chart.Style != "line" {
		return &ConfigurationError{Field: "chart.style", Value: c.Chart.Style}
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return &ConfigurationError{Field: "chart.size", Value: fmt.Sprintf("%dx%d", c.Chart.Width, c.Chart.Height)}
	}
	if _, err := c.GetChartOptions(); err != nil {
		return err
	}
	return nil
}

// DisplayOptions are the settings shared by the aggregation and the screen.
type DisplayOptions struct {
	Unit      DisplayUnit
	Clock     Clock
	Window    BucketWindow
	DailyGoal float64 // In Unit.
}

func (c Config) GetDisplayOptions() (DisplayOptions, error) {
	var options DisplayOptions
	var err error
	if options.Unit, err = ParseDisplayUnit(c.Unit); err != nil {
		return options, err
	}
	if options.Clock, err = ParseClock(c.Clock); err != nil {
		return options, err
	}
	if options.Window, err = ParseBucketWindow(c.Window); err != nil {
		return options, err
	}
	if options.Window.BucketCount() == 0 {
		return options, &ConfigurationError{Field: "window", Value: c.Window}
	}
	options.DailyGoal = c.DailyGoal.Miles
	if options.Unit == UnitKilometers {
		options.DailyGoal = c.DailyGoal.Kilometers
	}
	return options, nil
}

// ChartOptions is a chart style plus the size of the surface it is drawn on.
type ChartOptions struct {
	Style   ChartStyle
	Surface Size
}

func (c Config) GetChartOptions() (ChartOptions, error) {
	style := DefaultChartStyle()
	style.Bar = c.Chart.Style != "line"
	style.Rounded = c.Chart.Rounded
	style.CornerRadius = c.Chart.CornerRadius
	style.Margin = c.Chart.Margin
	style.TopBorder = c.Chart.TopBorder
	style.BottomBorder = c.Chart.BottomBorder

	for _, hex := range []struct {
		field string
		value string
		dst   *color.NRGBA
	}{
		{"chart.colors.gradient_top", c.Chart.Colors.GradientTop, &style.GradientTop},
		{"chart.colors.gradient_bottom", c.Chart.Colors.GradientBottom, &style.GradientBottom},
		{"chart.colors.line", c.Chart.Colors.Line, &style.LineColor},
		{"chart.colors.data", c.Chart.Colors.Data, &style.DataColor},
		{"chart.colors.font", c.Chart.Colors.Font, &style.FontColor},
	} {
		if hex.value == "" {
			continue
		}
		parsed, err := parseHexColor(hex.value)
		if err != nil {
			return ChartOptions{}, &ConfigurationError{Field: hex.field, Value: hex.value}
		}
		*hex.dst = parsed
	}

	return ChartOptions{
		Style:   style,
		Surface: Size{Width: float64(c.Chart.Width), Height: float64(c.Chart.Height)},
	}, nil
}

func (c Config) GetSourceOptions() SourceConfig {
	return c.Source
}

// parseHexColor accepts #rgb and #rrggbb, with or without the #.
func parseHexColor(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
