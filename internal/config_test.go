package internal

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {
	config, err := ReadConfig(strings.NewReader("unit: miles\n"))
	require.NoError(t, err)

	display, err := config.GetDisplayOptions()
	require.NoError(t, err)
	assert.Equal(t, DisplayOptions{
		Unit:      UnitMiles,
		Clock:     Clock12Hour,
		Window:    WindowWeek,
		DailyGoal: 3,
	}, display)

	chart, err := config.GetChartOptions()
	require.NoError(t, err)
	assert.Equal(t, DefaultChartStyle(), chart.Style)
	assert.Equal(t, Size{Width: 640, Height: 360}, chart.Surface)

	assert.Equal(t, SourceConfig{Kind: "fake", Seed: 1}, config.GetSourceOptions())
}

func TestReadConfig(t *testing.T) {
	config, err := ReadConfig(strings.NewReader(`
unit: km
clock: 24h
window: month
daily_goal:
  kilometers: 8
source:
  kind: http
  url: https://example.com
chart:
  style: line
  width: 800
  height: 400
  rounded: true
  corner_radius: 12
  colors:
    gradient_top: "#646464"
    data: "#f00"
`))
	require.NoError(t, err)

	display, err := config.GetDisplayOptions()
	require.NoError(t, err)
	assert.Equal(t, UnitKilometers, display.Unit)
	assert.Equal(t, Clock24Hour, display.Clock)
	assert.Equal(t, WindowMonth, display.Window)
	assert.Equal(t, 8.0, display.DailyGoal)

	chart, err := config.GetChartOptions()
	require.NoError(t, err)
	assert.False(t, chart.Style.Bar)
	assert.True(t, chart.Style.Rounded)
	assert.Equal(t, 12.0, chart.Style.CornerRadius)
	assert.Equal(t, color.NRGBA{R: 100, G: 100, B: 100, A: 255}, chart.Style.GradientTop)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, chart.Style.DataColor)
	assert.Equal(t, Size{Width: 800, Height: 400}, chart.Surface)

	assert.Equal(t, "https://example.com", config.GetSourceOptions().URL)
}

func TestReadConfigErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		yaml  string
		field string
	}{
		"missing unit":      {"clock: 12h\n", "unit"},
		"bad unit":          {"unit: leagues\n", "unit"},
		"bad clock":         {"unit: mi\nclock: 36h\n", "clock"},
		"bad window":        {"unit: mi\nwindow: decade\n", "window"},
		"all time window":   {"unit: mi\nwindow: alltime\n", "window"},
		"file without path": {"unit: mi\nsource:\n  kind: file\n", "source.path"},
		"http without url":  {"unit: mi\nsource:\n  kind: http\n", "source.url"},
		"bad source":        {"unit: mi\nsource:\n  kind: ftp\n", "source.kind"},
		"bad style":         {"unit: mi\nchart:\n  style: pie\n", "chart.style"},
		"bad size":          {"unit: mi\nchart:\n  width: 0\n", "chart.size"},
		"bad color":         {"unit: mi\nchart:\n  colors:\n    font: \"#12\"\n", "chart.colors.font"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ReadConfig(strings.NewReader(tc.yaml))

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestReadConfigBadYAML(t *testing.T) {
	_, err := ReadConfig(strings.NewReader("unit: [miles\n"))
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	for in, want := range map[string]color.NRGBA{
		"#fff":    {R: 255, G: 255, B: 255, A: 255},
		"#636363": {R: 0x63, G: 0x63, B: 0x63, A: 255},
		"000000":  {A: 255},
		"#FF8000": {R: 255, G: 128, A: 255},
	} {
		got, err := parseHexColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "#12", "#zzzzzz", "#ffffff80"} {
		_, err := parseHexColor(in)
		assert.Error(t, err, in)
	}
}
