package internal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
)

// Backend selects how Run presents the result.
type Backend string

const (
	BackendRaster  Backend = "raster"  // The chart alone, drawn to a PNG.
	BackendBrowser Backend = "browser" // The whole screen, screenshotted through headless Chrome.
	BackendDev     Backend = "dev"     // The whole screen, served over HTTP.
	BackendSummary Backend = "summary" // Plain text totals.
)

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case BackendRaster, BackendBrowser, BackendDev, BackendSummary:
		return b, nil
	}
	return "", &ConfigurationError{Field: "backend", Value: s}
}

// RunOptions carry the per-invocation settings that don't belong in the config file.
type RunOptions struct {
	Backend Backend
	Fake    bool      // Ignore the configured source and use generated data.
	Window  string    // Overrides the configured window when set.
	Now     time.Time // Defaults to the current time.
	Img     string    // PNG output path for the raster and browser backends.
	Addr    string    // Listen address for the dev backend.
	Out     io.Writer // Summary output; defaults to stdout.
}

func Run(ctx context.Context, config Config, options RunOptions, logger *zap.Logger) error {
	if options.Window != "" {
		config.Window = options.Window
	}
	display, err := config.GetDisplayOptions()
	if err != nil {
		return err
	}
	chart, err := config.GetChartOptions()
	if err != nil {
		return err
	}

	now := options.Now
	if now.IsZero() {
		now = time.Now()
	}

	sourceOptions := config.GetSourceOptions()
	if options.Fake {
		sourceOptions.Kind = "fake"
	}
	source, err := NewSource(sourceOptions, now)
	if err != nil {
		return err
	}
	logger.Debug("rendering",
		zap.String("backend", string(options.Backend)),
		zap.String("source", sourceOptions.Kind),
		zap.Stringer("window", display.Window),
		zap.Stringer("unit", display.Unit),
		zap.Time("now", now),
	)

	getReport := NewReportLoader(ctx, source, AllowAll, display, now, logger)

	switch options.Backend {
	case BackendSummary:
		out := options.Out
		if out == nil {
			out = os.Stdout
		}
		report, err := getReport()
		if err != nil {
			return err
		}
		return WriteSummary(out, report, display)

	case BackendRaster:
		card := NewChartCard(display, chart, getReport)
		if err := card.Load(); err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := DrawPNG(&buf, card.Primitives, chart.Surface); err != nil {
			return fmt.Errorf("failed to draw chart: %w", err)
		}
		return writeImage(options.Img, buf.Bytes(), logger)
	}

	// Screen order.
	cards := []Card{
		NewChartCard(display, chart, getReport),
		NewGoalCard(display, getReport),
	}
	cards = append(cards, NewTotalsCards(display, getReport)...)

	header := NewHeader(display, getReport)

	switch options.Backend {
	case BackendDev:
		return DevRender(header, cards, options.Addr, logger)
	case BackendBrowser:
		viewport := Size{Width: chart.Surface.Width + 400, Height: chart.Surface.Height + 200}
		buf, err := Render(ctx, header, cards, viewport, logger)
		if err != nil {
			return err
		}
		return writeImage(options.Img, buf, logger)
	}
	return &ConfigurationError{Field: "backend", Value: string(options.Backend)}
}

// NewSource creates the sample source described by options. now anchors fake data.
func NewSource(options SourceConfig, now time.Time) (SampleSource, error) {
	switch options.Kind {
	case "fake":
		return NewFakeSource(options.Seed, now), nil
	case "file":
		return NewFileSource(options.Path)
	case "http":
		return NewHTTPSource(HTTPOptions{BaseURL: options.URL}), nil
	}
	return nil, &ConfigurationError{Field: "source.kind", Value: options.Kind}
}

// WriteSummary prints the totals screen as text.
func WriteSummary(w io.Writer, report Report, display DisplayOptions) error {
	s := NewSummary(report.Result, display.Unit, display.DailyGoal)
	_, err := fmt.Fprintf(w, `Today:      %s (%s of goal, last entry %s)
Goal:       %s
This week:  %s (%s per day)
This month: %s (%s per day)
This year:  %s (%s per day)
All time:   %s
`,
		s.Today, s.Percentage, report.Result.LatestSampleTimeLabel,
		s.DailyGoal,
		s.Week, s.WeekAverage,
		s.Month, s.MonthAverage,
		s.Year, s.YearAverage,
		s.AllTime,
	)
	return err
}

func writeImage(path string, buf []byte, logger *zap.Logger) error {
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	logger.Info("wrote image", zap.String("path", path), zap.Int("bytes", len(buf)))
	return nil
}
