package internal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Report is one aggregation of the sample source, shared by the header and the cards.
type Report struct {
	Now    time.Time
	Result AggregationResult
	Latest *Sample // Newest sample today, if any.
}

// NewReportLoader returns a ReportLoader that queries the source once, as of now.
func NewReportLoader(ctx context.Context, source SampleSource, authorize Authorizer, display DisplayOptions, now time.Time, logger *zap.Logger) ReportLoader {
	var once sync.Once
	var report Report
	var err error

	return func() (Report, error) {
		once.Do(func() {
			report, err = loadReport(ctx, source, authorize, display, now, logger)
		})
		return report, err
	}
}

func loadReport(ctx context.Context, source SampleSource, authorize Authorizer, display DisplayOptions, now time.Time, logger *zap.Logger) (Report, error) {
	report := Report{Now: now}
	aggregator := NewAggregator(display.Clock)

	allowed, err := authorize(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to check authorization: %w", err)
	}
	if !allowed {
		// Unauthorized reads look exactly like an empty store.
		logger.Warn("sample source not authorized, showing no data")
		report.Result, err = aggregator.Aggregate(nil, now, display.Unit)
		return report, err
	}

	// History and the latest entry are independent queries.
	var (
		wg      sync.WaitGroup
		samples []Sample
		latest  Sample
		found   bool
		errs    = make([]error, 2)
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		samples, errs[0] = source.FetchSamples(ctx, beginningOfTime(now), now)
	}()
	go func() {
		defer wg.Done()
		latest, found, errs[1] = source.FetchLatest(ctx, startOfDay(now), now)
	}()
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return report, fmt.Errorf("failed to fetch samples: %w", err)
	}
	logger.Debug("fetched samples", zap.Int("count", len(samples)), zap.Bool("latest", found))

	if found {
		report.Latest = &latest
	}
	report.Result, err = aggregator.Aggregate(samples, now, display.Unit)
	return report, err
}
