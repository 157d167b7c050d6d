package internal

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// FakeSource makes up plausible walking data for dev mode. The same seed always
// produces the same samples for a given day.
type FakeSource struct {
	Seed   int64
	Anchor time.Time // No samples after this instant.
	Days   int       // How far back data goes.
}

// Hours of the day fake walks happen in, inclusive.
const (
	fakeFirstHour = 7
	fakeLastHour  = 20
)

func NewFakeSource(seed int64, anchor time.Time) FakeSource {
	return FakeSource{Seed: seed, Anchor: anchor, Days: 400}
}

func (f FakeSource) FetchSamples(ctx context.Context, start, end time.Time) ([]Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if end.After(f.Anchor) {
		end = f.Anchor
	}
	first := addDays(f.Anchor, -f.Days)
	if start.Before(first) {
		start = first
	}

	var out []Sample
	for day := startOfDay(start); !day.After(end); day = addDays(day, 1) {
		for _, s := range f.day(day) {
			if within(s.Time, start, end) {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func (f FakeSource) FetchLatest(ctx context.Context, start, end time.Time) (Sample, bool, error) {
	samples, err := f.FetchSamples(ctx, start, end)
	if err != nil || len(samples) == 0 {
		return Sample{}, false, err
	}
	return samples[len(samples)-1], true, nil
}

// day returns one sample per active hour of the given day.
func (f FakeSource) day(day time.Time) []Sample {
	rng := rand.New(rand.NewSource(f.Seed + day.Unix()))
	meters := getBiasedSmoothRandomValues(rng, fakeLastHour-fakeFirstHour+1, 0, 1500)

	samples := make([]Sample, len(meters))
	for i, m := range meters {
		at := day.Add(time.Duration(fakeFirstHour+i)*time.Hour + time.Duration(rng.Intn(60))*time.Minute)
		samples[i] = Sample{Time: at, Meters: m}
	}
	return samples
}

// Returns n random values between min and max, biased towards min, with smooth transitions.
func getBiasedSmoothRandomValues(rng *rand.Rand, n int, min, max float64) []float64 {
	values := make([]float64, n)

	for i := range values {
		// Prefer lower values.
		bias := rng.Float64()
		target := min + math.Pow(bias, 4)*(max-min)

		next := target
		if i > 0 {
			// Smooth the change from one value to the next.
			step := rng.Float64()*100 - 50
			next = values[i-1] + step
			next = (next*3 + target) / 4
		}

		values[i] = math.Min(math.Max(next, min), max)
	}

	return values
}
