package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.May, 15, hour, minute, 0, 0, time.UTC)
}

func TestSliceSource(t *testing.T) {
	source := SliceSource{
		{Time: at(12, 0), Meters: 3},
		{Time: at(8, 0), Meters: 1},
		{Time: at(10, 0), Meters: 2},
		{Time: at(16, 0), Meters: 4},
	}

	samples, err := source.FetchSamples(t.Context(), at(8, 0), at(12, 0))
	require.NoError(t, err)
	assert.Equal(t, []Sample{
		{Time: at(8, 0), Meters: 1},
		{Time: at(10, 0), Meters: 2},
		{Time: at(12, 0), Meters: 3},
	}, samples)

	latest, ok, err := source.FetchLatest(t.Context(), at(0, 0), at(14, 30))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3.0, latest.Meters)

	_, ok, err = source.FetchLatest(t.Context(), at(17, 0), at(18, 0))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSliceSourceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := SliceSource{}.FetchSamples(ctx, at(0, 0), at(1, 0))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"time": "2024-05-15T10:00:00Z", "meters": 1200.5},
		{"time": "2024-05-15T08:00:00Z", "meters": 300}
	]`), 0644))

	source, err := NewFileSource(path)
	require.NoError(t, err)

	samples, err := source.FetchSamples(t.Context(), at(0, 0), at(23, 0))
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, 300.0, samples[0].Meters)
	assert.True(t, samples[1].Time.Equal(at(10, 0)))
}

func TestFileSourceErrors(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"time": 1}`), 0644))
	_, err = NewFileSource(path)
	assert.ErrorContains(t, err, "failed to decode samples")
}

func TestHTTPSource(t *testing.T) {
	var query map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/samples", r.URL.Path)
		query = map[string]string{
			"start": r.URL.Query().Get("start"),
			"end":   r.URL.Query().Get("end"),
		}
		w.Header().Set("Content-Type", "application/json")
		// The last sample is outside the requested range.
		w.Write([]byte(`[
			{"time": "2024-05-15T09:00:00Z", "meters": 800},
			{"time": "2024-05-15T11:00:00Z", "meters": 400},
			{"time": "2024-05-15T20:00:00Z", "meters": 100}
		]`))
	}))
	defer ts.Close()

	source := NewHTTPSource(HTTPOptions{BaseURL: ts.URL})
	samples, err := source.FetchSamples(t.Context(), at(0, 0), at(14, 30))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"start": "2024-05-15T00:00:00Z",
		"end":   "2024-05-15T14:30:00Z",
	}, query)
	require.Len(t, samples, 2)
	assert.Equal(t, 800.0, samples[0].Meters)

	latest, ok, err := source.FetchLatest(t.Context(), at(0, 0), at(14, 30))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 400.0, latest.Meters)
}

func TestHTTPSourceErrorStatus(t *testing.T) {
	source := &HTTPSource{get: func(string) (int, []byte) {
		return http.StatusServiceUnavailable, []byte("down for maintenance")
	}}
	_, err := source.FetchSamples(t.Context(), at(0, 0), at(1, 0))
	assert.ErrorContains(t, err, "503")
	assert.ErrorContains(t, err, "down for maintenance")
}

func TestHTTPSourceCanceledInFlight(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	started := make(chan struct{})
	source := &HTTPSource{get: func(string) (int, []byte) {
		close(started)
		<-release
		return http.StatusOK, []byte("[]")
	}}

	ctx, cancel := context.WithCancel(t.Context())
	go func() {
		<-started
		cancel()
	}()

	_, err := source.FetchSamples(ctx, at(0, 0), at(1, 0))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFakeSourceIsStable(t *testing.T) {
	a := NewFakeSource(42, testNow)
	b := NewFakeSource(42, testNow)
	start := testNow.AddDate(0, 0, -3)

	first, err := a.FetchSamples(t.Context(), start, testNow)
	require.NoError(t, err)
	second, err := b.FetchSamples(t.Context(), start, testNow)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)

	for _, s := range first {
		assert.False(t, s.Time.After(testNow))
		assert.False(t, s.Time.Before(start))
		assert.GreaterOrEqual(t, s.Meters, 0.0)
		assert.LessOrEqual(t, s.Meters, 1500.0)
		assert.GreaterOrEqual(t, s.Time.Hour(), fakeFirstHour)
		assert.LessOrEqual(t, s.Time.Hour(), fakeLastHour)
	}
}

func TestFakeSourceStopsAtAnchor(t *testing.T) {
	source := NewFakeSource(1, testNow)
	samples, err := source.FetchSamples(t.Context(), testNow.Add(time.Minute), testNow.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, samples)

	source.Days = 2
	samples, err = source.FetchSamples(t.Context(), beginningOfTime(testNow), testNow)
	require.NoError(t, err)
	for _, s := range samples {
		assert.False(t, s.Time.Before(startOfDay(testNow).AddDate(0, 0, -2)))
	}
}

func TestFakeSourceLatest(t *testing.T) {
	source := NewFakeSource(1, testNow)
	latest, ok, err := source.FetchLatest(t.Context(), startOfDay(testNow), testNow)
	require.NoError(t, err)
	require.True(t, ok)

	samples, err := source.FetchSamples(t.Context(), startOfDay(testNow), testNow)
	require.NoError(t, err)
	assert.Equal(t, samples[len(samples)-1], latest)
}
