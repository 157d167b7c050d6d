package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"slices"
	"time"

	"github.com/prongbang/callx"
)

// SampleSource is the store distance samples come from.
type SampleSource interface {
	// FetchSamples returns the samples taken between start and end, inclusive.
	FetchSamples(ctx context.Context, start, end time.Time) ([]Sample, error)
	// FetchLatest returns the newest sample between start and end, if any.
	FetchLatest(ctx context.Context, start, end time.Time) (Sample, bool, error)
}

// Authorizer gates access to a SampleSource. A denied source reads as empty.
type Authorizer func(ctx context.Context) (bool, error)

// AllowAll is the Authorizer for sources that need no permission.
func AllowAll(context.Context) (bool, error) { return true, nil }

// SliceSource serves samples held in memory.
type SliceSource []Sample

func (s SliceSource) FetchSamples(ctx context.Context, start, end time.Time) ([]Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []Sample
	for _, sample := range s {
		if within(sample.Time, start, end) {
			out = append(out, sample)
		}
	}
	slices.SortFunc(out, func(a, b Sample) int {
		return a.Time.Compare(b.Time)
	})
	return out, nil
}

func (s SliceSource) FetchLatest(ctx context.Context, start, end time.Time) (Sample, bool, error) {
	samples, err := s.FetchSamples(ctx, start, end)
	if err != nil || len(samples) == 0 {
		return Sample{}, false, err
	}
	return samples[len(samples)-1], true, nil
}

// sampleJSON is the wire form shared by the file and HTTP sources.
type sampleJSON struct {
	Time   time.Time `json:"time"`
	Meters float64   `json:"meters"`
}

func decodeSamples(r io.Reader) (SliceSource, error) {
	var raw []sampleJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode samples: %w", err)
	}
	samples := make(SliceSource, 0, len(raw))
	for _, s := range raw {
		samples = append(samples, Sample{Time: s.Time, Meters: s.Meters})
	}
	return samples, nil
}

// NewFileSource reads a JSON array of {"time": RFC3339, "meters": number} objects.
func NewFileSource(path string) (SliceSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open samples file: %w", err)
	}
	defer f.Close()
	return decodeSamples(f)
}

// HTTPSource fetches samples from a remote export endpoint:
// GET <base>/v1/samples?start=<RFC3339>&end=<RFC3339>.
type HTTPSource struct {
	get func(path string) (int, []byte)
}

type HTTPOptions struct {
	BaseURL string
}

func NewHTTPSource(options HTTPOptions) *HTTPSource {
	client := callx.New(callx.Config{
		BaseURL: options.BaseURL,
		Timeout: 10,
	})
	return &HTTPSource{
		get: func(path string) (int, []byte) {
			resp := client.Get(path)
			return resp.Code, resp.Data
		},
	}
}

func (h *HTTPSource) FetchSamples(ctx context.Context, start, end time.Time) ([]Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("start", start.Format(time.RFC3339))
	query.Set("end", end.Format(time.RFC3339))

	code, data, err := h.fetch(ctx, "/v1/samples?"+query.Encode())
	if err != nil {
		return nil, err
	}
	if code != 200 {
		return nil, fmt.Errorf("failed to get samples (%d): %s", code, string(data))
	}

	samples, err := decodeSamples(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	// The server may be sloppy about its bounds.
	return samples.FetchSamples(ctx, start, end)
}

// fetch runs the request in the background so a canceled ctx returns right away.
// callx has no context support; an abandoned request finishes on its own timeout.
func (h *HTTPSource) fetch(ctx context.Context, path string) (int, []byte, error) {
	type response struct {
		code int
		data []byte
	}
	done := make(chan response, 1)
	go func() {
		code, data := h.get(path)
		done <- response{code, data}
	}()

	select {
	case <-ctx.Done():
		return 0, nil, ctx.Err()
	case resp := <-done:
		return resp.code, resp.data, nil
	}
}

func (h *HTTPSource) FetchLatest(ctx context.Context, start, end time.Time) (Sample, bool, error) {
	samples, err := h.FetchSamples(ctx, start, end)
	if err != nil || len(samples) == 0 {
		return Sample{}, false, err
	}
	return samples[len(samples)-1], true, nil
}
