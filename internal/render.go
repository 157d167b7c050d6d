package internal

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

//go:embed screen.go.html
var templates embed.FS

type renderData struct {
	Header *Header
	Cards  []*Card
}

// assembleData loads the header and cards, in screen order, and keeps the cards that
// have something to show. Every loader reads the same ReportLoader, so only the first
// one waits on the source.
func assembleData(header Header, cards []Card, logger *zap.Logger) renderData {
	var err error
	if e := header.Load(); e != nil {
		err = fmt.Errorf("failed to load header: %w", e)
	}

	data := renderData{Header: &header}
	for i := range cards {
		if e := cards[i].Load(); e != nil {
			err = errors.Join(err, fmt.Errorf("failed to load card (%s): %w", cards[i].Title, e))
			continue
		}
		if cards[i].Valid() {
			data.Cards = append(data.Cards, &cards[i])
		}
	}
	if err != nil {
		logger.Warn("failed to load some cards", zap.Error(err))
	}
	return data
}

// screenHandler serves the screen, parsing the template on each request.
func screenHandler(parse func() (*template.Template, error), header Header, cards []Card, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tmpl, err := parse()
		if err != nil {
			logger.Error("failed to parse template", zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if err := tmpl.Execute(w, assembleData(header, cards, logger)); err != nil {
			logger.Error("failed to execute template", zap.Error(err))
		}
	})
}

// DevRender serves the screen on addr. The template is read from disk so it can be
// edited without rebuilding.
func DevRender(header Header, cards []Card, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/{$}", screenHandler(func() (*template.Template, error) {
		return template.ParseFiles("internal/screen.go.html")
	}, header, cards, logger))

	logger.Info("dev server running", zap.String("url", "http://localhost"+addr+"/"))
	return http.ListenAndServe(addr, mux)
}

// Render screenshots the screen in headless Chrome and returns the PNG.
func Render(ctx context.Context, header Header, cards []Card, viewport Size, logger *zap.Logger) ([]byte, error) {
	ts := httptest.NewServer(screenHandler(func() (*template.Template, error) {
		return template.ParseFS(templates, "screen.go.html")
	}, header, cards, logger))
	defer ts.Close()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Headless,
		chromedp.DisableGPU,
	)
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	ctx, cancel = chromedp.NewContext(allocCtx)
	defer cancel()

	// The page has no external resources, so a ready body is a finished page.
	var buf []byte
	if err := chromedp.Run(ctx,
		chromedp.EmulateViewport(int64(viewport.Width), int64(viewport.Height)),
		chromedp.Navigate(ts.URL),
		chromedp.WaitReady("body"),
		chromedp.CaptureScreenshot(&buf),
	); err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}
	return buf, nil
}
