// Package pipeline renders a set of scenes and writes each one to a PNG under
// an output root.
//
// Only failing to create the output root aborts a run. Every scene after that
// is composed and saved on its own; a failure is recorded in its result and
// the remaining scenes still render.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/xob0t/storeshots/pkg/fonts"
	"github.com/xob0t/storeshots/pkg/scene"
)

var (
	// ErrOutputRoot is returned when the output directory cannot be created.
	ErrOutputRoot = errors.New("output root unavailable")
	// ErrUnknownScene is returned when a configuration names a scene that
	// is not in the catalog.
	ErrUnknownScene = errors.New("unknown scene")
)

// Config is an immutable description of one run.
type Config struct {
	OutputRoot string
	Scenes     []scene.Scene
	Parallel   int            // scenes rendered at once; <= 1 renders sequentially
	Fonts      fonts.Resolver // nil searches the system font directories
	Family     string         // empty uses scene.DefaultFamily
	Logger     *slog.Logger   // nil uses slog.Default()
}

// SceneResult is the outcome of rendering one scene.
type SceneResult struct {
	Name     string
	Path     string
	Width    int
	Height   int
	Bytes    int64
	Warnings []string
	Err      error
}

// Report holds one result per configured scene, in configuration order.
type Report struct {
	Root    string
	Results []SceneResult
	Elapsed time.Duration
}

// Succeeded counts scenes that were written.
func (r Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the results that carry an error.
func (r Report) Failed() []SceneResult {
	var out []SceneResult
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Err joins every per-scene error, or returns nil when all scenes succeeded.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", res.Name, res.Err))
	}
	return errors.Join(errs...)
}

// Print writes a console summary: one line per scene, then a completion line.
func (r Report) Print(w io.Writer) {
	for _, res := range r.Results {
		if res.Err != nil {
			fmt.Fprintf(w, "FAIL %s: %v\n", res.Name, res.Err)
			continue
		}
		fmt.Fprintf(w, "OK   %s (%dx%d, %.1f KB)\n", res.Path, res.Width, res.Height, float64(res.Bytes)/1024)
	}
	fmt.Fprintf(w, "Done: %d/%d scene(s) written to %s in %s\n",
		r.Succeeded(), len(r.Results), r.Root, r.Elapsed.Round(time.Millisecond))
}

// Run creates the output root and renders every scene of cfg into it.
// The returned error is non-nil only when the root cannot be created or ctx
// is cancelled; per-scene failures are reported in the Report.
func Run(ctx context.Context, cfg Config) (Report, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	start := time.Now()
	rep := Report{Root: cfg.OutputRoot, Results: make([]SceneResult, len(cfg.Scenes))}

	if err := os.MkdirAll(cfg.OutputRoot, 0o755); err != nil {
		return rep, fmt.Errorf("%w: %s: %v", ErrOutputRoot, cfg.OutputRoot, err)
	}

	composer := scene.Composer{Fonts: cfg.Fonts, Family: cfg.Family}
	if composer.Fonts == nil {
		composer.Fonts = fonts.NewDefault()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Parallel, 1))
	for i, s := range cfg.Scenes {
		i, s := i, s
		g.Go(func() error {
			// Results are indexed by position so completion order never matters.
			rep.Results[i] = render(gctx, composer, cfg.OutputRoot, s, log)
			return nil
		})
	}
	_ = g.Wait()
	rep.Elapsed = time.Since(start)

	if err := ctx.Err(); err != nil {
		return rep, err
	}
	return rep, nil
}

func render(ctx context.Context, c scene.Composer, root string, s scene.Scene, log *slog.Logger) SceneResult {
	res := SceneResult{
		Name:   s.Name,
		Path:   filepath.Join(root, s.File),
		Width:  s.Width,
		Height: s.Height,
	}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	res.Warnings = scene.Validate(s)
	for _, w := range res.Warnings {
		log.Warn("scene layout", "scene", s.Name, "warning", w)
	}

	cv := c.Compose(s)
	if dir := filepath.Dir(res.Path); dir != root {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			res.Err = fmt.Errorf("create %s: %w", dir, err)
			log.Error("scene failed", "scene", s.Name, "err", res.Err)
			return res
		}
	}
	n, err := cv.Save(res.Path)
	if err != nil {
		res.Err = err
		log.Error("scene failed", "scene", s.Name, "err", err)
		return res
	}
	res.Bytes = n
	log.Info("scene written", "scene", s.Name, "path", res.Path,
		"size", fmt.Sprintf("%dx%d", s.Width, s.Height), "kb", fmt.Sprintf("%.1f", float64(n)/1024))
	return res
}
