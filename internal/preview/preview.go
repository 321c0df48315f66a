// Package preview serves a rendered site locally and re-renders it whenever
// the project file is saved, so any editor becomes a live authoring loop.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diamondcougar10/Webineer/internal/generator"
	"github.com/diamondcougar10/Webineer/internal/logfields"
	"github.com/diamondcougar10/Webineer/internal/projectfile"
)

// Server watches a project file and serves its rendered output.
type Server struct {
	projectPath string
	templateDir string // empty means the built-in template
	outputDir   string
	port        int
	debounce    time.Duration
	metrics     *Metrics
	registry    *prom.Registry
}

// New creates a preview server for the given project file.
func New(projectPath, templateDir, outputDir string, port int, debounce time.Duration) *Server {
	registry := prom.NewRegistry()
	return &Server{
		projectPath: projectPath,
		templateDir: templateDir,
		outputDir:   outputDir,
		port:        port,
		debounce:    debounce,
		metrics:     newMetrics(registry),
		registry:    registry,
	}
}

// Run builds the site once, then serves it while watching the project file
// for changes. It blocks until ctx is cancelled or the server fails.
func (s *Server) Run(ctx context.Context) error {
	if err := s.rebuild(); err != nil {
		// The first build must succeed; later failures keep the last good
		// output on disk and are only logged.
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors replace files on save, which drops
	// watches registered on the file itself.
	projectDir := filepath.Dir(s.projectPath)
	if err := watcher.Add(projectDir); err != nil {
		return fmt.Errorf("watch %s: %w", projectDir, err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening",
			slog.Int("port", s.port),
			logfields.Path(s.projectPath),
			logfields.Output(s.outputDir))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var timer *time.Timer
	rebuildCh := make(chan struct{}, 1)
	trigger := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(s.debounce, func() {
			select {
			case rebuildCh <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		case err := <-serverErr:
			return err
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if s.isProjectEvent(event) {
				trigger()
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", logfields.Error(watchErr))
		case <-rebuildCh:
			if err := s.rebuild(); err != nil {
				slog.Error("Rebuild failed, keeping last good output", logfields.Error(err))
			}
		}
	}
}

// isProjectEvent reports whether a watcher event concerns the project file.
func (s *Server) isProjectEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(s.projectPath) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

// rebuild reloads the project from disk and renders it.
func (s *Server) rebuild() error {
	start := time.Now()
	project, err := projectfile.Load(s.projectPath)
	if err != nil {
		s.metrics.RecordRender(false)
		return err
	}
	if s.templateDir != "" {
		err = generator.Render(project, s.outputDir, s.templateDir)
	} else {
		err = generator.RenderBuiltin(project, s.outputDir)
	}
	s.metrics.RecordRender(err == nil)
	if err != nil {
		return err
	}
	slog.Info("Preview rebuilt",
		logfields.Project(project.Name),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return nil
}

// handler serves the rendered site with /metrics on the side.
func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	files := http.FileServer(http.Dir(s.outputDir))
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.metrics.RecordRequest()
		files.ServeHTTP(w, r)
	}))
	return mux
}
