package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fifteenlabs/tdlib-go/config"
	"github.com/fifteenlabs/tdlib-go/core/client"
	"github.com/fifteenlabs/tdlib-go/web"
)

var (
	watchStatus bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate bindings when the schema or config changes",
	Long: `Watch the schema and configuration and regenerate on change.

The watcher will:
  - Run one generation pass immediately
  - Reload configuration when the config file changes (or on SIGHUP)
  - Regenerate when the schema file changes
  - Serve /healthz and /status while running

Failed passes keep the previous output on disk and are logged, so the
watcher survives schema edits that do not parse yet.

Examples:
  tdgen watch
  tdgen watch --config /etc/tdgen/config.yaml
  tdgen watch --status=false`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVar(&watchStatus, "status", true, "serve status endpoints while watching")
}

func runWatch(cmd *cobra.Command, args []string) error {
	// The watcher reloads the config file itself, so env-only
	// configuration is not enough here.
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s (watch needs a config file)", cfgFile)
	}

	boot, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	logger := setupLogger(boot.Log)

	holder, err := config.NewHolder(cfgFile, logger)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	defer holder.Stop()

	var genMu sync.Mutex
	regen := func(cfg *config.Config) {
		genMu.Lock()
		defer genMu.Unlock()
		if _, err := regenerate(cfg, logger); err != nil {
			logger.Error().Err(err).Msg("generation failed")
		}
	}

	// First pass before settling into watch mode.
	regen(holder.Get())

	sw := newSchemaWatcher(logger, func() { regen(holder.Get()) })
	defer sw.Stop()

	if err := sw.Watch(holder.Get().Schema); err != nil {
		return err
	}

	holder.OnChange(func(cfg *config.Config) {
		if err := sw.Watch(cfg.Schema); err != nil {
			logger.Error().Err(err).Str("schema", cfg.Schema).Msg("schema watch failed")
		}
		regen(cfg)
	})

	if err := holder.WatchFile(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	holder.WatchSignals()

	if !watchStatus {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
		return nil
	}

	return serveStatus(holder.Get(), logger)
}

// serveStatus runs the status server until SIGINT or SIGTERM. No
// routers run in watch mode, so /status reports an empty set.
func serveStatus(cfg *config.Config, logger zerolog.Logger) error {
	deps := web.Deps{
		Routers: map[string]*client.Router{},
		Logger:  logger,
	}
	if cfg.Metrics.Enabled {
		deps.Registry = prometheus.NewRegistry()
	}

	handler := web.NewHandler(deps)

	srv := &http.Server{
		Addr:         cfg.Status.Addr(),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.Status.ReadTimeout,
		WriteTimeout: cfg.Status.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting status server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt or error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("status server error: %w", err)
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// schemaWatcher triggers regeneration when the watched schema file
// changes. It watches the schema's directory rather than the file, so
// editors that save atomically (write temp, rename) still trigger.
type schemaWatcher struct {
	logger   zerolog.Logger
	onChange func()

	mu      sync.Mutex
	path    string
	watcher *fsnotify.Watcher
}

func newSchemaWatcher(logger zerolog.Logger, onChange func()) *schemaWatcher {
	return &schemaWatcher{logger: logger, onChange: onChange}
}

// Watch points the watcher at path, replacing any previous watch. A
// no-op when the path is already watched.
func (w *schemaWatcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("absolute path: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher != nil {
		if abs == w.path {
			return nil
		}
		w.watcher.Close()
		w.watcher = nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	w.path = abs
	w.watcher = watcher
	go w.loop(watcher, filepath.Base(abs))

	w.logger.Info().Str("path", abs).Msg("watching schema file for changes")
	return nil
}

// Stop closes the current watcher; its loop drains and exits.
func (w *schemaWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher != nil {
		w.watcher.Close()
		w.watcher = nil
	}
}

func (w *schemaWatcher) loop(watcher *fsnotify.Watcher, filename string) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// Only react to our schema file
			if filepath.Base(event.Name) != filename {
				continue
			}

			// React to write or create (atomic save = create)
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.logger.Debug().
					Str("event", event.Op.String()).
					Str("file", event.Name).
					Msg("schema file changed")
				w.onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("schema watcher error")
		}
	}
}
