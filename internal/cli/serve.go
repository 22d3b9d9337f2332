package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"nyxventure/internal/archive"
	"nyxventure/internal/config"
	"nyxventure/internal/httpapi"
	"nyxventure/internal/observe"
	"nyxventure/internal/session"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *Options) *cobra.Command {
	var (
		addr        string
		scriptsDir  string
		title       string
		corsOrigins string
		archivePath string
	)
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the story model over HTTP",
		Example: "  nyxd serve --addr :8080 --scripts-dir ./scripts\n  nyxd --config nyx.yaml serve",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Addr = addr
			}
			if flags.Changed("scripts-dir") {
				cfg.ScriptsDir = scriptsDir
				if cfg, err = cfg.WithDefaults(); err != nil {
					return err
				}
			}
			if flags.Changed("title") {
				cfg.Title = title
			}
			if flags.Changed("archive") {
				cfg.ArchivePath = archivePath
				if cfg, err = cfg.WithDefaults(); err != nil {
					return err
				}
			}
			if flags.Changed("cors-origins") {
				cfg.CORSEnabled = true
				cfg.CORSOrigins = splitCSV(corsOrigins)
			}
			log, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log, nil)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "HTTP listen address, e.g. :8080")
	cmd.Flags().StringVar(&scriptsDir, "scripts-dir", "", "Directory of edit scripts served under /scripts")
	cmd.Flags().StringVar(&title, "title", "", "Title of the new game")
	cmd.Flags().StringVar(&archivePath, "archive", "", "SQLite file events are archived to; served under /events/archive")
	cmd.Flags().StringVar(&corsOrigins, "cors-origins", "", "Comma-separated allowed origins; enables CORS")
	return cmd
}

// serve runs the HTTP server until ctx is done, then shuts it down
// gracefully. ready, when non-nil, receives the bound address.
func serve(ctx context.Context, cfg config.Config, log zerolog.Logger, ready chan<- string) error {
	var pubs []observe.Publisher
	httpapi.SetArchive(nil)
	if cfg.ArchivePath != "" {
		store, err := archive.Open(cfg.ArchivePath, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Warn().Err(err).Msg("close archive")
			}
		}()
		pubs = append(pubs, store)
		httpapi.SetArchive(store)
	}
	sess := session.New(session.Config{
		Title:        cfg.Title,
		JournalSize:  cfg.JournalSize,
		StreamBuffer: cfg.StreamBuffer,
		Logger:       &log,
		Publishers:   pubs,
	})

	httpapi.SetLogger(log)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins, nil, nil)
	httpapi.SetScriptsDir(cfg.ScriptsDir)
	httpapi.SetBaseContext(ctx)

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           httpapi.NewMux(sess),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Str("scripts_dir", cfg.ScriptsDir).Str("archive", cfg.ArchivePath).Msg("nyxd listening")
		errCh <- srv.Serve(ln)
	}()
	if ready != nil {
		ready <- ln.Addr().String()
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
		return err
	}
	log.Info().Msg("nyxd stopped")
	return nil
}
