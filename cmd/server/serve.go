package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Simplici0/studio/internal/config"
	"github.com/Simplici0/studio/internal/contact"
	"github.com/Simplici0/studio/internal/content"
	"github.com/Simplici0/studio/internal/intake"
	"github.com/Simplici0/studio/internal/logging"
	"github.com/Simplici0/studio/internal/mailer"
	"github.com/Simplici0/studio/internal/pricing"
	"github.com/Simplici0/studio/internal/sheet"
	"github.com/Simplici0/studio/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx)
		},
	}
}

func runServer(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(cfg.LogLevel, cfg.IsDev())
	for _, warning := range cfg.Warnings {
		log.Warn().Msg(warning)
	}

	engine := pricing.Default()
	if err := engine.Catalog().Validate(); err != nil {
		return fmt.Errorf("invalid price catalog: %w", err)
	}

	recorder, closeRecorder, err := sheet.Open(ctx, cfg.Sheet, intake.Columns())
	if err != nil {
		return fmt.Errorf("open spreadsheet recorder: %w", err)
	}
	defer closeRecorder()

	sender, err := mailer.NewSender(cfg.Mail)
	if err != nil {
		return fmt.Errorf("configure mailer: %w", err)
	}

	var uploader storage.Uploader
	if cfg.Storage.Enabled() {
		s3, err := storage.NewS3Uploader(cfg.Storage)
		if err != nil {
			return err
		}
		bucketCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := s3.EnsureBucket(bucketCtx); err != nil {
			log.Warn().Err(err).Str("bucket", cfg.Storage.Bucket).Msg("object storage bucket is not ready")
		}
		cancel()
		uploader = s3
	}

	blog, err := content.LoadBlog(ctx, filepath.Join(cfg.ContentDir, "blog"), cfg.IsDev())
	if err != nil {
		return fmt.Errorf("load blog: %w", err)
	}

	srv := &server{
		log:    log,
		engine: engine,
		intake: intake.NewService(intake.Options{
			Engine:        engine,
			Recorder:      recorder,
			Sender:        sender,
			Logger:        log.With().Str("component", "intake").Logger(),
			From:          cfg.Mail.From,
			To:            cfg.Mail.To,
			RequireRecord: cfg.Sheet.RequireRecord,
			PhoneRegion:   cfg.PhoneRegion,
		}),
		contact:      contact.NewService(uploader, sender, cfg.Mail.ContactFrom, cfg.Mail.To, log.With().Str("component", "contact").Logger()),
		blog:         blog,
		templatesDir: cfg.TemplatesDir,
		staticDir:    cfg.StaticDir,
		ratePerMin:   cfg.RateLimitPerMinute,
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", httpServer.Addr).
			Str("env", cfg.Env).
			Str("mail_driver", cfg.Mail.Driver).
			Str("sheet_driver", cfg.Sheet.Driver).
			Int("posts", len(blog.Posts())).
			Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
