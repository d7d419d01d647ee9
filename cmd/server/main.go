package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isabella232/www-teepy/app/api"
	"github.com/isabella232/www-teepy/app/cfg"
	"github.com/isabella232/www-teepy/app/contact"
	"github.com/isabella232/www-teepy/app/mail"
	"github.com/isabella232/www-teepy/app/news"
	"github.com/isabella232/www-teepy/app/pages"
	"github.com/isabella232/www-teepy/app/sheet"
)

func main() {
	config, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if config == nil {
		// Help was shown
		return
	}

	setupLogging(config.Debug)

	if err := run(config); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func run(config *cfg.Cfg) error {
	slog.Info("Starting BackOffice website", "version", config.Version, "debug", config.Debug)

	site, err := pages.LoadSiteConfig(config.SiteConfig)
	if err != nil {
		return fmt.Errorf("failed to load site configuration %s: %w", config.SiteConfig, err)
	}

	renderer, err := pages.NewRenderer(config.TemplatesDir, site)
	if err != nil {
		return err
	}
	slog.Info("Templates loaded", "dir", config.TemplatesDir, "count", renderer.Count())

	mailer, err := mail.New(config.Debug, config.MandrillKey, config.FromEmail, config.FromName)
	if err != nil {
		return err
	}
	if config.Debug {
		slog.Warn("Debug mode: contact emails are logged, not sent")
	}

	recorder, closeRecorder, err := newRecorder(config)
	if err != nil {
		return err
	}
	defer closeRecorder()

	dispatcher := contact.NewDispatcher(mailer, recorder,
		contact.Routing{
			DefaultRecipient:     config.ContactRecipient,
			RecruitmentRecipient: config.RecruitmentRecipient,
		},
		contact.DefaultRedirects(config.WhitepaperPath),
		config.IntegrationTimeout)

	httpClient := &http.Client{Timeout: config.NewsTimeout}
	newsClient := news.NewClient(httpClient, config.NewsFeedURL, config.NewsTimeout,
		config.NewsMaxItems, config.NewsLocale, config.UserAgent)
	if config.NewsFeedURL == "" {
		slog.Warn("NEWS_FEED_URL not set, homepage news disabled")
	}

	handler := api.NewHandler(renderer, newsClient, dispatcher, recorder, api.Status{
		Version:      config.Version,
		Debug:        config.Debug,
		SheetBackend: config.SheetBackend,
		NewsFeedURL:  config.NewsFeedURL,
	})
	server := api.NewServer(handler, config.StaticDir)

	httpServer := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		return err
	}

	slog.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}

	slog.Info("Server shutdown complete")
	return nil
}

// newRecorder builds the spreadsheet backend. The returned recorder is nil
// when no backend is configured.
func newRecorder(config *cfg.Cfg) (contact.Recorder, func(), error) {
	noop := func() {}

	switch config.SheetBackend {
	case cfg.SheetBackendGoogle:
		recorder, err := sheet.NewGoogleRecorder(context.Background(), config.SpreadsheetID, config.WorksheetID,
			sheet.CredentialsOptions(config.GoogleCredentials)...)
		if err != nil {
			return nil, noop, err
		}
		slog.Info("Recording submissions in Google Sheets", "spreadsheet", config.SpreadsheetID, "worksheet", config.WorksheetID)
		return recorder, noop, nil

	case cfg.SheetBackendSQLite:
		recorder, err := sheet.OpenSQLiteRecorder(config.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		slog.Info("Recording submissions in SQLite", "path", config.SQLitePath)
		return recorder, func() {
			if err := recorder.Close(); err != nil {
				slog.Warn("Failed to close SQLite recorder", "error", err)
			}
		}, nil

	default:
		slog.Info("Submission recording disabled")
		return nil, noop, nil
	}
}
