package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"youtube-tools/infrastructure/clients/oembed"
	"youtube-tools/infrastructure/clients/transcript"
	"youtube-tools/infrastructure/configuration"
	"youtube-tools/infrastructure/logger"
	httpHandler "youtube-tools/interfaces/http"
	"youtube-tools/server"
	"youtube-tools/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	oembedClient := oembed.NewClient(&oembed.Config{
		URL:       configuration.C.OEmbed.URL,
		UserAgent: configuration.C.OEmbed.UserAgent,
		Timeout:   configuration.OEmbedTimeout(),
	})
	transcriptClient := transcript.NewClient(&transcript.Config{
		PlayerURL: configuration.C.Transcript.PlayerURL,
		UserAgent: configuration.C.Transcript.UserAgent,
		Timeout:   configuration.TranscriptTimeout(),
	})

	videoUsecase := usecase.NewVideoUseCase(transcriptClient, oembedClient)
	videoHandler := httpHandler.NewVideoHandler(videoUsecase)

	router := server.InitiateRouter(videoHandler)

	addr := fmt.Sprintf("%s:%d", app.Host, app.Port)
	logger.GetLogger().WithFields(map[string]interface{}{
		"addr": addr,
	}).Info("Starting application")

	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    addr,
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
