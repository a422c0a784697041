package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/robot-notify/config"
	"github.com/marcelsud/robot-notify/internal/http/chi"
	"github.com/marcelsud/robot-notify/metrics"
	"github.com/marcelsud/robot-notify/robot"
	"github.com/marcelsud/robot-notify/robot/resty"
	"github.com/marcelsud/robot-notify/robot/signature"
	"github.com/marcelsud/robot-notify/robots"
)

const TIMEOUT = 30 * time.Second

/* main wires the packages together: config, robots registry, transport, metrics, service, router
 * Imports flow one way, downwards: the binary imports the business layer, which imports nothing of the binary
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	logger := httplog.NewLogger(cfg.ServiceName, httplog.Options{
		JSON: cfg.LogJSON,
	})

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	loader := robots.NewLoader()
	if err := loader.Load(cfg.RobotsFile); err != nil {
		logger.Error().Err(err).Str("file", cfg.RobotsFile).Msg("loading robots")
		return
	}

	recorder, err := metrics.NewOTelRecorder(nil)
	if err != nil {
		logger.Error().Err(err).Msg("creating metrics recorder")
		return
	}
	defer recorder.Shutdown(context.Background())

	s := robot.NewService(
		resty.NewTransport(cfg.HTTPTimeout()),
		signature.HMACSigner{},
		robot.WithRecorder(recorder),
		robot.WithLogger(logger),
	)
	r := chi.Handlers(ctx, logger, s, loader, recorder.ServeHTTP())
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	logger.Info().Str("port", cfg.Port).Int("robots", len(loader.List())).Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("serving")
		return
	}
	err = <-errShutdown
	if err != nil {
		logger.Error().Err(err).Msg("shutting down")
		return
	}
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	}
}
