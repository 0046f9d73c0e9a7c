// Package fixture serves the static widget testing page the end-to-end
// suite drives a browser against.
package fixture

import (
	"context"
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/redhatqe/patternfly-go/internal/config"
)

//go:embed page.html
var testingPage []byte

// ServerDependencies holds all dependencies needed for the fixture server
type ServerDependencies struct {
	ServerConfig config.ServerConfig
	Logger       zerolog.Logger
}

// Handler returns the fixture http handler. The testing page is served on
// every path so tests can navigate to / or /testing_page.html alike.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(testingPage)
	})
	return mux
}

// RunServe starts the fixture web server and blocks until shutdown
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil, deps.Logger)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	server := &http.Server{
		Handler: Handler(),
	}

	log := deps.Logger
	go func() {
		log.Info().Str("addr", listener.Addr().String()).Msg("fixture server listening")
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("fixture server error")
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server.
// If shutdown channel is nil, a new channel will be created and registered with
// signal.Notify
func WaitForShutdown(server *http.Server, shutdown chan os.Signal, log zerolog.Logger) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second, log)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout
// (primarily for testing)
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration, log zerolog.Logger) error {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	}

	sig := <-shutdown
	log.Info().Str("signal", sig.String()).Msg("shutting down fixture server")

	// Give outstanding requests time to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	log.Info().Msg("fixture server stopped")
	return nil
}
