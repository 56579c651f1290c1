// Package pprofserver serves the runtime profiles on a separate listener so that they never share the
// public game address.
package pprofserver

import (
	"context"
	"github.com/myrjola/findmoney/internal/errors"
	"log/slog"
	"net"
	"net/http"
	"net/http/pprof"
	"time"
)

// Handle registers the pprof endpoints on mux.
func Handle(mux *http.ServeMux) {
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
}

// Start listens on addr and serves the profiles until ctx is cancelled. It returns the bound address.
func Start(ctx context.Context, logger *slog.Logger, addr string) (string, error) {
	logger = logger.With("source", "pprofserver")
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", errors.Wrap(err, "pprof listen", slog.String("pprofAddr", addr))
	}
	boundAddr := listener.Addr().String()

	mux := http.NewServeMux()
	Handle(mux)
	srv := &http.Server{
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
		Handler:           mux,
		ReadHeaderTimeout: time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownContext, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if shutdownErr := srv.Shutdown(shutdownContext); shutdownErr != nil {
			shutdownErr = errors.Wrap(shutdownErr, "shutdown pprof server")
			logger.LogAttrs(ctx, slog.LevelError, "error shutting down pprof server", errors.SlogError(shutdownErr))
		}
	}()
	go func() {
		if serveErr := srv.Serve(listener); !errors.Is(serveErr, http.ErrServerClosed) {
			serveErr = errors.Wrap(serveErr, "pprof serve")
			logger.LogAttrs(ctx, slog.LevelError, "pprof server stopped", errors.SlogError(serveErr))
		}
	}()

	logger.LogAttrs(ctx, slog.LevelInfo, "starting pprof server", slog.String("pprofAddr", boundAddr))
	return boundAddr, nil
}
