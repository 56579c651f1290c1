package e2etest

import (
	"context"
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/myrjola/findmoney/internal/logging"
	"io"
	"log/slog"
)

// LogAddrKey is the key the server logs its listening address with.
const LogAddrKey = "addr"

// RunFunc starts a server and blocks until ctx is cancelled. It has the signature of the web command's run.
type RunFunc func(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error

// Server is a game server started for a test.
type Server struct {
	url    string
	client *Client
}

// addrWatcher reports the first [LogAddrKey] attribute logged through it.
type addrWatcher struct {
	slog.Handler
	addrCh chan<- string
}

func (h addrWatcher) Handle(ctx context.Context, record slog.Record) error {
	record.Attrs(func(a slog.Attr) bool {
		if a.Key != LogAddrKey {
			return true
		}
		select {
		case h.addrCh <- a.Value.String():
		default:
		}
		return false
	})
	return h.Handler.Handle(ctx, record) //nolint:wrapcheck // pass-through
}

func (h addrWatcher) WithAttrs(attrs []slog.Attr) slog.Handler {
	return addrWatcher{Handler: h.Handler.WithAttrs(attrs), addrCh: h.addrCh}
}

func (h addrWatcher) WithGroup(name string) slog.Handler {
	return addrWatcher{Handler: h.Handler.WithGroup(name), addrCh: h.addrCh}
}

// StartServer runs the server with the given environment and returns once its health check answers.
// Server logs go to logSink, usually [io.Discard]. Cancelling ctx stops the server.
func StartServer(ctx context.Context, logSink io.Writer, lookupEnv func(string) (string, bool), run RunFunc) (*Server, error) {
	ctx, cancel := context.WithCancelCause(ctx)

	addrCh := make(chan string, 1)
	logger := slog.New(addrWatcher{
		Handler: logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
			AddSource:   false,
			Level:       slog.LevelDebug,
			ReplaceAttr: nil,
		})),
		addrCh: addrCh,
	})

	go func() {
		if err := run(ctx, logger, lookupEnv); err != nil {
			cancel(err)
		}
	}()

	var addr string
	select {
	case <-ctx.Done():
		return nil, errors.Wrap(context.Cause(ctx), "server stopped before listening")
	case addr = <-addrCh:
	}

	server := &Server{url: "http://" + addr, client: nil}
	var err error
	if server.client, err = server.NewPlayer(); err != nil {
		return nil, err
	}
	if err = server.client.WaitForReady(ctx, "/api/healthy"); err != nil {
		return nil, errors.Wrap(err, "wait for ready", slog.String("url", server.url))
	}
	return server, nil
}

// NewPlayer returns a client with a session of its own.
func (s *Server) NewPlayer() (*Client, error) {
	client, err := NewClient(s.url)
	if err != nil {
		return nil, errors.Wrap(err, "new client", slog.String("url", s.url))
	}
	return client, nil
}

// Client returns the client that waited for the server to get ready.
func (s *Server) Client() *Client {
	return s.client
}

func (s *Server) URL() string {
	return s.url
}
