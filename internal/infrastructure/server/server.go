package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"simple-api/internal/config"
	"simple-api/internal/infrastructure/logging"
)

type Params struct {
	fx.In

	Config  *config.Config
	Handler http.Handler
	Logger  *zap.Logger
}

// Server owns the listener and the http.Server serving the API. No read,
// write or idle timeouts are set; net/http defaults apply.
type Server struct {
	addr     string
	baseURL  string
	server   *http.Server
	log      *zap.Logger
	listener net.Listener
	done     chan error
}

func New(p Params) *Server {
	return &Server{
		addr:    p.Config.Addr(),
		baseURL: p.Config.BaseURL(),
		server:  &http.Server{Handler: p.Handler},
		log:     p.Logger,
	}
}

// Start binds the listener and serves in the background. Bind errors are
// returned so that startup fails.
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		s.log.Error("failed to listen", zap.String("address", s.addr), zap.Error(err))
		return err
	}
	s.listener = ln
	s.done = make(chan error, 1)

	s.log.Info("starting API", zap.String("url", s.baseURL), zap.String("address", ln.Addr().String()))

	go func() {
		err := s.server.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("failed to serve", zap.Error(err))
		} else {
			err = nil
		}
		s.done <- err
	}()
	return nil
}

// Shutdown stops accepting connections, closes the listener and waits for
// in-flight requests within ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.done == nil {
		return nil
	}
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.Error("failed to shutdown", zap.Error(err))
		return err
	}
	err := <-s.done
	s.log.Info("stopped")
	return err
}

// Addr reports the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func NewLifecycleServer(p Params, lc fx.Lifecycle) *Server {
	s := New(p)
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Shutdown,
	})
	return s
}

func Module() fx.Option {
	return fx.Module("server",
		fx.Decorate(logging.Named("server")),
		fx.Provide(NewLifecycleServer),
		fx.Invoke(func(*Server) {}),
	)
}
