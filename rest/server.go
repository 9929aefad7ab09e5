// Package rest serves the debug endpoints of a running playground:
// prometheus metrics, recent logs and the state of the current demo.
package rest

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"bitbucket.org/kleinnic74/glplayground/consts"
	"bitbucket.org/kleinnic74/glplayground/logging"

	"github.com/gorilla/mux"
	"github.com/grandcat/zeroconf"
	"github.com/kleinnic74/fflags"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"
)

// DefaultMaxConnections limits the concurrent debug connections
const DefaultMaxConnections = 8

var announceFlag = fflags.Define("debug.announce")

// DebugServer is the HTTP server for the debug endpoints
type DebugServer struct {
	router   *mux.Router
	maxConns int
	instance string
}

// NewDebugServer creates the server with all debug routes. instance names
// the zeroconf announcement.
func NewDebugServer(instance string, state StateFunc, gatherer prometheus.Gatherer) *DebugServer {
	s := &DebugServer{
		router:   mux.NewRouter(),
		maxConns: DefaultMaxConnections,
		instance: instance,
	}
	NewMetricsHandler(gatherer).InitRoutes(s.router)
	NewLogsHandler().InitRoutes(s.router)
	NewStateHandler(state).InitRoutes(s.router)
	return s
}

// WithMaxConnections changes the number of concurrently accepted connections
func (s *DebugServer) WithMaxConnections(n int) *DebugServer {
	if n > 0 {
		s.maxConns = n
	}
	return s
}

// Handler returns the routes wrapped in the request middlewares
func (s *DebugServer) Handler() http.Handler {
	return WithMiddleWares(s.router, "debug")
}

// ListenAndServe listens on addr and serves until ctx is done
func (s *DebugServer) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("debug server: %w", err)
	}
	return s.Serve(ctx, l)
}

// Serve serves on l until ctx is done, then shuts down gracefully
func (s *DebugServer) Serve(ctx context.Context, l net.Listener) error {
	logger, ctx := logging.SubFrom(ctx, "debug")
	l = netutil.LimitListener(l, s.maxConns)

	server := http.Server{
		Handler:     s.Handler(),
		BaseContext: func(l net.Listener) context.Context { return ctx },
	}
	done := make(chan error, 1)
	go func() {
		logger.Info("Starting debug server...", zap.Stringer("bindAddr", l.Addr()))
		done <- server.Serve(l)
	}()

	fflags.IfEnabled(announceFlag, func() error {
		port := l.Addr().(*net.TCPAddr).Port
		announcer, err := zeroconf.Register(s.instance, consts.DebugServiceName, "local.", port, []string{"path=/state"}, nil)
		if err != nil {
			logger.Warn("Failed to publish zeroconf service", zap.Error(err))
			return err
		}
		logger.Info("Published debug service", zap.String("service", consts.DebugServiceName), zap.Int("port", port))
		go func() {
			<-ctx.Done()
			announcer.Shutdown()
		}()
		return nil
	})

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
	}
	logger.Info("Stopping debug server...")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("Failed to shutdown debug server", zap.Error(err))
		return err
	}
	if err := <-done; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
