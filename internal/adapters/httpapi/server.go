// Package httpapi exposes the verification engine over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/fixit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server serves the snippet routes.
type Server struct {
	verifier   ports.FixVerifier
	reporter   ports.AccuracyReporter
	translator ports.Translator
	logger     ports.Logger
	engine     *gin.Engine
}

// NewServer creates a Server and registers its routes.
func NewServer(
	verifier ports.FixVerifier,
	reporter ports.AccuracyReporter,
	translator ports.Translator,
	logger ports.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		verifier:   verifier,
		reporter:   reporter,
		translator: translator,
		logger:     logger,
		engine:     gin.New(),
	}

	s.engine.Use(
		gin.CustomRecoveryWithWriter(io.Discard, s.recover),
		s.logRequests,
	)

	snippets := s.engine.Group("/snippets")
	snippets.GET("/fixes/:key", s.getFixes)
	snippets.POST("/verdict", s.postVerdict)
	snippets.GET("/accuracy", s.getAccuracy)

	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", addr)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is canceled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info(fmt.Sprintf("listening on %s", listener.Addr()))
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, domain.ErrServerFailed.Error())
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, domain.ErrServerFailed.Error())
		}
		return nil
	})

	return g.Wait()
}

// logRequests logs the route pattern rather than the raw path so keys stay out of the log.
func (s *Server) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	s.logger.Info(fmt.Sprintf("%s %s %d %s", c.Request.Method, route, c.Writer.Status(), time.Since(start).Round(time.Microsecond)))
}

func (s *Server) recover(c *gin.Context, recovered any) {
	s.logger.Error(zerr.With(zerr.New("handler panicked"), "panic", fmt.Sprint(recovered)))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
}
