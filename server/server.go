package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/katalvlaran/minspan/config"
	"github.com/katalvlaran/minspan/logging"
	"github.com/katalvlaran/minspan/mst"
	"github.com/katalvlaran/minspan/store"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Server serves the HTTP API.
type Server struct {
	cfg     config.Config
	log     *logging.Logger
	cache   Cache
	builds  *semaphore.Weighted
	limiter *rate.Limiter // nil when limiting is disabled
	handler http.Handler
}

// New builds a Server from a validated configuration.
func New(cfg config.Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Server{
		cfg:    cfg,
		log:    logging.NoopLogger(),
		builds: semaphore.NewWeighted(cfg.MaxConcurrentBuilds),
	}
	for _, opt := range opts {
		opt(s)
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}
	s.handler = s.routes()

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on cfg.Addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within cfg.ShutdownTimeout. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.InfoContext(ctx, "listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.log.InfoContext(ctx, "shutting down")
		return srv.Shutdown(sctx)
	})

	return g.Wait()
}

// tree returns the spanning tree of points, through the cache when one is set.
func (s *Server) tree(ctx context.Context, points []mst.Point) ([]mst.Edge, error) {
	var key string
	if s.cache != nil {
		key = store.Key(points)
		edges, hit, err := s.cache.Get(ctx, key)
		s.log.LogCache(ctx, "get", key, hit, err)
		if err == nil && hit {
			return edges, nil
		}
	}

	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	edges, err := mst.Build(points, mst.WithMaxPoints(s.cfg.MaxPoints))
	s.builds.Release(1)
	s.log.LogBuild(ctx, len(points), len(edges), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		err := s.cache.Put(ctx, key, len(points), edges)
		s.log.LogCache(ctx, "put", key, false, err)
	}

	return edges, nil
}

func (s *Server) acquire(ctx context.Context) error {
	if err := s.builds.Acquire(ctx, 1); err != nil {
		return errors.Join(ErrBusy, err)
	}

	return nil
}
