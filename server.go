package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"pkt.systems/pslog"

	"github.com/Zachkp/devfolio/internal/blog"
	"github.com/Zachkp/devfolio/internal/config"
	"github.com/Zachkp/devfolio/internal/cycler"
	"github.com/Zachkp/devfolio/internal/metrics"
	"github.com/Zachkp/devfolio/internal/reveal"
)

const shutdownTimeout = 5 * time.Second

// Server holds everything the handlers share.
type Server struct {
	cfg      *config.Config
	catalog  *blog.Catalog
	source   *blog.Source
	renderer *blog.Renderer
	metrics  *metrics.Metrics
	contact  ContactHandler
	logger   pslog.Logger
	hasher   *visitorHasher

	// typewriters are the named cyclers a page can stream.
	typewriters map[string]typewriter
}

type typewriter struct {
	items []string
	cfg   cycler.Config
}

// ServerOption customizes NewServer.
type ServerOption func(*Server)

// WithContactHandler replaces the logging contact handler.
func WithContactHandler(h ContactHandler) ServerOption {
	return func(s *Server) { s.contact = h }
}

// WithMetrics replaces the server's private metrics.
func WithMetrics(m *metrics.Metrics) ServerOption {
	return func(s *Server) { s.metrics = m }
}

// NewServer builds a Server from cfg. The logger is taken from ctx.
func NewServer(ctx context.Context, cfg *config.Config, opts ...ServerOption) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	catalog, err := blog.NewCatalog(blog.DefaultPosts())
	if err != nil {
		return nil, fmt.Errorf("building post catalog: %w", err)
	}
	content, err := contentFiles(cfg.Content.Dir)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		catalog:  catalog,
		source:   blog.NewSource(content),
		renderer: blog.NewRenderer(blog.DefaultClasses),
		metrics:  metrics.New(),
		contact:  logContactHandler{},
		logger:   pslog.Ctx(ctx),
		hasher:   newVisitorHasher(),
		typewriters: map[string]typewriter{
			"hero":  {items: HeroRoles, cfg: cyclerConfig(cfg.Hero)},
			"roles": {items: SectionHeadings, cfg: cyclerConfig(cfg.Typewriter)},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func cyclerConfig(tc config.TypewriterConfig) cycler.Config {
	return cycler.Config{
		TypeDelay:  tc.TypeDelay,
		EraseDelay: tc.EraseDelay,
		HoldDelay:  tc.HoldDelay,
		GraceDelay: tc.GraceDelay,
		Hold:       tc.Hold,
	}.Normalize()
}

func (s *Server) revealOptions() reveal.Options {
	mode := reveal.Once
	if s.cfg.Reveal.Retrigger {
		mode = reveal.Retrigger
	}
	return reveal.Options{
		Mode:          mode,
		Ramp:          reveal.Ramp{Duration: s.cfg.Reveal.Duration},
		FrameInterval: s.cfg.Reveal.FrameInterval,
	}
}

// Routes returns the gin engine with every route registered.
func (s *Server) Routes() (*gin.Engine, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogging(s.logger, s.hasher))
	r.Use(pageViewMiddleware(s.metrics))
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(staticFiles()))

	r.GET("/", s.home)
	r.GET("/about", s.about)
	r.GET("/skills", s.skills)
	r.GET("/portfolio", s.portfolio)
	r.GET("/timeline", s.timeline)
	r.GET("/videoblog", s.videoBlog)
	r.GET("/contact", s.contactPage)
	r.POST("/contact", s.submitContact)

	r.GET("/technicalblog", s.technicalBlog)
	r.GET("/technicalblog/results", s.technicalBlogResults)
	r.GET("/post/:id", s.post)
	r.GET("/api/posts", s.apiPosts)

	r.GET("/typewriter/:name/stream", s.typewriterStream)
	r.GET("/videoblog/slides/stream", s.slidesStream)
	r.GET("/reveal/ws", s.revealSocket)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	r.NoRoute(s.notFound)
	return r, nil
}

// ListenAndServe serves h on addr until ctx is cancelled, then shuts down.
func ListenAndServe(ctx context.Context, addr string, h http.Handler) error {
	logger := pslog.Ctx(ctx)
	server := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          pslog.LogLoggerWithLevel(logger, pslog.ErrorLevel),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	logger.Info("listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
