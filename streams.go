package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"pkt.systems/pslog"

	"github.com/Zachkp/devfolio/internal/carousel"
	"github.com/Zachkp/devfolio/internal/cycler"
	"github.com/Zachkp/devfolio/internal/metrics"
)

type slideEvent struct {
	Index int    `json:"index"`
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

func startSSE(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
}

func sendEvent(c *gin.Context, name string, data any) error {
	c.SSEvent(name, data)
	c.Writer.Flush()
	return c.Request.Context().Err()
}

// endOfStream reports whether err is just the client going away.
func endOfStream(err error) bool {
	return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// typewriterStream streams the frames of a named text cycler as server-sent
// events until the client disconnects.
func (s *Server) typewriterStream(c *gin.Context) {
	name := c.Param("name")
	tw, ok := s.typewriters[name]
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown typewriter"})
		return
	}
	runner, err := cycler.NewRunner(tw.items, tw.cfg)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	done := s.metrics.StreamStarted(metrics.StreamTypewriter)
	defer done()

	startSSE(c)
	err = runner.Run(c.Request.Context(), func(f cycler.Frame) error {
		return sendEvent(c, "frame", f)
	})
	if !endOfStream(err) {
		pslog.Ctx(c.Request.Context()).Warn("typewriter stream ended", "name", name, "error", err)
	}
}

// slidesStream streams the index of the visible video blog slide.
func (s *Server) slidesStream(c *gin.Context) {
	done := s.metrics.StreamStarted(metrics.StreamCarousel)
	defer done()

	startSSE(c)
	err := carousel.Run(c.Request.Context(), len(Slides), s.cfg.Carousel.Interval, func(i int) error {
		sl := Slides[i]
		return sendEvent(c, "slide", slideEvent{Index: i, Image: sl.Image, Alt: sl.Alt})
	})
	if !endOfStream(err) {
		pslog.Ctx(c.Request.Context()).Warn("slide stream ended", "error", err)
	}
}
