package main

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"pkt.systems/pslog"

	"github.com/Zachkp/devfolio/internal/blog"
)

// search binds the query string and runs it against the catalog. A request
// with no query at all still counts as a search: the page lists every post.
func (s *Server) search(c *gin.Context) blog.Result {
	var q blog.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		pslog.Ctx(c.Request.Context()).Debug("binding blog query", "error", err)
		q = blog.Query{Text: c.Query("q"), Tag: c.Query("tag")}
	}
	res := s.catalog.Search(q)
	s.metrics.RecordSearch(q.Tag != "", res.Count())
	return res
}

func (s *Server) technicalBlog(c *gin.Context) {
	res := s.search(c)
	c.HTML(http.StatusOK, "technicalblog.html", s.page(c, "Technical Blog", gin.H{
		"result": res,
		"tags":   s.catalog.Tags(),
	}))
}

// technicalBlogResults is the HTMX fragment swapped in as the reader types.
func (s *Server) technicalBlogResults(c *gin.Context) {
	c.HTML(http.StatusOK, "blog-results.html", gin.H{
		"result": s.search(c),
	})
}

type postsResponse struct {
	Query blog.Query  `json:"query"`
	Total int         `json:"total"`
	Count int         `json:"count"`
	Tags  []string    `json:"tags"`
	Posts []blog.Post `json:"posts"`
}

func (s *Server) apiPosts(c *gin.Context) {
	res := s.search(c)
	c.JSON(http.StatusOK, postsResponse{
		Query: res.Query,
		Total: res.Total,
		Count: res.Count(),
		Tags:  s.catalog.Tags(),
		Posts: res.Posts,
	})
}

func (s *Server) post(c *gin.Context) {
	p, ok := s.catalog.Lookup(c.Param("id"))
	if !ok {
		s.metrics.RecordRender("unknown")
		c.HTML(http.StatusNotFound, "notfound.html", s.page(c, "Not Found", gin.H{
			"message": "Post not found.",
		}))
		return
	}

	logger := pslog.Ctx(c.Request.Context()).With("post", p.ID)
	body, err := s.renderPost(p)
	switch {
	case errors.Is(err, blog.ErrContentNotFound):
		logger.Warn("post content missing", "ref", p.ContentRef)
		s.metrics.RecordRender("missing")
	case err != nil:
		logger.Error("rendering post", "error", err)
		s.metrics.RecordRender("error")
	default:
		s.metrics.RecordRender("ok")
	}

	c.HTML(http.StatusOK, "post.html", s.page(c, p.Title, gin.H{
		"post":        p,
		"body":        body,
		"unavailable": err != nil,
	}))
}

func (s *Server) renderPost(p blog.Post) (template.HTML, error) {
	src, err := s.source.Load(p)
	if err != nil {
		return "", err
	}
	return s.renderer.Render(src)
}
