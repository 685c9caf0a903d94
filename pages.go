package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// page returns the data every full page needs, merged with extra.
func (s *Server) page(c *gin.Context, title string, extra gin.H) gin.H {
	data := gin.H{
		"title":    title,
		"owner":    OwnerName,
		"navLinks": NavLinks,
		"path":     c.Request.URL.Path,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func (s *Server) home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.page(c, "Home", gin.H{
		"tagline":     Tagline,
		"heroRoles":   HeroRoles,
		"aboutMe":     AboutMe,
		"projects":    Projects,
		"timeline":    Timeline,
		"skillGroups": SkillGroups,
		"softSkills":  SoftSkills,
		"roles":       Roles,
		"heading":     SectionHeadings[0],
	}))
}

func (s *Server) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", s.page(c, "About", gin.H{
		"aboutMe": AboutMe,
		"roles":   Roles,
		"heading": SectionHeadings[0],
	}))
}

func (s *Server) skills(c *gin.Context) {
	c.HTML(http.StatusOK, "skills.html", s.page(c, "Skills", gin.H{
		"skillGroups": SkillGroups,
		"softSkills":  SoftSkills,
	}))
}

func (s *Server) portfolio(c *gin.Context) {
	c.HTML(http.StatusOK, "portfolio.html", s.page(c, "Portfolio", gin.H{
		"projects": Projects,
	}))
}

func (s *Server) timeline(c *gin.Context) {
	c.HTML(http.StatusOK, "timeline.html", s.page(c, "Timeline", gin.H{
		"timeline": Timeline,
	}))
}

func (s *Server) videoBlog(c *gin.Context) {
	c.HTML(http.StatusOK, "videoblog.html", s.page(c, "Video Blog", gin.H{
		"slides": Slides,
		"videos": Videos,
	}))
}

func (s *Server) contactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", s.page(c, "Contact", nil))
}

func (s *Server) submitContact(c *gin.Context) {
	var form ContactForm
	if err := c.ShouldBind(&form); err != nil {
		s.metrics.RecordContact("invalid")
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}
	form.trim()
	if form.Name == "" || form.Message == "" {
		s.metrics.RecordContact("invalid")
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}

	if err := s.contact.HandleContact(c.Request.Context(), form); err != nil {
		s.metrics.RecordContact("failed")
		_ = c.Error(err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	s.metrics.RecordContact("accepted")
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}

func (s *Server) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", s.page(c, "Not Found", gin.H{
		"message": "Page not found.",
	}))
}
