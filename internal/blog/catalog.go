// Package blog holds the technical blog: the post table, the search filter
// over it, and the markdown renderer for post bodies.
package blog

import (
	"errors"
	"fmt"
)

// ErrDuplicatePost is returned when two posts share an ID.
var ErrDuplicatePost = errors.New("blog: duplicate post id")

// Post is one entry of the blog table. ID doubles as the route key.
type Post struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags"`
	ContentRef string   `json:"content_ref"`
}

func (p Post) clone() Post {
	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)
	p.Tags = tags
	return p
}

// Catalog is a read-only snapshot of the post table, built once at startup.
type Catalog struct {
	posts []Post
	byID  map[string]int
	tags  []string
}

// NewCatalog copies posts into a new snapshot.
func NewCatalog(posts []Post) (*Catalog, error) {
	c := &Catalog{
		posts: make([]Post, 0, len(posts)),
		byID:  make(map[string]int, len(posts)),
	}
	for _, p := range posts {
		if p.ID == "" {
			return nil, fmt.Errorf("blog: post %q has no id", p.Title)
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePost, p.ID)
		}
		c.byID[p.ID] = len(c.posts)
		c.posts = append(c.posts, p.clone())
	}
	c.tags = Tags(c.posts)
	return c, nil
}

// MustCatalog is NewCatalog for tables known at compile time.
func MustCatalog(posts []Post) *Catalog {
	c, err := NewCatalog(posts)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of posts.
func (c *Catalog) Len() int {
	return len(c.posts)
}

// Posts returns a copy of every post in table order.
func (c *Catalog) Posts() []Post {
	out := make([]Post, len(c.posts))
	for i, p := range c.posts {
		out[i] = p.clone()
	}
	return out
}

// Lookup finds a post by ID.
func (c *Catalog) Lookup(id string) (Post, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Post{}, false
	}
	return c.posts[i].clone(), true
}

// Tags is the tag union over the whole catalog, independent of any search.
func (c *Catalog) Tags() []string {
	out := make([]string, len(c.tags))
	copy(out, c.tags)
	return out
}

// Search evaluates q against the catalog.
func (c *Catalog) Search(q Query) Result {
	return Result{
		Query:    q,
		Posts:    Filter(c.posts, q),
		Total:    len(c.posts),
		Searched: true,
	}
}
