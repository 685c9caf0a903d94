package blog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Query is what the reader typed into the search box plus the tag chip they
// clicked. An empty Tag means no tag is selected.
type Query struct {
	Text string `form:"q" json:"q"`
	Tag  string `form:"tag" json:"tag,omitempty"`
}

// Result is one evaluation of a Query against a collection. The zero Result
// has Searched == false and stands for "nothing searched yet".
type Result struct {
	Query    Query  `json:"query"`
	Posts    []Post `json:"posts"`
	Total    int    `json:"total"`
	Searched bool   `json:"-"`
}

// Count is the number of visible posts.
func (r Result) Count() int {
	return len(r.Posts)
}

// Empty reports a completed search that matched nothing.
func (r Result) Empty() bool {
	return r.Searched && len(r.Posts) == 0
}

// Summary renders the result count the way the blog page shows it.
func (r Result) Summary() string {
	n := len(r.Posts)
	if n == 1 {
		return "Found 1 article"
	}
	return fmt.Sprintf("Found %d articles", n)
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// Matches reports whether text is empty or appears, ignoring case, in the
// post title or in any of its tags.
func Matches(p Post, text string) bool {
	if text == "" {
		return true
	}
	needle := fold(text)
	if strings.Contains(fold(p.Title), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(fold(tag), needle) {
			return true
		}
	}
	return false
}

// HasTag reports exact membership of tag in p.Tags.
func HasTag(p Post, tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Filter returns the posts matching q in their original order. It never
// returns nil, so an empty result is distinguishable from no search at all.
func Filter(posts []Post, q Query) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if !Matches(p, q.Text) {
			continue
		}
		if q.Tag != "" && !HasTag(p, q.Tag) {
			continue
		}
		out = append(out, p.clone())
	}
	return out
}

// Tags returns the deduplicated union of all tags in first-seen order.
func Tags(posts []Post) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}
