package blog

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Classes assigns CSS classes to the rendered elements of a post body.
type Classes struct {
	H1        string
	H2        string
	Paragraph string
	Link      string
	Emphasis  string
	Code      string
	Image     string
	List      string
	ListItem  string
	Table     string
	TableHead string
	TableRow  string
	TableTh   string
	TableTd   string
}

// DefaultClasses is the post styling used by the site.
var DefaultClasses = Classes{
	H1:        "text-3xl text-cyan-500 italic font-extrabold mt-6 mb-4",
	H2:        "text-2xl font-semibold mt-4 mb-2",
	Paragraph: "text-black mb-4",
	Link:      "text-purple-600 hover:underline mt-3",
	Emphasis:  "bg-white",
	Code:      "bg-gray-800 text-white px-1 py-0.5 rounded text-sm",
	Image:     "rounded-md my-4",
	List:      "list-disc list-inside ml-4 mb-4",
	ListItem:  "mb-1",
	Table:     "min-w-full border border-gray-600 text-sm text-left text-black rounded-lg overflow-hidden my-4",
	TableHead: "bg-purple-700 text-white uppercase tracking-wider",
	TableRow:  "border border-black hover:bg-gray-800 transition-colors hover:text-white",
	TableTh:   "px-4 py-2 font-semibold",
	TableTd:   "px-4 py-2",
}

// Renderer turns post markdown into styled HTML.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer builds a GFM renderer with syntax highlighting and the given classes.
func NewRenderer(classes Classes) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(&classTransformer{classes: classes}, 500),
			),
		),
	)
	return &Renderer{md: md}
}

// Render converts source to HTML. Raw HTML inside the markdown stays escaped.
func (r *Renderer) Render(source []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

type classTransformer struct {
	classes Classes
}

func (t *classTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if class := t.classFor(n); class != "" {
			n.SetAttributeString("class", []byte(class))
		}
		return ast.WalkContinue, nil
	})
}

func (t *classTransformer) classFor(n ast.Node) string {
	c := t.classes
	switch n.Kind() {
	case ast.KindHeading:
		switch n.(*ast.Heading).Level {
		case 1:
			return c.H1
		case 2:
			return c.H2
		}
	case ast.KindParagraph:
		// Tight list items render their text without <p>.
		if _, ok := n.Parent().(*ast.ListItem); ok {
			return ""
		}
		return c.Paragraph
	case ast.KindLink, ast.KindAutoLink:
		return c.Link
	case ast.KindEmphasis:
		if n.(*ast.Emphasis).Level == 1 {
			return c.Emphasis
		}
	case ast.KindCodeSpan:
		return c.Code
	case ast.KindImage:
		return c.Image
	case ast.KindList:
		if !n.(*ast.List).IsOrdered() {
			return c.List
		}
	case ast.KindListItem:
		return c.ListItem
	case east.KindTable:
		return c.Table
	case east.KindTableHeader:
		return c.TableHead
	case east.KindTableRow:
		return c.TableRow
	case east.KindTableCell:
		if n.Parent() != nil && n.Parent().Kind() == east.KindTableHeader {
			return c.TableTh
		}
		return c.TableTd
	}
	return ""
}
