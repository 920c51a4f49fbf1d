package showcase

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"
)

// DocumentError is the error class for layout document failures.
var DocumentError = errs.Class("document")

// Content is one routable page of the document: its URL, template and the
// root element that replaces the content area when the page is active.
type Content struct {
	URL        string `yaml:"url"`
	Template   string `yaml:"template"`
	Background string `yaml:"background,omitempty"`
	Color      string `yaml:"color,omitempty"`
	Root       *Box   `yaml:"root"`
}

// PageTemplate returns the content's template.
func (c *Content) PageTemplate() Template {
	return Template(c.Template)
}

// Document is the layout of the whole site: every routable page, authored
// against a design viewport. Reflow rescales all pages for a live viewport.
type Document struct {
	Design Viewport   `yaml:"design"`
	Pages  []*Content `yaml:"pages"`

	byURL map[string]*Content
}

// ParseDocument decodes a YAML layout document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, DocumentError.Wrap(err)
	}
	if err := doc.init(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReadDocument decodes a YAML layout document from r.
func ReadDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, DocumentError.Wrap(err)
	}
	return ParseDocument(data)
}

// LoadDocument reads and decodes the YAML layout document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, DocumentError.Wrap(err)
	}
	return ParseDocument(data)
}

func (d *Document) init() error {
	if d.Design.Width <= 0 || d.Design.Height <= 0 {
		return DocumentError.New("design viewport must be positive, got %vx%v", d.Design.Width, d.Design.Height)
	}
	if len(d.Pages) == 0 {
		return DocumentError.New("no pages")
	}
	d.byURL = make(map[string]*Content, len(d.Pages))
	for i, p := range d.Pages {
		if p.Root == nil {
			return DocumentError.New("page %d (%q) has no root", i, p.URL)
		}
		if p.Template == "" {
			p.Template = string(TemplateForURL(p.URL))
		}
		if _, dup := d.byURL[p.URL]; dup {
			return DocumentError.New("duplicate url %q", p.URL)
		}
		p.Root.init()
		d.byURL[p.URL] = p
	}
	return nil
}

// Page returns the content routed at url.
func (d *Document) Page(url string) (*Content, bool) {
	c, ok := d.byURL[url]
	return c, ok
}

// Reflow rescales every page for the given viewport. Layout scales with
// viewport width, the way vw-based styles do.
func (d *Document) Reflow(vp Viewport) {
	factor := 1.0
	if d.Design.Width > 0 && vp.Width > 0 {
		factor = vp.Width / d.Design.Width
	}
	for _, p := range d.Pages {
		p.Root.reflow(factor)
	}
}

// Assets returns every distinct data-src attribute in the document, sorted.
// This is the asset list handed to the preloader.
func (d *Document) Assets() []string {
	seen := make(map[string]bool)
	for _, p := range d.Pages {
		visit := func(b *Box) {
			if src := b.Attr("data-src"); src != "" {
				seen[src] = true
			}
		}
		visit(p.Root)
		p.Root.walk(visit)
	}
	out := make([]string, 0, len(seen))
	for src := range seen {
		out = append(out, src)
	}
	sort.Strings(out)
	return out
}

// TemplateForURL maps a site path to its template:
//
//	/              home
//	/about         about
//	/collections   collections
//	/detail/<slug> detail
//
// Unknown paths map to home.
func TemplateForURL(url string) Template {
	path := url
	if i := strings.Index(path, "://"); i >= 0 {
		path = path[i+3:]
		if j := strings.IndexByte(path, '/'); j >= 0 {
			path = path[j:]
		} else {
			path = "/"
		}
	}
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	switch {
	case path == "/about" || strings.HasPrefix(path, "/about/"):
		return TemplateAbout
	case path == "/collections" || strings.HasPrefix(path, "/collections/"):
		return TemplateCollections
	case strings.HasPrefix(path, "/detail/"):
		return TemplateDetail
	default:
		return TemplateHome
	}
}
