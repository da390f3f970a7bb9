package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mrxiaozhuox/karaty/internal/config"
	"github.com/mrxiaozhuox/karaty/internal/render"
	"github.com/mrxiaozhuox/karaty/internal/source"
)

// Generator renders remote page content into a static HTML site.
type Generator struct {
	cfg       *config.Config
	fetcher   *source.Fetcher
	outputDir string
}

// NewGenerator creates a Generator writing to the given output directory.
func NewGenerator(cfg *config.Config, fetcher *source.Fetcher, outputDir string) *Generator {
	return &Generator{
		cfg:       cfg,
		fetcher:   fetcher,
		outputDir: outputDir,
	}
}

// pageData is the payload handed to the page template.
type pageData struct {
	Title      string
	SiteName   string
	Slogan     string
	Navigation []config.NavLink
	ShowNavbar bool
	ShowFooter bool
	Variant    string
	ProseClass string
	Content    template.HTML
	Groups     []cardGroup
	ErrTitle   string
	ErrDetail  string
}

// cardGroup flattens one ordered card group for template iteration.
type cardGroup struct {
	Name  string
	Cards []render.CardInfo
}

// RouteName maps a page file name to its site route: the name with its
// dotted suffix stripped ("about.md" serves at "about").
func RouteName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

// RenderPage resolves one page through the template resolver and executes
// the page shell. The per-page template-config table comes from the pages
// section of the config; a page without one renders with defaults.
func RenderPage(cfg *config.Config, name, content string) ([]byte, error) {
	res := render.Resolve(name, content, cfg.Pages[name])

	data := pageData{
		Title:      RouteName(name),
		SiteName:   cfg.Site.Name,
		Slogan:     cfg.Site.Slogan,
		Navigation: cfg.Navigation.List,
		ShowNavbar: !res.HideNavbar,
		ShowFooter: !res.HideFooter,
		Variant:    string(res.Variant),
		ProseClass: res.ProseClass,
		Content:    template.HTML(res.HTML),
		ErrTitle:   res.ErrTitle,
		ErrDetail:  res.ErrDetail,
	}

	if res.Groups != nil {
		for pair := res.Groups.Oldest(); pair != nil; pair = pair.Next() {
			data.Groups = append(data.Groups, cardGroup{Name: pair.Key, Cards: pair.Value})
		}
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return buf.Bytes(), nil
}

// indexEntry is one link on the generated fallback index page.
type indexEntry struct {
	Route string
	Href  string
}

// indexData is the payload for the fallback index template.
type indexData struct {
	SiteName string
	Slogan   string
	Pages    []indexEntry
}

// renderIndex builds the fallback index page linking every rendered route.
func renderIndex(cfg *config.Config, routes []string, hrefSuffix string) ([]byte, error) {
	sort.Strings(routes)

	data := indexData{
		SiteName: cfg.Site.Name,
		Slogan:   cfg.Site.Slogan,
	}
	for _, route := range routes {
		data.Pages = append(data.Pages, indexEntry{Route: route, Href: "/" + route + hrefSuffix})
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing index template: %w", err)
	}
	return buf.Bytes(), nil
}

// Generate loads all pages from the content source and writes the rendered
// site. Returns the number of pages written. Pages that failed to fetch are
// simply absent from the output; a partially loaded site is still generated.
func (g *Generator) Generate(ctx context.Context, onProgress source.ProgressFunc) (int, error) {
	pages := g.fetcher.LoadPages(ctx, g.cfg, onProgress)
	return g.Render(&source.GlobalData{Config: g.cfg, Pages: pages})
}

// Render writes the static site for an already-loaded set of pages.
func (g *Generator) Render(data *source.GlobalData) (int, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return 0, err
	}

	var routes []string
	for name, content := range data.Pages {
		html, err := RenderPage(data.Config, name, content)
		if err != nil {
			return 0, fmt.Errorf("rendering %s: %w", name, err)
		}

		route := RouteName(name)
		routes = append(routes, route)

		outPath := filepath.Join(g.outputDir, route+".html")
		if err := os.WriteFile(outPath, html, 0o644); err != nil {
			return 0, fmt.Errorf("writing %s: %w", outPath, err)
		}
	}

	// A page routed at "index" already produced index.html; otherwise emit
	// the fallback listing.
	hasIndex := false
	for _, route := range routes {
		if route == "index" {
			hasIndex = true
			break
		}
	}
	if !hasIndex {
		index, err := renderIndex(data.Config, routes, ".html")
		if err != nil {
			return 0, err
		}
		if err := os.WriteFile(filepath.Join(g.outputDir, "index.html"), index, 0o644); err != nil {
			return 0, fmt.Errorf("writing index: %w", err)
		}
	}

	return len(data.Pages), nil
}
