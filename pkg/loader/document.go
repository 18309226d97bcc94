package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-metatags/pkg/head"
	"github.com/goliatone/go-metatags/pkg/tags"
)

// Document is the decoded form of a metadata file. Nil pointers mean the key
// was not present.
type Document struct {
	NewLine   *bool          `yaml:"newLine,omitempty"`
	OmitEmpty *bool          `yaml:"omitEmpty,omitempty"`
	All       SharedSection  `yaml:"all,omitempty"`
	Page      PageSection    `yaml:"page,omitempty"`
	SEO       SEOSection     `yaml:"seo,omitempty"`
	OpenGraph OGSection      `yaml:"openGraph,omitempty"`
	Twitter   TwitterSection `yaml:"twitter,omitempty"`
	Clear     []string       `yaml:"clear,omitempty"`
}

// SharedSection holds values fanned out through the head setters.
type SharedSection struct {
	Title       *string `yaml:"title,omitempty"`
	Description *string `yaml:"description,omitempty"`
	Image       *string `yaml:"image,omitempty"`
	URL         *string `yaml:"url,omitempty"`
}

// PageSection mirrors tags.PageFields.
type PageSection struct {
	Charset    *string `yaml:"charset,omitempty"`
	Viewport   *string `yaml:"viewport,omitempty"`
	ThemeColor *string `yaml:"themeColor,omitempty"`
}

// SEOSection mirrors tags.SeoFields.
type SEOSection struct {
	Title       *string `yaml:"title,omitempty"`
	Description *string `yaml:"description,omitempty"`
	Keywords    *string `yaml:"keywords,omitempty"`
	Robots      *string `yaml:"robots,omitempty"`
	Googlebot   *string `yaml:"googlebot,omitempty"`
	Bingbot     *string `yaml:"bingbot,omitempty"`
	Canonical   *string `yaml:"canonical,omitempty"`
}

// OGSection mirrors tags.OpenGraphFields.
type OGSection struct {
	Title       *string `yaml:"title,omitempty"`
	Description *string `yaml:"description,omitempty"`
	Image       *string `yaml:"image,omitempty"`
	URL         *string `yaml:"url,omitempty"`
	Type        *string `yaml:"type,omitempty"`
	SiteName    *string `yaml:"siteName,omitempty"`
}

// TwitterSection mirrors tags.TwitterFields.
type TwitterSection struct {
	Card        *string `yaml:"card,omitempty"`
	Title       *string `yaml:"title,omitempty"`
	Description *string `yaml:"description,omitempty"`
	Image       *string `yaml:"image,omitempty"`
	Site        *string `yaml:"site,omitempty"`
	Creator     *string `yaml:"creator,omitempty"`
}

// Apply writes the document onto h. Policy keys mutate h.Config(), which is
// the process-wide default when h was built without head.WithConfig.
func (d Document) Apply(h *head.Head) error {
	if h == nil {
		return fmt.Errorf("loader: head is required")
	}

	refs := fieldRefs(h)
	for _, path := range d.Clear {
		if _, ok := refs[normalisePath(path)]; !ok {
			return fmt.Errorf("loader: unknown clear path %q (known: %s)", path, strings.Join(knownPaths(refs), ", "))
		}
	}

	if d.NewLine != nil {
		h.Config().SetUseNewLineBetweenEntries(*d.NewLine)
	}
	if d.OmitEmpty != nil {
		h.Config().SetOmitEmpty(*d.OmitEmpty)
	}

	if v := d.All.Title; v != nil {
		h.SetTitleForAll(*v)
	}
	if v := d.All.Description; v != nil {
		h.SetDescriptionForAll(*v)
	}
	if v := d.All.Image; v != nil {
		h.SetImageForAll(*v)
	}
	if v := d.All.URL; v != nil {
		h.SetURLForAll(*v)
	}

	assign(refs, "page.charset", d.Page.Charset)
	assign(refs, "page.viewport", d.Page.Viewport)
	assign(refs, "page.themecolor", d.Page.ThemeColor)

	assign(refs, "seo.title", d.SEO.Title)
	assign(refs, "seo.description", d.SEO.Description)
	assign(refs, "seo.keywords", d.SEO.Keywords)
	assign(refs, "seo.robots", d.SEO.Robots)
	assign(refs, "seo.googlebot", d.SEO.Googlebot)
	assign(refs, "seo.bingbot", d.SEO.Bingbot)
	assign(refs, "seo.canonical", d.SEO.Canonical)

	assign(refs, "opengraph.title", d.OpenGraph.Title)
	assign(refs, "opengraph.description", d.OpenGraph.Description)
	assign(refs, "opengraph.image", d.OpenGraph.Image)
	assign(refs, "opengraph.url", d.OpenGraph.URL)
	assign(refs, "opengraph.type", d.OpenGraph.Type)
	assign(refs, "opengraph.sitename", d.OpenGraph.SiteName)

	assign(refs, "twitter.card", d.Twitter.Card)
	assign(refs, "twitter.title", d.Twitter.Title)
	assign(refs, "twitter.description", d.Twitter.Description)
	assign(refs, "twitter.image", d.Twitter.Image)
	assign(refs, "twitter.site", d.Twitter.Site)
	assign(refs, "twitter.creator", d.Twitter.Creator)

	for _, path := range d.Clear {
		*refs[normalisePath(path)] = nil
	}
	return nil
}

func assign(refs map[string]**string, path string, value *string) {
	if value == nil {
		return
	}
	*refs[path] = tags.String(*value)
}

// fieldRefs indexes every field of h by its lower-cased dotted path.
func fieldRefs(h *head.Head) map[string]**string {
	page, seo, og, tw := h.Page(), h.SEO(), h.OpenGraph(), h.Twitter()
	return map[string]**string{
		"page.charset":    &page.Charset,
		"page.viewport":   &page.Viewport,
		"page.themecolor": &page.ThemeColor,

		"seo.title":       &seo.Title,
		"seo.description": &seo.Description,
		"seo.keywords":    &seo.Keywords,
		"seo.robots":      &seo.Robots,
		"seo.googlebot":   &seo.Googlebot,
		"seo.bingbot":     &seo.Bingbot,
		"seo.canonical":   &seo.Canonical,

		"opengraph.title":       &og.Title,
		"opengraph.description": &og.Description,
		"opengraph.image":       &og.Image,
		"opengraph.url":         &og.URL,
		"opengraph.type":        &og.Type,
		"opengraph.sitename":    &og.SiteName,

		"twitter.card":        &tw.Card,
		"twitter.title":       &tw.Title,
		"twitter.description": &tw.Description,
		"twitter.image":       &tw.Image,
		"twitter.site":        &tw.Site,
		"twitter.creator":     &tw.Creator,
	}
}

func normalisePath(path string) string {
	return strings.ToLower(strings.TrimSpace(path))
}

func knownPaths(refs map[string]**string) []string {
	out := make([]string, 0, len(refs))
	for path := range refs {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}
