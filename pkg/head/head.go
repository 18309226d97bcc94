package head

import (
	"strings"

	"github.com/goliatone/go-metatags/pkg/tags"
)

// Option configures a Head before its records are constructed.
type Option func(*config)

type config struct {
	cfg      *tags.Config
	snapshot bool
}

// WithConfig binds every owned record to cfg.
func WithConfig(cfg *tags.Config) Option {
	return func(c *config) {
		if cfg != nil {
			c.cfg = cfg
		}
	}
}

// WithSnapshot freezes the newline policy of every owned record at
// construction.
func WithSnapshot() Option {
	return func(c *config) {
		c.snapshot = true
	}
}

// WriteOptions controls WriteAll. NewLine only affects the separator placed
// between the four record blocks; lines inside a block follow the record's
// Config.
type WriteOptions struct {
	NewLine bool
}

// Head owns one instance of each field record.
type Head struct {
	page      tags.PageFields
	seo       tags.SeoFields
	openGraph tags.OpenGraphFields
	twitter   tags.TwitterFields
	config    *tags.Config
}

// New constructs a Head with every record at its documented defaults.
func New(options ...Option) *Head {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	var recordOpts []tags.Option
	if cfg.cfg != nil {
		recordOpts = append(recordOpts, tags.WithConfig(cfg.cfg))
	}
	if cfg.snapshot {
		recordOpts = append(recordOpts, tags.WithSnapshot())
	}

	resolved := cfg.cfg
	if resolved == nil {
		resolved = tags.DefaultConfig()
	}

	return &Head{
		page:      *tags.NewPageFields(recordOpts...),
		seo:       *tags.NewSeoFields(recordOpts...),
		openGraph: *tags.NewOpenGraphFields(recordOpts...),
		twitter:   *tags.NewTwitterFields(recordOpts...),
		config:    resolved,
	}
}

// Config returns the Config the owned records read from.
func (h *Head) Config() *tags.Config {
	return h.config
}

// Page exposes the owned page record for direct field access.
func (h *Head) Page() *tags.PageFields {
	return &h.page
}

// SEO exposes the owned SEO record.
func (h *Head) SEO() *tags.SeoFields {
	return &h.seo
}

// OpenGraph exposes the owned Open Graph record.
func (h *Head) OpenGraph() *tags.OpenGraphFields {
	return &h.openGraph
}

// Twitter exposes the owned Twitter record.
func (h *Head) Twitter() *tags.TwitterFields {
	return &h.twitter
}

// SetTitleForAll sets the SEO, Open Graph and Twitter titles.
func (h *Head) SetTitleForAll(value string) {
	h.seo.Title = tags.String(value)
	h.openGraph.Title = tags.String(value)
	h.twitter.Title = tags.String(value)
}

// SetDescriptionForAll sets the SEO, Open Graph and Twitter descriptions.
func (h *Head) SetDescriptionForAll(value string) {
	h.seo.Description = tags.String(value)
	h.openGraph.Description = tags.String(value)
	h.twitter.Description = tags.String(value)
}

// SetImageForAll sets the Open Graph and Twitter images.
func (h *Head) SetImageForAll(value string) {
	h.openGraph.Image = tags.String(value)
	h.twitter.Image = tags.String(value)
}

// SetURLForAll sets the canonical link and og:url.
func (h *Head) SetURLForAll(value string) {
	h.seo.Canonical = tags.String(value)
	h.openGraph.URL = tags.String(value)
}

// WriteAll concatenates the page, SEO, Open Graph and Twitter blocks in that
// order. Empty blocks still take part in the join.
func (h *Head) WriteAll(opts WriteOptions) string {
	blocks := []string{
		h.page.Write(),
		h.seo.Write(),
		h.openGraph.Write(),
		h.twitter.Write(),
	}
	sep := ""
	if opts.NewLine {
		sep = "\n"
	}
	return strings.Join(blocks, sep)
}
