// Package metatags assembles HTML <meta>, <title> and <link> tags for page,
// SEO, Open Graph and Twitter Card metadata. The heavy lifting lives in
// pkg/tags and pkg/head; this package re-exports the common entry points.
package metatags

import (
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-metatags/pkg/head"
	"github.com/goliatone/go-metatags/pkg/loader"
	"github.com/goliatone/go-metatags/pkg/tags"
	"github.com/goliatone/go-metatags/pkg/theming"
)

// Head aliases head.Head so callers can stay on the top-level package.
type Head = head.Head

// WriteOptions aliases head.WriteOptions.
type WriteOptions = head.WriteOptions

// Config aliases tags.Config.
type Config = tags.Config

// Document aliases loader.Document.
type Document = loader.Document

// New constructs a Head with every record at its defaults.
func New(options ...head.Option) *Head {
	return head.New(options...)
}

// NewConfig exposes tags.NewConfig from the top-level module.
func NewConfig(options ...tags.ConfigOption) *Config {
	return tags.NewConfig(options...)
}

// DefaultConfig returns the process-wide Config records fall back to.
func DefaultConfig() *Config {
	return tags.DefaultConfig()
}

// Load decodes the document at path inside fsys and applies it onto a new
// Head built with options. The Head gets its own Config unless options supply
// one, so policy keys in the document never touch DefaultConfig.
func Load(fsys fs.FS, path string, options ...head.Option) (*Head, error) {
	doc, err := loader.LoadFS(fsys, path)
	if err != nil {
		return nil, err
	}
	options = append([]head.Option{head.WithConfig(tags.NewConfig())}, options...)
	h := head.New(options...)
	if err := doc.Apply(h); err != nil {
		return nil, err
	}
	return h, nil
}

// Render is the shortest path from a title, description and image to a full
// block of head markup.
func Render(title, description, image string, opts WriteOptions, options ...head.Option) string {
	h := head.New(options...)
	h.SetTitleForAll(title)
	h.SetDescriptionForAll(description)
	h.SetImageForAll(image)
	return h.WriteAll(opts)
}

// WithThemeColor resolves the theme-color from a go-theme selector and
// applies it onto h.
func WithThemeColor(h *Head, selector theme.ThemeSelector, name, variant string) error {
	return theming.Apply(h, selector, name, variant)
}
