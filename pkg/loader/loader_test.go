package loader_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-metatags/pkg/head"
	"github.com/goliatone/go-metatags/pkg/loader"
	"github.com/goliatone/go-metatags/pkg/tags"
)

const siteYAML = `
newLine: false
all:
  title: Shared Title
  description: Shared description
  image: https://example.com/cover.png
  url: https://example.com/
page:
  themeColor: "#0f172a"
seo:
  robots: index, follow
openGraph:
  title: OG Title
  siteName: Example
twitter:
  site: "@example"
clear:
  - openGraph.type
  - page.viewport
`

func TestApply_SectionsAndClear(t *testing.T) {
	doc, err := loader.Parse([]byte(siteYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg := tags.NewConfig()
	h := head.New(head.WithConfig(cfg))
	if err := doc.Apply(h); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if cfg.UseNewLineBetweenEntries() {
		t.Fatalf("expected newLine: false to update the config")
	}

	got := map[string]*string{
		"seo.title":      h.SEO().Title,
		"og.title":       h.OpenGraph().Title,
		"twitter.title":  h.Twitter().Title,
		"og.type":        h.OpenGraph().Type,
		"page.viewport":  h.Page().Viewport,
		"page.theme":     h.Page().ThemeColor,
		"seo.canonical":  h.SEO().Canonical,
		"og.site_name":   h.OpenGraph().SiteName,
		"twitter.site":   h.Twitter().Site,
		"seo.robots":     h.SEO().Robots,
		"twitter.image":  h.Twitter().Image,
		"page.charset":   h.Page().Charset,
		"seo.googlebot":  h.SEO().Googlebot,
		"twitter.create": h.Twitter().Creator,
	}
	want := map[string]*string{
		"seo.title":      tags.String("Shared Title"),
		"og.title":       tags.String("OG Title"),
		"twitter.title":  tags.String("Shared Title"),
		"og.type":        nil,
		"page.viewport":  nil,
		"page.theme":     tags.String("#0f172a"),
		"seo.canonical":  tags.String("https://example.com/"),
		"og.site_name":   tags.String("Example"),
		"twitter.site":   tags.String("@example"),
		"seo.robots":     tags.String("index, follow"),
		"twitter.image":  tags.String("https://example.com/cover.png"),
		"page.charset":   tags.String(tags.DefaultCharset),
		"seo.googlebot":  nil,
		"twitter.create": nil,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("applied fields mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_EmptyStringStaysPresent(t *testing.T) {
	doc, err := loader.Parse([]byte("seo:\n  keywords: \"\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	h := head.New(head.WithConfig(tags.NewConfig()))
	if err := doc.Apply(h); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := h.SEO().Write(); got != `<meta name="keywords" content="">` {
		t.Fatalf("unexpected seo output %q", got)
	}
}

func TestApply_OmitEmpty(t *testing.T) {
	doc, err := loader.Parse([]byte("omitEmpty: true\nseo:\n  keywords: \"\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	h := head.New(head.WithConfig(tags.NewConfig()))
	if err := doc.Apply(h); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := h.SEO().Write(); got != "" {
		t.Fatalf("expected empty keywords to be omitted, got %q", got)
	}
}

func TestApply_UnknownClearPath(t *testing.T) {
	doc := loader.Document{Clear: []string{"seo.author"}}
	h := head.New(head.WithConfig(tags.NewConfig()))

	err := doc.Apply(h)
	if err == nil || !strings.Contains(err.Error(), `unknown clear path "seo.author"`) {
		t.Fatalf("expected unknown clear path error, got %v", err)
	}
	if tags.Value(h.OpenGraph().Type) != tags.DefaultOpenGraphType {
		t.Fatalf("failed apply should leave head untouched")
	}
}

func TestApply_NilHead(t *testing.T) {
	if err := (loader.Document{}).Apply(nil); err == nil {
		t.Fatalf("expected error for nil head")
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := loader.Parse([]byte("seo:\n  author: someone\n"))
	if err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := loader.Parse([]byte("   \n"))
	if !errors.Is(err, loader.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestParse_AcceptsJSON(t *testing.T) {
	doc, err := loader.Parse([]byte(`{"twitter": {"card": "summary"}}`))
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if tags.Value(doc.Twitter.Card) != "summary" {
		t.Fatalf("unexpected card %v", doc.Twitter.Card)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"meta/site.yaml": &fstest.MapFile{Data: []byte("all:\n  title: From FS\n")},
	}

	doc, err := loader.LoadFS(fsys, "meta/site.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tags.Value(doc.All.Title) != "From FS" {
		t.Fatalf("unexpected title %v", doc.All.Title)
	}

	if _, err := loader.LoadFS(fsys, "meta/missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := loader.LoadFS(nil, "x"); err == nil {
		t.Fatalf("expected error for nil filesystem")
	}
}
