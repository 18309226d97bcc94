package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-metatags/pkg/head"
	"github.com/goliatone/go-metatags/pkg/loader"
	"github.com/goliatone/go-metatags/pkg/prompt"
	"github.com/goliatone/go-metatags/pkg/sanitize"
	"github.com/goliatone/go-metatags/pkg/tags"
)

func main() {
	configPath := flag.String("config", "", "YAML metadata document to apply")
	interactive := flag.Bool("interactive", false, "prompt for title, description, image and URL")
	newLine := flag.Bool("newline", true, "separate page/seo/og/twitter blocks with new lines")
	entriesNewLine := flag.Bool("entries-newline", true, "separate tags inside a block with new lines")
	sanitizeValues := flag.Bool("sanitize", false, "strip markup from values before embedding them")
	output := flag.String("output", "", "output file (stdout if empty)")
	title := flag.String("title", "", "title for <title>, og:title and twitter:title")
	description := flag.String("description", "", "description for every record")
	image := flag.String("image", "", "image URL for og:image and twitter:image")
	flag.Parse()

	ctx := context.Background()

	cfgOpts := []tags.ConfigOption{tags.WithNewLineBetweenEntries(*entriesNewLine)}
	var cfg *tags.Config
	if *sanitizeValues {
		cfg = sanitize.Config(cfgOpts...)
	} else {
		cfg = tags.NewConfig(cfgOpts...)
	}

	h := head.New(head.WithConfig(cfg))

	if path := strings.TrimSpace(*configPath); path != "" {
		doc, err := loader.LoadFile(path)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if err := doc.Apply(h); err != nil {
			log.Fatalf("Failed to apply config: %v", err)
		}
	}

	if *title != "" {
		h.SetTitleForAll(*title)
	}
	if *description != "" {
		h.SetDescriptionForAll(*description)
	}
	if *image != "" {
		h.SetImageForAll(*image)
	}

	opts := head.WriteOptions{NewLine: *newLine}
	if *interactive {
		collected, err := prompt.Collect(ctx, prompt.NewSurveyDriver(), h)
		if err != nil {
			log.Fatalf("Failed to collect metadata: %v", err)
		}
		opts = collected
	}

	out := h.WriteAll(opts)

	if *output != "" {
		if err := os.WriteFile(*output, []byte(out+"\n"), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Tags written to %s\n", *output)
	} else {
		fmt.Println(out)
	}
}
