// Package prompt fills a head.Head interactively. The survey driver talks to
// the terminal; tests and other front ends can plug their own PromptDriver.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-metatags/pkg/head"
	"github.com/goliatone/go-metatags/pkg/tags"
)

// Collect asks for the shared title, description, image and canonical URL,
// fanning every changed answer out through the head setters. Blank answers
// and accepted defaults leave the current per-record values alone. The returned options carry the block
// separator choice.
func Collect(ctx context.Context, driver PromptDriver, h *head.Head) (head.WriteOptions, error) {
	if driver == nil {
		return head.WriteOptions{}, errors.New("prompt: driver is required")
	}
	if h == nil {
		return head.WriteOptions{}, errors.New("prompt: head is required")
	}

	questions := []struct {
		cfg   InputConfig
		apply func(string)
	}{
		{
			cfg:   InputConfig{Message: "Title", Default: tags.Value(h.SEO().Title), Help: "Used for <title>, og:title and twitter:title"},
			apply: h.SetTitleForAll,
		},
		{
			cfg:   InputConfig{Message: "Description", Default: tags.Value(h.SEO().Description)},
			apply: h.SetDescriptionForAll,
		},
		{
			cfg:   InputConfig{Message: "Image URL", Default: tags.Value(h.OpenGraph().Image), Validator: validateURL},
			apply: h.SetImageForAll,
		},
		{
			cfg:   InputConfig{Message: "Canonical URL", Default: tags.Value(h.SEO().Canonical), Validator: validateURL},
			apply: h.SetURLForAll,
		},
	}

	for _, q := range questions {
		answer, err := driver.Input(ctx, q.cfg)
		if err != nil {
			return head.WriteOptions{}, fmt.Errorf("prompt: %s: %w", strings.ToLower(q.cfg.Message), err)
		}
		answer = strings.TrimSpace(answer)
		if answer == "" || answer == strings.TrimSpace(q.cfg.Default) {
			continue
		}
		q.apply(answer)
	}

	newLine, err := driver.Confirm(ctx, ConfirmConfig{
		Message: "Separate blocks with new lines?",
		Default: true,
	})
	if err != nil {
		return head.WriteOptions{}, fmt.Errorf("prompt: block separator: %w", err)
	}
	return head.WriteOptions{NewLine: newLine}, nil
}

// validateURL accepts blanks (skip) and absolute URLs.
func validateURL(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%q is not an absolute URL", trimmed)
	}
	return nil
}
