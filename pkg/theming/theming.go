// Package theming derives the page theme-color from a go-theme selection so
// head metadata stays in step with the rendered theme tokens.
package theming

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-metatags/pkg/head"
	"github.com/goliatone/go-metatags/pkg/tags"
)

// DefaultTokenKeys are consulted, in order, when no keys are supplied.
var DefaultTokenKeys = []string{"theme-color", "brand"}

// ErrSelectorRequired is returned when no selector is supplied.
var ErrSelectorRequired = errors.New("theming: theme selector is required")

// Tokens selects name/variant and returns the manifest tokens merged with the
// selected variant's tokens (variant wins).
func Tokens(selector theme.ThemeSelector, name, variant string) (map[string]string, error) {
	if selector == nil {
		return nil, ErrSelectorRequired
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("theming: select theme %q/%q: %w", name, variant, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, nil
	}

	manifest := selection.Manifest
	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}

	active := strings.TrimSpace(selection.Variant)
	if active == "" {
		active = strings.TrimSpace(variant)
	}
	if v, ok := manifest.Variants[active]; ok {
		for key, value := range v.Tokens {
			tokens[key] = value
		}
	}
	return tokens, nil
}

// ThemeColor returns the first non-empty token among keys.
func ThemeColor(selector theme.ThemeSelector, name, variant string, keys ...string) (string, bool, error) {
	tokens, err := Tokens(selector, name, variant)
	if err != nil {
		return "", false, err
	}
	if len(keys) == 0 {
		keys = DefaultTokenKeys
	}
	for _, key := range keys {
		if value := strings.TrimSpace(tokens[key]); value != "" {
			return value, true, nil
		}
	}
	return "", false, nil
}

// Apply sets h's page theme-color when the selected theme defines one. The
// existing value is left alone otherwise.
func Apply(h *head.Head, selector theme.ThemeSelector, name, variant string, keys ...string) error {
	if h == nil {
		return errors.New("theming: head is required")
	}
	color, ok, err := ThemeColor(selector, name, variant, keys...)
	if err != nil {
		return err
	}
	if ok {
		h.Page().ThemeColor = tags.String(color)
	}
	return nil
}
