// Package sanitize provides an opt-in value filter that strips markup from
// field values before they are embedded in tags. Records stay verbatim unless
// the filter is installed with tags.WithValueFilter.
package sanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-metatags/pkg/tags"
)

var (
	valuePolicyOnce sync.Once
	valuePolicy     *bluemonday.Policy
)

// Filter returns the bluemonday backed tags.ValueFilter.
func Filter() tags.ValueFilter {
	return Value
}

// Value removes every element from raw and escapes the remaining text so it
// can sit inside a quoted attribute.
func Value(raw string) string {
	if raw == "" {
		return ""
	}
	return valueSanitizer().Sanitize(raw)
}

// Config returns a tags.Config with the sanitizing filter installed.
func Config(options ...tags.ConfigOption) *tags.Config {
	options = append(options, tags.WithValueFilter(Filter()))
	return tags.NewConfig(options...)
}

func valueSanitizer() *bluemonday.Policy {
	valuePolicyOnce.Do(func() {
		valuePolicy = bluemonday.StrictPolicy()
	})
	return valuePolicy
}
