package template

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-metatags/pkg/head"
	"github.com/goliatone/go-metatags/pkg/tags"
)

// FilterName is the name under which MetaTags is registered.
const FilterName = "metatags"

type tagWriter interface {
	Write() string
}

// RegisterFilters installs the metatags filter on r. Re-registering on an
// engine that already knows the filter is not an error.
func RegisterFilters(r TemplateRenderer) error {
	if r == nil {
		return errors.New("template: renderer is required")
	}
	if err := r.RegisterFilter(FilterName, MetaTags); err != nil && !errors.Is(err, ErrFilterExists) {
		return fmt.Errorf("template: register %s filter: %w", FilterName, err)
	}
	return nil
}

// MetaTags renders input as head markup. A head.Head is written with
// WriteAll, param toggling the newline between blocks; a single record is
// written with its own Write.
func MetaTags(input any, param any) (any, error) {
	switch v := input.(type) {
	case nil:
		return SafeHTML(""), nil
	case *head.Head:
		if v == nil {
			return SafeHTML(""), nil
		}
		return SafeHTML(v.WriteAll(head.WriteOptions{NewLine: truthy(param)})), nil
	case head.Head:
		return SafeHTML(v.WriteAll(head.WriteOptions{NewLine: truthy(param)})), nil
	case tagWriter:
		return SafeHTML(v.Write()), nil
	case tags.PageFields:
		return SafeHTML(v.Write()), nil
	case tags.SeoFields:
		return SafeHTML(v.Write()), nil
	case tags.OpenGraphFields:
		return SafeHTML(v.Write()), nil
	case tags.TwitterFields:
		return SafeHTML(v.Write()), nil
	default:
		return nil, fmt.Errorf("template: %s filter cannot render %T", FilterName, input)
	}
}

func truthy(param any) bool {
	switch v := param.(type) {
	case bool:
		return v
	case string:
		trimmed := strings.TrimSpace(v)
		if strings.EqualFold(trimmed, "newline") {
			return true
		}
		parsed, err := strconv.ParseBool(trimmed)
		return err == nil && parsed
	case int:
		return v != 0
	default:
		return false
	}
}
