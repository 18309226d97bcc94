package template

import (
	"errors"
	"io"
)

// TemplateRenderer is the subset of a template engine the metatags filters
// need. gotemplate.Engine implements it.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// SafeHTML marks filter output that engines must emit without autoescaping.
type SafeHTML string

// ErrFilterExists is wrapped by engines when a filter name is already taken.
var ErrFilterExists = errors.New("template: filter already registered")
