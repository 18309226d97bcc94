package tags

const (
	// DefaultCharset is the charset PageFields starts with.
	DefaultCharset = "UTF-8"
	// DefaultViewport is the viewport PageFields starts with.
	DefaultViewport = "width=device-width, initial-scale=1.0"
)

// PageFields describes document level declarations.
type PageFields struct {
	Charset    *string
	Viewport   *string
	ThemeColor *string

	policy policy
}

// NewPageFields returns page fields with the default charset and viewport.
func NewPageFields(options ...Option) *PageFields {
	return &PageFields{
		Charset:  String(DefaultCharset),
		Viewport: String(DefaultViewport),
		policy:   newPolicy(options),
	}
}

// Write renders charset, viewport and theme-color, in that order.
func (p *PageFields) Write() string {
	var lines []string
	lines = p.policy.entry(lines, p.Charset, charsetTag)
	lines = p.policy.entry(lines, p.Viewport, metaName("viewport"))
	lines = p.policy.entry(lines, p.ThemeColor, metaName("theme-color"))
	return p.policy.join(lines)
}
