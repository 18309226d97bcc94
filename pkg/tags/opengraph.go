package tags

// DefaultOpenGraphType is the og:type OpenGraphFields starts with.
const DefaultOpenGraphType = "website"

// OpenGraphFields describes og: properties.
type OpenGraphFields struct {
	Title       *string
	Description *string
	Image       *string
	URL         *string
	Type        *string
	SiteName    *string

	policy policy
}

// NewOpenGraphFields returns Open Graph fields typed as a website.
func NewOpenGraphFields(options ...Option) *OpenGraphFields {
	return &OpenGraphFields{
		Type:   String(DefaultOpenGraphType),
		policy: newPolicy(options),
	}
}

// Write renders og:title, og:description, og:image, og:url, og:type and
// og:site_name.
func (o *OpenGraphFields) Write() string {
	var lines []string
	lines = o.policy.entry(lines, o.Title, metaProperty("og:title"))
	lines = o.policy.entry(lines, o.Description, metaProperty("og:description"))
	lines = o.policy.entry(lines, o.Image, metaProperty("og:image"))
	lines = o.policy.entry(lines, o.URL, metaProperty("og:url"))
	lines = o.policy.entry(lines, o.Type, metaProperty("og:type"))
	lines = o.policy.entry(lines, o.SiteName, metaProperty("og:site_name"))
	return o.policy.join(lines)
}
