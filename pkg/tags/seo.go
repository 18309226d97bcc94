package tags

// SeoFields describes search engine metadata.
type SeoFields struct {
	Title       *string
	Description *string
	Keywords    *string
	Robots      *string
	Googlebot   *string
	Bingbot     *string
	Canonical   *string

	policy policy
}

// NewSeoFields returns SEO fields with every attribute absent.
func NewSeoFields(options ...Option) *SeoFields {
	return &SeoFields{policy: newPolicy(options)}
}

// Write renders the title element, the name/content meta tags and the
// canonical link.
func (s *SeoFields) Write() string {
	var lines []string
	lines = s.policy.entry(lines, s.Title, titleTag)
	lines = s.policy.entry(lines, s.Description, metaName("description"))
	lines = s.policy.entry(lines, s.Keywords, metaName("keywords"))
	lines = s.policy.entry(lines, s.Robots, metaName("robots"))
	lines = s.policy.entry(lines, s.Googlebot, metaName("googlebot"))
	lines = s.policy.entry(lines, s.Bingbot, metaName("bingbot"))
	lines = s.policy.entry(lines, s.Canonical, linkTag("canonical"))
	return s.policy.join(lines)
}
