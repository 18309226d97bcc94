package tags

// DefaultTwitterCard is the twitter:card TwitterFields starts with.
const DefaultTwitterCard = "summary_large_image"

// TwitterFields describes twitter: card metadata.
type TwitterFields struct {
	Card        *string
	Title       *string
	Description *string
	Image       *string
	Site        *string
	Creator     *string

	policy policy
}

// NewTwitterFields returns Twitter fields with a large image summary card.
func NewTwitterFields(options ...Option) *TwitterFields {
	return &TwitterFields{
		Card:   String(DefaultTwitterCard),
		policy: newPolicy(options),
	}
}

// Write renders the card first, followed by title, description, image, site
// and creator.
func (t *TwitterFields) Write() string {
	var lines []string
	lines = t.policy.entry(lines, t.Card, metaName("twitter:card"))
	lines = t.policy.entry(lines, t.Title, metaName("twitter:title"))
	lines = t.policy.entry(lines, t.Description, metaName("twitter:description"))
	lines = t.policy.entry(lines, t.Image, metaName("twitter:image"))
	lines = t.policy.entry(lines, t.Site, metaName("twitter:site"))
	lines = t.policy.entry(lines, t.Creator, metaName("twitter:creator"))
	return t.policy.join(lines)
}
