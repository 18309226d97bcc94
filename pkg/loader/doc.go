// Package loader decodes site metadata documents (YAML, or JSON as a YAML
// subset) and applies them onto a head.Head. Documents are shaped as:
//
//	newLine: true
//	omitEmpty: false
//	all:       {title, description, image, url}
//	page:      {charset, viewport, themeColor}
//	seo:       {title, description, keywords, robots, googlebot, bingbot, canonical}
//	openGraph: {title, description, image, url, type, siteName}
//	twitter:   {card, title, description, image, site, creator}
//	clear:     [openGraph.type]
//
// Sections apply in the order all, record sections, clear, so a record value
// overrides the fan-out value and clear always wins. Unknown keys are
// rejected.
package loader
