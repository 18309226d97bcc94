// Package head aggregates the page, SEO, Open Graph and Twitter field records
// into one value that can fan shared values out to every record and render
// them as a single block of head markup.
package head
