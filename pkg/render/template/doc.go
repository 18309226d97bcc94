// Package template defines the engine-agnostic seam used to embed head
// metadata in server-rendered layouts, plus the filters that expose a
// head.Head or a single field record to templates.
package template
