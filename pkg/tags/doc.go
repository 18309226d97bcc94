// Package tags holds the field records that describe one family of HTML head
// metadata each (page, SEO, Open Graph, Twitter Card) and the serializers that
// turn them into tag strings.
//
// Every attribute is an optional *string. A nil pointer is absent and emits
// nothing; a pointer to "" is present and emits a tag with an empty attribute
// unless the active Config opts into OmitEmpty. Values are interpolated
// verbatim, no HTML escaping is applied unless a ValueFilter is configured.
//
// Lines inside a record's output are joined according to the Config newline
// policy. By default the policy is read on every Write call, so changes to the
// Config affect existing records; WithSnapshot captures it at construction.
package tags
