package tags

// String returns a pointer to a copy of v, for assigning optional fields.
func String(v string) *string {
	return &v
}

// Value dereferences p, returning "" when the field is absent.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// IsSet reports whether the field holds a value (including "").
func IsSet(p *string) bool {
	return p != nil
}
