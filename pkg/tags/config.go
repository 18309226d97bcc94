package tags

import "sync/atomic"

// ValueFilter rewrites a field value right before it is embedded in a tag.
type ValueFilter func(string) string

// Config carries the formatting policy shared by field records. It is safe to
// mutate while other goroutines serialize; the last write wins.
type Config struct {
	newLine   atomic.Bool
	omitEmpty atomic.Bool
	filter    ValueFilter
}

// ConfigOption configures a Config at construction.
type ConfigOption func(*Config)

// WithNewLineBetweenEntries sets the initial newline policy (default true).
func WithNewLineBetweenEntries(enabled bool) ConfigOption {
	return func(c *Config) {
		c.newLine.Store(enabled)
	}
}

// WithOmitEmpty treats empty strings like absent values, matching the legacy
// falsy check some templates depend on.
func WithOmitEmpty(enabled bool) ConfigOption {
	return func(c *Config) {
		c.omitEmpty.Store(enabled)
	}
}

// WithValueFilter installs a filter applied to every emitted value. A nil
// filter keeps values verbatim.
func WithValueFilter(fn ValueFilter) ConfigOption {
	return func(c *Config) {
		c.filter = fn
	}
}

// NewConfig builds a Config with newline separation enabled.
func NewConfig(options ...ConfigOption) *Config {
	cfg := &Config{}
	cfg.newLine.Store(true)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	return cfg
}

var defaultConfig = NewConfig()

// DefaultConfig returns the process-wide Config used by records constructed
// without WithConfig.
func DefaultConfig() *Config {
	return defaultConfig
}

// UseNewLineBetweenEntries reports whether emitted lines are joined with "\n".
func (c *Config) UseNewLineBetweenEntries() bool {
	if c == nil {
		return true
	}
	return c.newLine.Load()
}

// SetUseNewLineBetweenEntries changes the newline policy for future Write
// calls of live records.
func (c *Config) SetUseNewLineBetweenEntries(enabled bool) {
	if c == nil {
		return
	}
	c.newLine.Store(enabled)
}

// OmitEmpty reports whether empty string values are skipped.
func (c *Config) OmitEmpty() bool {
	if c == nil {
		return false
	}
	return c.omitEmpty.Load()
}

// SetOmitEmpty toggles the empty string policy.
func (c *Config) SetOmitEmpty(enabled bool) {
	if c == nil {
		return
	}
	c.omitEmpty.Store(enabled)
}

func (c *Config) filterValue(value string) string {
	if c == nil || c.filter == nil {
		return value
	}
	return c.filter(value)
}

func separator(newLine bool) string {
	if newLine {
		return "\n"
	}
	return ""
}
