package tags

import "strings"

// Option configures how a field record resolves its Config.
type Option func(*policy)

// WithConfig binds the record to cfg instead of DefaultConfig.
func WithConfig(cfg *Config) Option {
	return func(p *policy) {
		if cfg != nil {
			p.cfg = cfg
		}
	}
}

// WithSnapshot freezes the newline policy at construction time. Later changes
// to the Config no longer affect the record's separator.
func WithSnapshot() Option {
	return func(p *policy) {
		p.snapshot = true
	}
}

type policy struct {
	cfg      *Config
	snapshot bool
	newLine  bool
}

func newPolicy(options []Option) policy {
	var p policy
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&p)
	}
	if p.snapshot {
		p.newLine = p.config().UseNewLineBetweenEntries()
	}
	return p
}

func (p policy) config() *Config {
	if p.cfg == nil {
		return DefaultConfig()
	}
	return p.cfg
}

func (p policy) separator() string {
	if p.snapshot {
		return separator(p.newLine)
	}
	return separator(p.config().UseNewLineBetweenEntries())
}

// entry appends the rendered tag for value when the value is present.
func (p policy) entry(lines []string, value *string, render func(string) string) []string {
	if value == nil {
		return lines
	}
	cfg := p.config()
	if *value == "" && cfg.OmitEmpty() {
		return lines
	}
	return append(lines, render(cfg.filterValue(*value)))
}

func (p policy) join(lines []string) string {
	return strings.Join(lines, p.separator())
}
