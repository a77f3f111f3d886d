package event

// config holds resolved construction options for NewSimpleEvent.
type config struct {
	clip bool
}

// Option configures SimpleEvent construction.
type Option func(*config)

// WithClipping makes NewSimpleEvent intersect an out-of-domain value
// with its variable's domain instead of returning sets.ErrDomainEscape.
func WithClipping() Option {
	return func(c *config) { c.clip = true }
}

func resolveOptions(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
