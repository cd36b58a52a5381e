package policy

import "go.uber.org/zap"

// Option configures an LRU strategy.
type Option func(*options)

type options struct {
	strict bool
	logger *zap.Logger
}

func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
	}
}

// WithStrictCapacity bounds the strategy to exactly capacity entries.
// Without it a strategy of capacity N holds up to N+1 entries: the overflow
// check runs before the new key is inserted and uses a strict comparison.
func WithStrictCapacity() Option {
	return func(o *options) { o.strict = true }
}

// WithLogger sets the logger used to report evictions.
// A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
