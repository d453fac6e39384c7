package event

import "pulse/internal/logger"

type Option func(*Bus)

// WithStrictRegister makes Register refuse an empty event type or a listener
// without a callback, instead of only refusing when both are missing.
func WithStrictRegister() Option {
	return func(b *Bus) {
		b.strict = true
	}
}

func WithLogger(log logger.Logger) Option {
	return func(b *Bus) {
		if log != nil {
			b.log = log
		}
	}
}
