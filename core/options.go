package pngchunk

import "log/slog"

// Option configures Parse.
type Option func(*parseConfig)

type parseConfig struct {
	maxChunkLength uint32
	logger         *slog.Logger
}

// log returns the logger, falling back to a discard logger if nil.
func (c *parseConfig) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// WithMaxChunkLength rejects chunks whose declared payload exceeds limit
// with ErrChunkTooLarge, before any payload is copied.
// Set limit to 0 to disable the limit (the default).
func WithMaxChunkLength(limit uint32) Option {
	return func(c *parseConfig) {
		c.maxChunkLength = limit
	}
}

// WithLogger sets the logger used for parse diagnostics.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *parseConfig) {
		c.logger = logger
	}
}
