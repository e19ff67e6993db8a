package ditto

import (
	"fmt"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlog"
	"github.com/trickstertwo/xmapping"
)

// Use builds a Processor with the Ditto mapper and installs it as the
// process-wide default, then returns it.
func Use(cfg Config, opts ...Option) *xmapping.Processor {
	pb := xmapping.NewProcessorBuilder().
		WithMapper(MapperName, cfg.toMap())

	for _, o := range opts {
		if o != nil {
			o(pb)
		}
	}
	p, err := pb.Build()
	if err != nil {
		panic(fmt.Errorf("ditto.Use: %w", err))
	}

	xmapping.SetDefault(p)
	return p
}

// Option configures the xmapping.Processor when calling Use.
type Option func(*xmapping.ProcessorBuilder)

// WithLogger injects a custom xlog logger.
func WithLogger(l *xlog.Logger) Option {
	return func(b *xmapping.ProcessorBuilder) { b.WithLogger(l) }
}

// WithClock injects a custom xclock clock.
func WithClock(c xclock.Clock) Option {
	return func(b *xmapping.ProcessorBuilder) { b.WithClock(c) }
}

// WithCodec selects the processor codec by name (default: "json").
func WithCodec(name string) Option {
	return func(b *xmapping.ProcessorBuilder) { b.WithCodec(name) }
}

// WithMiddleware adds processing middlewares.
func WithMiddleware(mw ...xmapping.Middleware) Option {
	return func(b *xmapping.ProcessorBuilder) { b.WithMiddleware(mw...) }
}

// WithObserver attaches observers for lifecycle events.
func WithObserver(obs ...xmapping.Observer) Option {
	return func(b *xmapping.ProcessorBuilder) { b.WithObserver(obs...) }
}
