package xmapping

import (
	"context"
	"fmt"
	"strconv"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlog"
)

// RecoveryMiddleware converts mapper panics into errors wrapping ErrMapperPanic.
func RecoveryMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, inv *Invocation) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: %v", ErrMapperPanic, r)
				}
			}()
			return next(ctx, inv)
		}
	}
}

// TopicValidationMiddleware rejects protocol messages whose topic is not
// six segments drawn from the documented enumerations. Inbound it checks
// the mapper's results, outbound the input.
func TopicValidationMiddleware() Middleware {
	check := func(msg *ProtocolMessage) error {
		t, err := ParseTopic(msg.Topic)
		if err != nil {
			return err
		}
		return t.Validate()
	}
	return func(next Handler) Handler {
		return func(ctx context.Context, inv *Invocation) error {
			if inv.Direction == Outbound && inv.Protocol != nil {
				if err := check(inv.Protocol); err != nil {
					return err
				}
			}
			if err := next(ctx, inv); err != nil {
				return err
			}
			if inv.Direction == Inbound {
				for _, m := range inv.ProtocolResults {
					if m == nil {
						continue
					}
					if err := check(m); err != nil {
						return err
					}
				}
			}
			return nil
		}
	}
}

// ExclusivePayloadMiddleware fails outbound mappings that produce an
// external message carrying both a text and a byte payload.
func ExclusivePayloadMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, inv *Invocation) error {
			if err := next(ctx, inv); err != nil {
				return err
			}
			if inv.Direction != Outbound {
				return nil
			}
			for i, m := range inv.ExternalResults {
				if m != nil && m.HasConflictingPayloads() {
					return fmt.Errorf("%w: result %d", ErrConflictingPayloads, i)
				}
			}
			return nil
		}
	}
}

// LoggingMiddleware logs every invocation at debug level, timed with the
// clock from ctx.
func LoggingMiddleware(l *xlog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, inv *Invocation) error {
			clk, ok := ClockFromContext(ctx)
			if !ok {
				clk = xclock.Default()
			}
			start := clk.Now()
			l.Debug().
				Str("direction", string(inv.Direction)).
				Str("mapper", inv.Mapper).
				Msg("mapping start")

			err := next(ctx, inv)

			l.Debug().
				Str("direction", string(inv.Direction)).
				Str("mapper", inv.Mapper).
				Str("produced", strconv.Itoa(inv.Produced())).
				Dur("dur", clk.Since(start)).
				Err(err).
				Msg("mapping done")
			return err
		}
	}
}

// Chain composes middlewares around a handler in order.
func Chain(h Handler, mws ...Middleware) Handler {
	if len(mws) == 0 {
		return h
	}
	wrapped := h
	// Apply in reverse so that first middleware wraps last.
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		wrapped = mws[i](wrapped)
	}
	return wrapped
}
