package xmapping

import (
	"strconv"

	"github.com/trickstertwo/xlog"
)

// ObserverFunc is an Adapter that lets a plain function satisfy Observer.
type ObserverFunc func(e Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }

// LoggingObserver is an Adapter that emits processor events via xlog.
type LoggingObserver struct {
	Logger *xlog.Logger
}

func (o LoggingObserver) OnEvent(e Event) {
	if o.Logger == nil {
		return
	}
	ev := o.Logger.With(
		xlog.Str("type", string(e.Type)),
		xlog.Str("direction", string(e.Direction)),
		xlog.Str("mapper", e.Mapper),
		xlog.Str("topic", e.Topic),
	)
	switch e.Type {
	case Error:
		ev.Warn().Err(e.Err).Msg("xmapping event")
	case Dropped:
		ev.With(xlog.Str("reason", e.Reason)).Debug().Msg("xmapping event")
	default:
		if e.Duration > 0 {
			ev = ev.With(xlog.Dur("duration", e.Duration), xlog.Str("produced", strconv.Itoa(e.Produced)))
		}
		ev.Debug().Msg("xmapping event")
	}
}
