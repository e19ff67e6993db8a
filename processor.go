package xmapping

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlog"
)

// Processor runs a Mapper for single messages, applying the content-type
// blocklist, the middleware chain and observer notification around it.
type Processor struct {
	mapper    Mapper
	codec     Codec
	clock     xclock.Clock
	logger    *xlog.Logger
	handler   Handler
	blocklist map[string]struct{}

	observersMu sync.RWMutex
	observers   []Observer

	metrics *processorMetrics
}

// processorMetrics uses lock-free atomics so parallel calls need no locking.
type processorMetrics struct {
	inbound   atomic.Uint64
	outbound  atomic.Uint64
	produced  atomic.Uint64
	dropped   atomic.Uint64
	errors    atomic.Uint64
	mappingNs atomic.Int64
}

// Mapper returns the configured mapper (Strategy).
func (p *Processor) Mapper() Mapper { return p.mapper }

// Codec returns the configured codec (Strategy).
func (p *Processor) Codec() Codec { return p.codec }

// ProcessInbound maps an external message into protocol messages.
// A nil slice with a nil error means the message was dropped.
func (p *Processor) ProcessInbound(ctx context.Context, msg *ExternalMessage) ([]*ProtocolMessage, error) {
	if msg == nil {
		return nil, ErrNilMessage
	}
	p.metrics.inbound.Add(1)

	if ct, blocked := p.blocked(msg); blocked {
		p.drop(Event{Direction: Inbound, Reason: "content type blocked: " + ct})
		return nil, nil
	}

	inv := &Invocation{Direction: Inbound, Mapper: p.mapper.Name(), External: msg}
	if err := p.run(ctx, inv, ""); err != nil {
		return nil, err
	}
	if len(inv.ProtocolResults) == 0 {
		p.drop(Event{Direction: Inbound, Reason: "mapper produced no message"})
		return nil, nil
	}
	return inv.ProtocolResults, nil
}

// ProcessOutbound maps a protocol message into external messages.
// A nil slice with a nil error means the message was dropped.
func (p *Processor) ProcessOutbound(ctx context.Context, msg *ProtocolMessage) ([]*ExternalMessage, error) {
	if msg == nil {
		return nil, ErrNilMessage
	}
	p.metrics.outbound.Add(1)

	inv := &Invocation{Direction: Outbound, Mapper: p.mapper.Name(), Protocol: msg}
	if err := p.run(ctx, inv, msg.Topic); err != nil {
		return nil, err
	}
	if len(inv.ExternalResults) == 0 {
		p.drop(Event{Direction: Outbound, Topic: msg.Topic, Reason: "mapper produced no message"})
		return nil, nil
	}
	return inv.ExternalResults, nil
}

func (p *Processor) run(ctx context.Context, inv *Invocation, topic string) error {
	hctx := injectCodec(ctx, p.codec)
	hctx = injectLogger(hctx, p.logger)
	hctx = injectClock(hctx, p.clock)

	p.notify(Event{Type: MapStart, Direction: inv.Direction, Mapper: inv.Mapper, Topic: topic})
	start := p.clock.Now()

	err := p.handler(hctx, inv)

	duration := p.clock.Since(start)
	p.recordMappingTime(duration.Nanoseconds())

	if err != nil {
		p.metrics.errors.Add(1)
		p.notify(Event{Type: Error, Direction: inv.Direction, Mapper: inv.Mapper, Topic: topic, Duration: duration, Err: err})
		return err
	}
	p.metrics.produced.Add(uint64(inv.Produced()))
	p.notify(Event{
		Type:      MapDone,
		Direction: inv.Direction,
		Mapper:    inv.Mapper,
		Topic:     topic,
		Produced:  inv.Produced(),
		Duration:  duration,
	})
	return nil
}

// invoke is the innermost handler: it calls the mapper for the direction.
func (p *Processor) invoke(ctx context.Context, inv *Invocation) error {
	var err error
	switch inv.Direction {
	case Inbound:
		inv.ProtocolResults, err = p.mapper.MapInbound(ctx, inv.External)
	case Outbound:
		inv.ExternalResults, err = p.mapper.MapOutbound(ctx, inv.Protocol)
	}
	return err
}

func (p *Processor) blocked(msg *ExternalMessage) (string, bool) {
	if len(p.blocklist) == 0 {
		return "", false
	}
	ct := msg.ContentType.OrElse(msg.Headers.Get(HeaderContentType))
	ct = normalizeContentType(ct)
	if ct == "" {
		return "", false
	}
	_, ok := p.blocklist[ct]
	return ct, ok
}

func (p *Processor) drop(e Event) {
	e.Type = Dropped
	e.Mapper = p.mapper.Name()
	p.metrics.dropped.Add(1)
	p.notify(e)
}

// Metrics returns current processor metrics.
func (p *Processor) Metrics() Metrics {
	return Metrics{
		Inbound:          p.metrics.inbound.Load(),
		Outbound:         p.metrics.outbound.Load(),
		Produced:         p.metrics.produced.Load(),
		Dropped:          p.metrics.dropped.Load(),
		Errors:           p.metrics.errors.Load(),
		AvgMappingTimeMs: float64(p.metrics.mappingNs.Load()) / 1e6,
	}
}

// AddObserver registers an observer (thread-safe).
func (p *Processor) AddObserver(obs Observer) {
	if obs == nil {
		return
	}
	p.observersMu.Lock()
	p.observers = append(p.observers, obs)
	p.observersMu.Unlock()
}

// RemoveObserver removes the first registered observer equal to obs.
// Observers of an uncomparable type, such as ObserverFunc, are never
// matched and the call is a no-op for them.
func (p *Processor) RemoveObserver(obs Observer) {
	if obs == nil || !reflect.TypeOf(obs).Comparable() {
		return
	}
	p.observersMu.Lock()
	defer p.observersMu.Unlock()

	for i, o := range p.observers {
		if !reflect.TypeOf(o).Comparable() {
			continue
		}
		if o == obs {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			break
		}
	}
}

// notify calls observers in registration order. Observer panics are swallowed.
func (p *Processor) notify(e Event) {
	p.observersMu.RLock()
	if len(p.observers) == 0 {
		p.observersMu.RUnlock()
		return
	}
	obs := make([]Observer, len(p.observers))
	copy(obs, p.observers)
	p.observersMu.RUnlock()

	for _, o := range obs {
		func() {
			defer func() { _ = recover() }()
			o.OnEvent(e)
		}()
	}
}

// recordMappingTime keeps an exponential moving average of mapping time.
func (p *Processor) recordMappingTime(ns int64) {
	const alpha = 0.2
	for {
		current := p.metrics.mappingNs.Load()
		next := ns
		if current != 0 {
			next = int64(float64(ns)*alpha + float64(current)*(1-alpha))
		}
		if p.metrics.mappingNs.CompareAndSwap(current, next) {
			return
		}
	}
}

// HeaderContentType is the header consulted when ContentType is absent.
const HeaderContentType = "content-type"

// normalizeContentType lowercases and strips parameters ("; charset=...").
func normalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
