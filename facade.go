package xmapping

import (
	"context"
	"sync"
)

var (
	defaultProcessor   *Processor
	defaultProcessorMu sync.RWMutex
)

// Default returns the process-wide Processor installed by SetDefault or an
// adapter's Use.
func Default() (*Processor, error) {
	defaultProcessorMu.RLock()
	defer defaultProcessorMu.RUnlock()
	if defaultProcessor == nil {
		return nil, ErrDefaultProcessorNotInitialized
	}
	return defaultProcessor, nil
}

// SetDefault replaces the process-wide default Processor.
func SetDefault(p *Processor) {
	if p == nil {
		panic("xmapping: SetDefault called with nil Processor")
	}
	defaultProcessorMu.Lock()
	defaultProcessor = p
	defaultProcessorMu.Unlock()
}

// MapInbound is the Facade using the default processor.
func MapInbound(ctx context.Context, msg *ExternalMessage) ([]*ProtocolMessage, error) {
	p, err := Default()
	if err != nil {
		return nil, err
	}
	return p.ProcessInbound(ctx, msg)
}

// MapOutbound is the Facade using the default processor.
func MapOutbound(ctx context.Context, msg *ProtocolMessage) ([]*ExternalMessage, error) {
	p, err := Default()
	if err != nil {
		return nil, err
	}
	return p.ProcessOutbound(ctx, msg)
}
