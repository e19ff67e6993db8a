package xmapping

import "context"

// FuncMapper adapts plain functions holding user transformation logic to
// Mapper. A nil function drops every message in that direction.
type FuncMapper struct {
	MapperName string
	Inbound    func(ctx context.Context, msg *ExternalMessage) ([]*ProtocolMessage, error)
	Outbound   func(ctx context.Context, msg *ProtocolMessage) ([]*ExternalMessage, error)
}

var _ Mapper = FuncMapper{}

func (f FuncMapper) Name() string {
	if f.MapperName == "" {
		return "func"
	}
	return f.MapperName
}

func (f FuncMapper) MapInbound(ctx context.Context, msg *ExternalMessage) ([]*ProtocolMessage, error) {
	if f.Inbound == nil {
		return nil, nil
	}
	return f.Inbound(ctx, msg)
}

func (f FuncMapper) MapOutbound(ctx context.Context, msg *ProtocolMessage) ([]*ExternalMessage, error) {
	if f.Outbound == nil {
		return nil, nil
	}
	return f.Outbound(ctx, msg)
}
