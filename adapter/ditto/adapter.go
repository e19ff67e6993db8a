package ditto

import (
	"context"
	"fmt"

	"github.com/trickstertwo/xmapping"
)

const MapperName = "Ditto"

const (
	// ContentType is set on every outbound external message.
	ContentType = "application/vnd.eclipse.ditto+json"

	headerCorrelationID = "correlation-id"
)

func init() {
	if err := xmapping.RegisterMapper(MapperName, func(cfg map[string]any) (xmapping.Mapper, error) {
		return NewMapper(ConfigFromMap(cfg))
	}); err != nil {
		panic(fmt.Errorf("xmapping/ditto: failed to register mapper: %w", err))
	}
}

// Mapper expects external payloads to hold a JSON serialized protocol message.
type Mapper struct {
	cfg   Config
	codec xmapping.Codec
}

var (
	_ xmapping.Mapper                 = (*Mapper)(nil)
	_ xmapping.ContentTypeBlocklister = (*Mapper)(nil)
)

// NewMapper validates cfg and resolves its codec.
func NewMapper(cfg Config) (*Mapper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cd, err := xmapping.NewCodec(cfg.Codec)
	if err != nil {
		return nil, err
	}
	return &Mapper{cfg: cfg, codec: cd}, nil
}

func (m *Mapper) Name() string { return MapperName }

func (m *Mapper) ContentTypeBlocklist() []string { return m.cfg.ContentTypeBlocklist }

// MapInbound decodes the payload into exactly one protocol message.
func (m *Mapper) MapInbound(ctx context.Context, msg *xmapping.ExternalMessage) ([]*xmapping.ProtocolMessage, error) {
	payload, ok := msg.PayloadText()
	if !ok {
		return nil, xmapping.ErrMissingPayload
	}
	pm, err := m.codecFor(ctx).Unmarshal([]byte(payload))
	if err != nil {
		return nil, fmt.Errorf("ditto: inbound: %w", err)
	}
	return []*xmapping.ProtocolMessage{pm}, nil
}

// MapOutbound serializes msg as JSON text. Only the correlation id is
// carried over into the external headers.
func (m *Mapper) MapOutbound(ctx context.Context, msg *xmapping.ProtocolMessage) ([]*xmapping.ExternalMessage, error) {
	data, err := m.codecFor(ctx).Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("ditto: outbound: %w", err)
	}
	headers := xmapping.Headers{xmapping.HeaderContentType: ContentType}
	if cid := msg.Headers.Get(headerCorrelationID); cid != "" {
		headers[headerCorrelationID] = cid
	}
	return []*xmapping.ExternalMessage{
		xmapping.BuildExternalMessage(
			headers,
			xmapping.Some(string(data)),
			xmapping.None[[]byte](),
			xmapping.Some(ContentType),
		),
	}, nil
}

// codecFor prefers the processor's codec over the configured one.
func (m *Mapper) codecFor(ctx context.Context) xmapping.Codec {
	if c, ok := xmapping.CodecFromContext(ctx); ok {
		return c
	}
	return m.codec
}
