package binary

import (
	"context"
	"fmt"

	"github.com/trickstertwo/xmapping"
)

const MapperName = "Binary"

func init() {
	if err := xmapping.RegisterMapper(MapperName, func(cfg map[string]any) (xmapping.Mapper, error) {
		return NewMapper(ConfigFromMap(cfg))
	}); err != nil {
		panic(fmt.Errorf("xmapping/binary: failed to register mapper: %w", err))
	}
}

// Mapper carries opaque device payloads as single-byte text (or a
// PortableBuffer) in the protocol value.
type Mapper struct {
	cfg Config
}

var _ xmapping.Mapper = (*Mapper)(nil)

func NewMapper(cfg Config) (*Mapper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Mapper{cfg: cfg}, nil
}

func (m *Mapper) Name() string { return MapperName }

// MapInbound builds one protocol message from the payload. Messages
// without any payload or without an ID header are dropped.
func (m *Mapper) MapInbound(ctx context.Context, msg *xmapping.ExternalMessage) ([]*xmapping.ProtocolMessage, error) {
	var raw []byte
	if b, ok := msg.BytePayload.Get(); ok {
		raw = b
	} else if s, ok := msg.TextPayload.Get(); ok {
		raw = xmapping.TextToBytes(s)
	} else {
		debug(ctx, "no payload, dropping")
		return nil, nil
	}

	id := msg.Headers.Get(m.cfg.IDHeader)
	if id == "" {
		debug(ctx, "no "+m.cfg.IDHeader+" header, dropping")
		return nil, nil
	}

	var value any
	if m.cfg.ValueAsBuffer {
		value = xmapping.WrapAsPortableBuffer(raw)
	} else {
		value = xmapping.BytesToText(raw)
	}

	namespace := msg.Headers.Get(m.cfg.NamespaceHeader)
	if namespace == "" {
		namespace = m.cfg.DefaultNamespace
	}

	return []*xmapping.ProtocolMessage{
		xmapping.BuildProtocolMessage(
			namespace,
			id,
			m.cfg.Group,
			m.cfg.Channel,
			m.cfg.Criterion,
			m.cfg.Action,
			m.cfg.Path,
			msg.Headers,
			xmapping.Some(value),
			xmapping.None[int](),
			xmapping.None[map[string]any](),
		),
	}, nil
}

// MapOutbound renders the protocol value as a byte payload. Text values
// go through TextToBytes; messages without a value are dropped.
func (m *Mapper) MapOutbound(_ context.Context, msg *xmapping.ProtocolMessage) ([]*xmapping.ExternalMessage, error) {
	v, ok := msg.Value.Get()
	if !ok || v == nil {
		return nil, nil
	}

	var raw []byte
	switch val := v.(type) {
	case xmapping.PortableBuffer:
		raw = val.Bytes()
	case []byte:
		raw = xmapping.WrapAsPortableBuffer(val).Bytes()
	case string:
		raw = xmapping.TextToBytes(val)
	default:
		raw = xmapping.TextToBytes(fmt.Sprint(val))
	}

	headers := msg.Headers.Copy()
	if headers == nil {
		headers = xmapping.Headers{}
	}
	headers[xmapping.HeaderContentType] = m.cfg.ContentType

	return []*xmapping.ExternalMessage{
		xmapping.BuildExternalMessage(
			headers,
			xmapping.None[string](),
			xmapping.Some(raw),
			xmapping.Some(m.cfg.ContentType),
		),
	}, nil
}

func debug(ctx context.Context, msg string) {
	if lg, ok := xmapping.LoggerFromContext(ctx); ok {
		lg.Debug().Str("mapper", MapperName).Msg(msg)
	}
}
