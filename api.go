package xmapping

import (
	"context"
)

// Direction tells which way a message is being mapped.
type Direction string

const (
	// Inbound maps an external message into protocol messages.
	Inbound Direction = "inbound"
	// Outbound maps a protocol message into external messages.
	Outbound Direction = "outbound"
)

// Mapper is the Strategy that translates messages in both directions.
// Returning an empty slice and a nil error means "drop, do not forward".
type Mapper interface {
	Name() string
	MapInbound(ctx context.Context, msg *ExternalMessage) ([]*ProtocolMessage, error)
	MapOutbound(ctx context.Context, msg *ProtocolMessage) ([]*ExternalMessage, error)
}

// ContentTypeBlocklister is implemented by mappers that refuse inbound
// messages of certain content types.
type ContentTypeBlocklister interface {
	ContentTypeBlocklist() []string
}

// Codec is the Strategy for putting protocol messages on the wire.
type Codec interface {
	Marshal(msg *ProtocolMessage) ([]byte, error)
	Unmarshal(data []byte) (*ProtocolMessage, error)
	Name() string
}

// Invocation is a single mapping call travelling through the middleware
// chain. Exactly one of External/Protocol is the input, depending on
// Direction; the mapper fills the matching result slice.
type Invocation struct {
	Direction Direction
	Mapper    string

	External *ExternalMessage
	Protocol *ProtocolMessage

	ProtocolResults []*ProtocolMessage
	ExternalResults []*ExternalMessage
}

// Produced returns the number of result messages.
func (inv *Invocation) Produced() int {
	if inv.Direction == Inbound {
		return len(inv.ProtocolResults)
	}
	return len(inv.ExternalResults)
}

// Handler runs an Invocation.
type Handler func(ctx context.Context, inv *Invocation) error

// Middleware composes processing concerns around a Handler.
type Middleware func(next Handler) Handler

// Observer receives processor lifecycle events. Called synchronously.
type Observer interface {
	OnEvent(e Event)
}
