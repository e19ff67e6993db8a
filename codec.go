package xmapping

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// JSONCodec encodes ProtocolMessages as Ditto Protocol JSON. Absent
// optionals are omitted; a present nil value or extra is written as null
// and decodes back as present. Non-string header values (booleans,
// numbers, arrays) decode to their compact JSON text.
type JSONCodec struct{}

type jsonEnvelope struct {
	Topic   string            `json:"topic"`
	Path    string            `json:"path"`
	Headers map[string]string `json:"headers,omitempty"`
	Value   json.RawMessage   `json:"value,omitempty"`
	Status  *int              `json:"status,omitempty"`
	Extra   json.RawMessage   `json:"extra,omitempty"`
}

// jsonInbound differs from jsonEnvelope only in accepting any JSON value
// as a header.
type jsonInbound struct {
	Topic   string                     `json:"topic"`
	Path    string                     `json:"path"`
	Headers map[string]json.RawMessage `json:"headers"`
	Value   json.RawMessage            `json:"value"`
	Status  *int                       `json:"status"`
	Extra   json.RawMessage            `json:"extra"`
}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg *ProtocolMessage) ([]byte, error) {
	if msg == nil {
		return nil, ErrNilMessage
	}
	env := jsonEnvelope{
		Topic:   msg.Topic,
		Path:    msg.Path,
		Headers: msg.Headers,
	}
	if v, ok := msg.Value.Get(); ok {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("xmapping: encode value: %w", err)
		}
		env.Value = raw
	}
	if s, ok := msg.Status.Get(); ok {
		env.Status = &s
	}
	if x, ok := msg.Extra.Get(); ok {
		raw, err := json.Marshal(x)
		if err != nil {
			return nil, fmt.Errorf("xmapping: encode extra: %w", err)
		}
		env.Extra = raw
	}
	return json.Marshal(env)
}

func (JSONCodec) Unmarshal(data []byte) (*ProtocolMessage, error) {
	var env jsonInbound
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("xmapping: decode protocol message: %w", err)
	}
	headers, err := decodeHeaders(env.Headers)
	if err != nil {
		return nil, err
	}
	msg := &ProtocolMessage{
		Topic:   env.Topic,
		Path:    env.Path,
		Headers: headers,
	}
	if len(env.Value) > 0 {
		var v any
		if err := json.Unmarshal(env.Value, &v); err != nil {
			return nil, fmt.Errorf("xmapping: decode value: %w", err)
		}
		msg.Value = Some(v)
	}
	if env.Status != nil {
		msg.Status = Some(*env.Status)
	}
	if len(env.Extra) > 0 {
		var x map[string]any
		if err := json.Unmarshal(env.Extra, &x); err != nil {
			return nil, fmt.Errorf("xmapping: decode extra: %w", err)
		}
		msg.Extra = Some(x)
	}
	return msg, nil
}

// decodeHeaders unquotes JSON strings and keeps every other value as its
// compact JSON text, so false becomes "false".
func decodeHeaders(raw map[string]json.RawMessage) (Headers, error) {
	if raw == nil {
		return nil, nil
	}
	h := make(Headers, len(raw))
	for k, v := range raw {
		if len(v) > 0 && v[0] == '"' {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return nil, fmt.Errorf("xmapping: decode header %q: %w", k, err)
			}
			h[k] = s
			continue
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err != nil {
			return nil, fmt.Errorf("xmapping: decode header %q: %w", k, err)
		}
		h[k] = buf.String()
	}
	return h, nil
}

// CodecFactory constructs codecs via Factory pattern.
type CodecFactory func() Codec

var (
	codecRegistryMu sync.RWMutex
	codecRegistry   = map[string]CodecFactory{
		"json": func() Codec { return JSONCodec{} },
	}
)

// RegisterCodec registers a codec factory by name.
func RegisterCodec(name string, factory CodecFactory) error {
	if name == "" {
		return errors.New("codec name must not be empty")
	}
	if factory == nil {
		return errors.New("codec factory must not be nil")
	}
	codecRegistryMu.Lock()
	codecRegistry[name] = factory
	codecRegistryMu.Unlock()
	return nil
}

// NewCodec constructs a codec by name.
func NewCodec(name string) (Codec, error) {
	codecRegistryMu.RLock()
	f, ok := codecRegistry[name]
	codecRegistryMu.RUnlock()
	if !ok {
		return nil, ErrUnknownCodec{name: name}
	}
	return f(), nil
}
