package xmapping

// Headers carries protocol or transport header values.
type Headers map[string]string

// Get returns the value for key, or "" if missing. Safe on a nil map.
func (h Headers) Get(key string) string {
	if h == nil {
		return ""
	}
	return h[key]
}

// Copy returns an independent copy of h. A nil map copies to nil.
func (h Headers) Copy() Headers {
	if h == nil {
		return nil
	}
	cp := make(Headers, len(h))
	for k, v := range h {
		cp[k] = v
	}
	return cp
}

// ProtocolMessage is the uniform internal representation of a signal,
// regardless of which transport it came from.
type ProtocolMessage struct {
	// Topic is <namespace>/<id>/<group>/<channel>/<criterion>/<action>.
	Topic string
	// Path points at the affected sub-resource, e.g. "/attributes".
	Path string
	// Headers are passed through unmodified.
	Headers Headers
	// Value is the payload being created, changed or reported.
	Value Optional[any]
	// Status is the result code of a response; absent for commands.
	Status Optional[int]
	// Extra holds enrichment data selected via extra fields.
	Extra Optional[map[string]any]
}

// ExternalMessage is a message in its transport-specific shape.
type ExternalMessage struct {
	Headers     Headers
	TextPayload Optional[string]
	BytePayload Optional[[]byte]
	// ContentType describes whichever payload is present.
	ContentType Optional[string]
}

// HasConflictingPayloads reports whether both text and byte payloads are set.
// Building such a message is allowed; callers decide what to do with it.
func (m *ExternalMessage) HasConflictingPayloads() bool {
	return m.TextPayload.IsPresent() && m.BytePayload.IsPresent()
}

// PayloadText returns the text payload, falling back to the byte payload
// read as UTF-8.
func (m *ExternalMessage) PayloadText() (string, bool) {
	if s, ok := m.TextPayload.Get(); ok {
		return s, true
	}
	if b, ok := m.BytePayload.Get(); ok {
		return string(b), true
	}
	return "", false
}
