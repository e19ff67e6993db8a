package xmapping

import "strings"

// BuildProtocolMessage assembles a ProtocolMessage from discrete fields.
//
// The six topic segments are joined verbatim with "/". Group, channel,
// criterion and action are documented enumerations (see the Group*,
// Channel*, Criterion* and Action* constants) but are not checked here;
// use Topic.Validate when enforcement is wanted. The function never fails
// and returns a fresh message on every call.
func BuildProtocolMessage(
	namespace, id, group, channel, criterion, action string,
	path string,
	headers Headers,
	value Optional[any],
	status Optional[int],
	extra Optional[map[string]any],
) *ProtocolMessage {
	return &ProtocolMessage{
		Topic:   joinTopic(namespace, id, group, channel, criterion, action),
		Path:    path,
		Headers: headers,
		Value:   value,
		Status:  status,
		Extra:   extra,
	}
}

// BuildExternalMessage assembles an ExternalMessage. headers is stored by
// reference. Setting both payloads is accepted; nothing is normalized
// against contentType.
func BuildExternalMessage(
	headers Headers,
	textPayload Optional[string],
	bytePayload Optional[[]byte],
	contentType Optional[string],
) *ExternalMessage {
	return &ExternalMessage{
		Headers:     headers,
		TextPayload: textPayload,
		BytePayload: bytePayload,
		ContentType: contentType,
	}
}

func joinTopic(namespace, id, group, channel, criterion, action string) string {
	var sb strings.Builder
	sb.Grow(len(namespace) + len(id) + len(group) + len(channel) + len(criterion) + len(action) + 5)
	sb.WriteString(namespace)
	sb.WriteByte('/')
	sb.WriteString(id)
	sb.WriteByte('/')
	sb.WriteString(group)
	sb.WriteByte('/')
	sb.WriteString(channel)
	sb.WriteByte('/')
	sb.WriteString(criterion)
	sb.WriteByte('/')
	sb.WriteString(action)
	return sb.String()
}
