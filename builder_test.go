package xmapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xmapping"
)

func TestBuildProtocolMessage_Topic(t *testing.T) {
	headers := xmapping.Headers{"correlation-id": "c-1"}
	msg := xmapping.BuildProtocolMessage(
		"org.eclipse.ditto", "thing-1", "things", "twin", "commands", "modify",
		"/attributes/location",
		headers,
		xmapping.Some[any](map[string]any{"lat": 1.5}),
		xmapping.Some(204),
		xmapping.Some(map[string]any{"attributes": map[string]any{}}),
	)

	assert.Equal(t, "org.eclipse.ditto/thing-1/things/twin/commands/modify", msg.Topic)
	assert.Equal(t, "/attributes/location", msg.Path)
	assert.Equal(t, "c-1", msg.Headers.Get("correlation-id"))

	status, ok := msg.Status.Get()
	require.True(t, ok)
	assert.Equal(t, 204, status)
	assert.True(t, msg.Value.IsPresent())
	assert.True(t, msg.Extra.IsPresent())
}

func TestBuildProtocolMessage_NoEnumerationCheck(t *testing.T) {
	msg := xmapping.BuildProtocolMessage("ns", "id", "policies", "radio", "gossip", "explode", "", nil,
		xmapping.None[any](), xmapping.None[int](), xmapping.None[map[string]any]())

	assert.Equal(t, "ns/id/policies/radio/gossip/explode", msg.Topic)

	topic, err := xmapping.ParseTopic(msg.Topic)
	require.NoError(t, err)
	assert.Error(t, topic.Validate())
}

func TestBuildProtocolMessage_Empty(t *testing.T) {
	msg := xmapping.BuildProtocolMessage("", "", "", "", "", "", "", nil,
		xmapping.None[any](), xmapping.None[int](), xmapping.None[map[string]any]())

	require.NotNil(t, msg)
	assert.Equal(t, "/////", msg.Topic)
	assert.Nil(t, msg.Headers)
	assert.False(t, msg.Value.IsPresent())
	assert.False(t, msg.Status.IsPresent())
	assert.False(t, msg.Extra.IsPresent())
}

func TestBuildProtocolMessage_FreshRecord(t *testing.T) {
	build := func() *xmapping.ProtocolMessage {
		return xmapping.BuildProtocolMessage("ns", "id", "things", "live", "events", "create", "/", nil,
			xmapping.None[any](), xmapping.None[int](), xmapping.None[map[string]any]())
	}
	a, b := build(), build()
	assert.NotSame(t, a, b)
	assert.Equal(t, a, b)
}

func TestBuildProtocolMessage_PresentNilValue(t *testing.T) {
	msg := xmapping.BuildProtocolMessage("ns", "id", "things", "twin", "commands", "delete", "/", nil,
		xmapping.Some[any](nil), xmapping.None[int](), xmapping.None[map[string]any]())

	v, ok := msg.Value.Get()
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestBuildExternalMessage_BothPayloads(t *testing.T) {
	headers := xmapping.Headers{"a": "1"}
	msg := xmapping.BuildExternalMessage(headers,
		xmapping.Some("text"),
		xmapping.Some([]byte{0x01, 0x02}),
		xmapping.Some("text/plain"))

	require.NotNil(t, msg)
	assert.True(t, msg.HasConflictingPayloads())
	txt, _ := msg.TextPayload.Get()
	assert.Equal(t, "text", txt)
	raw, _ := msg.BytePayload.Get()
	assert.Equal(t, []byte{0x01, 0x02}, raw)
	ct, _ := msg.ContentType.Get()
	assert.Equal(t, "text/plain", ct)
}

func TestBuildExternalMessage_HeadersByReference(t *testing.T) {
	headers := xmapping.Headers{"a": "1"}
	msg := xmapping.BuildExternalMessage(headers, xmapping.None[string](), xmapping.None[[]byte](), xmapping.None[string]())

	headers["b"] = "2"
	assert.Equal(t, "2", msg.Headers.Get("b"))
}

func TestBuildExternalMessage_Empty(t *testing.T) {
	msg := xmapping.BuildExternalMessage(nil, xmapping.None[string](), xmapping.None[[]byte](), xmapping.None[string]())

	require.NotNil(t, msg)
	assert.False(t, msg.HasConflictingPayloads())
	_, ok := msg.PayloadText()
	assert.False(t, ok)
	assert.Equal(t, "", msg.Headers.Get("missing"))
}

func TestExternalMessage_PayloadText(t *testing.T) {
	msg := xmapping.BuildExternalMessage(nil, xmapping.None[string](), xmapping.Some([]byte("héllo")), xmapping.None[string]())
	s, ok := msg.PayloadText()
	require.True(t, ok)
	assert.Equal(t, "héllo", s)

	msg.TextPayload = xmapping.Some("wins")
	s, _ = msg.PayloadText()
	assert.Equal(t, "wins", s)
}

func TestOptional(t *testing.T) {
	var zero xmapping.Optional[string]
	assert.False(t, zero.IsPresent())
	assert.Equal(t, "fallback", zero.OrElse("fallback"))

	some := xmapping.Some("")
	assert.True(t, some.IsPresent())
	assert.Equal(t, "", some.OrElse("fallback"))
}

func TestHeaders_Copy(t *testing.T) {
	var nilHeaders xmapping.Headers
	assert.Nil(t, nilHeaders.Copy())

	h := xmapping.Headers{"k": "v"}
	cp := h.Copy()
	cp["k"] = "changed"
	assert.Equal(t, "v", h["k"])
}
