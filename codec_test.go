package xmapping_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xmapping"
)

func TestJSONCodec_RoundTrip(t *testing.T) {
	c := xmapping.JSONCodec{}
	orig := xmapping.BuildProtocolMessage(
		"org.eclipse.ditto", "thing-1", "things", "twin", "commands", "modify",
		"/features/temp/properties/value",
		xmapping.Headers{"correlation-id": "abc"},
		xmapping.Some[any](21.5),
		xmapping.Some(204),
		xmapping.Some(map[string]any{"attributes": map[string]any{"room": "kitchen"}}),
	)

	data, err := c.Marshal(orig)
	require.NoError(t, err)

	got, err := c.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestJSONCodec_AbsentFieldsOmitted(t *testing.T) {
	c := xmapping.JSONCodec{}
	msg := xmapping.BuildProtocolMessage("ns", "id", "things", "twin", "commands", "retrieve", "/", nil,
		xmapping.None[any](), xmapping.None[int](), xmapping.None[map[string]any]())

	data, err := c.Marshal(msg)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, map[string]any{"topic": "ns/id/things/twin/commands/retrieve", "path": "/"}, raw)

	got, err := c.Unmarshal(data)
	require.NoError(t, err)
	assert.False(t, got.Value.IsPresent())
	assert.False(t, got.Status.IsPresent())
	assert.False(t, got.Extra.IsPresent())
}

func TestJSONCodec_NullValueIsPresent(t *testing.T) {
	c := xmapping.JSONCodec{}
	msg := &xmapping.ProtocolMessage{Topic: "a/b/things/twin/commands/delete", Path: "/", Value: xmapping.Some[any](nil)}

	data, err := c.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"topic":"a/b/things/twin/commands/delete","path":"/","value":null}`, string(data))

	got, err := c.Unmarshal(data)
	require.NoError(t, err)
	v, ok := got.Value.Get()
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestJSONCodec_NullExtraIsPresent(t *testing.T) {
	c := xmapping.JSONCodec{}
	msg := &xmapping.ProtocolMessage{Topic: "a/b/things/twin/events/deleted", Path: "/", Extra: xmapping.Some[map[string]any](nil)}

	data, err := c.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"topic":"a/b/things/twin/events/deleted","path":"/","extra":null}`, string(data))

	got, err := c.Unmarshal(data)
	require.NoError(t, err)
	x, ok := got.Extra.Get()
	assert.True(t, ok)
	assert.Nil(t, x)
}

func TestJSONCodec_NonStringHeaders(t *testing.T) {
	c := xmapping.JSONCodec{}
	got, err := c.Unmarshal([]byte(`{
		"topic": "ns/id/things/twin/commands/modify",
		"path": "/",
		"headers": {
			"correlation-id": "c-1",
			"response-required": false,
			"timeout": 60,
			"requested-acks": [ "twin-persisted", "live-response" ]
		}
	}`))
	require.NoError(t, err)
	assert.Equal(t, xmapping.Headers{
		"correlation-id":    "c-1",
		"response-required": "false",
		"timeout":           "60",
		"requested-acks":    `["twin-persisted","live-response"]`,
	}, got.Headers)
}

func TestJSONCodec_Errors(t *testing.T) {
	c := xmapping.JSONCodec{}

	_, err := c.Marshal(nil)
	assert.ErrorIs(t, err, xmapping.ErrNilMessage)

	_, err = c.Marshal(&xmapping.ProtocolMessage{Value: xmapping.Some[any](make(chan int))})
	assert.Error(t, err)

	_, err = c.Unmarshal([]byte("not-json"))
	assert.Error(t, err)

	_, err = c.Unmarshal([]byte(`{"topic":"a","extra":[1,2]}`))
	assert.Error(t, err)
}

func TestCodecRegistry(t *testing.T) {
	c, err := xmapping.NewCodec("json")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name())

	_, err = xmapping.NewCodec("protobuf")
	var unknown xmapping.ErrUnknownCodec
	assert.ErrorAs(t, err, &unknown)

	assert.Error(t, xmapping.RegisterCodec("", func() xmapping.Codec { return xmapping.JSONCodec{} }))
	assert.Error(t, xmapping.RegisterCodec("x", nil))
	require.NoError(t, xmapping.RegisterCodec("json-alias", func() xmapping.Codec { return xmapping.JSONCodec{} }))

	c, err = xmapping.NewCodec("json-alias")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name())
}
