package xmapping_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xmapping"
)

func TestParseTopic_RoundTrip(t *testing.T) {
	const s = "org.eclipse.ditto/thing-1/things/live/messages/retrieve"
	topic, err := xmapping.ParseTopic(s)
	require.NoError(t, err)

	assert.Equal(t, xmapping.Topic{
		Namespace: "org.eclipse.ditto",
		ID:        "thing-1",
		Group:     xmapping.GroupThings,
		Channel:   xmapping.ChannelLive,
		Criterion: xmapping.CriterionMessages,
		Action:    xmapping.ActionRetrieve,
	}, topic)
	assert.Equal(t, s, topic.String())
	assert.NoError(t, topic.Validate())
}

func TestParseTopic_SegmentCount(t *testing.T) {
	for _, s := range []string{"", "a/b/c/d/e", "a/b/c/d/e/f/g"} {
		_, err := xmapping.ParseTopic(s)
		assert.ErrorIs(t, err, xmapping.ErrInvalidTopic, "topic %q", s)
	}

	topic, err := xmapping.ParseTopic("/////")
	require.NoError(t, err)
	assert.Equal(t, xmapping.Topic{}, topic)
}

func TestTopic_Validate(t *testing.T) {
	valid := xmapping.Topic{Namespace: "ns", ID: "id", Group: "things", Channel: "twin", Criterion: "events", Action: "create"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		mutate  func(*xmapping.Topic)
		segment string
	}{
		{func(tp *xmapping.Topic) { tp.Group = "policies" }, "group"},
		{func(tp *xmapping.Topic) { tp.Channel = "TWIN" }, "channel"},
		{func(tp *xmapping.Topic) { tp.Criterion = "" }, "criterion"},
		{func(tp *xmapping.Topic) { tp.Action = "merge" }, "action"},
	}
	for _, tt := range tests {
		tp := valid
		tt.mutate(&tp)
		err := tp.Validate()

		var segErr xmapping.ErrUnknownTopicSegment
		require.True(t, errors.As(err, &segErr), "segment %s", tt.segment)
		assert.Equal(t, tt.segment, segErr.Segment)
	}
}
