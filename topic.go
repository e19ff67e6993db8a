package xmapping

import (
	"fmt"
	"strings"
)

// Documented topic enumerations. BuildProtocolMessage does not enforce them.
const (
	GroupThings = "things"

	ChannelTwin = "twin"
	ChannelLive = "live"

	CriterionCommands = "commands"
	CriterionEvents   = "events"
	CriterionSearch   = "search"
	CriterionMessages = "messages"
	CriterionErrors   = "errors"

	ActionCreate   = "create"
	ActionRetrieve = "retrieve"
	ActionModify   = "modify"
	ActionDelete   = "delete"
)

const topicSegments = 6

var (
	knownGroups   = []string{GroupThings}
	knownChannels = []string{ChannelTwin, ChannelLive}
	knownCriteria = []string{CriterionCommands, CriterionEvents, CriterionSearch, CriterionMessages, CriterionErrors}
	knownActions  = []string{ActionCreate, ActionRetrieve, ActionModify, ActionDelete}
)

// Topic is the structured form of a protocol topic.
type Topic struct {
	Namespace string
	ID        string
	Group     string
	Channel   string
	Criterion string
	Action    string
}

// String joins the segments verbatim.
func (t Topic) String() string {
	return joinTopic(t.Namespace, t.ID, t.Group, t.Channel, t.Criterion, t.Action)
}

// ParseTopic splits s into its six segments. Segment contents are not
// checked; see Validate.
func ParseTopic(s string) (Topic, error) {
	parts := strings.Split(s, "/")
	if len(parts) != topicSegments {
		return Topic{}, fmt.Errorf("%w: %q has %d segments, want %d", ErrInvalidTopic, s, len(parts), topicSegments)
	}
	return Topic{
		Namespace: parts[0],
		ID:        parts[1],
		Group:     parts[2],
		Channel:   parts[3],
		Criterion: parts[4],
		Action:    parts[5],
	}, nil
}

// Validate reports the first segment outside its documented enumeration.
func (t Topic) Validate() error {
	checks := []struct {
		name  string
		value string
		known []string
	}{
		{"group", t.Group, knownGroups},
		{"channel", t.Channel, knownChannels},
		{"criterion", t.Criterion, knownCriteria},
		{"action", t.Action, knownActions},
	}
	for _, c := range checks {
		if !contains(c.known, c.value) {
			return ErrUnknownTopicSegment{Segment: c.name, Value: c.value}
		}
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
