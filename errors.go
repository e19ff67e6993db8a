package xmapping

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTopic        = errors.New("xmapping: invalid topic")
	ErrNoMapperConfigured  = errors.New("xmapping: no mapper configured")
	ErrNilMessage          = errors.New("xmapping: nil message")
	ErrMissingPayload      = errors.New("xmapping: message has no payload")
	ErrMapperPanic         = errors.New("xmapping: mapper panic")
	ErrNegativeOffset      = errors.New("xmapping: negative offset")
	ErrConflictingPayloads = errors.New("xmapping: both text and byte payload set")
)

var ErrDefaultProcessorNotInitialized = fmt.Errorf("xmapping default processor not initialized")

type ErrUnknownMapper struct{ name string }

func (e ErrUnknownMapper) Error() string { return fmt.Sprintf("unknown mapper: %s", e.name) }

type ErrUnknownCodec struct{ name string }

func (e ErrUnknownCodec) Error() string { return fmt.Sprintf("unknown codec: %s", e.name) }

// ErrUnknownTopicSegment is returned by Topic.Validate.
type ErrUnknownTopicSegment struct {
	Segment string
	Value   string
}

func (e ErrUnknownTopicSegment) Error() string {
	return fmt.Sprintf("xmapping: unknown topic %s %q", e.Segment, e.Value)
}
