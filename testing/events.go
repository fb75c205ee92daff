package ibctesting

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	testifysuite "github.com/stretchr/testify/suite"

	abci "github.com/cometbft/cometbft/abci/types"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

// SentQuery is the query packet described by a send_query event.
type SentQuery struct {
	PortID           string
	ChannelID        string
	Sequence         uint64
	Callback         string
	NumRequests      int
	TimeoutTimestamp uint64
}

// ReceivedQuery is the outcome of a query packet described by a query_relay_packet event.
type ReceivedQuery struct {
	ChannelID   string
	Sequence    uint64
	NumRequests int
	NumFailures int
	AckSuccess  bool
	AckError    string
}

// ParseSentQueryFromEvents parses the events emitted by SendQuery and returns the first
// query packet found.
func ParseSentQueryFromEvents(events []abci.Event) (SentQuery, error) {
	ferr := func(err error) (SentQuery, error) {
		return SentQuery{}, fmt.Errorf("ibctesting.ParseSentQueryFromEvents: %w", err)
	}

	for _, ev := range events {
		if ev.Type != types.EventTypeSendQuery {
			continue
		}

		var (
			query SentQuery
			err   error
		)
		for _, attr := range ev.Attributes {
			switch attr.Key {
			case types.AttributeKeyPortID:
				query.PortID = attr.Value
			case types.AttributeKeyChannelID:
				query.ChannelID = attr.Value
			case types.AttributeKeySequence:
				query.Sequence, err = strconv.ParseUint(attr.Value, 10, 64)
			case types.AttributeKeyCallback:
				query.Callback = attr.Value
			case types.AttributeKeyNumRequests:
				query.NumRequests, err = strconv.Atoi(attr.Value)
			case types.AttributeKeyTimeoutTimestamp:
				query.TimeoutTimestamp, err = strconv.ParseUint(attr.Value, 10, 64)
			}

			if err != nil {
				return ferr(err)
			}
		}

		return query, nil
	}

	return ferr(errors.New("send query event not found"))
}

// ParseReceivedQueryFromEvents parses the events emitted by OnRecvPacket and returns the
// first query packet outcome found.
func ParseReceivedQueryFromEvents(events []abci.Event) (ReceivedQuery, error) {
	ferr := func(err error) (ReceivedQuery, error) {
		return ReceivedQuery{}, fmt.Errorf("ibctesting.ParseReceivedQueryFromEvents: %w", err)
	}

	for _, ev := range events {
		if ev.Type != types.EventTypePacket {
			continue
		}

		// acknowledgement events share the type and carry the callback
		if containsAttributeKey(ev.Attributes, types.AttributeKeyCallback) {
			continue
		}

		var (
			query ReceivedQuery
			err   error
		)
		for _, attr := range ev.Attributes {
			switch attr.Key {
			case types.AttributeKeyChannelID:
				query.ChannelID = attr.Value
			case types.AttributeKeySequence:
				query.Sequence, err = strconv.ParseUint(attr.Value, 10, 64)
			case types.AttributeKeyNumRequests:
				query.NumRequests, err = strconv.Atoi(attr.Value)
			case types.AttributeKeyNumFailures:
				query.NumFailures, err = strconv.Atoi(attr.Value)
			case types.AttributeKeyAckSuccess:
				query.AckSuccess, err = strconv.ParseBool(attr.Value)
			case types.AttributeKeyAckError:
				query.AckError = attr.Value
			}

			if err != nil {
				return ferr(err)
			}
		}

		return query, nil
	}

	return ferr(errors.New("query relay packet event not found"))
}

// AssertEvents asserts that expected events are present in the actual events.
func AssertEvents(
	suite *testifysuite.Suite,
	expected []abci.Event,
	actual []abci.Event,
) {
	foundEvents := make(map[int]bool)

	for i, expectedEvent := range expected {
		for _, actualEvent := range actual {
			if shouldProcessEvent(expectedEvent, actualEvent) {
				attributeMatch := true
				for _, expectedAttr := range expectedEvent.Attributes {
					// any expected attributes that are not contained in the actual events will cause this event
					// not to match
					attributeMatch = attributeMatch && containsAttribute(actualEvent.Attributes, expectedAttr.Key, expectedAttr.Value)
				}

				if attributeMatch {
					foundEvents[i] = true
				}
			}
		}
	}

	for i, expectedEvent := range expected {
		suite.Require().True(foundEvents[i], "event: %s was not found in events", expectedEvent.Type)
	}
}

// shouldProcessEvent returns true if the given expected event should be processed based on event type.
func shouldProcessEvent(expectedEvent abci.Event, actualEvent abci.Event) bool {
	if expectedEvent.Type != actualEvent.Type {
		return false
	}
	// events delivered through a transaction carry an extra msg_index attribute
	if containsAttributeKey(actualEvent.Attributes, "msg_index") {
		return len(expectedEvent.Attributes) == len(actualEvent.Attributes)-1
	}

	return len(expectedEvent.Attributes) == len(actualEvent.Attributes)
}

// containsAttribute returns true if the given key/value pair is contained in the given attributes.
// NOTE: this ignores the indexed field, which can be set or unset depending on how the events are retrieved.
func containsAttribute(attrs []abci.EventAttribute, key, value string) bool {
	return slices.ContainsFunc(attrs, func(attr abci.EventAttribute) bool {
		return attr.Key == key && attr.Value == value
	})
}

// containsAttributeKey returns true if the given key is contained in the given attributes.
func containsAttributeKey(attrs []abci.EventAttribute, key string) bool {
	return slices.ContainsFunc(attrs, func(attr abci.EventAttribute) bool {
		return attr.Key == key
	})
}
