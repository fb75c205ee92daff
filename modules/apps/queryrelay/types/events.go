package types

// query relay events
const (
	EventTypeSendQuery      = "send_query"
	EventTypePacket         = "query_relay_packet"
	EventTypeTimeout        = "timeout"
	EventTypeChannelConnect = "query_relay_channel_connect"
	EventTypeChannelClose   = "query_relay_channel_close"

	AttributeKeyChannelID        = "channel_id"
	AttributeKeyPortID           = "port_id"
	AttributeKeyCallback         = "callback"
	AttributeKeySequence         = "sequence"
	AttributeKeyNumRequests      = "num_requests"
	AttributeKeyNumFailures      = "num_failures"
	AttributeKeyTimeoutTimestamp = "timeout_timestamp"
	AttributeKeyAckSuccess       = "success"
	AttributeKeyAckError         = "error"
)
