package types

import "context"

// QuerySpotPriceRequest asks the local chain for a spot price without going through a
// channel.
type QuerySpotPriceRequest struct {
	PoolID        uint64 `json:"pool_id"`
	TokenInDenom  string `json:"token_in_denom"`
	TokenOutDenom string `json:"token_out_denom"`
	WithSwapFee   bool   `json:"with_swap_fee,omitempty"`
}

// QuerySpotPriceResponse carries the raw query response and, when it could be decoded,
// the spot price it contains.
type QuerySpotPriceResponse struct {
	SpotPrice string `json:"spot_price,omitempty"`
	Data      []byte `json:"data"`
}

// QueryPendingChannelRequest is the request type for the PendingChannel query.
type QueryPendingChannelRequest struct {
	ChannelID string `json:"channel_id"`
}

// QueryPendingChannelResponse is the response type for the PendingChannel query.
type QueryPendingChannelResponse struct {
	Channel PendingChannel `json:"channel"`
}

// QueryPendingChannelsRequest is the request type for the PendingChannels query.
type QueryPendingChannelsRequest struct{}

// QueryPendingChannelsResponse is the response type for the PendingChannels query.
type QueryPendingChannelsResponse struct {
	Channels        []PendingChannel `json:"channels"`
	LatestChannelID string           `json:"latest_channel_id,omitempty"`
}

// QueryParamsRequest is the request type for the Params query.
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Params query.
type QueryParamsResponse struct {
	PortID         string   `json:"port_id"`
	PacketLifetime uint64   `json:"packet_lifetime"`
	AllowQueries   []string `json:"allow_queries,omitempty"`
}

// QueryServer is the server API for the query relay queries.
type QueryServer interface {
	SpotPrice(context.Context, *QuerySpotPriceRequest) (*QuerySpotPriceResponse, error)
	PendingChannel(context.Context, *QueryPendingChannelRequest) (*QueryPendingChannelResponse, error)
	PendingChannels(context.Context, *QueryPendingChannelsRequest) (*QueryPendingChannelsResponse, error)
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
}
