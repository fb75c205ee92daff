package types

import (
	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
)

// ICS4Wrapper defines the expected ICS4Wrapper for sending query packets
type ICS4Wrapper interface {
	SendPacket(
		ctx sdk.Context,
		sourcePort string,
		sourceChannel string,
		timeoutHeight clienttypes.Height,
		timeoutTimestamp uint64,
		data []byte,
	) (sequence uint64, err error)
	GetAppVersion(ctx sdk.Context, portID, channelID string) (string, bool)
}

// QueryRouter routes a fully-qualified query path to its handler. It is satisfied by
// *baseapp.GRPCQueryRouter. A nil handler means the path is unknown.
type QueryRouter interface {
	Route(path string) baseapp.GRPCQueryHandler
}

// CallbackHandler receives the outcome of a query packet sent from this chain, once it
// has been acknowledged or has timed out.
type CallbackHandler interface {
	OnQueryResponse(ctx sdk.Context, response QueryResponse) error
}
