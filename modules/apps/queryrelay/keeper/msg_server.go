package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

var _ types.MsgServer = (*msgServer)(nil)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the query relay MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// ForwardQuery defines a rpc handler method for MsgForwardQuery.
func (k msgServer) ForwardQuery(goCtx context.Context, msg *types.MsgForwardQuery) (*types.MsgForwardQueryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	return k.forward(ctx, msg.ChannelID, types.NewQueryPacketData(msg.Callback, msg.Requests...))
}

// ForwardSpotPriceQuery defines a rpc handler method for MsgForwardSpotPriceQuery.
func (k msgServer) ForwardSpotPriceQuery(goCtx context.Context, msg *types.MsgForwardSpotPriceQuery) (*types.MsgForwardQueryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	return k.forward(ctx, msg.ChannelID, types.NewQueryPacketData(msg.Callback, msg.Query()))
}

func (k msgServer) forward(ctx sdk.Context, channelID string, data types.QueryPacketData) (*types.MsgForwardQueryResponse, error) {
	if channelID == "" {
		latest, found := k.GetLatestChannelID(ctx)
		if !found {
			return nil, errorsmod.Wrap(types.ErrNoActiveChannel, "no channel id given and no channel has been connected")
		}
		channelID = latest
	}

	sequence, err := k.SendQuery(ctx, k.GetPort(ctx), channelID, data)
	if err != nil {
		return nil, err
	}

	return &types.MsgForwardQueryResponse{
		ChannelID: channelID,
		Sequence:  sequence,
	}, nil
}
