package keeper

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/notional-labs/ibc-query-relay/internal/validate"
	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

var _ types.QueryServer = (*Keeper)(nil)

// SpotPrice implements the Query/SpotPrice gRPC method. It runs the spot price query
// against the local chain without sending a packet.
func (k Keeper) SpotPrice(goCtx context.Context, req *types.QuerySpotPriceRequest) (*types.QuerySpotPriceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if err := validate.GRPCSpotPriceRequest(req.PoolID, req.TokenInDenom, req.TokenOutDenom); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	query := types.NewSpotPriceQuery(req.PoolID, req.TokenInDenom, req.TokenOutDenom, req.WithSwapFee)
	bz, err := k.executeQuery(ctx, nil, query)
	switch {
	case errors.Is(err, types.ErrQuerySystem):
		return nil, status.Error(codes.Unimplemented, err.Error())
	case err != nil:
		return nil, status.Error(codes.Internal, err.Error())
	}

	res := &types.QuerySpotPriceResponse{Data: bz}
	if spotPrice, err := types.DecodeSpotPriceResponse(bz); err == nil {
		res.SpotPrice = spotPrice
	}

	return res, nil
}

// PendingChannel implements the Query/PendingChannel gRPC method
func (k Keeper) PendingChannel(goCtx context.Context, req *types.QueryPendingChannelRequest) (*types.QueryPendingChannelResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if err := validate.GRPCChannelRequest(req.ChannelID); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	pendingChannel, found := k.GetPendingChannel(ctx, req.ChannelID)
	if !found {
		return nil, status.Errorf(codes.NotFound, "channel %s is not registered", req.ChannelID)
	}

	return &types.QueryPendingChannelResponse{Channel: pendingChannel}, nil
}

// PendingChannels implements the Query/PendingChannels gRPC method
func (k Keeper) PendingChannels(goCtx context.Context, _ *types.QueryPendingChannelsRequest) (*types.QueryPendingChannelsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	latest, _ := k.GetLatestChannelID(ctx)

	return &types.QueryPendingChannelsResponse{
		Channels:        k.GetAllPendingChannels(ctx),
		LatestChannelID: latest,
	}, nil
}

// Params implements the Query/Params gRPC method
func (k Keeper) Params(goCtx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryParamsResponse{
		PortID:         k.GetPort(ctx),
		PacketLifetime: k.GetPacketLifetime(ctx),
		AllowQueries:   k.GetAllowQueries(ctx),
	}, nil
}
