package keeper

import (
	"time"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/internal/events"
	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/internal/telemetry"
	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

// SendQuery sends a query packet over the given query relay channel. The packet times
// out once the configured packet lifetime has elapsed after the current block time.
func (k Keeper) SendQuery(
	ctx sdk.Context,
	sourcePort,
	sourceChannel string,
	data types.QueryPacketData,
) (uint64, error) {
	if err := types.ValidateCallback(data.Callback); err != nil {
		return 0, err
	}

	if err := data.ValidateBasic(); err != nil {
		return 0, errorsmod.Wrap(err, "invalid query packet data")
	}

	version, found := k.ics4Wrapper.GetAppVersion(ctx, sourcePort, sourceChannel)
	if !found {
		return 0, errorsmod.Wrapf(channeltypes.ErrChannelNotFound, "port ID (%s) channel ID (%s)", sourcePort, sourceChannel)
	}

	if version != types.Version {
		return 0, errorsmod.Wrapf(types.ErrInvalidChannelVersion, "channel %s uses version %s, expected %s", sourceChannel, version, types.Version)
	}

	lifetime := time.Duration(k.GetPacketLifetime(ctx)) * time.Second
	timeoutTimestamp := uint64(ctx.BlockTime().Add(lifetime).UnixNano())

	sequence, err := k.ics4Wrapper.SendPacket(ctx, sourcePort, sourceChannel, clienttypes.ZeroHeight(), timeoutTimestamp, data.GetBytes())
	if err != nil {
		return 0, err
	}

	numRequests := len(data.Requests)
	if data.SpotPrice != nil {
		numRequests = 1
	}

	events.EmitSendQueryEvent(ctx, sourcePort, sourceChannel, sequence, data, numRequests, timeoutTimestamp)
	telemetry.ReportSendQuery(sourcePort, sourceChannel, numRequests)

	k.Logger(ctx).Info("query packet sent", "channel", sourceChannel, "sequence", sequence, "requests", numRequests)

	return sequence, nil
}

// OnAcknowledgementPacket delivers the outcome recorded in the acknowledgement of a query
// packet sent from this chain to the callback handler.
func (k Keeper) OnAcknowledgementPacket(ctx sdk.Context, packet channeltypes.Packet, data types.QueryPacketData, ack channeltypes.Acknowledgement) (types.QueryResponse, error) {
	response := newQueryResponse(packet, data)

	switch resp := ack.Response.(type) {
	case *channeltypes.Acknowledgement_Result:
		results, err := types.DecodeAggregateResult(resp.Result)
		if err != nil {
			return types.QueryResponse{}, err
		}
		response.Results = results
	case *channeltypes.Acknowledgement_Error:
		response.Error = resp.Error
	default:
		return types.QueryResponse{}, errorsmod.Wrapf(types.ErrInvalidAcknowledgement, "unsupported acknowledgement response %T", ack.Response)
	}

	telemetry.ReportAcknowledgement(packet.GetSourcePort(), packet.GetSourceChannel(), response.Success())

	k.deliverResponse(ctx, response)

	return response, nil
}

// OnTimeoutPacket reports a timed out query packet to the callback handler.
func (k Keeper) OnTimeoutPacket(ctx sdk.Context, packet channeltypes.Packet, data types.QueryPacketData) types.QueryResponse {
	response := newQueryResponse(packet, data)
	response.Error = types.TimeoutError

	telemetry.ReportTimeout(packet.GetSourcePort(), packet.GetSourceChannel())

	k.deliverResponse(ctx, response)

	return response
}

// deliverResponse hands the response to the callback handler. Handler state changes
// are only committed when it succeeds, and a handler failure does not fail the packet
// callback.
func (k Keeper) deliverResponse(ctx sdk.Context, response types.QueryResponse) {
	if k.callbackHandler == nil {
		k.Logger(ctx).Debug("no callback handler set, dropping query response", "callback", response.Callback, "sequence", response.Sequence)
		return
	}

	cacheCtx, writeFn := ctx.CacheContext()
	if err := k.callbackHandler.OnQueryResponse(cacheCtx, response); err != nil {
		k.Logger(ctx).Error("query response callback failed", "callback", response.Callback, "sequence", response.Sequence, "error", err.Error())
		return
	}

	writeFn()
}

func newQueryResponse(packet channeltypes.Packet, data types.QueryPacketData) types.QueryResponse {
	return types.QueryResponse{
		Callback:      data.Callback,
		SourcePort:    packet.GetSourcePort(),
		SourceChannel: packet.GetSourceChannel(),
		Sequence:      packet.GetSequence(),
	}
}
