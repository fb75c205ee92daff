package events

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	ibcexported "github.com/cosmos/ibc-go/v10/modules/core/exported"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

// EmitSendQueryEvent emits an event for a query packet sent from this chain.
func EmitSendQueryEvent(ctx sdk.Context, sourcePort, sourceChannel string, sequence uint64, data types.QueryPacketData, numRequests int, timeoutTimestamp uint64) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeSendQuery,
			sdk.NewAttribute(types.AttributeKeyPortID, sourcePort),
			sdk.NewAttribute(types.AttributeKeyChannelID, sourceChannel),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)),
			sdk.NewAttribute(types.AttributeKeyCallback, data.Callback),
			sdk.NewAttribute(types.AttributeKeyNumRequests, strconv.Itoa(numRequests)),
			sdk.NewAttribute(types.AttributeKeyTimeoutTimestamp, strconv.FormatUint(timeoutTimestamp, 10)),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitOnRecvPacketEvent emits a query relay packet event in the OnRecvPacket callback.
// results is empty when the packet could not be decoded.
func EmitOnRecvPacketEvent(ctx sdk.Context, packet channeltypes.Packet, results types.AggregateResult, ack ibcexported.Acknowledgement, ackErr error) {
	eventAttributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyChannelID, packet.GetDestChannel()),
		sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(packet.GetSequence(), 10)),
		sdk.NewAttribute(types.AttributeKeyNumRequests, strconv.Itoa(len(results))),
		sdk.NewAttribute(types.AttributeKeyNumFailures, strconv.Itoa(results.Failures())),
		sdk.NewAttribute(types.AttributeKeyAckSuccess, strconv.FormatBool(ack.Success())),
	}

	if ackErr != nil {
		eventAttributes = append(eventAttributes, sdk.NewAttribute(types.AttributeKeyAckError, ackErr.Error()))
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePacket,
			eventAttributes...,
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitOnAcknowledgementPacketEvent emits a query relay packet event in the OnAcknowledgementPacket callback
func EmitOnAcknowledgementPacketEvent(ctx sdk.Context, packet channeltypes.Packet, response types.QueryResponse) {
	eventAttributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyChannelID, packet.GetSourceChannel()),
		sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(packet.GetSequence(), 10)),
		sdk.NewAttribute(types.AttributeKeyCallback, response.Callback),
		sdk.NewAttribute(types.AttributeKeyAckSuccess, strconv.FormatBool(response.Success())),
	}

	if response.Success() {
		eventAttributes = append(eventAttributes,
			sdk.NewAttribute(types.AttributeKeyNumRequests, strconv.Itoa(len(response.Results))),
			sdk.NewAttribute(types.AttributeKeyNumFailures, strconv.Itoa(response.Results.Failures())),
		)
	} else {
		eventAttributes = append(eventAttributes, sdk.NewAttribute(types.AttributeKeyAckError, response.Error))
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePacket,
			eventAttributes...,
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitOnTimeoutEvent emits a query relay timeout event in the OnTimeoutPacket callback
func EmitOnTimeoutEvent(ctx sdk.Context, packet channeltypes.Packet, data types.QueryPacketData) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeTimeout,
			sdk.NewAttribute(types.AttributeKeyChannelID, packet.GetSourceChannel()),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(packet.GetSequence(), 10)),
			sdk.NewAttribute(types.AttributeKeyCallback, data.Callback),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitChannelConnectEvent emits an event once a query relay channel is registered.
func EmitChannelConnectEvent(ctx sdk.Context, portID, channelID string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChannelConnect,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyPortID, portID),
			sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
		),
	)
}

// EmitChannelCloseEvent emits an event when a query relay channel is closed.
func EmitChannelCloseEvent(ctx sdk.Context, portID, channelID string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChannelClose,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyPortID, portID),
			sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
		),
	)
}
