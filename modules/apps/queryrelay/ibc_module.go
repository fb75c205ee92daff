package queryrelay

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v10/modules/core/05-port/types"
	ibcexported "github.com/cosmos/ibc-go/v10/modules/core/exported"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/internal/events"
	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/internal/telemetry"
	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/keeper"
	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

var _ porttypes.IBCModule = (*IBCModule)(nil)

// IBCModule implements the ICS26 interface for query relay given the query relay keeper.
type IBCModule struct {
	keeper keeper.Keeper
}

// NewIBCModule creates a new IBCModule given the keeper
func NewIBCModule(k keeper.Keeper) IBCModule {
	return IBCModule{
		keeper: k,
	}
}

// validateChannelParams checks the port and negotiates the version of a query relay
// channel being opened.
func (im IBCModule) validateChannelParams(
	ctx sdk.Context,
	order channeltypes.Order,
	portID string,
	counterpartyVersion string,
) (string, error) {
	version, err := types.NegotiateVersion(order, counterpartyVersion)
	if err != nil {
		return "", err
	}

	// Require portID is the portID query relay module is bound to
	boundPort := im.keeper.GetPort(ctx)
	if boundPort != portID {
		return "", errorsmod.Wrapf(porttypes.ErrInvalidPort, "invalid port: %s, expected %s", portID, boundPort)
	}

	return version, nil
}

// OnChanOpenInit implements the IBCModule interface. A non-empty relayer-proposed
// version must be the query relay version.
func (im IBCModule) OnChanOpenInit(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID string,
	channelID string,
	counterparty channeltypes.Counterparty,
	version string,
) (string, error) {
	return im.validateChannelParams(ctx, order, portID, version)
}

// OnChanOpenTry implements the IBCModule interface.
func (im IBCModule) OnChanOpenTry(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID,
	channelID string,
	counterparty channeltypes.Counterparty,
	counterpartyVersion string,
) (string, error) {
	return im.validateChannelParams(ctx, order, portID, counterpartyVersion)
}

// OnChanOpenAck implements the IBCModule interface. The channel is registered once the
// counterparty version has been checked.
func (im IBCModule) OnChanOpenAck(
	ctx sdk.Context,
	portID,
	channelID string,
	counterpartyChannelID string,
	counterpartyVersion string,
) error {
	if err := types.ValidateCounterpartyVersion(counterpartyVersion); err != nil {
		return err
	}

	return im.connect(ctx, portID, channelID, counterpartyChannelID)
}

// OnChanOpenConfirm implements the IBCModule interface
func (im IBCModule) OnChanOpenConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	return im.connect(ctx, portID, channelID, "")
}

func (im IBCModule) connect(ctx sdk.Context, portID, channelID, counterpartyChannelID string) error {
	if err := im.keeper.RegisterPendingChannel(ctx, portID, channelID, counterpartyChannelID); err != nil {
		return err
	}

	events.EmitChannelConnectEvent(ctx, portID, channelID)
	im.keeper.Logger(ctx).Info("query relay channel connected", "port", portID, "channel", channelID)

	return nil
}

// OnChanCloseInit implements the IBCModule interface. The registry entry of the channel
// is kept.
func (im IBCModule) OnChanCloseInit(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	im.close(ctx, portID, channelID)
	return nil
}

// OnChanCloseConfirm implements the IBCModule interface
func (im IBCModule) OnChanCloseConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	im.close(ctx, portID, channelID)
	return nil
}

func (im IBCModule) close(ctx sdk.Context, portID, channelID string) {
	events.EmitChannelCloseEvent(ctx, portID, channelID)
	im.keeper.Logger(ctx).Info("query relay channel closed", "port", portID, "channel", channelID)
}

// OnRecvPacket implements the IBCModule interface. A result acknowledgement carrying one
// result per query is returned whenever the packet could be decoded, even if some or all
// queries failed. An error acknowledgement is returned otherwise.
func (im IBCModule) OnRecvPacket(
	ctx sdk.Context,
	channelVersion string,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) ibcexported.Acknowledgement {
	results, ackErr := im.keeper.OnRecvPacket(ctx, packet)
	ack := types.NewQueryAcknowledgement(results, ackErr)

	events.EmitOnRecvPacketEvent(ctx, packet, results, ack, ackErr)
	telemetry.ReportOnRecvPacket(packet.DestinationPort, packet.DestinationChannel, results, ack.Success())

	if ackErr != nil {
		im.keeper.Logger(ctx).Error(fmt.Sprintf("%s sequence %d", ackErr.Error(), packet.Sequence))
		return ack
	}

	im.keeper.Logger(ctx).Info("successfully handled query relay packet", "sequence", packet.Sequence, "queries", len(results), "failures", results.Failures())

	// NOTE: acknowledgement will be written synchronously during IBC handler execution.
	return ack
}

// OnAcknowledgementPacket implements the IBCModule interface
func (im IBCModule) OnAcknowledgementPacket(
	ctx sdk.Context,
	channelVersion string,
	packet channeltypes.Packet,
	acknowledgement []byte,
	relayer sdk.AccAddress,
) error {
	ack, err := types.UnmarshalAcknowledgement(acknowledgement)
	if err != nil {
		return err
	}

	data, err := types.DecodePacketData(packet.GetData())
	if err != nil {
		return err
	}

	response, err := im.keeper.OnAcknowledgementPacket(ctx, packet, data, ack)
	if err != nil {
		return err
	}

	events.EmitOnAcknowledgementPacketEvent(ctx, packet, response)

	return nil
}

// OnTimeoutPacket implements the IBCModule interface
func (im IBCModule) OnTimeoutPacket(
	ctx sdk.Context,
	channelVersion string,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) error {
	data, err := types.DecodePacketData(packet.GetData())
	if err != nil {
		return err
	}

	im.keeper.OnTimeoutPacket(ctx, packet, data)

	events.EmitOnTimeoutEvent(ctx, packet, data)

	return nil
}
