package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
)

// PendingChannel is a registry entry recording a channel that finished its handshake
// on the query relay port.
type PendingChannel struct {
	PortID                string `json:"port_id"`
	ChannelID             string `json:"channel_id"`
	CounterpartyChannelID string `json:"counterparty_channel_id,omitempty"`
}

// Validate performs a basic validation of the entry's identifiers.
func (pc PendingChannel) Validate() error {
	if err := host.PortIdentifierValidator(pc.PortID); err != nil {
		return err
	}

	if err := host.ChannelIdentifierValidator(pc.ChannelID); err != nil {
		return err
	}

	if pc.CounterpartyChannelID != "" {
		if err := host.ChannelIdentifierValidator(pc.CounterpartyChannelID); err != nil {
			return errorsmod.Wrap(err, "counterparty channel")
		}
	}

	return nil
}

// GenesisState defines the query relay module's genesis state.
type GenesisState struct {
	PortID string `json:"port_id"`
	// PacketLifetime is the number of seconds outbound query packets stay valid.
	PacketLifetime  uint64           `json:"packet_lifetime"`
	AllowQueries    []string         `json:"allow_queries,omitempty"`
	PendingChannels []PendingChannel `json:"pending_channels,omitempty"`
	LatestChannelID string           `json:"latest_channel_id,omitempty"`
}

// NewGenesisState creates a returns a new GenesisState instance
func NewGenesisState(portID string, packetLifetime uint64, allowQueries []string) *GenesisState {
	return &GenesisState{
		PortID:         portID,
		PacketLifetime: packetLifetime,
		AllowQueries:   allowQueries,
	}
}

// DefaultGenesis returns a GenesisState with the default port and packet lifetime and
// no query restrictions.
func DefaultGenesis() *GenesisState {
	return NewGenesisState(PortID, DefaultPacketLifetime, nil)
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := host.PortIdentifierValidator(gs.PortID); err != nil {
		return err
	}

	if gs.PacketLifetime == 0 || gs.PacketLifetime > MaxPacketLifetime {
		return errorsmod.Wrapf(ErrInvalidPacketLifetime, "packet lifetime must be between 1 and %d seconds, got %d", MaxPacketLifetime, gs.PacketLifetime)
	}

	for i, path := range gs.AllowQueries {
		if strings.TrimSpace(path) == "" {
			return errorsmod.Wrapf(ErrQueryPathNotAllowed, "allow query %d is blank", i)
		}
	}

	seen := make(map[string]struct{}, len(gs.PendingChannels))
	for _, pc := range gs.PendingChannels {
		if err := pc.Validate(); err != nil {
			return err
		}

		if _, ok := seen[pc.ChannelID]; ok {
			return errorsmod.Wrap(ErrChannelAlreadyRegistered, pc.ChannelID)
		}
		seen[pc.ChannelID] = struct{}{}
	}

	if gs.LatestChannelID != "" {
		if _, ok := seen[gs.LatestChannelID]; !ok {
			return errorsmod.Wrapf(ErrNoActiveChannel, "latest channel %s is not a pending channel", gs.LatestChannelID)
		}
	}

	return nil
}
