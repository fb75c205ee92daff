package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

// InitGenesis initializes the query relay module's state from a provided genesis
// state. This is the only place the packet lifetime is written.
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	k.setPort(ctx, state.PortID)
	k.setPacketLifetime(ctx, state.PacketLifetime)
	k.setAllowQueries(ctx, state.AllowQueries)

	for _, pendingChannel := range state.PendingChannels {
		k.setPendingChannel(ctx, pendingChannel)
	}

	if state.LatestChannelID != "" {
		k.setLatestChannelID(ctx, state.LatestChannelID)
	}
}

// ExportGenesis exports query relay module's portID, packet lifetime, allow list and
// channel registry into its genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	latest, _ := k.GetLatestChannelID(ctx)

	return &types.GenesisState{
		PortID:          k.GetPort(ctx),
		PacketLifetime:  k.GetPacketLifetime(ctx),
		AllowQueries:    k.GetAllowQueries(ctx),
		PendingChannels: k.GetAllPendingChannels(ctx),
		LatestChannelID: latest,
	}
}
