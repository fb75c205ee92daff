package keeper

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/store/prefix"

	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

// RegisterPendingChannel records a channel that completed its handshake on the query
// relay port and makes it the latest channel. A channel can only be registered once:
// registering over an existing entry fails and leaves the entry untouched.
func (k Keeper) RegisterPendingChannel(ctx sdk.Context, portID, channelID, counterpartyChannelID string) error {
	if k.HasPendingChannel(ctx, channelID) {
		return errorsmod.Wrapf(types.ErrChannelAlreadyRegistered, "channel %s", channelID)
	}

	pendingChannel := types.PendingChannel{
		PortID:                portID,
		ChannelID:             channelID,
		CounterpartyChannelID: counterpartyChannelID,
	}

	k.setPendingChannel(ctx, pendingChannel)
	k.setLatestChannelID(ctx, channelID)

	return nil
}

// GetPendingChannel returns the registry entry for the given channel.
func (k Keeper) GetPendingChannel(ctx sdk.Context, channelID string) (types.PendingChannel, bool) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.PendingChannelKey(channelID))
	if err != nil {
		panic(err)
	}

	if len(bz) == 0 {
		return types.PendingChannel{}, false
	}

	var pendingChannel types.PendingChannel
	if err := json.Unmarshal(bz, &pendingChannel); err != nil {
		panic(err)
	}

	return pendingChannel, true
}

// HasPendingChannel returns true if the channel has been registered.
func (k Keeper) HasPendingChannel(ctx sdk.Context, channelID string) bool {
	store := k.storeService.OpenKVStore(ctx)
	has, err := store.Has(types.PendingChannelKey(channelID))
	if err != nil {
		panic(err)
	}
	return has
}

// GetAllPendingChannels returns every registered channel ordered by channel id bytes.
func (k Keeper) GetAllPendingChannels(ctx sdk.Context) []types.PendingChannel {
	store := prefix.NewStore(runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx)), types.PendingChannelKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var pendingChannels []types.PendingChannel
	for ; iterator.Valid(); iterator.Next() {
		var pendingChannel types.PendingChannel
		if err := json.Unmarshal(iterator.Value(), &pendingChannel); err != nil {
			panic(err)
		}

		pendingChannels = append(pendingChannels, pendingChannel)
	}

	return pendingChannels
}

// GetLatestChannelID returns the channel registered most recently.
func (k Keeper) GetLatestChannelID(ctx sdk.Context) (string, bool) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.LatestChannelKey)
	if err != nil {
		panic(err)
	}

	if len(bz) == 0 {
		return "", false
	}

	return string(bz), true
}

func (k Keeper) setPendingChannel(ctx sdk.Context, pendingChannel types.PendingChannel) {
	bz, err := json.Marshal(pendingChannel)
	if err != nil {
		panic(err)
	}

	store := k.storeService.OpenKVStore(ctx)
	if err := store.Set(types.PendingChannelKey(pendingChannel.ChannelID), bz); err != nil {
		panic(err)
	}
}

func (k Keeper) setLatestChannelID(ctx sdk.Context, channelID string) {
	store := k.storeService.OpenKVStore(ctx)
	if err := store.Set(types.LatestChannelKey, []byte(channelID)); err != nil {
		panic(err)
	}
}
