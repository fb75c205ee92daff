package keeper

import (
	"encoding/json"
	"errors"
	"fmt"

	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

// Keeper defines the query relay keeper
type Keeper struct {
	storeService corestore.KVStoreService

	ics4Wrapper     types.ICS4Wrapper
	queryRouter     types.QueryRouter
	callbackHandler types.CallbackHandler
}

// NewKeeper creates a new query relay Keeper instance
func NewKeeper(
	storeService corestore.KVStoreService,
	ics4Wrapper types.ICS4Wrapper,
	queryRouter types.QueryRouter,
) Keeper {
	if queryRouter == nil {
		panic(errors.New("query router must not be nil"))
	}

	return Keeper{
		storeService: storeService,
		ics4Wrapper:  ics4Wrapper,
		queryRouter:  queryRouter,
	}
}

// SetICS4Wrapper sets the ICS4Wrapper. It is used when a middleware wraps the query
// relay module after the keeper has been created.
func (k *Keeper) SetICS4Wrapper(ics4Wrapper types.ICS4Wrapper) {
	k.ics4Wrapper = ics4Wrapper
}

// GetICS4Wrapper returns the ICS4Wrapper.
func (k Keeper) GetICS4Wrapper() types.ICS4Wrapper {
	return k.ics4Wrapper
}

// SetCallbackHandler sets the handler that receives the outcome of query packets sent
// from this chain. Without a handler outcomes are only emitted as events.
func (k *Keeper) SetCallbackHandler(handler types.CallbackHandler) {
	k.callbackHandler = handler
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetPort returns the portID for the query relay module.
func (k Keeper) GetPort(ctx sdk.Context) string {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.PortKey)
	if err != nil {
		panic(err)
	}
	return string(bz)
}

// setPort sets the portID for the query relay module.
func (k Keeper) setPort(ctx sdk.Context, portID string) {
	store := k.storeService.OpenKVStore(ctx)
	if err := store.Set(types.PortKey, []byte(portID)); err != nil {
		panic(err)
	}
}

// GetPacketLifetime returns the number of seconds outbound query packets stay valid.
func (k Keeper) GetPacketLifetime(ctx sdk.Context) uint64 {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.PacketLifetimeKey)
	if err != nil {
		panic(err)
	}

	if len(bz) != 8 {
		return types.DefaultPacketLifetime
	}

	return sdk.BigEndianToUint64(bz)
}

// setPacketLifetime is only called from InitGenesis: the lifetime cannot change
// afterwards.
func (k Keeper) setPacketLifetime(ctx sdk.Context, lifetime uint64) {
	store := k.storeService.OpenKVStore(ctx)
	if err := store.Set(types.PacketLifetimeKey, sdk.Uint64ToBigEndian(lifetime)); err != nil {
		panic(err)
	}
}

// GetAllowQueries returns the query paths the host answers. An empty list allows every
// path.
func (k Keeper) GetAllowQueries(ctx sdk.Context) []string {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.AllowQueriesKey)
	if err != nil {
		panic(err)
	}

	if len(bz) == 0 {
		return nil
	}

	var allowQueries []string
	if err := json.Unmarshal(bz, &allowQueries); err != nil {
		panic(err)
	}

	return allowQueries
}

func (k Keeper) setAllowQueries(ctx sdk.Context, allowQueries []string) {
	store := k.storeService.OpenKVStore(ctx)
	if len(allowQueries) == 0 {
		if err := store.Delete(types.AllowQueriesKey); err != nil {
			panic(err)
		}
		return
	}

	bz, err := json.Marshal(allowQueries)
	if err != nil {
		panic(err)
	}

	if err := store.Set(types.AllowQueriesKey, bz); err != nil {
		panic(err)
	}
}
