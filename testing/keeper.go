package ibctesting

import (
	"testing"
	"time"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/keeper"
	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
	"github.com/notional-labs/ibc-query-relay/testing/mock"
)

// QueryRelayTestKeeper bundles a query relay keeper backed by an in-memory store with
// the mocks standing in for core IBC and the query router.
type QueryRelayTestKeeper struct {
	Keeper   keeper.Keeper
	Ctx      sdk.Context
	StoreKey *storetypes.KVStoreKey

	ICS4Wrapper     *mock.MockICS4Wrapper
	CallbackHandler *mock.MockCallbackHandler
	QueryRouter     *mock.QueryRouter
	Logger          *mock.MockLogger
}

// NewQueryRelayTestKeeper creates a query relay keeper initialized with the default
// genesis state. The context logger records every entry in Logger.
func NewQueryRelayTestKeeper(t testing.TB) *QueryRelayTestKeeper {
	t.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ctrl := gomock.NewController(t)
	ics4Wrapper := mock.NewMockICS4Wrapper(ctrl)
	callbackHandler := mock.NewMockCallbackHandler(ctrl)
	queryRouter := mock.NewQueryRouter(storeKey)
	logger := mock.NewMockLogger()

	k := keeper.NewKeeper(runtime.NewKVStoreService(storeKey), ics4Wrapper, queryRouter)
	k.SetCallbackHandler(callbackHandler)

	header := cmtproto.Header{
		ChainID: DefaultChainID,
		Height:  DefaultBlockHeight,
		Time:    DefaultBlockTime,
	}
	ctx := sdk.NewContext(stateStore, header, false, logger)

	k.InitGenesis(ctx, *types.DefaultGenesis())
	logger.Reset()

	return &QueryRelayTestKeeper{
		Keeper:          k,
		Ctx:             ctx,
		StoreKey:        storeKey,
		ICS4Wrapper:     ics4Wrapper,
		CallbackHandler: callbackHandler,
		QueryRouter:     queryRouter,
		Logger:          logger,
	}
}

// ExpectOpenChannel makes the ICS4Wrapper report channelID on the query relay port as
// an open channel using the given version.
func (tk *QueryRelayTestKeeper) ExpectOpenChannel(channelID, version string) {
	tk.ICS4Wrapper.EXPECT().
		GetAppVersion(gomock.Any(), types.PortID, channelID).
		Return(version, true).
		AnyTimes()
}

// WithBlockTime returns the test context at the given block time.
func (tk *QueryRelayTestKeeper) WithBlockTime(blockTime time.Time) sdk.Context {
	return tk.Ctx.WithBlockTime(blockTime)
}
