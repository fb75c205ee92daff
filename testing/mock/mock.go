package mock

import (
	"errors"

	abci "github.com/cometbft/cometbft/abci/types"

	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

const (
	// MockQueryPath answers with MockQueryResponse.
	MockQueryPath = "/mock.v1.Query/Echo"
	// MockFailQueryPath fails with MockQueryError.
	MockFailQueryPath = "/mock.v1.Query/Fail"
	// MockPanicQueryPath panics.
	MockPanicQueryPath = "/mock.v1.Query/Panic"
	// MockOutOfGasQueryPath panics with an out of gas error.
	MockOutOfGasQueryPath = "/mock.v1.Query/OutOfGas"
	// MockWriteQueryPath writes MockStoreKey before answering.
	MockWriteQueryPath = "/mock.v1.Query/Write"
	// MockUnroutedQueryPath has no handler.
	MockUnroutedQueryPath = "/mock.v1.Query/Unrouted"
)

var (
	MockQueryResponse = []byte("mock query response")
	MockSpotPrice     = "1.234500000000000000"
	MockStoreKey      = []byte("mock-write")

	// MockQueryError is returned by the MockFailQueryPath handler. It is possible to
	// test that this error was returned using ErrorIs.
	MockQueryError = errors.New("mock query failed")
)

var _ types.QueryRouter = (*QueryRouter)(nil)

// QueryRouter is a map backed query router.
type QueryRouter struct {
	handlers map[string]baseapp.GRPCQueryHandler
	// Calls records every routed request path, in order.
	Calls []string
}

// NewQueryRouter returns a QueryRouter with the mock handlers and a spot price handler
// registered. storeKey is the store written to by the MockWriteQueryPath handler.
func NewQueryRouter(storeKey storetypes.StoreKey) *QueryRouter {
	r := &QueryRouter{handlers: make(map[string]baseapp.GRPCQueryHandler)}

	r.Register(MockQueryPath, func(_ sdk.Context, _ *abci.RequestQuery) (*abci.ResponseQuery, error) {
		return &abci.ResponseQuery{Value: MockQueryResponse}, nil
	})
	r.Register(MockFailQueryPath, func(_ sdk.Context, _ *abci.RequestQuery) (*abci.ResponseQuery, error) {
		return nil, MockQueryError
	})
	r.Register(MockPanicQueryPath, func(_ sdk.Context, _ *abci.RequestQuery) (*abci.ResponseQuery, error) {
		panic("mock query panic")
	})
	r.Register(MockOutOfGasQueryPath, func(_ sdk.Context, _ *abci.RequestQuery) (*abci.ResponseQuery, error) {
		panic(storetypes.ErrorOutOfGas{Descriptor: "mock query"})
	})
	r.Register(MockWriteQueryPath, func(ctx sdk.Context, _ *abci.RequestQuery) (*abci.ResponseQuery, error) {
		ctx.KVStore(storeKey).Set(MockStoreKey, []byte{0x01})
		return &abci.ResponseQuery{Value: MockQueryResponse}, nil
	})
	r.Register(types.SpotPriceQueryPath, func(_ sdk.Context, req *abci.RequestQuery) (*abci.ResponseQuery, error) {
		spotPriceReq, err := types.DecodeSpotPriceRequest(req.Data)
		if err != nil {
			return nil, err
		}

		if spotPriceReq.PoolID == 0 {
			return nil, errors.New("pool not found")
		}

		return &abci.ResponseQuery{Value: types.EncodeSpotPriceResponse(MockSpotPrice)}, nil
	})

	return r
}

// Register sets the handler for the given path.
func (r *QueryRouter) Register(path string, handler baseapp.GRPCQueryHandler) {
	r.handlers[path] = handler
}

// Route implements types.QueryRouter.
func (r *QueryRouter) Route(path string) baseapp.GRPCQueryHandler {
	r.Calls = append(r.Calls, path)
	return r.handlers[path]
}
