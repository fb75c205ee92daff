package keeper

import (
	"errors"
	"strings"

	abci "github.com/cometbft/cometbft/abci/types"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

// OnRecvPacket handles a query packet on the host chain. It returns one result per query
// of the batch. An error is only returned when the packet as a whole cannot be decoded;
// failing queries are reported in their result and never abort the rest of the batch.
func (k Keeper) OnRecvPacket(ctx sdk.Context, packet channeltypes.Packet) (types.AggregateResult, error) {
	data, err := types.DecodePacketData(packet.GetData())
	if err != nil {
		return nil, err
	}

	queries, err := data.Queries()
	if err != nil {
		return nil, err
	}

	return k.ExecuteQueries(ctx, queries), nil
}

// ExecuteQueries runs the queries in order against the local query router.
func (k Keeper) ExecuteQueries(ctx sdk.Context, queries []types.QueryDescriptor) types.AggregateResult {
	allowQueries := k.GetAllowQueries(ctx)

	results := make(types.AggregateResult, len(queries))
	for i, query := range queries {
		bz, err := k.executeQuery(ctx, allowQueries, query)
		if err != nil {
			k.Logger(ctx).Error("query failed", "index", i, "path", query.Path, "kind", failureKind(err), "error", err.Error())
			results[i] = types.NewFailureResult(err)
			continue
		}

		results[i] = types.NewSuccessResult(bz)
	}

	return results
}

// executeQuery routes a single query. An empty path, a missing route or a path outside
// the allow list is a system failure, an error raised by the handler a contract failure.
// Writes made by the handler are discarded. Returned errors end up in acknowledgements,
// so handler errors are reduced to their ABCI code.
func (k Keeper) executeQuery(ctx sdk.Context, allowQueries []string, query types.QueryDescriptor) (bz []byte, err error) {
	if strings.TrimSpace(query.Path) == "" {
		return nil, errorsmod.Wrap(types.ErrQuerySystem, "empty query path")
	}

	if !types.ContainsQueryPath(allowQueries, query.Path) {
		return nil, errorsmod.Wrapf(types.ErrQuerySystem, "query path not allowed: %s", query.Path)
	}

	handler := k.queryRouter.Route(query.Path)
	if handler == nil {
		return nil, errorsmod.Wrapf(types.ErrQuerySystem, "no route to query %s", query.Path)
	}

	cacheCtx, _ := ctx.CacheContext()

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(storetypes.ErrorOutOfGas); ok {
				panic(r)
			}

			k.Logger(ctx).Debug("query handler panicked", "path", query.Path, "panic", r)
			bz, err = nil, errorsmod.Wrapf(types.ErrQueryContract, "query %s panicked", query.Path)
		}
	}()

	res, err := handler(cacheCtx, &abci.RequestQuery{
		Path:   query.Path,
		Data:   query.Data,
		Height: ctx.BlockHeight(),
	})
	if err != nil {
		k.Logger(ctx).Debug("query handler returned an error", "path", query.Path, "error", err.Error())

		_, code, _ := errorsmod.ABCIInfo(err, false)
		return nil, errorsmod.Wrapf(types.ErrQueryContract, "query %s failed with ABCI code: %d", query.Path, code)
	}

	if res == nil {
		return nil, nil
	}

	return res.Value, nil
}

func failureKind(err error) string {
	if errors.Is(err, types.ErrQuerySystem) {
		return "system"
	}

	return "contract"
}
