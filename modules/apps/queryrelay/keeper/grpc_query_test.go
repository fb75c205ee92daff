package keeper_test

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
	ibctesting "github.com/notional-labs/ibc-query-relay/testing"
	"github.com/notional-labs/ibc-query-relay/testing/mock"
)

func (suite *KeeperTestSuite) TestQuerySpotPrice() {
	var req *types.QuerySpotPriceRequest

	testCases := []struct {
		name     string
		malleate func()
		expCode  codes.Code
	}{
		{
			"success",
			func() {},
			codes.OK,
		},
		{
			"success: allow list does not apply to local queries",
			func() {
				genesis := types.DefaultGenesis()
				genesis.AllowQueries = []string{mock.MockQueryPath}
				suite.tk.Keeper.InitGenesis(suite.tk.Ctx, *genesis)
			},
			codes.OK,
		},
		{
			"failure: nil request",
			func() {
				req = nil
			},
			codes.InvalidArgument,
		},
		{
			"failure: invalid denom",
			func() {
				req.TokenOutDenom = "1"
			},
			codes.InvalidArgument,
		},
		{
			"failure: zero pool id",
			func() {
				req.PoolID = 0
			},
			codes.InvalidArgument,
		},
		{
			"failure: spot price query not routed",
			func() {
				suite.tk.QueryRouter.Register(types.SpotPriceQueryPath, nil)
			},
			codes.Unimplemented,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			req = &types.QuerySpotPriceRequest{
				PoolID:        1,
				TokenInDenom:  "uatom",
				TokenOutDenom: "uosmo",
			}

			tc.malleate()

			res, err := suite.tk.Keeper.SpotPrice(suite.tk.Ctx, req)

			if tc.expCode == codes.OK {
				suite.Require().NoError(err)
				suite.Require().Equal(mock.MockSpotPrice, res.SpotPrice)
				suite.Require().Equal(types.EncodeSpotPriceResponse(mock.MockSpotPrice), res.Data)
			} else {
				suite.Require().Error(err)
				suite.Require().Equal(tc.expCode, status.Code(err))
			}
		})
	}
}

func (suite *KeeperTestSuite) TestQueryPendingChannel() {
	suite.registerChannel(ibctesting.FirstChannelID)

	res, err := suite.tk.Keeper.PendingChannel(suite.tk.Ctx, &types.QueryPendingChannelRequest{ChannelID: ibctesting.FirstChannelID})
	suite.Require().NoError(err)
	suite.Require().Equal(types.PendingChannel{
		PortID:                types.PortID,
		ChannelID:             ibctesting.FirstChannelID,
		CounterpartyChannelID: ibctesting.SecondChannelID,
	}, res.Channel)

	_, err = suite.tk.Keeper.PendingChannel(suite.tk.Ctx, &types.QueryPendingChannelRequest{ChannelID: ibctesting.SecondChannelID})
	suite.Require().Equal(codes.NotFound, status.Code(err))

	_, err = suite.tk.Keeper.PendingChannel(suite.tk.Ctx, &types.QueryPendingChannelRequest{ChannelID: "(invalid)"})
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))

	_, err = suite.tk.Keeper.PendingChannel(suite.tk.Ctx, nil)
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (suite *KeeperTestSuite) TestQueryPendingChannels() {
	res, err := suite.tk.Keeper.PendingChannels(suite.tk.Ctx, &types.QueryPendingChannelsRequest{})
	suite.Require().NoError(err)
	suite.Require().Empty(res.Channels)
	suite.Require().Empty(res.LatestChannelID)

	suite.registerChannel(ibctesting.FirstChannelID)
	suite.registerChannel(ibctesting.SecondChannelID)

	res, err = suite.tk.Keeper.PendingChannels(suite.tk.Ctx, &types.QueryPendingChannelsRequest{})
	suite.Require().NoError(err)
	suite.Require().Len(res.Channels, 2)
	suite.Require().Equal(ibctesting.SecondChannelID, res.LatestChannelID)
}

func (suite *KeeperTestSuite) TestQueryParams() {
	res, err := suite.tk.Keeper.Params(suite.tk.Ctx, &types.QueryParamsRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(&types.QueryParamsResponse{
		PortID:         types.PortID,
		PacketLifetime: types.DefaultPacketLifetime,
	}, res)
}
