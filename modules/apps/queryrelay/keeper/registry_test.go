package keeper_test

import (
	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
	ibctesting "github.com/notional-labs/ibc-query-relay/testing"
)

func (suite *KeeperTestSuite) TestRegisterPendingChannel() {
	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success",
			func() {},
			nil,
		},
		{
			"success: another channel is registered",
			func() {
				err := suite.tk.Keeper.RegisterPendingChannel(suite.tk.Ctx, types.PortID, ibctesting.SecondChannelID, "")
				suite.Require().NoError(err)
			},
			nil,
		},
		{
			"failure: channel already registered",
			func() {
				err := suite.tk.Keeper.RegisterPendingChannel(suite.tk.Ctx, types.PortID, ibctesting.FirstChannelID, "channel-9")
				suite.Require().NoError(err)
			},
			types.ErrChannelAlreadyRegistered,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			tc.malleate()

			err := suite.tk.Keeper.RegisterPendingChannel(suite.tk.Ctx, types.PortID, ibctesting.FirstChannelID, ibctesting.SecondChannelID)

			pendingChannel, found := suite.tk.Keeper.GetPendingChannel(suite.tk.Ctx, ibctesting.FirstChannelID)
			suite.Require().True(found)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(types.PendingChannel{
					PortID:                types.PortID,
					ChannelID:             ibctesting.FirstChannelID,
					CounterpartyChannelID: ibctesting.SecondChannelID,
				}, pendingChannel)

				latest, found := suite.tk.Keeper.GetLatestChannelID(suite.tk.Ctx)
				suite.Require().True(found)
				suite.Require().Equal(ibctesting.FirstChannelID, latest)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				// the first registration is left untouched
				suite.Require().Equal("channel-9", pendingChannel.CounterpartyChannelID)
			}
		})
	}
}

func (suite *KeeperTestSuite) TestGetAllPendingChannels() {
	suite.Require().Empty(suite.tk.Keeper.GetAllPendingChannels(suite.tk.Ctx))

	_, found := suite.tk.Keeper.GetLatestChannelID(suite.tk.Ctx)
	suite.Require().False(found)

	suite.Require().NoError(suite.tk.Keeper.RegisterPendingChannel(suite.tk.Ctx, types.PortID, ibctesting.SecondChannelID, ""))
	suite.Require().NoError(suite.tk.Keeper.RegisterPendingChannel(suite.tk.Ctx, types.PortID, ibctesting.FirstChannelID, "channel-4"))

	expected := []types.PendingChannel{
		{PortID: types.PortID, ChannelID: ibctesting.FirstChannelID, CounterpartyChannelID: "channel-4"},
		{PortID: types.PortID, ChannelID: ibctesting.SecondChannelID},
	}
	suite.Require().Equal(expected, suite.tk.Keeper.GetAllPendingChannels(suite.tk.Ctx))

	latest, found := suite.tk.Keeper.GetLatestChannelID(suite.tk.Ctx)
	suite.Require().True(found)
	suite.Require().Equal(ibctesting.FirstChannelID, latest)

	suite.Require().True(suite.tk.Keeper.HasPendingChannel(suite.tk.Ctx, ibctesting.SecondChannelID))
	suite.Require().False(suite.tk.Keeper.HasPendingChannel(suite.tk.Ctx, "channel-100"))
}
