package keeper_test

import (
	"go.uber.org/mock/gomock"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/keeper"
	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
	ibctesting "github.com/notional-labs/ibc-query-relay/testing"
	"github.com/notional-labs/ibc-query-relay/testing/mock"
)

func (suite *KeeperTestSuite) TestMsgForwardQuery() {
	var msg *types.MsgForwardQuery

	testCases := []struct {
		name       string
		malleate   func()
		expChannel string
		expErr     error
	}{
		{
			"success",
			func() {
				suite.registerChannel(ibctesting.FirstChannelID)
				suite.expectSend(ibctesting.FirstChannelID, 1)
			},
			ibctesting.FirstChannelID,
			nil,
		},
		{
			"success: empty channel id uses the latest connected channel",
			func() {
				suite.registerChannel(ibctesting.FirstChannelID)
				suite.registerChannel(ibctesting.SecondChannelID)
				suite.expectSend(ibctesting.SecondChannelID, 1)

				msg.ChannelID = ""
			},
			ibctesting.SecondChannelID,
			nil,
		},
		{
			"failure: empty channel id and no connected channel",
			func() {
				msg.ChannelID = ""
			},
			"",
			types.ErrNoActiveChannel,
		},
		{
			"failure: funds attached",
			func() {
				msg.Funds = sdk.NewCoins(sdk.NewCoin("stake", sdkmath.NewInt(100)))
			},
			"",
			types.ErrPaymentNotAccepted,
		},
		{
			"failure: invalid sender",
			func() {
				msg.Sender = "invalid"
			},
			"",
			ibcerrors.ErrInvalidAddress,
		},
		{
			"failure: empty batch",
			func() {
				msg.Requests = nil
			},
			"",
			types.ErrEmptyQueryBatch,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			msg = types.NewMsgForwardQuery(
				ibctesting.TestSenderAddress,
				ibctesting.FirstChannelID,
				ibctesting.TestCallbackAddress,
				[]types.QueryDescriptor{{Path: mock.MockQueryPath}},
			)

			tc.malleate()

			res, err := keeper.NewMsgServerImpl(suite.tk.Keeper).ForwardQuery(suite.tk.Ctx, msg)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(tc.expChannel, res.ChannelID)
				suite.Require().Equal(uint64(1), res.Sequence)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Nil(res)
			}
		})
	}
}

func (suite *KeeperTestSuite) TestMsgForwardSpotPriceQuery() {
	var msg *types.MsgForwardSpotPriceQuery

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success",
			func() {
				suite.registerChannel(ibctesting.FirstChannelID)

				expData := types.NewQueryPacketData(ibctesting.TestCallbackAddress, types.NewSpotPriceQuery(1, "uatom", "uosmo", true))
				suite.tk.ExpectOpenChannel(ibctesting.FirstChannelID, types.Version)
				suite.tk.ICS4Wrapper.EXPECT().
					SendPacket(gomock.Any(), types.PortID, ibctesting.FirstChannelID, gomock.Any(), gomock.Any(), expData.GetBytes()).
					Return(uint64(4), nil)
			},
			nil,
		},
		{
			"failure: funds attached",
			func() {
				msg.Funds = sdk.NewCoins(sdk.NewCoin("stake", sdkmath.NewInt(1)))
			},
			types.ErrPaymentNotAccepted,
		},
		{
			"failure: zero pool id",
			func() {
				msg.PoolID = 0
			},
			types.ErrInvalidPoolID,
		},
		{
			"failure: invalid callback",
			func() {
				msg.Callback = ""
			},
			types.ErrInvalidCallback,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			msg = &types.MsgForwardSpotPriceQuery{
				Sender:        ibctesting.TestSenderAddress,
				ChannelID:     ibctesting.FirstChannelID,
				Callback:      ibctesting.TestCallbackAddress,
				PoolID:        1,
				TokenInDenom:  "uatom",
				TokenOutDenom: "uosmo",
				WithSwapFee:   true,
			}

			tc.malleate()

			res, err := keeper.NewMsgServerImpl(suite.tk.Keeper).ForwardSpotPriceQuery(suite.tk.Ctx, msg)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(uint64(4), res.Sequence)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Nil(res)
			}
		})
	}
}

// registerChannel registers channelID in the pending channel registry.
func (suite *KeeperTestSuite) registerChannel(channelID string) {
	suite.Require().NoError(suite.tk.Keeper.RegisterPendingChannel(suite.tk.Ctx, types.PortID, channelID, ibctesting.SecondChannelID))
}

// expectSend expects a single query packet to be sent over channelID.
func (suite *KeeperTestSuite) expectSend(channelID string, sequence uint64) {
	suite.tk.ExpectOpenChannel(channelID, types.Version)
	suite.tk.ICS4Wrapper.EXPECT().
		SendPacket(gomock.Any(), types.PortID, channelID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sequence, nil)
}
