package types_test

import (
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

func (suite *TypesTestSuite) TestMsgForwardQueryValidateBasic() {
	var msg *types.MsgForwardQuery

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
			"success: channel omitted",
			func() {
				msg.ChannelID = ""
			},
			nil,
		},
		{
			"failure: funds attached",
			func() {
				msg.Funds = sdk.NewCoins(sdk.NewCoin("uatom", sdkmath.NewInt(1)))
			},
			types.ErrPaymentNotAccepted,
		},
		{
			"failure: funds are rejected before other fields are checked",
			func() {
				msg.Funds = sdk.NewCoins(sdk.NewCoin("uatom", sdkmath.NewInt(1)))
				msg.Callback = "invalid"
				msg.Requests = nil
			},
			types.ErrPaymentNotAccepted,
		},
		{
			"failure: invalid sender",
			func() {
				msg.Sender = "invalid"
			},
			ibcerrors.ErrInvalidAddress,
		},
		{
			"failure: invalid callback",
			func() {
				msg.Callback = "cosmos1invalid"
			},
			types.ErrInvalidCallback,
		},
		{
			"failure: invalid channel",
			func() {
				msg.ChannelID = "ch"
			},
			host.ErrInvalidID,
		},
		{
			"failure: empty batch",
			func() {
				msg.Requests = []types.QueryDescriptor{}
			},
			types.ErrEmptyQueryBatch,
		},
		{
			"failure: empty path",
			func() {
				msg.Requests = append(msg.Requests, types.QueryDescriptor{})
			},
			types.ErrInvalidPacketData,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			msg = types.NewMsgForwardQuery(senderAddress, "channel-0", callbackAddress, []types.QueryDescriptor{
				types.NewSpotPriceQuery(1, "uatom", "uosmo", false),
			})

			tc.malleate()

			err := msg.ValidateBasic()
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *TypesTestSuite) TestMsgForwardSpotPriceQueryValidateBasic() {
	var msg types.MsgForwardSpotPriceQuery

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
			"failure: funds attached",
			func() {
				msg.Funds = sdk.NewCoins(sdk.NewCoin("uosmo", sdkmath.NewInt(100)))
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
			"failure: invalid token in denom",
			func() {
				msg.TokenInDenom = ""
			},
			types.ErrInvalidQueryPayload,
		},
		{
			"failure: invalid token out denom",
			func() {
				msg.TokenOutDenom = "!"
			},
			types.ErrInvalidQueryPayload,
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
			msg = types.MsgForwardSpotPriceQuery{
				Sender:        senderAddress,
				ChannelID:     "channel-0",
				Callback:      callbackAddress,
				PoolID:        1,
				TokenInDenom:  "uatom",
				TokenOutDenom: "uosmo",
			}

			tc.malleate()

			err := msg.ValidateBasic()
			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(types.NewSpotPriceQuery(1, "uatom", "uosmo", false), msg.Query())
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}
