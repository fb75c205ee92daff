package types_test

import (
	"encoding/json"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

func (suite *TypesTestSuite) TestQueryPacketDataRoundTrip() {
	requests := []types.QueryDescriptor{
		{Path: "/cosmos.bank.v1beta1.Query/Balance", Data: []byte{0x0a, 0x03, 0x61, 0x62, 0x63}},
		{Path: "/cosmos.bank.v1beta1.Query/TotalSupply", Data: []byte{}},
		types.NewSpotPriceQuery(1, "uatom", "uosmo", false),
	}

	pd := types.NewQueryPacketData(callbackAddress, requests...)
	decoded, err := types.DecodePacketData(pd.GetBytes())
	suite.Require().NoError(err)

	suite.Require().Equal(callbackAddress, decoded.Callback)
	suite.Require().Nil(decoded.SpotPrice)
	suite.Require().Len(decoded.Requests, len(requests))
	for i, req := range requests {
		suite.Require().Equal(req.Path, decoded.Requests[i].Path)
		suite.Require().Equal(len(req.Data), len(decoded.Requests[i].Data))
		if len(req.Data) > 0 {
			suite.Require().Equal(req.Data, decoded.Requests[i].Data)
		}
	}

	queries, err := decoded.Queries()
	suite.Require().NoError(err)
	suite.Require().Len(queries, len(requests))
}

func (suite *TypesTestSuite) TestDecodePacketData() {
	validRequest := `{"path":"/cosmos.bank.v1beta1.Query/Balance","data":"CgNhYmM="}`

	testCases := []struct {
		name   string
		data   string
		expErr error
	}{
		{
			"success: single request",
			`{"requests":[` + validRequest + `],"callback":"addr"}`,
			nil,
		},
		{
			"success: spot price description",
			`{"spot_price":{"pool_id":"1","base_asset_denom":"uatom","quote_asset_denom":"uosmo"}}`,
			nil,
		},
		{
			"success: trailing whitespace",
			`{"requests":[` + validRequest + `]}` + "\n ",
			nil,
		},
		{
			"failure: empty bytes",
			``,
			types.ErrInvalidPacketData,
		},
		{
			"failure: not json",
			`not json`,
			types.ErrInvalidPacketData,
		},
		{
			"failure: unknown field",
			`{"requests":[` + validRequest + `],"memo":"hello"}`,
			types.ErrInvalidPacketData,
		},
		{
			"failure: unknown field inside request",
			`{"requests":[{"path":"/a","data":"","height":1}]}`,
			types.ErrInvalidPacketData,
		},
		{
			"failure: wrong field type",
			`{"requests":"abc"}`,
			types.ErrInvalidPacketData,
		},
		{
			"failure: trailing payload",
			`{"requests":[` + validRequest + `]}{}`,
			types.ErrInvalidPacketData,
		},
		{
			"failure: empty batch",
			`{"requests":[]}`,
			types.ErrEmptyQueryBatch,
		},
		{
			"failure: null payload",
			`null`,
			types.ErrEmptyQueryBatch,
		},
		{
			"success: blank query path is left to the dispatcher",
			`{"requests":[` + validRequest + `,{"path":" ","data":""}]}`,
			nil,
		},
		{
			"failure: requests and spot price together",
			`{"requests":[` + validRequest + `],"spot_price":{"pool_id":"1","base_asset_denom":"uatom","quote_asset_denom":"uosmo"}}`,
			types.ErrInvalidPacketData,
		},
		{
			"failure: spot price with invalid denom",
			`{"spot_price":{"pool_id":"1","base_asset_denom":"","quote_asset_denom":"uosmo"}}`,
			types.ErrInvalidPacketData,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := types.DecodePacketData([]byte(tc.data))

			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *TypesTestSuite) TestDecodePacketDataErrorIsStable() {
	_, err := types.DecodePacketData([]byte(`{"requests":[{"path":"/a","data":""}],"memo":"x"}`))
	suite.Require().EqualError(err, "unknown field in packet payload: invalid query packet data")

	_, err = types.DecodePacketData([]byte(`{"requests":`))
	suite.Require().EqualError(err, "packet payload is empty or truncated: invalid query packet data")
}

func (suite *TypesTestSuite) TestValidateBasicRejectsEmptyPath() {
	for _, path := range []string{"", " "} {
		pd := types.NewQueryPacketData(callbackAddress,
			types.QueryDescriptor{Path: "/cosmos.bank.v1beta1.Query/Balance"},
			types.QueryDescriptor{Path: path},
		)

		err := pd.ValidateBasic()
		suite.Require().ErrorIs(err, types.ErrInvalidPacketData)
		suite.Require().ErrorContains(err, "request 1")

		_, err = types.DecodePacketData(pd.GetBytes())
		suite.Require().NoError(err)
	}
}

func (suite *TypesTestSuite) TestQueriesResolvesSpotPrice() {
	testCases := []struct {
		name        string
		description types.SpotPriceDescription
		expErr      error
	}{
		{
			"success",
			types.SpotPriceDescription{PoolID: "5", BaseAssetDenom: "uatom", QuoteAssetDenom: "uosmo"},
			nil,
		},
		{
			"failure: non numeric pool id",
			types.SpotPriceDescription{PoolID: "abc", BaseAssetDenom: "uatom", QuoteAssetDenom: "uosmo"},
			types.ErrInvalidPoolID,
		},
		{
			"failure: negative pool id",
			types.SpotPriceDescription{PoolID: "-1", BaseAssetDenom: "uatom", QuoteAssetDenom: "uosmo"},
			types.ErrInvalidPoolID,
		},
		{
			"failure: empty pool id",
			types.SpotPriceDescription{PoolID: "", BaseAssetDenom: "uatom", QuoteAssetDenom: "uosmo"},
			types.ErrInvalidPoolID,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			pd := types.NewSpotPriceQueryPacketData(callbackAddress, tc.description)

			queries, err := pd.Queries()
			if tc.expErr != nil {
				suite.Require().ErrorIs(err, tc.expErr)
				return
			}

			suite.Require().NoError(err)
			suite.Require().Len(queries, 1)
			suite.Require().Equal(types.SpotPriceQueryPath, queries[0].Path)

			req, err := types.DecodeSpotPriceRequest(queries[0].Data)
			suite.Require().NoError(err)
			suite.Require().Equal(uint64(5), req.PoolID)
			suite.Require().Equal("uatom", req.TokenInDenom)
			suite.Require().Equal("uosmo", req.TokenOutDenom)
			suite.Require().False(req.WithSwapFee)
		})
	}
}

func (suite *TypesTestSuite) TestGetBytesIsSorted() {
	pd := types.NewQueryPacketData(callbackAddress, types.QueryDescriptor{Path: "/a", Data: []byte("x")})

	var m map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(pd.GetBytes(), &m))
	suite.Require().Contains(m, "callback")
	suite.Require().Contains(m, "requests")
	suite.Require().NotContains(m, "spot_price")

	suite.Require().Equal(
		`{"callback":"`+callbackAddress+`","requests":[{"data":"eA==","path":"/a"}]}`,
		string(pd.GetBytes()),
	)
}
