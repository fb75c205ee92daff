package queryrelay_test

import (
	"encoding/json"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay"
	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
	ibctesting "github.com/notional-labs/ibc-query-relay/testing"
)

func (suite *QueryRelayTestSuite) TestValidateGenesis() {
	basic := queryrelay.AppModuleBasic{}

	suite.Require().NoError(basic.ValidateGenesis(nil, nil, basic.DefaultGenesis(nil)))

	invalid := types.DefaultGenesis()
	invalid.PacketLifetime = 0
	bz, err := json.Marshal(invalid)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(basic.ValidateGenesis(nil, nil, bz), types.ErrInvalidPacketLifetime)

	suite.Require().Error(basic.ValidateGenesis(nil, nil, json.RawMessage("{")))
}

func (suite *QueryRelayTestSuite) TestInitExportGenesis() {
	am := queryrelay.NewAppModule(suite.tk.Keeper)

	genesis := types.DefaultGenesis()
	genesis.PacketLifetime = 60
	genesis.PendingChannels = []types.PendingChannel{{PortID: types.PortID, ChannelID: ibctesting.FirstChannelID}}
	genesis.LatestChannelID = ibctesting.FirstChannelID

	bz, err := json.Marshal(genesis)
	suite.Require().NoError(err)

	am.InitGenesis(suite.tk.Ctx, nil, bz)
	suite.Require().JSONEq(string(bz), string(am.ExportGenesis(suite.tk.Ctx, nil)))

	genesis.LatestChannelID = ibctesting.SecondChannelID
	bz, err = json.Marshal(genesis)
	suite.Require().NoError(err)

	suite.Require().Panics(func() {
		am.InitGenesis(suite.tk.Ctx, nil, bz)
	})
}
