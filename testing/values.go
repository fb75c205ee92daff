/*
This file contains the variables, constants, and default values
used in the testing package and commonly defined in tests.
*/
package ibctesting

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

const (
	DefaultChainID     = "testchain-1"
	DefaultBlockHeight = int64(10)

	FirstChannelID  = "channel-0"
	SecondChannelID = "channel-1"

	// CounterpartyPortID is the port of the query relay module on the counterparty
	CounterpartyPortID = types.PortID
)

var (
	DefaultBlockTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	// TestCallbackAddress is a reusable bech32 address notified with query responses
	TestCallbackAddress = sdk.AccAddress([]byte("callback_address____")).String()
	// TestSenderAddress is a reusable bech32 address sending query messages
	TestSenderAddress = sdk.AccAddress([]byte("sender_address______")).String()

	// TestRelayer is the relayer address passed to packet callbacks
	TestRelayer = sdk.AccAddress([]byte("relayer_address_____"))
)

// NewQueryPacket returns a packet received on the query relay port of FirstChannelID
// carrying the given data.
func NewQueryPacket(sequence uint64, data []byte) channeltypes.Packet {
	return channeltypes.NewPacket(
		data,
		sequence,
		CounterpartyPortID,
		SecondChannelID,
		types.PortID,
		FirstChannelID,
		clienttypes.ZeroHeight(),
		uint64(DefaultBlockTime.Add(time.Hour).UnixNano()),
	)
}

// NewSentQueryPacket returns a packet sent from the query relay port of FirstChannelID
// carrying the given data, as seen by the acknowledgement and timeout callbacks.
func NewSentQueryPacket(sequence uint64, data []byte) channeltypes.Packet {
	return channeltypes.NewPacket(
		data,
		sequence,
		types.PortID,
		FirstChannelID,
		CounterpartyPortID,
		SecondChannelID,
		clienttypes.ZeroHeight(),
		uint64(DefaultBlockTime.Add(time.Hour).UnixNano()),
	)
}
