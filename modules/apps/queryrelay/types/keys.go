package types

import (
	"slices"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

const (
	// ModuleName defines the query relay module name
	ModuleName = "queryrelay"

	// PortID is the default port id that the query relay module binds to
	PortID = "queryrelay"

	// Version defines the only channel version the query relay module accepts
	Version = "queryrelay-1"

	// StoreKey is the store key string for the query relay module
	StoreKey = ModuleName

	// RouterKey is the message route for the query relay module
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the query relay module
	QuerierRoute = ModuleName

	// ChannelOrder is the only ordering accepted for query relay channels
	ChannelOrder = channeltypes.UNORDERED

	// DefaultPacketLifetime is the default number of seconds an outbound query packet stays valid
	DefaultPacketLifetime uint64 = 600

	// MaxPacketLifetime bounds the packet lifetime to one year
	MaxPacketLifetime uint64 = 365 * 24 * 60 * 60
)

var (
	// PortKey defines the key to store the port ID in store
	PortKey = []byte{0x01}

	// PacketLifetimeKey defines the key to store the packet lifetime in seconds
	PacketLifetimeKey = []byte{0x02}

	// AllowQueriesKey defines the key to store the host query allow list
	AllowQueriesKey = []byte{0x03}

	// LatestChannelKey defines the key to store the most recently registered channel id
	LatestChannelKey = []byte{0x04}

	// PendingChannelKeyPrefix defines the prefix for pending channel entries
	PendingChannelKeyPrefix = []byte{0x05}
)

// PendingChannelKey returns the store key under which the pending channel entry for
// the given channel id is kept.
func PendingChannelKey(channelID string) []byte {
	return append(append([]byte{}, PendingChannelKeyPrefix...), channelID...)
}

// ContainsQueryPath returns true if the path is present in allowQueries, otherwise false.
// An empty allow list accepts every path.
func ContainsQueryPath(allowQueries []string, path string) bool {
	if len(allowQueries) == 0 {
		return true
	}

	return slices.Contains(allowQueries, path)
}
