package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
)

// ModuleCdc is used to decode acknowledgements written by core IBC. Note, the codec
// should ONLY be used for JSON encoding of IBC core types.
var ModuleCdc = codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
