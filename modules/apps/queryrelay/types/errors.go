package types

import (
	errorsmod "cosmossdk.io/errors"
)

// query relay sentinel errors
var (
	ErrInvalidChannelOrder      = errorsmod.Register(ModuleName, 2, "invalid channel order")
	ErrInvalidChannelVersion    = errorsmod.Register(ModuleName, 3, "invalid channel version")
	ErrChannelAlreadyRegistered = errorsmod.Register(ModuleName, 4, "cannot register over an existing channel")
	ErrInvalidPacketData        = errorsmod.Register(ModuleName, 5, "invalid query packet data")
	ErrInvalidPoolID            = errorsmod.Register(ModuleName, 6, "invalid pool id")
	ErrQuerySystem              = errorsmod.Register(ModuleName, 7, "querier system error")
	ErrQueryContract            = errorsmod.Register(ModuleName, 8, "querier contract error")
	ErrPaymentNotAccepted       = errorsmod.Register(ModuleName, 9, "payment not accepted")
	ErrInvalidCallback          = errorsmod.Register(ModuleName, 10, "invalid callback address")
	ErrInvalidPacketLifetime    = errorsmod.Register(ModuleName, 11, "invalid packet lifetime")
	ErrEmptyQueryBatch          = errorsmod.Register(ModuleName, 12, "query batch must contain at least one request")
	ErrQueryPathNotAllowed      = errorsmod.Register(ModuleName, 13, "query path not allowed")
	ErrInvalidAcknowledgement   = errorsmod.Register(ModuleName, 14, "invalid query acknowledgement")
	ErrInvalidQueryPayload      = errorsmod.Register(ModuleName, 15, "invalid query payload")
	ErrNoActiveChannel          = errorsmod.Register(ModuleName, 16, "no active query relay channel")
)
