package types

import (
	errorsmod "cosmossdk.io/errors"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// ValidateChannelOrder returns an error if the proposed ordering is not the one query
// relay channels are opened with.
func ValidateChannelOrder(order channeltypes.Order) error {
	if order != ChannelOrder {
		return errorsmod.Wrapf(ErrInvalidChannelOrder, "expected %s channel, got %s", ChannelOrder, order)
	}

	return nil
}

// ValidateCounterpartyVersion checks a version declared by the other side of the
// handshake. An empty version is treated as undeclared and accepted.
func ValidateCounterpartyVersion(version string) error {
	if version == "" {
		return nil
	}

	if version != Version {
		return errorsmod.Wrapf(ErrInvalidChannelVersion, "expected %s, got %s", Version, version)
	}

	return nil
}

// NegotiateVersion validates the ordering and optional counterparty version of a
// channel being opened and returns the version the channel must use.
func NegotiateVersion(order channeltypes.Order, counterpartyVersion string) (string, error) {
	if err := ValidateChannelOrder(order); err != nil {
		return "", err
	}

	if err := ValidateCounterpartyVersion(counterpartyVersion); err != nil {
		return "", err
	}

	return Version, nil
}
