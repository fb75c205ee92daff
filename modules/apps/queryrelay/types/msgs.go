package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"
)

// MsgForwardQuery relays an ordered batch of queries to the chain at the other end of a
// query relay channel. The module does not accept payment: Funds must be empty.
type MsgForwardQuery struct {
	Sender string `json:"sender"`
	// ChannelID may be left empty to use the most recently connected channel.
	ChannelID string            `json:"channel_id,omitempty"`
	Callback  string            `json:"callback"`
	Requests  []QueryDescriptor `json:"requests"`
	Funds     sdk.Coins         `json:"funds,omitempty"`
}

// MsgForwardQueryResponse defines the response of a forwarded query.
type MsgForwardQueryResponse struct {
	ChannelID string `json:"channel_id"`
	Sequence  uint64 `json:"sequence"`
}

// NewMsgForwardQuery creates a new MsgForwardQuery instance
func NewMsgForwardQuery(sender, channelID, callback string, requests []QueryDescriptor) *MsgForwardQuery {
	return &MsgForwardQuery{
		Sender:    sender,
		ChannelID: channelID,
		Callback:  callback,
		Requests:  requests,
	}
}

// ValidateBasic performs a basic check of the MsgForwardQuery fields.
func (msg MsgForwardQuery) ValidateBasic() error {
	if err := validateForwardCommon(msg.Sender, msg.ChannelID, msg.Callback, msg.Funds); err != nil {
		return err
	}

	if len(msg.Requests) == 0 {
		return ErrEmptyQueryBatch
	}

	for i, req := range msg.Requests {
		if err := req.ValidateBasic(); err != nil {
			return errorsmod.Wrapf(err, "request %d", i)
		}
	}

	return nil
}

// MsgForwardSpotPriceQuery relays a spot price query for a single pool.
type MsgForwardSpotPriceQuery struct {
	Sender        string    `json:"sender"`
	ChannelID     string    `json:"channel_id,omitempty"`
	Callback      string    `json:"callback"`
	PoolID        uint64    `json:"pool_id"`
	TokenInDenom  string    `json:"token_in_denom"`
	TokenOutDenom string    `json:"token_out_denom"`
	WithSwapFee   bool      `json:"with_swap_fee,omitempty"`
	Funds         sdk.Coins `json:"funds,omitempty"`
}

// ValidateBasic performs a basic check of the MsgForwardSpotPriceQuery fields.
func (msg MsgForwardSpotPriceQuery) ValidateBasic() error {
	if err := validateForwardCommon(msg.Sender, msg.ChannelID, msg.Callback, msg.Funds); err != nil {
		return err
	}

	if msg.PoolID == 0 {
		return errorsmod.Wrap(ErrInvalidPoolID, "pool id cannot be zero")
	}

	if err := sdk.ValidateDenom(msg.TokenInDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidQueryPayload, "token in denom: %s", err)
	}

	if err := sdk.ValidateDenom(msg.TokenOutDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidQueryPayload, "token out denom: %s", err)
	}

	return nil
}

// Query returns the spot price query descriptor the message relays.
func (msg MsgForwardSpotPriceQuery) Query() QueryDescriptor {
	return NewSpotPriceQuery(msg.PoolID, msg.TokenInDenom, msg.TokenOutDenom, msg.WithSwapFee)
}

// validateForwardCommon rejects payment before anything else is looked at.
func validateForwardCommon(sender, channelID, callback string, funds sdk.Coins) error {
	if !funds.Empty() {
		return errorsmod.Wrapf(ErrPaymentNotAccepted, "got %s", funds)
	}

	if _, err := sdk.AccAddressFromBech32(sender); err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	if err := ValidateCallback(callback); err != nil {
		return err
	}

	if channelID != "" {
		if err := host.ChannelIdentifierValidator(channelID); err != nil {
			return err
		}
	}

	return nil
}

// ValidateCallback checks that the callback is an address of this chain.
func ValidateCallback(callback string) error {
	if _, err := sdk.AccAddressFromBech32(callback); err != nil {
		return errorsmod.Wrapf(ErrInvalidCallback, "%s: %v", callback, err)
	}

	return nil
}

// MsgServer is the server API for the query relay messages.
type MsgServer interface {
	ForwardQuery(context.Context, *MsgForwardQuery) (*MsgForwardQueryResponse, error)
	ForwardSpotPriceQuery(context.Context, *MsgForwardSpotPriceQuery) (*MsgForwardQueryResponse, error)
}
