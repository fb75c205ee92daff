package types

import (
	"strconv"

	"google.golang.org/protobuf/encoding/protowire"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// SpotPriceQueryPath is the fully-qualified gRPC method answering spot price queries
	SpotPriceQueryPath = "/osmosis.gamm.v2.Query/SpotPrice"

	// SpotPriceSchemaVersion identifies the field layout produced by SpotPriceRequest.Marshal.
	// Bump it together with the field numbers below.
	SpotPriceSchemaVersion = 1
)

// spot price request field numbers, schema version 1
const (
	spotPriceFieldPoolID        protowire.Number = 1
	spotPriceFieldTokenInDenom  protowire.Number = 2
	spotPriceFieldTokenOutDenom protowire.Number = 3
	spotPriceFieldWithSwapFee   protowire.Number = 4
)

// spot price response field numbers, schema version 1
const spotPriceResponseFieldSpotPrice protowire.Number = 1

// SpotPriceRequest is the binary request understood by SpotPriceQueryPath.
type SpotPriceRequest struct {
	PoolID        uint64
	TokenInDenom  string
	TokenOutDenom string
	WithSwapFee   bool
}

// NewSpotPriceQuery builds the query descriptor asking the destination chain for the spot
// price of tokenOutDenom in pool poolID, quoted in tokenInDenom.
func NewSpotPriceQuery(poolID uint64, tokenInDenom, tokenOutDenom string, withSwapFee bool) QueryDescriptor {
	req := SpotPriceRequest{
		PoolID:        poolID,
		TokenInDenom:  tokenInDenom,
		TokenOutDenom: tokenOutDenom,
		WithSwapFee:   withSwapFee,
	}

	return QueryDescriptor{
		Path: SpotPriceQueryPath,
		Data: req.Marshal(),
	}
}

// Marshal encodes the request field by field. Zero values are omitted so the output is
// canonical for a given request.
func (r SpotPriceRequest) Marshal() []byte {
	var bz []byte

	if r.PoolID != 0 {
		bz = protowire.AppendTag(bz, spotPriceFieldPoolID, protowire.VarintType)
		bz = protowire.AppendVarint(bz, r.PoolID)
	}

	if r.TokenInDenom != "" {
		bz = protowire.AppendTag(bz, spotPriceFieldTokenInDenom, protowire.BytesType)
		bz = protowire.AppendString(bz, r.TokenInDenom)
	}

	if r.TokenOutDenom != "" {
		bz = protowire.AppendTag(bz, spotPriceFieldTokenOutDenom, protowire.BytesType)
		bz = protowire.AppendString(bz, r.TokenOutDenom)
	}

	if r.WithSwapFee {
		bz = protowire.AppendTag(bz, spotPriceFieldWithSwapFee, protowire.VarintType)
		bz = protowire.AppendVarint(bz, protowire.EncodeBool(true))
	}

	return bz
}

// DecodeSpotPriceRequest decodes a payload produced by SpotPriceRequest.Marshal.
// Unknown fields are skipped.
func DecodeSpotPriceRequest(bz []byte) (SpotPriceRequest, error) {
	var req SpotPriceRequest

	for len(bz) > 0 {
		num, typ, n := protowire.ConsumeTag(bz)
		if n < 0 {
			return SpotPriceRequest{}, errorsmod.Wrap(ErrInvalidQueryPayload, protowire.ParseError(n).Error())
		}
		bz = bz[n:]

		switch {
		case num == spotPriceFieldPoolID && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(bz)
			if n < 0 {
				return SpotPriceRequest{}, errorsmod.Wrapf(ErrInvalidQueryPayload, "pool_id: %s", protowire.ParseError(n))
			}
			req.PoolID = v
			bz = bz[n:]
		case num == spotPriceFieldTokenInDenom && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(bz)
			if n < 0 {
				return SpotPriceRequest{}, errorsmod.Wrapf(ErrInvalidQueryPayload, "token_in_denom: %s", protowire.ParseError(n))
			}
			req.TokenInDenom = v
			bz = bz[n:]
		case num == spotPriceFieldTokenOutDenom && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(bz)
			if n < 0 {
				return SpotPriceRequest{}, errorsmod.Wrapf(ErrInvalidQueryPayload, "token_out_denom: %s", protowire.ParseError(n))
			}
			req.TokenOutDenom = v
			bz = bz[n:]
		case num == spotPriceFieldWithSwapFee && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(bz)
			if n < 0 {
				return SpotPriceRequest{}, errorsmod.Wrapf(ErrInvalidQueryPayload, "with_swap_fee: %s", protowire.ParseError(n))
			}
			req.WithSwapFee = protowire.DecodeBool(v)
			bz = bz[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, bz)
			if n < 0 {
				return SpotPriceRequest{}, errorsmod.Wrapf(ErrInvalidQueryPayload, "field %d: %s", num, protowire.ParseError(n))
			}
			bz = bz[n:]
		}
	}

	return req, nil
}

// EncodeSpotPriceResponse encodes a spot price response payload.
func EncodeSpotPriceResponse(spotPrice string) []byte {
	if spotPrice == "" {
		return nil
	}

	bz := protowire.AppendTag(nil, spotPriceResponseFieldSpotPrice, protowire.BytesType)
	return protowire.AppendString(bz, spotPrice)
}

// DecodeSpotPriceResponse returns the decimal spot price carried by a successful
// spot price query result.
func DecodeSpotPriceResponse(bz []byte) (string, error) {
	var spotPrice string

	for len(bz) > 0 {
		num, typ, n := protowire.ConsumeTag(bz)
		if n < 0 {
			return "", errorsmod.Wrap(ErrInvalidQueryPayload, protowire.ParseError(n).Error())
		}
		bz = bz[n:]

		if num == spotPriceResponseFieldSpotPrice && typ == protowire.BytesType {
			v, n := protowire.ConsumeString(bz)
			if n < 0 {
				return "", errorsmod.Wrapf(ErrInvalidQueryPayload, "spot_price: %s", protowire.ParseError(n))
			}
			spotPrice = v
			bz = bz[n:]
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, bz)
		if n < 0 {
			return "", errorsmod.Wrapf(ErrInvalidQueryPayload, "field %d: %s", num, protowire.ParseError(n))
		}
		bz = bz[n:]
	}

	return spotPrice, nil
}

// SpotPriceDescription is the human-level form of a spot price query carried inside a
// query packet. The host turns it into a QueryDescriptor before dispatch.
type SpotPriceDescription struct {
	PoolID          string `json:"pool_id"`
	BaseAssetDenom  string `json:"base_asset_denom"`
	QuoteAssetDenom string `json:"quote_asset_denom"`
	WithSwapFee     bool   `json:"with_swap_fee,omitempty"`
}

// ValidateBasic checks the denoms of the description. The pool id is checked by ToQuery.
func (d SpotPriceDescription) ValidateBasic() error {
	if err := sdk.ValidateDenom(d.BaseAssetDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidPacketData, "base asset denom: %s", err)
	}

	if err := sdk.ValidateDenom(d.QuoteAssetDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidPacketData, "quote asset denom: %s", err)
	}

	return nil
}

// ToQuery parses the decimal pool id and builds the spot price query descriptor.
func (d SpotPriceDescription) ToQuery() (QueryDescriptor, error) {
	if err := d.ValidateBasic(); err != nil {
		return QueryDescriptor{}, err
	}

	poolID, err := strconv.ParseUint(d.PoolID, 10, 64)
	if err != nil {
		return QueryDescriptor{}, errorsmod.Wrapf(ErrInvalidPoolID, "%q is not a pool id", d.PoolID)
	}

	return NewSpotPriceQuery(poolID, d.BaseAssetDenom, d.QuoteAssetDenom, d.WithSwapFee), nil
}
