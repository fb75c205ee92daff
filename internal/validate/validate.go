package validate

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
)

// GRPCChannelRequest validates that the channelID of a gRPC Request is a valid identifier.
func GRPCChannelRequest(channelID string) error {
	if err := host.ChannelIdentifierValidator(channelID); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return nil
}

// GRPCSpotPriceRequest validates the pool and denoms of a spot price gRPC Request.
func GRPCSpotPriceRequest(poolID uint64, tokenInDenom, tokenOutDenom string) error {
	if poolID == 0 {
		return status.Error(codes.InvalidArgument, "pool id cannot be zero")
	}

	for _, denom := range []string{tokenInDenom, tokenOutDenom} {
		if err := sdk.ValidateDenom(denom); err != nil {
			return status.Error(codes.InvalidArgument, err.Error())
		}
	}

	return nil
}
