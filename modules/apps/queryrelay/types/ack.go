package types

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// CallResult is the outcome of a single query of a batch. The data of a failed query is
// a UTF-8 description of the failure.
type CallResult struct {
	Success bool   `json:"success"`
	Data    []byte `json:"data"`
}

// NewSuccessResult returns a CallResult for a query that returned data.
func NewSuccessResult(data []byte) CallResult {
	if data == nil {
		data = []byte{}
	}

	return CallResult{Success: true, Data: data}
}

// NewFailureResult returns a CallResult for a query that failed. Data holds the error
// description, so err must have a deterministic message.
func NewFailureResult(err error) CallResult {
	return CallResult{Success: false, Data: []byte(err.Error())}
}

// AggregateResult holds one CallResult per query, in batch order.
type AggregateResult []CallResult

// Failures returns the number of failed queries.
func (r AggregateResult) Failures() int {
	var n int
	for _, res := range r {
		if !res.Success {
			n++
		}
	}

	return n
}

// NewQueryAcknowledgement turns the outcome of processing a query packet into an
// acknowledgement. It never fails: a processing error, or results that cannot be
// serialised, produce an error acknowledgement.
func NewQueryAcknowledgement(results AggregateResult, err error) channeltypes.Acknowledgement {
	if err != nil {
		return NewInvalidPacketAcknowledgement(err)
	}

	if results == nil {
		results = AggregateResult{}
	}

	bz, err := json.Marshal(results)
	if err != nil {
		return NewInvalidPacketAcknowledgement(errorsmod.Wrap(ErrInvalidAcknowledgement, "cannot serialise query results"))
	}

	return channeltypes.NewResultAcknowledgement(bz)
}

// NewInvalidPacketAcknowledgement returns an error acknowledgement carrying the cause.
// Unlike channeltypes.NewErrorAcknowledgement the message is not redacted, so callers
// must only pass errors with deterministic messages.
func NewInvalidPacketAcknowledgement(err error) channeltypes.Acknowledgement {
	return channeltypes.Acknowledgement{
		Response: &channeltypes.Acknowledgement_Error{
			Error: fmt.Sprintf("invalid packet: %s", err),
		},
	}
}

// UnmarshalAcknowledgement decodes and validates acknowledgement bytes written by the
// receiving chain.
func UnmarshalAcknowledgement(bz []byte) (channeltypes.Acknowledgement, error) {
	var ack channeltypes.Acknowledgement
	if err := ModuleCdc.UnmarshalJSON(bz, &ack); err != nil {
		return channeltypes.Acknowledgement{}, errorsmod.Wrapf(ErrInvalidAcknowledgement, "cannot unmarshal query relay acknowledgement: %v", err)
	}

	if err := ack.ValidateBasic(); err != nil {
		return channeltypes.Acknowledgement{}, errorsmod.Wrap(ErrInvalidAcknowledgement, err.Error())
	}

	return ack, nil
}

// DecodeAggregateResult decodes the result payload of a successful acknowledgement.
func DecodeAggregateResult(bz []byte) (AggregateResult, error) {
	var results AggregateResult
	if err := json.Unmarshal(bz, &results); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAcknowledgement, "cannot decode query results: %v", err)
	}

	return results, nil
}
