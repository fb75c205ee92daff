package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// QueryDescriptor is a single read-only query: the fully-qualified path of the query
// handler and its binary request payload.
type QueryDescriptor struct {
	Path string `json:"path"`
	Data []byte `json:"data"`
}

// ValidateBasic performs a stateless check of the descriptor.
func (q QueryDescriptor) ValidateBasic() error {
	if strings.TrimSpace(q.Path) == "" {
		return errorsmod.Wrap(ErrInvalidPacketData, "query path cannot be empty")
	}

	return nil
}

// QueryPacketData is the payload of a query relay packet. It carries either an ordered
// batch of raw query descriptors or a single spot price description, plus the address on
// the sending chain that is notified with the results.
type QueryPacketData struct {
	Requests  []QueryDescriptor     `json:"requests,omitempty"`
	SpotPrice *SpotPriceDescription `json:"spot_price,omitempty"`
	Callback  string                `json:"callback,omitempty"`
}

// NewQueryPacketData creates a packet carrying the given ordered batch. A batch of one
// request is the non-batched form.
func NewQueryPacketData(callback string, requests ...QueryDescriptor) QueryPacketData {
	return QueryPacketData{
		Requests: requests,
		Callback: callback,
	}
}

// NewSpotPriceQueryPacketData creates a packet carrying a spot price description.
func NewSpotPriceQueryPacketData(callback string, description SpotPriceDescription) QueryPacketData {
	return QueryPacketData{
		SpotPrice: &description,
		Callback:  callback,
	}
}

// ValidateBasic performs a stateless check of the packet data before it is sent. The
// callback is an address on the sending chain and is validated there.
func (pd QueryPacketData) ValidateBasic() error {
	if err := pd.validateStructure(); err != nil {
		return err
	}

	for i, req := range pd.Requests {
		if err := req.ValidateBasic(); err != nil {
			return errorsmod.Wrapf(err, "request %d", i)
		}
	}

	return nil
}

// validateStructure checks the shape of the packet but not the individual requests.
// A bad request on the receiving side fails only its own slot of the batch.
func (pd QueryPacketData) validateStructure() error {
	if pd.SpotPrice != nil {
		if len(pd.Requests) != 0 {
			return errorsmod.Wrap(ErrInvalidPacketData, "requests and spot_price are mutually exclusive")
		}

		return pd.SpotPrice.ValidateBasic()
	}

	if len(pd.Requests) == 0 {
		return ErrEmptyQueryBatch
	}

	return nil
}

// Queries returns the ordered batch of descriptors to dispatch. A spot price
// description is translated into its binary request here.
func (pd QueryPacketData) Queries() ([]QueryDescriptor, error) {
	if pd.SpotPrice == nil {
		return pd.Requests, nil
	}

	query, err := pd.SpotPrice.ToQuery()
	if err != nil {
		return nil, err
	}

	return []QueryDescriptor{query}, nil
}

// GetBytes is a helper for serialising the packet data.
func (pd QueryPacketData) GetBytes() []byte {
	bz, err := json.Marshal(pd)
	if err != nil {
		panic(err)
	}

	return sdk.MustSortJSON(bz)
}

// DecodePacketData strictly decodes query packet data and validates its structure.
// Unknown fields and trailing bytes are rejected. Individual requests are not validated
// here; the dispatcher fails them one by one. Decoding errors are reduced to a stable description since
// they end up in acknowledgements.
func DecodePacketData(bz []byte) (QueryPacketData, error) {
	var pd QueryPacketData

	dec := json.NewDecoder(bytes.NewReader(bz))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&pd); err != nil {
		return QueryPacketData{}, errorsmod.Wrap(ErrInvalidPacketData, describeDecodeError(err))
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return QueryPacketData{}, errorsmod.Wrap(ErrInvalidPacketData, "unexpected data after packet payload")
	}

	if err := pd.validateStructure(); err != nil {
		return QueryPacketData{}, err
	}

	return pd, nil
}

func describeDecodeError(err error) string {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return "packet payload is empty or truncated"
	case errors.As(err, &syntaxErr):
		return "packet payload is not valid JSON"
	case errors.As(err, &typeErr):
		return "unexpected type for field " + typeErr.Field
	case strings.HasPrefix(err.Error(), "json: unknown field"):
		return "unknown field in packet payload"
	default:
		return "cannot unmarshal query packet data"
	}
}
