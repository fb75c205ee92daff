package cli

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/cosmos/cosmos-sdk/version"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

const (
	FlagCallback    = "callback"
	FlagWithSwapFee = "with-swap-fee"
	FlagSpotPrice   = "spot-price"
)

// batchFile is the YAML layout read by the encode command. Request data is base64.
type batchFile struct {
	Callback string `yaml:"callback"`
	Requests []struct {
		Path string `yaml:"path"`
		Data string `yaml:"data"`
	} `yaml:"requests"`
}

// ReadBatchFile reads a YAML batch file into query packet data. The callback flag,
// when set, overrides the callback of the file.
func ReadBatchFile(path, callback string) (types.QueryPacketData, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return types.QueryPacketData{}, err
	}

	var batch batchFile
	if err := yaml.UnmarshalStrict(bz, &batch); err != nil {
		return types.QueryPacketData{}, fmt.Errorf("failed to parse batch file %s: %w", path, err)
	}

	if callback == "" {
		callback = batch.Callback
	}

	requests := make([]types.QueryDescriptor, len(batch.Requests))
	for i, req := range batch.Requests {
		data, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			return types.QueryPacketData{}, fmt.Errorf("request %d: data is not base64: %w", i, err)
		}

		requests[i] = types.QueryDescriptor{Path: req.Path, Data: data}
	}

	pd := types.NewQueryPacketData(callback, requests...)
	if err := pd.ValidateBasic(); err != nil {
		return types.QueryPacketData{}, err
	}

	return pd, nil
}

// GetCmdEncodePacket returns the command to encode a batch file into query packet data.
func GetCmdEncodePacket() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode-packet [batch-file]",
		Short: "Encode a YAML batch of queries into query relay packet data",
		Long: strings.TrimSpace(
			fmt.Sprintf(`Encode a YAML batch of queries into the JSON packet data sent over a query relay channel.

Example:
  $ %s %s encode-packet batch.yaml --callback=[address]
`, version.AppName, types.ModuleName),
		),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			callback, err := cmd.Flags().GetString(FlagCallback)
			if err != nil {
				return err
			}

			pd, err := ReadBatchFile(args[0], callback)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(pd.GetBytes()))
			return err
		},
	}

	cmd.Flags().String(FlagCallback, "", "Address notified with the query results, overrides the batch file")

	return cmd
}

// GetCmdSpotPricePacket returns the command to build a spot price query packet.
func GetCmdSpotPricePacket() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spot-price-packet [pool-id] [token-in-denom] [token-out-denom]",
		Short: "Build query relay packet data for a spot price query",
		Long: strings.TrimSpace(
			fmt.Sprintf(`Build the JSON packet data of a single spot price query.

Example:
  $ %s %s spot-price-packet 1 uatom uosmo --callback=[address]
`, version.AppName, types.ModuleName),
		),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := cast.ToUint64E(args[0])
			if err != nil || poolID == 0 {
				return fmt.Errorf("invalid pool id %q", args[0])
			}

			callback, err := cmd.Flags().GetString(FlagCallback)
			if err != nil {
				return err
			}

			withSwapFee, err := cmd.Flags().GetBool(FlagWithSwapFee)
			if err != nil {
				return err
			}

			pd := types.NewQueryPacketData(callback, types.NewSpotPriceQuery(poolID, args[1], args[2], withSwapFee))
			if err := pd.ValidateBasic(); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(pd.GetBytes()))
			return err
		},
	}

	cmd.Flags().String(FlagCallback, "", "Address notified with the query results")
	cmd.Flags().Bool(FlagWithSwapFee, false, "Include the pool swap fee in the spot price")

	return cmd
}

// decodedResult is the printable form of a CallResult.
type decodedResult struct {
	Index     int    `json:"index"`
	Success   bool   `json:"success"`
	Data      []byte `json:"data"`
	Error     string `json:"error,omitempty"`
	SpotPrice string `json:"spot_price,omitempty"`
}

// GetCmdDecodeAck returns the command to decode a query relay acknowledgement.
func GetCmdDecodeAck() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode-ack [acknowledgement]",
		Short: "Decode a query relay acknowledgement into its per-query results",
		Long: strings.TrimSpace(
			fmt.Sprintf(`Decode the JSON acknowledgement of a query relay packet.

Example:
  $ %s %s decode-ack '{"result":"W10="}'
  $ %s %s decode-ack '{"result":"..."}' --spot-price
`, version.AppName, types.ModuleName, version.AppName, types.ModuleName),
		),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spotPrice, err := cmd.Flags().GetBool(FlagSpotPrice)
			if err != nil {
				return err
			}

			out, err := DecodeAcknowledgement([]byte(args[0]), spotPrice)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().Bool(FlagSpotPrice, false, "Decode successful results as spot price responses")

	return cmd
}

// DecodeAcknowledgement renders an acknowledgement as indented JSON.
func DecodeAcknowledgement(bz []byte, spotPrice bool) ([]byte, error) {
	ack, err := types.UnmarshalAcknowledgement(bz)
	if err != nil {
		return nil, err
	}

	if !ack.Success() {
		return json.MarshalIndent(map[string]string{"error": ack.GetError()}, "", "  ")
	}

	results, err := types.DecodeAggregateResult(ack.GetResult())
	if err != nil {
		return nil, err
	}

	decoded := make([]decodedResult, len(results))
	for i, res := range results {
		decoded[i] = decodedResult{Index: i, Success: res.Success, Data: res.Data}
		if !res.Success {
			decoded[i].Error = string(res.Data)
			continue
		}

		if spotPrice {
			if decoded[i].SpotPrice, err = types.DecodeSpotPriceResponse(res.Data); err != nil {
				return nil, fmt.Errorf("result %d: %w", i, err)
			}
		}
	}

	return json.MarshalIndent(map[string]any{"results": decoded}, "", "  ")
}
