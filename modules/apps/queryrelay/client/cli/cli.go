package cli

import (
	"github.com/spf13/cobra"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

// GetQueryCmd returns the query relay commands. They build and inspect query packets
// offline and do not need a node.
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "IBC query relay packet utilities",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       runHelp,
	}

	queryCmd.AddCommand(
		GetCmdEncodePacket(),
		GetCmdSpotPricePacket(),
		GetCmdDecodeAck(),
	)

	return queryCmd
}

func runHelp(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}
