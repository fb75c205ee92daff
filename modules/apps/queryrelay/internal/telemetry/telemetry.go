package telemetry

import (
	"github.com/hashicorp/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"

	coremetrics "github.com/cosmos/ibc-go/v10/modules/core/metrics"

	"github.com/notional-labs/ibc-query-relay/modules/apps/queryrelay/types"
)

func ReportSendQuery(sourcePort, sourceChannel string, numRequests int) {
	labels := []metrics.Label{
		telemetry.NewLabel(coremetrics.LabelSourcePort, sourcePort),
		telemetry.NewLabel(coremetrics.LabelSourceChannel, sourceChannel),
	}

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "send"},
		1,
		labels,
	)

	telemetry.SetGaugeWithLabels(
		[]string{"tx", "msg", "ibc", types.ModuleName, "requests"},
		float32(numRequests),
		labels,
	)
}

func ReportOnRecvPacket(destinationPort, destinationChannel string, results types.AggregateResult, success bool) {
	labels := []metrics.Label{
		telemetry.NewLabel(coremetrics.LabelDestinationPort, destinationPort),
		telemetry.NewLabel(coremetrics.LabelDestinationChannel, destinationChannel),
	}

	if !success {
		telemetry.IncrCounterWithLabels(
			[]string{"ibc", types.ModuleName, "packet", "rejected"},
			1,
			labels,
		)
		return
	}

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "receive"},
		1,
		labels,
	)

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "query", "executed"},
		float32(len(results)),
		labels,
	)

	if failures := results.Failures(); failures > 0 {
		telemetry.IncrCounterWithLabels(
			[]string{"ibc", types.ModuleName, "query", "failed"},
			float32(failures),
			labels,
		)
	}
}

func ReportAcknowledgement(sourcePort, sourceChannel string, success bool) {
	name := "ack_success"
	if !success {
		name = "ack_error"
	}

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, name},
		1,
		[]metrics.Label{
			telemetry.NewLabel(coremetrics.LabelSourcePort, sourcePort),
			telemetry.NewLabel(coremetrics.LabelSourceChannel, sourceChannel),
		},
	)
}

func ReportTimeout(sourcePort, sourceChannel string) {
	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "timeout"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(coremetrics.LabelSourcePort, sourcePort),
			telemetry.NewLabel(coremetrics.LabelSourceChannel, sourceChannel),
		},
	)
}
