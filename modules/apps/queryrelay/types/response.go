package types

// QueryResponse is delivered to the callback address of a query packet once the
// outcome of the packet is known. Exactly one of Results or Error is set.
type QueryResponse struct {
	Callback      string          `json:"callback"`
	SourcePort    string          `json:"source_port"`
	SourceChannel string          `json:"source_channel"`
	Sequence      uint64          `json:"sequence"`
	Results       AggregateResult `json:"results,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// TimeoutError is the Error reported to callbacks when a query packet times out.
const TimeoutError = "packet timed out"

// Success returns true if the query packet was processed by the receiving chain.
func (r QueryResponse) Success() bool {
	return r.Error == ""
}
