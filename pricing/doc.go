// Package pricing estimates request costs from token counts.
//
// Costs are computed as a pure linear formula over input and output token
// counts at per-million-token rates:
//
//	est := pricing.Estimate("claude-sonnet-4", 12000, 800, pricing.Rates{
//	    InputPerMillion:  3.0,
//	    OutputPerMillion: 15.0,
//	})
//	fmt.Println(est.TotalCost)
//
// A small table of current rates is provided for convenience:
//
//	est := pricing.EstimateWithDefaults("claude-opus-4", 12000, 800)
//
// Unknown models fall back to the "default" table entry.
package pricing
