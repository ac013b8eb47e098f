package pricing

// Rates holds per-million-token pricing for a model.
type Rates struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// DefaultRates contains current pricing for common models (as of 2025).
var DefaultRates = map[string]Rates{
	"claude-opus-4":   {InputPerMillion: 15.0, OutputPerMillion: 75.0},
	"claude-sonnet-4": {InputPerMillion: 3.0, OutputPerMillion: 15.0},
	"claude-haiku-3":  {InputPerMillion: 0.25, OutputPerMillion: 1.25},

	// Default fallback
	"default": {InputPerMillion: 3.0, OutputPerMillion: 15.0},
}

// RatesFor returns the rates for a model, or the default rates if the
// model is not in the table.
func RatesFor(model string) Rates {
	if r, ok := DefaultRates[model]; ok {
		return r
	}
	return DefaultRates["default"]
}

// CostEstimate is the itemized cost of a projected request.
type CostEstimate struct {
	Model        string
	InputTokens  int
	OutputTokens int
	InputCost    float64
	OutputCost   float64
	TotalCost    float64
}

// Estimate calculates the cost of a request at the given rates.
func Estimate(model string, inputTokens, outputTokens int, rates Rates) CostEstimate {
	inputCost := float64(inputTokens) / 1_000_000 * rates.InputPerMillion
	outputCost := float64(outputTokens) / 1_000_000 * rates.OutputPerMillion
	return CostEstimate{
		Model:        model,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		InputCost:    inputCost,
		OutputCost:   outputCost,
		TotalCost:    inputCost + outputCost,
	}
}

// EstimateWithDefaults calculates the cost of a request using the rates
// from the DefaultRates table.
func EstimateWithDefaults(model string, inputTokens, outputTokens int) CostEstimate {
	return Estimate(model, inputTokens, outputTokens, RatesFor(model))
}
