package budget

import (
	"fmt"

	"github.com/randalmurphal/budgetkit/tokens"
)

// Strategy identifies an allocation strategy.
type Strategy string

const (
	// StrategyBalanced weights sections by priority and size, splitting
	// the budget proportionally under contention. This is the default.
	StrategyBalanced Strategy = "balanced"

	// StrategySpeed favors small sections and high priorities, halving
	// everything else.
	StrategySpeed Strategy = "speed"

	// StrategyQuality serves priority groups in descending order, each
	// section getting its full request while budget remains.
	StrategyQuality Strategy = "quality"

	// StrategyMinimal greedily serves sections in weighted-score order.
	StrategyMinimal Strategy = "minimal"
)

// ParseStrategy validates an allocation strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(name); s {
	case StrategyBalanced, StrategySpeed, StrategyQuality, StrategyMinimal:
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAllocationStrategy, name)
}

// OverflowStrategy identifies an overflow remediation step.
type OverflowStrategy string

const (
	// OverflowCompress reduces each section by up to 30% in a single pass.
	OverflowCompress OverflowStrategy = "compress"

	// OverflowTruncateEnd, OverflowTruncateStart, and OverflowTruncateMiddle
	// reduce sections smallest-first by up to 50%, floored at 1 token.
	// The position is advisory metadata for the consumer; the reduction
	// algorithm is shared.
	OverflowTruncateEnd    OverflowStrategy = "truncate_end"
	OverflowTruncateStart  OverflowStrategy = "truncate_start"
	OverflowTruncateMiddle OverflowStrategy = "truncate_middle"

	// OverflowDelegate is reserved for moving content to a secondary
	// consumer. It is currently a no-op that reduces nothing.
	OverflowDelegate OverflowStrategy = "delegate"

	// OverflowDegrade reduces every section by up to 40%, floored at 1 token.
	OverflowDegrade OverflowStrategy = "degrade"
)

// ParseOverflowStrategy validates an overflow strategy name.
func ParseOverflowStrategy(name string) (OverflowStrategy, error) {
	switch s := OverflowStrategy(name); s {
	case OverflowCompress, OverflowTruncateEnd, OverflowTruncateStart,
		OverflowTruncateMiddle, OverflowDelegate, OverflowDegrade:
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOverflowStrategy, name)
}

// Config is the allocation policy. It is immutable during a call;
// construct one per Allocator or Manager.
type Config struct {
	// TotalBudget is the total token budget before reservations.
	TotalBudget int `yaml:"total_budget" toml:"total_budget" json:"total_budget"`

	// BufferTokens is a safety buffer subtracted from the total.
	BufferTokens int `yaml:"buffer_tokens" toml:"buffer_tokens" json:"buffer_tokens"`

	// MinResponseTokens is the allowance reserved for the response.
	MinResponseTokens int `yaml:"min_response_tokens" toml:"min_response_tokens" json:"min_response_tokens"`

	// CountingStrategy selects the token estimation strategy.
	CountingStrategy tokens.Strategy `yaml:"counting_strategy" toml:"counting_strategy" json:"counting_strategy"`

	// AllocationStrategy selects how the budget is split across sections.
	AllocationStrategy Strategy `yaml:"allocation_strategy" toml:"allocation_strategy" json:"allocation_strategy"`

	// OverflowStrategy is the first remediation step applied on overflow.
	OverflowStrategy OverflowStrategy `yaml:"overflow_strategy" toml:"overflow_strategy" json:"overflow_strategy"`

	// FallbackStrategies are further remediation steps, applied in order
	// after OverflowStrategy until the overflow is resolved.
	FallbackStrategies []OverflowStrategy `yaml:"fallback_strategies" toml:"fallback_strategies" json:"fallback_strategies,omitempty"`

	// QualityThreshold is the minimum acceptable quality score.
	QualityThreshold float64 `yaml:"quality_threshold" toml:"quality_threshold" json:"quality_threshold"`

	// AllowOverflow tolerates overflow up to MaxOverflowPercent of the
	// available budget before the remediation cascade runs.
	AllowOverflow      bool    `yaml:"allow_overflow" toml:"allow_overflow" json:"allow_overflow"`
	MaxOverflowPercent float64 `yaml:"max_overflow_percent" toml:"max_overflow_percent" json:"max_overflow_percent"`

	// CacheTokenCounts enables the exact-string token count memo.
	// CacheSize bounds it; 0 uses tokens.DefaultCacheSize.
	CacheTokenCounts bool `yaml:"cache_token_counts" toml:"cache_token_counts" json:"cache_token_counts"`
	CacheSize        int  `yaml:"cache_size" toml:"cache_size" json:"cache_size"`

	// HistoryLimit bounds the Manager's metrics history; 0 uses
	// DefaultHistoryLimit.
	HistoryLimit int `yaml:"history_limit" toml:"history_limit" json:"history_limit"`
}

// DefaultConfig returns the default allocation policy: balanced allocation
// with character-based counting and a compress -> truncate_end -> degrade
// overflow cascade.
func DefaultConfig() Config {
	return Config{
		TotalBudget:        100000,
		BufferTokens:       2000,
		MinResponseTokens:  4000,
		CountingStrategy:   tokens.StrategyCharacter,
		AllocationStrategy: StrategyBalanced,
		OverflowStrategy:   OverflowCompress,
		FallbackStrategies: []OverflowStrategy{OverflowTruncateEnd, OverflowDegrade},
		QualityThreshold:   0.7,
		CacheTokenCounts:   true,
	}
}

// Available returns the budget left for sections after reservations.
// It may be zero or negative; the allocator treats that as data, not as
// an error.
func (c Config) Available() int {
	return c.TotalBudget - c.BufferTokens - c.MinResponseTokens
}

// Validate rejects unrecognized strategy identifiers. All numeric fields
// are modeled as data: a zero or negative budget is a valid (degenerate)
// configuration.
func (c Config) Validate() error {
	if _, err := tokens.ParseStrategy(string(c.CountingStrategy)); err != nil {
		return &ConfigError{Field: "counting_strategy", Value: string(c.CountingStrategy), Err: err}
	}
	if _, err := ParseStrategy(string(c.AllocationStrategy)); err != nil {
		return &ConfigError{Field: "allocation_strategy", Value: string(c.AllocationStrategy), Err: err}
	}
	if _, err := ParseOverflowStrategy(string(c.OverflowStrategy)); err != nil {
		return &ConfigError{Field: "overflow_strategy", Value: string(c.OverflowStrategy), Err: err}
	}
	for _, s := range c.FallbackStrategies {
		if _, err := ParseOverflowStrategy(string(s)); err != nil {
			return &ConfigError{Field: "fallback_strategies", Value: string(s), Err: err}
		}
	}
	return nil
}

// cascade returns the ordered overflow strategy chain: the primary
// strategy followed by the fallbacks.
func (c Config) cascade() []OverflowStrategy {
	chain := make([]OverflowStrategy, 0, 1+len(c.FallbackStrategies))
	chain = append(chain, c.OverflowStrategy)
	chain = append(chain, c.FallbackStrategies...)
	return chain
}

// toleratedOverflow returns the overflow amount tolerated before the
// cascade runs.
func (c Config) toleratedOverflow(available int) int {
	if !c.AllowOverflow || c.MaxOverflowPercent <= 0 {
		return 0
	}
	return int(float64(available) * c.MaxOverflowPercent / 100)
}
