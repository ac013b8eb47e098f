package budget

import (
	"github.com/randalmurphal/budgetkit/tokens"
)

// Result is the outcome of one allocation call. It is never mutated after
// being returned.
type Result struct {
	// Allocations maps section name to its permitted token count.
	Allocations map[string]int

	// TotalAllocated is the sum of all allocations.
	TotalAllocated int

	// TotalAvailable is the budget that was available for sections.
	TotalAvailable int

	// Overflow is how far TotalAllocated still exceeds TotalAvailable
	// after remediation. Zero when the allocation fits.
	Overflow int

	// QualityScore rates how well the allocation preserved requested
	// content, in [0, 1].
	QualityScore float64

	// StrategiesUsed lists the cascade steps that achieved a reduction,
	// in application order.
	StrategiesUsed []string
}

// Allocator computes per-section token allocations under a fixed Config.
// Strategy implementations are resolved once at construction; an invalid
// config is rejected here, never silently defaulted later.
type Allocator struct {
	cfg      Config
	counter  tokens.Counter
	strategy allocationStrategy
	cascade  []overflowStrategy
}

// New creates an Allocator for the given config.
func New(cfg Config) (*Allocator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	counter, err := tokens.NewCounter(cfg.CountingStrategy)
	if err != nil {
		// Validate already vetted the strategy name.
		return nil, err
	}
	if cfg.CacheTokenCounts {
		counter = tokens.NewCachingCounter(counter, cfg.CacheSize)
	}

	chain := cfg.cascade()
	cascade := make([]overflowStrategy, 0, len(chain))
	for _, name := range chain {
		cascade = append(cascade, newOverflowStrategy(name))
	}

	return &Allocator{
		cfg:      cfg,
		counter:  counter,
		strategy: newAllocationStrategy(cfg.AllocationStrategy),
		cascade:  cascade,
	}, nil
}

// Config returns the allocator's configuration.
func (a *Allocator) Config() Config {
	return a.cfg
}

// CountTokens estimates the token count of text under the configured
// counting strategy.
func (a *Allocator) CountTokens(text string) int {
	return a.counter.Count(text)
}

// Allocate computes a token allocation for the given sections. Sections
// are mutated only in their derived fields: TokenCount is computed when
// unset, and the compress step marks Compressed/CompressionRatio.
//
// Allocate never fails: a zero or negative available budget takes the
// emergency-minimal path, and an unresolvable overflow is reported in the
// Result rather than raised.
func (a *Allocator) Allocate(sections []*Section) *Result {
	if len(sections) == 0 {
		return &Result{
			Allocations:    map[string]int{},
			TotalAvailable: a.cfg.Available(),
			QualityScore:   1.0,
			StrategiesUsed: []string{},
		}
	}

	available := a.cfg.Available()
	if available <= 0 {
		return a.emergencyMinimal(sections, available)
	}

	for _, s := range sections {
		if s.TokenCount == 0 {
			s.TokenCount = a.counter.Count(s.Content)
		}
	}

	allocs := a.strategy.allocate(sections, available)
	used := []string{}

	overflow := sumAllocations(allocs) - available
	if overflow > a.cfg.toleratedOverflow(available) {
		for _, step := range a.cascade {
			reduced := step.reduce(sections, allocs, overflow)
			if reduced > 0 {
				used = append(used, step.name())
			}
			overflow = sumAllocations(allocs) - available
			if overflow <= 0 {
				break
			}
		}
	}

	total := sumAllocations(allocs)
	return &Result{
		Allocations:    allocs,
		TotalAllocated: total,
		TotalAvailable: available,
		Overflow:       maxInt(0, total-available),
		QualityScore:   qualityScore(sections, allocs),
		StrategiesUsed: used,
	}
}

// emergencyMinimal handles a budget exhausted by reservations alone:
// one token per section when available is exactly zero, none when it is
// negative.
func (a *Allocator) emergencyMinimal(sections []*Section, available int) *Result {
	per := available + 1
	if per > 1 {
		per = 1
	}
	if per < 0 {
		per = 0
	}

	allocs := make(map[string]int, len(sections))
	for _, s := range sections {
		allocs[s.Name] = per
	}

	return &Result{
		Allocations:    allocs,
		TotalAllocated: per * len(sections),
		TotalAvailable: available,
		Overflow:       maxInt(0, -available),
		QualityScore:   0.0,
		StrategiesUsed: []string{"emergency_minimal"},
	}
}

func sumAllocations(allocs map[string]int) int {
	total := 0
	for _, n := range allocs {
		total += n
	}
	return total
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
