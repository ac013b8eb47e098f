package budget

import "sort"

// allocationStrategy computes an initial allocation map from the ordered
// section slice. Implementations iterate sections in slice order so that
// results are deterministic.
type allocationStrategy interface {
	allocate(sections []*Section, available int) map[string]int
}

// newAllocationStrategy resolves a validated strategy name. Config
// validation guarantees the name is known.
func newAllocationStrategy(s Strategy) allocationStrategy {
	switch s {
	case StrategySpeed:
		return speedStrategy{}
	case StrategyQuality:
		return qualityStrategy{}
	case StrategyMinimal:
		return minimalStrategy{}
	default:
		return balancedStrategy{}
	}
}

// sizeDiscount shrinks the weight of large sections so one huge section
// cannot crowd out everything else. Floored at 0.8 from 1000 tokens up.
func sizeDiscount(tokenCount int) float64 {
	d := 1.0 - float64(tokenCount)/1000.0
	if d < 0.8 {
		return 0.8
	}
	return d
}

// balancedStrategy gives every section its full request when everything
// fits, and otherwise splits the budget proportionally to
// priority x size-discount weights.
type balancedStrategy struct{}

func (balancedStrategy) allocate(sections []*Section, available int) map[string]int {
	allocs := make(map[string]int, len(sections))

	requested := 0
	for _, s := range sections {
		requested += s.TokenCount
	}
	if requested <= available {
		// No contention: everyone gets their (clamped) request.
		for _, s := range sections {
			allocs[s.Name] = s.clampTokens(s.TokenCount)
		}
		return allocs
	}

	weights := make([]float64, len(sections))
	totalWeight := 0.0
	for i, s := range sections {
		weights[i] = float64(s.Priority) * sizeDiscount(s.TokenCount)
		totalWeight += weights[i]
	}
	if totalWeight <= 0 {
		// Zero-priority sections only: split the budget evenly.
		per := maxInt(1, available/len(sections))
		for _, s := range sections {
			allocs[s.Name] = s.capTokens(per)
		}
		return allocs
	}

	leftover := available
	for i, s := range sections {
		n := maxInt(1, int(float64(available)*weights[i]/totalWeight))
		n = s.capTokens(n)
		allocs[s.Name] = n
		leftover -= n
	}

	// Spend leftover budget topping up sections below their minimum,
	// in original order.
	for _, s := range sections {
		if leftover <= 0 {
			break
		}
		if allocs[s.Name] < s.MinTokens {
			top := minInt(s.MinTokens-allocs[s.Name], leftover)
			allocs[s.Name] += top
			leftover -= top
		}
	}

	return allocs
}

// speedStrategy serves small sections first. Critical and high priority
// sections get their full request; everything else is halved.
type speedStrategy struct{}

func (speedStrategy) allocate(sections []*Section, available int) map[string]int {
	order := make([]*Section, len(sections))
	copy(order, sections)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].TokenCount < order[j].TokenCount
	})

	allocs := make(map[string]int, len(sections))
	remaining := available
	for _, s := range order {
		if remaining <= 0 {
			allocs[s.Name] = 0
			continue
		}

		want := s.TokenCount
		if s.Priority < PriorityHigh {
			want = s.TokenCount / 2
		}
		want = minInt(want, remaining)
		if want < s.MinTokens {
			// The minimum floor may overshoot the budget; the overflow
			// cascade reclaims the difference.
			want = s.MinTokens
		}
		want = s.capTokens(want)

		allocs[s.Name] = want
		remaining -= want
		if remaining < 0 {
			remaining = 0
		}
	}
	return allocs
}

// qualityStrategy serves priority groups in descending order; within a
// group, sections keep their original order. Each section gets its full
// request while budget remains.
type qualityStrategy struct{}

func (qualityStrategy) allocate(sections []*Section, available int) map[string]int {
	order := make([]*Section, len(sections))
	copy(order, sections)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Priority > order[j].Priority
	})

	allocs := make(map[string]int, len(sections))
	remaining := available
	for _, s := range order {
		if remaining <= 0 {
			allocs[s.Name] = 0
			continue
		}

		want := minInt(s.TokenCount, remaining)
		if want < s.MinTokens {
			want = s.MinTokens
		}
		want = s.capTokens(want)

		allocs[s.Name] = want
		remaining -= want
		if remaining < 0 {
			remaining = 0
		}
	}
	return allocs
}

// minimalStrategy sorts by weighted score (highest first, smallest
// request breaking ties) and serves greedily. Sections past the budget
// receive zero unless remaining budget still covers their minimum.
type minimalStrategy struct{}

func (minimalStrategy) allocate(sections []*Section, available int) map[string]int {
	order := make([]*Section, len(sections))
	copy(order, sections)
	sort.SliceStable(order, func(i, j int) bool {
		si := float64(order[i].Priority) * sizeDiscount(order[i].TokenCount)
		sj := float64(order[j].Priority) * sizeDiscount(order[j].TokenCount)
		if si != sj {
			return si > sj
		}
		return order[i].TokenCount < order[j].TokenCount
	})

	allocs := make(map[string]int, len(sections))
	remaining := available
	for _, s := range order {
		want := minInt(s.TokenCount, remaining)
		if want < s.MinTokens {
			top := minInt(s.MinTokens, remaining)
			if top > want {
				want = top
			}
		}
		want = s.capTokens(want)

		allocs[s.Name] = want
		remaining -= want
		if remaining < 0 {
			remaining = 0
		}
	}
	return allocs
}
