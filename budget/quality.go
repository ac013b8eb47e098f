package budget

// Quality score weights: how much of the requested content survived, how
// many critical sections kept their full request, and how evenly the cuts
// were spread.
const (
	coverageWeight     = 0.5
	completenessWeight = 0.3
	balanceWeight      = 0.2
)

// qualityScore rates an allocation in [0, 1].
func qualityScore(sections []*Section, allocs map[string]int) float64 {
	coverage := coverageScore(sections, allocs)
	completeness := priorityCompleteness(sections, allocs)
	balance := balanceScore(sections, allocs)

	return coverageWeight*coverage +
		completenessWeight*completeness +
		balanceWeight*balance
}

// coverageScore is the allocated fraction of the total request, capped
// at 1. An empty request is fully covered.
func coverageScore(sections []*Section, allocs map[string]int) float64 {
	requested := 0
	allocated := 0
	for _, s := range sections {
		requested += s.TokenCount
		allocated += allocs[s.Name]
	}
	if requested == 0 {
		return 1.0
	}

	c := float64(allocated) / float64(requested)
	if c > 1 {
		return 1.0
	}
	return c
}

// priorityCompleteness is the fraction of critical sections whose
// allocation covers their full request. With no critical sections there
// is nothing to lose.
func priorityCompleteness(sections []*Section, allocs map[string]int) float64 {
	critical := 0
	complete := 0
	for _, s := range sections {
		if s.Priority != PriorityCritical {
			continue
		}
		critical++
		if allocs[s.Name] >= s.TokenCount {
			complete++
		}
	}
	if critical == 0 {
		return 1.0
	}
	return float64(complete) / float64(critical)
}

// balanceScore penalizes uneven cuts: 1 minus the variance of the
// per-section allocation/request ratios, floored at 0. Sections with no
// request are skipped.
func balanceScore(sections []*Section, allocs map[string]int) float64 {
	var ratios []float64
	for _, s := range sections {
		if s.TokenCount <= 0 {
			continue
		}
		ratios = append(ratios, float64(allocs[s.Name])/float64(s.TokenCount))
	}
	if len(ratios) == 0 {
		return 1.0
	}

	mean := 0.0
	for _, r := range ratios {
		mean += r
	}
	mean /= float64(len(ratios))

	variance := 0.0
	for _, r := range ratios {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(ratios))

	b := 1.0 - variance
	if b < 0 {
		return 0.0
	}
	return b
}
