package budget

import "sort"

// overflowStrategy is one remediation step in the cascade. reduce trims
// the allocation map toward the target and returns how many tokens it
// recovered. Steps never fail; a step that cannot help returns 0.
type overflowStrategy interface {
	name() string
	reduce(sections []*Section, allocs map[string]int, target int) int
}

// newOverflowStrategy resolves a validated overflow strategy name.
func newOverflowStrategy(s OverflowStrategy) overflowStrategy {
	switch s {
	case OverflowTruncateEnd, OverflowTruncateStart, OverflowTruncateMiddle:
		return truncateStep{id: string(s)}
	case OverflowDelegate:
		return delegateStep{}
	case OverflowDegrade:
		return degradeStep{}
	default:
		return compressStep{}
	}
}

// compressStep reduces each section by up to 30% of its current
// allocation in a single pass over the ordered section slice, and marks
// the sections it touched as compressed.
type compressStep struct{}

func (compressStep) name() string { return string(OverflowCompress) }

func (compressStep) reduce(sections []*Section, allocs map[string]int, target int) int {
	reduced := 0
	for _, s := range sections {
		if reduced >= target {
			break
		}
		current := allocs[s.Name]
		cut := minInt(int(float64(current)*0.3), target-reduced)
		if cut <= 0 {
			continue
		}

		allocs[s.Name] = current - cut
		reduced += cut
		s.Compressed = true
		s.CompressionRatio = float64(current-cut) / float64(current)
	}
	return reduced
}

// truncateStep reduces sections smallest-allocation-first by up to 50%,
// never below 1 token. The id records which positional variant was
// configured; the position is advisory for the consumer, the reduction
// algorithm is shared.
type truncateStep struct {
	id string
}

func (t truncateStep) name() string { return t.id }

func (truncateStep) reduce(sections []*Section, allocs map[string]int, target int) int {
	order := make([]*Section, len(sections))
	copy(order, sections)
	sort.SliceStable(order, func(i, j int) bool {
		return allocs[order[i].Name] < allocs[order[j].Name]
	})

	reduced := 0
	for _, s := range order {
		if reduced >= target {
			break
		}
		current := allocs[s.Name]
		cut := minInt(current/2, target-reduced)
		cut = minInt(cut, current-1) // floor at 1 token
		if cut <= 0 {
			continue
		}

		allocs[s.Name] = current - cut
		reduced += cut
	}
	return reduced
}

// delegateStep is a placeholder for moving content to a secondary
// consumer. No target-selection semantics exist yet, so it reduces
// nothing and never appears in StrategiesUsed.
type delegateStep struct{}

func (delegateStep) name() string { return string(OverflowDelegate) }

func (delegateStep) reduce([]*Section, map[string]int, int) int { return 0 }

// degradeStep reduces every section by up to 40% of its current
// allocation, never below 1 token.
type degradeStep struct{}

func (degradeStep) name() string { return string(OverflowDegrade) }

func (degradeStep) reduce(sections []*Section, allocs map[string]int, target int) int {
	reduced := 0
	for _, s := range sections {
		if reduced >= target {
			break
		}
		current := allocs[s.Name]
		cut := minInt(int(float64(current)*0.4), target-reduced)
		cut = minInt(cut, current-1) // floor at 1 token
		if cut <= 0 {
			continue
		}

		allocs[s.Name] = current - cut
		reduced += cut
	}
	return reduced
}
