package budget

import (
	"sync"
	"time"

	"github.com/randalmurphal/budgetkit/pricing"
)

// Manager is a stateful facade over the Allocator: it holds the live
// section set, recomputes the allocation on demand, and accumulates a
// bounded history of metrics snapshots. It is safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	alloc    *Allocator
	sections []*Section
	last     *Result
	history  *history
}

// NewManager creates a Manager for the given config.
func NewManager(cfg Config) (*Manager, error) {
	alloc, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return &Manager{
		alloc:   alloc,
		history: newHistory(cfg.HistoryLimit),
	}, nil
}

// AddSection adds a section to the live set. A section with an existing
// name replaces the old one in place, keeping its position.
func (m *Manager) AddSection(s *Section) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.sections {
		if existing.Name == s.Name {
			m.sections[i] = s
			m.last = nil
			return
		}
	}
	m.sections = append(m.sections, s)
	m.last = nil
}

// RemoveSection removes the named section, reporting whether it existed.
func (m *Manager) RemoveSection(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, s := range m.sections {
		if s.Name == name {
			m.sections = append(m.sections[:i], m.sections[i+1:]...)
			m.last = nil
			return true
		}
	}
	return false
}

// Sections returns a copy of the live section set in insertion order.
func (m *Manager) Sections() []*Section {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Section, len(m.sections))
	copy(out, m.sections)
	return out
}

// Clear drops all sections and the last result.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sections = nil
	m.last = nil
}

// CalculateBudget recomputes the allocation from scratch over the current
// section set.
func (m *Manager) CalculateBudget() *Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calculateLocked()
}

func (m *Manager) calculateLocked() *Result {
	m.last = m.alloc.Allocate(m.sections)
	return m.last
}

// CountTokens estimates the token count of text under the configured
// counting strategy.
func (m *Manager) CountTokens(text string) int {
	return m.alloc.CountTokens(text)
}

// Metrics snapshots the latest allocation (computing one if no allocation
// has run since the sections last changed) and appends it to the history.
func (m *Manager) Metrics() Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.last == nil {
		m.calculateLocked()
	}

	cfg := m.alloc.Config()
	result := m.last

	efficiency := 0.0
	if cfg.TotalBudget > 0 {
		efficiency = float64(result.TotalAllocated) / float64(cfg.TotalBudget)
	}

	compressed := false
	for _, s := range m.sections {
		if s.Compressed {
			compressed = true
			break
		}
	}

	metrics := Metrics{
		Timestamp:          time.Now(),
		TotalBudget:        cfg.TotalBudget,
		TotalUsed:          result.TotalAllocated,
		Overflow:           result.Overflow,
		Efficiency:         efficiency,
		QualityScore:       result.QualityScore,
		SectionCount:       len(m.sections),
		CompressionApplied: compressed,
		StrategiesUsed:     result.StrategiesUsed,
	}
	m.history.append(metrics)
	return metrics
}

// History returns the retained metrics snapshots, oldest first.
func (m *Manager) History() []Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.history.snapshot()
}

// QualityAcceptable reports whether the latest allocation meets the
// configured quality threshold. It computes an allocation if none exists.
func (m *Manager) QualityAcceptable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.last == nil {
		m.calculateLocked()
	}
	return m.last.QualityScore >= m.alloc.Config().QualityThreshold
}

// EstimateCost projects the cost of a request that sends the latest
// allocation as input and receives the reserved response allowance as
// output, at the given per-million-token rates.
func (m *Manager) EstimateCost(model string, inputPerMillion, outputPerMillion float64) pricing.CostEstimate {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.last == nil {
		m.calculateLocked()
	}

	return pricing.Estimate(
		model,
		m.last.TotalAllocated,
		m.alloc.Config().MinResponseTokens,
		pricing.Rates{InputPerMillion: inputPerMillion, OutputPerMillion: outputPerMillion},
	)
}
