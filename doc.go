// Package budgetkit allocates token budgets across competing content
// sections before they are handed to a consumer with a hard size ceiling.
//
// budgetkit is a standalone toolkit designed to be imported à la carte.
// Each subpackage can be used independently:
//
//   - budget: section allocation, overflow remediation, quality scoring
//   - tokens: token estimation strategies with memoized counting
//   - pricing: per-million-token cost estimation
//
// # Quick Start
//
// Allocate a budget across sections:
//
//	import "github.com/randalmurphal/budgetkit/budget"
//	alloc, _ := budget.New(budget.DefaultConfig())
//	result := alloc.Allocate(sections)
//
// Count tokens:
//
//	import "github.com/randalmurphal/budgetkit/tokens"
//	count := tokens.EstimateTokens("Hello, World!")
//
// Estimate cost:
//
//	import "github.com/randalmurphal/budgetkit/pricing"
//	est := pricing.EstimateWithDefaults("claude-sonnet-4", 12000, 800)
//
// # Design Philosophy
//
//   - The allocator decides how many tokens each section may keep; it
//     never cuts content itself
//   - Degenerate inputs are data, not errors — the engine never fails on
//     an empty section list or an exhausted budget
//   - Strategy names are validated at configuration time, never silently
//     defaulted during allocation
package budgetkit
