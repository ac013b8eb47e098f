// Package budget allocates a finite token budget across competing content
// sections.
//
// The allocator decides how many tokens each section may occupy before the
// content is handed to a consumer with a hard size ceiling, such as an LLM
// context window. It never touches the content itself beyond measuring it:
// the consumer performs the actual reduction using the per-section ceiling.
//
// # Basic Usage
//
// Build sections, configure a policy, and allocate:
//
//	alloc, err := budget.New(budget.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	result := alloc.Allocate([]*budget.Section{
//	    budget.NewSection("system", systemPrompt, budget.PriorityCritical),
//	    budget.NewSection("history", history, budget.PriorityNormal),
//	    budget.NewSection("scratch", notes, budget.PriorityLow),
//	})
//	for name, ceiling := range result.Allocations {
//	    // reduce content[name] to ceiling tokens
//	}
//
// # Allocation Strategies
//
// Four strategies decide the initial split (see Strategy):
//
//   - balanced: full requests when everything fits, otherwise a
//     priority-and-size weighted proportional split (default)
//   - speed: smallest sections first, halving low priorities
//   - quality: priority groups in descending order, full requests
//   - minimal: greedy by weighted score
//
// # Overflow Cascade
//
// When the chosen strategy overshoots the available budget, an ordered
// cascade of remediation steps trims allocations until the overflow is
// resolved or the steps are exhausted: compress, the truncate variants,
// delegate (a reserved no-op), and degrade. Residual overflow is reported
// in the Result, never raised as an error.
//
// # Manager
//
// Manager is a stateful facade holding the live section set, a bounded
// metrics history, and a cost estimator:
//
//	mgr, _ := budget.NewManager(cfg)
//	mgr.AddSection(budget.NewSection("system", prompt, budget.PriorityCritical))
//	result := mgr.CalculateBudget()
//	metrics := mgr.Metrics()
//	cost := mgr.EstimateCost("claude-sonnet-4", 3.0, 15.0)
//
// # Configuration
//
// Config validates strategy names at construction time; an unrecognized
// identifier is a *ConfigError, not a silent fallback. Configs load from
// YAML or TOML files, and WatchConfig hot-reloads them on change:
//
//	cfg, err := budget.LoadConfig("budget.yaml")
//	for cfg := range budget.WatchConfig(ctx, "budget.yaml") {
//	    // rebuild the allocator with cfg
//	}
//
// # Errors
//
// The engine itself never fails on ordinary input: an empty section list,
// a zero or negative available budget, and unresolvable overflow are all
// modeled as data in the Result. The only failure class is configuration
// validation.
package budget
