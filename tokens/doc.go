// Package tokens provides token estimation for LLM content budgeting.
//
// Token counts are estimates, not tokenizer-exact numbers. Four estimation
// strategies are available, each suited to different content shapes:
//
//   - StrategyCharacter (default): characters/4 with structural bonuses
//     for newlines, tabs, and punctuation
//   - StrategyWhitespace: word count, adjusted upward for long words
//   - StrategyWord: raw word count
//   - StrategyHeuristic: characters/ratio where the ratio adapts to
//     code-like or digit-heavy content
//
// # Counter
//
// All strategies implement the Counter interface:
//
//	counter, _ := tokens.NewCounter(tokens.StrategyCharacter)
//	count := counter.Count("Hello, world!")
//	fits := counter.FitsInLimit("text", 1000)
//
// For one-off counting with the default strategy:
//
//	count := tokens.EstimateTokens("Hello, world!")
//
// # Caching
//
// CachingCounter wraps any Counter with a memoized, concurrency-safe
// cache keyed by the exact input text:
//
//	counter = tokens.NewCachingCounter(counter, 4096)
//
// Counting is a pure function of (text, strategy); the cache only avoids
// recomputation, it never changes results.
package tokens
