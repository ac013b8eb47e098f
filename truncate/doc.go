// Package truncate reduces section content to allocated token ceilings.
//
// The budget package decides how many tokens each section may occupy but
// never touches the content itself. This package is the consumer side of
// that contract: it cuts each section down to its ceiling.
//
// # Positions
//
// Three reduction positions are available:
//
//   - End: remove content from the end (default)
//   - Start: remove content from the start
//   - Middle: remove content from the middle, keeping start and end
//
// The budget config's truncate_end/truncate_start/truncate_middle
// overflow variants are advisory: the allocation engine treats them as
// one algorithm, and PositionFor maps the configured variant to the
// position used here.
//
// # Usage
//
// Apply an allocation result to a section set:
//
//	result := alloc.Allocate(sections)
//	reduced := truncate.Apply(sections, result, truncate.End)
//
// Or reduce a single string:
//
//	r := truncate.NewReducer(truncate.Middle)
//	content, cut := r.Reduce(longText, 500)
//
// Use the same counting strategy as the allocator so ceilings and
// measurements agree:
//
//	r := truncate.NewReducer(truncate.End).WithCounter(counter)
//
// All cutting is rune-aware; multi-byte characters are never split.
package truncate
