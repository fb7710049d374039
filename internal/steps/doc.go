// Package steps defines the event model shared by sort engines and renderers.
//
// A run is described as an ordered stream of [Step] values:
//
//   - [Compare]: two indices are being compared
//   - [MarkCandidate]: the current minimum of a selection pass
//   - [Swap]: two indices are about to be exchanged
//   - [Swapped]: the exchange happened; the frame carries the new array
//   - [MarkSorted]: an index holds its final value
//
// Engines deliver each step inside a [Frame] together with copies of the
// array and the [SortedSet], so consumers never alias engine-owned state.
// Renderers turn a step into a [HighlightMap] to choose bar colors.
package steps
