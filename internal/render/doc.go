// Package render turns step frames into pictures.
//
// [Board] keeps the per-run drawing state (values, roles, the transient swap
// arrow) and renders it as colored bars with lipgloss. [Terminal] draws a
// board directly to a writer, and [Logger] reports every step through
// logrus. All three satisfy the engine's sink contract.
package render
