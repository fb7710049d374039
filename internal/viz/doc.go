// Package viz provides the full-screen terminal visualization of a sort.
//
// The sort runs in its own goroutine and hands every frame to the Bubble Tea
// event loop through a channel, waiting for the model to acknowledge it. The
// board is therefore only touched from the UI loop, and the engine's pauses
// start once the frame has been applied.
//
// # Key Bindings
//
//	R - Restart with a fresh array
//	T - Cycle color themes
//	? - Toggle help
//	Q - Quit (cancels the running sort)
package viz
