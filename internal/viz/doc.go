// Package viz draws a sorting session in the terminal using Bubble Tea.
//
// Bars are rendered as columns of eighth-block glyphs on a [Canvas], colored
// by the active [Theme]. The frame loop advances the session's player by the
// wall-clock time between ticks.
//
// # Key Bindings
//
//	1-8 - Sort with the algorithm at that menu position
//	G   - Generate a new array
//	+/- - More or fewer bars
//	[/] - Faster or slower playback
//	S   - Cycle the array shape
//	T   - Cycle color themes
//	?   - Toggle full help
//	Q   - Quit
package viz
