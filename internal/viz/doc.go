// Package viz draws frames for the terminal.
//
//   - [Bars]: a sorting frame as colored vertical bars
//   - [TreeView]: a traversal frame on a braille [Canvas], edges as lines
//     and keys as labels
//   - [Chart]: a metric history through asciigraph
//
// Colors come from a [Theme], which maps every role a bar, node or edge can
// take in a step to a terminal color. Six themes are built in; the TUI
// cycles them with T.
package viz
