// Package protocol implements the line-oriented JSON exchange
// of the file hasher: a single request line read from the
// input, and a stream of progress, result and error events
// written as compact JSON lines to the output.
package protocol
