// Package filehasher serves a single calculateHash request:
// it reads one JSON request line, streams the named file
// through the requested digest algorithm while emitting
// progress events, and finishes with exactly one result or
// error event.
package filehasher
