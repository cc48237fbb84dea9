// Package digester streams files through a selected hash
// algorithm and returns the lowercase hex digest. Progress is
// reported through an optional callback at a fixed cadence:
// 0% before the first read, every 10 points while streaming,
// and 100% once the file has been fully consumed.
package digester
