// Package format holds the pure string formatting helpers shared by the
// presentation layer: durations, grouped digit counts and byte sizes.
package format
