// Package logging provides the structured logging interface used by the
// bigdemo pipeline, backed by zerolog. Components take a Logger so tests can
// capture entries in a buffer or discard them with Nop.
package logging
