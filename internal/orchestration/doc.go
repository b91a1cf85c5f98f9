// Package orchestration runs the computation pipeline as an ordered list of
// stages. Each stage is timed, traced, logged and recorded in the metrics
// registry; the first failing stage stops the run.
package orchestration
