// Package metrics records pipeline measurements in a private Prometheus
// registry: stage durations and failures, digit counts of the results, and
// runtime memory statistics. The registry can be dumped in the Prometheus
// text exposition format.
package metrics
