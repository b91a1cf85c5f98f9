// Package bignum implements the exact integer side of the pipeline: n! as an
// arbitrary-precision integer, decimal digit counting that never builds the
// decimal string, and base-10 conversion guarded by an explicit digit limit.
//
// Several interchangeable factorial backends are registered in a Factory so
// they can be selected by name and cross-checked against each other.
package bignum
