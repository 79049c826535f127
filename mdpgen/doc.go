// Package mdpgen builds synthetic MDPs for benchmarks and property tests.
//
// Generators take plain parameters: a required explicit *rand.Rand for
// any probabilistic generator, and sentinel errors for parameter
// validation. A supporting fixture generator exercised by mdpbench and by
// this package's own tests.
package mdpgen
