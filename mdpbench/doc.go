// Package mdpbench provides benchmarks for reachsolve, sspe, and sspp over
// mdpgen-built instances: per-size b.Run subtests, b.ReportAllocs, timer
// reset after fixture construction.
package mdpbench
