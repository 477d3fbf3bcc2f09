// SPDX-License-Identifier: MPL-2.0

// Package benchmark holds benchmarks for PGO profile generation.
// They cover the hot paths of a pwgen run:
//   - option resolution
//   - generation in every mode
//   - word list parsing and CUE config loading
//   - the end-to-end command pipeline
//
// To generate a profile, run:
//
//	go test -run '^$' -bench . -cpuprofile default.pgo ./internal/benchmark
package benchmark
