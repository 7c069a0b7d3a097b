package util

import "runtime"

// PoolSize returns the pool size for CPU-bound parallel work.
//
// Formula: min(max(runtime.NumCPU() * 2, 4), 32). The 2x factor keeps
// goroutines runnable while siblings block inside CGO calls; the bounds keep
// small machines parallel and large machines from over-provisioning parsers.
//
// Used for both the tree-sitter parser pool and the scanner worker pool so
// workers never block waiting for a parser.
func PoolSize() int {
	size := runtime.NumCPU() * 2
	if size < 4 {
		size = 4
	}
	if size > 32 {
		size = 32
	}
	return size
}

// PoolSizeWithOverride returns override when positive, PoolSize() otherwise.
func PoolSizeWithOverride(override int) int {
	if override > 0 {
		return override
	}
	return PoolSize()
}
