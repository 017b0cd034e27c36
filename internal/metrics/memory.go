// Package metrics collects runtime memory readings and exposes the
// application's Prometheus collectors.
package metrics

import "runtime"

// MemorySnapshot is a point-in-time view of the Go runtime's memory
// accounting, the subset reported by the dashboard and the Prometheus
// collectors.
type MemorySnapshot struct {
	HeapAlloc    uint64 // live heap bytes
	HeapObjects  uint64 // live heap object count
	HeapSys      uint64 // heap bytes obtained from the OS
	Sys          uint64 // total bytes obtained from the OS
	NumGC        uint32 // completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
}

// MemoryCollector produces MemorySnapshots from runtime.ReadMemStats.
type MemoryCollector struct{}

// NewMemoryCollector creates a memory collector.
func NewMemoryCollector() *MemoryCollector { return &MemoryCollector{} }

// Snapshot reads the current runtime memory statistics.
func (*MemoryCollector) Snapshot() MemorySnapshot {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return MemorySnapshot{
		HeapAlloc:    ms.HeapAlloc,
		HeapObjects:  ms.HeapObjects,
		HeapSys:      ms.HeapSys,
		Sys:          ms.Sys,
		NumGC:        ms.NumGC,
		PauseTotalNs: ms.PauseTotalNs,
	}
}
