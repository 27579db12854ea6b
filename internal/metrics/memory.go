// Package metrics reads process-local runtime statistics for the verbose
// reporting path.
package metrics

import "runtime"

// MemorySnapshot is a point-in-time reading of the runtime memory counters
// relevant to big-integer workloads: heap footprint, object count, and GC
// activity.
type MemorySnapshot struct {
	HeapAlloc    uint64 // live heap bytes
	HeapSys      uint64 // heap bytes obtained from the OS
	Sys          uint64 // total bytes obtained from the OS
	HeapObjects  uint64 // live heap objects
	NumGC        uint32 // completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
}

// TakeSnapshot reads the current runtime memory statistics.
func TakeSnapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		HeapObjects:  m.HeapObjects,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// Delta returns the change between an earlier snapshot and this one.
// Gauge fields (HeapAlloc, HeapSys, Sys, HeapObjects) keep the later value;
// counters (NumGC, PauseTotalNs) are differenced.
func (s MemorySnapshot) Delta(before MemorySnapshot) MemorySnapshot {
	return MemorySnapshot{
		HeapAlloc:    s.HeapAlloc,
		HeapSys:      s.HeapSys,
		Sys:          s.Sys,
		HeapObjects:  s.HeapObjects,
		NumGC:        s.NumGC - before.NumGC,
		PauseTotalNs: s.PauseTotalNs - before.PauseTotalNs,
	}
}
