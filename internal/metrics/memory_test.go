package metrics

import "testing"

func TestTakeSnapshot(t *testing.T) {
	t.Parallel()

	snap := TakeSnapshot()
	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestSnapshotDelta(t *testing.T) {
	t.Parallel()

	before := TakeSnapshot()

	// Allocate some memory
	_ = make([]byte, 1024*1024) // 1 MB

	after := TakeSnapshot()

	// Sys should not decrease between snapshots
	if after.Sys < before.Sys {
		t.Error("Sys should not decrease between snapshots")
	}

	delta := after.Delta(before)
	if delta.Sys != after.Sys {
		t.Errorf("Delta.Sys = %d, want later gauge value %d", delta.Sys, after.Sys)
	}
	if delta.NumGC != after.NumGC-before.NumGC {
		t.Errorf("Delta.NumGC = %d, want %d", delta.NumGC, after.NumGC-before.NumGC)
	}
}
