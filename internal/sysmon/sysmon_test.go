package sysmon

import "testing"

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
}

func TestSample_MemPercentNonZero(t *testing.T) {
	s := Sample()
	if s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
}

func TestStatsString(t *testing.T) {
	s := Stats{CPUPercent: 12.5, MemPercent: 40.25}
	want := "cpu 12.5%, mem 40.2%"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
