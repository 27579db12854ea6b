// Package sysmon samples system-wide CPU and memory usage for the verbose
// result footer.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one system-wide resource reading.
type Stats struct {
	CPUPercent float64 // 0..100
	MemPercent float64 // 0..100
}

// String renders the reading for one-line display.
func (s Stats) String() string {
	return fmt.Sprintf("cpu %.1f%%, mem %.1f%%", s.CPUPercent, s.MemPercent)
}

// Sample takes one reading. Sampling errors degrade to zero values rather
// than propagating.
func Sample() Stats {
	return Stats{CPUPercent: cpuPercent(), MemPercent: memPercent()}
}

// cpuPercent reports total CPU utilization since the previous call
// (interval 0 is gopsutil's delta mode).
func cpuPercent() float64 {
	pcts, err := cpu.Percent(0, false)
	if err != nil || len(pcts) == 0 {
		return 0
	}
	return pcts[0]
}

func memPercent() float64 {
	vm, err := mem.VirtualMemory()
	if err != nil || vm == nil {
		return 0
	}
	return vm.UsedPercent
}
