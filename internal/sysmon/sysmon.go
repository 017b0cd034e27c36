// Package sysmon samples whole-system CPU and memory usage for the
// benchmark dashboard's gauge panels.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one snapshot of system-wide resource usage, in percent.
type Stats struct {
	CPUPercent float64
	MemPercent float64
}

// Sample takes a snapshot. The CPU figure is the average usage since the
// previous Sample call (gopsutil interval 0), so the first reading of a
// session is 0. Sampling failures leave the affected field at zero rather
// than failing the dashboard tick.
func Sample() Stats {
	return Stats{
		CPUPercent: cpuPercent(),
		MemPercent: memPercent(),
	}
}

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
