// Package sysmon samples host and process resource usage for the server's
// health report.
package sysmon

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is a snapshot of system-wide usage, in percent.
type Stats struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemPercent float64 `json:"mem_percent"`
}

// RuntimeStats is a snapshot of the Go runtime of this process.
type RuntimeStats struct {
	HeapAlloc  uint64 `json:"heap_alloc_bytes"`
	Sys        uint64 `json:"sys_bytes"`
	NumGC      uint32 `json:"num_gc"`
	Goroutines int    `json:"goroutines"`
}

// Report combines system and runtime snapshots.
type Report struct {
	System  Stats        `json:"system"`
	Runtime RuntimeStats `json:"runtime"`
}

// Sample collects system-wide CPU and memory usage. CPU is the delta since
// the previous call (interval 0). Fields are zero when a probe fails.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// SampleRuntime reads the Go runtime memory statistics.
func SampleRuntime() RuntimeStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return RuntimeStats{
		HeapAlloc:  m.HeapAlloc,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}
}

// Collect samples both the system and the runtime.
func Collect() Report {
	return Report{System: Sample(), Runtime: SampleRuntime()}
}
