package utils

import (
	"context"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

type HostStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	Goroutines    int     `json:"goroutines"`
}

// GetHostStats samples CPU usage over interval. Sampling failures leave the
// corresponding field at zero.
func GetHostStats(ctx context.Context, interval time.Duration) HostStats {
	stats := HostStats{Goroutines: runtime.NumGoroutine()}

	if percentage, err := cpu.PercentWithContext(ctx, interval, false); err == nil && len(percentage) > 0 {
		stats.CPUPercent = percentage[0]
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		stats.MemoryPercent = vm.UsedPercent
	}
	return stats
}
