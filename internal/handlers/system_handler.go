package handlers

import (
	"net/http"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"ledger-backend/pkg/utils"
)

// SystemStats is the resource snapshot served to the ops dashboard.
type SystemStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsedMB  uint64  `json:"memory_used_mb"`
	MemoryTotalMB uint64  `json:"memory_total_mb"`
	DiskPercent   float64 `json:"disk_percent"`
	Uptime        string  `json:"uptime"`
}

type SystemHandler struct {
	startedAt time.Time
}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{startedAt: time.Now()}
}

func (h *SystemHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := SystemStats{
		Uptime: time.Since(h.startedAt).Round(time.Second).String(),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
		stats.MemoryUsedMB = vm.Used / 1024 / 1024
		stats.MemoryTotalMB = vm.Total / 1024 / 1024
	}
	if usage, err := disk.Usage("/"); err == nil {
		stats.DiskPercent = usage.UsedPercent
	}

	utils.JSON(w, http.StatusOK, stats)
}
