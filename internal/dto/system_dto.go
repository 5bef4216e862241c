package dto

import "ufsbd-cms-server/internal/service"

type SystemInfoResponse struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
}

// ServerStatsResponse 后台首页统计
type ServerStatsResponse struct {
	*service.PostStats
	ImageCount int64              `json:"image_count"`
	SystemInfo SystemInfoResponse `json:"system_info"`
}
