package service

import (
	"context"
	"time"
	"ufsbd-cms-server/internal/logger"
)

// sweepGracePeriod 新写入的文件在元数据落库前不参与清理
const sweepGracePeriod = 10 * time.Minute

type SweepReport struct {
	Scanned int      `json:"scanned"`
	Removed []string `json:"removed"`
	Failed  []string `json:"failed"`
}

// Sweep 删除没有元数据记录的孤儿文件
func (s *GalleryService) Sweep(ctx context.Context) (*SweepReport, error) {
	blobs, err := s.blobs.List(ctx)
	if err != nil {
		return nil, backendError(err, "gallery.sweep.list_blobs")
	}
	known, err := s.galleryStore.ListPaths(ctx)
	if err != nil {
		return nil, backendError(err, "gallery.sweep.list_paths")
	}

	report := &SweepReport{Scanned: len(blobs), Removed: []string{}, Failed: []string{}}
	cutoff := s.now().Add(-sweepGracePeriod)
	for objectPath, modTime := range blobs {
		if _, ok := known[objectPath]; ok || modTime.After(cutoff) {
			continue
		}
		if err := s.blobs.Remove(ctx, objectPath); err != nil {
			logger.Warn().Err(err).Str("path", objectPath).Msg("⚠️ 孤儿文件删除失败")
			report.Failed = append(report.Failed, objectPath)
			continue
		}
		report.Removed = append(report.Removed, objectPath)
	}

	if len(report.Removed) > 0 || len(report.Failed) > 0 {
		logger.Info().Int("scanned", report.Scanned).Int("removed", len(report.Removed)).Int("failed", len(report.Failed)).Msg("🧹 图库清理完成")
	}
	return report, nil
}

// RunSweeper 按固定间隔执行清理，直到 ctx 结束
func (s *GalleryService) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				logger.Warn().Err(err).Msg("⚠️ 定时清理失败")
			}
		}
	}
}
