package announcement

import (
	"context"
	"encoding/json"
	"time"

	"school-activities-system/internal/global/cache"
	"school-activities-system/internal/global/database"
	"school-activities-system/internal/model"
)

const (
	cacheKey = "announcements:all"
	cacheTTL = 5 * time.Minute
)

// loadAll 读取全部公告，created_at 倒序
// 缓存只存原始行，生效窗口过滤始终按请求时刻计算
func loadAll(ctx context.Context) ([]model.Announcement, error) {
	if cache.Enabled() {
		if raw, err := cache.Client.Get(ctx, cacheKey).Bytes(); err == nil {
			var rows []model.Announcement
			if err := json.Unmarshal(raw, &rows); err == nil {
				return rows, nil
			}
			// 缓存内容损坏时直接回源
			cache.Client.Del(ctx, cacheKey)
		}
	}

	var rows []model.Announcement
	if err := database.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	if cache.Enabled() {
		if raw, err := json.Marshal(rows); err == nil {
			if err := cache.Client.Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
				log.Warn("公告缓存写入失败", "error", err)
			}
		}
	}
	return rows, nil
}

// invalidate 公告变更后清除列表缓存
func invalidate(ctx context.Context) {
	if !cache.Enabled() {
		return
	}
	if err := cache.Client.Del(ctx, cacheKey).Err(); err != nil {
		log.Warn("公告缓存清除失败", "error", err)
	}
}
