// Package dto - các cấu trúc input cho domain analytics.
package dto

import (
	basemodels "social_manager/internal/api/base/models"
)

// IngestSnapshotInput dữ liệu ghi nhận một ảnh chụp số liệu.
// Date bằng 0 dùng thời điểm hiện tại.
type IngestSnapshotInput struct {
	Platform      basemodels.AnalyticsPlatform `json:"platform" validate:"required,analytics_platform"`
	Date          int64                        `json:"date" validate:"omitempty,gt=0"`
	Followers     int                          `json:"followers" validate:"gte=0"`
	Impressions   int                          `json:"impressions" validate:"gte=0"`
	Reach         int                          `json:"reach" validate:"gte=0"`
	ProfileViews  int                          `json:"profileViews" validate:"gte=0"`
	WebsiteClicks int                          `json:"websiteClicks" validate:"gte=0"`
	Engagement    float64                      `json:"engagement" validate:"gte=0"`
}

// SnapshotQuery điều kiện truy vấn snapshot theo platform và khoảng thời gian
type SnapshotQuery struct {
	Platform basemodels.AnalyticsPlatform `json:"platform" validate:"omitempty,analytics_platform"`
	From     int64                        `json:"from" validate:"omitempty,gt=0"`
	To       int64                        `json:"to" validate:"omitempty,gt=0"`
}
