// Package dto - các cấu trúc input cho domain content.
package dto

import (
	basemodels "social_manager/internal/api/base/models"
)

// CreatePostInput dữ liệu tạo bài đăng nháp
type CreatePostInput struct {
	Content    string                `json:"content" validate:"required"`
	Platforms  []basemodels.Platform `json:"platforms" validate:"required,min=1,dive,platform"`
	Type       basemodels.PostType   `json:"type" validate:"omitempty,post_type"`
	MediaURL   string                `json:"mediaUrl"`
	AICaption  bool                  `json:"aiCaption"`
	AIHashtags []string              `json:"aiHashtags"`
}

// SchedulePostInput dữ liệu lên lịch bài đăng
type SchedulePostInput struct {
	ScheduledTime int64 `json:"scheduledTime" validate:"required,gt=0"`
}

// PublishPostInput kết quả publish từ platform, ghi nhận platformIds
type PublishPostInput struct {
	PlatformIDs map[basemodels.Platform]string `json:"platformIds"`
}

// MarkFailedInput lý do bài đăng thất bại
type MarkFailedInput struct {
	Reason string `json:"reason"`
}

// UpdateMetricsInput số liệu tương tác từ job đồng bộ metrics bên ngoài
type UpdateMetricsInput struct {
	Likes       int     `json:"likes" validate:"gte=0"`
	Comments    int     `json:"comments" validate:"gte=0"`
	Shares      int     `json:"shares" validate:"gte=0"`
	Reach       int     `json:"reach" validate:"gte=0"`
	Impressions int     `json:"impressions" validate:"gte=0"`
	Engagement  float64 `json:"engagement" validate:"gte=0"`
}
