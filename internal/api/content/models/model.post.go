// Package models - model bài đăng (Post) thuộc domain content.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "social_manager/internal/api/base/models"
)

// AIGenerated đánh dấu phần nội dung do AI sinh ra
type AIGenerated struct {
	Caption  bool     `json:"caption" bson:"caption" default:"false"`
	Hashtags []string `json:"hashtags" bson:"hashtags"`
}

// PostMetrics chứa số liệu tương tác của bài đăng
type PostMetrics struct {
	Likes       int     `json:"likes" bson:"likes" default:"0"`
	Comments    int     `json:"comments" bson:"comments" default:"0"`
	Shares      int     `json:"shares" bson:"shares" default:"0"`
	Reach       int     `json:"reach" bson:"reach" default:"0"`
	Impressions int     `json:"impressions" bson:"impressions" default:"0"`
	Engagement  float64 `json:"engagement" bson:"engagement" default:"0"`
}

// PlatformIDs chứa ID bài đăng trên từng platform sau khi publish
type PlatformIDs struct {
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
}

// Post định nghĩa mô hình bài đăng.
// Vòng đời trạng thái: draft → scheduled → published, bất kỳ trạng thái nào → failed.
// scheduledTime chỉ có nghĩa khi status=scheduled, publishedTime chỉ được set khi status=published.
type Post struct {
	ID            primitive.ObjectID    `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        primitive.ObjectID    `json:"userId" bson:"userId" index:"single"`
	Content       string                `json:"content" bson:"content"`
	Platforms     []basemodels.Platform `json:"platforms" bson:"platforms"`
	Type          basemodels.PostType   `json:"type" bson:"type" validate:"omitempty,post_type"`
	MediaURL      string                `json:"mediaUrl,omitempty" bson:"mediaUrl,omitempty"`
	Status        basemodels.PostStatus `json:"status" bson:"status" index:"single" default:"draft"`
	ScheduledTime int64                 `json:"scheduledTime,omitempty" bson:"scheduledTime,omitempty" index:"single"`
	PublishedTime int64                 `json:"publishedTime,omitempty" bson:"publishedTime,omitempty"`
	AIGenerated   AIGenerated           `json:"aiGenerated" bson:"aiGenerated"`
	Metrics       PostMetrics           `json:"metrics" bson:"metrics"`
	PlatformIDs   PlatformIDs           `json:"platformIds" bson:"platformIds"`
	CreatedAt     int64                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64                 `json:"updatedAt" bson:"updatedAt"`
}

// CanTransitionTo kiểm tra chuyển trạng thái có hợp lệ không
func (p *Post) CanTransitionTo(next basemodels.PostStatus) bool {
	if next == basemodels.PostStatusFailed {
		return true
	}
	switch p.Status {
	case basemodels.PostStatusDraft:
		return next == basemodels.PostStatusScheduled || next == basemodels.PostStatusPublished
	case basemodels.PostStatusScheduled:
		return next == basemodels.PostStatusPublished
	case basemodels.PostStatusPublished, basemodels.PostStatusFailed:
		return false
	}
	return false
}
