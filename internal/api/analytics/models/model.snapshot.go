// Package models - model ảnh chụp số liệu (AnalyticsSnapshot) thuộc domain analytics.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "social_manager/internal/api/base/models"
)

// AnalyticsSnapshot định nghĩa một ảnh chụp số liệu theo ngày cho một platform.
// Snapshot là immutable: chỉ insert, không bao giờ update.
type AnalyticsSnapshot struct {
	ID            primitive.ObjectID           `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        primitive.ObjectID           `json:"userId" bson:"userId" index:"compound:user_date_platform"`
	Date          int64                        `json:"date" bson:"date" index:"compound:user_date_platform"`
	Platform      basemodels.AnalyticsPlatform `json:"platform" bson:"platform" index:"compound:user_date_platform" validate:"required,analytics_platform"`
	Followers     int                          `json:"followers" bson:"followers" default:"0"`
	Impressions   int                          `json:"impressions" bson:"impressions" default:"0"`
	Reach         int                          `json:"reach" bson:"reach" default:"0"`
	ProfileViews  int                          `json:"profileViews" bson:"profileViews" default:"0"`
	WebsiteClicks int                          `json:"websiteClicks" bson:"websiteClicks" default:"0"`
	Engagement    float64                      `json:"engagement" bson:"engagement" default:"0"`
	CreatedAt     int64                        `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64                        `json:"updatedAt" bson:"updatedAt"`
}
