// Package models - model tài khoản (Account) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "social_manager/internal/api/base/models"
)

// SocialConnection chứa thông tin kết nối một tài khoản mạng xã hội
type SocialConnection struct {
	Platform    basemodels.Platform `json:"platform" bson:"platform" validate:"required,platform"`
	AccessToken string              `json:"-" bson:"accessToken,omitempty"`
	Username    string              `json:"username,omitempty" bson:"username,omitempty"`
	UserID      string              `json:"userId,omitempty" bson:"userId,omitempty"`
	PageID      string              `json:"pageId,omitempty" bson:"pageId,omitempty"`
	Connected   bool                `json:"connected" bson:"connected" default:"false"`
}

// Preferences chứa các tùy chọn vận hành của tài khoản
type Preferences struct {
	AutoReply      bool `json:"autoReply" bson:"autoReply" default:"true"`
	ToxicityFilter bool `json:"toxicityFilter" bson:"toxicityFilter" default:"true"`
	HumanApproval  bool `json:"humanApproval" bson:"humanApproval" default:"false"`
	AICaption      bool `json:"aiCaption" bson:"aiCaption" default:"true"`
	AIHashtags     bool `json:"aiHashtags" bson:"aiHashtags" default:"true"`
}

// SubscriptionLimits chứa hạn mức theo gói đăng ký
type SubscriptionLimits struct {
	ScheduledPosts    int `json:"scheduledPosts" bson:"scheduledPosts" default:"10"`
	ConnectedAccounts int `json:"connectedAccounts" bson:"connectedAccounts" default:"1"`
}

// Subscription chứa thông tin gói đăng ký của tài khoản
type Subscription struct {
	Plan       basemodels.SubscriptionPlan `json:"plan" bson:"plan" default:"free" validate:"omitempty,subscription_plan"`
	ValidUntil int64                       `json:"validUntil,omitempty" bson:"validUntil,omitempty"`
	Limits     SubscriptionLimits          `json:"limits" bson:"limits"`
}

// Account định nghĩa mô hình tài khoản người dùng.
// Email được lowercase và trim trước khi lưu, password là bcrypt hash (không bao giờ trả ra JSON).
type Account struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email" bson:"email" index:"unique"`
	Password       string             `json:"-" bson:"password"`
	SocialAccounts []SocialConnection `json:"socialAccounts" bson:"socialAccounts"`
	Preferences    Preferences        `json:"preferences" bson:"preferences"`
	Subscription   Subscription       `json:"subscription" bson:"subscription"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
