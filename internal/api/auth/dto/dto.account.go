// Package dto - các cấu trúc input/output cho domain auth.
package dto

import (
	basemodels "social_manager/internal/api/base/models"
)

// RegisterInput dữ liệu đầu vào khi đăng ký tài khoản
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput dữ liệu đầu vào khi đăng nhập
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult kết quả đăng nhập, kèm JWT token
type LoginResult struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// UpdatePreferencesInput dữ liệu cập nhật tùy chọn vận hành.
// Dùng con trỏ để phân biệt field không gửi lên (giữ nguyên) và field gửi false.
type UpdatePreferencesInput struct {
	AutoReply      *bool `json:"autoReply"`
	ToxicityFilter *bool `json:"toxicityFilter"`
	HumanApproval  *bool `json:"humanApproval"`
	AICaption      *bool `json:"aiCaption"`
	AIHashtags     *bool `json:"aiHashtags"`
}

// UpdateSubscriptionInput dữ liệu cập nhật gói đăng ký
type UpdateSubscriptionInput struct {
	Plan       basemodels.SubscriptionPlan `json:"plan" validate:"required,subscription_plan"`
	ValidUntil int64                       `json:"validUntil" validate:"omitempty,gt=0"`
}

// LinkSocialInput dữ liệu kết nối một tài khoản mạng xã hội
type LinkSocialInput struct {
	Platform    basemodels.Platform `json:"platform" validate:"required,platform"`
	AccessToken string              `json:"accessToken" validate:"required"`
	Username    string              `json:"username"`
	UserID      string              `json:"userId"`
	PageID      string              `json:"pageId"`
}

// UnlinkSocialInput dữ liệu ngắt kết nối một tài khoản mạng xã hội
type UnlinkSocialInput struct {
	Platform basemodels.Platform `json:"platform" validate:"required,platform"`
}
