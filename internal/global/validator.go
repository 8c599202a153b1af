// Package global giữ validator instance dùng chung và các custom validator
// cho những enum đóng của hệ thống.
package global

import (
	"github.com/go-playground/validator/v10"

	basemodels "social_manager/internal/api/base/models"
)

// Validate là validator instance dùng chung cho toàn bộ ứng dụng.
// Phải gọi InitValidator trước khi sử dụng.
var Validate *validator.Validate

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	// Đăng ký các custom validator cho enum đóng
	_ = Validate.RegisterValidation("platform", validatePlatform)
	_ = Validate.RegisterValidation("analytics_platform", validateAnalyticsPlatform)
	_ = Validate.RegisterValidation("post_status", validatePostStatus)
	_ = Validate.RegisterValidation("post_type", validatePostType)
	_ = Validate.RegisterValidation("sentiment", validateSentiment)
	_ = Validate.RegisterValidation("subscription_plan", validateSubscriptionPlan)
}

// validatePlatform kiểm tra giá trị platform thuộc tập {instagram, facebook}
func validatePlatform(fl validator.FieldLevel) bool {
	return basemodels.Platform(fl.Field().String()).IsValid()
}

// validateAnalyticsPlatform kiểm tra giá trị thuộc tập {instagram, facebook, all}
func validateAnalyticsPlatform(fl validator.FieldLevel) bool {
	return basemodels.AnalyticsPlatform(fl.Field().String()).IsValid()
}

// validatePostStatus kiểm tra giá trị thuộc tập {draft, scheduled, published, failed}
func validatePostStatus(fl validator.FieldLevel) bool {
	return basemodels.PostStatus(fl.Field().String()).IsValid()
}

// validatePostType kiểm tra giá trị thuộc tập {image, video, story, text, reel}
func validatePostType(fl validator.FieldLevel) bool {
	return basemodels.PostType(fl.Field().String()).IsValid()
}

// validateSentiment kiểm tra giá trị thuộc tập {positive, negative, neutral}
func validateSentiment(fl validator.FieldLevel) bool {
	return basemodels.Sentiment(fl.Field().String()).IsValid()
}

// validateSubscriptionPlan kiểm tra giá trị thuộc tập {free, pro, business}
func validateSubscriptionPlan(fl validator.FieldLevel) bool {
	return basemodels.SubscriptionPlan(fl.Field().String()).IsValid()
}
