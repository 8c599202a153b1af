// Package dto - các cấu trúc input cho domain comment.
package dto

import (
	basemodels "social_manager/internal/api/base/models"
)

// IngestCommentInput dữ liệu ghi nhận một bình luận thu về từ platform
type IngestCommentInput struct {
	PostID            string               `json:"postId" validate:"required"`
	Platform          basemodels.Platform  `json:"platform" validate:"required,platform"`
	PlatformCommentID string               `json:"platformCommentId"`
	Author            string               `json:"author" validate:"required"`
	Content           string               `json:"content" validate:"required"`
	Sentiment         basemodels.Sentiment `json:"sentiment" validate:"omitempty,sentiment"`
	ToxicityScore     float64              `json:"toxicityScore" validate:"gte=0,lte=1"`
	NeedsReply        bool                 `json:"needsReply"`
}

// ReplyCommentInput nội dung trả lời một bình luận
type ReplyCommentInput struct {
	Content string `json:"content" validate:"required"`
}
