// Package models - model bình luận (Comment) thuộc domain comment.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "social_manager/internal/api/base/models"
)

// Comment định nghĩa một bình luận thu về từ platform.
// platformCommentId unique+sparse: comment thu từ platform không bị ghi trùng,
// comment không có ID platform (ví dụ seed) vẫn insert được.
type Comment struct {
	ID                primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	PostID            primitive.ObjectID   `json:"postId" bson:"postId" index:"single"`
	UserID            primitive.ObjectID   `json:"userId" bson:"userId"`
	Platform          basemodels.Platform  `json:"platform" bson:"platform" validate:"required,platform"`
	PlatformCommentID string               `json:"platformCommentId,omitempty" bson:"platformCommentId,omitempty" index:"unique,sparse"`
	Author            string               `json:"author" bson:"author"`
	Content           string               `json:"content" bson:"content"`
	Sentiment         basemodels.Sentiment `json:"sentiment" bson:"sentiment" default:"neutral" validate:"omitempty,sentiment"`
	ToxicityScore     float64              `json:"toxicityScore" bson:"toxicityScore" default:"0" validate:"gte=0,lte=1"`
	NeedsReply        bool                 `json:"needsReply" bson:"needsReply" index:"single" default:"false"`
	Replied           bool                 `json:"replied" bson:"replied" default:"false"`
	ReplyContent      string               `json:"replyContent,omitempty" bson:"replyContent,omitempty"`
	ReplyTime         int64                `json:"replyTime,omitempty" bson:"replyTime,omitempty"`
	CreatedAt         int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt         int64                `json:"updatedAt" bson:"updatedAt"`
}
