// Package dto - Test validate input ingest bình luận qua validator dùng chung.
package dto

import (
	"testing"

	basemodels "social_manager/internal/api/base/models"
	"social_manager/internal/global"
)

func validIngestInput() IngestCommentInput {
	return IngestCommentInput{
		PostID:        "507f1f77bcf86cd799439011",
		Platform:      basemodels.PlatformInstagram,
		Author:        "jane_smith",
		Content:       "Bài viết hay quá!",
		Sentiment:     basemodels.SentimentPositive,
		ToxicityScore: 0.5,
	}
}

func TestIngestCommentInput_ValidInputPasses(t *testing.T) {
	global.InitValidator()

	input := validIngestInput()
	if err := global.Validate.Struct(input); err != nil {
		t.Errorf("Input hợp lệ không được bị từ chối: %v", err)
	}
}

func TestIngestCommentInput_RejectsInvalidValues(t *testing.T) {
	global.InitValidator()

	cases := []struct {
		name   string
		mutate func(*IngestCommentInput)
	}{
		{"toxicityScore lớn hơn 1", func(i *IngestCommentInput) { i.ToxicityScore = 1.5 }},
		{"toxicityScore âm", func(i *IngestCommentInput) { i.ToxicityScore = -0.1 }},
		{"platform ngoài tập đóng", func(i *IngestCommentInput) { i.Platform = "tiktok" }},
		{"sentiment ngoài tập đóng", func(i *IngestCommentInput) { i.Sentiment = "mixed" }},
		{"thiếu postId", func(i *IngestCommentInput) { i.PostID = "" }},
		{"thiếu author", func(i *IngestCommentInput) { i.Author = "" }},
		{"thiếu content", func(i *IngestCommentInput) { i.Content = "" }},
	}

	for _, tc := range cases {
		input := validIngestInput()
		tc.mutate(&input)
		if err := global.Validate.Struct(input); err == nil {
			t.Errorf("Trường hợp %q phải bị từ chối", tc.name)
		}
	}
}

func TestIngestCommentInput_BoundaryToxicityScores(t *testing.T) {
	global.InitValidator()

	for _, score := range []float64{0, 0.5, 1} {
		input := validIngestInput()
		input.ToxicityScore = score
		if err := global.Validate.Struct(input); err != nil {
			t.Errorf("toxicityScore %v nằm trong [0,1] không được bị từ chối: %v", score, err)
		}
	}
}

func TestIngestCommentInput_SentimentOptional(t *testing.T) {
	global.InitValidator()

	input := validIngestInput()
	input.Sentiment = ""
	if err := global.Validate.Struct(input); err != nil {
		t.Errorf("Sentiment rỗng là hợp lệ (omitempty), nhận được: %v", err)
	}
}
