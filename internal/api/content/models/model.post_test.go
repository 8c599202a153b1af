// Package models - Test vòng đời trạng thái bài đăng.
package models

import (
	"testing"

	basemodels "social_manager/internal/api/base/models"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from basemodels.PostStatus
		to   basemodels.PostStatus
		want bool
	}{
		{basemodels.PostStatusDraft, basemodels.PostStatusScheduled, true},
		{basemodels.PostStatusDraft, basemodels.PostStatusPublished, true},
		{basemodels.PostStatusScheduled, basemodels.PostStatusPublished, true},

		// Bất kỳ trạng thái nào cũng có thể chuyển sang failed
		{basemodels.PostStatusDraft, basemodels.PostStatusFailed, true},
		{basemodels.PostStatusScheduled, basemodels.PostStatusFailed, true},
		{basemodels.PostStatusPublished, basemodels.PostStatusFailed, true},
		{basemodels.PostStatusFailed, basemodels.PostStatusFailed, true},

		// Không đi ngược vòng đời
		{basemodels.PostStatusScheduled, basemodels.PostStatusDraft, false},
		{basemodels.PostStatusPublished, basemodels.PostStatusDraft, false},
		{basemodels.PostStatusPublished, basemodels.PostStatusScheduled, false},
		{basemodels.PostStatusPublished, basemodels.PostStatusPublished, false},
		{basemodels.PostStatusFailed, basemodels.PostStatusPublished, false},
		{basemodels.PostStatusDraft, basemodels.PostStatusDraft, false},
	}

	for _, tc := range cases {
		p := &Post{Status: tc.from}
		if got := p.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("Chuyển %s -> %s: muốn %v, nhận được %v", tc.from, tc.to, tc.want, got)
		}
	}
}
