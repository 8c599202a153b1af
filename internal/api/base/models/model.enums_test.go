// Package basemodels - Test các enum đóng chỉ chấp nhận giá trị thuộc tập định nghĩa.
package basemodels

import "testing"

func TestPlatformIsValid(t *testing.T) {
	valid := []Platform{PlatformInstagram, PlatformFacebook}
	for _, p := range valid {
		if !p.IsValid() {
			t.Errorf("Platform %q phải hợp lệ", p)
		}
	}

	invalid := []Platform{"", "tiktok", "Instagram", "FACEBOOK"}
	for _, p := range invalid {
		if p.IsValid() {
			t.Errorf("Platform %q không được hợp lệ", p)
		}
	}
}

func TestAnalyticsPlatformIsValid(t *testing.T) {
	if !AnalyticsPlatformAll.IsValid() {
		t.Error("AnalyticsPlatform 'all' phải hợp lệ")
	}
	if !AnalyticsPlatformInstagram.IsValid() || !AnalyticsPlatformFacebook.IsValid() {
		t.Error("AnalyticsPlatform instagram/facebook phải hợp lệ")
	}
	if AnalyticsPlatform("twitter").IsValid() {
		t.Error("AnalyticsPlatform 'twitter' không được hợp lệ")
	}
}

func TestPostStatusIsValid(t *testing.T) {
	valid := []PostStatus{PostStatusDraft, PostStatusScheduled, PostStatusPublished, PostStatusFailed}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("PostStatus %q phải hợp lệ", s)
		}
	}
	if PostStatus("archived").IsValid() {
		t.Error("PostStatus 'archived' không được hợp lệ")
	}
	if PostStatus("").IsValid() {
		t.Error("PostStatus rỗng không được hợp lệ")
	}
}

func TestPostTypeIsValid(t *testing.T) {
	valid := []PostType{PostTypeImage, PostTypeVideo, PostTypeStory, PostTypeText, PostTypeReel}
	for _, pt := range valid {
		if !pt.IsValid() {
			t.Errorf("PostType %q phải hợp lệ", pt)
		}
	}
	if PostType("carousel").IsValid() {
		t.Error("PostType 'carousel' không được hợp lệ")
	}
}

func TestSentimentIsValid(t *testing.T) {
	valid := []Sentiment{SentimentPositive, SentimentNegative, SentimentNeutral}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("Sentiment %q phải hợp lệ", s)
		}
	}
	if Sentiment("mixed").IsValid() {
		t.Error("Sentiment 'mixed' không được hợp lệ")
	}
}

func TestSubscriptionPlanIsValid(t *testing.T) {
	valid := []SubscriptionPlan{PlanFree, PlanPro, PlanBusiness}
	for _, p := range valid {
		if !p.IsValid() {
			t.Errorf("SubscriptionPlan %q phải hợp lệ", p)
		}
	}
	if SubscriptionPlan("enterprise").IsValid() {
		t.Error("SubscriptionPlan 'enterprise' không được hợp lệ")
	}
}
