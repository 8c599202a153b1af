// Package basemodels chứa các kiểu dữ liệu dùng chung cho mọi domain:
// các enum đóng (platform, trạng thái, sentiment, plan) và kết quả phân trang.
package basemodels

// Platform là nền tảng mạng xã hội được hỗ trợ
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
)

// IsValid kiểm tra giá trị platform có thuộc tập đóng hay không
func (p Platform) IsValid() bool {
	switch p {
	case PlatformInstagram, PlatformFacebook:
		return true
	}
	return false
}

// AnalyticsPlatform là phạm vi nền tảng của một analytics snapshot.
// Khác Platform ở chỗ chấp nhận thêm "all" (số liệu gộp mọi nền tảng).
type AnalyticsPlatform string

const (
	AnalyticsPlatformInstagram AnalyticsPlatform = "instagram"
	AnalyticsPlatformFacebook  AnalyticsPlatform = "facebook"
	AnalyticsPlatformAll       AnalyticsPlatform = "all"
)

// IsValid kiểm tra giá trị analytics platform có thuộc tập đóng hay không
func (p AnalyticsPlatform) IsValid() bool {
	switch p {
	case AnalyticsPlatformInstagram, AnalyticsPlatformFacebook, AnalyticsPlatformAll:
		return true
	}
	return false
}

// PostStatus là trạng thái vòng đời của một bài đăng
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
	PostStatusFailed    PostStatus = "failed"
)

// IsValid kiểm tra giá trị status có thuộc tập đóng hay không
func (s PostStatus) IsValid() bool {
	switch s {
	case PostStatusDraft, PostStatusScheduled, PostStatusPublished, PostStatusFailed:
		return true
	}
	return false
}

// PostType là loại nội dung của một bài đăng
type PostType string

const (
	PostTypeImage PostType = "image"
	PostTypeVideo PostType = "video"
	PostTypeStory PostType = "story"
	PostTypeText  PostType = "text"
	PostTypeReel  PostType = "reel"
)

// IsValid kiểm tra giá trị type có thuộc tập đóng hay không
func (t PostType) IsValid() bool {
	switch t {
	case PostTypeImage, PostTypeVideo, PostTypeStory, PostTypeText, PostTypeReel:
		return true
	}
	return false
}

// Sentiment là phân loại cảm xúc của một comment
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// IsValid kiểm tra giá trị sentiment có thuộc tập đóng hay không
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// SubscriptionPlan là gói thuê bao của một account
type SubscriptionPlan string

const (
	PlanFree     SubscriptionPlan = "free"
	PlanPro      SubscriptionPlan = "pro"
	PlanBusiness SubscriptionPlan = "business"
)

// IsValid kiểm tra giá trị plan có thuộc tập đóng hay không
func (p SubscriptionPlan) IsValid() bool {
	switch p {
	case PlanFree, PlanPro, PlanBusiness:
		return true
	}
	return false
}
