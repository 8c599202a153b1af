// Package initsvc - khởi tạo dữ liệu mẫu cho môi trường phát triển.
package initsvc

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	analyticsmodels "social_manager/internal/api/analytics/models"
	authmodels "social_manager/internal/api/auth/models"
	basemodels "social_manager/internal/api/base/models"
	basesvc "social_manager/internal/api/base/service"
	commentmodels "social_manager/internal/api/comment/models"
	contentmodels "social_manager/internal/api/content/models"
	"social_manager/internal/database"
)

const day = 24 * time.Hour

// InitService tạo dữ liệu mẫu khi database còn trống
type InitService struct {
	accounts  *basesvc.BaseServiceMongoImpl[authmodels.Account]
	posts     *basesvc.BaseServiceMongoImpl[contentmodels.Post]
	snapshots *basesvc.BaseServiceMongoImpl[analyticsmodels.AnalyticsSnapshot]
	comments  *basesvc.BaseServiceMongoImpl[commentmodels.Comment]
}

// NewInitService tạo mới InitService trên các collection của store
func NewInitService(store *database.Store) (*InitService, error) {
	accountColl, err := store.Collection(store.Names.Accounts)
	if err != nil {
		return nil, fmt.Errorf("lấy collection accounts: %w", err)
	}
	postColl, err := store.Collection(store.Names.Posts)
	if err != nil {
		return nil, fmt.Errorf("lấy collection posts: %w", err)
	}
	snapshotColl, err := store.Collection(store.Names.AnalyticsSnapshots)
	if err != nil {
		return nil, fmt.Errorf("lấy collection analyticssnapshots: %w", err)
	}
	commentColl, err := store.Collection(store.Names.Comments)
	if err != nil {
		return nil, fmt.Errorf("lấy collection comments: %w", err)
	}

	return &InitService{
		accounts:  basesvc.NewBaseServiceMongo[authmodels.Account](accountColl),
		posts:     basesvc.NewBaseServiceMongo[contentmodels.Post](postColl),
		snapshots: basesvc.NewBaseServiceMongo[analyticsmodels.AnalyticsSnapshot](snapshotColl),
		comments:  basesvc.NewBaseServiceMongo[commentmodels.Comment](commentColl),
	}, nil
}

// SeedSampleData tạo bộ dữ liệu mẫu: 1 tài khoản, 3 bài đăng, 3 snapshot, 3 bình luận.
// Đã có tài khoản nào trong database thì bỏ qua (best effort, không transactional).
func (s *InitService) SeedSampleData(ctx context.Context) error {
	count, err := s.accounts.CountDocuments(ctx, nil)
	if err != nil {
		return fmt.Errorf("đếm accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 12)
	if err != nil {
		return fmt.Errorf("băm password mẫu: %w", err)
	}

	account, err := s.accounts.InsertOne(ctx, authmodels.Account{
		Name:           "John Doe",
		Email:          "john@example.com",
		Password:       string(hash),
		SocialAccounts: []authmodels.SocialConnection{},
		Preferences: authmodels.Preferences{
			AutoReply:      true,
			ToxicityFilter: true,
			HumanApproval:  false,
			AICaption:      true,
			AIHashtags:     true,
		},
		Subscription: authmodels.Subscription{
			Plan:       basemodels.PlanPro,
			ValidUntil: now.Add(30 * day).UnixMilli(),
			Limits: authmodels.SubscriptionLimits{
				ScheduledPosts:    100,
				ConnectedAccounts: 3,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("tạo tài khoản mẫu: %w", err)
	}

	posts, err := s.posts.InsertMany(ctx, []contentmodels.Post{
		{
			UserID:        account.ID,
			Content:       "Check out our new product! #innovation #tech",
			Platforms:     []basemodels.Platform{basemodels.PlatformInstagram, basemodels.PlatformFacebook},
			Type:          basemodels.PostTypeImage,
			Status:        basemodels.PostStatusPublished,
			PublishedTime: now.Add(-2 * day).UnixMilli(),
			AIGenerated: contentmodels.AIGenerated{
				Caption:  true,
				Hashtags: []string{"innovation", "tech", "newproduct"},
			},
			Metrics: contentmodels.PostMetrics{
				Likes:       245,
				Comments:    32,
				Shares:      18,
				Reach:       12500,
				Impressions: 18700,
				Engagement:  4.2,
			},
		},
		{
			UserID:        account.ID,
			Content:       "Behind the scenes at our studio! #makingmagic #creative",
			Platforms:     []basemodels.Platform{basemodels.PlatformInstagram},
			Type:          basemodels.PostTypeVideo,
			Status:        basemodels.PostStatusScheduled,
			ScheduledTime: now.Add(day).UnixMilli(),
			AIGenerated: contentmodels.AIGenerated{
				Caption:  true,
				Hashtags: []string{"makingmagic", "creative", "behindthescenes"},
			},
		},
		{
			UserID:    account.ID,
			Content:   "Weekly tip: Consistency is key to social media growth!",
			Platforms: []basemodels.Platform{basemodels.PlatformFacebook},
			Type:      basemodels.PostTypeText,
			Status:    basemodels.PostStatusDraft,
			AIGenerated: contentmodels.AIGenerated{
				Caption:  false,
				Hashtags: []string{"socialmediatips", "growth", "consistency"},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("tạo bài đăng mẫu: %w", err)
	}
	if len(posts) == 0 {
		return fmt.Errorf("không có bài đăng mẫu nào được tạo")
	}

	if _, err := s.snapshots.InsertMany(ctx, []analyticsmodels.AnalyticsSnapshot{
		{
			UserID:        account.ID,
			Date:          now.Add(-day).UnixMilli(),
			Platform:      basemodels.AnalyticsPlatformInstagram,
			Followers:     12450,
			Impressions:   28700,
			Reach:         15600,
			Engagement:    5.2,
			ProfileViews:  245,
			WebsiteClicks: 38,
		},
		{
			UserID:        account.ID,
			Date:          now.Add(-day).UnixMilli(),
			Platform:      basemodels.AnalyticsPlatformFacebook,
			Followers:     8700,
			Impressions:   15300,
			Reach:         9800,
			Engagement:    3.8,
			ProfileViews:  120,
			WebsiteClicks: 25,
		},
		{
			UserID:        account.ID,
			Date:          now.Add(-2 * day).UnixMilli(),
			Platform:      basemodels.AnalyticsPlatformInstagram,
			Followers:     12300,
			Impressions:   24500,
			Reach:         14200,
			Engagement:    4.8,
			ProfileViews:  210,
			WebsiteClicks: 32,
		},
	}); err != nil {
		return fmt.Errorf("tạo snapshot mẫu: %w", err)
	}

	if _, err := s.comments.InsertMany(ctx, []commentmodels.Comment{
		{
			PostID:        posts[0].ID,
			UserID:        account.ID,
			Platform:      basemodels.PlatformInstagram,
			Author:        "jane_smith",
			Content:       "Love this product! When will it be available in Europe?",
			Sentiment:     basemodels.SentimentPositive,
			ToxicityScore: 0.1,
			NeedsReply:    true,
		},
		{
			PostID:        posts[0].ID,
			UserID:        account.ID,
			Platform:      basemodels.PlatformFacebook,
			Author:        "Mike Johnson",
			Content:       "This is exactly what I needed for my business!",
			Sentiment:     basemodels.SentimentPositive,
			ToxicityScore: 0.05,
			NeedsReply:    false,
			Replied:       true,
			ReplyContent:  "Glad to hear it, Mike! Let us know if you have any questions.",
			ReplyTime:     now.Add(-day).UnixMilli(),
		},
		{
			PostID:        posts[0].ID,
			UserID:        account.ID,
			Platform:      basemodels.PlatformInstagram,
			Author:        "toxic_user",
			Content:       "This is the worst product ever! Complete garbage!",
			Sentiment:     basemodels.SentimentNegative,
			ToxicityScore: 0.87,
			NeedsReply:    false,
		},
	}); err != nil {
		return fmt.Errorf("tạo bình luận mẫu: %w", err)
	}

	return nil
}
