// Package dashboardsvc - service tổng hợp dữ liệu Graph API cho dashboard.
package dashboardsvc

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"social_manager/internal/api/dashboard/dto"
	"social_manager/internal/graph"
	"social_manager/internal/logger"
)

// seriesPoints số điểm dữ liệu của biểu đồ tuần
const seriesPoints = 7

// activityItems số dòng hoạt động gần đây
const activityItems = 4

// messagePreviewLength độ dài tối đa của message trong activity list
const messagePreviewLength = 60

// DashboardService tổng hợp PageInfo + Insights + RecentPosts thành dữ liệu dashboard.
// Mỗi nguồn thất bại độc lập: lỗi được log và phần tương ứng giữ zero value,
// một lần fetch hỏng không chặn các phần còn lại.
type DashboardService struct {
	graphClient *graph.Client
}

// NewDashboardService tạo mới DashboardService
func NewDashboardService(graphClient *graph.Client) *DashboardService {
	return &DashboardService{graphClient: graphClient}
}

// Poll thu thập dữ liệu dashboard từ Graph API
func (s *DashboardService) Poll(ctx context.Context) *dto.DashboardResult {
	result := &dto.DashboardResult{
		Series:         emptySeries(),
		RecentActivity: []dto.ActivityItem{},
	}
	if s.graphClient == nil || !s.graphClient.Configured() {
		return result
	}

	if info, err := s.graphClient.GetPageInfo(ctx); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{"error": err.Error()}).Error("Lấy page info thất bại")
	} else {
		result.PageName = info.Name
		result.Stats.Followers = info.FollowersCount
		if result.Stats.Followers == 0 {
			result.Stats.Followers = info.FanCount
		}
	}

	if insights, err := s.graphClient.GetInsights(ctx); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{"error": err.Error()}).Error("Lấy insights thất bại")
	} else {
		result.Series = BuildWeeklySeries(insights)
		result.Stats.TotalImpressions = sumSeries(result.Series.Impressions)
		result.Stats.TotalEngagements = sumSeries(result.Series.Engagements)
	}

	if posts, err := s.graphClient.GetRecentPosts(ctx, activityItems); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{"error": err.Error()}).Error("Lấy recent posts thất bại")
	} else {
		result.RecentActivity = BuildRecentActivity(posts, activityItems)
	}

	return result
}

// emptySeries tạo chuỗi 7 điểm toàn zero với nhãn thứ trong tuần kết thúc hôm nay
func emptySeries() dto.WeeklySeries {
	series := dto.WeeklySeries{
		Labels:      make([]string, seriesPoints),
		Impressions: make([]int64, seriesPoints),
		Engagements: make([]int64, seriesPoints),
	}
	now := time.Now()
	for i := 0; i < seriesPoints; i++ {
		day := now.AddDate(0, 0, i-seriesPoints+1)
		series.Labels[i] = day.Format("Mon")
	}
	return series
}

// BuildWeeklySeries dựng chuỗi 7 điểm từ insights.
// Metric thiếu hay giá trị thiếu giữ zero; thừa điểm lấy 7 điểm mới nhất.
func BuildWeeklySeries(insights *graph.Insights) dto.WeeklySeries {
	series := emptySeries()
	if insights == nil {
		return series
	}

	impressions := findMetric(insights, "page_impressions")
	engagements := findMetric(insights, "page_engaged_users")

	if impressions != nil {
		values := lastN(impressions.Values, seriesPoints)
		offset := seriesPoints - len(values)
		for i, v := range values {
			series.Impressions[offset+i] = v.Value
			if label := weekdayLabel(v.EndTime); label != "" {
				series.Labels[offset+i] = label
			}
		}
	}
	if engagements != nil {
		values := lastN(engagements.Values, seriesPoints)
		offset := seriesPoints - len(values)
		for i, v := range values {
			series.Engagements[offset+i] = v.Value
		}
	}

	return series
}

// BuildRecentActivity dựng danh sách hoạt động gần đây từ recent posts.
// Message dài bị cắt còn 60 ký tự, post không có message hiển thị "Media post".
func BuildRecentActivity(posts *graph.RecentPostsResult, limit int) []dto.ActivityItem {
	items := []dto.ActivityItem{}
	if posts == nil {
		return items
	}

	for _, post := range posts.Data {
		if len(items) >= limit {
			break
		}

		message := post.Message
		if message == "" {
			message = "Media post"
		} else if len([]rune(message)) > messagePreviewLength {
			message = string([]rune(message)[:messagePreviewLength]) + "..."
		}

		items = append(items, dto.ActivityItem{
			Message:     message,
			CreatedTime: post.CreatedTime,
			Likes:       post.Likes.Summary.TotalCount,
			Comments:    post.Comments.Summary.TotalCount,
			Shares:      post.Shares.Count,
		})
	}
	return items
}

func findMetric(insights *graph.Insights, name string) *graph.InsightMetric {
	for i := range insights.Data {
		if insights.Data[i].Name == name {
			return &insights.Data[i]
		}
	}
	return nil
}

func lastN(values []graph.InsightValue, n int) []graph.InsightValue {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

// weekdayLabel chuyển end_time ISO8601 thành nhãn thứ trong tuần (Mon, Tue, ...)
func weekdayLabel(endTime string) string {
	if endTime == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, endTime)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}

func sumSeries(values []int64) int64 {
	var total int64
	for _, v := range values {
		total += v
	}
	return total
}
