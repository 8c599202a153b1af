// Package dashboardsvc - Test dựng chuỗi tuần và danh sách hoạt động từ dữ liệu Graph API.
package dashboardsvc

import (
	"strings"
	"testing"

	"social_manager/internal/graph"
)

func TestBuildWeeklySeries_NilInsightsGivesZeroSeries(t *testing.T) {
	series := BuildWeeklySeries(nil)

	if len(series.Labels) != 7 || len(series.Impressions) != 7 || len(series.Engagements) != 7 {
		t.Fatalf("Chuỗi phải luôn có 7 điểm, nhận được labels=%d impressions=%d engagements=%d",
			len(series.Labels), len(series.Impressions), len(series.Engagements))
	}
	for i, v := range series.Impressions {
		if v != 0 {
			t.Errorf("Impressions[%d] phải là 0 khi không có insights, nhận được %d", i, v)
		}
	}
}

func TestBuildWeeklySeries_RightAlignsPartialData(t *testing.T) {
	insights := &graph.Insights{
		Data: []graph.InsightMetric{
			{
				Name:   "page_impressions",
				Period: "day",
				Values: []graph.InsightValue{
					{Value: 100, EndTime: "2024-01-14T08:00:00Z"},
					{Value: 200, EndTime: "2024-01-15T08:00:00Z"},
				},
			},
		},
	}

	series := BuildWeeklySeries(insights)

	// Chỉ có 2 giá trị, phải nằm ở 2 vị trí cuối của chuỗi 7 điểm
	for i := 0; i < 5; i++ {
		if series.Impressions[i] != 0 {
			t.Errorf("Impressions[%d] phải là 0 (chưa có dữ liệu), nhận được %d", i, series.Impressions[i])
		}
	}
	if series.Impressions[5] != 100 || series.Impressions[6] != 200 {
		t.Errorf("2 điểm cuối phải là 100, 200; nhận được %v", series.Impressions)
	}

	// Label lấy từ end_time: 2024-01-14 là Chủ nhật, 2024-01-15 là thứ Hai
	if series.Labels[5] != "Sun" {
		t.Errorf("Labels[5] phải là 'Sun', nhận được %q", series.Labels[5])
	}
	if series.Labels[6] != "Mon" {
		t.Errorf("Labels[6] phải là 'Mon', nhận được %q", series.Labels[6])
	}
}

func TestBuildWeeklySeries_KeepsOnlySevenNewestValues(t *testing.T) {
	values := make([]graph.InsightValue, 10)
	for i := range values {
		values[i] = graph.InsightValue{Value: int64(i + 1)}
	}
	insights := &graph.Insights{
		Data: []graph.InsightMetric{
			{Name: "page_engaged_users", Values: values},
		},
	}

	series := BuildWeeklySeries(insights)

	// 10 giá trị thì lấy 7 giá trị mới nhất: 4..10
	if series.Engagements[0] != 4 || series.Engagements[6] != 10 {
		t.Errorf("Phải lấy 7 giá trị mới nhất (4..10), nhận được %v", series.Engagements)
	}
}

func TestBuildWeeklySeries_MissingMetricKeepsZero(t *testing.T) {
	insights := &graph.Insights{
		Data: []graph.InsightMetric{
			{Name: "page_impressions", Values: []graph.InsightValue{{Value: 50}}},
		},
	}

	series := BuildWeeklySeries(insights)

	if series.Impressions[6] != 50 {
		t.Errorf("Impressions cuối phải là 50, nhận được %v", series.Impressions)
	}
	for i, v := range series.Engagements {
		if v != 0 {
			t.Errorf("Engagements[%d] phải giữ zero khi metric thiếu, nhận được %d", i, v)
		}
	}
}

func TestBuildRecentActivity_TruncatesLongMessages(t *testing.T) {
	longMessage := strings.Repeat("a", 80)
	posts := &graph.RecentPostsResult{
		Data: []graph.PostSummary{{Message: longMessage}},
	}

	items := BuildRecentActivity(posts, 4)

	if len(items) != 1 {
		t.Fatalf("Phải có 1 item, nhận được %d", len(items))
	}
	want := strings.Repeat("a", 60) + "..."
	if items[0].Message != want {
		t.Errorf("Message dài phải bị cắt còn 60 ký tự kèm '...', nhận được %q", items[0].Message)
	}
}

func TestBuildRecentActivity_TruncationIsRuneSafe(t *testing.T) {
	// 70 ký tự tiếng Việt nhiều byte, cắt theo rune không được vỡ UTF-8
	longMessage := strings.Repeat("ă", 70)
	posts := &graph.RecentPostsResult{
		Data: []graph.PostSummary{{Message: longMessage}},
	}

	items := BuildRecentActivity(posts, 4)

	want := strings.Repeat("ă", 60) + "..."
	if items[0].Message != want {
		t.Errorf("Cắt message phải theo rune, nhận được %q", items[0].Message)
	}
}

func TestBuildRecentActivity_EmptyMessageFallsBackToMediaPost(t *testing.T) {
	posts := &graph.RecentPostsResult{
		Data: []graph.PostSummary{{Message: "", CreatedTime: "2024-01-15T10:00:00Z"}},
	}

	items := BuildRecentActivity(posts, 4)

	if items[0].Message != "Media post" {
		t.Errorf("Post không có message phải hiển thị 'Media post', nhận được %q", items[0].Message)
	}
}

func TestBuildRecentActivity_RespectsLimit(t *testing.T) {
	posts := &graph.RecentPostsResult{
		Data: []graph.PostSummary{
			{Message: "1"}, {Message: "2"}, {Message: "3"}, {Message: "4"}, {Message: "5"},
		},
	}

	items := BuildRecentActivity(posts, 4)

	if len(items) != 4 {
		t.Errorf("Danh sách hoạt động phải giới hạn 4 item, nhận được %d", len(items))
	}
}

func TestBuildRecentActivity_CopiesEngagementCounts(t *testing.T) {
	post := graph.PostSummary{Message: "Hello"}
	post.Likes.Summary.TotalCount = 42
	post.Shares.Count = 5
	post.Comments.Summary.TotalCount = 7

	items := BuildRecentActivity(&graph.RecentPostsResult{Data: []graph.PostSummary{post}}, 4)

	if items[0].Likes != 42 || items[0].Shares != 5 || items[0].Comments != 7 {
		t.Errorf("Số liệu tương tác phải được copy đúng, nhận được %+v", items[0])
	}
}
