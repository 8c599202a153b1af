// Package graph - Test client Graph API với server giả lập.
package graph

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social_manager/internal/common"
)

func TestGetPageInfo_SendsTokenAsQueryParam(t *testing.T) {
	var gotPath, gotToken, gotFields string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("access_token")
		gotFields = r.URL.Query().Get("fields")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Test Page","followers_count":1250,"fan_count":1100}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", server.Client())
	info, err := client.GetPageInfo(context.Background())

	require.NoError(t, err, "GetPageInfo không được trả về lỗi")
	assert.Equal(t, "/me", gotPath)
	assert.Equal(t, "test-token", gotToken, "Access token phải truyền qua query param")
	assert.Equal(t, "followers_count,name,fan_count", gotFields)
	assert.Equal(t, "Test Page", info.Name)
	assert.Equal(t, int64(1250), info.FollowersCount)
	assert.Equal(t, int64(1100), info.FanCount)
}

func TestGetPageInfo_MissingFieldsKeepZeroValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Sparse Page"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", server.Client())
	info, err := client.GetPageInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Sparse Page", info.Name)
	assert.Equal(t, int64(0), info.FollowersCount, "Field thiếu trong response phải giữ zero value")
	assert.Equal(t, int64(0), info.FanCount)
}

func TestGetInsights_RequestsDailyMetrics(t *testing.T) {
	var gotMetric, gotPeriod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMetric = r.URL.Query().Get("metric")
		gotPeriod = r.URL.Query().Get("period")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"name":"page_impressions","period":"day","values":[{"value":120,"end_time":"2024-01-15T08:00:00+0000"}]}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", server.Client())
	insights, err := client.GetInsights(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "page_impressions,page_engaged_users", gotMetric)
	assert.Equal(t, "day", gotPeriod)
	require.Len(t, insights.Data, 1)
	assert.Equal(t, "page_impressions", insights.Data[0].Name)
	require.Len(t, insights.Data[0].Values, 1)
	assert.Equal(t, int64(120), insights.Data[0].Values[0].Value)
}

func TestGetRecentPosts_DecodesEngagementSummaries(t *testing.T) {
	var gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"123_456","message":"Hello","created_time":"2024-01-15T10:00:00+0000","likes":{"summary":{"total_count":42}},"shares":{"count":5},"comments":{"summary":{"total_count":7}}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", server.Client())
	result, err := client.GetRecentPosts(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "4", gotLimit)
	require.Len(t, result.Data, 1)
	assert.Equal(t, int64(42), result.Data[0].Likes.Summary.TotalCount)
	assert.Equal(t, int64(5), result.Data[0].Shares.Count)
	assert.Equal(t, int64(7), result.Data[0].Comments.Summary.TotalCount)
}

func TestPublish_PostsFormEncodedToFeed(t *testing.T) {
	var gotPath, gotContentType, gotMessage, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		r.ParseForm()
		gotMessage = r.PostFormValue("message")
		gotToken = r.PostFormValue("access_token")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"123_789"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", server.Client())
	result, err := client.Publish(context.Background(), PublishInput{Message: "New post"})

	require.NoError(t, err)
	assert.Equal(t, "/me/feed", gotPath, "Publish ngay phải gọi /me/feed")
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "New post", gotMessage)
	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, "123_789", result.ID)
}

func TestPublish_ScheduledUsesScheduledPostsEndpoint(t *testing.T) {
	var gotPath, gotPublished, gotScheduledTime string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		r.ParseForm()
		gotPublished = r.PostFormValue("published")
		gotScheduledTime = r.PostFormValue("scheduled_publish_time")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"123_790"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", server.Client())
	_, err := client.Publish(context.Background(), PublishInput{
		Message:              "Scheduled post",
		ScheduledPublishTime: 1705312800,
	})

	require.NoError(t, err)
	assert.Equal(t, "/me/scheduled_posts", gotPath, "Publish hẹn giờ phải gọi /me/scheduled_posts")
	assert.Equal(t, "false", gotPublished)
	assert.Equal(t, "1705312800", gotScheduledTime)
}

func TestGet_Non2xxReturnsExternalAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-token", server.Client())
	_, err := client.GetPageInfo(context.Background())

	require.Error(t, err, "Status không phải 2xx phải trả về lỗi")
	var customErr *common.Error
	require.True(t, errors.As(err, &customErr), "Lỗi phải là *common.Error")
	assert.Equal(t, common.ErrCodeExternalAPI.Code, customErr.Code.Code)
	assert.Equal(t, common.StatusBadGateway, customErr.StatusCode)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", "", nil)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.False(t, client.Configured(), "Client không có token phải ở trạng thái chưa cấu hình")

	configured := NewClient("", "token", nil)
	assert.True(t, configured.Configured())
}
