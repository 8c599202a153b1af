// Package graph - client gọi Graph API phía server cho dashboard và publish bài đăng.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"social_manager/internal/common"
)

// DefaultBaseURL endpoint Graph API mặc định
const DefaultBaseURL = "https://graph.facebook.com/v18.0"

// Client gọi Graph API với access token truyền qua query param.
// Mỗi lời gọi thất bại được trả về cho caller xử lý, không retry.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client

	// insightsGroup gom các refresh insights chồng nhau thành một request upstream
	insightsGroup singleflight.Group
}

// NewClient tạo mới Graph API client.
// baseURL rỗng dùng DefaultBaseURL, httpClient nil dùng client với timeout 10s.
func NewClient(baseURL, accessToken string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  httpClient,
	}
}

// Configured cho biết client đã có access token hay chưa
func (c *Client) Configured() bool {
	return c.accessToken != ""
}

// PageInfo thông tin trang từ /me
type PageInfo struct {
	Name           string `json:"name"`
	FollowersCount int64  `json:"followers_count"`
	FanCount       int64  `json:"fan_count"`
}

// InsightValue một điểm dữ liệu insights theo ngày
type InsightValue struct {
	Value   int64  `json:"value"`
	EndTime string `json:"end_time"`
}

// InsightMetric một metric insights với chuỗi giá trị theo ngày
type InsightMetric struct {
	Name   string         `json:"name"`
	Period string         `json:"period"`
	Values []InsightValue `json:"values"`
}

// Insights kết quả /me/insights
type Insights struct {
	Data []InsightMetric `json:"data"`
}

// PostSummary tóm tắt một bài đăng từ /me/posts
type PostSummary struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	CreatedTime string `json:"created_time"`
	Likes       struct {
		Summary struct {
			TotalCount int64 `json:"total_count"`
		} `json:"summary"`
	} `json:"likes"`
	Shares struct {
		Count int64 `json:"count"`
	} `json:"shares"`
	Comments struct {
		Summary struct {
			TotalCount int64 `json:"total_count"`
		} `json:"summary"`
	} `json:"comments"`
}

// RecentPostsResult kết quả /me/posts
type RecentPostsResult struct {
	Data []PostSummary `json:"data"`
}

// PublishInput dữ liệu publish một bài đăng lên trang
type PublishInput struct {
	Message string
	Link    string
	// ScheduledPublishTime khác 0: đăng qua /me/scheduled_posts thay vì /me/feed
	ScheduledPublishTime int64
}

// PublishResult kết quả publish, chứa ID bài đăng trên platform
type PublishResult struct {
	ID string `json:"id"`
}

// get gọi GET endpoint và decode JSON response vào out.
// Field thiếu trong response giữ zero value, không coi là lỗi.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.accessToken)

	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return common.NewError(common.ErrCodeExternalAPI, "Không thể tạo request Graph API", common.StatusInternalServerError, err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return common.NewError(common.ErrCodeExternalAPI, "Lỗi gọi Graph API", common.StatusBadGateway, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return common.NewError(common.ErrCodeExternalAPI, "Không đọc được response Graph API", common.StatusBadGateway, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return common.NewError(common.ErrCodeExternalAPI,
			fmt.Sprintf("Graph API trả về status %d", resp.StatusCode),
			common.StatusBadGateway, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return common.NewError(common.ErrCodeExternalAPI, "Response Graph API không đúng định dạng JSON", common.StatusBadGateway, err.Error())
	}
	return nil
}

// GetPageInfo lấy tên trang, followers_count, fan_count
func (c *Client) GetPageInfo(ctx context.Context) (*PageInfo, error) {
	params := url.Values{}
	params.Set("fields", "followers_count,name,fan_count")

	var info PageInfo
	if err := c.get(ctx, "/me", params, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetInsights lấy page_impressions và page_engaged_users theo ngày.
// Các lời gọi chồng nhau chia sẻ chung một request upstream.
func (c *Client) GetInsights(ctx context.Context) (*Insights, error) {
	result, err, _ := c.insightsGroup.Do("insights", func() (interface{}, error) {
		params := url.Values{}
		params.Set("metric", "page_impressions,page_engaged_users")
		params.Set("period", "day")

		var insights Insights
		if err := c.get(ctx, "/me/insights", params, &insights); err != nil {
			return nil, err
		}
		return &insights, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Insights), nil
}

// GetRecentPosts lấy limit bài đăng gần nhất kèm số liệu like/share/comment
func (c *Client) GetRecentPosts(ctx context.Context, limit int) (*RecentPostsResult, error) {
	if limit <= 0 {
		limit = 4
	}

	params := url.Values{}
	params.Set("fields", "message,created_time,likes.summary(true),shares,comments.summary(true)")
	params.Set("limit", strconv.Itoa(limit))

	var result RecentPostsResult
	if err := c.get(ctx, "/me/posts", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Publish đăng bài lên trang.
// ScheduledPublishTime khác 0: POST /me/scheduled_posts với published=false,
// ngược lại POST /me/feed đăng ngay. Body form-encoded theo Graph API.
func (c *Client) Publish(ctx context.Context, input PublishInput) (*PublishResult, error) {
	form := url.Values{}
	form.Set("access_token", c.accessToken)
	form.Set("message", input.Message)
	if input.Link != "" {
		form.Set("link", input.Link)
	}

	path := "/me/feed"
	if input.ScheduledPublishTime > 0 {
		path = "/me/scheduled_posts"
		form.Set("published", "false")
		form.Set("scheduled_publish_time", strconv.FormatInt(input.ScheduledPublishTime, 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, common.NewError(common.ErrCodeExternalAPI, "Không thể tạo request Graph API", common.StatusInternalServerError, err.Error())
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, common.NewError(common.ErrCodeExternalAPI, "Lỗi gọi Graph API", common.StatusBadGateway, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.NewError(common.ErrCodeExternalAPI, "Không đọc được response Graph API", common.StatusBadGateway, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, common.NewError(common.ErrCodeExternalAPI,
			fmt.Sprintf("Graph API trả về status %d khi publish", resp.StatusCode),
			common.StatusBadGateway, string(body))
	}

	var result PublishResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, common.NewError(common.ErrCodeExternalAPI, "Response Graph API không đúng định dạng JSON", common.StatusBadGateway, err.Error())
	}
	return &result, nil
}
