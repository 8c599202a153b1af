// Package dto - các cấu trúc output cho domain dashboard.
package dto

// DashboardStats số liệu tổng quan hiển thị trên đầu trang
type DashboardStats struct {
	Followers        int64 `json:"followers"`
	TotalImpressions int64 `json:"totalImpressions"`
	TotalEngagements int64 `json:"totalEngagements"`
}

// WeeklySeries chuỗi 7 điểm dữ liệu cho biểu đồ hiệu suất tuần
type WeeklySeries struct {
	Labels      []string `json:"labels"`
	Impressions []int64  `json:"impressions"`
	Engagements []int64  `json:"engagements"`
}

// ActivityItem một dòng trong danh sách hoạt động gần đây
type ActivityItem struct {
	Message     string `json:"message"`
	CreatedTime string `json:"createdTime"`
	Likes       int64  `json:"likes"`
	Comments    int64  `json:"comments"`
	Shares      int64  `json:"shares"`
}

// DashboardResult dữ liệu đầy đủ cho một lần poll của dashboard
type DashboardResult struct {
	PageName       string         `json:"pageName"`
	Stats          DashboardStats `json:"stats"`
	Series         WeeklySeries   `json:"series"`
	RecentActivity []ActivityItem `json:"recentActivity"`
}
