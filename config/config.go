package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Bao gồm thông tin cơ sở dữ liệu, server và Graph API.
type Configuration struct {
	Address string `env:"ADDRESS" envDefault:":8080"` // Địa chỉ server

	// MongoDB
	MongoDB_ConnectionURI string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017/socialai"` // URI kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"socialai"`                        // Tên cơ sở dữ liệu

	// JWT (bắt buộc khi chạy server, không cần cho migrate)
	JwtSecret string `env:"JWT_SECRET"` // Bí mật JWT

	// Graph API (dashboard boundary)
	GraphAPIBaseURL  string `env:"GRAPH_API_BASE_URL" envDefault:"https://graph.facebook.com/v18.0"` // Base URL của Graph API
	GraphAccessToken string `env:"GRAPH_ACCESS_TOKEN"`                                                // Access token gọi Graph API

	// CORS
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials

	// Rate Limiting
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Số request tối đa trong window (0 = disable)
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Thời gian window (giây)
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Bật/tắt rate limiting
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ working directory
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", environment))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env (nếu có) và environment variables.
// File env không tồn tại không phải là lỗi: migrate CLI phải chạy được chỉ với
// giá trị mặc định và environment variables.
func NewConfig() *Configuration {
	if envPath := getEnvPath(); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
				fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
			}
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
