// Binary server khởi động API server của hệ thống quản lý mạng xã hội.
package main

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"social_manager/config"
	analyticshdl "social_manager/internal/api/analytics/handler"
	analyticsrouter "social_manager/internal/api/analytics/router"
	analyticssvc "social_manager/internal/api/analytics/service"
	authhdl "social_manager/internal/api/auth/handler"
	authrouter "social_manager/internal/api/auth/router"
	authsvc "social_manager/internal/api/auth/service"
	commenthdl "social_manager/internal/api/comment/handler"
	commentrouter "social_manager/internal/api/comment/router"
	commentsvc "social_manager/internal/api/comment/service"
	contenthdl "social_manager/internal/api/content/handler"
	contentrouter "social_manager/internal/api/content/router"
	contentsvc "social_manager/internal/api/content/service"
	dashboardhdl "social_manager/internal/api/dashboard/handler"
	dashboardrouter "social_manager/internal/api/dashboard/router"
	dashboardsvc "social_manager/internal/api/dashboard/service"
	apirouter "social_manager/internal/api/router"
	"social_manager/internal/database"
	"social_manager/internal/global"
	"social_manager/internal/graph"
	"social_manager/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// setupRoutes đăng ký toàn bộ route của các domain lên app
func setupRoutes(app *fiber.App, cfg *config.Configuration, store *database.Store) error {
	// Graph API client dùng chung cho content và dashboard.
	// Token rỗng thì client ở trạng thái chưa cấu hình, các nơi dùng tự degrade.
	graphClient := graph.NewClient(cfg.GraphAPIBaseURL, cfg.GraphAccessToken, nil)

	// Services
	accountService, err := authsvc.NewAccountService(store, cfg.JwtSecret)
	if err != nil {
		return err
	}
	postService, err := contentsvc.NewPostService(store, graphClient, accountService)
	if err != nil {
		return err
	}
	snapshotService, err := analyticssvc.NewSnapshotService(store)
	if err != nil {
		return err
	}
	commentService, err := commentsvc.NewCommentService(store)
	if err != nil {
		return err
	}
	dashboardService := dashboardsvc.NewDashboardService(graphClient)

	// Handlers
	accountHandler := authhdl.NewAccountHandler(accountService)
	postHandler := contenthdl.NewPostHandler(postService)
	snapshotHandler := analyticshdl.NewSnapshotHandler(snapshotService)
	commentHandler := commenthdl.NewCommentHandler(commentService)
	dashboardHandler := dashboardhdl.NewDashboardHandler(dashboardService)

	// Health check cho monitoring, không qua auth và rate limit
	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "social_manager",
		})
	})

	prefix := apirouter.NewRoutePrefix()
	v1 := app.Group(prefix.V1)

	authrouter.Register(v1, accountHandler, cfg.JwtSecret)
	contentrouter.Register(v1, postHandler, cfg.JwtSecret)
	analyticsrouter.Register(v1, snapshotHandler, cfg.JwtSecret)
	commentrouter.Register(v1, commentHandler, cfg.JwtSecret)
	dashboardrouter.Register(v1, dashboardHandler, cfg.JwtSecret)

	return nil
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()
	log := logger.GetAppLogger()

	// Đọc cấu hình từ env file và environment variables
	cfg := config.NewConfig()
	if cfg == nil {
		log.Error("Không đọc được cấu hình")
		os.Exit(1)
	}

	// Server bắt buộc có JWT secret để ký và xác thực token
	if cfg.JwtSecret == "" {
		log.Error("Thiếu JWT_SECRET, không thể khởi động server")
		os.Exit(1)
	}

	// Khởi tạo validator với các custom rule của domain
	global.InitValidator()

	// Kết nối MongoDB
	client, err := database.GetInstance(cfg)
	if err != nil {
		log.WithFields(logrus.Fields{
			"uri":   cfg.MongoDB_ConnectionURI,
			"error": err.Error(),
		}).Error("Kết nối MongoDB thất bại")
		os.Exit(1)
	}
	defer func() {
		if err := database.CloseInstance(client); err != nil {
			log.WithFields(logrus.Fields{"error": err.Error()}).Warn("Đóng kết nối MongoDB thất bại")
		}
	}()

	store := database.NewStore(client, cfg.MongoDB_DBName, database.DefaultCollectionNames())

	// Khởi tạo app và đăng ký routes
	app := InitFiberApp(cfg)
	if err := setupRoutes(app, cfg, store); err != nil {
		log.WithFields(logrus.Fields{"error": err.Error()}).Error("Đăng ký routes thất bại")
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"address":  cfg.Address,
		"database": cfg.MongoDB_DBName,
	}).Info("Starting Fiber server...")

	if err := app.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}
