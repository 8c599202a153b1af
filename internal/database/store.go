// Package database quản lý kết nối MongoDB, collections và index của ứng dụng.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"social_manager/internal/common"
	"social_manager/internal/logger"
	"social_manager/internal/registry"
)

// CollectionNames chứa tên các collection trong database
type CollectionNames struct {
	Accounts           string
	Posts              string
	AnalyticsSnapshots string
	Comments           string
}

// DefaultCollectionNames trả về bộ tên collection mặc định của hệ thống
func DefaultCollectionNames() CollectionNames {
	return CollectionNames{
		Accounts:           "accounts",
		Posts:              "posts",
		AnalyticsSnapshots: "analyticssnapshots",
		Comments:           "comments",
	}
}

// All trả về danh sách tất cả tên collection
func (n CollectionNames) All() []string {
	return []string{n.Accounts, n.Posts, n.AnalyticsSnapshots, n.Comments}
}

// Store là handle truy cập dữ liệu của toàn bộ ứng dụng.
// Được khởi tạo một lần ở đầu process và truyền vào các service cần persistence,
// thay cho việc giữ connection ở biến toàn cục.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
	Names  CollectionNames

	collections *registry.Registry[*mongo.Collection]
}

// NewStore tạo Store từ một client đã kết nối và đăng ký các collection handle
func NewStore(client *mongo.Client, dbName string, names CollectionNames) *Store {
	db := client.Database(dbName)
	collections := registry.NewRegistry[*mongo.Collection]()
	for _, name := range names.All() {
		_, _ = collections.Register(name, db.Collection(name))
	}
	return &Store{
		Client:      client,
		DB:          db,
		Names:       names,
		collections: collections,
	}
}

// Collection trả về collection handle theo tên đã đăng ký
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	coll, exists := s.collections.Get(name)
	if !exists {
		return nil, fmt.Errorf("collection %s chưa được đăng ký: %w", name, common.ErrNotFound)
	}
	return coll, nil
}

// EnsureCollections đảm bảo database và các collection cần thiết tồn tại.
// Collection chưa tồn tại sẽ được tạo mới.
func (s *Store) EnsureCollections(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	collList, err := s.DB.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	existing := make(map[string]bool, len(collList))
	for _, name := range collList {
		existing[name] = true
	}

	for _, collectionName := range s.Names.All() {
		if existing[collectionName] {
			continue
		}
		logger.GetAppLogger().Infof("Collection %s chưa tồn tại, tạo mới.", collectionName)
		if err := s.DB.CreateCollection(ctx, collectionName); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", collectionName, err)
		}
	}

	logger.GetAppLogger().Infof("Database and collections are ensured in database: %s", s.DB.Name())
	return nil
}
