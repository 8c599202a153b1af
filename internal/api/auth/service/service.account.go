// Package authsvc - service xử lý nghiệp vụ tài khoản: đăng ký, đăng nhập, tùy chọn, gói đăng ký.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	basemodels "social_manager/internal/api/base/models"
	basesvc "social_manager/internal/api/base/service"
	"social_manager/internal/api/auth/dto"
	"social_manager/internal/api/auth/models"
	"social_manager/internal/common"
	"social_manager/internal/database"
	"social_manager/internal/global"
)

// bcryptCost độ phức tạp băm password, khớp với dữ liệu seed
const bcryptCost = 12

// tokenLifetime thời hạn JWT token
const tokenLifetime = 24 * time.Hour

// planLimits hạn mức theo từng gói đăng ký
var planLimits = map[basemodels.SubscriptionPlan]models.SubscriptionLimits{
	basemodels.PlanFree:     {ScheduledPosts: 10, ConnectedAccounts: 1},
	basemodels.PlanPro:      {ScheduledPosts: 100, ConnectedAccounts: 3},
	basemodels.PlanBusiness: {ScheduledPosts: 1000, ConnectedAccounts: 10},
}

// AccountService xử lý nghiệp vụ tài khoản
type AccountService struct {
	*basesvc.BaseServiceMongoImpl[models.Account]
	jwtSecret string
}

// NewAccountService tạo mới AccountService trên collection accounts của store
func NewAccountService(store *database.Store, jwtSecret string) (*AccountService, error) {
	coll, err := store.Collection(store.Names.Accounts)
	if err != nil {
		return nil, fmt.Errorf("lấy collection accounts: %w", err)
	}
	return &AccountService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Account](coll),
		jwtSecret:            jwtSecret,
	}, nil
}

// NormalizeEmail chuẩn hóa email: trim khoảng trắng và lowercase
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register đăng ký tài khoản mới.
// Email được chuẩn hóa trước khi lưu; trùng email trả về lỗi conflict từ unique index.
func (s *AccountService) Register(ctx context.Context, input *dto.RegisterInput) (models.Account, error) {
	var zero models.Account

	if err := global.Validate.Struct(input); err != nil {
		return zero, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err.Error())
	}

	account := models.Account{
		Name:           strings.TrimSpace(input.Name),
		Email:          NormalizeEmail(input.Email),
		Password:       string(hash),
		SocialAccounts: []models.SocialConnection{},
	}

	return s.InsertOne(ctx, account)
}

// Login xác thực email/password và trả về JWT token.
// Sai email hay sai password đều trả về cùng một lỗi để không lộ thông tin tài khoản.
func (s *AccountService) Login(ctx context.Context, input *dto.LoginInput) (*dto.LoginResult, error) {
	if err := global.Validate.Struct(input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	account, err := s.FindOne(ctx, bson.M{"email": NormalizeEmail(input.Email)}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.createToken(&account)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResult{
		ID:    account.ID.Hex(),
		Name:  account.Name,
		Email: account.Email,
		Token: token,
	}, nil
}

// createToken tạo JWT HS256 chứa accountId và email
func (s *AccountService) createToken(account *models.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"accountId": account.ID.Hex(),
		"email":     account.Email,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể tạo token", common.StatusInternalServerError, err.Error())
	}
	return signed, nil
}

// UpdatePreferences cập nhật các tùy chọn vận hành, chỉ ghi các field được gửi lên
func (s *AccountService) UpdatePreferences(ctx context.Context, accountID primitive.ObjectID, input *dto.UpdatePreferencesInput) (models.Account, error) {
	set := bson.M{}
	if input.AutoReply != nil {
		set["preferences.autoReply"] = *input.AutoReply
	}
	if input.ToxicityFilter != nil {
		set["preferences.toxicityFilter"] = *input.ToxicityFilter
	}
	if input.HumanApproval != nil {
		set["preferences.humanApproval"] = *input.HumanApproval
	}
	if input.AICaption != nil {
		set["preferences.aiCaption"] = *input.AICaption
	}
	if input.AIHashtags != nil {
		set["preferences.aiHashtags"] = *input.AIHashtags
	}
	if len(set) == 0 {
		return s.FindOneById(ctx, accountID)
	}

	return s.UpdateById(ctx, accountID, bson.M{"$set": set})
}

// UpdateSubscription đổi gói đăng ký và áp hạn mức tương ứng với gói
func (s *AccountService) UpdateSubscription(ctx context.Context, accountID primitive.ObjectID, input *dto.UpdateSubscriptionInput) (models.Account, error) {
	var zero models.Account

	if err := global.Validate.Struct(input); err != nil {
		return zero, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	limits, ok := planLimits[input.Plan]
	if !ok {
		return zero, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Gói đăng ký '%s' không hợp lệ", input.Plan), common.StatusBadRequest, nil)
	}

	set := bson.M{
		"subscription.plan":   input.Plan,
		"subscription.limits": limits,
	}
	if input.ValidUntil > 0 {
		set["subscription.validUntil"] = input.ValidUntil
	}

	return s.UpdateById(ctx, accountID, bson.M{"$set": set})
}

// LinkSocial kết nối một tài khoản mạng xã hội.
// Mỗi platform chỉ có một connection: đã tồn tại thì ghi đè, chưa thì thêm mới.
// Số lượng connection bị giới hạn bởi subscription.limits.connectedAccounts.
func (s *AccountService) LinkSocial(ctx context.Context, accountID primitive.ObjectID, input *dto.LinkSocialInput) (models.Account, error) {
	var zero models.Account

	if err := global.Validate.Struct(input); err != nil {
		return zero, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	account, err := s.FindOneById(ctx, accountID)
	if err != nil {
		return zero, err
	}

	connection := models.SocialConnection{
		Platform:    input.Platform,
		AccessToken: input.AccessToken,
		Username:    input.Username,
		UserID:      input.UserID,
		PageID:      input.PageID,
		Connected:   true,
	}

	existing := -1
	for i, sc := range account.SocialAccounts {
		if sc.Platform == input.Platform {
			existing = i
			break
		}
	}

	if existing >= 0 {
		return s.UpdateOne(ctx,
			bson.M{"_id": accountID, "socialAccounts.platform": input.Platform},
			bson.M{"$set": bson.M{"socialAccounts.$": connection}},
			nil,
		)
	}

	if len(account.SocialAccounts) >= account.Subscription.Limits.ConnectedAccounts {
		return zero, common.NewError(common.ErrCodeBusinessOperation,
			fmt.Sprintf("Gói %s chỉ cho phép kết nối tối đa %d tài khoản mạng xã hội",
				account.Subscription.Plan, account.Subscription.Limits.ConnectedAccounts),
			common.StatusBadRequest, nil)
	}

	return s.UpdateById(ctx, accountID, bson.M{"$push": bson.M{"socialAccounts": connection}})
}

// ScheduledPostLimit trả về hạn mức bài đăng được lên lịch của tài khoản
func (s *AccountService) ScheduledPostLimit(ctx context.Context, accountID primitive.ObjectID) (int, error) {
	account, err := s.FindOneById(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return account.Subscription.Limits.ScheduledPosts, nil
}

// UnlinkSocial ngắt kết nối tài khoản mạng xã hội của một platform
func (s *AccountService) UnlinkSocial(ctx context.Context, accountID primitive.ObjectID, platform basemodels.Platform) (models.Account, error) {
	var zero models.Account

	if !platform.IsValid() {
		return zero, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Platform '%s' không hợp lệ", platform), common.StatusBadRequest, nil)
	}

	return s.UpdateById(ctx, accountID,
		bson.M{"$pull": bson.M{"socialAccounts": bson.M{"platform": platform}}})
}
