package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"budgetbuddy/internal/auth"
	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/model"
)

const testAdminKey = "test-admin-key"

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		nameField     string
		adminKey      string
		setupMock     func(*MockUserRepository)
		expectedRole  string
		expectedError error
	}{
		{
			name:      "successful registration",
			email:     "test@example.com",
			password:  "password123",
			nameField: "Test User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleUser,
		},
		{
			name:      "matching admin key promotes role",
			email:     "admin@example.com",
			password:  "password123",
			nameField: "Admin User",
			adminKey:  testAdminKey,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "admin@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleAdmin,
		},
		{
			name:      "wrong admin key keeps user role",
			email:     "wannabe@example.com",
			password:  "password123",
			nameField: "Wannabe Admin",
			adminKey:  "not-the-key",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "wannabe@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleUser,
		},
		{
			name:      "user already exists",
			email:     "existing@example.com",
			password:  "password123",
			nameField: "Existing User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			mockTokenStore := new(MockTokenStore)

			service := NewAuthService(mockRepo, jwtService, mockTokenStore, testAdminKey)
			user, err := service.Register(context.Background(), tt.nameField, tt.email, tt.password, tt.adminKey)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.nameField, user.Name)
				assert.Equal(t, tt.expectedRole, user.Role)
				assert.Equal(t, model.StatusActive, user.Status)
				assert.NotEmpty(t, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           1,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
					Role:         model.RoleUser,
					Status:       model.StatusActive,
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(1), "test@example.com", mock.Anything).Return(nil)
			},
		},
		{
			name:     "invalid credentials - user not found",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "invalid credentials - wrong password",
			email:    "test@example.com",
			password: "wrong-password",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           1,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
					Status:       model.StatusActive,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "banned user rejected",
			email:    "banned@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "banned@example.com").Return(&model.User{
					ID:           2,
					Email:        "banned@example.com",
					PasswordHash: string(hashedPassword),
					Status:       model.StatusBanned,
				}, nil)
			},
			expectedError: apperrors.ErrAccountBanned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockTokenStore, testAdminKey)

			accessToken, refreshToken, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	mockRepo := new(MockUserRepository)
	mockTokenStore := new(MockTokenStore)

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "test@example.com", model.RoleUser)
	assert.NoError(t, err)

	mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(1), "test@example.com", nil)

	service := NewAuthService(mockRepo, jwtService, mockTokenStore, testAdminKey)
	accessToken, err := service.RefreshToken(context.Background(), refreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, model.RoleUser, claims.Role)

	mockTokenStore.AssertExpectations(t)
}
