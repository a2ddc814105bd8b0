package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/propease/propease-api/internal/config"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	repository.UserRepository
	mockFindByEmail func(ctx context.Context, email string) (*models.User, error)
	mockFindByID    func(ctx context.Context, id uint) (*models.User, error)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.mockFindByEmail(ctx, email)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return m.mockFindByID(ctx, id)
}

type mockRTRepo struct {
	repository.RefreshTokenRepository
	mockFindByToken func(ctx context.Context, token string) (*models.RefreshToken, error)
	mockDelete      func(ctx context.Context, token string) error
	created         []*models.RefreshToken
}

func (m *mockRTRepo) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	return m.mockFindByToken(ctx, token)
}

func (m *mockRTRepo) Create(ctx context.Context, rt *models.RefreshToken) error {
	m.created = append(m.created, rt)
	return nil
}

func (m *mockRTRepo) Delete(ctx context.Context, token string) error {
	if m.mockDelete != nil {
		return m.mockDelete(ctx, token)
	}
	return nil
}

func testAuthConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	mockRepo := &mockUserRepo{}
	service := NewAuthService(mockRepo, nil, nil)

	mockRepo.mockFindByEmail = func(ctx context.Context, email string) (*models.User, error) {
		return &models.User{
			Email:  email,
			Status: models.StatusInactive,
		}, nil
	}

	result, err := service.Login(context.Background(), "inactive@example.com", "password")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrAccountInactive)
	assert.Equal(t, "account is inactive or suspended", err.Error())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	mockRepo := &mockUserRepo{
		mockFindByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 3, Email: email, Status: models.StatusActive, EncryptedPassword: hash}, nil
		},
	}
	service := NewAuthService(mockRepo, &mockRTRepo{}, testAuthConfig())

	_, err = service.Login(context.Background(), "sales@example.com", "battery-staple")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	mockRepo.mockFindByEmail = func(ctx context.Context, email string) (*models.User, error) {
		return nil, errors.New("record not found")
	}
	_, err = service.Login(context.Background(), "nobody@example.com", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_IssuesTokens(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	mockRepo := &mockUserRepo{
		mockFindByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 3, Email: email, Role: models.RoleEmployee, Status: models.StatusActive, EncryptedPassword: hash}, nil
		},
	}
	rtRepo := &mockRTRepo{}
	service := NewAuthService(mockRepo, rtRepo, testAuthConfig())

	result, err := service.Login(context.Background(), "sales@example.com", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, uint(3), result.User.ID)
	require.Len(t, rtRepo.created, 1)
	assert.True(t, rtRepo.created[0].ExpiresAt.After(time.Now().Add(29*24*time.Hour)))

	claims, err := service.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, models.RoleEmployee, claims.Role)

	other := NewAuthService(mockRepo, rtRepo, &config.Config{JWTSecret: "other-secret", JWTExpirationHours: 1})
	_, err = other.ParseToken(result.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_RefreshToken_InactiveUser(t *testing.T) {
	mockRepo := &mockUserRepo{}
	rtRepo := &mockRTRepo{}
	service := NewAuthService(mockRepo, rtRepo, nil)

	rtRepo.mockFindByToken = func(ctx context.Context, token string) (*models.RefreshToken, error) {
		return &models.RefreshToken{UserID: 1}, nil
	}
	mockRepo.mockFindByID = func(ctx context.Context, id uint) (*models.User, error) {
		return &models.User{
			ID:     id,
			Status: models.StatusInactive,
		}, nil
	}

	result, err := service.RefreshToken(context.Background(), "token")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestAuthService_RefreshToken_Expired(t *testing.T) {
	deleted := ""
	past := time.Now().Add(-time.Hour)
	rtRepo := &mockRTRepo{
		mockFindByToken: func(ctx context.Context, token string) (*models.RefreshToken, error) {
			return &models.RefreshToken{UserID: 1, Token: token, ExpiresAt: &past}, nil
		},
		mockDelete: func(ctx context.Context, token string) error {
			deleted = token
			return nil
		},
	}
	service := NewAuthService(&mockUserRepo{}, rtRepo, testAuthConfig())

	_, err := service.RefreshToken(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Equal(t, "stale", deleted)
}
