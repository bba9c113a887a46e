package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"storefront_api/internal/api/dto"
	"storefront_api/internal/middleware"
	"storefront_api/internal/model"
	"storefront_api/internal/repository"
	"storefront_api/pkg/utils"
)

// AuthService is a deliberately thin credential store: register, login,
// refresh. Refresh tokens live in the in-memory TTL cache and rotate on
// every use.
type AuthService struct {
	UserRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{UserRepo: userRepo}
}

func refreshKey(userID string) string {
	return "refresh:" + userID
}

// ==================== Operations ====================

func (s *AuthService) Register(ctx context.Context, req dto.RegisterReq) (*dto.UserResp, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	exists, err := s.UserRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: username %s is taken", ErrConflict, username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	user := model.SysUser{
		Username: username,
		Password: string(hash),
		Email:    strings.TrimSpace(req.Email),
		Role:     model.RoleCustomer,
		IsActive: true,
	}
	if err := s.UserRepo.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, fmt.Errorf("%w: username %s is taken", ErrConflict, username)
		}
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	return &dto.UserResp{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginReq) (*dto.TokenResp, error) {
	user, err := s.UserRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	if user == nil || !user.IsActive {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if err := s.UserRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return s.issueTokens(user)
}

// Refresh rotates the token pair. The presented refresh token must match
// the one cached for its user, so a stolen older token dies on first use
// after a legitimate refresh.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResp, error) {
	claims, err := middleware.ParseToken(refreshToken)
	if err != nil || claims.Subject != "refresh" {
		return nil, fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	}

	cached, ok := utils.GetCache(refreshKey(claims.UserID))
	if !ok || cached != refreshToken {
		return nil, fmt.Errorf("%w: refresh token revoked", ErrUnauthorized)
	}

	user, err := s.UserRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	if user == nil || !user.IsActive {
		return nil, fmt.Errorf("%w: account disabled", ErrUnauthorized)
	}

	utils.DeleteCache(refreshKey(user.ID))
	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *model.SysUser) (*dto.TokenResp, error) {
	access, refresh, err := middleware.GenerateTokenPair(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	cfg := middleware.GetJWTConfig()
	utils.SetCache(refreshKey(user.ID), refresh, cfg.RefreshTokenTTL)

	return &dto.TokenResp{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(cfg.AccessTokenTTL.Seconds()),
	}, nil
}

// EnsureAdmin seeds the bootstrap admin account when it does not exist
// yet. Called at startup with credentials from config.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	exists, err := s.UserRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.Create(ctx, &model.SysUser{
		Username: username,
		Password: string(hash),
		Role:     model.RoleAdmin,
		IsActive: true,
	})
}
