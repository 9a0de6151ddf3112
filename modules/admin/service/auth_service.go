package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"roomboard/core/cache"
	"roomboard/core/config"
	"roomboard/core/errors"
	"roomboard/core/logger"
	"roomboard/core/utils"
	"roomboard/modules/admin/dto"
	"roomboard/modules/admin/repository"

	"golang.org/x/crypto/bcrypt"
)

const (
	maxLoginAttempts  = 5
	loginAttemptTTL   = 15 * time.Minute
	attemptKeyPattern = "admin:login_attempts:%s"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
}

type AuthService struct {
	adminRepo repository.AdminRepositoryInterface
	cache     cache.Cache
}

func NewAuthService(adminRepo repository.AdminRepositoryInterface, c cache.Cache) *AuthService {
	return &AuthService{adminRepo: adminRepo, cache: c}
}

// Login verifies admin credentials and issues a bearer token. Repeated
// failures for the same username are throttled via the cache.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	if req.Username == "" || req.Password == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Username and password are required", nil)
	}

	attemptKey := fmt.Sprintf(attemptKeyPattern, req.Username)
	if raw, found, err := s.cache.Get(ctx, attemptKey); err == nil && found {
		if attempts, _ := strconv.Atoi(raw); attempts >= maxLoginAttempts {
			return nil, errors.NewAppError(errors.ErrUnauthorized, "Too many failed attempts, try again later", nil)
		}
	}

	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.Error("AuthService:Login:GetByUsername", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Login failed", nil)
	}

	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		s.recordFailedAttempt(ctx, attemptKey)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid username or password", nil)
	}

	token, err := utils.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Login failed", nil)
	}

	if err := s.cache.Delete(ctx, attemptKey); err != nil {
		logger.Warn("AuthService:Login:ClearAttempts", "error", err)
	}

	logger.Info("AuthService:Login:Success", "admin_id", admin.ID, "username", admin.Username)
	return &dto.LoginResponse{Token: token, Username: admin.Username}, nil
}

func (s *AuthService) recordFailedAttempt(ctx context.Context, key string) {
	attempts := 1
	if raw, found, err := s.cache.Get(ctx, key); err == nil && found {
		if prev, err := strconv.Atoi(raw); err == nil {
			attempts = prev + 1
		}
	}
	if err := s.cache.Set(ctx, key, strconv.Itoa(attempts), loginAttemptTTL); err != nil {
		logger.Warn("AuthService:recordFailedAttempt", "error", err)
	}
}

// EnsureSeedAdmin creates the initial account from config when the admins
// table is empty. Without it a fresh deployment has no way to log in.
func EnsureSeedAdmin(ctx context.Context, adminRepo repository.AdminRepositoryInterface, cfg config.AdminConfig) error {
	count, err := adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if cfg.Password == "" {
		logger.Warn("AuthService:EnsureSeedAdmin:NoPassword")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin, err := adminRepo.Create(ctx, cfg.Username, string(hash))
	if err != nil {
		return err
	}
	logger.Info("AuthService:EnsureSeedAdmin:Created", "username", admin.Username)
	return nil
}
