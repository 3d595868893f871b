package service

import (
	"context"
	"errors"
	"time"

	"kinovzor/internal/api/dto"
	"kinovzor/internal/config"
	"kinovzor/internal/model"
	"kinovzor/internal/repository"
	"kinovzor/pkg/logger"
	"kinovzor/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrEmailExists       = errors.New("email already registered")
	ErrUsernameExists    = errors.New("username already taken")
	ErrInvalidCredential = errors.New("invalid username or password")
	ErrUserNotFound      = errors.New("user not found")
)

type AuthService struct {
	userRepo  *repository.UserRepository
	blacklist *repository.TokenBlacklistRepository
}

func NewAuthService(userRepo *repository.UserRepository, blacklist *repository.TokenBlacklistRepository) *AuthService {
	return &AuthService{userRepo: userRepo, blacklist: blacklist}
}

// Register creates a viewer account. Email and username must both be unused.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.UserInfo, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	exists, err = s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    req.Email,
		Password: hash,
		Username: req.Username,
		IsUser:   true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	info := toUserInfo(user)
	return &info, nil
}

// Login authenticates by username and issues a JWT.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenData, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenData{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(config.GetJWT().ExpireDuration().Seconds()),
		User:      toUserInfo(user),
	}, nil
}

// Logout revokes the token for its remaining lifetime. An already expired
// token needs no revocation.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		if errors.Is(err, utils.ErrExpiredToken) {
			return nil
		}
		return err
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	return s.blacklist.Add(ctx, utils.TokenHash(tokenString), ttl)
}

// GetCurrentUser returns the profile behind a token's user id.
func (s *AuthService) GetCurrentUser(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	info := toUserInfo(user)
	return &info, nil
}

func toUserInfo(user *model.User) dto.UserInfo {
	return dto.UserInfo{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		IsUser:      user.IsUser,
		IsModerator: user.IsModerator,
		IsAdmin:     user.IsAdmin,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
