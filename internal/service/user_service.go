package service

import (
	"errors"

	"kinovzor/internal/api/dto"
	"kinovzor/internal/repository"
	"kinovzor/pkg/logger"
	"kinovzor/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUser returns a user profile.
func (s *UserService) GetUser(id int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	info := toUserInfo(user)
	return &info, nil
}

// UpdateUser applies a partial profile update. Unassigned fields keep their
// values, and a request with nothing assigned returns the profile unchanged.
// Changing email or username re-checks uniqueness; a new password is hashed
// before it is stored.
func (s *UserService) UpdateUser(id int64, req *dto.UserUpdateRequest) (*dto.UserInfo, error) {
	current, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Email != nil && *req.Email != current.Email {
		exists, err := s.userRepo.ExistsByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailExists
		}
		updates["email"] = *req.Email
	}

	if req.Username != nil && *req.Username != current.Username {
		exists, err := s.userRepo.ExistsByUsername(*req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUsernameExists
		}
		updates["username"] = *req.Username
	}

	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hash
	}

	user, err := s.userRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	info := toUserInfo(user)
	return &info, nil
}

// DeleteUser removes a user along with their reviews and favorites.
func (s *UserService) DeleteUser(id int64) error {
	err := s.userRepo.Delete(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	logger.Info("User deleted", zap.Int64("user_id", id))
	return nil
}

// ListUsers returns a page of accounts for the admin panel, with an optional
// username filter.
func (s *UserService) ListUsers(page, pageSize int, username *string) (*dto.PaginatedData, error) {
	skip := (page - 1) * pageSize

	users, total, err := s.userRepo.ListWithFilters(skip, pageSize, username)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		items = append(items, toUserInfo(&users[i]))
	}

	return &dto.PaginatedData{
		Items: items,
		Meta: dto.PaginationMeta{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages(total, pageSize),
		},
	}, nil
}

func totalPages(total int64, pageSize int) int64 {
	if pageSize <= 0 {
		return 0
	}
	return (total + int64(pageSize) - 1) / int64(pageSize)
}
