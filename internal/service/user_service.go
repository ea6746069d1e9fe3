package service

import (
	"context"
	"errors"

	"photoapp/internal/models"
	"photoapp/internal/repository"
)

// ErrNoUsers возвращается, когда коллекция пользователей пуста.
// По контракту эндпоинта пустой список - это ошибка, а не пустой ответ.
var ErrNoUsers = errors.New("в базе нет ни одного пользователя")

type UserService interface {
	GetUserList(ctx context.Context) ([]models.UserSummary, error)
	GetUserDetail(ctx context.Context, userID string) (*models.UserDetail, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) GetUserList(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, ErrNoUsers
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, models.NewUserSummary(user))
	}

	return summaries, nil
}

func (s *userService) GetUserDetail(ctx context.Context, userID string) (*models.UserDetail, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	detail := models.NewUserDetail(*user)
	return &detail, nil
}
