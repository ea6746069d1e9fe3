package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"photoapp/internal/models"
)

// ErrNotFound возвращается, когда запрошенная запись отсутствует в базе.
// Отличает отсутствие записи от ошибки самого запроса.
var ErrNotFound = errors.New("запись не найдена")

type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int, error)
}

type PhotoRepository interface {
	GetPhotosByUserID(ctx context.Context, userID string) ([]models.Photo, error)
	CountPhotos(ctx context.Context) (int, error)
}

type SchemaInfoRepository interface {
	GetSchemaInfo(ctx context.Context) (*models.SchemaInfo, error)
	CountSchemaInfo(ctx context.Context) (int, error)
}

type Repository struct {
	User       UserRepository
	Photo      PhotoRepository
	SchemaInfo SchemaInfoRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:       NewUserRepository(db),
		Photo:      NewPhotoRepository(db),
		SchemaInfo: NewSchemaInfoRepository(db),
	}
}
