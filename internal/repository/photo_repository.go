package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"photoapp/internal/models"
)

type photoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) PhotoRepository {
	return &photoRepository{db: db}
}

// GetPhotosByUserID возвращает фотографии в порядке выборки из базы,
// пустой список не считается ошибкой на этом уровне
func (r *photoRepository) GetPhotosByUserID(ctx context.Context, userID string) ([]models.Photo, error) {
	var photos []models.Photo

	query := `SELECT * FROM photos WHERE user_id = $1`

	err := r.db.SelectContext(ctx, &photos, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении фотографий пользователя %s: %w", userID, err)
	}

	return photos, nil
}

func (r *photoRepository) CountPhotos(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM photos`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте фотографий: %w", err)
	}

	return count, nil
}
