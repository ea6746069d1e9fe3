package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"photoapp/internal/models"
)

type schemaInfoRepository struct {
	db *sqlx.DB
}

func NewSchemaInfoRepository(db *sqlx.DB) SchemaInfoRepository {
	return &schemaInfoRepository{db: db}
}

// GetSchemaInfo возвращает первую запись schema_info.
// Ожидается ровно одна запись, но лишние записи - забота
// администратора базы, а не этого слоя.
func (r *schemaInfoRepository) GetSchemaInfo(ctx context.Context) (*models.SchemaInfo, error) {
	var info models.SchemaInfo

	query := `SELECT * FROM schema_info LIMIT 1`

	err := r.db.GetContext(ctx, &info, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("запись schema_info: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении schema_info: %w", err)
	}

	return &info, nil
}

func (r *schemaInfoRepository) CountSchemaInfo(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM schema_info`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте записей schema_info: %w", err)
	}

	return count, nil
}
