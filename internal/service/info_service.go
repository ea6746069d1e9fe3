package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"photoapp/internal/models"
	"photoapp/internal/repository"
)

// ErrMissingSchemaInfo возвращается, когда диагностическая запись
// schema_info отсутствует в базе
var ErrMissingSchemaInfo = errors.New("запись SchemaInfo отсутствует")

type InfoService interface {
	GetSchemaInfo(ctx context.Context) (*models.SchemaInfo, error)
	GetCollectionCounts(ctx context.Context) (*models.CollectionCounts, error)
}

type infoService struct {
	userRepo   repository.UserRepository
	photoRepo  repository.PhotoRepository
	schemaRepo repository.SchemaInfoRepository
}

func NewInfoService(userRepo repository.UserRepository, photoRepo repository.PhotoRepository, schemaRepo repository.SchemaInfoRepository) InfoService {
	return &infoService{
		userRepo:   userRepo,
		photoRepo:  photoRepo,
		schemaRepo: schemaRepo,
	}
}

func (s *infoService) GetSchemaInfo(ctx context.Context) (*models.SchemaInfo, error) {
	info, err := s.schemaRepo.GetSchemaInfo(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMissingSchemaInfo
		}
		return nil, err
	}

	return info, nil
}

// GetCollectionCounts считает документы во всех трёх коллекциях
// параллельно. Ошибка любого подсчёта отменяет весь ответ -
// частичные счётчики наружу не отдаются.
func (s *infoService) GetCollectionCounts(ctx context.Context) (*models.CollectionCounts, error) {
	var counts models.CollectionCounts

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.userRepo.CountUsers(gctx)
		counts.User = count
		return err
	})
	g.Go(func() error {
		count, err := s.photoRepo.CountPhotos(gctx)
		counts.Photo = count
		return err
	})
	g.Go(func() error {
		count, err := s.schemaRepo.CountSchemaInfo(gctx)
		counts.SchemaInfo = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &counts, nil
}
