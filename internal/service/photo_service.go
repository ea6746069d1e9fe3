package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"photoapp/internal/config"
	"photoapp/internal/models"
	"photoapp/internal/repository"
	"photoapp/internal/storage"
)

// ErrNoPhotos возвращается, когда у пользователя нет ни одной фотографии
var ErrNoPhotos = errors.New("фотографии пользователя не найдены")

type PhotoService interface {
	GetPhotosOfUser(ctx context.Context, userID string) ([]models.PopulatedPhoto, error)
}

type photoService struct {
	photoRepo repository.PhotoRepository
	userRepo  repository.UserRepository
	storage   storage.Storage
	cfg       *config.Config
}

func NewPhotoService(photoRepo repository.PhotoRepository, userRepo repository.UserRepository, storage storage.Storage, cfg *config.Config) PhotoService {
	return &photoService{
		photoRepo: photoRepo,
		userRepo:  userRepo,
		storage:   storage,
		cfg:       cfg,
	}
}

// authorLookup связывает один запрос автора с местом комментария в ответе
type authorLookup struct {
	photoIdx   int
	commentIdx int
	authorID   string
}

// GetPhotosOfUser собирает фотографии пользователя вместе с комментариями
// и их авторами. Порядок фотографий и комментариев фиксируется до запуска
// запросов авторов и не зависит от порядка их завершения.
func (s *photoService) GetPhotosOfUser(ctx context.Context, userID string) ([]models.PopulatedPhoto, error) {
	photos, err := s.photoRepo.GetPhotosByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(photos) == 0 {
		return nil, ErrNoPhotos
	}

	result := make([]models.PopulatedPhoto, len(photos))
	var lookups []authorLookup

	for i, photo := range photos {
		result[i] = models.PopulatedPhoto{
			PhotoID:  photo.PhotoID,
			UserID:   photo.UserID,
			FileName: photo.FileName,
			DateTime: photo.DateTime,
			Comments: make([]models.PopulatedComment, len(photo.Comments)),
		}
		for j, comment := range photo.Comments {
			result[i].Comments[j] = models.PopulatedComment{
				CommentID: comment.CommentID,
				Comment:   comment.Comment,
				DateTime:  comment.DateTime,
			}
			lookups = append(lookups, authorLookup{photoIdx: i, commentIdx: j, authorID: comment.UserID})
		}
	}

	// все запросы авторов идут одним плоским пакетом, каждая горутина
	// пишет ровно в свою ячейку authors
	authors := make([]*models.User, len(lookups))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.lookupConcurrency())

	for i, l := range lookups {
		i, l := i, l
		g.Go(func() error {
			author, err := s.userRepo.GetUserByID(gctx, l.authorID)
			if err != nil {
				return fmt.Errorf("ошибка при получении автора комментария %s: %w", l.authorID, err)
			}
			authors[i] = author
			return nil
		})
	}

	// Wait возвращает первую ошибку, но только после завершения всех
	// запущенных запросов - частично собранный ответ наружу не уходит
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("сборка фотографий пользователя прервана")
		return nil, err
	}

	for i, l := range lookups {
		result[l.photoIdx].Comments[l.commentIdx].User = models.NewUserSummary(*authors[i])
	}

	if s.storage != nil {
		for i := range result {
			url, err := s.storage.GetImageURL(ctx, result[i].FileName)
			if err != nil {
				return nil, fmt.Errorf("ошибка при получении ссылки на файл %s: %w", result[i].FileName, err)
			}
			result[i].FileURL = url
		}
	}

	return result, nil
}

func (s *photoService) lookupConcurrency() int {
	if s.cfg != nil && s.cfg.LookupConcurrency > 0 {
		return s.cfg.LookupConcurrency
	}
	return config.DefaultLookupConcurrency
}
