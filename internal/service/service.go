package service

import (
	"photoapp/internal/config"
	"photoapp/internal/repository"
	"photoapp/internal/storage"
)

type Service struct {
	User  UserService
	Photo PhotoService
	Info  InfoService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		User:  NewUserService(rep.User),
		Photo: NewPhotoService(rep.Photo, rep.User, storage, cfg),
		Info:  NewInfoService(rep.User, rep.Photo, rep.SchemaInfo),
	}
}
