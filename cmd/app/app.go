package app

import (
	"github.com/rs/zerolog/log"

	"photoapp/internal/config"
	"photoapp/internal/database"
	"photoapp/internal/repository"
	"photoapp/internal/service"
	"photoapp/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Не удалось подключиться к БД")
	}

	// connection MinIO, ссылки на файлы работают только при включённом хранилище
	var store storage.Storage
	if cfg.MinIO.Enabled {
		minioClient, err := storage.NewMinIOClient(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Не удалось инициализировать MinIO")
		}
		store = minioClient
	} else {
		log.Warn().Msg("MinIO не настроен, ссылки на файлы фотографий отключены")
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store)

	return db, services
}
