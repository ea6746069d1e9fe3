package storage

import (
	"context"
	"fmt"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"photoapp/internal/config"
)

type Storage interface {
	GetImageURL(ctx context.Context, fileName string) (string, error)
}

type MinIOClient struct {
	client *minio.Client
	config *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации MinIO: %w", err)
	}

	return &MinIOClient{client: client, config: cfg}, nil
}

// GetImageURL выдаёт временную подписанную ссылку на файл фотографии.
// Сами файлы этот сервис не хранит и не отдаёт.
func (m *MinIOClient) GetImageURL(ctx context.Context, fileName string) (string, error) {
	objectName := "photos/" + fileName

	presigned, err := m.client.PresignedGetObject(ctx, m.config.MinIO.BucketName, objectName,
		m.config.MinIO.URLExpiry, make(url.Values))
	if err != nil {
		return "", fmt.Errorf("ошибка при создании ссылки на %s: %w", objectName, err)
	}

	return presigned.String(), nil
}
