package handlers

import (
	"github.com/go-playground/validator/v10"

	"photoapp/internal/config"
	"photoapp/internal/service"
)

type Handlers struct {
	UserService  service.UserService
	PhotoService service.PhotoService
	InfoService  service.InfoService
	Cfg          *config.Config
	Validate     *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		UserService:  services.User,
		PhotoService: services.Photo,
		InfoService:  services.Info,
		Cfg:          config,
		Validate:     validator.New(),
	}
}
