package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"photoapp/cmd/app"
	"photoapp/internal/config"
	handlers "photoapp/internal/handler"
	"photoapp/internal/logger"
	"photoapp/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()
	logger.Setup(cfg.LogLevel)

	db, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	// setting up routes, /user/list регистрируется раньше /user/{id}
	router := mux.NewRouter()
	router.HandleFunc("/", handler.HomeHandler)
	router.HandleFunc("/test", handler.TestHandler)
	router.HandleFunc("/test/{p1}", handler.TestHandler)
	router.HandleFunc("/user/list", handler.GetUserList)
	router.HandleFunc("/user/{id}", handler.GetUser)
	router.HandleFunc("/photosOfUser/{id}", handler.GetPhotosOfUser)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.RequestIDMiddleware,
		middleware.TimeoutMiddleware(cfg.RequestTimeout),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Info().Str("addr", addr).Str("db", cfg.DB.DbNAME).Msg("Сервер запущен")

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatal().Err(err).Msg("Ошибка запуска сервера")
	}
}
