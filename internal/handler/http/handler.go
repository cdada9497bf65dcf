package http

import (
	"github.com/e2ee-notes/notevault/internal/config"
	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/service"
)

type Handler struct {
	services *service.Services

	// hashKey is the HMAC key for the request integrity header. Empty
	// disables verification.
	hashKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, appCfg config.ServerApp, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  appCfg.HashKey,
		logger:   logger,
	}
}
