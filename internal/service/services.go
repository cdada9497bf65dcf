package service

import (
	"github.com/e2ee-notes/notevault/internal/config"
	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/store"
)

// Services bundles every server-side service behind one value so the
// transport layer receives a single dependency.
type Services struct {
	AuthService     AuthService
	KeyService      KeyService
	NoteService     NoteService
	CategoryService CategoryService
	AppInfoService  AppInfoService
}

// NewServices wires all services to the storage layer and configuration.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		KeyService:      NewKeyService(storages.UserRepository, logger),
		NoteService:     NewNoteService(storages.NoteRepository, logger),
		CategoryService: NewCategoryService(storages.CategoryRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
