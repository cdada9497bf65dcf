package config

import (
	"fmt"
	"time"
)

// ServerApp holds server-side application settings derived from the shared
// structured config.
type ServerApp struct {
	// PasswordHashKey is the HMAC key for password hashing.
	PasswordHashKey string
	// HashKey is the HMAC key for request integrity checking. Empty
	// disables verification.
	HashKey string
	// TokenSignKey signs and verifies JWT tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the lifetime of issued tokens.
	TokenDuration time.Duration
	// Version is the application version reported by /api/version/.
	Version string
}

// ServerHTTP holds inbound transport settings.
type ServerHTTP struct {
	// HTTPAddress is the listen address in "host:port" format.
	HTTPAddress string
	// RequestTimeout bounds each inbound request.
	RequestTimeout time.Duration
}

// ServerDB contains database connection settings for the server.
type ServerDB struct {
	// DSN is the PostgreSQL connection string.
	DSN string
}

// ServerStorage groups server storage backend settings.
type ServerStorage struct {
	DB ServerDB
}

// ServerConfig is the server-specific view assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  ServerHTTP
	Storage ServerStorage
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			PasswordHashKey: cfg.App.PasswordHashKey,
			HashKey:         cfg.App.HashKey,
			TokenSignKey:    cfg.App.TokenSignKey,
			TokenIssuer:     cfg.App.TokenIssuer,
			TokenDuration:   cfg.App.TokenDuration,
			Version:         cfg.App.Version,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DB: ServerDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	return serverCfg, serverCfg.validate()
}
