package service

import (
	"context"
	"fmt"

	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/store"
	"github.com/e2ee-notes/notevault/internal/validators"
	"github.com/e2ee-notes/notevault/models"
)

// keyService stores and serves the user's encryption identity. Both key
// fields are opaque to the server: the public key is PEM text and the
// private key is a password-wrapped blob only the owner can open.
type keyService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewKeyService constructs a KeyService wired to the given UserRepository.
func NewKeyService(userRepository store.UserRepository, logger *logger.Logger) KeyService {
	return &keyService{
		userRepository: userRepository,
		validator:      validators.NewNotePayloadValidator(),
		logger:         logger,
	}
}

// SetupKeys stores the key pair for a user who has not completed encryption
// setup yet. The operation is one-shot: a second call surfaces
// store.ErrKeysAlreadySet so a client bug cannot silently replace the keys.
func (k *keyService) SetupKeys(ctx context.Context, userID int64, keys models.KeySetup) error {
	if err := k.validator.Validate(ctx, keys); err != nil {
		return err
	}

	if err := k.userRepository.SetEncryptionKeys(ctx, userID, keys); err != nil {
		return fmt.Errorf("storing encryption keys failed: %w", err)
	}

	return nil
}

// GetKeys returns the stored key pair for the user.
func (k *keyService) GetKeys(ctx context.Context, userID int64) (models.KeySetup, error) {
	keys, err := k.userRepository.GetEncryptionKeys(ctx, userID)
	if err != nil {
		return models.KeySetup{}, fmt.Errorf("loading encryption keys failed: %w", err)
	}

	return keys, nil
}

// UpdateKeys replaces the stored key material. Used after a client-side
// password change re-wraps the private key; the public key normally stays
// the same but the server does not enforce that.
func (k *keyService) UpdateKeys(ctx context.Context, userID int64, keys models.KeySetup) error {
	if err := k.validator.Validate(ctx, keys); err != nil {
		return err
	}

	if err := k.userRepository.UpdateEncryptionKeys(ctx, userID, keys); err != nil {
		return fmt.Errorf("updating encryption keys failed: %w", err)
	}

	return nil
}
