package service

import (
	"context"
	"testing"

	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/store"
	"github.com/e2ee-notes/notevault/internal/validators"
	"github.com/e2ee-notes/notevault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validKeySetup() models.KeySetup {
	return models.KeySetup{
		PublicKey:           "-----BEGIN PUBLIC KEY-----\nMIIBIjANBgkqhkiG9w0BAQ==\n-----END PUBLIC KEY-----\n",
		EncryptedPrivateKey: "q4DPvJt1Fm0Cu3qQzV6RWJ7cL8dK2aXb",
	}
}

func TestSetupKeys_Success(t *testing.T) {
	var captured models.KeySetup
	repo := &mockUserRepository{
		setKeysFn: func(_ context.Context, userID int64, keys models.KeySetup) error {
			assert.Equal(t, int64(1), userID)
			captured = keys
			return nil
		},
	}
	svc := NewKeyService(repo, logger.Nop())

	keys := validKeySetup()
	require.NoError(t, svc.SetupKeys(context.Background(), 1, keys))
	assert.Equal(t, keys, captured)
}

func TestSetupKeys_AlreadySet(t *testing.T) {
	repo := &mockUserRepository{
		setKeysFn: func(_ context.Context, _ int64, _ models.KeySetup) error {
			return store.ErrKeysAlreadySet
		},
	}
	svc := NewKeyService(repo, logger.Nop())

	err := svc.SetupKeys(context.Background(), 1, validKeySetup())
	require.ErrorIs(t, err, store.ErrKeysAlreadySet)
}

func TestSetupKeys_RejectsMalformedPrivateKey(t *testing.T) {
	svc := NewKeyService(&mockUserRepository{
		setKeysFn: func(_ context.Context, _ int64, _ models.KeySetup) error {
			t.Fatal("repository must not be reached with invalid payload")
			return nil
		},
	}, logger.Nop())

	keys := validKeySetup()
	keys.EncryptedPrivateKey = "not base64 at all!!"

	err := svc.SetupKeys(context.Background(), 1, keys)

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validators.FieldEncryptedPrivateKey, verr.Fields[0].Field)
}

func TestSetupKeys_RejectsEmptyPublicKey(t *testing.T) {
	svc := NewKeyService(&mockUserRepository{}, logger.Nop())

	keys := validKeySetup()
	keys.PublicKey = ""

	err := svc.SetupKeys(context.Background(), 1, keys)

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validators.FieldPublicKey, verr.Fields[0].Field)
}

func TestGetKeys_Success(t *testing.T) {
	stored := validKeySetup()
	repo := &mockUserRepository{
		getKeysFn: func(_ context.Context, _ int64) (models.KeySetup, error) {
			return stored, nil
		},
	}
	svc := NewKeyService(repo, logger.Nop())

	keys, err := svc.GetKeys(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, stored, keys)
}

func TestGetKeys_NotSet(t *testing.T) {
	svc := NewKeyService(&mockUserRepository{}, logger.Nop())

	_, err := svc.GetKeys(context.Background(), 1)
	require.ErrorIs(t, err, store.ErrKeysNotSet)
}

func TestUpdateKeys_Success(t *testing.T) {
	updated := false
	repo := &mockUserRepository{
		updateKeysFn: func(_ context.Context, _ int64, _ models.KeySetup) error {
			updated = true
			return nil
		},
	}
	svc := NewKeyService(repo, logger.Nop())

	require.NoError(t, svc.UpdateKeys(context.Background(), 1, validKeySetup()))
	assert.True(t, updated)
}
