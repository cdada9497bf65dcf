package service

import (
	"context"
	"fmt"

	"github.com/e2ee-notes/notevault/internal/adapter"
	"github.com/e2ee-notes/notevault/internal/crypto"
	"github.com/e2ee-notes/notevault/internal/session"
	"github.com/e2ee-notes/notevault/models"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	keychain crypto.Keychain
	session  *session.Session
}

// NewClientAuthService builds the client auth service on top of the server
// adapter, the cryptographic keychain, and the shared session.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, keychain crypto.Keychain, sess *session.Session) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, keychain: keychain, session: sess}
}

// Register implements [ClientAuthService]. It creates the account on the
// server and authenticates the session with the returned token.
func (a *clientAuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidDataProvided
	}

	token, err := a.adapter.Register(ctx, models.User{Username: username, Password: password})
	if err != nil {
		return mapAdapterError(err)
	}

	a.session.Authenticate(token.SignedString, token.UserID, username)
	return nil
}

// Login implements [ClientAuthService]. It authenticates against the server
// and stores the bearer token in the session; the session stays locked.
func (a *clientAuthService) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidDataProvided
	}

	token, err := a.adapter.Login(ctx, models.User{Username: username, Password: password})
	if err != nil {
		return mapAdapterError(err)
	}

	a.session.Authenticate(token.SignedString, token.UserID, username)
	return nil
}

// SetupEncryption implements [ClientAuthService]. It generates the key pair,
// wraps the private key under encryptionPassword, uploads the identity, and
// unlocks the session. The plaintext private key never leaves this process.
func (a *clientAuthService) SetupEncryption(ctx context.Context, encryptionPassword string) error {
	if !a.session.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if encryptionPassword == "" {
		return ErrInvalidDataProvided
	}

	pair, err := a.keychain.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("generate key pair: %w", err)
	}

	wrapped, err := a.keychain.WrapPrivateKey(pair.PrivateKey, encryptionPassword)
	if err != nil {
		return fmt.Errorf("wrap private key: %w", err)
	}

	if err = a.adapter.SetupKeys(ctx, models.KeySetup{PublicKey: pair.PublicKey, EncryptedPrivateKey: wrapped}); err != nil {
		return mapAdapterError(err)
	}

	a.session.Unlock(pair.PublicKey, pair.PrivateKey)
	return nil
}

// Unlock implements [ClientAuthService]. It fetches the wrapped identity
// from the server and unwraps the private key with encryptionPassword.
func (a *clientAuthService) Unlock(ctx context.Context, encryptionPassword string) error {
	if !a.session.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if encryptionPassword == "" {
		return ErrInvalidDataProvided
	}

	keys, err := a.adapter.GetKeys(ctx)
	if err != nil {
		return mapAdapterError(err)
	}

	privateKey, err := a.keychain.UnwrapPrivateKey(keys.EncryptedPrivateKey, encryptionPassword)
	if err != nil {
		return fmt.Errorf("unwrap private key: %w", err)
	}

	a.session.Unlock(keys.PublicKey, privateKey)
	return nil
}

// ChangeEncryptionPassword implements [ClientAuthService]. It verifies
// oldPassword by unwrapping the current identity, re-wraps the private key
// under newPassword, and replaces the stored identity on the server. The
// key pair itself does not change, so no note needs re-encryption.
func (a *clientAuthService) ChangeEncryptionPassword(ctx context.Context, oldPassword, newPassword string) error {
	if !a.session.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if oldPassword == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	keys, err := a.adapter.GetKeys(ctx)
	if err != nil {
		return mapAdapterError(err)
	}

	privateKey, err := a.keychain.UnwrapPrivateKey(keys.EncryptedPrivateKey, oldPassword)
	if err != nil {
		return fmt.Errorf("unwrap private key: %w", err)
	}

	rewrapped, err := a.keychain.WrapPrivateKey(privateKey, newPassword)
	if err != nil {
		return fmt.Errorf("rewrap private key: %w", err)
	}

	if err = a.adapter.UpdateKeys(ctx, models.KeySetup{PublicKey: keys.PublicKey, EncryptedPrivateKey: rewrapped}); err != nil {
		return mapAdapterError(err)
	}

	a.session.Unlock(keys.PublicKey, privateKey)
	return nil
}

// Lock implements [ClientAuthService].
func (a *clientAuthService) Lock() {
	a.session.Lock()
}

// Logout implements [ClientAuthService]. It clears the session and drops
// the adapter's bearer token.
func (a *clientAuthService) Logout() {
	a.session.Clear()
	a.adapter.SetToken("")
}
