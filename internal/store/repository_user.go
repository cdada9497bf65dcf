package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and encryption key material against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.PasswordHash)

	if err := row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// FindUserByUsername retrieves the user record matching the given username.
//
// Returns [ErrNoUserWasFound] when the username does not exist. Key columns
// are coalesced to empty strings for accounts that have not completed
// encryption setup.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	err := row.Scan(
		&foundUser.UserID,
		&foundUser.Username,
		&foundUser.PasswordHash,
		&foundUser.PublicKey,
		&foundUser.EncryptedPrivateKey,
		&foundUser.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// SetEncryptionKeys stores the user's key pair on first-time setup. The
// UPDATE only matches rows whose public_key is still NULL, so a user who
// already completed setup gets [ErrKeysAlreadySet].
func (r *userRepository) SetEncryptionKeys(ctx context.Context, userID int64, keys models.KeySetup) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setEncryptionKeys, keys.PublicKey, keys.EncryptedPrivateKey, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.SetEncryptionKeys").
			Int64("user_id", userID).
			Msg("failed to store encryption keys")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrKeysAlreadySet
	}

	return nil
}

// UpdateEncryptionKeys replaces the user's stored key material. Used after
// a password change re-wraps the private key client-side.
func (r *userRepository) UpdateEncryptionKeys(ctx context.Context, userID int64, keys models.KeySetup) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateEncryptionKeys, keys.PublicKey, keys.EncryptedPrivateKey, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateEncryptionKeys").
			Int64("user_id", userID).
			Msg("failed to update encryption keys")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// GetEncryptionKeys returns the user's stored key pair: the plaintext PEM
// public key and the password-wrapped private key blob.
//
// Returns [ErrKeysNotSet] when setup has not happened yet and
// [ErrNoUserWasFound] for an unknown user.
func (r *userRepository) GetEncryptionKeys(ctx context.Context, userID int64) (models.KeySetup, error) {
	log := logger.FromContext(ctx)

	var publicKey, encryptedPrivateKey sql.NullString
	row := r.db.QueryRowContext(ctx, getEncryptionKeys, userID)

	if err := row.Scan(&publicKey, &encryptedPrivateKey); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.KeySetup{}, ErrNoUserWasFound
		}
		log.Err(err).
			Str("func", "*userRepository.GetEncryptionKeys").
			Int64("user_id", userID).
			Msg("failed to load encryption keys")
		return models.KeySetup{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !publicKey.Valid || !encryptedPrivateKey.Valid {
		return models.KeySetup{}, ErrKeysNotSet
	}

	return models.KeySetup{
		PublicKey:           publicKey.String,
		EncryptedPrivateKey: encryptedPrivateKey.String,
	}, nil
}
