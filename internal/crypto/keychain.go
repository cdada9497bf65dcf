// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// NoteKeySize is the length in bytes of a per-note symmetric key (AES-256).
const NoteKeySize = 32

// saltSize is the length in bytes of the random Argon2id salt prepended to
// every wrapped private key blob.
const saltSize = 16

// keychain is the private implementation of [Keychain].
type keychain struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeychain constructs a [Keychain] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeychain() Keychain {
	return &keychain{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateNoteKey implements [Keychain]. It reads 32 random bytes from the
// OS CSPRNG. Returns an error wrapping [ErrKeyGeneration] if the read fails.
func (k *keychain) GenerateNoteKey() ([]byte, error) {
	key := make([]byte, NoteKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyGeneration, err)
	}
	return key, nil
}

// EncryptField implements [Keychain]. It encrypts plaintext with the note
// key using AES-256-GCM. A random 12-byte nonce is prepended to the
// ciphertext so that the decryption side can locate it:
// blob = nonce ‖ ciphertext. The blob is returned base64 (standard
// encoding) so that arbitrary byte values survive JSON transport.
func (k *keychain) EncryptField(plaintext string, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(append(nonce, ciphertext...)), nil
}

// DecryptField implements [Keychain]. It base64-decodes the blob, splits
// out the nonce, decrypts and verifies the GCM auth tag. A wrong key,
// tampered ciphertext, or malformed blob all collapse into
// [ErrDecryptionFailed]; callers cannot tell the cases apart.
func (k *keychain) DecryptField(ciphertext string, key []byte) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryptionFailed, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}
	nonce, ct := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

// WrapPrivateKey implements [Keychain]. It derives a 256-bit wrapping
// secret from the encryption password and a fresh random salt using
// Argon2id, then encrypts the PEM private key with AES-256-GCM.
// Blob layout: salt (16 bytes) ‖ nonce (12 bytes) ‖ ciphertext, base64.
// The salt travels inside the blob so that unwrapping needs nothing but
// the blob and the password.
func (k *keychain) WrapPrivateKey(privateKeyPEM, password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrKeyGeneration, err)
	}

	secret := k.deriveSecret(password, salt)
	gcm, err := newGCM(secret)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(privateKeyPEM), nil)

	blob := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// UnwrapPrivateKey implements [Keychain]. It splits the blob produced by
// [keychain.WrapPrivateKey], re-derives the wrapping secret from the
// password and the embedded salt, and decrypts. An auth-tag mismatch
// almost always means the user typed the wrong encryption password, so
// every failure surfaces as [ErrWrongPassword] with no partial key
// material returned.
func (k *keychain) UnwrapPrivateKey(wrapped, password string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(wrapped)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrWrongPassword, err)
	}

	if len(blob) < saltSize {
		return "", fmt.Errorf("%w: blob too short", ErrWrongPassword)
	}
	salt, rest := blob[:saltSize], blob[saltSize:]

	secret := k.deriveSecret(password, salt)
	gcm, err := newGCM(secret)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return "", fmt.Errorf("%w: blob too short", ErrWrongPassword)
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	privateKeyPEM, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrongPassword, err)
	}

	return string(privateKeyPEM), nil
}

// deriveSecret derives the 256-bit private-key wrapping secret from the
// encryption password and salt using Argon2id with the parameters stored
// in the receiver. The result exists only in client memory and is
// re-derived every session; it is never persisted or transmitted.
func (k *keychain) deriveSecret(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// newGCM builds an AES-GCM AEAD from a 32-byte key.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
