// SPDX-License-Identifier: Apache-2.0

// Package crypto implements the client-side envelope-encryption core.
// It knows nothing about the network, the database, or user accounts;
// its only job is to turn plaintext notes into ciphertext payloads and
// back, and to protect the keys involved.
//
// Scheme:
//
//	pub, priv    = GenerateKeyPair()                     (setup, once)
//	wrappedPriv  = WrapPrivateKey(priv, password)        (setup, once)
//	noteKey      = GenerateNoteKey()                     (per note)
//	field cipher = EncryptField(plaintext, noteKey)      (per field)
//	sealedKey    = SealKey(noteKey, pub)                 (per note)
//
// Recovery is the inverse path: UnwrapPrivateKey, OpenKey, DecryptField.
// Every operation is a pure CPU-bound transform; keys are passed in
// explicitly and never cached inside the package.
package crypto

import "github.com/e2ee-notes/notevault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyPair is a freshly generated asymmetric identity. PublicKey is safe to
// disclose and is stored server-side in the clear; PrivateKey must never
// leave client control unwrapped.
type KeyPair struct {
	// PublicKey is the PEM-encoded PKIX public key.
	PublicKey string

	// PrivateKey is the PEM-encoded PKCS#1 private key.
	PrivateKey string
}

// Keychain is the full client-side cryptographic surface.
// Implementations are stateless and safe for concurrent use.
type Keychain interface {
	// GenerateKeyPair produces a fresh RSA-2048 key pair, PEM-encoded.
	// Each call draws from the OS CSPRNG; failures of the random source
	// are returned as errors wrapping ErrKeyGeneration.
	GenerateKeyPair() (KeyPair, error)

	// GenerateNoteKey produces a fresh random 256-bit symmetric key.
	// A new key is generated for every note and never reused.
	GenerateNoteKey() ([]byte, error)

	// EncryptField encrypts one plaintext field under the note key with
	// AES-256-GCM. Output is standard base64 of nonce || ciphertext.
	// Two calls with the same inputs produce different ciphertext.
	EncryptField(plaintext string, key []byte) (string, error)

	// DecryptField inverts EncryptField. A wrong key, tampered blob, or
	// malformed input yields an error wrapping ErrDecryptionFailed.
	DecryptField(ciphertext string, key []byte) (string, error)

	// WrapPrivateKey encrypts the PEM private key under a secret derived
	// from password with Argon2id and a fresh random salt. The blob
	// (salt || nonce || ciphertext, base64) is safe to store server-side.
	WrapPrivateKey(privateKeyPEM, password string) (string, error)

	// UnwrapPrivateKey inverts WrapPrivateKey. A wrong password is
	// indistinguishable from corruption; both yield ErrWrongPassword.
	UnwrapPrivateKey(wrapped, password string) (string, error)

	// SealKey wraps a note's symmetric key under the owner's public key
	// using RSA-OAEP (SHA-256). Output is standard base64.
	SealKey(noteKey []byte, publicKeyPEM string) (string, error)

	// OpenKey unwraps a sealed note key with the matching private key.
	// A mismatched key yields an error wrapping ErrKeyUnwrap.
	OpenKey(sealed string, privateKeyPEM string) ([]byte, error)
}

// NoteCodec turns whole notes into encrypted storage payloads and back.
// It orchestrates the Keychain primitives; failures are all-or-nothing:
// a partially encrypted or partially decrypted note is never returned.
type NoteCodec interface {
	// PrepareNote encrypts title, content and every tag under one fresh
	// symmetric key and seals that key under ownerPublicKey. Plaintext
	// metadata (category, pinned flag) passes through untouched.
	PrepareNote(plain models.NotePlain, ownerPublicKey string) (models.Note, error)

	// RecoverNote opens the note's sealed key with ownerPrivateKey and
	// decrypts every field. Any field failure yields ErrNoteDecryption.
	RecoverNote(note models.Note, ownerPrivateKey string) (models.NotePlain, error)

	// ReencryptNote re-encrypts an edited note under its original
	// symmetric key, recovered from sealedKey. The sealed key is carried
	// over unchanged: edits do not rotate the note key.
	ReencryptNote(plain models.NotePlain, sealedKey models.CipheredKey, ownerPrivateKey string) (models.Note, error)

	// PrepareCategory encrypts a category's name and description the same
	// way PrepareNote handles note fields. Color passes through.
	PrepareCategory(plain models.CategoryPlain, ownerPublicKey string) (models.Category, error)

	// ReencryptCategory re-encrypts an edited category under its original
	// symmetric key, recovered from sealedKey. Mirrors ReencryptNote.
	ReencryptCategory(plain models.CategoryPlain, sealedKey models.CipheredKey, ownerPrivateKey string) (models.Category, error)

	// RecoverCategory inverts PrepareCategory.
	RecoverCategory(category models.Category, ownerPrivateKey string) (models.CategoryPlain, error)
}
