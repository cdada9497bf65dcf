package crypto

import "errors"

var (
	// ErrKeyGeneration signals that the OS secure random source failed.
	// This is a platform-level condition: callers must abort setup loudly
	// rather than fall back to a weaker source.
	ErrKeyGeneration = errors.New("secure random source unavailable")

	// ErrDecryptionFailed signals a wrong key, tampered ciphertext, or a
	// malformed blob. The three cases are deliberately not distinguished.
	ErrDecryptionFailed = errors.New("decryption failed: wrong key or corrupted data")

	// ErrWrongPassword signals that a wrapped private key could not be
	// unwrapped. Indistinguishable from blob corruption.
	ErrWrongPassword = errors.New("wrong encryption password or corrupted key blob")

	// ErrKeyUnwrap signals that a sealed note key could not be opened with
	// the supplied private key.
	ErrKeyUnwrap = errors.New("cannot open sealed key")

	// ErrNoteDecryption signals that recovering a note failed. No partial
	// plaintext is returned alongside it.
	ErrNoteDecryption = errors.New("cannot decrypt note: wrong key or corrupted data")
)
