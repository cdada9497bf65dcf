// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
)

// rsaKeyBits is the modulus size of generated identities. 2048 bits keeps
// key generation fast enough for interactive setup while comfortably
// wrapping a 32-byte note key under OAEP.
const rsaKeyBits = 2048

// GenerateKeyPair implements [Keychain]. It generates an RSA-2048 key pair
// from the OS CSPRNG and returns both halves PEM-encoded: PKCS#1 for the
// private key, PKIX for the public key. Each call produces a statistically
// independent pair. Returns an error wrapping [ErrKeyGeneration] if the
// random source fails.
func (k *keychain) GenerateKeyPair() (KeyPair, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: %w", ErrKeyGeneration, err)
	}

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})

	pubBytes, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return KeyPair{}, fmt.Errorf("marshal public key: %w", err)
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubBytes,
	})

	return KeyPair{
		PublicKey:  string(pubPEM),
		PrivateKey: string(privPEM),
	}, nil
}

// SealKey implements [Keychain]. It encrypts the 32-byte note key under
// the owner's public key with RSA-OAEP (SHA-256) and returns the result
// base64 encoded. OAEP randomizes the padding, so sealing the same key
// twice produces different ciphertext.
func (k *keychain) SealKey(noteKey []byte, publicKeyPEM string) (string, error) {
	pub, err := parsePublicKey(publicKeyPEM)
	if err != nil {
		return "", err
	}

	sealed, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, noteKey, nil)
	if err != nil {
		return "", fmt.Errorf("seal note key: %w", err)
	}

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenKey implements [Keychain]. It decrypts a sealed note key with the
// matching private key. A mismatched key or corrupted blob yields an error
// wrapping [ErrKeyUnwrap]; no partial key material is returned.
func (k *keychain) OpenKey(sealed string, privateKeyPEM string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrKeyUnwrap, err)
	}

	priv, err := parsePrivateKey(privateKeyPEM)
	if err != nil {
		return nil, err
	}

	noteKey, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, blob, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyUnwrap, err)
	}

	return noteKey, nil
}

// parsePrivateKey decodes a PEM-encoded PKCS#1 RSA private key.
func parsePrivateKey(privateKeyPEM string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(privateKeyPEM))
	if block == nil || block.Type != "RSA PRIVATE KEY" {
		return nil, fmt.Errorf("%w: no PEM block containing private key", ErrKeyUnwrap)
	}

	priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: parse private key: %w", ErrKeyUnwrap, err)
	}
	return priv, nil
}

// parsePublicKey decodes a PEM-encoded PKIX RSA public key.
func parsePublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("no PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA public key")
	}
	return rsaPub, nil
}
