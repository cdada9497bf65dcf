// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"fmt"

	"github.com/e2ee-notes/notevault/models"
)

// noteCodec is the private implementation of [NoteCodec]. It owns no key
// material; every call receives the keys it needs and forgets them.
type noteCodec struct {
	keychain Keychain
}

// NewNoteCodec constructs a [NoteCodec] on top of the given [Keychain].
func NewNoteCodec(keychain Keychain) NoteCodec {
	return &noteCodec{keychain: keychain}
}

// PrepareNote implements [NoteCodec].
//
// It generates one fresh symmetric key, encrypts title, content and each
// tag independently under that key, then seals the key under the owner's
// public key. The symmetric key exists only for the duration of the call.
// Any cipher failure aborts the whole operation: a partially encrypted
// payload is never returned.
func (c *noteCodec) PrepareNote(plain models.NotePlain, ownerPublicKey string) (models.Note, error) {
	noteKey, err := c.keychain.GenerateNoteKey()
	if err != nil {
		return models.Note{}, fmt.Errorf("generate note key: %w", err)
	}

	title, err := c.keychain.EncryptField(plain.Title, noteKey)
	if err != nil {
		return models.Note{}, fmt.Errorf("encrypt title: %w", err)
	}

	content, err := c.keychain.EncryptField(plain.Content, noteKey)
	if err != nil {
		return models.Note{}, fmt.Errorf("encrypt content: %w", err)
	}

	tags := make([]models.CipheredText, 0, len(plain.Tags))
	for i, tag := range plain.Tags {
		ct, err := c.keychain.EncryptField(tag, noteKey)
		if err != nil {
			return models.Note{}, fmt.Errorf("encrypt tag %d: %w", i, err)
		}
		tags = append(tags, models.CipheredText(ct))
	}

	sealedKey, err := c.keychain.SealKey(noteKey, ownerPublicKey)
	if err != nil {
		return models.Note{}, fmt.Errorf("seal note key: %w", err)
	}

	return models.Note{
		Title:        models.CipheredText(title),
		Content:      models.CipheredText(content),
		Tags:         tags,
		EncryptedKey: models.CipheredKey(sealedKey),
		CategoryID:   plain.CategoryID,
		IsPinned:     plain.IsPinned,
	}, nil
}

// RecoverNote implements [NoteCodec].
//
// It opens the note's sealed symmetric key with the owner's private key
// and decrypts every field under it. Any field failure collapses into
// [ErrNoteDecryption] and no partial plaintext is returned, so a caller
// cannot tell which specific field was tampered with.
func (c *noteCodec) RecoverNote(note models.Note, ownerPrivateKey string) (models.NotePlain, error) {
	noteKey, err := c.keychain.OpenKey(string(note.EncryptedKey), ownerPrivateKey)
	if err != nil {
		return models.NotePlain{}, fmt.Errorf("%w: %w", ErrNoteDecryption, err)
	}

	title, err := c.keychain.DecryptField(string(note.Title), noteKey)
	if err != nil {
		return models.NotePlain{}, fmt.Errorf("%w: %w", ErrNoteDecryption, err)
	}

	content, err := c.keychain.DecryptField(string(note.Content), noteKey)
	if err != nil {
		return models.NotePlain{}, fmt.Errorf("%w: %w", ErrNoteDecryption, err)
	}

	tags := make([]string, 0, len(note.Tags))
	for _, tag := range note.Tags {
		plain, err := c.keychain.DecryptField(string(tag), noteKey)
		if err != nil {
			return models.NotePlain{}, fmt.Errorf("%w: %w", ErrNoteDecryption, err)
		}
		tags = append(tags, plain)
	}

	return models.NotePlain{
		Title:      title,
		Content:    content,
		Tags:       tags,
		CategoryID: note.CategoryID,
		IsPinned:   note.IsPinned,
	}, nil
}

// ReencryptNote re-encrypts an edited note under the note's ORIGINAL
// symmetric key, recovered by opening sealedKey with the owner's private
// key. The sealed key is carried over unchanged: editing a note does not
// rotate its key, so the server-side encryptedKey column stays stable for
// the lifetime of the note.
func (c *noteCodec) ReencryptNote(plain models.NotePlain, sealedKey models.CipheredKey, ownerPrivateKey string) (models.Note, error) {
	noteKey, err := c.keychain.OpenKey(string(sealedKey), ownerPrivateKey)
	if err != nil {
		return models.Note{}, fmt.Errorf("open note key: %w", err)
	}

	title, err := c.keychain.EncryptField(plain.Title, noteKey)
	if err != nil {
		return models.Note{}, fmt.Errorf("encrypt title: %w", err)
	}

	content, err := c.keychain.EncryptField(plain.Content, noteKey)
	if err != nil {
		return models.Note{}, fmt.Errorf("encrypt content: %w", err)
	}

	tags := make([]models.CipheredText, 0, len(plain.Tags))
	for i, tag := range plain.Tags {
		ct, err := c.keychain.EncryptField(tag, noteKey)
		if err != nil {
			return models.Note{}, fmt.Errorf("encrypt tag %d: %w", i, err)
		}
		tags = append(tags, models.CipheredText(ct))
	}

	return models.Note{
		Title:        models.CipheredText(title),
		Content:      models.CipheredText(content),
		Tags:         tags,
		EncryptedKey: sealedKey,
		CategoryID:   plain.CategoryID,
		IsPinned:     plain.IsPinned,
	}, nil
}

// PrepareCategory implements [NoteCodec]. Same envelope as PrepareNote:
// name and description are encrypted under a fresh symmetric key, the key
// is sealed under the owner's public key, color passes through plaintext.
func (c *noteCodec) PrepareCategory(plain models.CategoryPlain, ownerPublicKey string) (models.Category, error) {
	catKey, err := c.keychain.GenerateNoteKey()
	if err != nil {
		return models.Category{}, fmt.Errorf("generate category key: %w", err)
	}

	name, err := c.keychain.EncryptField(plain.Name, catKey)
	if err != nil {
		return models.Category{}, fmt.Errorf("encrypt name: %w", err)
	}

	category := models.Category{
		Name:  models.CipheredText(name),
		Color: plain.Color,
	}

	if plain.Description != "" {
		description, err := c.keychain.EncryptField(plain.Description, catKey)
		if err != nil {
			return models.Category{}, fmt.Errorf("encrypt description: %w", err)
		}
		d := models.CipheredText(description)
		category.Description = &d
	}

	sealedKey, err := c.keychain.SealKey(catKey, ownerPublicKey)
	if err != nil {
		return models.Category{}, fmt.Errorf("seal category key: %w", err)
	}
	category.EncryptedKey = models.CipheredKey(sealedKey)

	return category, nil
}

// ReencryptCategory re-encrypts an edited category under its ORIGINAL
// symmetric key, recovered by opening sealedKey with the owner's private
// key. The sealed key is carried over unchanged, matching ReencryptNote.
func (c *noteCodec) ReencryptCategory(plain models.CategoryPlain, sealedKey models.CipheredKey, ownerPrivateKey string) (models.Category, error) {
	catKey, err := c.keychain.OpenKey(string(sealedKey), ownerPrivateKey)
	if err != nil {
		return models.Category{}, fmt.Errorf("open category key: %w", err)
	}

	name, err := c.keychain.EncryptField(plain.Name, catKey)
	if err != nil {
		return models.Category{}, fmt.Errorf("encrypt name: %w", err)
	}

	category := models.Category{
		Name:         models.CipheredText(name),
		EncryptedKey: sealedKey,
		Color:        plain.Color,
	}

	if plain.Description != "" {
		description, err := c.keychain.EncryptField(plain.Description, catKey)
		if err != nil {
			return models.Category{}, fmt.Errorf("encrypt description: %w", err)
		}
		d := models.CipheredText(description)
		category.Description = &d
	}

	return category, nil
}

// RecoverCategory implements [NoteCodec].
func (c *noteCodec) RecoverCategory(category models.Category, ownerPrivateKey string) (models.CategoryPlain, error) {
	catKey, err := c.keychain.OpenKey(string(category.EncryptedKey), ownerPrivateKey)
	if err != nil {
		return models.CategoryPlain{}, fmt.Errorf("%w: %w", ErrNoteDecryption, err)
	}

	name, err := c.keychain.DecryptField(string(category.Name), catKey)
	if err != nil {
		return models.CategoryPlain{}, fmt.Errorf("%w: %w", ErrNoteDecryption, err)
	}

	plain := models.CategoryPlain{
		Name:  name,
		Color: category.Color,
	}

	if category.Description != nil {
		description, err := c.keychain.DecryptField(string(*category.Description), catKey)
		if err != nil {
			return models.CategoryPlain{}, fmt.Errorf("%w: %w", ErrNoteDecryption, err)
		}
		plain.Description = description
	}

	return plain, nil
}
