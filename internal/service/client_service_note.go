package service

import (
	"context"
	"fmt"

	"github.com/e2ee-notes/notevault/internal/adapter"
	"github.com/e2ee-notes/notevault/internal/crypto"
	"github.com/e2ee-notes/notevault/internal/session"
	"github.com/e2ee-notes/notevault/internal/store"
	"github.com/e2ee-notes/notevault/models"
)

type clientNoteService struct {
	adapter adapter.ServerAdapter
	codec   crypto.NoteCodec
	cache   store.LocalNoteRepository
	session *session.Session
}

// NewClientNoteService builds the plaintext-facing note service. Encryption
// happens on the way in, decryption on the way out; the cache only ever
// holds ciphertext.
func NewClientNoteService(serverAdapter adapter.ServerAdapter, codec crypto.NoteCodec, cache store.LocalNoteRepository, sess *session.Session) ClientNoteService {
	return &clientNoteService{adapter: serverAdapter, codec: codec, cache: cache, session: sess}
}

func (n *clientNoteService) requireUnlocked() error {
	if !n.session.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if !n.session.IsUnlocked() {
		return ErrSessionLocked
	}
	return nil
}

// Create implements [ClientNoteService]. It encrypts plain under a fresh
// note key sealed to the session's public key, uploads the result, and
// mirrors the stored record into the cache.
func (n *clientNoteService) Create(ctx context.Context, plain models.NotePlain) (models.NoteView, error) {
	if err := n.requireUnlocked(); err != nil {
		return models.NoteView{}, err
	}

	encrypted, err := n.codec.PrepareNote(plain, n.session.PublicKey())
	if err != nil {
		return models.NoteView{}, fmt.Errorf("encrypt note: %w", err)
	}
	encrypted.UserID = n.session.UserID()

	created, err := n.adapter.CreateNote(ctx, encrypted)
	if err != nil {
		return models.NoteView{}, mapAdapterError(err)
	}

	if err = n.cache.SaveNotes(ctx, n.session.UserID(), created); err != nil {
		return models.NoteView{}, fmt.Errorf("cache created note: %w", err)
	}

	return noteView(created, plain), nil
}

// Get implements [ClientNoteService]. It reads the note from the server,
// falling back to the local cache when the server is unreachable, and
// decrypts it with the session's private key.
func (n *clientNoteService) Get(ctx context.Context, noteID string) (models.NoteView, error) {
	if err := n.requireUnlocked(); err != nil {
		return models.NoteView{}, err
	}

	note, err := n.adapter.GetNote(ctx, noteID)
	if err != nil {
		if !isServerUnreachable(err) {
			return models.NoteView{}, mapAdapterError(err)
		}
		note, err = n.cache.GetNote(ctx, n.session.UserID(), noteID)
		if err != nil {
			return models.NoteView{}, fmt.Errorf("get cached note: %w", err)
		}
	}

	plain, err := n.codec.RecoverNote(note, n.session.PrivateKey())
	if err != nil {
		return models.NoteView{}, fmt.Errorf("decrypt note: %w", err)
	}

	return noteView(note, plain), nil
}

// GetAll implements [ClientNoteService]. A successful server read replaces
// the cache snapshot; an unreachable server serves the cache instead.
func (n *clientNoteService) GetAll(ctx context.Context) ([]models.NoteView, error) {
	if err := n.requireUnlocked(); err != nil {
		return nil, err
	}

	notes, err := n.adapter.ListNotes(ctx)
	switch {
	case err == nil:
		if cacheErr := n.cache.ReplaceAllNotes(ctx, n.session.UserID(), notes); cacheErr != nil {
			return nil, fmt.Errorf("refresh note cache: %w", cacheErr)
		}
	case isServerUnreachable(err):
		notes, err = n.cache.GetAllNotes(ctx, n.session.UserID())
		if err != nil {
			return nil, fmt.Errorf("get cached notes: %w", err)
		}
	default:
		return nil, mapAdapterError(err)
	}

	views := make([]models.NoteView, 0, len(notes))
	for _, note := range notes {
		plain, err := n.codec.RecoverNote(note, n.session.PrivateKey())
		if err != nil {
			return nil, fmt.Errorf("decrypt note %s: %w", note.ID, err)
		}
		views = append(views, noteView(note, plain))
	}

	return views, nil
}

// Update implements [ClientNoteService]. The edited content is re-encrypted
// under the note's original symmetric key, recovered from the sealed key on
// record; the sealed key itself is never rotated.
func (n *clientNoteService) Update(ctx context.Context, noteID string, plain models.NotePlain) (models.NoteView, error) {
	if err := n.requireUnlocked(); err != nil {
		return models.NoteView{}, err
	}

	current, err := n.cache.GetNote(ctx, n.session.UserID(), noteID)
	if err != nil {
		current, err = n.adapter.GetNote(ctx, noteID)
		if err != nil {
			return models.NoteView{}, mapAdapterError(err)
		}
	}

	encrypted, err := n.codec.ReencryptNote(plain, current.EncryptedKey, n.session.PrivateKey())
	if err != nil {
		return models.NoteView{}, fmt.Errorf("reencrypt note: %w", err)
	}

	// Full-state update: the edit form always carries every field.
	// A nil category means "no category", which the server expresses as an
	// empty categoryId in the update payload.
	categoryID := ""
	if plain.CategoryID != nil {
		categoryID = *plain.CategoryID
	}

	update := models.NoteUpdate{
		ID:         noteID,
		UserID:     n.session.UserID(),
		Title:      &encrypted.Title,
		Content:    &encrypted.Content,
		Tags:       &encrypted.Tags,
		CategoryID: &categoryID,
		IsPinned:   &plain.IsPinned,
	}

	updated, err := n.adapter.UpdateNote(ctx, update)
	if err != nil {
		return models.NoteView{}, mapAdapterError(err)
	}

	if err = n.cache.SaveNotes(ctx, n.session.UserID(), updated); err != nil {
		return models.NoteView{}, fmt.Errorf("cache updated note: %w", err)
	}

	return noteView(updated, plain), nil
}

// Delete implements [ClientNoteService]. Needs only an authenticated
// session; no key material is involved.
func (n *clientNoteService) Delete(ctx context.Context, noteID string) error {
	if !n.session.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	if err := n.adapter.DeleteNote(ctx, noteID); err != nil {
		return mapAdapterError(err)
	}

	if err := n.cache.DeleteNote(ctx, n.session.UserID(), noteID); err != nil {
		return fmt.Errorf("evict deleted note from cache: %w", err)
	}

	return nil
}

func noteView(note models.Note, plain models.NotePlain) models.NoteView {
	return models.NoteView{
		NotePlain: plain,
		ID:        note.ID,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
