package service

import (
	"context"
	"fmt"

	"github.com/e2ee-notes/notevault/internal/adapter"
	"github.com/e2ee-notes/notevault/internal/session"
	"github.com/e2ee-notes/notevault/internal/store"
)

type clientSyncService struct {
	adapter       adapter.ServerAdapter
	noteCache     store.LocalNoteRepository
	categoryCache store.LocalCategoryRepository
	session       *session.Session
}

// NewClientSyncService builds the cache-refresh service. The server is the
// single source of truth, so a sync is a one-way pull: download everything,
// swap the local snapshot. Payloads stay encrypted end to end and no key
// material is touched, which lets the job run while the session is locked.
func NewClientSyncService(serverAdapter adapter.ServerAdapter, noteCache store.LocalNoteRepository, categoryCache store.LocalCategoryRepository, sess *session.Session) ClientSyncService {
	return &clientSyncService{
		adapter:       serverAdapter,
		noteCache:     noteCache,
		categoryCache: categoryCache,
		session:       sess,
	}
}

// FullSync implements [ClientSyncService].
func (s *clientSyncService) FullSync(ctx context.Context) error {
	if !s.session.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	userID := s.session.UserID()

	notes, err := s.adapter.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("download notes: %w", mapAdapterError(err))
	}

	categories, err := s.adapter.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("download categories: %w", mapAdapterError(err))
	}

	if err = s.noteCache.ReplaceAllNotes(ctx, userID, notes); err != nil {
		return fmt.Errorf("replace note cache: %w", err)
	}

	if err = s.categoryCache.ReplaceAllCategories(ctx, userID, categories); err != nil {
		return fmt.Errorf("replace category cache: %w", err)
	}

	return nil
}
