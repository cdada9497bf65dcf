package service

import (
	"github.com/e2ee-notes/notevault/internal/adapter"
	"github.com/e2ee-notes/notevault/internal/crypto"
	"github.com/e2ee-notes/notevault/internal/session"
	"github.com/e2ee-notes/notevault/internal/store"
)

// ClientServices bundles every client-side service behind one constructor.
// All services share a single [session.Session]; unlocking it once makes
// key material available everywhere.
type ClientServices struct {
	AuthService     ClientAuthService
	NoteService     ClientNoteService
	CategoryService ClientCategoryService
	SyncService     ClientSyncService
	SyncJob         ClientSyncJob
}

// NewClientServices wires the client service layer: the crypto core, the
// server adapter, the local encrypted cache, and the shared session.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, sess *session.Session) *ClientServices {
	keychain := crypto.NewKeychain()
	codec := crypto.NewNoteCodec(keychain)

	syncSvc := NewClientSyncService(serverAdapter, localStore.NoteRepository, localStore.CategoryRepository, sess)

	return &ClientServices{
		AuthService:     NewClientAuthService(serverAdapter, keychain, sess),
		NoteService:     NewClientNoteService(serverAdapter, codec, localStore.NoteRepository, sess),
		CategoryService: NewClientCategoryService(serverAdapter, codec, localStore.CategoryRepository, sess),
		SyncService:     syncSvc,
		SyncJob:         NewClientSyncJob(syncSvc),
	}
}
