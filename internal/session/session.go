// Package session holds the authenticated client state: the bearer token and
// the unwrapped encryption identity. A single *Session is created at client
// startup and injected into every component that needs key material, so no
// package ever reads ambient global state.
//
// The session distinguishes two stages. After Login the session is
// authenticated: it carries a token and the user ID, enough to talk to the
// server. After the encryption password has been verified it is also
// unlocked: the plaintext private key is available and notes can be
// decrypted. Lock drops the key material but keeps the token, so the user
// re-enters only the encryption password, not the login password.
package session

import "sync"

// Session is the mutable client authentication and key state.
// Safe for concurrent use.
type Session struct {
	mu sync.RWMutex

	token    string
	userID   int64
	username string

	publicKey  string
	privateKey string
}

// New returns an empty, locked, unauthenticated session.
func New() *Session {
	return &Session{}
}

// Authenticate stores the bearer token and user identity obtained from a
// successful register or login. Any previously unlocked key material is
// dropped: a new account owner never inherits the old keys.
func (s *Session) Authenticate(token string, userID int64, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userID = userID
	s.username = username
	s.publicKey = ""
	s.privateKey = ""
}

// Unlock stores the encryption identity after the encryption password has
// been verified: the PEM public key and the unwrapped PEM private key.
func (s *Session) Unlock(publicKey, privateKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publicKey = publicKey
	s.privateKey = privateKey
}

// Lock drops the key material but keeps the token, returning the session to
// the authenticated-but-locked stage. Dropping the reference is best effort:
// Go strings are immutable, so the old value lives until collected.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publicKey = ""
	s.privateKey = ""
}

// Clear resets the session to its initial state: no token, no identity, no
// key material. Used on logout.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userID = 0
	s.username = ""
	s.publicKey = ""
	s.privateKey = ""
}

// Token returns the bearer token, or an empty string before login.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// UserID returns the authenticated user's ID, or zero before login.
func (s *Session) UserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Username returns the authenticated user's username.
func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// PublicKey returns the PEM public key, or an empty string while locked.
func (s *Session) PublicKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.publicKey
}

// PrivateKey returns the unwrapped PEM private key, or an empty string while
// locked.
func (s *Session) PrivateKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.privateKey
}

// IsAuthenticated reports whether a bearer token is present.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// IsUnlocked reports whether the private key is available for decryption.
func (s *Session) IsUnlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.privateKey != ""
}
