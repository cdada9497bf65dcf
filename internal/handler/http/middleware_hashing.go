package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/e2ee-notes/notevault/internal/app"
	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/utils"
)

// verifyIntegrity checks the HashSHA256 request header against an
// HMAC-SHA256 digest of the request body. Only write requests carry a
// payload worth verifying, so GET and DELETE pass through untouched, as
// does everything when no hash key is configured.
//
// The hasher pool must be initialized with the same key the clients sign
// with (see [utils.InitHasherPool]).
func (h *Handler) verifyIntegrity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" || (r.Method != http.MethodPost && r.Method != http.MethodPut) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		// Downstream handlers decode the body themselves.
		r.Body = io.NopCloser(bytes.NewReader(body))

		gotHash, err := hex.DecodeString(r.Header.Get("HashSHA256"))
		if err != nil {
			log.Err(err).Msg("malformed HashSHA256 header")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		wantHash := utils.Hash(body)
		if !hmac.Equal(gotHash, wantHash) {
			log.Error().
				Str("hash_from_request", r.Header.Get("HashSHA256")).
				Str("hashed_body", hex.EncodeToString(wantHash)).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
