// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/e2ee-notes/notevault/internal/config"
	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/utils"
	"github.com/e2ee-notes/notevault/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. appCfg.HashKey, when non-empty,
// enables the HashSHA256 integrity header on write requests.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token
// cannot be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.storeTokenFromResponse(resp)
}

// Login implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.storeTokenFromResponse(resp)
}

// SetupKeys implements [ServerAdapter]. It POSTs the encryption identity to
// POST /api/auth/encryption/setup. Returns [ErrConflict] (wrapped) if keys
// were already set for the account. Requires a valid bearer token.
func (h *httpServerAdapter) SetupKeys(ctx context.Context, keys models.KeySetup) error {
	resp, err := h.authedWrite(ctx, keys).Post("/api/auth/encryption/setup")
	if err != nil {
		return fmt.Errorf("setup keys request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetKeys implements [ServerAdapter]. It GETs the stored encryption identity
// from GET /api/auth/encryption/keys. Returns [ErrNotFound] (wrapped) if
// encryption setup has not been completed. Requires a valid bearer token.
func (h *httpServerAdapter) GetKeys(ctx context.Context) (models.KeySetup, error) {
	var keys models.KeySetup

	resp, err := h.authedRequest(ctx).SetResult(&keys).Get("/api/auth/encryption/keys")
	if err != nil {
		return models.KeySetup{}, fmt.Errorf("get keys request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KeySetup{}, err
	}

	return keys, nil
}

// UpdateKeys implements [ServerAdapter]. It PUTs the re-wrapped encryption
// identity to PUT /api/auth/encryption/update. Requires a valid bearer
// token.
func (h *httpServerAdapter) UpdateKeys(ctx context.Context, keys models.KeySetup) error {
	resp, err := h.authedWrite(ctx, keys).Put("/api/auth/encryption/update")
	if err != nil {
		return fmt.Errorf("update keys request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateNote implements [ServerAdapter]. It POSTs the encrypted note to
// POST /api/notes/ and decodes the stored record from the response.
// Requires a valid bearer token.
func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var created models.Note

	resp, err := h.authedWrite(ctx, note).SetResult(&created).Post("/api/notes/")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return created, nil
}

// GetNote implements [ServerAdapter]. It GETs a single encrypted note from
// GET /api/notes/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).SetResult(&note).Get("/api/notes/" + url.PathEscape(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// ListNotes implements [ServerAdapter]. It GETs all encrypted notes of the
// authenticated user from GET /api/notes/. Requires a valid bearer token.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/api/notes/")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode list notes response: %w", err)
	}

	return notes, nil
}

// UpdateNote implements [ServerAdapter]. It PUTs the partial update to
// PUT /api/notes/{id} and decodes the updated record from the response.
// Requires a valid bearer token.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	var updated models.Note

	resp, err := h.authedWrite(ctx, update).
		SetResult(&updated).
		Put("/api/notes/" + url.PathEscape(update.ID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return updated, nil
}

// DeleteNote implements [ServerAdapter]. It sends DELETE /api/notes/{id}.
// Requires a valid bearer token.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/notes/" + url.PathEscape(noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateCategory implements [ServerAdapter]. It POSTs the encrypted category
// to POST /api/categories/ and decodes the stored record from the response.
// Requires a valid bearer token.
func (h *httpServerAdapter) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	var created models.Category

	resp, err := h.authedWrite(ctx, category).SetResult(&created).Post("/api/categories/")
	if err != nil {
		return models.Category{}, fmt.Errorf("create category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Category{}, err
	}

	return created, nil
}

// GetCategory implements [ServerAdapter]. It GETs a single category from
// GET /api/categories/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) GetCategory(ctx context.Context, categoryID string) (models.Category, error) {
	var category models.Category

	resp, err := h.authedRequest(ctx).SetResult(&category).Get("/api/categories/" + url.PathEscape(categoryID))
	if err != nil {
		return models.Category{}, fmt.Errorf("get category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// ListCategories implements [ServerAdapter]. It GETs all categories of the
// authenticated user from GET /api/categories/. Requires a valid bearer
// token.
func (h *httpServerAdapter) ListCategories(ctx context.Context) ([]models.Category, error) {
	resp, err := h.authedRequest(ctx).Get("/api/categories/")
	if err != nil {
		return nil, fmt.Errorf("list categories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var categories []models.Category
	if err = json.Unmarshal(resp.Body(), &categories); err != nil {
		return nil, fmt.Errorf("decode list categories response: %w", err)
	}

	return categories, nil
}

// UpdateCategory implements [ServerAdapter]. It PUTs the partial update to
// PUT /api/categories/{id} and decodes the updated record from the response.
// Requires a valid bearer token.
func (h *httpServerAdapter) UpdateCategory(ctx context.Context, update models.CategoryUpdate) (models.Category, error) {
	var updated models.Category

	resp, err := h.authedWrite(ctx, update).
		SetResult(&updated).
		Put("/api/categories/" + url.PathEscape(update.ID))
	if err != nil {
		return models.Category{}, fmt.Errorf("update category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Category{}, err
	}

	return updated, nil
}

// DeleteCategory implements [ServerAdapter]. It sends
// DELETE /api/categories/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteCategory(ctx context.Context, categoryID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/categories/" + url.PathEscape(categoryID))
	if err != nil {
		return fmt.Errorf("delete category request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetAppVersion implements [ServerAdapter]. It GETs the build version from
// GET /api/version/. The endpoint is public and requires no token.
func (h *httpServerAdapter) GetAppVersion(ctx context.Context) (string, error) {
	var body struct {
		Version string `json:"version"`
	}

	resp, err := h.client.R().SetContext(ctx).SetResult(&body).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return body.Version, nil
}

func (h *httpServerAdapter) storeTokenFromResponse(resp *resty.Response) (models.Token, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("parse bearer token: %w", err)
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse user id from token: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// authedWrite prepares an authenticated JSON request carrying body. When the
// integrity hash key is configured, the HashSHA256 header is set to the
// HMAC-SHA256 digest of the serialised body.
func (h *httpServerAdapter) authedWrite(ctx context.Context, body any) *resty.Request {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json")

	payload, err := json.Marshal(body)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.authedWrite").Msg("failed to marshal request body")
		return req.SetBody(body)
	}

	if h.hashKey != "" {
		req.SetHeader("HashSHA256", hex.EncodeToString(utils.HashBytes(payload, h.hashKey)))
	}

	return req.SetBody(payload)
}
